// Package rleconfig loads command-line flags for a small RLE demo program,
// in the same flag-based style as mellowdrifter/rpkirtr2's internal/config
// package. This module contains no such program, and no package in it
// imports rleconfig.
package rleconfig

import "flag"

// Config is the demo CLI's runtime configuration.
type Config struct {
	LogLevel           string
	BurstBudget        int
	UseALPDUCRC        bool
	UseCompressedPtype bool
	UsePtypeOmission   bool
	ImplicitProtoType  uint
}

// Load reads configuration from command-line flags.
func Load() *Config {
	cfg := &Config{
		LogLevel:           "info",
		BurstBudget:        188,
		UseALPDUCRC:        true,
		UseCompressedPtype: true,
		UsePtypeOmission:   true,
		ImplicitProtoType:  0x0800,
	}

	flag.StringVar(&cfg.LogLevel, "loglevel", cfg.LogLevel, "log level (debug, info, warn, error)")
	flag.IntVar(&cfg.BurstBudget, "burst", cfg.BurstBudget, "burst budget in bytes handed to Pack per call")
	flag.BoolVar(&cfg.UseALPDUCRC, "crc", cfg.UseALPDUCRC, "use CRC-32 trailers instead of sequence numbers")
	flag.BoolVar(&cfg.UseCompressedPtype, "compress-ptype", cfg.UseCompressedPtype, "compress known protocol types to one byte")
	flag.BoolVar(&cfg.UsePtypeOmission, "omit-ptype", cfg.UsePtypeOmission, "elide the protocol-type field when it matches the implicit default")
	implicit := flag.Uint("implicit-ptype", cfg.ImplicitProtoType, "implicit default Ethertype, e.g. 0x0800")
	flag.Parse()
	cfg.ImplicitProtoType = *implicit

	return cfg
}

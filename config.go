package rle

// Config holds the link-wide knobs fixed for the lifetime of a
// Transmitter/Receiver (§4.8). It is immutable once passed to New.
type Config struct {
	// ImplicitProtoType is the default Ethertype for this link; when
	// UsePtypeOmission is set and an SDU's type matches, the ptype field
	// is elided from the wire.
	ImplicitProtoType uint16
	// UseALPDUCRC selects the trailer mode: true = 4-byte CRC-32 inside
	// the ALPDU, false = 1-byte running sequence number per fragment.
	UseALPDUCRC bool
	// UseCompressedPtype encodes known types in one byte; unknown types
	// escape to the uncompressed form.
	UseCompressedPtype bool
	// UsePtypeOmission enables the "equals implicit default ⇒ elide"
	// optimization.
	UsePtypeOmission bool
}

// DefaultConfig returns a Config using CRC trailers, compressed ptypes,
// ptype omission, and an IPv4 implicit default — a reasonable starting
// point for a link carrying mostly IPv4 traffic.
func DefaultConfig() Config {
	return Config{
		ImplicitProtoType:  ProtoTypeIPv4,
		UseALPDUCRC:        true,
		UseCompressedPtype: true,
		UsePtypeOmission:   true,
	}
}

// validate rejects configurations §4.2/§4.8 call out as unsupported: an
// implicit default that collides with the reserved VLAN-compressed-
// without-ptype code.
func (c Config) validate() error {
	if c.ImplicitProtoType == uint16(reservedVLANCompressedCode) {
		return ErrUnsupportedImplicitPtype
	}
	if code, ok := CompressPtype(c.ImplicitProtoType); ok && code == reservedVLANCompressedCode {
		return ErrUnsupportedImplicitPtype
	}

	return nil
}

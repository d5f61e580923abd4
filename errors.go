package rle

import "errors"

// Sentinel errors returned by the wire codec (§4.1, §7).
var (
	errHeaderTooShort   = errors.New("rle: header shorter than minimum PPDU size")
	errReservedBits     = errors.New("rle: reserved header bits set")
	errLengthOutOfRange = errors.New("rle: length field exceeds wire range")
	errUnsupportedPtype = errors.New("rle: label_type/ptype combination is malformed")
)

// Configuration errors (§4.8, §7).
var (
	// ErrUnsupportedImplicitPtype is returned by New when the configured
	// implicit default protocol type collides with the reserved
	// VLAN-compressed-without-ptype code.
	ErrUnsupportedImplicitPtype = errors.New("rle: implicit_proto_type 0x31 is reserved and unsupported")
)

// Transmitter errors (§7).
var (
	// ErrSduTooLarge is returned by Encap when the SDU exceeds RLEMaxPDUSize.
	ErrSduTooLarge = errors.New("rle: sdu exceeds maximum pdu size")
	// ErrContextBusy is returned by Encap when the requested fragment ID
	// already has an in-flight ALPDU.
	ErrContextBusy = errors.New("rle: context busy")
	// ErrBurstTooSmall is returned by Pack when burst_budget cannot hold a
	// minimal PPDU header.
	ErrBurstTooSmall = errors.New("rle: burst budget too small")
	// ErrBadFragID is returned when a caller-supplied fragment ID is out of
	// the [0,7] range.
	ErrBadFragID = errors.New("rle: fragment id out of range")
	// ErrNotInUse is returned by Pack when the addressed context is not
	// currently in use.
	ErrNotInUse = errors.New("rle: context not in use")
)

// Receiver errors (§7).
var (
	// ErrMalformedHeader is returned when the PPDU header fails to decode.
	ErrMalformedHeader = errors.New("rle: malformed ppdu header")
	// ErrOrphanFragment is returned for a CONT/END PPDU addressing a free
	// (UNINIT) context.
	ErrOrphanFragment = errors.New("rle: orphan fragment")
	// ErrOverflow is returned when a PPDU body would write past the
	// expected ALPDU length.
	ErrOverflow = errors.New("rle: reassembly buffer overflow")
	// ErrCrcMismatch is returned when the END trailer's CRC-32 does not
	// match the reassembled SDU.
	ErrCrcMismatch = errors.New("rle: crc mismatch")
	// ErrSeqMismatch is returned when a CONT/END sequence byte does not
	// match the expected running sequence number.
	ErrSeqMismatch = errors.New("rle: sequence number mismatch")
	// ErrTableExhausted is returned when a COMPLETE PPDU arrives and all 8
	// contexts are busy.
	ErrTableExhausted = errors.New("rle: context table exhausted")
)

package rle

const (
	// NumContexts is the fixed size of the per-fragment-ID context pool
	// (§3, §5): one entry per 3-bit fragment ID.
	NumContexts = 8

	// RLEMaxPDUSize is the largest SDU this codec will encapsulate (§3).
	RLEMaxPDUSize = 4088

	// maxALPDUSize is the largest possible ALPDU: RLEMaxPDUSize plus the
	// worst-case uncompressed protocol-type prefix (0xFF escape + 2 bytes)
	// plus the CRC-32 trailer (4 bytes) — 4088+3+4 = 4095, exactly the
	// largest value the 12-bit START total-length field can represent.
	// The spec text's "≤ 4091" is the common case (compressed or omitted
	// ptype); buffer capacity is sized to the true worst case instead.
	maxALPDUSize = 4095
)

package rle

// Protocol-type table (§4.2): a closed enumeration of well-known Ethertype
// / LLC values and their compressed 7-bit RLE codes. Mirrors the reference
// codec's static payload-type tables (payloads.go) in shape: plain
// constants plus a small lookup, no generated code.

// Well-known uncompressed 16-bit protocol types.
const (
	ProtoTypeIPv4           uint16 = 0x0800
	ProtoTypeIPv6           uint16 = 0x86DD
	ProtoTypeARP            uint16 = 0x0806
	ProtoTypeVLAN           uint16 = 0x8100
	ProtoTypeVLANQinQ       uint16 = 0x88A8
	ProtoTypeMPLSUnicast    uint16 = 0x8847
	ProtoTypeMPLSMulticast  uint16 = 0x8848
	ProtoTypePPP            uint16 = 0x880B
	// RLEProtoTypeSignalUncomp identifies an RLE signalling SDU; it is
	// never omitted, and is compressed to code 0x42 when compression is on
	// (§4.1, §9 open questions).
	RLEProtoTypeSignalUncomp uint16 = 0x0082
)

// reservedVLANCompressedCode is rejected at transmitter construction
// (§4.2): it names "VLAN-compressed without ptype field", a combination
// the wire format cannot represent unambiguously.
const reservedVLANCompressedCode uint8 = 0x31

type ptypeEntry struct {
	uncompressed     uint16
	compressed       uint8
	omissible        bool
	vlanHasSecondary bool
}

// ptypeTable is the closed set of well-known types: the nine entries below.
// Any other type has no compressed code and is carried in the escaped
// uncompressed form. Order does not matter; CompressPtype/DecompressPtype
// scan it linearly.
var ptypeTable = []ptypeEntry{
	{uncompressed: ProtoTypeIPv4, compressed: 0x01, omissible: true},
	{uncompressed: ProtoTypeIPv6, compressed: 0x02, omissible: true},
	{uncompressed: ProtoTypeARP, compressed: 0x03, omissible: true},
	{uncompressed: ProtoTypeVLAN, compressed: 0x04, omissible: true, vlanHasSecondary: true},
	{uncompressed: ProtoTypeVLANQinQ, compressed: 0x05, omissible: true, vlanHasSecondary: true},
	{uncompressed: ProtoTypeMPLSUnicast, compressed: 0x06, omissible: true},
	{uncompressed: ProtoTypeMPLSMulticast, compressed: 0x07, omissible: true},
	{uncompressed: ProtoTypePPP, compressed: 0x08, omissible: true},
	{uncompressed: RLEProtoTypeSignalUncomp, compressed: 0x42, omissible: false},
}

// CompressPtype consults the protocol-type table and returns the 7-bit
// compressed code for ptype, or ok=false when ptype is not compressible
// (the uncompressed escape path, §4.1, must be used instead).
func CompressPtype(ptype uint16) (code uint8, ok bool) {
	for _, e := range ptypeTable {
		if e.uncompressed == ptype {
			return e.compressed, true
		}
	}

	return 0, false
}

// DecompressPtype is the inverse of CompressPtype.
func DecompressPtype(code uint8) (ptype uint16, ok bool) {
	for _, e := range ptypeTable {
		if e.compressed == code {
			return e.uncompressed, true
		}
	}

	return 0, false
}

// IsSignalling reports whether ptype identifies an RLE signalling SDU.
func IsSignalling(ptype uint16) bool {
	return ptype == RLEProtoTypeSignalUncomp
}

// isOmissible reports whether ptype is eligible for the "equals implicit
// default ⇒ elide" optimization (§4.2): configuration must permit
// omission, ptype must equal the configured implicit default, and the
// value must be in the omissible set.
func isOmissible(cfg Config, ptype uint16) bool {
	if !cfg.UsePtypeOmission || ptype != cfg.ImplicitProtoType {
		return false
	}
	for _, e := range ptypeTable {
		if e.uncompressed == ptype {
			return e.omissible
		}
	}

	return false
}

// encodePtypeField writes the ALPDU protocol-type prefix per the tie-break
// rule in §4.1 and returns the bytes appended plus the LabelType the PPDU
// header must carry.
func encodePtypeField(buf []byte, cfg Config, ptype uint16) ([]byte, LabelType) {
	if isOmissible(cfg, ptype) {
		return buf, ImplicitProtoType
	}

	label := NoSupp
	if IsSignalling(ptype) {
		label = ProtoSignal
	}

	if cfg.UseCompressedPtype {
		if code, ok := CompressPtype(ptype); ok {
			return append(buf, code), label
		}
	}

	buf = append(buf, ptypeEscape)
	buf = appendUint16(buf, ptype)

	return buf, label
}

// decodePtypeField reads the ALPDU protocol-type prefix given the PPDU
// header's LabelType, returning the resolved ptype, the number of bytes
// consumed from alpdu, and any error.
func decodePtypeField(alpdu []byte, cfg Config, label LabelType) (uint16, int, error) {
	switch label {
	case ImplicitProtoType:
		return cfg.ImplicitProtoType, 0, nil

	case NoSupp, ProtoSignal:
		if len(alpdu) < 1 {
			return 0, 0, errHeaderTooShort
		}
		if alpdu[0] == ptypeEscape {
			if len(alpdu) < 3 {
				return 0, 0, errHeaderTooShort
			}

			ptype := beUint16(alpdu[1:3])
			if label == ProtoSignal && !IsSignalling(ptype) {
				return 0, 0, errUnsupportedPtype
			}

			return ptype, 3, nil
		}
		ptype, ok := DecompressPtype(alpdu[0])
		if !ok {
			return 0, 0, errUnsupportedPtype
		}
		if label == ProtoSignal && !IsSignalling(ptype) {
			// §9 open question: label_type=PROTO_SIGNAL combined with a
			// non-signalling type (compressed or escaped) is treated as
			// malformed.
			return 0, 0, errUnsupportedPtype
		}

		return ptype, 1, nil

	default:
		return 0, 0, errUnsupportedPtype
	}
}

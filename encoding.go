package rle

// These exist because binary.BigEndian writes to a slice instead of appending.

// appendUint16 appends a uint16 to a slice in big endian order.
func appendUint16(buf []byte, v uint16) []byte {
	return append(buf, byte(v>>8), byte(v))
}

// appendUint32 appends a uint32 to a slice in big endian order.
func appendUint32(buf []byte, v uint32) []byte {
	return append(buf, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}

// beUint16 reads a big-endian uint16 from the first two bytes of buf.
func beUint16(buf []byte) uint16 {
	return uint16(buf[0])<<8 | uint16(buf[1])
}

// beUint32 reads a big-endian uint32 from the first four bytes of buf.
func beUint32(buf []byte) uint32 {
	return uint32(buf[0])<<24 | uint32(buf[1])<<16 | uint32(buf[2])<<8 | uint32(buf[3])
}

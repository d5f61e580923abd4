package rle

// rasmBuffer is the byte arena holding one ALPDU being reconstructed
// (§4.4), dual to fragBuffer: it tracks how many bytes have arrived
// (writeCursor) against how many the START header promised (expectedEnd).
type rasmBuffer struct {
	buf         []byte
	expectedEnd int
	writeCursor int
}

func newRasmBuffer() *rasmBuffer {
	return &rasmBuffer{buf: make([]byte, 0, maxALPDUSize)}
}

// reset prepares the buffer to receive a new ALPDU of totalLen bytes.
func (r *rasmBuffer) reset(totalLen int) {
	r.buf = r.buf[:0]
	r.expectedEnd = totalLen
	r.writeCursor = 0
}

// append writes b to the buffer, refusing to write past expectedEnd.
func (r *rasmBuffer) append(b []byte) error {
	if r.writeCursor+len(b) > r.expectedEnd {
		return ErrOverflow
	}
	r.buf = append(r.buf, b...)
	r.writeCursor += len(b)

	return nil
}

// remaining returns how many ALPDU bytes are still expected.
func (r *rasmBuffer) remaining() int {
	return r.expectedEnd - r.writeCursor
}

// finalize extracts the SDU from the reassembled ALPDU. ptypePrefixLen is
// the number of leading bytes occupied by the (possibly absent) protocol
// type field, cached on the context from the START header. In CRC mode the
// trailing 4 bytes are verified against a fresh CRC-32 of the SDU bytes
// (§3: CRC covers the SDU only); in sequence-number mode the wire-level
// trailer byte was already verified and stripped by the caller before
// appending, so this step always succeeds (§4.4).
func (r *rasmBuffer) finalize(ptypePrefixLen int, useCRC bool) ([]byte, error) {
	body := r.buf[:r.writeCursor]

	if !useCRC {
		if len(body) < ptypePrefixLen {
			return nil, ErrCrcMismatch
		}

		return body[ptypePrefixLen:], nil
	}

	if len(body) < ptypePrefixLen+4 {
		return nil, ErrCrcMismatch
	}

	sduEnd := len(body) - 4
	sdu := body[ptypePrefixLen:sduEnd]
	trailer := beUint32(body[sduEnd:])

	if CRC32(sdu) != trailer {
		return nil, ErrCrcMismatch
	}

	return sdu, nil
}

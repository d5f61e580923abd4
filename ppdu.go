package rle

import "io"

// Ppdu is one physical-layer PDU: a decoded/to-be-encoded header plus its
// body bytes (§3). Marshal/MarshalTo/MarshalSize mirror the reference RTP
// codec's Packet type.
type Ppdu struct {
	Header Header
	Body   []byte
}

// MarshalSize returns the size of the PPDU once marshaled.
func (p Ppdu) MarshalSize() int {
	return p.Header.Size() + len(p.Body)
}

// Marshal serializes the PPDU into a freshly allocated byte slice.
func (p Ppdu) Marshal() ([]byte, error) {
	buf := make([]byte, p.MarshalSize())
	n, err := p.MarshalTo(buf)
	if err != nil {
		return nil, err
	}

	return buf[:n], nil
}

// MarshalTo serializes the PPDU into buf, which must be at least
// p.MarshalSize() bytes.
func (p Ppdu) MarshalTo(buf []byte) (int, error) {
	if len(buf) < p.MarshalSize() {
		return 0, io.ErrShortBuffer
	}
	n, err := EncodeHeader(p.Header, buf)
	if err != nil {
		return 0, err
	}
	n += copy(buf[n:], p.Body)

	return n, nil
}

package rle

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPpduMarshalSize(t *testing.T) {
	p := Ppdu{Header: Header{Kind: KindComplete}, Body: []byte("abc")}
	assert.Equal(t, completeHeaderSize+3, p.MarshalSize())
}

func TestPpduMarshalUnmarshalRoundTrip(t *testing.T) {
	p := Ppdu{Header: Header{Kind: KindEnd, FragID: 4, Length: 3}, Body: []byte("xyz")}

	wire, err := p.Marshal()
	require.NoError(t, err)
	assert.Len(t, wire, p.MarshalSize())

	hdr, n, err := DecodeHeader(wire)
	require.NoError(t, err)
	assert.Equal(t, p.Header, hdr)
	assert.Equal(t, p.Body, wire[n:])
}

func TestPpduMarshalToShortBuffer(t *testing.T) {
	p := Ppdu{Header: Header{Kind: KindComplete}, Body: []byte("abc")}

	_, err := p.MarshalTo(make([]byte, 1))
	assert.ErrorIs(t, err, io.ErrShortBuffer)
}

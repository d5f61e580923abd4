package rle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRasmBufferAppendOverflow(t *testing.T) {
	r := newRasmBuffer()
	r.reset(4)

	require.NoError(t, r.append([]byte{0x01, 0x02}))
	assert.Equal(t, 2, r.remaining())

	err := r.append([]byte{0x03, 0x04, 0x05})
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestRasmBufferFinalizeCRC(t *testing.T) {
	r := newRasmBuffer()
	sdu := []byte("payload bytes")
	crc := appendCRC32(nil, sdu)
	alpdu := append(append([]byte{0x01}, sdu...), crc...)

	r.reset(len(alpdu))
	require.NoError(t, r.append(alpdu))

	got, err := r.finalize(1, true)
	require.NoError(t, err)
	assert.Equal(t, sdu, got)
}

func TestRasmBufferFinalizeCRCMismatch(t *testing.T) {
	r := newRasmBuffer()
	sdu := []byte("payload bytes")
	alpdu := append(append([]byte{0x01}, sdu...), 0, 0, 0, 0)

	r.reset(len(alpdu))
	require.NoError(t, r.append(alpdu))

	_, err := r.finalize(1, true)
	assert.ErrorIs(t, err, ErrCrcMismatch)
}

func TestRasmBufferFinalizeSeqnoMode(t *testing.T) {
	r := newRasmBuffer()
	sdu := []byte("payload bytes")
	alpdu := append([]byte{0x01}, sdu...)

	r.reset(len(alpdu))
	require.NoError(t, r.append(alpdu))

	got, err := r.finalize(1, false)
	require.NoError(t, err)
	assert.Equal(t, sdu, got)
}

func TestRasmBufferRemaining(t *testing.T) {
	r := newRasmBuffer()
	r.reset(10)
	assert.Equal(t, 10, r.remaining())
	require.NoError(t, r.append(make([]byte, 3)))
	assert.Equal(t, 7, r.remaining())
}

package rle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completePPDU(t *testing.T, fragID uint8, label LabelType, body []byte) []byte {
	t.Helper()
	ppdu := Ppdu{Header: Header{Kind: KindComplete, FragID: fragID, LabelType: label}, Body: body}
	wire, err := ppdu.Marshal()
	require.NoError(t, err)

	return wire
}

func TestDeencapMalformedHeaderTooShort(t *testing.T) {
	rx, err := NewReceiver(DefaultConfig())
	require.NoError(t, err)

	_, err = rx.Deencap([]byte{0x80})
	assert.ErrorIs(t, err, ErrMalformedHeader)
}

func TestDeencapOrphanContFragment(t *testing.T) {
	rx, err := NewReceiver(DefaultConfig())
	require.NoError(t, err)

	ppdu := Ppdu{Header: Header{Kind: KindCont, FragID: 1, Length: 3}, Body: []byte{1, 2, 3}}
	wire, err := ppdu.Marshal()
	require.NoError(t, err)

	_, err = rx.Deencap(wire)
	assert.ErrorIs(t, err, ErrOrphanFragment)
	assert.Equal(t, uint64(1), rx.OrphanStats().Lost)
}

func TestDeencapCompleteCRCMismatch(t *testing.T) {
	rx, err := NewReceiver(DefaultConfig())
	require.NoError(t, err)

	sdu := []byte("corrupted payload")
	body := append(append([]byte(nil), sdu...), 0, 0, 0, 0) // wrong crc
	wire := completePPDU(t, 0, ImplicitProtoType, body)

	_, err = rx.Deencap(wire)
	assert.ErrorIs(t, err, ErrCrcMismatch)
	assert.True(t, rx.IsFree(0))
}

func TestDeencapCompleteOk(t *testing.T) {
	rx, err := NewReceiver(DefaultConfig())
	require.NoError(t, err)

	sdu := []byte("clean payload")
	body := appendCRC32(append([]byte(nil), sdu...), sdu)
	wire := completePPDU(t, 0, ImplicitProtoType, body)

	result, err := rx.Deencap(wire)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, sdu, result.Sdu)
	assert.Equal(t, DefaultConfig().ImplicitProtoType, result.ProtoType)
}

func TestDeencapTableExhausted(t *testing.T) {
	rx, err := NewReceiver(DefaultConfig())
	require.NoError(t, err)

	sdu := []byte("x")
	body := appendCRC32(append([]byte(nil), sdu...), sdu)

	for i := uint8(0); i < NumContexts; i++ {
		start := Ppdu{
			Header: Header{Kind: KindStart, FragID: i, TotalALPDULength: uint16(len(body)), UseCRC: true, LabelType: ImplicitProtoType},
			Body:   body[:1],
		}
		wire, err := start.Marshal()
		require.NoError(t, err)
		_, err = rx.Deencap(wire)
		require.NoError(t, err)
	}

	wire := completePPDU(t, 0, ImplicitProtoType, body)
	_, err = rx.Deencap(wire)
	assert.ErrorIs(t, err, ErrTableExhausted)
	assert.Equal(t, uint64(1), rx.OrphanStats().Dropped)
}

func TestDeencapLengthMismatchDropsContext(t *testing.T) {
	rx, err := NewReceiver(DefaultConfig())
	require.NoError(t, err)

	start := Ppdu{
		Header: Header{Kind: KindStart, FragID: 0, TotalALPDULength: 10, UseCRC: true, LabelType: ImplicitProtoType},
		Body:   []byte{1, 2},
	}
	wire, err := start.Marshal()
	require.NoError(t, err)
	_, err = rx.Deencap(wire)
	require.NoError(t, err)

	// Claim Length=5 but only send 2 bytes of body.
	buf := make([]byte, contEndHeaderSize+2)
	n, err := EncodeHeader(Header{Kind: KindCont, FragID: 0, Length: 5}, buf)
	require.NoError(t, err)
	copy(buf[n:], []byte{9, 9})

	_, err = rx.Deencap(buf)
	assert.ErrorIs(t, err, ErrMalformedHeader)
	assert.True(t, rx.IsFree(0))
}

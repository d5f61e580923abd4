package rle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfigIsValid(t *testing.T) {
	assert.NoError(t, DefaultConfig().validate())
}

func TestConfigValidateRejectsReservedImplicitLiteral(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ImplicitProtoType = uint16(reservedVLANCompressedCode)

	assert.ErrorIs(t, cfg.validate(), ErrUnsupportedImplicitPtype)
}

func TestStatsMutators(t *testing.T) {
	var s Stats
	s.noteSent(10)
	s.noteOk(5)
	s.noteDropped(3)
	s.noteLost()

	assert.Equal(t, uint64(1), s.Sent)
	assert.Equal(t, uint64(10), s.BytesSent)
	assert.Equal(t, uint64(1), s.Ok)
	assert.Equal(t, uint64(5), s.BytesOk)
	assert.Equal(t, uint64(1), s.Dropped)
	assert.Equal(t, uint64(3), s.BytesDropped)
	assert.Equal(t, uint64(1), s.Lost)
}

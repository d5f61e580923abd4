package rle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTxContextPoolAcquireReleaseBitmapConsistency(t *testing.T) {
	p := newTxContextPool()

	for i := uint8(0); i < NumContexts; i++ {
		assert.True(t, p.isFree(i))
	}

	ctx, err := p.acquire(3)
	require.NoError(t, err)
	assert.Equal(t, txLoaded, ctx.state)
	assert.False(t, p.isFree(3))

	_, err = p.acquire(3)
	assert.ErrorIs(t, err, ErrContextBusy)

	p.release(3)
	assert.True(t, p.isFree(3))
	assert.Equal(t, txFree, p.get(3).state)
}

func TestRxContextPoolAcquireAnyFreeRotates(t *testing.T) {
	p := newRxContextPool()

	first, ctx1, err := p.acquireAnyFree()
	require.NoError(t, err)
	assert.Equal(t, uint8(0), first)
	assert.Equal(t, rxReceiving, ctx1.state)

	second, _, err := p.acquireAnyFree()
	require.NoError(t, err)
	assert.Equal(t, uint8(1), second)
	assert.NotEqual(t, first, second)
}

func TestRxContextPoolAcquireAnyFreeExhausted(t *testing.T) {
	p := newRxContextPool()

	for i := 0; i < NumContexts; i++ {
		_, _, err := p.acquireAnyFree()
		require.NoError(t, err)
	}

	_, _, err := p.acquireAnyFree()
	assert.ErrorIs(t, err, ErrTableExhausted)
}

func TestRxContextPoolReleaseFreesSlotForReuse(t *testing.T) {
	p := newRxContextPool()

	for i := 0; i < NumContexts; i++ {
		_, _, err := p.acquireAnyFree()
		require.NoError(t, err)
	}

	p.release(4)
	assert.True(t, p.isFree(4))

	fragID, _, err := p.acquireAnyFree()
	require.NoError(t, err)
	assert.Equal(t, uint8(4), fragID)
}

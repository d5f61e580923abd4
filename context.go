package rle

// txState is the transmitter-side fragmentation state (§3, §4.6). The
// source's separate rle_packet_type/frag_states enums are unified per the
// §9 redesign note into one small tag per direction; txContext and
// rxContext are kept as distinct types (rather than one struct carrying a
// tagged union of "fragmentation OR reassembly buffer"): each holds its own
// buffer type, and rxContext also caches the ptype prefix length.
type txState uint8

const (
	txFree txState = iota
	// txLoaded: encap has built the ALPDU but pack has not yet emitted a
	// PPDU for it. The eventual first PPDU's kind (COMPLETE vs START) is
	// decided by pack from the caller's burst_budget, not fixed in
	// advance — see DESIGN.md for why this collapses the spec's
	// START_QUEUED/COMPLETE_QUEUED split into one state.
	txLoaded
	// txFragmenting: a START has been emitted; subsequent pack calls
	// produce CONT, then END.
	txFragmenting
)

// txContext is one fragment ID's transmitter-side state.
type txContext struct {
	state     txState
	buf       *fragBuffer
	protoType uint16
	label     LabelType
	useCRC    bool
	nextSeq   uint8
	stats     Stats
}

func newTxContext() *txContext {
	return &txContext{buf: newFragBuffer()}
}

// rxState is the receiver-side reassembly state (§3, §4.7).
type rxState uint8

const (
	rxFree rxState = iota
	rxReceiving
)

// rxContext is one fragment ID's receiver-side state.
type rxContext struct {
	state     rxState
	buf       *rasmBuffer
	protoType uint16
	label     LabelType
	useCRC    bool
	ptypeLen  int
	nextSeq   uint8
	stats     Stats
}

func newRxContext() *rxContext {
	return &rxContext{buf: newRasmBuffer()}
}

// txContextPool owns the fixed-size array of transmitter contexts plus the
// busy bitmap (§4.5). The bitmap is derived from, and kept consistent
// with, each context's state at the single mutation sites in acquire/
// release — never updated independently, per the §9 redesign note.
type txContextPool struct {
	contexts [NumContexts]*txContext
	busy     uint8
}

func newTxContextPool() *txContextPool {
	p := &txContextPool{}
	for i := range p.contexts {
		p.contexts[i] = newTxContext()
	}

	return p
}

func (p *txContextPool) isFree(fragID uint8) bool {
	return p.busy&(1<<fragID) == 0
}

// acquire reserves context fragID for a new ALPDU. Returns ErrContextBusy
// if it is already in use.
func (p *txContextPool) acquire(fragID uint8) (*txContext, error) {
	if !p.isFree(fragID) {
		return nil, ErrContextBusy
	}
	p.busy |= 1 << fragID
	ctx := p.contexts[fragID]
	ctx.state = txLoaded

	return ctx, nil
}

// get returns the context for fragID without acquiring it.
func (p *txContextPool) get(fragID uint8) *txContext {
	return p.contexts[fragID]
}

// release returns context fragID to the free pool.
func (p *txContextPool) release(fragID uint8) {
	p.busy &^= 1 << fragID
	p.contexts[fragID].state = txFree
}

// rxContextPool is the receiver-side analogue of txContextPool, plus the
// rotating free-search acquire_any_free needs for COMPLETE PPDUs (§4.7).
type rxContextPool struct {
	contexts [NumContexts]*rxContext
	busy     uint8
	nextScan uint8
}

func newRxContextPool() *rxContextPool {
	p := &rxContextPool{}
	for i := range p.contexts {
		p.contexts[i] = newRxContext()
	}

	return p
}

func (p *rxContextPool) isFree(fragID uint8) bool {
	return p.busy&(1<<fragID) == 0
}

func (p *rxContextPool) get(fragID uint8) *rxContext {
	return p.contexts[fragID]
}

// acquire reserves context fragID for a new ALPDU (a START PPDU).
func (p *rxContextPool) acquire(fragID uint8) *rxContext {
	p.busy |= 1 << fragID
	ctx := p.contexts[fragID]
	ctx.state = rxReceiving

	return ctx
}

// acquireAnyFree rotates the search starting from the slot after the last
// one handed out, so repeated COMPLETE PPDUs spread across the table
// instead of always landing on fragment ID 0. Returns ErrTableExhausted
// when all 8 contexts are busy.
func (p *rxContextPool) acquireAnyFree() (uint8, *rxContext, error) {
	for i := uint8(0); i < NumContexts; i++ {
		fragID := (p.nextScan + i) % NumContexts
		if p.isFree(fragID) {
			p.nextScan = (fragID + 1) % NumContexts
			ctx := p.acquire(fragID)

			return fragID, ctx, nil
		}
	}

	return 0, nil, ErrTableExhausted
}

func (p *rxContextPool) release(fragID uint8) {
	p.busy &^= 1 << fragID
	p.contexts[fragID].state = rxFree
}

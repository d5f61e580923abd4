package rle

import (
	"go.uber.org/zap"

	"github.com/dvbrcs2/rle/internal/rlelog"
)

// DeencapResult is the SDU recovered from a completed ALPDU, along with
// its fragment ID and resolved protocol type (§4.7, §6).
type DeencapResult struct {
	FragID    uint8
	Sdu       []byte
	ProtoType uint16
}

// Receiver implements the deencapsulation/reassembly engine (§4.7): it
// routes incoming PPDUs by fragment ID, validates the START→CONT*→END
// sequence, verifies the CRC or sequence-number trailer, and delivers SDUs
// when an ALPDU completes. A Receiver is not safe for concurrent use (§5).
type Receiver struct {
	cfg  Config
	pool *rxContextPool
	log  *zap.SugaredLogger

	// orphan aggregates counters for events that have no associated
	// context: orphan CONT/END and table-exhausted COMPLETE PPDUs.
	orphan Stats
}

// ReceiverOption configures optional Receiver behavior.
type ReceiverOption func(*Receiver)

// WithReceiverLogger attaches a logger; without this option, or with a nil
// logger, the Receiver logs nothing.
func WithReceiverLogger(log *zap.SugaredLogger) ReceiverOption {
	return func(r *Receiver) {
		if log != nil {
			r.log = log
		}
	}
}

// NewReceiver constructs a Receiver for cfg.
func NewReceiver(cfg Config, opts ...ReceiverOption) (*Receiver, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	r := &Receiver{cfg: cfg, pool: newRxContextPool(), log: rlelog.Nop()}
	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

// Deencap processes one PPDU from the wire (§4.7). It returns a non-nil
// result only when that PPDU completed an ALPDU (COMPLETE, or the END of a
// fragmented one); a nil result with a nil error means the PPDU was
// accepted but the ALPDU is still in progress.
func (r *Receiver) Deencap(ppdu []byte) (*DeencapResult, error) {
	hdr, n, err := DecodeHeader(ppdu)
	if err != nil {
		r.log.Debugw("malformed ppdu header", "err", err)

		return nil, ErrMalformedHeader
	}
	body := ppdu[n:]

	switch hdr.Kind {
	case KindComplete:
		return r.deencapComplete(hdr, body)
	case KindStart:
		return nil, r.deencapStart(hdr, body)
	case KindCont, KindEnd:
		if int(hdr.Length) != len(body) {
			r.dropMalformed(hdr.FragID)

			return nil, ErrMalformedHeader
		}

		return r.deencapContOrEnd(hdr, body)
	default:
		return nil, ErrMalformedHeader
	}
}

// dropMalformed implements the MalformedHeader recovery rule: the context
// is left alone if it is free, released and counted as dropped otherwise.
func (r *Receiver) dropMalformed(fragID uint8) {
	if r.pool.isFree(fragID) {
		return
	}
	ctx := r.pool.get(fragID)
	ctx.stats.noteDropped(ctx.buf.writeCursor)
	r.pool.release(fragID)
}

func (r *Receiver) deencapComplete(hdr Header, body []byte) (*DeencapResult, error) {
	fragID, ctx, err := r.pool.acquireAnyFree()
	if err != nil {
		r.orphan.noteDropped(len(body))
		r.log.Warnw("context table exhausted", "kind", "COMPLETE")

		return nil, ErrTableExhausted
	}

	ptype, consumed, perr := decodePtypeField(body, r.cfg, hdr.LabelType)
	if perr != nil {
		ctx.stats.noteDropped(len(body))
		r.pool.release(fragID)

		return nil, ErrMalformedHeader
	}

	var sdu []byte
	if r.cfg.UseALPDUCRC {
		if len(body) < consumed+4 {
			ctx.stats.noteDropped(len(body))
			r.pool.release(fragID)

			return nil, ErrCrcMismatch
		}
		sduEnd := len(body) - 4
		sdu = body[consumed:sduEnd]
		if CRC32(sdu) != beUint32(body[sduEnd:]) {
			ctx.stats.noteDropped(len(body))
			r.pool.release(fragID)

			return nil, ErrCrcMismatch
		}
	} else {
		sdu = body[consumed:]
	}

	ctx.stats.noteOk(len(sdu))
	r.pool.release(fragID)

	return &DeencapResult{FragID: fragID, Sdu: append([]byte(nil), sdu...), ProtoType: ptype}, nil
}

func (r *Receiver) deencapStart(hdr Header, body []byte) error {
	fragID := hdr.FragID

	if !r.pool.isFree(fragID) {
		// Sender restart (§8 scenario 6, §9 open question): the previous
		// ALPDU on this fragment ID is abandoned, not merged.
		old := r.pool.get(fragID)
		old.stats.noteDropped(old.buf.writeCursor)
		r.pool.release(fragID)
		r.log.Warnw("sender restart, abandoning in-flight alpdu", "frag_id", fragID)
	}

	if hdr.UseCRC != r.cfg.UseALPDUCRC {
		return ErrMalformedHeader
	}

	ctx := r.pool.acquire(fragID)
	ctx.buf.reset(int(hdr.TotalALPDULength))
	ctx.useCRC = hdr.UseCRC
	ctx.label = hdr.LabelType
	ctx.nextSeq = 0

	ptype, consumed, perr := decodePtypeField(body, r.cfg, hdr.LabelType)
	if perr != nil {
		ctx.stats.noteDropped(len(body))
		r.pool.release(fragID)

		return ErrMalformedHeader
	}
	ctx.protoType = ptype
	ctx.ptypeLen = consumed

	if werr := ctx.buf.append(body); werr != nil {
		ctx.stats.noteDropped(len(body))
		r.pool.release(fragID)

		return ErrOverflow
	}

	return nil
}

func (r *Receiver) deencapContOrEnd(hdr Header, body []byte) (*DeencapResult, error) {
	fragID := hdr.FragID

	if r.pool.isFree(fragID) {
		r.orphan.noteLost()
		r.log.Warnw("orphan fragment", "frag_id", fragID, "kind", hdr.Kind.String())

		return nil, ErrOrphanFragment
	}

	ctx := r.pool.get(fragID)
	payload := body

	if !ctx.useCRC {
		if len(payload) < 1 {
			ctx.stats.noteDropped(len(body))
			r.pool.release(fragID)

			return nil, ErrMalformedHeader
		}
		seq := payload[len(payload)-1]
		payload = payload[:len(payload)-1]
		if seq != ctx.nextSeq {
			ctx.stats.noteDropped(len(body))
			ctx.stats.noteLost()
			r.pool.release(fragID)

			return nil, ErrSeqMismatch
		}
	}

	if werr := ctx.buf.append(payload); werr != nil {
		ctx.stats.noteDropped(len(payload))
		r.pool.release(fragID)

		return nil, ErrOverflow
	}

	if hdr.Kind == KindCont {
		if !ctx.useCRC {
			ctx.nextSeq++
		}

		return nil, nil
	}

	sdu, ferr := ctx.buf.finalize(ctx.ptypeLen, ctx.useCRC)
	if ferr != nil {
		ctx.stats.noteDropped(ctx.buf.writeCursor)
		r.pool.release(fragID)

		return nil, ferr
	}

	ptype := ctx.protoType
	ctx.stats.noteOk(len(sdu))
	r.pool.release(fragID)

	return &DeencapResult{FragID: fragID, Sdu: append([]byte(nil), sdu...), ProtoType: ptype}, nil
}

// IsFree reports whether fragID's context is currently unused.
func (r *Receiver) IsFree(fragID uint8) bool {
	if fragID >= NumContexts {
		return false
	}

	return r.pool.isFree(fragID)
}

// Stats returns a snapshot of fragID's counters.
func (r *Receiver) Stats(fragID uint8) Stats {
	if fragID >= NumContexts {
		return Stats{}
	}

	return r.pool.get(fragID).stats
}

// OrphanStats returns the aggregate counters for events with no associated
// context: orphan CONT/END PPDUs and COMPLETE PPDUs that arrived while all
// 8 contexts were busy.
func (r *Receiver) OrphanStats() Stats {
	return r.orphan
}

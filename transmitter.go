package rle

import (
	"go.uber.org/zap"

	"github.com/dvbrcs2/rle/internal/rlelog"
)

// Transmitter implements the encapsulation/fragmentation engine (§4.6): it
// turns SDUs into ALPDUs and slices ALPDUs into PPDUs sized to caller-
// supplied burst budgets. A Transmitter is not safe for concurrent use
// (§5); the caller owns it exclusively or supplies external mutual
// exclusion.
type Transmitter struct {
	cfg  Config
	pool *txContextPool
	log  *zap.SugaredLogger
}

// TransmitterOption configures optional Transmitter behavior.
type TransmitterOption func(*Transmitter)

// WithTransmitterLogger attaches a logger; without this option, or with a
// nil logger, the Transmitter logs nothing.
func WithTransmitterLogger(log *zap.SugaredLogger) TransmitterOption {
	return func(t *Transmitter) {
		if log != nil {
			t.log = log
		}
	}
}

// NewTransmitter constructs a Transmitter for cfg, rejecting configurations
// §4.2/§4.8 call out as unsupported.
func NewTransmitter(cfg Config, opts ...TransmitterOption) (*Transmitter, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	t := &Transmitter{cfg: cfg, pool: newTxContextPool(), log: rlelog.Nop()}
	for _, opt := range opts {
		opt(t)
	}

	return t, nil
}

// Encap builds an ALPDU from sdu/ptype and loads it into fragment ID
// fragID's context, ready for Pack (§4.6).
func (t *Transmitter) Encap(fragID uint8, sdu []byte, ptype uint16) error {
	if fragID >= NumContexts {
		return ErrBadFragID
	}
	if len(sdu) > RLEMaxPDUSize {
		t.pool.get(fragID).stats.noteDropped(len(sdu))
		t.log.Warnw("sdu too large, dropped", "frag_id", fragID, "len", len(sdu))

		return ErrSduTooLarge
	}

	ctx, err := t.pool.acquire(fragID)
	if err != nil {
		return err
	}

	ptypeField, label := encodePtypeField(nil, t.cfg, ptype)

	var crc []byte
	if t.cfg.UseALPDUCRC {
		crc = appendUint32(nil, CRC32(sdu))
	}

	ctx.buf.appendALPDU(ptypeField, sdu, crc)
	ctx.protoType = ptype
	ctx.label = label
	ctx.useCRC = t.cfg.UseALPDUCRC
	ctx.nextSeq = 0

	t.log.Debugw("encap", "frag_id", fragID, "ptype", ptype, "alpdu_len", ctx.buf.total())

	return nil
}

// Pack emits the next PPDU for fragID, choosing COMPLETE, START, CONT, or
// END by the context's state and burstBudget (§4.6). On COMPLETE or END it
// releases the context back to the free pool.
func (t *Transmitter) Pack(fragID uint8, burstBudget int) (Ppdu, error) {
	if fragID >= NumContexts {
		return Ppdu{}, ErrBadFragID
	}
	if burstBudget < 3 {
		return Ppdu{}, ErrBurstTooSmall
	}

	ctx := t.pool.get(fragID)

	switch ctx.state {
	case txFree:
		return Ppdu{}, ErrNotInUse

	case txLoaded:
		total := ctx.buf.total()
		if total <= burstBudget-completeHeaderSize {
			body := append([]byte(nil), ctx.buf.peek(total)...)
			ctx.buf.commit(total)
			ctx.stats.noteSent(total)
			t.pool.release(fragID)
			t.log.Debugw("pack complete", "frag_id", fragID, "len", total)

			return Ppdu{
				Header: Header{Kind: KindComplete, FragID: fragID, LabelType: ctx.label},
				Body:   body,
			}, nil
		}

		maxBody := burstBudget - startHeaderSize
		if maxBody <= 0 {
			return Ppdu{}, ErrBurstTooSmall
		}

		body := append([]byte(nil), ctx.buf.peek(maxBody)...)
		ctx.buf.commit(len(body))
		ctx.state = txFragmenting
		if !ctx.useCRC {
			ctx.nextSeq = 0
		}

		t.log.Debugw("pack start", "frag_id", fragID, "total", total, "body_len", len(body))

		return Ppdu{
			Header: Header{
				Kind:             KindStart,
				FragID:           fragID,
				TotalALPDULength: uint16(total),
				UseCRC:           ctx.useCRC,
				LabelType:        ctx.label,
			},
			Body: body,
		}, nil

	case txFragmenting:
		seqOverhead := 0
		if !ctx.useCRC {
			seqOverhead = 1
		}

		available := burstBudget - contEndHeaderSize - seqOverhead
		if maxAvailable := MaxBodyLength - seqOverhead; available > maxAvailable {
			available = maxAvailable
		}
		remaining := ctx.buf.remaining()

		if remaining <= available {
			body := append([]byte(nil), ctx.buf.peek(remaining)...)
			ctx.buf.commit(remaining)
			if !ctx.useCRC {
				body = append(body, ctx.nextSeq)
			}
			ctx.stats.noteSent(remaining)
			t.pool.release(fragID)
			t.log.Debugw("pack end", "frag_id", fragID, "len", remaining)

			return Ppdu{
				Header: Header{Kind: KindEnd, FragID: fragID, Length: uint16(len(body))},
				Body:   body,
			}, nil
		}

		if available <= 0 {
			return Ppdu{}, ErrBurstTooSmall
		}

		body := append([]byte(nil), ctx.buf.peek(available)...)
		ctx.buf.commit(len(body))
		if !ctx.useCRC {
			body = append(body, ctx.nextSeq)
			ctx.nextSeq++
		}
		t.log.Debugw("pack cont", "frag_id", fragID, "len", len(body))

		return Ppdu{
			Header: Header{Kind: KindCont, FragID: fragID, Length: uint16(len(body))},
			Body:   body,
		}, nil

	default:
		return Ppdu{}, ErrNotInUse
	}
}

// Free force-releases fragID's context, for a host aborting an in-flight
// ALPDU (§4.6, §5). It is a no-op if the context is already free.
func (t *Transmitter) Free(fragID uint8) {
	if fragID >= NumContexts {
		return
	}
	ctx := t.pool.get(fragID)
	if ctx.state == txFree {
		return
	}
	ctx.stats.noteDropped(0)
	t.log.Warnw("context force-released", "frag_id", fragID)
	t.pool.release(fragID)
}

// IsFree reports whether fragID's context is currently unused.
func (t *Transmitter) IsFree(fragID uint8) bool {
	if fragID >= NumContexts {
		return false
	}

	return t.pool.isFree(fragID)
}

// Stats returns a snapshot of fragID's counters.
func (t *Transmitter) Stats(fragID uint8) Stats {
	if fragID >= NumContexts {
		return Stats{}
	}

	return t.pool.get(fragID).stats
}

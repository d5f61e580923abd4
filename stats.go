package rle

// Stats is the per-context counter block (§9 DESIGN NOTES: consolidate
// inline counter mutation spread across call sites into a narrow set of
// mutators invoked at the engine boundaries only). Transmitter contexts
// use Sent/BytesSent/Dropped/BytesDropped; Receiver contexts use
// Ok/BytesOk/Dropped/BytesDropped/Lost. Fields a given direction never
// touches simply stay zero.
type Stats struct {
	Sent         uint64
	BytesSent    uint64
	Ok           uint64
	BytesOk      uint64
	Dropped      uint64
	BytesDropped uint64
	Lost         uint64
}

func (s *Stats) noteSent(n int) {
	s.Sent++
	s.BytesSent += uint64(n)
}

func (s *Stats) noteOk(n int) {
	s.Ok++
	s.BytesOk += uint64(n)
}

func (s *Stats) noteDropped(n int) {
	s.Dropped++
	s.BytesDropped += uint64(n)
}

func (s *Stats) noteLost() {
	s.Lost++
}

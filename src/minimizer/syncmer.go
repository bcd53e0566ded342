package minimizer

import (
	"github.com/VeryAmazed/Digest/src/digest"
	"github.com/VeryAmazed/Digest/src/window"
)

// Syncmer selects the first k-mer of a window of w consecutive k-mers
// whenever the window's argmin sits at one of the two boundary positions of
// the live window, its first or its last k-mer (component F). Unlike
// WindowMinimizer it never dedups: every window reports its own start
// position, so no position is reported twice.
type Syncmer struct {
	d   *digest.Digester
	buf window.Buffer
	w   int
}

// NewSyncmer constructs a syncmer selector over seq with the given k-mer
// length and window size w.
func NewSyncmer(seq []byte, k, w int, policy digest.Policy) (*Syncmer, error) {
	d, err := digest.New(seq, k, 0, digest.Canon, policy)
	if err != nil {
		return nil, err
	}
	return &Syncmer{d: d, buf: window.NewAdaptive(w), w: w}, nil
}

// AppendSeq extends the underlying digester's sequence, preserving the
// concatenated coordinate space (see digest.Digester.AppendSeq).
func (s *Syncmer) AppendSeq(seq []byte) error { return s.d.AppendSeq(seq) }

// NewSeq rebinds the underlying digester to an unrelated sequence, clearing
// the window buffer with it.
func (s *Syncmer) NewSeq(seq []byte, start int) error {
	s.buf.Reset()
	return s.d.NewSeq(seq, start)
}

func (s *Syncmer) ensureFull() bool {
	for s.buf.Size() < s.w {
		if !s.d.Valid() {
			return false
		}
		s.buf.Insert(s.d.MinimizedHash(), s.d.Pos())
		s.d.RollOne()
	}
	return true
}

func (s *Syncmer) slide() bool {
	if !s.d.Valid() {
		return false
	}
	s.buf.Insert(s.d.MinimizedHash(), s.d.Pos())
	s.d.RollOne()
	return true
}

// rollEmissions reports, for each window whose argmin sits at a boundary
// index, an entry carrying the argmin's hash but the window's oldest
// (first) k-mer's position — the syncmer scheme always reports the window
// start, never wherever the argmin itself happened to land.
func (s *Syncmer) rollEmissions(amount int) []window.Entry {
	var emissions []window.Entry
	for len(emissions) < amount {
		if !s.ensureFull() {
			break
		}
		if e, atBoundary := s.buf.MinSyncmer(); atBoundary {
			oldest := s.buf.Oldest()
			emissions = append(emissions, window.Entry{Hash: e.Hash, Pos: oldest.Pos})
		}
		if !s.slide() {
			break
		}
	}
	return emissions
}

// RollMinimizer writes up to amount selected k-mer positions into out and
// returns how many were written.
func (s *Syncmer) RollMinimizer(amount int, out []uint32) int {
	ems := s.rollEmissions(amount)
	for i, e := range ems {
		out[i] = e.Pos
	}
	return len(ems)
}

// RollMinimizerWithHash is RollMinimizer, additionally reporting the
// minimized hash of each selected window's argmin k-mer, which is the
// window's last k-mer rather than the reported first one when the minimum
// sits at the end.
func (s *Syncmer) RollMinimizerWithHash(amount int, out []PosHash) int {
	ems := s.rollEmissions(amount)
	for i, e := range ems {
		out[i] = PosHash{Pos: e.Pos, Hash: uint32(e.Hash)}
	}
	return len(ems)
}

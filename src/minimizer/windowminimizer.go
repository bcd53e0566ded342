package minimizer

import (
	"github.com/VeryAmazed/Digest/src/digest"
	"github.com/VeryAmazed/Digest/src/window"
)

// WindowMinimizer selects, for every window of w consecutive k-mers, the
// argmin k-mer under the window package's tie-break rule, deduplicating
// consecutive emissions of the same (hash, pos) pair as the window slides
// (component E).
type WindowMinimizer struct {
	d   *digest.Digester
	buf window.Buffer
	w   int

	hasEmitted  bool
	lastEmitted window.Entry
}

// NewWindowMinimizer constructs a window-minimizer over seq with the given
// k-mer length and window size w (number of consecutive k-mers per window).
func NewWindowMinimizer(seq []byte, k, w int, policy digest.Policy) (*WindowMinimizer, error) {
	d, err := digest.New(seq, k, 0, digest.Canon, policy)
	if err != nil {
		return nil, err
	}
	return &WindowMinimizer{d: d, buf: window.NewAdaptive(w), w: w}, nil
}

// AppendSeq extends the underlying digester's sequence, preserving the
// concatenated coordinate space (see digest.Digester.AppendSeq).
func (wm *WindowMinimizer) AppendSeq(seq []byte) error { return wm.d.AppendSeq(seq) }

// NewSeq rebinds the underlying digester to an unrelated sequence, clearing
// the window buffer and any pending dedup state with it.
func (wm *WindowMinimizer) NewSeq(seq []byte, start int) error {
	wm.buf.Reset()
	wm.hasEmitted = false
	return wm.d.NewSeq(seq, start)
}

// ensureFull tops up the window buffer to w live k-mers, returning false if
// the underlying sequence runs out before that many are available.
func (wm *WindowMinimizer) ensureFull() bool {
	for wm.buf.Size() < wm.w {
		if !wm.d.Valid() {
			return false
		}
		wm.buf.Insert(wm.d.MinimizedHash(), wm.d.Pos())
		wm.d.RollOne()
	}
	return true
}

// slide inserts the next k-mer into the buffer, evicting the oldest one,
// returning false if the underlying sequence has no k-mer left to slide in.
func (wm *WindowMinimizer) slide() bool {
	if !wm.d.Valid() {
		return false
	}
	wm.buf.Insert(wm.d.MinimizedHash(), wm.d.Pos())
	wm.d.RollOne()
	return true
}

func (wm *WindowMinimizer) rollEmissions(amount int) []window.Entry {
	var emissions []window.Entry
	for len(emissions) < amount {
		if !wm.ensureFull() {
			break
		}
		m := wm.buf.Min()
		if !wm.hasEmitted || m != wm.lastEmitted {
			emissions = append(emissions, m)
			wm.hasEmitted, wm.lastEmitted = true, m
		}
		if !wm.slide() {
			break
		}
	}
	return emissions
}

// RollMinimizer writes up to amount selected k-mer positions into out and
// returns how many were written.
func (wm *WindowMinimizer) RollMinimizer(amount int, out []uint32) int {
	ems := wm.rollEmissions(amount)
	for i, e := range ems {
		out[i] = e.Pos
	}
	return len(ems)
}

// RollMinimizerWithHash is RollMinimizer, additionally reporting each
// selected k-mer's minimized hash.
func (wm *WindowMinimizer) RollMinimizerWithHash(amount int, out []PosHash) int {
	ems := wm.rollEmissions(amount)
	for i, e := range ems {
		out[i] = PosHash{Pos: e.Pos, Hash: uint32(e.Hash)}
	}
	return len(ems)
}

package minimizer

import "github.com/VeryAmazed/Digest/src/digest"

// ModMinimizer selects every k-mer whose minimized hash is congruent to a
// fixed residue modulo m (component D). It holds no window
// state: each k-mer is judged independently of its neighbours.
type ModMinimizer struct {
	d        *digest.Digester
	mod, res uint64
}

// NewModMinimizer constructs a modulo-minimizer over seq with the given
// k-mer length, modulus and residue. res must be strictly smaller than mod.
func NewModMinimizer(seq []byte, k int, mod, res uint64, policy digest.Policy) (*ModMinimizer, error) {
	if res >= mod {
		return nil, digest.ErrBadMod
	}
	d, err := digest.New(seq, k, 0, digest.Canon, policy)
	if err != nil {
		return nil, err
	}
	return &ModMinimizer{d: d, mod: mod, res: res}, nil
}

// AppendSeq extends the underlying digester's sequence, preserving the
// concatenated coordinate space (see digest.Digester.AppendSeq).
func (m *ModMinimizer) AppendSeq(seq []byte) error { return m.d.AppendSeq(seq) }

// NewSeq rebinds the underlying digester to an unrelated sequence.
func (m *ModMinimizer) NewSeq(seq []byte, start int) error { return m.d.NewSeq(seq, start) }

func (m *ModMinimizer) selects() bool {
	return m.d.MinimizedHash()%m.mod == m.res
}

// RollMinimizer writes up to amount selected k-mer positions into out and
// returns how many were written. Fewer than amount means the underlying
// sequence was exhausted.
func (m *ModMinimizer) RollMinimizer(amount int, out []uint32) int {
	n := 0
	for n < amount && m.d.Valid() {
		if m.selects() {
			out[n] = m.d.Pos()
			n++
		}
		if !m.d.RollOne() {
			break
		}
	}
	return n
}

// RollMinimizerWithHash is RollMinimizer, additionally reporting each
// selected k-mer's minimized hash.
func (m *ModMinimizer) RollMinimizerWithHash(amount int, out []PosHash) int {
	n := 0
	for n < amount && m.d.Valid() {
		if m.selects() {
			out[n] = PosHash{Pos: m.d.Pos(), Hash: uint32(m.d.MinimizedHash())}
			n++
		}
		if !m.d.RollOne() {
			break
		}
	}
	return n
}

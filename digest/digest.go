// Package digest is the scripting-binding surface of the minimizer engine:
// three entry points mirroring the three top-level bindings of the original
// pybind layer (window_minimizer, modimizer, syncmer), each taking a raw
// nucleotide sequence and returning the selected k-mers' positions, and
// optionally their minimized hashes.
package digest

import (
	digestcore "github.com/VeryAmazed/Digest/src/digest"
	"github.com/VeryAmazed/Digest/src/minimizer"
)

// DefaultK, DefaultWindow and DefaultMod are the parameter defaults carried
// over from the original bindings: k=31, w=11, mod=100.
const (
	DefaultK      = 31
	DefaultWindow = 11
	DefaultMod    = 100
)

const rollBatch = 4096

// WindowMinimizer runs the window-minimizer scheme over seq with k-mer
// length k and window size w. positions is always returned; hashes is nil
// unless includeHash is set.
func WindowMinimizer(seq []byte, k, w uint, includeHash bool) (positions []uint32, hashes []uint32) {
	wm, err := minimizer.NewWindowMinimizer(seq, int(k), int(w), digestcore.SkipOver)
	if err != nil {
		return nil, nil
	}
	return rollAll(wm, includeHash)
}

// Modimizer runs the modulo-minimizer scheme over seq with k-mer length k,
// selecting every k-mer whose canonical hash is congruent to 0 modulo mod.
func Modimizer(seq []byte, k uint, mod uint64, includeHash bool) (positions []uint32, hashes []uint32) {
	mm, err := minimizer.NewModMinimizer(seq, int(k), mod, 0, digestcore.SkipOver)
	if err != nil {
		return nil, nil
	}
	return rollAll(mm, includeHash)
}

// Syncmer runs the syncmer scheme over seq with k-mer length k and window
// size w.
func Syncmer(seq []byte, k, w uint, includeHash bool) (positions []uint32, hashes []uint32) {
	s, err := minimizer.NewSyncmer(seq, int(k), int(w), digestcore.SkipOver)
	if err != nil {
		return nil, nil
	}
	return rollAll(s, includeHash)
}

type selector interface {
	RollMinimizer(amount int, out []uint32) int
	RollMinimizerWithHash(amount int, out []minimizer.PosHash) int
}

func rollAll(sel selector, includeHash bool) (positions []uint32, hashes []uint32) {
	if includeHash {
		buf := make([]minimizer.PosHash, rollBatch)
		for {
			n := sel.RollMinimizerWithHash(rollBatch, buf)
			for _, ph := range buf[:n] {
				positions = append(positions, ph.Pos)
				hashes = append(hashes, ph.Hash)
			}
			if n < rollBatch {
				break
			}
		}
		return positions, hashes
	}

	buf := make([]uint32, rollBatch)
	for {
		n := sel.RollMinimizer(rollBatch, buf)
		positions = append(positions, buf[:n]...)
		if n < rollBatch {
			break
		}
	}
	return positions, nil
}

// Package minimizer implements the three minimizer selection schemes built
// on top of src/digest's rolling k-mer stream: the modulo-minimizer, the
// window-minimizer and the syncmer. Each wraps a digest.Digester and a
// selection policy, and exposes the same streaming RollMinimizer /
// RollMinimizerWithHash contract.
package minimizer

// PosHash is a selected k-mer's position together with the low 32 bits of
// its minimized hash — the pairing the scripting-binding surface reports
// when a caller asks for hashes alongside positions.
type PosHash struct {
	Pos  uint32
	Hash uint32
}

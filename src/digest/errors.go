package digest

import "errors"

// The three synchronous, fatal-to-the-call error kinds raised by this
// package and by src/minimizer, which builds on it. All other conditions —
// bad bases, running off the end of a sequence, too little sequence to form
// a k-mer — are normal outcomes reflected by Valid() returning false, never
// an error.
var (
	// ErrBadConstruction is returned by New/NewSeq for an invalid k,
	// start, or minimized-hash selector.
	ErrBadConstruction = errors.New("digest: bad construction: invalid k, start, or minimized hash")

	// ErrNotRolledTillEnd is returned by AppendSeq when the digester has
	// not yet been rolled to the end of its current sequence.
	ErrNotRolledTillEnd = errors.New("digest: append_seq called before rolling to the end of the current sequence")

	// ErrBadMod is returned by the modulo-minimizer constructor when the
	// residue is not smaller than the modulus. Declared alongside the
	// other two error kinds even though only src/minimizer raises it.
	ErrBadMod = errors.New("digest: bad modulus: residue must be smaller than modulus")
)

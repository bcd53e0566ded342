package digest

// Policy selects how a digester treats a byte that is not one of ACGT.
// Chosen once at construction and dispatched once per base inside RollOne
// — runtime dispatch is fine at this call frequency.
type Policy int

const (
	// SkipOver abandons the k-mer under construction on the first bad
	// byte encountered and restarts scanning immediately after it.
	SkipOver Policy = iota
	// WriteOver rewrites a bad byte as 'A' wherever it is read for
	// hashing purposes, without mutating the caller's sequence. A
	// WriteOver digester never abandons a k-mer.
	WriteOver
)

// MinimizedHash selects which of the three hashes maintained for the
// current k-mer the selection layer (src/minimizer) should read.
type MinimizedHash int

const (
	Canon MinimizedHash = iota
	Forward
	Reverse
)

func validMinimizedHash(h MinimizedHash) bool {
	return h == Canon || h == Forward || h == Reverse
}

func isACGT(b byte) bool {
	switch b {
	case 'A', 'C', 'G', 'T', 'a', 'c', 'g', 't':
		return true
	default:
		return false
	}
}

func allACGT(seq []byte) bool {
	for _, b := range seq {
		if !isACGT(b) {
			return false
		}
	}
	return true
}

// baseFor returns the byte a digester should hash in place of b: b itself
// if it is ACGT, or 'A' otherwise. RollOne applies it under both policies;
// only a WriteOver digester ever passes it a bad byte — under SkipOver,
// every byte reaching this function is already known clean by invariant.
func baseFor(b byte) byte {
	if isACGT(b) {
		return b
	}
	return 'A'
}

// writeOverCopy returns seq with every non-ACGT byte rewritten to 'A',
// used to compute a fresh base hash under the WriteOver policy without
// mutating the caller's buffer.
func writeOverCopy(seq []byte) []byte {
	out := make([]byte, len(seq))
	for i, b := range seq {
		out[i] = baseFor(b)
	}
	return out
}

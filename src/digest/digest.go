// Package digest implements the rolling-hash k-mer digester: the core
// state machine that advances a k-mer forward one base at a time over a
// borrowed byte slice, maintaining its forward, reverse-complement and
// canonical ntHash under one of two bad-character policies, and letting a
// sequence be split across multiple append_seq calls without changing the
// hash/position stream the caller sees.
package digest

import "github.com/VeryAmazed/Digest/src/nthash"

// Digester is a single-threaded, strictly sequential k-mer scanner bound to
// a caller-owned byte slice. The slice is borrowed, not copied: the caller
// must keep it alive until the next NewSeq/AppendSeq call.
type Digester struct {
	seq    []byte
	offset uint32

	start int
	end   int
	carry []byte // ordered, oldest-first, len <= k (k only transiently, see AppendSeq)

	fhash, rhash, chash uint64
	valid               bool

	k          int
	minimizedH MinimizedHash
	policy     Policy
}

// New constructs a Digester bound to seq, scanning for the first valid
// k-mer at or after start. It never emits a k-mer — only init_hash runs,
// leaving the digester primed at the first valid k-mer if one exists.
func New(seq []byte, k int, start int, minimizedH MinimizedHash, policy Policy) (*Digester, error) {
	if k < 4 || start < 0 || start >= len(seq) || !validMinimizedHash(minimizedH) {
		return nil, ErrBadConstruction
	}
	d := &Digester{
		seq:        seq,
		k:          k,
		minimizedH: minimizedH,
		policy:     policy,
		carry:      make([]byte, 0, k),
	}
	d.initHash(start)
	return d, nil
}

// NewSeq rebinds the digester to a new, unrelated sequence: carry is
// discarded and the concatenated coordinate space restarts at zero.
func (d *Digester) NewSeq(seq []byte, start int) error {
	if start < 0 || start >= len(seq) {
		return ErrBadConstruction
	}
	d.seq = seq
	d.offset = 0
	d.carry = d.carry[:0]
	d.initHash(start)
	return nil
}

// AppendSeq joins the remainder of the current k-mer prefix (if any) with
// seq2, preserving the concatenated coordinate space. The caller must have
// rolled the current sequence to its end first.
func (d *Digester) AppendSeq(seq2 []byte) error {
	if d.end < len(d.seq) {
		return ErrNotRolledTillEnd
	}
	d.offset += uint32(len(d.seq))

	tail := d.trailingBytes()
	d.seq = seq2
	d.start, d.end = 0, 0
	d.carry = tail

	d.fillCarryFromFront()
	return nil
}

// RollOne advances to the next k-mer and reports whether a valid one was
// produced.
func (d *Digester) RollOne() bool {
	if d.end >= len(d.seq) {
		d.valid = false
		return false
	}
	raw := d.seq[d.end]
	if isACGT(raw) || d.policy == WriteOver {
		in := baseFor(raw)

		var outRaw byte
		if len(d.carry) > 0 {
			outRaw = d.carry[0]
			d.carry = d.carry[1:]
		} else {
			outRaw = d.seq[d.start]
			d.start++
		}
		out := baseFor(outRaw)

		d.fhash = nthash.NextForwardHash(d.fhash, uint(d.k), out, in)
		d.rhash = nthash.NextReverseHash(d.rhash, uint(d.k), out, in)
		d.end++
		d.chash = nthash.Canonical(d.fhash, d.rhash)
		d.valid = true
		return true
	}

	// SkipOver and a bad byte: abandon the current k-mer and restart the
	// search just past it.
	d.carry = d.carry[:0]
	return d.initHash(d.end + 1)
}

// initHash finds the smallest start' >= minStart such that a k-mer can be
// formed there (clean, under SkipOver; always, under WriteOver), computes
// its base hashes and marks the digester valid. It reports whether a valid
// k-mer was found.
func (d *Digester) initHash(minStart int) bool {
	for s := minStart; s+d.k <= len(d.seq); s++ {
		window := d.seq[s : s+d.k]
		if d.policy == SkipOver && !allACGT(window) {
			continue
		}
		d.start, d.end = s, s+d.k
		hashed := window
		if d.policy == WriteOver {
			hashed = writeOverCopy(window)
		}
		d.fhash = nthash.BaseForwardHash(hashed, uint(d.k))
		d.rhash = nthash.BaseReverseHash(hashed, uint(d.k))
		d.chash = nthash.Canonical(d.fhash, d.rhash)
		d.valid = true
		return true
	}
	d.start = minStart
	d.end = len(d.seq)
	d.valid = false
	return false
}

// trailingBytes returns up to k-1 clean bytes ending at the current end of
// the sequence, combining any still-unconsumed carry (which always
// precedes the current sequence in position order) with a backward scan
// over the sequence's tail.
func (d *Digester) trailingBytes() []byte {
	carry := d.carry
	if len(carry) == d.k {
		// A prior AppendSeq filled carry all the way to a full, unrolled
		// k-mer that was already reported as valid; its front byte was
		// already consumed by the caller reading that k-mer and must not
		// be folded into the next carry again.
		carry = carry[1:]
	}

	need := d.k - 1 - len(carry)
	if need < 0 {
		need = 0
	}
	fromSeq := make([]byte, 0, need)
	for i := len(d.seq) - 1; i >= 0 && len(fromSeq) < need; i-- {
		b := d.seq[i]
		if !isACGT(b) {
			if d.policy == WriteOver {
				b = 'A'
			} else {
				break
			}
		}
		fromSeq = append(fromSeq, b)
	}
	for i, j := 0, len(fromSeq)-1; i < j; i, j = i+1, j-1 {
		fromSeq[i], fromSeq[j] = fromSeq[j], fromSeq[i]
	}
	out := make([]byte, 0, len(carry)+len(fromSeq))
	out = append(out, carry...)
	out = append(out, fromSeq...)
	return out
}

// fillCarryFromFront pulls bytes from the front of the (already rebound)
// sequence into carry until it reaches length k, then computes base
// hashes over it. Under SkipOver, a bad byte forces carry to be dropped
// and the search to restart just past it via initHash.
func (d *Digester) fillCarryFromFront() {
	for len(d.carry) < d.k {
		if d.start >= len(d.seq) {
			d.end = d.start
			d.valid = false
			return
		}
		b := d.seq[d.start]
		if !isACGT(b) {
			if d.policy == WriteOver {
				b = 'A'
			} else {
				d.carry = d.carry[:0]
				d.initHash(d.start + 1)
				return
			}
		}
		d.carry = append(d.carry, b)
		d.start++
	}
	d.end = d.start
	d.fhash = nthash.BaseForwardHash(d.carry, uint(d.k))
	d.rhash = nthash.BaseReverseHash(d.carry, uint(d.k))
	d.chash = nthash.Canonical(d.fhash, d.rhash)
	d.valid = true
}

// Pos reports the concatenated coordinate of the current k-mer.
func (d *Digester) Pos() uint32 {
	return d.offset + uint32(d.start) - uint32(len(d.carry))
}

// Valid reports whether the current k-mer is fully formed from ACGT bases
// (post bad-char policy) and not yet advanced past the end of the stream.
func (d *Digester) Valid() bool { return d.valid }

// FHash returns the forward ntHash of the current k-mer.
func (d *Digester) FHash() uint64 { return d.fhash }

// RHash returns the reverse-complement ntHash of the current k-mer.
func (d *Digester) RHash() uint64 { return d.rhash }

// CHash returns the canonical ntHash of the current k-mer.
func (d *Digester) CHash() uint64 { return d.chash }

// MinimizedHash returns whichever of FHash/RHash/CHash this digester was
// constructed to select, for use by the selection layer.
func (d *Digester) MinimizedHash() uint64 {
	switch d.minimizedH {
	case Forward:
		return d.fhash
	case Reverse:
		return d.rhash
	default:
		return d.chash
	}
}

// K returns the k-mer length this digester was constructed with.
func (d *Digester) K() int { return d.k }

// Clone returns an independent copy of the digester: continuing to roll
// the clone produces the same remaining stream as continuing to roll the
// original, and the two no longer share any mutable state.
func (d *Digester) Clone() *Digester {
	c := *d
	c.carry = append([]byte(nil), d.carry...)
	return &c
}

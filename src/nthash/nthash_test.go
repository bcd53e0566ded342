package nthash

import (
	"testing"

	ntHash "github.com/will-rowe/ntHash"
)

// canonicalStream is a small helper that rolls a canonical hash across seq
// using only this package's primitives, the same way the digester will.
func canonicalStream(seq []byte, k uint) []uint64 {
	n := len(seq) - int(k) + 1
	if n <= 0 {
		return nil
	}
	out := make([]uint64, n)
	f := BaseForwardHash(seq, k)
	r := BaseReverseHash(seq, k)
	out[0] = Canonical(f, r)
	for i := 1; i < n; i++ {
		f = NextForwardHash(f, k, seq[i-1], seq[i-1+int(k)])
		r = NextReverseHash(r, k, seq[i-1], seq[i-1+int(k)])
		out[i] = Canonical(f, r)
	}
	return out
}

// TestAgainstWillRoweNtHash cross-checks the in-house rolling hash against
// github.com/will-rowe/ntHash's own canonical streaming output: the same
// number of canonical hashes, one per k-mer in sequence order, and the same
// value at every position.
func TestAgainstWillRoweNtHash(t *testing.T) {
	seq := []byte("ACGTACGTGGCATCGATCGATCGGGATCGATCGTAGCTAGCTACGATCG")
	k := uint(16)

	want := canonicalStream(seq, k)

	hasher, err := ntHash.New(&seq, k)
	if err != nil {
		t.Fatalf("could not construct reference ntHash: %v", err)
	}

	got := make([]uint64, 0, len(want))
	for hv := range hasher.Hash(true) {
		got = append(got, hv)
	}

	if len(got) != len(want) {
		t.Fatalf("hash stream length mismatch: reference produced %d, in-house produced %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("hash %d: in-house produced %d, reference produced %d", i, want[i], got[i])
		}
	}
}

func TestForwardReverseRollMatchesFreshHash(t *testing.T) {
	seq := []byte("CCGTGTACGTTGACCGGTTAACGTGTCA")
	k := uint(6)

	f := BaseForwardHash(seq, k)
	r := BaseReverseHash(seq, k)

	for pos := 1; pos+int(k) <= len(seq); pos++ {
		f = NextForwardHash(f, k, seq[pos-1], seq[pos-1+int(k)])
		r = NextReverseHash(r, k, seq[pos-1], seq[pos-1+int(k)])

		wantF := BaseForwardHash(seq[pos:pos+int(k)], k)
		wantR := BaseReverseHash(seq[pos:pos+int(k)], k)
		if f != wantF {
			t.Errorf("position %d: rolled forward hash %d != fresh forward hash %d", pos, f, wantF)
		}
		if r != wantR {
			t.Errorf("position %d: rolled reverse hash %d != fresh reverse hash %d", pos, r, wantR)
		}
	}
}

func TestCanonicalIsMinimum(t *testing.T) {
	cases := []struct{ f, r uint64 }{
		{1, 2}, {2, 1}, {5, 5}, {0, 18446744073709551615},
	}
	for _, c := range cases {
		want := c.f
		if c.r < c.f {
			want = c.r
		}
		if got := Canonical(c.f, c.r); got != want {
			t.Errorf("Canonical(%d, %d) = %d, want %d", c.f, c.r, got, want)
		}
	}
}

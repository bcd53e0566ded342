package shard

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/VeryAmazed/Digest/src/digest"
	"github.com/VeryAmazed/Digest/src/minimizer"
)

func randomDNA(rng *rand.Rand, n int) []byte {
	bases := []byte("ACGT")
	seq := make([]byte, n)
	for i := range seq {
		seq[i] = bases[rng.Intn(4)]
	}
	return seq
}

func TestPlanProducesContiguousOverlappingBoundaries(t *testing.T) {
	const seqLen, n, k, w = 100, 4, 5, 6
	shards := Plan(seqLen, n, k, w, WindowOverlap)

	if len(shards) != n {
		t.Fatalf("Plan() returned %d shards, want %d", len(shards), n)
	}
	if shards[0].Start != 0 {
		t.Errorf("first shard Start = %d, want 0", shards[0].Start)
	}
	if shards[len(shards)-1].Boundary != seqLen {
		t.Errorf("last shard Boundary = %d, want %d", shards[len(shards)-1].Boundary, seqLen)
	}
	if shards[len(shards)-1].End != seqLen {
		t.Errorf("last shard End = %d, want %d (no overlap past the end)", shards[len(shards)-1].End, seqLen)
	}
	for i, sh := range shards {
		if sh.Start >= sh.Boundary {
			t.Errorf("shard %d: Start %d >= Boundary %d", i, sh.Start, sh.Boundary)
		}
		if sh.End < sh.Boundary {
			t.Errorf("shard %d: End %d < Boundary %d", i, sh.End, sh.Boundary)
		}
		if i > 0 && sh.Start != shards[i-1].Boundary {
			t.Errorf("shard %d: Start %d does not pick up where shard %d's Boundary %d left off", i, sh.Start, i-1, shards[i-1].Boundary)
		}
		if i < len(shards)-1 {
			wantEnd := sh.Boundary + (k + w - 2)
			if wantEnd > seqLen {
				wantEnd = seqLen
			}
			if sh.End != wantEnd {
				t.Errorf("shard %d: End = %d, want %d (Boundary + window overlap)", i, sh.End, wantEnd)
			}
		}
	}
}

// TestRunShardedMatchesSinglePassForModMinimizer checks the modulo-minimizer
// case exactly: a modulo-minimizer judges every k-mer independently of its
// neighbours, so sharding with a k-1 overlap must reproduce precisely the
// same position stream a single pass over the whole sequence does.
func TestRunShardedMatchesSinglePassForModMinimizer(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	seq := randomDNA(rng, 500)
	const k, mod, res = 7, 5, 2

	ref, err := minimizer.NewModMinimizer(seq, k, mod, res, digest.SkipOver)
	if err != nil {
		t.Fatalf("NewModMinimizer() err = %v", err)
	}
	var want []uint32
	buf := make([]uint32, 64)
	for {
		n := ref.RollMinimizer(64, buf)
		want = append(want, buf[:n]...)
		if n < 64 {
			break
		}
	}

	shards := Plan(len(seq), 5, k, 0, ModuloOverlap)
	got, err := RunSharded(seq, shards, func(sub []byte, _ int) (Selector, error) {
		return minimizer.NewModMinimizer(sub, k, mod, res, digest.SkipOver)
	}, nil)
	if err != nil {
		t.Fatalf("RunSharded() err = %v", err)
	}

	if len(got) != len(want) {
		t.Fatalf("RunSharded() returned %d positions, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: got %d, want %d", i, got[i], want[i])
		}
	}
}

func TestRunShardedSingleShardMatchesUnsharded(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	seq := randomDNA(rng, 120)
	const k, w = 6, 5

	ref, err := minimizer.NewWindowMinimizer(seq, k, w, digest.SkipOver)
	if err != nil {
		t.Fatalf("NewWindowMinimizer() err = %v", err)
	}
	var want []uint32
	buf := make([]uint32, 64)
	for {
		n := ref.RollMinimizer(64, buf)
		want = append(want, buf[:n]...)
		if n < 64 {
			break
		}
	}

	shards := Plan(len(seq), 1, k, w, WindowOverlap)
	got, err := RunSharded(seq, shards, func(sub []byte, _ int) (Selector, error) {
		return minimizer.NewWindowMinimizer(sub, k, w, digest.SkipOver)
	}, nil)
	if err != nil {
		t.Fatalf("RunSharded() err = %v", err)
	}

	if len(got) != len(want) {
		t.Fatalf("single-shard RunSharded() returned %d positions, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: got %d, want %d", i, got[i], want[i])
		}
	}
}

func TestRunShardedPositionsAreSortedAndWithinBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	seq := randomDNA(rng, 400)
	const k, w = 6, 5

	shards := Plan(len(seq), 4, k, w, WindowOverlap)
	got, err := RunSharded(seq, shards, func(sub []byte, _ int) (Selector, error) {
		return minimizer.NewWindowMinimizer(sub, k, w, digest.SkipOver)
	}, nil)
	if err != nil {
		t.Fatalf("RunSharded() err = %v", err)
	}

	for i, p := range got {
		if int(p) < 0 || int(p)+k > len(seq) {
			t.Fatalf("position %d (index %d) is out of bounds for a %d-base sequence with k=%d", p, i, len(seq), k)
		}
		if i > 0 && got[i-1] > p {
			t.Errorf("positions out of order at index %d: %d then %d", i, got[i-1], p)
		}
	}
}

func TestRunShardedInvokesOnShardDoneOncePerShard(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	seq := randomDNA(rng, 300)
	const k, w = 6, 5

	shards := Plan(len(seq), 3, k, w, WindowOverlap)

	var mu sync.Mutex
	seen := map[int]int{}
	_, err := RunSharded(seq, shards, func(sub []byte, _ int) (Selector, error) {
		return minimizer.NewWindowMinimizer(sub, k, w, digest.SkipOver)
	}, func(shardIdx int) {
		mu.Lock()
		seen[shardIdx]++
		mu.Unlock()
	})
	if err != nil {
		t.Fatalf("RunSharded() err = %v", err)
	}
	if len(seen) != len(shards) {
		t.Fatalf("onShardDone fired for %d distinct shards, want %d", len(seen), len(shards))
	}
	for i, count := range seen {
		if count != 1 {
			t.Errorf("shard %d: onShardDone fired %d times, want 1", i, count)
		}
	}
}

// Package shard implements the thread shard planner (component G): it
// splits a sequence into overlapping byte ranges so that running an
// independent digester + selector per shard, in its own goroutine,
// reproduces exactly the minimizer stream a single pass over the whole
// sequence would produce.
package shard

import "sync"

// OverlapKind selects how much trailing overlap a shard boundary needs to
// carry so the earlier shard can independently reconstruct every k-mer that
// straddles the boundary.
type OverlapKind int

const (
	// ModuloOverlap is the overlap a modulo-minimizer needs: k-1 bases, so
	// every k-mer ending in one shard and starting in the territory of the
	// next is still seen whole by the earlier shard.
	ModuloOverlap OverlapKind = iota
	// WindowOverlap is the overlap a window-minimizer or syncmer needs:
	// k+w-2 bases, covering the last full window of k-mers before the
	// boundary.
	WindowOverlap
)

func overlapFor(kind OverlapKind, k, w int) int {
	switch kind {
	case WindowOverlap:
		return k + w - 2
	default:
		return k - 1
	}
}

// Shard describes one goroutine's work: Start..End is the byte range fed to
// its digester (including the trailing overlap borrowed from the next
// shard's territory), while Boundary is the exclusive position past which
// this shard must not report a k-mer — that territory belongs to the next
// shard, which starts fresh there and has the overlap bytes to reconstruct
// the k-mers this shard would otherwise have clipped.
type Shard struct {
	Start    int
	Boundary int
	End      int
}

// Plan divides a sequence of length seqLen into n shards, sized evenly with
// Boundary cuts, and widens every non-final shard's End by the overlap the
// given selection scheme needs.
func Plan(seqLen, n, k, w int, kind OverlapKind) []Shard {
	if n < 1 {
		n = 1
	}
	overlap := overlapFor(kind, k, w)

	shards := make([]Shard, 0, n)
	base := seqLen / n
	start := 0
	for i := 0; i < n; i++ {
		boundary := start + base
		if i == n-1 {
			boundary = seqLen
		}
		end := boundary
		if i < n-1 {
			end += overlap
			if end > seqLen {
				end = seqLen
			}
		}
		shards = append(shards, Shard{Start: start, Boundary: boundary, End: end})
		start = boundary
	}
	return shards
}

// Selector is the streaming contract src/minimizer's three selectors all
// satisfy: roll up to amount selections into out, returning how many were
// written.
type Selector interface {
	RollMinimizer(amount int, out []uint32) int
}

const batchSize = 4096

// RunSharded runs one goroutine per shard, each constructing an independent
// selector over seq[sh.Start:sh.End] via newSelector and rolling it to
// completion, suppressing any reported position >= sh.Boundary (the next
// shard, or the overlap tail on the last shard, owns those k-mers).
// Results are concatenated in shard order once every goroutine has finished — no
// shared mutable state is touched while goroutines are running.
func RunSharded(seq []byte, shards []Shard, newSelector func(sub []byte, shardIdx int) (Selector, error), onShardDone func(shardIdx int)) ([]uint32, error) {
	results := make([][]uint32, len(shards))
	errs := make([]error, len(shards))

	var wg sync.WaitGroup
	wg.Add(len(shards))
	for i, sh := range shards {
		i, sh := i, sh
		go func() {
			defer wg.Done()
			results[i], errs[i] = runOneShard(seq[sh.Start:sh.End], sh, newSelector, i)
			if onShardDone != nil {
				onShardDone(i)
			}
		}()
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	var out []uint32
	for _, r := range results {
		out = append(out, r...)
	}
	return out, nil
}

func runOneShard(sub []byte, sh Shard, newSelector func(sub []byte, shardIdx int) (Selector, error), shardIdx int) ([]uint32, error) {
	sel, err := newSelector(sub, shardIdx)
	if err != nil {
		return nil, err
	}

	var positions []uint32
	buf := make([]uint32, batchSize)
	for {
		n := sel.RollMinimizer(batchSize, buf)
		for _, localPos := range buf[:n] {
			globalPos := localPos + uint32(sh.Start)
			if int(globalPos) < sh.Boundary {
				positions = append(positions, globalPos)
			}
		}
		if n < batchSize {
			break
		}
	}
	return positions, nil
}

package window

// Naive2 is a window-minimum buffer that maintains a running minimum
// incrementally: when an insert causes no eviction it only has to compare
// the new entry against the cached minimum, and even when an insert evicts
// the oldest entry it only has to rescan if the evicted entry *was* the
// cached minimum.
type Naive2 struct {
	n       int
	ring    []Entry
	head    int
	count   int
	best    Entry
	bestSet bool
	newest  Entry
}

// NewNaive2 constructs a Naive2 window buffer of capacity n.
func NewNaive2(n int) *Naive2 {
	return &Naive2{n: n, ring: make([]Entry, n)}
}

func (b *Naive2) Insert(hash uint64, pos uint32) {
	e := Entry{Hash: hash, Pos: pos}

	var evicted Entry
	evicting := b.count == b.n
	if evicting {
		evicted = b.ring[b.head]
		idx := b.head
		b.head = (b.head + 1) % b.n
		b.ring[idx] = e
	} else {
		idx := (b.head + b.count) % b.n
		b.ring[idx] = e
		b.count++
	}
	b.newest = e

	switch {
	case !b.bestSet:
		b.best = e
		b.bestSet = true
	case evicting && evicted == b.best:
		b.best = b.rescan()
	case less(e, b.best):
		b.best = e
	}
}

func (b *Naive2) rescan() Entry {
	best := b.ring[b.head]
	for i := 1; i < b.count; i++ {
		e := b.ring[(b.head+i)%b.n]
		if less(e, best) {
			best = e
		}
	}
	return best
}

func (b *Naive2) Min() Entry {
	return b.best
}

func (b *Naive2) MinSyncmer() (Entry, bool) {
	atBoundary := b.best == b.ring[b.head] || b.best == b.newest
	return b.best, atBoundary
}

func (b *Naive2) Oldest() Entry {
	return b.ring[b.head]
}

func (b *Naive2) Reset() {
	b.head, b.count = 0, 0
	b.bestSet = false
	b.best, b.newest = Entry{}, Entry{}
}

func (b *Naive2) Size() int {
	return b.count
}

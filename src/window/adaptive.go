package window

// adaptiveThreshold is the window size above which Adaptive prefers the
// O(log N) SegmentTree over the linear-scan Naive2: below it, the constant
// factor of a scan beats the bookkeeping of a tree.
const adaptiveThreshold = 64

// Adaptive picks a scan-based or tree-based buffer depending on the window
// size requested at construction, and otherwise just delegates.
type Adaptive struct {
	impl Buffer
}

// NewAdaptive constructs an Adaptive window buffer of capacity n.
func NewAdaptive(n int) *Adaptive {
	if n > adaptiveThreshold {
		return &Adaptive{impl: NewSegmentTree(n)}
	}
	return &Adaptive{impl: NewNaive2(n)}
}

func (a *Adaptive) Insert(hash uint64, pos uint32) { a.impl.Insert(hash, pos) }
func (a *Adaptive) Min() Entry                     { return a.impl.Min() }
func (a *Adaptive) MinSyncmer() (Entry, bool)      { return a.impl.MinSyncmer() }
func (a *Adaptive) Oldest() Entry                  { return a.impl.Oldest() }
func (a *Adaptive) Reset()                         { a.impl.Reset() }
func (a *Adaptive) Size() int                      { return a.impl.Size() }

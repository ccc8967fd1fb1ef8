// Package frontier implements spec §3/§4.3's priority-ordered frontier: a
// min-heap of candidate nodes keyed by the search driver's compare function,
// supporting insert, pop-best, bounded pruning, and a foreach-destroy drain.
//
// Grounded on the pack's own container/heap worked example
// (axiomhq-fsst/train.go's qsymHeap): a bounded top-K min-heap with a
// tie-break comparator, built on the standard library's container/heap —
// no third-party priority-queue package appears anywhere in the pack, so
// this is the one ambient-stack case where stdlib is the idiomatic choice,
// not a fallback.
package frontier

import (
	"container/heap"
	"sort"

	"github.com/rawblock/cipherforge/internal/models"
)

// compare implements spec §4.3's compare function: primary key is the
// depth-normalized score (higher first), tie-break is higher cumulative
// fitness (prefers deeper paths at equal average). Returns true if a sorts
// strictly before b (a is the better candidate).
func compare(a, b *models.CandidateNode) bool {
	sa, sb := a.Score(), b.Score()
	if sa != sb {
		return sa > sb
	}
	return a.CumulativeFitness > b.CumulativeFitness
}

// Frontier is a heap.Interface implementation over candidate nodes.
type Frontier struct {
	nodes []*models.CandidateNode
}

// New returns a heap-initialized frontier whose only entry is root.
func New(root *models.CandidateNode) *Frontier {
	f := &Frontier{nodes: []*models.CandidateNode{root}}
	heap.Init(f)
	return f
}

func (f *Frontier) Len() int { return len(f.nodes) }

func (f *Frontier) Less(i, j int) bool { return compare(f.nodes[i], f.nodes[j]) }

func (f *Frontier) Swap(i, j int) { f.nodes[i], f.nodes[j] = f.nodes[j], f.nodes[i] }

// Push and Pop satisfy heap.Interface; use Insert/PopBest to drive the
// frontier instead of calling these directly.
func (f *Frontier) Push(x any) {
	f.nodes = append(f.nodes, x.(*models.CandidateNode))
}

func (f *Frontier) Pop() any {
	old := f.nodes
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	f.nodes = old[:n-1]
	return item
}

// Insert admits a new candidate into the frontier.
func (f *Frontier) Insert(n *models.CandidateNode) {
	heap.Push(f, n)
}

// PopBest removes and returns the single best-ranked candidate. Ownership
// of the node transfers to the caller.
func (f *Frontier) PopBest() *models.CandidateNode {
	if f.Len() == 0 {
		return nil
	}
	return heap.Pop(f).(*models.CandidateNode)
}

// Size reports the number of queued candidates.
func (f *Frontier) Size() int { return f.Len() }

// Prune implements spec §4.3 step 9: when the frontier exceeds maxSize,
// sort the backing slice by compare, keep the top maxSize entries, and
// discard the rest, re-establishing the heap invariant.
func (f *Frontier) Prune(maxSize int) {
	if maxSize <= 0 || f.Len() <= maxSize {
		return
	}
	sort.Slice(f.nodes, func(i, j int) bool { return compare(f.nodes[i], f.nodes[j]) })
	f.nodes = f.nodes[:maxSize]
	heap.Init(f)
}

// Destroy drains every remaining node, per spec §4.3's termination step
// ("drain the frontier: destroy every remaining node's data"). In a
// garbage-collected runtime this is a no-op beyond releasing the slice, but
// it keeps the same explicit lifecycle step the driver expects to call.
func (f *Frontier) Destroy() {
	f.nodes = nil
}

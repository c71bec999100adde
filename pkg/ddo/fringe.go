package ddo

import "container/heap"

// Fringe is the priority queue of open sub-problems driving the outer
// branch-and-bound search.
type Fringe[S comparable] interface {
	Push(sub SubProblem[S])
	Pop() (SubProblem[S], bool)
	Clear()
	Len() int
}

// subProblemHeap adapts a slice of sub-problems to container/heap, ordering
// them so that the one with the highest priority (per SubProblemRanking)
// is always at the root — the idiomatic Go analogue of a binary-heap-backed
// priority queue, following the same container/heap.Interface shape used
// throughout the reference corpus (e.g. lvlath's dijkstra priority queue).
type subProblemHeap[S comparable] struct {
	items []SubProblem[S]
	order SubProblemRanking[S]
}

func (h subProblemHeap[S]) Len() int { return len(h.items) }

func (h subProblemHeap[S]) Less(i, j int) bool {
	// container/heap maintains a min-heap on Less; since we want the most
	// promising sub-problem to pop first, invert the comparator.
	return h.order.Compare(&h.items[i], &h.items[j]) > 0
}

func (h subProblemHeap[S]) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *subProblemHeap[S]) Push(x any) {
	h.items = append(h.items, x.(SubProblem[S]))
}

func (h *subProblemHeap[S]) Pop() any {
	old := h.items
	n := len(old)
	item := old[n-1]
	h.items = old[:n-1]
	return item
}

// SimpleFringe is the simplest fringe implementation: a binary heap that
// pushes and pops sub-problems ordered by (UB desc, Value desc, state
// ranking desc). It is the Solver's default fringe.
type SimpleFringe[S comparable] struct {
	h *subProblemHeap[S]
}

// NewSimpleFringe creates a fringe ordered with MaxUB(order).
func NewSimpleFringe[S comparable](order StateRanking[S]) *SimpleFringe[S] {
	return NewSimpleFringeWithRanking[S](MaxUB[S]{States: order})
}

// NewSimpleFringeWithRanking creates a fringe with a custom sub-problem
// ranking, for callers who want something other than MaxUB.
func NewSimpleFringeWithRanking[S comparable](order SubProblemRanking[S]) *SimpleFringe[S] {
	h := &subProblemHeap[S]{order: order}
	heap.Init(h)
	return &SimpleFringe[S]{h: h}
}

func (f *SimpleFringe[S]) Push(sub SubProblem[S]) {
	heap.Push(f.h, sub)
}

func (f *SimpleFringe[S]) Pop() (SubProblem[S], bool) {
	if f.h.Len() == 0 {
		var zero SubProblem[S]
		return zero, false
	}
	return heap.Pop(f.h).(SubProblem[S]), true
}

func (f *SimpleFringe[S]) Clear() {
	f.h.items = f.h.items[:0]
}

func (f *SimpleFringe[S]) Len() int { return f.h.Len() }

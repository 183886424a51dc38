package nfa

import (
	"sort"

	"github.com/kanucool/Regex-Engine/internal/sparse"
)

// Expander computes epsilon closures ("set expansion") over an NFA: given a
// seed list of state handles, possibly containing SPLITs and duplicates, it
// produces the canonical set described in spec §4.3 — every SPLIT replaced
// by its successors transitively, sorted and deduplicated.
//
// An Expander holds scratch buffers (visited-set, explicit stack, output
// buffer) that are reused across calls for allocation amortization; it is
// not safe for concurrent use.
type Expander struct {
	visited *sparse.SparseSet // SPLIT states already expanded, this call
	added   *sparse.SparseSet // non-SPLIT states already placed in the output
	work    []StateID         // explicit stack, replaces recursion
	out     []StateID
}

// NewExpander returns an Expander whose scratch buffers are sized for an
// NFA with up to capacity states.
func NewExpander(capacity uint32) *Expander {
	return &Expander{
		visited: sparse.NewSparseSet(capacity),
		added:   sparse.NewSparseSet(capacity),
		work:    make([]StateID, 0, 16),
		out:     make([]StateID, 0, 16),
	}
}

// Expand returns the canonical epsilon closure of seeds within n: a sorted,
// deduplicated slice of non-SPLIT state IDs. The returned slice is owned by
// the Expander and is overwritten by the next call; callers that need to
// retain it must copy.
func (e *Expander) Expand(n *NFA, seeds []StateID) []StateID {
	e.visited.Clear()
	e.added.Clear()
	e.work = e.work[:0]
	e.out = e.out[:0]

	for i := len(seeds) - 1; i >= 0; i-- {
		e.work = append(e.work, seeds[i])
	}

	for len(e.work) > 0 {
		id := e.work[len(e.work)-1]
		e.work = e.work[:len(e.work)-1]

		s := n.State(id)
		if s.Kind == Split {
			if e.visited.Contains(uint32(id)) {
				continue
			}
			e.visited.Insert(uint32(id))
			e.work = append(e.work, s.Out, s.Out2)
			continue
		}

		if e.added.Contains(uint32(id)) {
			continue
		}
		e.added.Insert(uint32(id))
		e.out = append(e.out, id)
	}

	sort.Slice(e.out, func(i, j int) bool { return e.out[i] < e.out[j] })
	return e.out
}

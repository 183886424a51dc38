package dfa

import (
	"hash/fnv"

	"github.com/kanucool/Regex-Engine/nfa"
)

// StateID indexes a State within a DFA's arena.
type StateID uint32

// InvalidState marks the absence of a DFA state, used for the null-NFA
// degenerate case (spec §4.6 "special case: if start is null").
const InvalidState StateID = 0xFFFFFFFF

// Neighbor is one outgoing transition: bytes in [Lo, Hi] advance to Next.
// A state's Neighbors slice is kept sorted by Lo and pairwise disjoint, so
// the evaluator can binary-search it.
type Neighbor struct {
	Lo, Hi byte
	Next   StateID
}

// State is a single DFA state: the NFA state-set it represents (retained
// so computeTransitions can (re)compute transitions), whether it accepts, and
// its outgoing transitions once computed.
type State struct {
	NFASet    []nfa.StateID
	IsMatch   bool
	Neighbors []Neighbor
	Processed bool
}

// StateKey hash-conses an NFA state-set to a DFA state: two sets with equal
// canonical form (already sorted and deduplicated by nfa.Expander) must
// produce the same key, per spec §4.4/§9.
type StateKey uint64

// computeStateKey hashes set (assumed already in nfa.Expander's canonical
// sorted-deduplicated form) with FNV-1a, matching the mixing strategy spec
// §9 recommends to avoid pathological collisions on adjacent arena indices.
func computeStateKey(set []nfa.StateID) StateKey {
	h := fnv.New64a()
	for _, id := range set {
		_, _ = h.Write([]byte{
			byte(id),
			byte(id >> 8),
			byte(id >> 16),
			byte(id >> 24),
		})
	}
	return StateKey(h.Sum64())
}

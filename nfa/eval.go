package nfa

import "github.com/kanucool/Regex-Engine/internal/conv"

// Evaluator walks an NFA by maintaining a current state-set and stepping it
// byte by byte, expanding epsilons before and after each step. Reference
// implementation and fallback per spec §4.7; the DFA evaluator is the fast
// path.
//
// Not safe for concurrent use: Evaluator owns scratch buffers (via its
// Expander) that are reused across Matches calls.
type Evaluator struct {
	expander *Expander
	current  []StateID
	next     []StateID
}

// NewEvaluator returns an Evaluator with scratch buffers sized for n.
func NewEvaluator(n *NFA) *Evaluator {
	return &Evaluator{
		expander: NewExpander(conv.IntToUint32(len(n.States)) + 1),
		current:  make([]StateID, 0, 16),
		next:     make([]StateID, 0, 16),
	}
}

// Matches reports whether candidate is accepted by n, per spec §4.7: empty
// NFA accepts iff candidate is empty; otherwise walk the state-set,
// expanding epsilons, and accept iff a MATCH state is present after the
// final expansion.
func (ev *Evaluator) Matches(n *NFA, candidate []byte) bool {
	if n.IsNull() {
		return len(candidate) == 0
	}

	ev.current = append(ev.current[:0], ev.expander.Expand(n, []StateID{n.Start})...)

	for _, c := range candidate {
		ev.next = ev.next[:0]
		for _, id := range ev.current {
			s := n.State(id)
			if s.Kind == Match {
				continue
			}
			if s.Matches(c) {
				ev.next = append(ev.next, s.Out)
			}
		}
		ev.current = append(ev.current[:0], ev.expander.Expand(n, ev.next)...)
		if len(ev.current) == 0 {
			return false
		}
	}

	for _, id := range ev.current {
		if n.State(id).Kind == Match {
			return true
		}
	}
	return false
}

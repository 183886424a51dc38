// Package nfa builds and evaluates a Thompson-construction NFA over a
// postfix token stream, and exposes the epsilon-closure ("set expander")
// used by the DFA subset constructor.
package nfa

import (
	"fmt"

	"github.com/kanucool/Regex-Engine/token"
)

// StateID indexes a State within an NFA's arena. It is a non-owning
// handle: states reference each other by StateID, never by pointer, so the
// arena can grow (and cycles from star/plus back-edges are ordinary data).
type StateID uint32

// InvalidState marks the absence of a state, e.g. an NFA with no states at
// all (a null/empty pattern).
const InvalidState StateID = 0xFFFFFFFF

// Kind tags which fields of a State are meaningful.
type Kind uint8

const (
	// Literal matches exactly one byte and transitions to Out.
	Literal Kind = iota
	// Wildcard matches any byte and transitions to Out.
	Wildcard
	// Ranges matches any byte in Intervals and transitions to Out.
	Ranges
	// Split is an epsilon transition to two successors, Out and Out2.
	Split
	// Match is the terminal accepting state; it has no outgoing transitions.
	Match
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case Literal:
		return "LITERAL"
	case Wildcard:
		return "WILDCARD"
	case Ranges:
		return "RANGES"
	case Split:
		return "SPLIT"
	case Match:
		return "MATCH"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// State is a single NFA node. Only the fields relevant to Kind are
// meaningful:
//
//	Literal:  Byte, Out
//	Wildcard: Out
//	Ranges:   Intervals, Out
//	Split:    Out, Out2
//	Match:    (none)
type State struct {
	Kind      Kind
	Byte      byte
	Intervals []token.Interval
	Out       StateID
	Out2      StateID
}

// Matches reports whether this state's transition fires on byte c. Panics
// if called on a Split or Match state, which have no byte-consuming
// transition.
func (s *State) Matches(c byte) bool {
	switch s.Kind {
	case Literal:
		return c == s.Byte
	case Wildcard:
		return true
	case Ranges:
		for _, iv := range s.Intervals {
			if c >= iv.Lo && c <= iv.Hi {
				return true
			}
		}
		return false
	default:
		panic("nfa: Matches called on a non-byte-consuming state")
	}
}

// NFA is an arena of States plus a start handle. States are never removed;
// the arena's lifetime is the NFA's lifetime.
type NFA struct {
	States []State
	Start  StateID
}

// State returns a pointer into the arena for id. Callers must not retain
// it across further arena growth (append may reallocate); within a single
// build or evaluation pass this is never an issue since the NFA is
// immutable once Build returns.
func (n *NFA) State(id StateID) *State {
	return &n.States[id]
}

// IsNull reports whether the NFA has no states, the degenerate case of an
// empty postfix stream. Translate produces one for the fully anchored empty
// pattern "^$"; an unanchored empty pattern is wrapped in .* and is not
// null. Evaluators accept only the empty candidate here, per spec §4.6/§4.7.
func (n *NFA) IsNull() bool {
	return len(n.States) == 0
}

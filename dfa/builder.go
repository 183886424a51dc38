// Package dfa subset-constructs a deterministic automaton from an NFA,
// either eagerly (full worklist drain at build time) or lazily (states
// filled on demand during evaluation), sharing one transition-computation
// path built on the generic interval reconciler.
package dfa

import (
	"sort"

	"github.com/kanucool/Regex-Engine/internal/conv"
	"github.com/kanucool/Regex-Engine/internal/reconcile"
	"github.com/kanucool/Regex-Engine/nfa"
)

// DFA is an arena of States hash-consed by their underlying NFA state-set,
// plus the scratch Expander used to compute successor sets on demand.
type DFA struct {
	n        *nfa.NFA
	cfg      Config
	states   []State
	cache    map[StateKey]StateID
	expander *nfa.Expander

	// Start is the DFA's initial state, or InvalidState for a null NFA
	// (spec §4.6's "start is null" special case).
	Start StateID
}

func newDFA(n *nfa.NFA, cfg Config) *DFA {
	return &DFA{
		n:        n,
		cfg:      cfg,
		states:   make([]State, 0, 64),
		cache:    make(map[StateKey]StateID, 64),
		expander: nfa.NewExpander(conv.IntToUint32(len(n.States)) + 1),
	}
}

// getOrCreate hash-conses set to a DFA state, allocating a new one if this
// canonical set has not been seen before. set must already be in
// nfa.Expander's canonical (sorted, deduplicated) form.
func (d *DFA) getOrCreate(set []nfa.StateID) (StateID, error) {
	key := computeStateKey(set)
	if id, ok := d.cache[key]; ok {
		return id, nil
	}
	if d.cfg.MaxStates != 0 && conv.IntToUint32(len(d.states)) >= d.cfg.MaxStates {
		return InvalidState, newBuildError(TooManyStates, "DFA state cap reached during construction")
	}

	isMatch := false
	for _, id := range set {
		if d.n.State(id).Kind == nfa.Match {
			isMatch = true
			break
		}
	}

	id := StateID(len(d.states))
	d.states = append(d.states, State{
		NFASet:  append([]nfa.StateID(nil), set...),
		IsMatch: isMatch,
	})
	d.cache[key] = id
	return id, nil
}

// computeTransitions fills in id's Neighbors by collecting interval claims
// from its NFA state-set and feeding them to the reconciler, per spec §4.4.
func (d *DFA) computeTransitions(id StateID) error {
	set := d.states[id].NFASet

	claims := make([]reconcile.Claim[nfa.StateID], 0, len(set))
	for _, sid := range set {
		s := d.n.State(sid)
		switch s.Kind {
		case nfa.Literal:
			claims = append(claims, reconcile.Claim[nfa.StateID]{Lo: s.Byte, Hi: s.Byte, Item: s.Out})
		case nfa.Wildcard:
			claims = append(claims, reconcile.Claim[nfa.StateID]{Lo: 0, Hi: 255, Item: s.Out})
		case nfa.Ranges:
			for _, iv := range s.Intervals {
				claims = append(claims, reconcile.Claim[nfa.StateID]{Lo: iv.Lo, Hi: iv.Hi, Item: s.Out})
			}
		case nfa.Match:
			// Already folded into IsMatch when the state was created.
		}
	}

	triples := reconcile.Reconcile(claims)
	neighbors := make([]Neighbor, 0, len(triples))
	for _, tr := range triples {
		successor := append([]nfa.StateID(nil), d.expander.Expand(d.n, tr.Items)...)
		nextID, err := d.getOrCreate(successor)
		if err != nil {
			return err
		}
		neighbors = append(neighbors, Neighbor{Lo: tr.Lo, Hi: tr.Hi, Next: nextID})
	}
	sort.Slice(neighbors, func(i, j int) bool { return neighbors[i].Lo < neighbors[j].Lo })

	d.states[id].Neighbors = neighbors
	d.states[id].Processed = true
	return nil
}

// newlyCreatedFrom returns the StateIDs allocated since watermark, in
// allocation order — used by BuildEager to enqueue successors without a
// separate "created" signal threaded through getOrCreate.
func (d *DFA) newlyCreatedFrom(watermark int) []StateID {
	if watermark >= len(d.states) {
		return nil
	}
	ids := make([]StateID, 0, len(d.states)-watermark)
	for i := watermark; i < len(d.states); i++ {
		ids = append(ids, StateID(i))
	}
	return ids
}

// BuildEager fully subset-constructs the DFA via a worklist drain: every
// reachable state is processed before BuildEager returns.
func BuildEager(n *nfa.NFA, cfg Config) (*DFA, error) {
	if err := cfg.Validate(); err != nil {
		return nil, newBuildError(InvalidConfig, err.Error())
	}

	d := newDFA(n, cfg)
	if n.IsNull() {
		d.Start = InvalidState
		return d, nil
	}

	startSet := append([]nfa.StateID(nil), d.expander.Expand(n, []nfa.StateID{n.Start})...)
	startID, err := d.getOrCreate(startSet)
	if err != nil {
		return nil, err
	}
	d.Start = startID

	worklist := []StateID{startID}
	for len(worklist) > 0 {
		id := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		watermark := len(d.states)
		if err := d.computeTransitions(id); err != nil {
			return nil, err
		}
		worklist = append(worklist, d.newlyCreatedFrom(watermark)...)
	}

	return d, nil
}

// BuildLazy allocates only the start state (unprocessed) and returns
// immediately; the evaluator fills neighbors on demand via EnsureProcessed.
func BuildLazy(n *nfa.NFA, cfg Config) (*DFA, error) {
	if err := cfg.Validate(); err != nil {
		return nil, newBuildError(InvalidConfig, err.Error())
	}

	d := newDFA(n, cfg)
	if n.IsNull() {
		d.Start = InvalidState
		return d, nil
	}

	startSet := append([]nfa.StateID(nil), d.expander.Expand(n, []nfa.StateID{n.Start})...)
	startID, err := d.getOrCreate(startSet)
	if err != nil {
		return nil, err
	}
	d.Start = startID
	return d, nil
}

// EnsureProcessed computes id's transitions if they have not been computed
// yet. Safe to call on an already-processed state (no-op).
func (d *DFA) EnsureProcessed(id StateID) error {
	if d.states[id].Processed {
		return nil
	}
	return d.computeTransitions(id)
}

// IsMatch reports whether id is an accepting state.
func (d *DFA) IsMatch(id StateID) bool {
	return d.states[id].IsMatch
}

// AllProcessed reports whether every state currently in the arena has been
// processed. Always true after BuildEager; a lazy DFA usually also holds
// successor states that no walk has entered yet, which are unprocessed.
func (d *DFA) AllProcessed() bool {
	for i := range d.states {
		if !d.states[i].Processed {
			return false
		}
	}
	return true
}

// StateCount returns the number of states currently allocated.
func (d *DFA) StateCount() int {
	return len(d.states)
}

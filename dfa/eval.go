package dfa

import "sort"

// Matches walks candidate through the DFA, computing transitions on demand
// for any unprocessed state (the lazy mode's defining behavior; under
// eager mode every reachable state is already processed so this is a
// no-op check). Binary-searches each state's sorted Neighbors for the
// interval containing the current byte.
//
// If the state cap (Config.MaxStates) is hit while filling a state mid-walk
// — only reachable in lazy mode, since eager construction would have
// already failed at build time — Matches conservatively reports false
// rather than widening the public API with an error return; this module's
// public façade promises evaluation is total over bool per spec §7.
func (d *DFA) Matches(candidate []byte) bool {
	if d.Start == InvalidState {
		return len(candidate) == 0
	}

	cur := d.Start
	for _, c := range candidate {
		if err := d.EnsureProcessed(cur); err != nil {
			return false
		}
		next, ok := d.step(cur, c)
		if !ok {
			return false
		}
		cur = next
	}

	if err := d.EnsureProcessed(cur); err != nil {
		return false
	}
	return d.states[cur].IsMatch
}

// step binary-searches cur's neighbors for the interval containing c.
func (d *DFA) step(cur StateID, c byte) (StateID, bool) {
	ns := d.states[cur].Neighbors
	i := sort.Search(len(ns), func(i int) bool { return ns[i].Hi >= c })
	if i == len(ns) || c < ns[i].Lo {
		return InvalidState, false
	}
	return ns[i].Next, true
}

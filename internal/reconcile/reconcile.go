// Package reconcile implements a sweep-line algorithm over interval
// endpoints: given overlapping (lo, hi, item) claims, it produces the
// disjoint, interval-minimal partition where each output interval records
// every item whose claim covers it.
package reconcile

import "sort"

// Claim is one input interval over the key domain [Lo, Hi] (inclusive),
// tagged with the item it belongs to.
type Claim[T any] struct {
	Lo, Hi byte
	Item   T
}

// Interval is one disjoint output interval, covering [Lo, Hi] (inclusive),
// together with every item whose Claim covers this range.
type Interval[T any] struct {
	Lo, Hi byte
	Items  []T
}

// eventKind orders same-point events: ADD before REMOVE, per §4.5 step 2
// ("implementers must choose a deterministic tie-break and document it").
// Every event at a point is applied before the next interval is flushed, so
// the tie-break does not change the output; it only fixes the event order.
type eventKind uint8

const (
	eventAdd eventKind = iota
	eventRemove
)

type event struct {
	point int // Lo for ADD, Hi+1 for REMOVE; widened to int to avoid byte overflow at 0xFF+1
	kind  eventKind
	index int
}

// Reconcile partitions claims into disjoint, sorted, interval-minimal
// triples covering exactly the union of input intervals. At every boundary
// the active-item set changes or a gap begins. Ties among events at the
// same point are broken by (kind, index): ADD before REMOVE, then by the
// claim's original position in claims, making the output deterministic for
// a given input order.
func Reconcile[T any](claims []Claim[T]) []Interval[T] {
	if len(claims) == 0 {
		return nil
	}

	events := make([]event, 0, len(claims)*2)
	for i, c := range claims {
		events = append(events, event{point: int(c.Lo), kind: eventAdd, index: i})
		events = append(events, event{point: int(c.Hi) + 1, kind: eventRemove, index: i})
	}

	sort.Slice(events, func(i, j int) bool {
		if events[i].point != events[j].point {
			return events[i].point < events[j].point
		}
		if events[i].kind != events[j].kind {
			return events[i].kind == eventAdd
		}
		return events[i].index < events[j].index
	})

	freqs := make([]int, len(claims))
	active := make([]bool, len(claims)) // active[i]: claim i currently has freqs[i] > 0
	activeCount := 0

	var out []Interval[T]
	prevPoint := events[0].point

	flush := func(endExclusive int) {
		if activeCount == 0 || endExclusive <= prevPoint {
			return
		}
		items := make([]T, 0, activeCount)
		for i, on := range active {
			if on {
				items = append(items, claims[i].Item)
			}
		}
		out = append(out, Interval[T]{
			Lo:    byte(prevPoint),
			Hi:    byte(endExclusive - 1),
			Items: items,
		})
	}

	i := 0
	for i < len(events) {
		point := events[i].point
		flush(point)

		for i < len(events) && events[i].point == point {
			e := events[i]
			switch e.kind {
			case eventAdd:
				if freqs[e.index] == 0 {
					active[e.index] = true
					activeCount++
				}
				freqs[e.index]++
			case eventRemove:
				freqs[e.index]--
				if freqs[e.index] == 0 {
					active[e.index] = false
					activeCount--
				}
			}
			i++
		}
		prevPoint = point
	}

	return out
}

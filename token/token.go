// Package token defines the postfix token vocabulary produced by the
// regex-to-postfix translator and consumed by the NFA builder.
package token

import "fmt"

// Kind tags the variant a Token holds.
type Kind uint8

const (
	// Literal matches exactly one byte.
	Literal Kind = iota
	// Dot matches any single byte (the wildcard).
	Dot
	// Concat is the implicit-concatenation binary operator.
	Concat
	// Union is the '|' binary operator.
	Union
	// Star is the '*' postfix operator (zero or more).
	Star
	// Question is the '?' postfix operator (zero or one).
	Question
	// Plus is the '+' postfix operator (one or more).
	Plus
	// Class matches one byte against a sorted, merged interval list.
	Class
)

// String returns a human-readable name for the kind, used in error messages
// and debug printing.
func (k Kind) String() string {
	switch k {
	case Literal:
		return "LITERAL"
	case Dot:
		return "DOT"
	case Concat:
		return "CONCAT"
	case Union:
		return "UNION"
	case Star:
		return "STAR"
	case Question:
		return "QUESTION"
	case Plus:
		return "PLUS"
	case Class:
		return "CLASS"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Interval is an inclusive byte range [Lo, Hi], Lo <= Hi.
type Interval struct {
	Lo byte
	Hi byte
}

// Less orders intervals lexicographically by (Lo, Hi). Used to keep a
// class's interval list in the canonical sorted form §3 requires.
func (iv Interval) Less(other Interval) bool {
	if iv.Lo != other.Lo {
		return iv.Lo < other.Lo
	}
	return iv.Hi < other.Hi
}

// Token is a single postfix-stream element. Only the field relevant to Kind
// is meaningful; this mirrors the tagged-union shape of nfa.State in the
// teacher package, scaled down to what the translator actually emits.
type Token struct {
	Kind      Kind
	Literal   byte
	Intervals []Interval // meaningful only when Kind == Class
}

// Lit builds a Literal token.
func Lit(c byte) Token { return Token{Kind: Literal, Literal: c} }

// Op builds a zero-payload operator/operand token (Dot, Concat, Union, Star,
// Question, Plus).
func Op(k Kind) Token { return Token{Kind: k} }

// ClassOf builds a Class token from an already-normalized interval list.
// Callers are expected to have run MergeIntervals first; ClassOf does not
// re-normalize so that repeated calls stay cheap.
func ClassOf(intervals []Interval) Token {
	return Token{Kind: Class, Intervals: intervals}
}

// MergeIntervals sorts and coalesces a list of byte intervals into the
// canonical form described in spec §3: sorted, non-overlapping, and with no
// two adjacent intervals coalescible (i.e. no pair where b.Lo <= a.Hi+1).
// The input slice is not mutated; a new, possibly shorter, slice is
// returned. Calling MergeIntervals on an already-merged list is a no-op
// (idempotent), which is the property spec §8 #3 tests.
func MergeIntervals(intervals []Interval) []Interval {
	if len(intervals) == 0 {
		return nil
	}

	sorted := make([]Interval, len(intervals))
	copy(sorted, intervals)
	insertionSortIntervals(sorted)

	merged := make([]Interval, 0, len(sorted))
	cur := sorted[0]
	for _, next := range sorted[1:] {
		// Compare in int to avoid wrapping when cur.Hi == 0xFF.
		if int(next.Lo) <= int(cur.Hi)+1 {
			if next.Hi > cur.Hi {
				cur.Hi = next.Hi
			}
			continue
		}
		merged = append(merged, cur)
		cur = next
	}
	merged = append(merged, cur)
	return merged
}

// insertionSortIntervals sorts small interval lists in place. Classes in
// practice hold a handful of ranges, so an allocation-free insertion sort
// beats sort.Slice's overhead, the same tradeoff nfa's StateID sort in the
// teacher package makes for small NFA-state-sets.
func insertionSortIntervals(s []Interval) {
	for i := 1; i < len(s); i++ {
		key := s[i]
		j := i - 1
		for j >= 0 && key.Less(s[j]) {
			s[j+1] = s[j]
			j--
		}
		s[j+1] = key
	}
}

// Contains reports whether b falls within any interval of a Class token.
// Panics if t.Kind != Class.
func (t Token) Contains(b byte) bool {
	if t.Kind != Class {
		panic("token: Contains called on non-Class token")
	}
	for _, iv := range t.Intervals {
		if b >= iv.Lo && b <= iv.Hi {
			return true
		}
	}
	return false
}

func (t Token) String() string {
	switch t.Kind {
	case Literal:
		return fmt.Sprintf("LITERAL(%q)", t.Literal)
	case Class:
		return fmt.Sprintf("CLASS(%v)", t.Intervals)
	default:
		return t.Kind.String()
	}
}

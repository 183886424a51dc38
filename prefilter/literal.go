// Package prefilter provides a cheap pre-evaluation reject test ahead of
// full NFA/DFA simulation: when a pattern's top-level union is entirely
// literal (e.g. "^(cat|dog|fish)$"), any match must contain at least one of
// those literals, so a candidate missing all of them can be rejected
// without ever touching the automaton.
package prefilter

import "github.com/kanucool/Regex-Engine/token"

// litFrag tracks, for one stack entry during the ExtractRequiredLiterals
// walk, whether the fragment built so far is provably literal-only: either
// a single contiguous byte run (plain concatenation of literals) or a set
// of alternatives (a union whose every branch is itself literal-only).
// Both nil means the fragment touched something non-literal (a wildcard,
// a class, or a repetition) and can no longer contribute to the result.
type litFrag struct {
	run  []byte
	alts [][]byte
}

func (f litFrag) asAlts() [][]byte {
	if f.alts != nil {
		return f.alts
	}
	if f.run != nil {
		return [][]byte{f.run}
	}
	return nil
}

// ExtractRequiredLiterals walks a postfix token stream and returns the
// literal alternatives guaranteed by the pattern's top-level union, when
// every branch of that union is itself literal-only (e.g. "^(cat|dog)$" ->
// {"cat","dog"}). A plain literal concatenation with no union at all is
// returned as a single-element set. Returns nil when no such set can be
// proven required — the pattern contains a wildcard, a class, or a
// repetition anywhere a literal run would need to pass through. That
// includes every pattern missing either anchor, since the translator wraps
// it in .*.
func ExtractRequiredLiterals(tokens []token.Token) [][]byte {
	var stack []litFrag

	pop := func() litFrag {
		n := len(stack)
		f := stack[n-1]
		stack = stack[:n-1]
		return f
	}

	for _, tok := range tokens {
		switch tok.Kind {
		case token.Literal:
			stack = append(stack, litFrag{run: []byte{tok.Literal}})
		case token.Dot, token.Class:
			stack = append(stack, litFrag{})
		case token.Concat:
			b := pop()
			a := pop()
			if a.run != nil && b.run != nil {
				merged := make([]byte, 0, len(a.run)+len(b.run))
				merged = append(merged, a.run...)
				merged = append(merged, b.run...)
				stack = append(stack, litFrag{run: merged})
			} else {
				stack = append(stack, litFrag{})
			}
		case token.Union:
			b := pop()
			a := pop()
			aAlts, bAlts := a.asAlts(), b.asAlts()
			if aAlts != nil && bAlts != nil {
				stack = append(stack, litFrag{alts: append(append([][]byte{}, aAlts...), bAlts...)})
			} else {
				stack = append(stack, litFrag{})
			}
		case token.Star, token.Question, token.Plus:
			pop()
			stack = append(stack, litFrag{})
		}
	}

	if len(stack) == 0 {
		return nil
	}
	return stack[len(stack)-1].asAlts()
}

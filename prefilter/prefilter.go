package prefilter

import (
	"github.com/coregx/ahocorasick"

	"github.com/kanucool/Regex-Engine/token"
)

// Prefilter proves that certain literal substrings are required for a
// pattern to match, and answers a cheap "could this candidate possibly
// match" test using an Aho-Corasick automaton over those literals. A nil
// *Prefilter always answers true — the caller degrades to "always
// evaluate" whenever no required literal set could be proven.
type Prefilter struct {
	auto       *ahocorasick.Automaton
	singleByte byte
	isSingle   bool
}

// Build extracts the pattern's required literal alternatives (see
// ExtractRequiredLiterals) and compiles them into a Prefilter. Returns
// (nil, nil) when no literal set is required — CanMatch on a nil
// *Prefilter always returns true, so callers can use the result
// unconditionally without a separate nil check at the call site beyond
// Go's own nil-receiver method call rule.
func Build(tokens []token.Token) (*Prefilter, error) {
	literals := ExtractRequiredLiterals(tokens)
	if len(literals) == 0 {
		return nil, nil
	}

	builder := ahocorasick.NewBuilder()
	for _, lit := range literals {
		builder.AddPattern(lit)
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, err
	}

	pf := &Prefilter{auto: auto}
	if len(literals) == 1 && len(literals[0]) == 1 {
		pf.isSingle = true
		pf.singleByte = literals[0][0]
	}
	return pf, nil
}

// CanMatch reports whether candidate could possibly satisfy the pattern
// this Prefilter was built from. false is a proof of absence (none of the
// required literals occur in candidate); true means "no proof either way,
// run the real evaluator."
func (p *Prefilter) CanMatch(candidate []byte) bool {
	if p == nil {
		return true
	}
	if p.isSingle {
		return scanByte(candidate, p.singleByte) != -1
	}
	return p.auto.IsMatch(candidate)
}

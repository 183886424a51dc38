// Package meta orchestrates the per-pattern pipeline: translate to postfix,
// build the NFA, optionally build a DFA, optionally build a required-literal
// prefilter, and dispatch IsMatch through whichever of those the selected
// Mode calls for.
package meta

import (
	"fmt"

	"github.com/kanucool/Regex-Engine/dfa"
	"github.com/kanucool/Regex-Engine/nfa"
	"github.com/kanucool/Regex-Engine/prefilter"
	"github.com/kanucool/Regex-Engine/syntax"
	"github.com/kanucool/Regex-Engine/token"
)

// Engine holds one compiled pattern's evaluator(s) and its optional
// prefilter. The zero value is not usable; construct with Compile.
type Engine struct {
	mode   Mode
	tokens []token.Token
	n      *nfa.NFA
	nfaEv  *nfa.Evaluator
	d      *dfa.DFA
	pf     *prefilter.Prefilter
}

// Compile translates pattern, builds its NFA, and prepares whichever
// evaluator mode selects, plus (if cfg.EnablePrefilter) a required-literal
// prefilter consulted ahead of that evaluator.
func Compile(pattern []byte, mode Mode, cfg Config) (*Engine, error) {
	toks, err := syntax.Translate(pattern)
	if err != nil {
		return nil, err
	}
	n, err := nfa.Build(toks)
	if err != nil {
		return nil, err
	}

	e := &Engine{mode: mode, tokens: toks, n: n}

	if cfg.EnablePrefilter {
		pf, err := prefilter.Build(toks)
		if err != nil {
			return nil, err
		}
		e.pf = pf
	}

	switch mode {
	case NFAOnly:
		e.nfaEv = nfa.NewEvaluator(n)
	case DFAEager:
		d, err := dfa.BuildEager(n, cfg.DFA)
		if err != nil {
			return nil, err
		}
		e.d = d
	case DFALazy:
		d, err := dfa.BuildLazy(n, cfg.DFA)
		if err != nil {
			return nil, err
		}
		e.d = d
	default:
		return nil, fmt.Errorf("meta: unknown mode %v", mode)
	}

	return e, nil
}

// IsMatch reports whether candidate matches the compiled pattern. The
// prefilter, when present, is consulted first; a false there short-circuits
// to "no match" without touching the NFA or DFA.
func (e *Engine) IsMatch(candidate []byte) bool {
	if e.pf != nil && !e.pf.CanMatch(candidate) {
		return false
	}
	if e.mode == NFAOnly {
		return e.nfaEv.Matches(e.n, candidate)
	}
	return e.d.Matches(candidate)
}

// Mode returns the strategy this Engine was compiled with.
func (e *Engine) Mode() Mode {
	return e.mode
}

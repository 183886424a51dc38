// Package regex is a byte-oriented regular expression engine: a custom
// shunting-yard translator feeds a Thompson-construction NFA, which can be
// evaluated directly or subset-constructed into a DFA (eagerly at compile
// time, or lazily on demand). No capture groups, no submatch extraction, no
// look-around — Matches answers one question, does this candidate match.
package regex

import (
	"fmt"

	"github.com/kanucool/Regex-Engine/meta"
)

// Mode selects the evaluation strategy Compile prepares.
type Mode int

const (
	// NFAOnly set-steps the NFA directly; no DFA is built.
	NFAOnly Mode = iota
	// DFAEager subset-constructs the full DFA before Compile returns.
	DFAEager
	// DFALazy subset-constructs DFA states on demand as Matches walks them.
	DFALazy
)

func (m Mode) toMetaMode() meta.Mode {
	return meta.Mode(m)
}

func (m Mode) String() string {
	return meta.Mode(m).String()
}

// Regex is a compiled pattern. The zero value is not usable; construct with
// Compile or MustCompile.
type Regex struct {
	pattern string
	mode    Mode
	engine  *meta.Engine
}

// Compile translates and builds pattern under the given Mode.
func Compile(pattern []byte, mode Mode) (*Regex, error) {
	e, err := meta.Compile(pattern, mode.toMetaMode(), meta.DefaultConfig())
	if err != nil {
		return nil, err
	}
	return &Regex{pattern: string(pattern), mode: mode, engine: e}, nil
}

// MustCompile is Compile but panics on error, for package-init-time patterns
// known to be valid at build time.
func MustCompile(pattern []byte, mode Mode) *Regex {
	r, err := Compile(pattern, mode)
	if err != nil {
		panic(fmt.Sprintf("regex: MustCompile(%q): %v", pattern, err))
	}
	return r
}

// Matches reports whether candidate matches the compiled pattern in its
// entirety (the translator's implicit unanchored wrapping means an
// unanchored pattern matches if any substring of candidate matches it).
func (r *Regex) Matches(candidate []byte) bool {
	return r.engine.IsMatch(candidate)
}

// MatchesString is Matches over a string, avoiding a caller-side conversion.
func (r *Regex) MatchesString(candidate string) bool {
	return r.engine.IsMatch([]byte(candidate))
}

// SetPattern recompiles r in place with a new pattern and mode. On error, r
// retains its previous compiled state.
func (r *Regex) SetPattern(pattern []byte, mode Mode) error {
	e, err := meta.Compile(pattern, mode.toMetaMode(), meta.DefaultConfig())
	if err != nil {
		return err
	}
	r.pattern = string(pattern)
	r.mode = mode
	r.engine = e
	return nil
}

// String returns the source pattern and the mode it was compiled with.
func (r *Regex) String() string {
	return fmt.Sprintf("%s [%s]", r.pattern, r.mode)
}

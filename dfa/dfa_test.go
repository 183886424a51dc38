package dfa

import (
	"testing"

	"github.com/kanucool/Regex-Engine/nfa"
	"github.com/kanucool/Regex-Engine/syntax"
)

func compile(t *testing.T, pattern string) *nfa.NFA {
	t.Helper()
	toks, err := syntax.Translate([]byte(pattern))
	if err != nil {
		t.Fatalf("Translate(%q) error: %v", pattern, err)
	}
	n, err := nfa.Build(toks)
	if err != nil {
		t.Fatalf("Build(%q) error: %v", pattern, err)
	}
	return n
}

var seedScenarios = []struct {
	pattern   string
	candidate string
	want      bool
}{
	{"^abc$", "abc", true},
	{"^abc$", "abcd", false},
	{"abc", "xabcy", true},
	{`^a(b|c)*d$`, "abccbd", true},
	{`^a(b|c)*d$`, "abccbe", false},
	{"^[a-z0-9]+$", "abc123", true},
	{"^[a-z0-9]+$", "abc_123", false},
	{"^.*$", "", true},
	{"^a?b?c?$", "", true},
	{"^a*b$", "aaaaab", true},
	{"^(ab)+$", "ababab", true},
	{"^(ab)+$", "aba", false},
	{`a\.b`, "xa.by", true},
	{`a\.b`, "xaXby", false},
}

func TestDFAEagerSeedScenarios(t *testing.T) {
	for _, tt := range seedScenarios {
		t.Run(tt.pattern+"/"+tt.candidate, func(t *testing.T) {
			n := compile(t, tt.pattern)
			d, err := BuildEager(n, DefaultConfig())
			if err != nil {
				t.Fatalf("BuildEager error: %v", err)
			}
			got := d.Matches([]byte(tt.candidate))
			if got != tt.want {
				t.Errorf("Matches(%q, %q) = %v, want %v", tt.pattern, tt.candidate, got, tt.want)
			}
		})
	}
}

func TestDFALazySeedScenarios(t *testing.T) {
	for _, tt := range seedScenarios {
		t.Run(tt.pattern+"/"+tt.candidate, func(t *testing.T) {
			n := compile(t, tt.pattern)
			d, err := BuildLazy(n, DefaultConfig())
			if err != nil {
				t.Fatalf("BuildLazy error: %v", err)
			}
			got := d.Matches([]byte(tt.candidate))
			if got != tt.want {
				t.Errorf("Matches(%q, %q) = %v, want %v", tt.pattern, tt.candidate, got, tt.want)
			}
		})
	}
}

// TestEagerLazyEquivalence is spec §8 property 1/6: eager and lazy DFAs
// agree on every candidate. It compares match results only; it does not
// inspect which lazy states have been processed.
func TestEagerLazyEquivalence(t *testing.T) {
	patterns := []string{
		"^abc$", "abc", `^a(b|c)*d$`, "^[a-z0-9]+$", "^.*$",
		"^a?b?c?$", "^a*b$", "^(ab)+$", `a\.b`,
	}
	candidates := []string{"", "abc", "xabcy", "abccbd", "aaaaab", "ababab", "xa.by"}

	for _, p := range patterns {
		n := compile(t, p)
		eager, err := BuildEager(n, DefaultConfig())
		if err != nil {
			t.Fatalf("BuildEager(%q) error: %v", p, err)
		}
		lazy, err := BuildLazy(n, DefaultConfig())
		if err != nil {
			t.Fatalf("BuildLazy(%q) error: %v", p, err)
		}
		for _, c := range candidates {
			wantMatch := eager.Matches([]byte(c))
			gotMatch := lazy.Matches([]byte(c))
			if wantMatch != gotMatch {
				t.Errorf("pattern %q candidate %q: eager=%v lazy=%v", p, c, wantMatch, gotMatch)
			}
		}
	}
}

func TestNFADFAEquivalence(t *testing.T) {
	for _, tt := range seedScenarios {
		n := compile(t, tt.pattern)
		ev := nfa.NewEvaluator(n)
		nfaResult := ev.Matches(n, []byte(tt.candidate))

		eager, err := BuildEager(n, DefaultConfig())
		if err != nil {
			t.Fatalf("BuildEager(%q) error: %v", tt.pattern, err)
		}
		lazy, err := BuildLazy(n, DefaultConfig())
		if err != nil {
			t.Fatalf("BuildLazy(%q) error: %v", tt.pattern, err)
		}

		if nfaResult != eager.Matches([]byte(tt.candidate)) {
			t.Errorf("pattern %q candidate %q: nfa=%v eager=%v", tt.pattern, tt.candidate, nfaResult, eager.Matches([]byte(tt.candidate)))
		}
		if nfaResult != lazy.Matches([]byte(tt.candidate)) {
			t.Errorf("pattern %q candidate %q: nfa=%v lazy=%v", tt.pattern, tt.candidate, nfaResult, lazy.Matches([]byte(tt.candidate)))
		}
	}
}

func TestDFATooManyStatesCap(t *testing.T) {
	n := compile(t, "^[a-z0-9]+$")
	_, err := BuildEager(n, DefaultConfig().WithMaxStates(1))
	if err == nil {
		t.Fatal("expected TooManyStates error with a 1-state cap")
	}
	be, ok := err.(*BuildError)
	if !ok {
		t.Fatalf("expected *BuildError, got %T", err)
	}
	if be.Kind != TooManyStates {
		t.Fatalf("kind = %v, want TooManyStates", be.Kind)
	}
}

func TestDFAEmptyCandidateAgainstEmptyPattern(t *testing.T) {
	n := compile(t, "")
	d, err := BuildEager(n, DefaultConfig())
	if err != nil {
		t.Fatalf("BuildEager error: %v", err)
	}
	if !d.Matches([]byte("")) {
		t.Error("unanchored empty pattern should accept the empty candidate")
	}
	if !d.Matches([]byte("anything")) {
		t.Error("unanchored empty pattern should accept any candidate")
	}
}

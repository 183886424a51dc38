package nfa

import (
	"testing"

	"github.com/kanucool/Regex-Engine/syntax"
	"github.com/kanucool/Regex-Engine/token"
)

func compileEval(t *testing.T, pattern string) (*NFA, *Evaluator) {
	t.Helper()
	toks, err := syntax.Translate([]byte(pattern))
	if err != nil {
		t.Fatalf("Translate(%q) error: %v", pattern, err)
	}
	n, err := Build(toks)
	if err != nil {
		t.Fatalf("Build(%q) error: %v", pattern, err)
	}
	return n, NewEvaluator(n)
}

func TestEvaluatorSeedScenarios(t *testing.T) {
	tests := []struct {
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

	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.candidate, func(t *testing.T) {
			n, ev := compileEval(t, tt.pattern)
			got := ev.Matches(n, []byte(tt.candidate))
			if got != tt.want {
				t.Errorf("Matches(%q, %q) = %v, want %v", tt.pattern, tt.candidate, got, tt.want)
			}
		})
	}
}

func TestEvaluatorEmptyCandidateAgainstEmptyPattern(t *testing.T) {
	n, ev := compileEval(t, "")
	if !ev.Matches(n, []byte("")) {
		t.Error("unanchored empty pattern should accept the empty candidate")
	}
	if !ev.Matches(n, []byte("anything")) {
		t.Error("unanchored empty pattern should accept any candidate")
	}
}

func TestExpanderDeduplicatesAndSorts(t *testing.T) {
	// (a|a) produces two distinct LITERAL('a') states reachable via one
	// SPLIT; expanding {split} must yield both, sorted.
	toks, err := syntax.Translate([]byte("^a|a$"))
	if err != nil {
		t.Fatalf("Translate error: %v", err)
	}
	n, err := Build(toks)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	exp := NewExpander(uint32(len(n.States)) + 1)
	set := exp.Expand(n, []StateID{n.Start})
	for i := 1; i < len(set); i++ {
		if set[i-1] >= set[i] {
			t.Fatalf("expanded set not strictly sorted: %v", set)
		}
	}
}

func TestExpanderTerminatesOnStarCycle(t *testing.T) {
	// ^a*$ introduces a SPLIT back-edge (star); expansion must terminate.
	toks, err := syntax.Translate([]byte("^a*$"))
	if err != nil {
		t.Fatalf("Translate error: %v", err)
	}
	n, err := Build(toks)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	exp := NewExpander(uint32(len(n.States)) + 1)
	set := exp.Expand(n, []StateID{n.Start})
	if len(set) == 0 {
		t.Fatal("expected at least the LITERAL('a') state and/or MATCH in the closure")
	}
}

func TestBuildUnderflowOnMalformedPostfix(t *testing.T) {
	// CONCAT with nothing on the stack.
	_, err := Build([]token.Token{token.Op(token.Concat)})
	if err == nil {
		t.Fatal("expected BuildError for malformed postfix stream")
	}
	be, ok := err.(*BuildError)
	if !ok {
		t.Fatalf("expected *BuildError, got %T", err)
	}
	if be.Kind != ErrUnderflow {
		t.Fatalf("kind = %v, want ErrUnderflow", be.Kind)
	}
}

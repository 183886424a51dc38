package meta

import "testing"

func TestEngineIsMatchAcrossModes(t *testing.T) {
	tests := []struct {
		pattern   string
		candidate string
		want      bool
	}{
		{"^abc$", "abc", true},
		{"^abc$", "abcd", false},
		{"^(cat|dog|fish)$", "dog", true},
		{"^(cat|dog|fish)$", "wolf", false},
		{`^a(b|c)*d$`, "abccbd", true},
		{"^[a-z0-9]+$", "abc123", true},
	}

	for _, mode := range []Mode{NFAOnly, DFAEager, DFALazy} {
		for _, tt := range tests {
			e, err := Compile([]byte(tt.pattern), mode, DefaultConfig())
			if err != nil {
				t.Fatalf("Compile(%q, %v) error: %v", tt.pattern, mode, err)
			}
			got := e.IsMatch([]byte(tt.candidate))
			if got != tt.want {
				t.Errorf("mode %v: IsMatch(%q) against %q = %v, want %v", mode, tt.candidate, tt.pattern, got, tt.want)
			}
		}
	}
}

func TestEngineCompileInvalidPattern(t *testing.T) {
	_, err := Compile([]byte("(unclosed"), NFAOnly, DefaultConfig())
	if err == nil {
		t.Fatal("expected an error for an unclosed paren")
	}
}

func TestEnginePrefilterShortCircuitsWithoutTouchingDFA(t *testing.T) {
	e, err := Compile([]byte("^(cat|dog|fish)$"), DFALazy, DefaultConfig())
	if err != nil {
		t.Fatalf("Compile error: %v", err)
	}
	if e.IsMatch([]byte("no animal words here")) {
		t.Error("expected prefilter to reject a candidate with none of the literals")
	}
	if n := e.d.StateCount(); n != 1 {
		t.Errorf("StateCount() = %d after a prefilter reject, want 1 (start state only)", n)
	}
	if !e.IsMatch([]byte("cat")) {
		t.Error("expected a real match to still succeed")
	}
}

func TestEnginePrefilterDisabled(t *testing.T) {
	cfg := DefaultConfig().WithPrefilter(false)
	e, err := Compile([]byte("^(cat|dog|fish)$"), NFAOnly, cfg)
	if err != nil {
		t.Fatalf("Compile error: %v", err)
	}
	if e.pf != nil {
		t.Error("expected no prefilter to be built when disabled")
	}
	if !e.IsMatch([]byte("dog")) {
		t.Error("expected IsMatch to still work without a prefilter")
	}
}

func TestEngineModeAccessor(t *testing.T) {
	e, err := Compile([]byte("^a$"), DFAEager, DefaultConfig())
	if err != nil {
		t.Fatalf("Compile error: %v", err)
	}
	if e.Mode() != DFAEager {
		t.Errorf("Mode() = %v, want DFAEager", e.Mode())
	}
}

package meta

import "github.com/kanucool/Regex-Engine/dfa"

// Config controls meta-engine behavior: whether the literal prefilter runs
// ahead of the chosen evaluator, and the DFA construction limits passed
// through to dfa.Config when Mode selects a DFA strategy.
type Config struct {
	// EnablePrefilter gates the required-literal pre-reject check. Default
	// true; disable to measure or debug the raw evaluator in isolation.
	EnablePrefilter bool

	// DFA is forwarded to dfa.BuildEager/BuildLazy when Mode is DFAEager or
	// DFALazy. Ignored for NFAOnly.
	DFA dfa.Config
}

// DefaultConfig returns a Config with the prefilter enabled and the DFA's
// own default state cap.
func DefaultConfig() Config {
	return Config{
		EnablePrefilter: true,
		DFA:             dfa.DefaultConfig(),
	}
}

// WithPrefilter returns a copy of c with EnablePrefilter set.
func (c Config) WithPrefilter(enabled bool) Config {
	c.EnablePrefilter = enabled
	return c
}

// WithDFAConfig returns a copy of c with DFA set.
func (c Config) WithDFAConfig(d dfa.Config) Config {
	c.DFA = d
	return c
}

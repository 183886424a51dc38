package dfa

import "fmt"

// ErrorKind classifies why DFA construction failed.
type ErrorKind uint8

const (
	// TooManyStates indicates the configured Config.MaxStates cap was
	// reached during construction (pathological exponential blow-up).
	TooManyStates ErrorKind = iota
	// InvalidConfig indicates a Config field failed validation.
	InvalidConfig
)

// String returns a human-readable error kind name.
func (k ErrorKind) String() string {
	switch k {
	case TooManyStates:
		return "TooManyStates"
	case InvalidConfig:
		return "InvalidConfig"
	default:
		return fmt.Sprintf("UnknownErrorKind(%d)", uint8(k))
	}
}

// BuildError reports a failure constructing a DFA.
type BuildError struct {
	Kind    ErrorKind
	Message string
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	return fmt.Sprintf("dfa: %s: %s", e.Kind, e.Message)
}

// Is implements error comparison for errors.Is, matching on Kind alone so
// callers can check `errors.Is(err, &dfa.BuildError{Kind: dfa.TooManyStates})`.
func (e *BuildError) Is(target error) bool {
	t, ok := target.(*BuildError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

func newBuildError(kind ErrorKind, msg string) *BuildError {
	return &BuildError{Kind: kind, Message: msg}
}

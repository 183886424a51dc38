package syntax

import "fmt"

// ErrorKind classifies why a pattern failed to translate to postfix form.
// Mirrors the ParseError taxonomy of spec §7.
type ErrorKind uint8

const (
	// ErrUnmatchedOpenParen indicates a '(' with no matching ')'.
	ErrUnmatchedOpenParen ErrorKind = iota
	// ErrUnmatchedCloseParen indicates a ')' with no matching '('.
	ErrUnmatchedCloseParen
	// ErrNestedClass indicates a '[' encountered while already inside a class.
	ErrNestedClass
	// ErrUnexpectedCloseClass indicates a ']' outside class mode, or a class
	// still open at the end of the pattern.
	ErrUnexpectedCloseClass
	// ErrDanglingHyphen indicates a class closed with a hyphen awaiting its
	// range endpoint.
	ErrDanglingHyphen
	// ErrDoubleHyphen indicates a second '-' before the first range resolved.
	ErrDoubleHyphen
)

// String returns a human-readable error kind name.
func (k ErrorKind) String() string {
	switch k {
	case ErrUnmatchedOpenParen:
		return "UnmatchedOpenParen"
	case ErrUnmatchedCloseParen:
		return "UnmatchedCloseParen"
	case ErrNestedClass:
		return "NestedClass"
	case ErrUnexpectedCloseClass:
		return "UnexpectedCloseClass"
	case ErrDanglingHyphen:
		return "DanglingHyphen"
	case ErrDoubleHyphen:
		return "DoubleHyphen"
	default:
		return fmt.Sprintf("UnknownErrorKind(%d)", uint8(k))
	}
}

// ParseError reports a malformed pattern, along with the byte offset that
// triggered it.
type ParseError struct {
	Kind     ErrorKind
	Position int
	Message  string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("syntax: %s at position %d: %s", e.Kind, e.Position, e.Message)
}

func newParseError(kind ErrorKind, pos int, msg string) *ParseError {
	return &ParseError{Kind: kind, Position: pos, Message: msg}
}

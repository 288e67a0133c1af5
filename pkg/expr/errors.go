package expr

import "errors"

// ErrorKind classifies pipeline failures by the stage that produced them.
type ErrorKind string

const (
	KindLex    ErrorKind = "LexError"
	KindSyntax ErrorKind = "SyntaxError"
	KindEval   ErrorKind = "EvalError"
)

// Error is the failure value carried through the pipeline stages. It is
// non-fatal: callers report the message and continue with the next input.
type Error struct {
	Kind    ErrorKind
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// NewLexError creates a LexError for invalid input characters or malformed
// numeric literals.
func NewLexError(msg string) *Error {
	return &Error{Kind: KindLex, Message: msg}
}

// NewSyntaxError creates a SyntaxError for mismatched parentheses.
func NewSyntaxError(msg string) *Error {
	return &Error{Kind: KindSyntax, Message: msg}
}

// NewEvalError creates an EvalError for malformed postfix sequences or
// arithmetic failures.
func NewEvalError(msg string) *Error {
	return &Error{Kind: KindEval, Message: msg}
}

// KindOf returns the error kind if err is a pipeline Error.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}

// Package errors defines the error kinds raised by the interpreter.
// Three kinds exist: syntax errors from the tokenizer, parser and the
// shape checks of special forms; runtime errors from evaluation; and
// name errors from unresolved bindings. Errors are never recovered
// inside the evaluator; they unwind to the session caller.
package errors

import (
	stderrors "errors"
	"fmt"
)

// SyntaxError reports malformed input: an unexpected end of stream,
// an unmatched parenthesis, a stray token, or a special form invoked
// with the wrong shape.
type SyntaxError struct {
	Message string
}

func (e *SyntaxError) Error() string {
	return e.Message
}

// RuntimeError reports a type or arity failure during evaluation,
// such as arithmetic on non-numbers or car of a non-pair.
type RuntimeError struct {
	Message string
}

func (e *RuntimeError) Error() string {
	return e.Message
}

// NameError reports a reference to an identifier with no binding
// anywhere in the scope chain.
type NameError struct {
	Message string
}

func (e *NameError) Error() string {
	return e.Message
}

// NewSyntax creates a SyntaxError with a formatted message.
func NewSyntax(format string, args ...any) error {
	return &SyntaxError{Message: fmt.Sprintf(format, args...)}
}

// NewRuntime creates a RuntimeError with a formatted message.
func NewRuntime(format string, args ...any) error {
	return &RuntimeError{Message: fmt.Sprintf(format, args...)}
}

// NewName creates a NameError with a formatted message.
func NewName(format string, args ...any) error {
	return &NameError{Message: fmt.Sprintf(format, args...)}
}

// IsSyntax reports whether err is (or wraps) a SyntaxError.
func IsSyntax(err error) bool {
	var target *SyntaxError
	return stderrors.As(err, &target)
}

// IsRuntime reports whether err is (or wraps) a RuntimeError.
func IsRuntime(err error) bool {
	var target *RuntimeError
	return stderrors.As(err, &target)
}

// IsName reports whether err is (or wraps) a NameError.
func IsName(err error) bool {
	var target *NameError
	return stderrors.As(err, &target)
}

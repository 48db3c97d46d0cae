// Package errors defines Erio's three-leaf error hierarchy: one kind per
// pipeline stage. None of them track source position — spec.md excludes
// line/column tracking from error reporting.
package errors

import (
	"fmt"

	"erio/token"
)

// InvalidTokenError is raised by the lexer when an accumulated lexeme
// matches none of the recognized token forms.
type InvalidTokenError struct {
	Lexeme string
}

func (e *InvalidTokenError) Error() string {
	return fmt.Sprintf("invalid token: %q", e.Lexeme)
}

// SyntaxError is raised by the parser on an unexpected token, or on a
// top-level return.
type SyntaxError struct {
	Token   token.Token
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error: %s (got %s)", e.Message, e.Token)
}

// RuntimeError is raised by the evaluator: name-not-found, type mismatch,
// index out of range, division by zero, and similar.
type RuntimeError struct {
	Message string
}

func (e *RuntimeError) Error() string {
	return e.Message
}

// NewRuntimeError builds a RuntimeError with a formatted message.
func NewRuntimeError(format string, args ...any) *RuntimeError {
	return &RuntimeError{Message: fmt.Sprintf(format, args...)}
}

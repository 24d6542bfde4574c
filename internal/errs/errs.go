// Package errs defines the nine named error kinds Wild's pipeline can raise
// (spec §7), each carrying the line/column the lexer recorded at the point
// of failure where one is available. Modeled on the category+position
// error shape used by the rest of the example pack's interpreters.
package errs

import "fmt"

// Kind distinguishes the fatal error categories a Wild program can surface.
// Every Kind maps to exactly one clause of spec §7.
type Kind string

const (
	Lex           Kind = "LexError"
	Syntax        Kind = "SyntaxError"
	Interpreter   Kind = "InterpreterError"
	ArgumentCount Kind = "ArgumentCountError"
	ArgumentType  Kind = "ArgumentTypeError"
	Existence     Kind = "ExistenceError"
	Call          Kind = "CallError"
	Conversion    Kind = "ConversionError"
	ReturnType    Kind = "ReturnTypeError"
)

// Error is the single error type used across the lexer, parser, and
// interpreter. Line/Column are 0 when no source position applies (e.g. a
// late-detected return-type mismatch after main has already run to
// completion with no further token consumed).
type Error struct {
	Kind    Kind
	Line    int
	Column  int
	Message string
}

func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("[%d:%d] %s: %s", e.Line, e.Column, e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// New builds an *Error of the given kind at the given position.
func New(kind Kind, line, column int, format string, args ...any) *Error {
	return &Error{Kind: kind, Line: line, Column: column, Message: fmt.Sprintf(format, args...)}
}

// At is a convenience for constructing an error from a line/column pair that
// callers already have in hand (e.g. from a token), without a format string.
func At(kind Kind, line, column int, message string) *Error {
	return &Error{Kind: kind, Line: line, Column: column, Message: message}
}

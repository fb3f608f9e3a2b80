// Package diag defines the single tagged error value returned by every
// phase of the front end. There is no diagnostic bag: the pipeline has
// no error recovery, so the first error produced anywhere halts
// compilation and is returned as-is to the caller.
package diag

import (
	"fmt"

	"lumen/internal/source"
)

// Kind groups errors by the phase and circumstance that produced them.
type Kind uint8

const (
	_ Kind = iota

	// Lex.
	UnclosedString
	InvalidEscapeSequence
	InvalidNumber
	UnknownCharacter

	// I/O + manifest.
	IO
	ModuleFileError
	ModuleNotFound

	// Structure (parser).
	ModuleDecl
	Import
	LineEnd
	TypeDefinition
	Declaration
	TypeAnnotation
	Expression
	Statement
	Conditional
	Function
	Match
	Loop

	// Semantic.
	SemanticImport
	SemanticType
)

// String names the kind for diagnostic messages and tests.
func (k Kind) String() string {
	switch k {
	case UnclosedString:
		return "UnclosedString"
	case InvalidEscapeSequence:
		return "InvalidEscapeSequence"
	case InvalidNumber:
		return "InvalidNumber"
	case UnknownCharacter:
		return "UnknownCharacter"
	case IO:
		return "Io"
	case ModuleFileError:
		return "ModuleFile"
	case ModuleNotFound:
		return "ModuleNotFound"
	case ModuleDecl:
		return "Module"
	case Import:
		return "Import"
	case LineEnd:
		return "LineEnd"
	case TypeDefinition:
		return "TypeDefinition"
	case Declaration:
		return "Declaration"
	case TypeAnnotation:
		return "TypeAnnotation"
	case Expression:
		return "Expression"
	case Statement:
		return "Statement"
	case Conditional:
		return "Conditional"
	case Function:
		return "Function"
	case Match:
		return "Match"
	case Loop:
		return "Loop"
	case SemanticImport:
		return "Import"
	case SemanticType:
		return "Type"
	default:
		return "Unknown"
	}
}

// Error is the single tagged diagnostic value threaded through the whole
// pipeline: a kind, a short static message, and the span it occurred at.
// A zero-size (Empty) span means "file-only": no specific text to
// underline.
type Error struct {
	Kind    Kind
	Message string
	Span    source.Span

	// Wrapped carries the underlying error for I/O and manifest failures
	// (Kind == IO or ModuleFileError). nil otherwise.
	Wrapped error
}

// New builds an Error with a static message and span.
func New(kind Kind, message string, span source.Span) *Error {
	return &Error{Kind: kind, Message: message, Span: span}
}

// Wrap builds an Error of the given kind around err (used for IO and
// ModuleFileError), with span used for presentation context.
func Wrap(kind Kind, message string, span source.Span, err error) *Error {
	return &Error{Kind: kind, Message: message, Span: span, Wrapped: err}
}

func (e *Error) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap allows errors.Is/As to see through to the wrapped I/O error.
func (e *Error) Unwrap() error { return e.Wrapped }

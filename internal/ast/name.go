package ast

import (
	"lumen/internal/intern"
	"lumen/internal/source"
)

// Name is a dotted/colon-separated multi-segment path, e.g. a::b::c.
// Segments are interned symbols; a single-segment Name is a bare
// identifier.
type Name struct {
	Segments []intern.SymbolID
	Span     source.Span
}

// Single reports whether Name has exactly one segment (a bare
// identifier, as opposed to a module-qualified path).
func (n Name) Single() bool {
	return len(n.Segments) == 1
}

// Last returns the final segment (the type/value name itself, ignoring
// any module-path prefix).
func (n Name) Last() intern.SymbolID {
	return n.Segments[len(n.Segments)-1]
}

package ast

import "lumen/internal/source"

// ModifierKind is one leading type modifier: pointer, slice, or sized
// array. Each carries its own mandatory mutability keyword.
type ModifierKind uint8

const (
	Pointer ModifierKind = iota
	Slice
	Array
)

// Modifier is one leading modifier applied to a type annotation's base.
// Modifiers are listed outermost-first: for "*let []var T", Modifiers is
// [Pointer(mut=false), Slice(mut=true)] and the base is T.
type Modifier struct {
	Kind      ModifierKind
	Mutable   bool
	ArraySize uint64 // valid when Kind == Array
}

// TypeBaseKind distinguishes a named-type base from a function-signature
// base.
type TypeBaseKind uint8

const (
	BaseNormal TypeBaseKind = iota
	BaseFunction
)

// TypeAnnot is a syntactic type annotation: zero or more modifiers over a
// base, which is either a dotted Name or a function signature.
type TypeAnnot struct {
	Span      source.Span
	Modifiers []Modifier
	BaseKind  TypeBaseKind

	// BaseNormal.
	BaseName Name

	// BaseFunction: fn(T, ...) (-> T)?
	FuncParams []TypeAnnotID
	FuncReturn TypeAnnotID // NoTypeAnnot if the signature has no return type
}

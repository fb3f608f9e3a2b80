package semantic

import (
	"lumen/internal/ast"
	"lumen/internal/intern"
	"lumen/internal/source"
)

// color tracks a TypeDef's progress through the 3-color DFS used for
// cyclic-size detection in resolveBodies.
type color uint8

const (
	white color = iota // Unvisited
	gray               // Visiting
	black              // Visited
)

// Program is the whole-program semantic AST: every module reachable from
// the entry, each holding shared handles to its declarations. Modules,
// TypeDefs, Functions, and Globals are allocated once and referenced
// elsewhere by pointer — Go's GC stands in for the reference-counted
// containers a non-GC'd implementation would need (see DESIGN.md).
type Program struct {
	Entry   intern.PathID
	Modules map[intern.SymbolID]*Module
}

// Module mirrors ast.Module: a directory-based module holding files and
// submodules, plus resolved handles to its declared dependencies.
type Module struct {
	Path         intern.PathID
	Name         intern.SymbolID
	Files        []*File
	Submodules   map[intern.SymbolID]*Module
	Dependencies map[intern.SymbolID]*Module
}

// File mirrors ast.File: its own declarations plus resolved import
// handles. Syntax retains the originating syntactic file so pass 2 can
// walk statement/expression bodies without duplicating that tree.
type File struct {
	Path   intern.PathID
	Name   intern.SymbolID
	Module intern.SymbolID

	Imports map[intern.SymbolID]*Module

	Globals   []*Global
	Functions []*Function
	Types     []*TypeDef

	// ExprBindings maps a resolved identifier/enum-variant expression (by
	// its ast.ExprID within Syntax) to the declaration it was bound to.
	// Populated only if resolveExprs (pass 2 step 4) runs.
	ExprBindings map[ast.ExprID]*Binding

	Syntax *ast.File

	typesByName map[intern.SymbolID]*TypeDef
	funcsByName map[intern.SymbolID]*Function
	globsByName map[intern.SymbolID]*Global
	owner       *Module
}

// Field is a resolved `name : Type` entry of a struct or union.
type Field struct {
	Name intern.SymbolID
	Type *Type
	Span source.Span
}

// EnumVariant is a resolved enum member; Value always carries its
// effective (explicit or auto-numbered) value.
type EnumVariant struct {
	Name  intern.SymbolID
	Value uint64
	Span  source.Span
}

// TypeDef is a resolved struct/enum/union/alias definition, referenced
// from elsewhere as Custom(handle). It is built as a placeholder skeleton
// in pass 1 and filled in during pass 2.
type TypeDef struct {
	id         TypeID
	Name       intern.SymbolID
	Visibility ast.Visibility
	Span       source.Span
	BodyKind   ast.TypeDefBodyKind

	Fields   []*Field      // TypeStruct, TypeUnion
	Variants []EnumVariant // TypeEnum
	Alias    *Type         // TypeAlias

	Size uint64 // byte size, computed by resolveBodies

	File  *File // defining file, for visibility checks
	color color
}

// ID returns the TypeDef's unique Type identity.
func (d *TypeDef) ID() TypeID { return d.id }

// Global is a resolved top-level `let`/`var` declaration.
type Global struct {
	Name       intern.SymbolID
	Visibility ast.Visibility
	Mutable    bool
	Type       *Type
	Span       source.Span
	File       *File

	syntaxValue ast.ExprID
}

// Param is a resolved function parameter.
type Param struct {
	Name intern.SymbolID
	Type *Type
	Span source.Span
}

// Function is a resolved top-level function definition.
type Function struct {
	Name       intern.SymbolID
	Visibility ast.Visibility
	Params     []*Param
	ReturnType *Type // nil if the signature has no return type
	Span       source.Span
	File       *File

	syntaxBody []ast.StmtID
}

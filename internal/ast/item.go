package ast

import (
	"lumen/internal/intern"
	"lumen/internal/source"
)

// TypeDefBodyKind tags the variant of a TypeDef's body.
type TypeDefBodyKind uint8

const (
	TypeStruct TypeDefBodyKind = iota
	TypeEnum
	TypeUnion
	TypeAlias
)

// Field is one `name : type` entry of a struct or union body.
type Field struct {
	Name intern.SymbolID
	Type TypeAnnotID
	Span source.Span
}

// EnumVariant is one `name (= value)?` entry of an enum body. Value is
// always populated: either the explicit literal, or the previous
// variant's value + 1 (starting at 0 for the first variant).
type EnumVariant struct {
	Name             intern.SymbolID
	Value            uint64
	HasExplicitValue bool
	Span             source.Span
}

// TypeDef is one struct/enum/union/alias type definition.
type TypeDef struct {
	Name       intern.SymbolID
	Visibility Visibility
	Span       source.Span
	BodyKind   TypeDefBodyKind

	Fields   []Field       // TypeStruct, TypeUnion
	Variants []EnumVariant // TypeEnum
	Alias    TypeAnnotID   // TypeAlias
}

// Global is one top-level `let`/`var` declaration.
type Global struct {
	Name       intern.SymbolID
	Visibility Visibility
	Mutable    bool
	Type       TypeAnnotID
	Value      ExprID
	Span       source.Span
}

// Param is one function parameter.
type Param struct {
	Name intern.SymbolID
	Type TypeAnnotID
	Span source.Span
}

// Function is one top-level function definition.
type Function struct {
	Name       intern.SymbolID
	Visibility Visibility
	Params     []Param
	ReturnType TypeAnnotID // NoTypeAnnot if the signature omits `-> T`
	Body       []StmtID
	Span       source.Span
}

// File is one parsed `.code` source file: its own arenas plus the
// top-level items declared in it.
type File struct {
	Path   intern.PathID
	Name   intern.SymbolID // basename without extension
	Module intern.SymbolID // enclosing module's name

	Imports map[intern.SymbolID]source.Span

	Globals   []Global
	Functions []Function
	Types     []TypeDef

	Exprs *Arena[Expr]
	Stmts *Arena[Stmt]
	Annot *Arena[TypeAnnot]
}

// NewFile creates an empty File with fresh per-file arenas.
func NewFile(path intern.PathID, name, module intern.SymbolID) *File {
	return &File{
		Path:    path,
		Name:    name,
		Module:  module,
		Imports: make(map[intern.SymbolID]source.Span),
		Exprs:   NewArena[Expr](64),
		Stmts:   NewArena[Stmt](64),
		Annot:   NewArena[TypeAnnot](16),
	}
}

// Module is a directory-based module: its own files plus any nested
// submodules. Dependencies maps each declared `module.json` dependency
// name to the Module it resolves to, letting semantic resolution both
// check "is this name declared" and follow it to a concrete handle in
// one step.
type Module struct {
	Path         intern.PathID
	Name         intern.SymbolID
	Files        []*File
	Submodules   map[intern.SymbolID]*Module
	Dependencies map[intern.SymbolID]*Module
}

// NewModule creates an empty Module.
func NewModule(path intern.PathID, name intern.SymbolID) *Module {
	return &Module{
		Path:         path,
		Name:         name,
		Submodules:   make(map[intern.SymbolID]*Module),
		Dependencies: make(map[intern.SymbolID]*Module),
	}
}

// Ast is the whole-program syntactic AST produced by the module loader.
type Ast struct {
	Entry   intern.PathID
	Modules map[intern.SymbolID]*Module
}

// NewAst creates an empty Ast rooted at entry.
func NewAst(entry intern.PathID) *Ast {
	return &Ast{Entry: entry, Modules: make(map[intern.SymbolID]*Module)}
}

package semantic

import "lumen/internal/intern"

// BindingKind tags what an identifier expression resolved to.
type BindingKind uint8

const (
	BindLocal BindingKind = iota
	BindArgument
	BindFunction
	BindGlobal
	BindEnumVariant
)

// Binding is the resolution target of an identifier expression: a direct
// handle to the nearest enclosing declaration, per spec §4.5 pass 2 step 4.
type Binding struct {
	Kind BindingKind

	Local    *LocalDecl   // BindLocal
	Argument *Param       // BindArgument
	Function *Function    // BindFunction
	Global   *Global      // BindGlobal
	Enum     *TypeDef     // BindEnumVariant: owning enum
	Variant  *EnumVariant // BindEnumVariant
}

// LocalDecl is one `let`/`var` statement inside a function body, tracked
// by the scope stack so later statements in the same (or a nested) block
// can bind identifiers to it.
type LocalDecl struct {
	Name    intern.SymbolID
	Mutable bool
}

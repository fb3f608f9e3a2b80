package semantic

import (
	"lumen/internal/ast"
	"lumen/internal/intern"
)

// builder threads the bookkeeping shared across skeleton construction: the
// running TypeID counter and memo tables so a syntax node reachable from
// more than one place (a dependency shared by two modules) maps to exactly
// one semantic node, matching ast's own sharing of *ast.Module pointers.
type builder struct {
	pool *intern.Pool

	nextTypeID TypeID
	modules    map[*ast.Module]*Module
}

func newBuilder(pool *intern.Pool) *builder {
	return &builder{pool: pool, modules: make(map[*ast.Module]*Module)}
}

func (b *builder) allocTypeID() TypeID {
	b.nextTypeID++
	return b.nextTypeID
}

// buildSkeleton walks the whole syntactic Ast and allocates, for every
// global/function/type, a semantic counterpart carrying identity and
// placeholder content (pass 1 of the resolver: see spec §4.5).
func buildSkeleton(tree *ast.Ast, pool *intern.Pool) *Program {
	b := newBuilder(pool)
	prog := &Program{Entry: tree.Entry, Modules: make(map[intern.SymbolID]*Module)}
	for name, m := range tree.Modules {
		prog.Modules[name] = b.buildModule(m)
	}
	return prog
}

func (b *builder) buildModule(m *ast.Module) *Module {
	if sm, ok := b.modules[m]; ok {
		return sm
	}
	sm := &Module{
		Path:         m.Path,
		Name:         m.Name,
		Submodules:   make(map[intern.SymbolID]*Module),
		Dependencies: make(map[intern.SymbolID]*Module),
	}
	b.modules[m] = sm

	for _, f := range m.Files {
		sm.Files = append(sm.Files, b.buildFile(f, sm))
	}
	for name, sub := range m.Submodules {
		sm.Submodules[name] = b.buildModule(sub)
	}
	for name, dep := range m.Dependencies {
		sm.Dependencies[name] = b.buildModule(dep)
	}
	return sm
}

func (b *builder) buildFile(f *ast.File, owner *Module) *File {
	sf := &File{
		Path:         f.Path,
		Name:         f.Name,
		Module:       f.Module,
		Imports:      make(map[intern.SymbolID]*Module),
		ExprBindings: make(map[ast.ExprID]*Binding),
		Syntax:       f,
		typesByName:  make(map[intern.SymbolID]*TypeDef),
		funcsByName:  make(map[intern.SymbolID]*Function),
		globsByName:  make(map[intern.SymbolID]*Global),
		owner:        owner,
	}

	placeholder := &Type{Kind: KindPrimitive, Primitive: U8}

	for _, td := range f.Types {
		std := &TypeDef{
			id:         b.allocTypeID(),
			Name:       td.Name,
			Visibility: td.Visibility,
			Span:       td.Span,
			BodyKind:   td.BodyKind,
			File:       sf,
		}
		switch td.BodyKind {
		case ast.TypeStruct, ast.TypeUnion:
			for _, fld := range td.Fields {
				std.Fields = append(std.Fields, &Field{Name: fld.Name, Type: placeholder, Span: fld.Span})
			}
		case ast.TypeEnum:
			for _, v := range td.Variants {
				std.Variants = append(std.Variants, EnumVariant{Name: v.Name, Value: v.Value, Span: v.Span})
			}
		case ast.TypeAlias:
			std.Alias = placeholder
		}
		sf.Types = append(sf.Types, std)
		sf.typesByName[std.Name] = std
	}

	for _, g := range f.Globals {
		sg := &Global{
			Name:        g.Name,
			Visibility:  g.Visibility,
			Mutable:     g.Mutable,
			Type:        placeholder,
			Span:        g.Span,
			File:        sf,
			syntaxValue: g.Value,
		}
		sf.Globals = append(sf.Globals, sg)
		sf.globsByName[sg.Name] = sg
	}

	for _, fn := range f.Functions {
		sfn := &Function{
			Name:       fn.Name,
			Visibility: fn.Visibility,
			Span:       fn.Span,
			File:       sf,
			syntaxBody: fn.Body,
		}
		for _, p := range fn.Params {
			sfn.Params = append(sfn.Params, &Param{Name: p.Name, Type: placeholder, Span: p.Span})
		}
		sf.Functions = append(sf.Functions, sfn)
		sf.funcsByName[sfn.Name] = sfn
	}

	return sf
}

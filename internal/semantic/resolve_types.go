package semantic

import (
	"lumen/internal/ast"
	"lumen/internal/diag"
)

// resolveTypeAnnotations implements pass 2 step 2: every type annotation
// occurring in a global, a function signature, a type body, or an alias is
// resolved to a canonical *Type. Cross-references are all to already-
// allocated skeleton handles, so order across files doesn't matter here —
// only resolveBodies (step 3) needs a fixed dependency order.
func resolveTypeAnnotations(files []*File) *diag.Error {
	for _, f := range files {
		for i, std := range f.Types {
			syn := f.Syntax.Types[i]
			switch std.BodyKind {
			case ast.TypeStruct, ast.TypeUnion:
				for j, fld := range syn.Fields {
					t, err := resolveTypeAnnot(f, fld.Type)
					if err != nil {
						return err
					}
					std.Fields[j].Type = t
				}
			case ast.TypeAlias:
				t, err := resolveTypeAnnot(f, syn.Alias)
				if err != nil {
					return err
				}
				std.Alias = t
			case ast.TypeEnum:
				// No annotations to resolve; enum size is fixed in resolveBodies.
			}
		}

		for i, sg := range f.Globals {
			syn := f.Syntax.Globals[i]
			t, err := resolveTypeAnnot(f, syn.Type)
			if err != nil {
				return err
			}
			sg.Type = t
		}

		for i, sfn := range f.Functions {
			syn := f.Syntax.Functions[i]
			for j, p := range syn.Params {
				t, err := resolveTypeAnnot(f, p.Type)
				if err != nil {
					return err
				}
				sfn.Params[j].Type = t
			}
			if syn.ReturnType.IsValid() {
				t, err := resolveTypeAnnot(f, syn.ReturnType)
				if err != nil {
					return err
				}
				sfn.ReturnType = t
			}
		}
	}
	return nil
}

// resolveTypeAnnot resolves one ast.TypeAnnotID, found in file f, to a
// canonical *Type: the base first, then modifiers applied outermost-last
// (Modifiers is listed outermost-first, so wrapping proceeds in reverse).
func resolveTypeAnnot(f *File, id ast.TypeAnnotID) (*Type, *diag.Error) {
	annot := f.Syntax.Annot.Get(uint32(id))

	base, err := resolveTypeBase(f, annot)
	if err != nil {
		return nil, err
	}

	t := base
	for i := len(annot.Modifiers) - 1; i >= 0; i-- {
		m := annot.Modifiers[i]
		switch m.Kind {
		case ast.Pointer:
			t = &Type{Kind: KindPointer, Inner: t, Mutable: m.Mutable}
		case ast.Slice:
			t = &Type{Kind: KindSlice, Inner: t, Mutable: m.Mutable}
		case ast.Array:
			t = &Type{Kind: KindArray, Inner: t, Mutable: m.Mutable, ArrayLen: m.ArraySize}
		}
	}
	return t, nil
}

func resolveTypeBase(f *File, annot *ast.TypeAnnot) (*Type, *diag.Error) {
	if annot.BaseKind == ast.BaseFunction {
		ft := &Type{Kind: KindFunction}
		for _, pid := range annot.FuncParams {
			pt, err := resolveTypeAnnot(f, pid)
			if err != nil {
				return nil, err
			}
			ft.FuncParams = append(ft.FuncParams, pt)
		}
		if annot.FuncReturn.IsValid() {
			rt, err := resolveTypeAnnot(f, annot.FuncReturn)
			if err != nil {
				return nil, err
			}
			ft.FuncReturn = rt
		}
		return ft, nil
	}
	return resolveNameType(f, annot.BaseName)
}

// resolveNameType resolves a dotted Name base: a primitive keyword, a
// current-file type, or a module-qualified path, per spec §4.5 step 2.
func resolveNameType(f *File, name ast.Name) (*Type, *diag.Error) {
	if name.Single() {
		sym := name.Last()
		if prim, ok := primitiveKeyword(sym); ok {
			return &Type{Kind: KindPrimitive, Primitive: prim}, nil
		}
		if td, ok := f.typesByName[sym]; ok {
			return &Type{Kind: KindCustom, Custom: td}, nil
		}
		return nil, diag.New(diag.SemanticType, "unresolved type", name.Span)
	}

	segs := name.Segments
	moduleAlias := segs[0]
	rest := segs[1:]
	if len(rest) < 2 {
		return nil, diag.New(diag.SemanticType, "malformed module-qualified type name", name.Span)
	}

	mod, ok := f.Imports[moduleAlias]
	if !ok {
		return nil, diag.New(diag.SemanticType, "unresolved type: first segment is not an imported module", name.Span)
	}
	for _, sub := range rest[:len(rest)-2] {
		next, ok := mod.Submodules[sub]
		if !ok {
			return nil, diag.New(diag.SemanticType, "unresolved type: no such submodule", name.Span)
		}
		mod = next
	}

	fileName := rest[len(rest)-2]
	typeName := rest[len(rest)-1]
	targetFile := findFileInModule(mod, fileName)
	if targetFile == nil {
		return nil, diag.New(diag.SemanticType, "unresolved type: no such file in module", name.Span)
	}
	td, ok := targetFile.typesByName[typeName]
	if !ok {
		return nil, diag.New(diag.SemanticType, "unresolved type: no such type in file", name.Span)
	}
	if !isVisible(f, td.Visibility, targetFile) {
		return nil, diag.New(diag.SemanticType, "type is not visible from this file", name.Span)
	}
	return &Type{Kind: KindCustom, Custom: td}, nil
}

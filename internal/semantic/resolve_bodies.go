package semantic

import (
	"lumen/internal/ast"
	"lumen/internal/diag"
)

// resolveBodies implements pass 2 step 3: walk every TypeDef with 3-color
// DFS, computing byte sizes and rejecting cycles that pass through a
// non-pointer/non-slice path (a direct Alias target, a direct struct/union
// field, or an array element — anything whose size the container's own
// size literally depends on).
func resolveBodies(files []*File) *diag.Error {
	for _, f := range files {
		for _, std := range f.Types {
			if err := sizeOfDef(std); err != nil {
				return err
			}
		}
	}
	return nil
}

func sizeOfDef(def *TypeDef) *diag.Error {
	switch def.color {
	case black:
		return nil
	case gray:
		return diag.New(diag.SemanticType, "cyclic type size", def.Span)
	}
	def.color = gray

	switch def.BodyKind {
	case ast.TypeAlias:
		if err := visitDirectDeps(def.Alias); err != nil {
			return err
		}
		def.Size = sizeOfType(def.Alias)

	case ast.TypeStruct:
		var total uint64
		for _, fld := range def.Fields {
			if err := visitDirectDeps(fld.Type); err != nil {
				return err
			}
			total += sizeOfType(fld.Type)
		}
		def.Size = total

	case ast.TypeUnion:
		var max uint64
		for _, fld := range def.Fields {
			if err := visitDirectDeps(fld.Type); err != nil {
				return err
			}
			if s := sizeOfType(fld.Type); s > max {
				max = s
			}
		}
		def.Size = max

	case ast.TypeEnum:
		def.Size = U64.ByteSize()
	}

	def.color = black
	return nil
}

// visitDirectDeps recurses into the TypeDefs t's own size literally
// depends on (not behind a Pointer or Slice indirection, whose size is
// fixed regardless of what they point at).
func visitDirectDeps(t *Type) *diag.Error {
	switch t.Kind {
	case KindCustom:
		return sizeOfDef(t.Custom)
	case KindArray:
		return visitDirectDeps(t.Inner)
	default:
		return nil
	}
}

// sizeOfType returns t's byte size. Custom requires its TypeDef's Size to
// already be resolved, which visitDirectDeps guarantees for every caller
// here.
func sizeOfType(t *Type) uint64 {
	switch t.Kind {
	case KindPrimitive:
		return t.Primitive.ByteSize()
	case KindCustom:
		return t.Custom.Size
	case KindPointer:
		return pointerSize
	case KindSlice:
		return sliceHeaderSize
	case KindArray:
		return t.ArrayLen * sizeOfType(t.Inner)
	case KindFunction:
		return funcPointerSize
	default:
		return 0
	}
}

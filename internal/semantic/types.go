package semantic

import (
	"lumen/internal/intern"
	"lumen/internal/token"
)

// PrimitiveKind enumerates the fixed primitive type keywords.
type PrimitiveKind uint8

const (
	U8 PrimitiveKind = iota
	U16
	U32
	U64
	USize
	I8
	I16
	I32
	I64
	ISize
	F32
	F64
	Bool
)

// primitiveOf maps a primitive keyword's token.Kind to its PrimitiveKind,
// relying on the fact that a primitive keyword's intern.SymbolID is
// numerically identical to its token.Kind (both are the keyword table's
// 1-based ordinal — see intern.NewPool).
var primitiveOf = map[token.Kind]PrimitiveKind{
	token.KwU8:    U8,
	token.KwU16:   U16,
	token.KwU32:   U32,
	token.KwU64:   U64,
	token.KwUsize: USize,
	token.KwI8:    I8,
	token.KwI16:   I16,
	token.KwI32:   I32,
	token.KwI64:   I64,
	token.KwIsize: ISize,
	token.KwF32:   F32,
	token.KwF64:   F64,
	token.KwBool:  Bool,
}

// ByteSize returns the storage size in bytes used by struct/union/array
// layout computation.
func (p PrimitiveKind) ByteSize() uint64 {
	switch p {
	case U8, I8, Bool:
		return 1
	case U16, I16:
		return 2
	case U32, I32, F32:
		return 4
	case U64, I64, USize, ISize, F64:
		return 8
	default:
		return 8
	}
}

func (p PrimitiveKind) String() string {
	switch p {
	case U8:
		return "u8"
	case U16:
		return "u16"
	case U32:
		return "u32"
	case U64:
		return "u64"
	case USize:
		return "usize"
	case I8:
		return "i8"
	case I16:
		return "i16"
	case I32:
		return "i32"
	case I64:
		return "i64"
	case ISize:
		return "isize"
	case F32:
		return "f32"
	case F64:
		return "f64"
	case Bool:
		return "bool"
	default:
		return "invalid"
	}
}

// TypeKind tags the variant held by a Type.
type TypeKind uint8

const (
	KindPrimitive TypeKind = iota
	KindCustom               // named struct/enum/union/alias
	KindFunction
	KindPointer
	KindSlice
	KindArray
)

// pointerSize and sliceHeaderSize are the fixed layout costs assigned to
// pointer/slice indirections regardless of what they point at — this is
// exactly why a Pointer/Slice modifier breaks the cyclic-size DFS: its own
// size never depends on its target's size.
const (
	pointerSize     = 8
	sliceHeaderSize = 16 // data pointer + length, usize-sized
	funcPointerSize = 8
)

// Type is a canonicalized type: a resolved counterpart of ast.TypeAnnot
// with its base name turned into either a primitive tag or a live handle
// to the TypeDef it names.
type Type struct {
	id   TypeID
	Kind TypeKind

	Primitive PrimitiveKind // KindPrimitive
	Custom    *TypeDef      // KindCustom

	FuncParams []*Type // KindFunction
	FuncReturn *Type   // KindFunction; nil if the signature has no return

	Inner    *Type  // KindPointer, KindSlice, KindArray
	Mutable  bool   // KindPointer, KindSlice, KindArray
	ArrayLen uint64 // KindArray: element count
}

// ID returns the Type's id field. The resolver never sets it, so it is
// NoTypeID for every Type; unique ids are carried by TypeDef.ID.
func (t *Type) ID() TypeID { return t.id }

// primitiveKeyword reports whether sym names one of the primitive type
// keywords. A SymbolID in the reserved range is numerically identical to
// its token.Kind (both are the keyword table's 1-based ordinal), so this
// is a bounds check plus a map lookup — no intern.Pool needed.
func primitiveKeyword(sym intern.SymbolID) (PrimitiveKind, bool) {
	if sym == intern.NoSymbol || int(sym) > token.ReservedCount {
		return 0, false
	}
	p, ok := primitiveOf[token.Kind(sym)]
	return p, ok
}

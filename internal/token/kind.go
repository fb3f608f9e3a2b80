// Package token defines the fixed keyword/punctuator table and the token
// value model.
package token

// Kind enumerates every keyword and punctuator in the fixed table, in
// table order, plus the non-reserved kinds (Identifier and the literal
// forms). ReservedTable()'s order defines the correspondence between a
// Kind's ordinal (1-based) and its intern.SymbolID when the symbol pool
// is seeded from ReservedTable.
type Kind uint32

const (
	_ Kind = iota // 0 is never a valid Kind

	// Punctuators.
	Comma        // ,
	Semicolon    // ;
	Colon        // :
	ColonColon   // ::
	Dot          // .
	LParen       // (
	RParen       // )
	LBracket     // [
	RBracket     // ]
	LBrace       // {
	RBrace       // }
	Plus         // +
	PlusEq       // +=
	Minus        // -
	MinusEq      // -=
	Star         // *
	StarEq       // *=
	Slash        // /
	SlashEq      // /=
	Percent      // %
	PercentEq    // %=
	Shl          // <<
	ShlEq        // <<=
	Shr          // >>
	ShrEq        // >>=
	Amp          // &
	AmpEq        // &=
	Pipe         // |
	PipeEq       // |=
	Caret        // ^
	CaretEq      // ^=
	Tilde        // ~
	And          // and
	Or           // or
	Bang         // !
	EqEq         // ==
	NotEq        // !=
	Gt           // >
	GtEq         // >=
	Lt           // <
	LtEq         // <=
	Eq           // =
	Arrow        // ->
	FatArrow     // =>
	KwIf         // if
	KwElse       // else
	KwMatch      // match
	KwWhile      // while
	KwFor        // for
	KwBreak      // break
	KwContinue   // continue
	KwReturn     // return
	KwFn         // fn
	KwLet        // let
	KwVar        // var
	KwStruct     // struct
	KwEnum       // enum
	KwUnion      // union
	KwPub        // pub
	KwPrv        // prv
	KwMod        // mod
	KwModule     // module
	KwImport     // import
	KwUse        // use
	KwTrue       // true
	KwFalse      // false
	KwU8         // u8
	KwU16        // u16
	KwU32        // u32
	KwU64        // u64
	KwUsize      // usize
	KwI8         // i8
	KwI16        // i16
	KwI32        // i32
	KwI64        // i64
	KwIsize      // isize
	KwF32        // f32
	KwF64        // f64
	KwBool       // bool

	// reservedEnd is a sentinel one past the last reserved entry; it is
	// not itself a valid Kind and exists only to size ReservedTable.
	reservedEnd

	// Non-reserved kinds.
	Identifier
	LitUInt
	LitInt
	LitFloat
	LitString
	EOF
)

// ReservedCount is the number of entries in the fixed keyword/punctuator
// table: ids in [1, ReservedCount] are reserved, pre-interned symbols.
const ReservedCount = int(reservedEnd) - 1

// reservedTable holds the fixed table in exact spec order. Index i
// (0-based) corresponds to Kind(i+1).
var reservedTable = [ReservedCount]string{
	",", ";", ":", "::", ".", "(", ")", "[", "]", "{", "}",
	"+", "+=", "-", "-=", "*", "*=", "/", "/=", "%", "%=",
	"<<", "<<=", ">>", ">>=", "&", "&=", "|", "|=", "^", "^=",
	"~", "and", "or", "!",
	"==", "!=", ">", ">=", "<", "<=", "=", "->", "=>",
	"if", "else", "match", "while", "for", "break", "continue", "return",
	"fn", "let", "var", "struct", "enum", "union",
	"pub", "prv", "mod", "module", "import", "use",
	"true", "false",
	"u8", "u16", "u32", "u64", "usize",
	"i8", "i16", "i32", "i64", "isize",
	"f32", "f64", "bool",
}

// ReservedTable returns the fixed keyword/punctuator strings in table
// order; ReservedTable()[i] has Kind(i+1). This is the slice used to seed
// the intern pool's reserved range.
func ReservedTable() []string {
	out := make([]string, ReservedCount)
	copy(out, reservedTable[:])
	return out
}

// KindOf returns the reserved Kind for a table entry at zero-based index
// i (i.e. the Kind whose intern.SymbolID is i+1).
func KindOf(i int) Kind {
	if i < 0 || i >= ReservedCount {
		panic("token: KindOf index out of range")
	}
	return Kind(i + 1)
}

// String returns the literal text of a reserved Kind, or a description
// for non-reserved kinds.
func (k Kind) String() string {
	if int(k) >= 1 && int(k) <= ReservedCount {
		return reservedTable[k-1]
	}
	switch k {
	case Identifier:
		return "identifier"
	case LitUInt:
		return "uint-literal"
	case LitInt:
		return "int-literal"
	case LitFloat:
		return "float-literal"
	case LitString:
		return "string-literal"
	case EOF:
		return "eof"
	default:
		return "invalid"
	}
}

// IsReserved reports whether k is in the fixed keyword/punctuator range.
func (k Kind) IsReserved() bool {
	return int(k) >= 1 && int(k) <= ReservedCount
}

// isAlpha reports whether s is entirely ASCII letters (used to split
// reservedTable into the keyword map vs. the punctuator trie source).
func isAlpha(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return len(s) > 0
}

// primitiveTypeNames lists the all-alpha primitive type keywords. All 13
// primitive type keywords must lex as plain identifiers (carrying their reserved SymbolID) rather than as
// Keyword tokens: parseDottedName, the parser's only type-base path,
// accepts token.Identifier, never a reserved Kind. The digit-bearing
// entries (u8…f64) already lex this way because isAlpha rejects them;
// this set adds the three all-alpha primitives (bool, usize, isize) so
// every primitive is reached uniformly.
var primitiveTypeNames = map[string]bool{
	"usize": true,
	"isize": true,
	"bool":  true,
}

// KeywordTable returns the alphabetic subset of the reserved table
// ("and"/"or" plus the keyword block), each paired with its Kind, for
// building the identifier lexer's keyword lookup map. Primitive type
// names are excluded even though they're alphabetic, so a type
// annotation like `bool` or `usize` lexes as an Identifier, the same way
// `u8`/`i32` already do.
func KeywordTable() map[string]Kind {
	out := make(map[string]Kind)
	for i, s := range reservedTable {
		if isAlpha(s) && !primitiveTypeNames[s] {
			out[s] = KindOf(i)
		}
	}
	return out
}

// PunctuatorTable returns the punctuation subset of the reserved table,
// each paired with its Kind, for building the lexer's punctuator trie.
func PunctuatorTable() map[string]Kind {
	out := make(map[string]Kind)
	for i, s := range reservedTable {
		if !isAlpha(s) {
			out[s] = KindOf(i)
		}
	}
	return out
}

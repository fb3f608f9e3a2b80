package token

import (
	"lumen/internal/intern"
	"lumen/internal/source"
)

// Token is a single lexical token: a kind plus its source span, plus a
// payload for the kinds that carry one (Identifier and the literal
// kinds). Exactly one of the payload fields is meaningful, selected by
// Kind.
type Token struct {
	Kind Kind
	Span source.Span

	Symbol intern.SymbolID // valid when Kind == Identifier
	UInt   uint64          // valid when Kind == LitUInt
	Int    int64           // valid when Kind == LitInt
	Float  float64         // valid when Kind == LitFloat
	Text   string          // valid when Kind == LitString (decoded contents)
}

// NewPunct returns a punctuator/keyword token.
func NewPunct(k Kind, span source.Span) Token {
	return Token{Kind: k, Span: span}
}

// NewIdentifier returns an Identifier token.
func NewIdentifier(sym intern.SymbolID, span source.Span) Token {
	return Token{Kind: Identifier, Span: span, Symbol: sym}
}

// NewUInt returns a LitUInt token.
func NewUInt(v uint64, span source.Span) Token {
	return Token{Kind: LitUInt, Span: span, UInt: v}
}

// NewInt returns a LitInt token.
func NewInt(v int64, span source.Span) Token {
	return Token{Kind: LitInt, Span: span, Int: v}
}

// NewFloat returns a LitFloat token.
func NewFloat(v float64, span source.Span) Token {
	return Token{Kind: LitFloat, Span: span, Float: v}
}

// NewString returns a LitString token carrying the decoded text (escapes
// already resolved).
func NewString(text string, span source.Span) Token {
	return Token{Kind: LitString, Span: span, Text: text}
}

// NewEOF returns the end-of-stream sentinel token at span.
func NewEOF(span source.Span) Token {
	return Token{Kind: EOF, Span: span}
}

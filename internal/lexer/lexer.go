// Package lexer turns a source file's bytes into a token stream.
package lexer

import (
	"lumen/internal/diag"
	"lumen/internal/intern"
	"lumen/internal/source"
	"lumen/internal/token"
)

// Lexer scans one file at a time. It is stateful (position + a small
// amount of lookahead) rather than coroutine-based.
type Lexer struct {
	cur      Cursor
	pool     *intern.Pool
	keywords map[string]token.Kind
	puncts   *punctuatorTrie
}

// New creates a Lexer over f, interning identifiers and punctuators into
// pool. pool must already have been seeded with token.ReservedTable()
// (see compiler.Compile for the wiring).
func New(f *source.File, pool *intern.Pool) *Lexer {
	return &Lexer{
		cur:      NewCursor(f),
		pool:     pool,
		keywords: token.KeywordTable(),
		puncts:   buildPunctuatorTrie(),
	}
}

// Lex scans f in full, returning every token up to and including EOF, or
// the first lex error encountered.
func Lex(f *source.File, pool *intern.Pool) ([]token.Token, *diag.Error) {
	l := New(f, pool)
	var toks []token.Token
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks, nil
		}
	}
}

// Next returns the next token, skipping whitespace and line comments
// first.
func (l *Lexer) Next() (token.Token, *diag.Error) {
	l.skipTrivia()

	if l.cur.EOF() {
		m := l.cur.Mark()
		return token.NewEOF(l.cur.SpanFrom(m)), nil
	}

	b := l.cur.Peek()
	switch {
	case isIdentStart(b):
		return l.scanIdentifier(), nil
	case b == '"':
		return l.scanString()
	case isASCIIDigit(b), b == '-' && isASCIIDigit(l.cur.PeekAt(1)):
		return l.scanNumber()
	case isASCIIPunct(b):
		return l.scanPunct()
	default:
		start := l.cur.Mark()
		l.cur.Bump()
		span := l.cur.SpanFrom(start)
		return token.Token{}, diag.New(diag.UnknownCharacter, "unknown character", span)
	}
}

// skipTrivia repeatedly skips whitespace and "// ..." line comments
// until neither applies.
func (l *Lexer) skipTrivia() {
	for {
		progressed := false
		for !l.cur.EOF() && isSpace(l.cur.Peek()) {
			l.cur.Bump()
			progressed = true
		}
		if l.cur.Peek() == '/' && l.cur.PeekAt(1) == '/' {
			for !l.cur.EOF() && l.cur.Peek() != '\n' {
				l.cur.Bump()
			}
			progressed = true
		}
		if !progressed {
			return
		}
	}
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

func isASCIIPunct(b byte) bool {
	return b > 0x20 && b < 0x7F && !isIdentStart(b) && !isASCIIDigit(b) && b != '"'
}

func (l *Lexer) scanIdentifier() token.Token {
	start := l.cur.Mark()
	l.cur.Bump() // first byte, already known to be ident-start
	word := l.scanIdentRest(start)
	span := l.cur.SpanFrom(start)
	if kind, ok := l.keywordKind(word); ok {
		return token.NewPunct(kind, span)
	}
	sym := l.pool.Intern(word)
	return token.NewIdentifier(sym, span)
}

func (l *Lexer) scanPunct() (token.Token, *diag.Error) {
	start := l.cur.Mark()
	kind, length, ok := l.puncts.longestMatch(l.cur.PeekAt, 3)
	if !ok {
		l.cur.Bump()
		span := l.cur.SpanFrom(start)
		return token.Token{}, diag.New(diag.UnknownCharacter, "unknown character", span)
	}
	for i := 0; i < length; i++ {
		l.cur.Bump()
	}
	span := l.cur.SpanFrom(start)
	return token.NewPunct(kind, span), nil
}

// Package parser implements the recursive-descent, Pratt-expression
// parser: one file's tokens in, one syntactic ast.File out, or the
// first parse error.
package parser

import (
	"lumen/internal/ast"
	"lumen/internal/diag"
	"lumen/internal/intern"
	"lumen/internal/lexer"
	"lumen/internal/source"
	"lumen/internal/token"
)

// Parser holds the state for parsing exactly one file: a 1-token
// lookahead buffer over the lexer plus the file being built. It is
// intrinsically stateful rather than coroutine-based.
type Parser struct {
	lx   *lexer.Lexer
	pool *intern.Pool
	fs   *source.FileSet
	fid  source.FileID

	cur token.Token
	err *diag.Error // first error encountered; once set, parsing should unwind

	file *ast.File

	// allowStructLiteral gates postfix `{field:expr,…}` parsing. It is
	// disabled for the whole leading expression of an expression or
	// assignment statement (including a for loop's update entries), so
	// `foo { ... }` at statement position is never mistaken for a struct
	// literal. It is not re-enabled inside that expression, so call
	// arguments, array elements, and parenthesized sub-expressions nested
	// in it cannot hold struct literals either. It is enabled elsewhere
	// (initializers, assignment right-hand sides, return values,
	// conditions, match subjects).
	allowStructLiteral bool
}

// ParseFile parses f (already loaded into fs) expecting its `module`
// declaration to name expectedModule. path/name/module identify the
// resulting ast.File's own identity fields.
func ParseFile(fs *source.FileSet, fid source.FileID, pool *intern.Pool, path intern.PathID, name, expectedModule intern.SymbolID) (*ast.File, *diag.Error) {
	f := fs.Get(fid)
	lx := lexer.New(f, pool)

	p := &Parser{
		lx:                 lx,
		pool:               pool,
		fs:                 fs,
		fid:                fid,
		file:               ast.NewFile(path, name, expectedModule),
		allowStructLiteral: true,
	}
	if err := p.bump(); err != nil {
		return nil, err
	}

	if err := p.parseModuleDecl(expectedModule); err != nil {
		return nil, err
	}
	if err := p.parseImports(); err != nil {
		return nil, err
	}
	if err := p.parseTopLevelItems(); err != nil {
		return nil, err
	}
	return p.file, nil
}

// bump fetches the next token from the lexer into p.cur, surfacing any
// lex error immediately (the pipeline has no error recovery).
func (p *Parser) bump() *diag.Error {
	tok, err := p.lx.Next()
	if err != nil {
		return err
	}
	p.cur = tok
	return nil
}

// peek returns the current lookahead token without consuming it.
func (p *Parser) peek() token.Token {
	return p.cur
}

// advance returns the current token and loads the next one.
func (p *Parser) advance() (token.Token, *diag.Error) {
	tok := p.cur
	if err := p.bump(); err != nil {
		return tok, err
	}
	return tok, nil
}

// at reports whether the lookahead token has kind k.
func (p *Parser) at(k token.Kind) bool {
	return p.cur.Kind == k
}

// expect consumes the lookahead token if it has kind k, else returns a
// diag.Error of the given kind with message.
func (p *Parser) expect(k token.Kind, kind diag.Kind, message string) (token.Token, *diag.Error) {
	if !p.at(k) {
		return token.Token{}, diag.New(kind, message, p.cur.Span)
	}
	return p.advance()
}

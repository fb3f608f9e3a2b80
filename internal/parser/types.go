package parser

import (
	"lumen/internal/ast"
	"lumen/internal/diag"
	"lumen/internal/intern"
	"lumen/internal/source"
	"lumen/internal/token"
)

// parseTypeAnnot parses zero or more leading modifiers then a base type,
// and allocates it into the current file's TypeAnnot arena.
func (p *Parser) parseTypeAnnot() (ast.TypeAnnotID, *diag.Error) {
	start := p.cur.Span
	var modifiers []ast.Modifier

	for {
		switch p.cur.Kind {
		case token.Star:
			if _, err := p.advance(); err != nil {
				return 0, err
			}
			mut, err := p.expectMutability()
			if err != nil {
				return 0, err
			}
			modifiers = append(modifiers, ast.Modifier{Kind: ast.Pointer, Mutable: mut})
		case token.LBracket:
			if _, err := p.advance(); err != nil {
				return 0, err
			}
			if p.at(token.RBracket) {
				if _, err := p.advance(); err != nil {
					return 0, err
				}
				mut, err := p.expectMutability()
				if err != nil {
					return 0, err
				}
				modifiers = append(modifiers, ast.Modifier{Kind: ast.Slice, Mutable: mut})
				continue
			}
			sizeTok, err := p.expect(token.LitUInt, diag.TypeAnnotation, "expected array size")
			if err != nil {
				return 0, err
			}
			if _, err := p.expect(token.RBracket, diag.TypeAnnotation, "expected ']' after array size"); err != nil {
				return 0, err
			}
			mut, err := p.expectMutability()
			if err != nil {
				return 0, err
			}
			modifiers = append(modifiers, ast.Modifier{Kind: ast.Array, Mutable: mut, ArraySize: sizeTok.UInt})
		default:
			goto base
		}
	}

base:
	if p.at(token.KwFn) {
		return p.parseFunctionTypeAnnot(start, modifiers)
	}
	name, err := p.parseDottedName()
	if err != nil {
		return 0, err
	}
	span := start.Merge(name.Span)
	id := p.file.Annot.Allocate(ast.TypeAnnot{
		Span:      span,
		Modifiers: modifiers,
		BaseKind:  ast.BaseNormal,
		BaseName:  name,
	})
	return ast.TypeAnnotID(id), nil
}

// parseFunctionTypeAnnot parses `fn(T, ...) (-> T)?` as a type-annotation
// base, after the leading modifiers (if any) have already been consumed.
func (p *Parser) parseFunctionTypeAnnot(start source.Span, modifiers []ast.Modifier) (ast.TypeAnnotID, *diag.Error) {
	fnTok, err := p.advance() // 'fn'
	if err != nil {
		return 0, err
	}
	if _, err := p.expect(token.LParen, diag.TypeAnnotation, "expected '(' after 'fn'"); err != nil {
		return 0, err
	}
	var params []ast.TypeAnnotID
	if !p.at(token.RParen) {
		for {
			pt, err := p.parseTypeAnnot()
			if err != nil {
				return 0, err
			}
			params = append(params, pt)
			if !p.at(token.Comma) {
				break
			}
			if _, err := p.advance(); err != nil {
				return 0, err
			}
			if p.at(token.RParen) {
				break // trailing comma
			}
		}
	}
	rparen, err := p.expect(token.RParen, diag.TypeAnnotation, "expected ')' after function parameter types")
	if err != nil {
		return 0, err
	}
	end := rparen.Span
	var ret ast.TypeAnnotID = ast.NoTypeAnnot
	if p.at(token.Arrow) {
		if _, err := p.advance(); err != nil {
			return 0, err
		}
		ret, err = p.parseTypeAnnot()
		if err != nil {
			return 0, err
		}
		end = p.file.Annot.Get(uint32(ret)).Span
	}
	span := start.Merge(fnTok.Span).Merge(end)
	id := p.file.Annot.Allocate(ast.TypeAnnot{
		Span:       span,
		Modifiers:  modifiers,
		BaseKind:   ast.BaseFunction,
		FuncParams: params,
		FuncReturn: ret,
	})
	return ast.TypeAnnotID(id), nil
}

func (p *Parser) expectMutability() (bool, *diag.Error) {
	switch p.cur.Kind {
	case token.KwLet:
		if _, err := p.advance(); err != nil {
			return false, err
		}
		return false, nil
	case token.KwVar:
		if _, err := p.advance(); err != nil {
			return false, err
		}
		return true, nil
	default:
		return false, diag.New(diag.TypeAnnotation, "expected 'let' or 'var' after type modifier", p.cur.Span)
	}
}

// parseDottedName parses a::b::c — one or more identifiers joined by '::'.
func (p *Parser) parseDottedName() (ast.Name, *diag.Error) {
	first, err := p.expect(token.Identifier, diag.TypeAnnotation, "expected identifier")
	if err != nil {
		return ast.Name{}, err
	}
	segs := []intern.SymbolID{first.Symbol}
	span := first.Span
	for p.at(token.ColonColon) {
		if _, err := p.advance(); err != nil {
			return ast.Name{}, err
		}
		seg, err := p.expect(token.Identifier, diag.TypeAnnotation, "expected identifier after '::'")
		if err != nil {
			return ast.Name{}, err
		}
		segs = append(segs, seg.Symbol)
		span = span.Merge(seg.Span)
	}
	return ast.Name{Segments: segs, Span: span}, nil
}

package parser

import (
	"lumen/internal/ast"
	"lumen/internal/diag"
	"lumen/internal/intern"
	"lumen/internal/token"
)

// parseGlobal parses a top-level `let|var name : type = expr ;`.
// Initialization is mandatory.
func (p *Parser) parseGlobal(vis ast.Visibility) (*ast.Global, *diag.Error) {
	return p.parseLetVar(vis)
}

// parseLetVar implements the shared let/var grammar used for both
// top-level globals and local declarations.
func (p *Parser) parseLetVar(vis ast.Visibility) (*ast.Global, *diag.Error) {
	kwTok, err := p.advance()
	mutable := kwTok.Kind == token.KwVar
	if err != nil {
		return nil, err
	}
	nameTok, err := p.expect(token.Identifier, diag.Declaration, "expected declaration name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Colon, diag.Declaration, "expected ':' after declaration name"); err != nil {
		return nil, err
	}
	typ, err := p.parseTypeAnnot()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Eq, diag.Declaration, "declarations must be initialized"); err != nil {
		return nil, err
	}
	val, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	semi, err := p.expect(token.Semicolon, diag.LineEnd, "expected ';' after declaration")
	if err != nil {
		return nil, err
	}
	return &ast.Global{
		Name:       nameTok.Symbol,
		Visibility: vis,
		Mutable:    mutable,
		Type:       typ,
		Value:      val,
		Span:       kwTok.Span.Merge(semi.Span),
	}, nil
}

// parseFunction parses `fn name(arg:type, …) (-> type)? { statements }`.
func (p *Parser) parseFunction(vis ast.Visibility) (*ast.Function, *diag.Error) {
	kwTok, err := p.advance()
	if err != nil {
		return nil, err
	}
	nameTok, err := p.expect(token.Identifier, diag.Function, "expected function name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LParen, diag.Function, "expected '(' after function name"); err != nil {
		return nil, err
	}

	seen := make(map[intern.SymbolID]bool)
	var params []ast.Param
	if !p.at(token.RParen) {
		for {
			pnTok, err := p.expect(token.Identifier, diag.Function, "expected parameter name")
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.Colon, diag.Function, "expected ':' after parameter name"); err != nil {
				return nil, err
			}
			pt, err := p.parseTypeAnnot()
			if err != nil {
				return nil, err
			}
			if seen[pnTok.Symbol] {
				return nil, diag.New(diag.Function, "duplicate parameter name", pnTok.Span)
			}
			seen[pnTok.Symbol] = true
			params = append(params, ast.Param{Name: pnTok.Symbol, Type: pt, Span: pnTok.Span})

			if !p.at(token.Comma) {
				break
			}
			if _, err := p.advance(); err != nil {
				return nil, err
			}
			if p.at(token.RParen) {
				break
			}
		}
	}
	if _, err := p.expect(token.RParen, diag.Function, "expected ')' after parameter list"); err != nil {
		return nil, err
	}

	var ret ast.TypeAnnotID = ast.NoTypeAnnot
	if p.at(token.Arrow) {
		if _, err := p.advance(); err != nil {
			return nil, err
		}
		ret, err = p.parseTypeAnnot()
		if err != nil {
			return nil, err
		}
	}

	body, rbraceSpan, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &ast.Function{
		Name:       nameTok.Symbol,
		Visibility: vis,
		Params:     params,
		ReturnType: ret,
		Body:       body,
		Span:       kwTok.Span.Merge(rbraceSpan),
	}, nil
}

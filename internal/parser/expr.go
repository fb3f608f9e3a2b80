package parser

import (
	"lumen/internal/ast"
	"lumen/internal/diag"
	"lumen/internal/token"
)

// binaryPrec is the Pratt precedence table, highest binds tightest. Every
// entry is left-associative: the right operand is parsed with minPrec =
// prec+1.
var binaryPrec = map[token.Kind]int{
	token.Dot: 100,

	token.Star: 90, token.Slash: 90, token.Percent: 90,

	token.Plus: 80, token.Minus: 80,

	token.Shl: 70, token.Shr: 70,

	token.Amp: 60, token.Pipe: 60, token.Caret: 60,

	token.EqEq: 50, token.NotEq: 50, token.Gt: 50, token.GtEq: 50, token.Lt: 50, token.LtEq: 50,

	token.And: 40, token.Or: 40,
}

// parseExpr is the entry point for expression parsing: Pratt parsing
// starting at the lowest precedence.
func (p *Parser) parseExpr() (ast.ExprID, *diag.Error) {
	return p.pratt(0)
}

// pratt implements the standard operator-precedence ("min_prec") Pratt
// loop: a prefix, then postfix forms consumed unconditionally, then
// infix operators consumed while their precedence is at least minPrec.
func (p *Parser) pratt(minPrec int) (ast.ExprID, *diag.Error) {
	left, err := p.parsePrefix()
	if err != nil {
		return 0, err
	}

	for {
		switch p.cur.Kind {
		case token.LParen:
			left, err = p.parseCall(left)
			if err != nil {
				return 0, err
			}
			continue
		case token.LBracket:
			left, err = p.parseIndex(left)
			if err != nil {
				return 0, err
			}
			continue
		case token.LBrace:
			if p.allowStructLiteral {
				left, err = p.parseStructLiteral(left)
				if err != nil {
					return 0, err
				}
				continue
			}
		}

		prec, ok := binaryPrec[p.cur.Kind]
		if !ok || prec < minPrec {
			return left, nil
		}
		opTok, err := p.advance()
		if err != nil {
			return 0, err
		}
		right, err := p.pratt(prec + 1)
		if err != nil {
			return 0, err
		}
		span := p.file.Exprs.Get(uint32(left)).Span.Merge(p.file.Exprs.Get(uint32(right)).Span)
		id := p.file.Exprs.Allocate(ast.Expr{Kind: ast.ExprBinary, Span: span, Op: opTok.Kind, Left: left, Right: right})
		left = ast.ExprID(id)
	}
}

// parsePrefix parses a prefix production: an identifier path, a literal,
// a parenthesized expression, an array literal, or a unary operator.
func (p *Parser) parsePrefix() (ast.ExprID, *diag.Error) {
	switch p.cur.Kind {
	case token.Identifier:
		name, err := p.parseDottedName()
		if err != nil {
			return 0, err
		}
		id := p.file.Exprs.Allocate(ast.Expr{Kind: ast.ExprIdent, Span: name.Span, Name: name})
		return ast.ExprID(id), nil

	case token.LitUInt:
		tok, err := p.advance()
		if err != nil {
			return 0, err
		}
		id := p.file.Exprs.Allocate(ast.Expr{Kind: ast.ExprLitUInt, Span: tok.Span, UIntVal: tok.UInt})
		return ast.ExprID(id), nil

	case token.LitInt:
		tok, err := p.advance()
		if err != nil {
			return 0, err
		}
		id := p.file.Exprs.Allocate(ast.Expr{Kind: ast.ExprLitInt, Span: tok.Span, IntVal: tok.Int})
		return ast.ExprID(id), nil

	case token.LitFloat:
		tok, err := p.advance()
		if err != nil {
			return 0, err
		}
		id := p.file.Exprs.Allocate(ast.Expr{Kind: ast.ExprLitFloat, Span: tok.Span, FloatVal: tok.Float})
		return ast.ExprID(id), nil

	case token.LitString:
		tok, err := p.advance()
		if err != nil {
			return 0, err
		}
		id := p.file.Exprs.Allocate(ast.Expr{Kind: ast.ExprLitString, Span: tok.Span, StrVal: tok.Text})
		return ast.ExprID(id), nil

	case token.KwTrue, token.KwFalse:
		tok, err := p.advance()
		if err != nil {
			return 0, err
		}
		v := uint64(0)
		if tok.Kind == token.KwTrue {
			v = 1
		}
		id := p.file.Exprs.Allocate(ast.Expr{Kind: ast.ExprLitUInt, Span: tok.Span, UIntVal: v})
		return ast.ExprID(id), nil

	case token.LParen:
		if _, err := p.advance(); err != nil {
			return 0, err
		}
		inner, err := p.pratt(0)
		if err != nil {
			return 0, err
		}
		if _, err := p.expect(token.RParen, diag.Expression, "expected ')' to close parenthesized expression"); err != nil {
			return 0, err
		}
		return inner, nil

	case token.LBracket:
		return p.parseArrayLiteral()

	case token.Minus, token.Star, token.Amp, token.Tilde, token.Bang:
		opTok, err := p.advance()
		if err != nil {
			return 0, err
		}
		operand, err := p.pratt(unaryPrec)
		if err != nil {
			return 0, err
		}
		span := opTok.Span.Merge(p.file.Exprs.Get(uint32(operand)).Span)
		id := p.file.Exprs.Allocate(ast.Expr{Kind: ast.ExprUnary, Span: span, Op: opTok.Kind, Operand: operand})
		return ast.ExprID(id), nil

	default:
		return 0, diag.New(diag.Expression, "expected an expression", p.cur.Span)
	}
}

// unaryPrec binds unary prefixes tighter than every binary operator
// except field access (the tightest binary op, at 100).
const unaryPrec = 95

func (p *Parser) parseArrayLiteral() (ast.ExprID, *diag.Error) {
	lbracket, err := p.advance()
	if err != nil {
		return 0, err
	}
	var elems []ast.ExprID
	if !p.at(token.RBracket) {
		for {
			e, err := p.pratt(0)
			if err != nil {
				return 0, err
			}
			elems = append(elems, e)
			if !p.at(token.Comma) {
				break
			}
			if _, err := p.advance(); err != nil {
				return 0, err
			}
			if p.at(token.RBracket) {
				break
			}
		}
	}
	rbracket, err := p.expect(token.RBracket, diag.Expression, "expected ']' to close array literal")
	if err != nil {
		return 0, err
	}
	id := p.file.Exprs.Allocate(ast.Expr{Kind: ast.ExprLitArray, Span: lbracket.Span.Merge(rbracket.Span), Elements: elems})
	return ast.ExprID(id), nil
}

func (p *Parser) parseCall(callee ast.ExprID) (ast.ExprID, *diag.Error) {
	if _, err := p.advance(); err != nil { // '('
		return 0, err
	}
	var args []ast.ExprID
	if !p.at(token.RParen) {
		for {
			a, err := p.pratt(0)
			if err != nil {
				return 0, err
			}
			args = append(args, a)
			if !p.at(token.Comma) {
				break
			}
			if _, err := p.advance(); err != nil {
				return 0, err
			}
			if p.at(token.RParen) {
				break
			}
		}
	}
	rparen, err := p.expect(token.RParen, diag.Expression, "expected ')' to close call arguments")
	if err != nil {
		return 0, err
	}
	span := p.file.Exprs.Get(uint32(callee)).Span.Merge(rparen.Span)
	id := p.file.Exprs.Allocate(ast.Expr{Kind: ast.ExprCall, Span: span, Callee: callee, Args: args})
	return ast.ExprID(id), nil
}

func (p *Parser) parseIndex(left ast.ExprID) (ast.ExprID, *diag.Error) {
	if _, err := p.advance(); err != nil { // '['
		return 0, err
	}
	idx, err := p.pratt(0)
	if err != nil {
		return 0, err
	}
	rbracket, err := p.expect(token.RBracket, diag.Expression, "expected ']' to close index expression")
	if err != nil {
		return 0, err
	}
	span := p.file.Exprs.Get(uint32(left)).Span.Merge(rbracket.Span)
	id := p.file.Exprs.Allocate(ast.Expr{Kind: ast.ExprIndex, Span: span, Op: token.LBracket, Left: left, Right: idx})
	return ast.ExprID(id), nil
}

// parseStructLiteral parses `{field:expr, …}` immediately following an
// identifier-name expression.
func (p *Parser) parseStructLiteral(left ast.ExprID) (ast.ExprID, *diag.Error) {
	leftExpr := p.file.Exprs.Get(uint32(left))
	var typeName ast.Name
	if leftExpr.Kind == ast.ExprIdent {
		typeName = leftExpr.Name
	}

	lbrace, err := p.advance()
	if err != nil {
		return 0, err
	}
	var fields []ast.StructFieldInit
	if !p.at(token.RBrace) {
		for {
			fnTok, err := p.expect(token.Identifier, diag.Expression, "expected field name")
			if err != nil {
				return 0, err
			}
			if _, err := p.expect(token.Colon, diag.Expression, "expected ':' after field name"); err != nil {
				return 0, err
			}
			v, err := p.pratt(0)
			if err != nil {
				return 0, err
			}
			fields = append(fields, ast.StructFieldInit{Name: fnTok.Symbol, Value: v, Span: fnTok.Span.Merge(p.file.Exprs.Get(uint32(v)).Span)})
			if !p.at(token.Comma) {
				break
			}
			if _, err := p.advance(); err != nil {
				return 0, err
			}
			if p.at(token.RBrace) {
				break
			}
		}
	}
	rbrace, err := p.expect(token.RBrace, diag.Expression, "expected '}' to close struct literal")
	if err != nil {
		return 0, err
	}
	span := leftExpr.Span.Merge(lbrace.Span).Merge(rbrace.Span)
	id := p.file.Exprs.Allocate(ast.Expr{Kind: ast.ExprLitStruct, Span: span, StructType: typeName, Fields: fields})
	return ast.ExprID(id), nil
}

package parser

import (
	"lumen/internal/ast"
	"lumen/internal/diag"
	"lumen/internal/intern"
	"lumen/internal/source"
	"lumen/internal/token"
)

var assignOps = map[token.Kind]bool{
	token.Eq: true, token.PlusEq: true, token.MinusEq: true,
	token.StarEq: true, token.SlashEq: true, token.PercentEq: true,
	token.ShlEq: true, token.ShrEq: true,
	token.AmpEq: true, token.PipeEq: true, token.CaretEq: true,
}

// parseBlock parses `{ stmt* }` and returns the statement ids plus the
// span of the closing brace, for the caller to merge into its own span.
func (p *Parser) parseBlock() ([]ast.StmtID, source.Span, *diag.Error) {
	if _, err := p.expect(token.LBrace, diag.Statement, "expected '{' to begin block"); err != nil {
		return nil, source.Span{}, err
	}
	var stmts []ast.StmtID
	for !p.at(token.RBrace) {
		id, err := p.parseStmt()
		if err != nil {
			return nil, source.Span{}, err
		}
		stmts = append(stmts, id)
	}
	rbrace, err := p.expect(token.RBrace, diag.Statement, "expected '}' to close block")
	if err != nil {
		return nil, source.Span{}, err
	}
	return stmts, rbrace.Span, nil
}

// parseStmt parses one statement, dispatching on its leading keyword.
func (p *Parser) parseStmt() (ast.StmtID, *diag.Error) {
	switch p.cur.Kind {
	case token.KwIf:
		return p.parseIf()
	case token.KwMatch:
		return p.parseMatch()
	case token.KwWhile:
		return p.parseWhile()
	case token.KwFor:
		return p.parseFor()
	case token.KwLet, token.KwVar:
		return p.parseLocalDecl()
	case token.KwReturn:
		return p.parseReturn()
	case token.KwContinue:
		return p.parseContinue()
	case token.KwBreak:
		return p.parseBreak()
	default:
		return p.parseExprOrAssignStmt()
	}
}

func (p *Parser) parseLocalDecl() (ast.StmtID, *diag.Error) {
	kwTok, err := p.advance()
	mutable := kwTok.Kind == token.KwVar
	if err != nil {
		return 0, err
	}
	nameTok, err := p.expect(token.Identifier, diag.Declaration, "expected declaration name")
	if err != nil {
		return 0, err
	}
	if _, err := p.expect(token.Colon, diag.Declaration, "expected ':' after declaration name"); err != nil {
		return 0, err
	}
	typ, err := p.parseTypeAnnot()
	if err != nil {
		return 0, err
	}
	if _, err := p.expect(token.Eq, diag.Declaration, "declarations must be initialized"); err != nil {
		return 0, err
	}
	val, err := p.parseExpr()
	if err != nil {
		return 0, err
	}
	semi, err := p.expect(token.Semicolon, diag.LineEnd, "expected ';' after declaration")
	if err != nil {
		return 0, err
	}
	id := p.file.Stmts.Allocate(ast.Stmt{
		Kind:        ast.StmtDeclaration,
		Span:        kwTok.Span.Merge(semi.Span),
		DeclName:    nameTok.Symbol,
		DeclMutable: mutable,
		DeclType:    typ,
		DeclValue:   val,
	})
	return ast.StmtID(id), nil
}

func (p *Parser) parseReturn() (ast.StmtID, *diag.Error) {
	kwTok, err := p.advance()
	if err != nil {
		return 0, err
	}
	var val ast.ExprID = ast.NoExpr
	has := false
	if !p.at(token.Semicolon) {
		val, err = p.parseExpr()
		if err != nil {
			return 0, err
		}
		has = true
	}
	semi, err := p.expect(token.Semicolon, diag.LineEnd, "expected ';' after return")
	if err != nil {
		return 0, err
	}
	id := p.file.Stmts.Allocate(ast.Stmt{
		Kind: ast.StmtReturn, Span: kwTok.Span.Merge(semi.Span),
		HasReturnValue: has, ReturnValue: val,
	})
	return ast.StmtID(id), nil
}

func (p *Parser) parseContinue() (ast.StmtID, *diag.Error) {
	kwTok, err := p.advance()
	if err != nil {
		return 0, err
	}
	semi, err := p.expect(token.Semicolon, diag.LineEnd, "expected ';' after continue")
	if err != nil {
		return 0, err
	}
	id := p.file.Stmts.Allocate(ast.Stmt{Kind: ast.StmtContinue, Span: kwTok.Span.Merge(semi.Span)})
	return ast.StmtID(id), nil
}

func (p *Parser) parseBreak() (ast.StmtID, *diag.Error) {
	kwTok, err := p.advance()
	if err != nil {
		return 0, err
	}
	semi, err := p.expect(token.Semicolon, diag.LineEnd, "expected ';' after break")
	if err != nil {
		return 0, err
	}
	id := p.file.Stmts.Allocate(ast.Stmt{Kind: ast.StmtBreak, Span: kwTok.Span.Merge(semi.Span)})
	return ast.StmtID(id), nil
}

// parseIf parses `if (expr) { … } (else if (expr) { … })* (else { … })?`.
// An "else if" chain is represented as a single nested StmtIf inside
// ElseBody.
func (p *Parser) parseIf() (ast.StmtID, *diag.Error) {
	kwTok, err := p.advance()
	if err != nil {
		return 0, err
	}
	if _, err := p.expect(token.LParen, diag.Conditional, "expected '(' after 'if'"); err != nil {
		return 0, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return 0, err
	}
	if _, err := p.expect(token.RParen, diag.Conditional, "expected ')' after if condition"); err != nil {
		return 0, err
	}
	thenBody, thenEnd, err := p.parseBlock()
	if err != nil {
		return 0, err
	}

	end := thenEnd
	hasElse := false
	var elseBody []ast.StmtID
	if p.at(token.KwElse) {
		hasElse = true
		if _, err := p.advance(); err != nil {
			return 0, err
		}
		if p.at(token.KwIf) {
			nested, err := p.parseIf()
			if err != nil {
				return 0, err
			}
			elseBody = []ast.StmtID{nested}
			end = p.file.Stmts.Get(uint32(nested)).Span
		} else {
			body, braceEnd, err := p.parseBlock()
			if err != nil {
				return 0, err
			}
			elseBody = body
			end = braceEnd
		}
	}

	id := p.file.Stmts.Allocate(ast.Stmt{
		Kind: ast.StmtIf, Span: kwTok.Span.Merge(end),
		IfCond: cond, ThenBody: thenBody, HasElse: hasElse, ElseBody: elseBody,
	})
	return ast.StmtID(id), nil
}

// parseWhile parses `while` with an optional parenthesized condition and
// a mandatory body. A missing condition is legal and equivalent to
// `while (true)`.
func (p *Parser) parseWhile() (ast.StmtID, *diag.Error) {
	kwTok, err := p.advance()
	if err != nil {
		return 0, err
	}
	var cond ast.ExprID = ast.NoExpr
	if p.at(token.LParen) {
		if _, err := p.advance(); err != nil {
			return 0, err
		}
		cond, err = p.parseExpr()
		if err != nil {
			return 0, err
		}
		if _, err := p.expect(token.RParen, diag.Loop, "expected ')' after while condition"); err != nil {
			return 0, err
		}
	}
	body, end, err := p.parseBlock()
	if err != nil {
		return 0, err
	}
	id := p.file.Stmts.Allocate(ast.Stmt{Kind: ast.StmtWhile, Span: kwTok.Span.Merge(end), Cond: cond, Body: body})
	return ast.StmtID(id), nil
}

// parseFor parses `for (init? ; cond? ; update-list?) body`.
func (p *Parser) parseFor() (ast.StmtID, *diag.Error) {
	kwTok, err := p.advance()
	if err != nil {
		return 0, err
	}
	if _, err := p.expect(token.LParen, diag.Loop, "expected '(' after 'for'"); err != nil {
		return 0, err
	}

	var init ast.StmtID = ast.NoStmt
	if !p.at(token.Semicolon) {
		init, err = p.parseLocalDecl() // includes its own trailing ';'
		if err != nil {
			return 0, err
		}
	} else {
		if _, err := p.advance(); err != nil {
			return 0, err
		}
	}

	var cond ast.ExprID = ast.NoExpr
	if !p.at(token.Semicolon) {
		cond, err = p.parseExpr()
		if err != nil {
			return 0, err
		}
	}
	if _, err := p.expect(token.Semicolon, diag.LineEnd, "expected ';' after for condition"); err != nil {
		return 0, err
	}

	var update []ast.StmtID
	if !p.at(token.RParen) {
		for {
			s, err := p.parseExprOrAssignStmtNoSemicolon()
			if err != nil {
				return 0, err
			}
			update = append(update, s)
			if !p.at(token.Comma) {
				break
			}
			if _, err := p.advance(); err != nil {
				return 0, err
			}
		}
	}
	if _, err := p.expect(token.RParen, diag.Loop, "expected ')' after for clauses"); err != nil {
		return 0, err
	}

	body, end, err := p.parseBlock()
	if err != nil {
		return 0, err
	}
	id := p.file.Stmts.Allocate(ast.Stmt{
		Kind: ast.StmtFor, Span: kwTok.Span.Merge(end),
		ForInit: init, ForCond: cond, ForUpdate: update, Body: body,
	})
	return ast.StmtID(id), nil
}

// parseMatch parses `match (expr) { pattern => { body } … (_ => { … })? }`.
func (p *Parser) parseMatch() (ast.StmtID, *diag.Error) {
	kwTok, err := p.advance()
	if err != nil {
		return 0, err
	}
	if _, err := p.expect(token.LParen, diag.Match, "expected '(' after 'match'"); err != nil {
		return 0, err
	}
	subject, err := p.parseExpr()
	if err != nil {
		return 0, err
	}
	if _, err := p.expect(token.RParen, diag.Match, "expected ')' after match subject"); err != nil {
		return 0, err
	}
	if _, err := p.expect(token.LBrace, diag.Match, "expected '{' to begin match body"); err != nil {
		return 0, err
	}

	sawDefault := false
	var arms []ast.MatchArm
	for !p.at(token.RBrace) {
		armStart := p.cur.Span
		isDefault := false
		var pattern ast.ExprID = ast.NoExpr
		if p.at(token.Identifier) && p.cur.Symbol == p.underscoreSymbol() {
			isDefault = true
			if _, err := p.advance(); err != nil {
				return 0, err
			}
		} else {
			pattern, err = p.parseExpr()
			if err != nil {
				return 0, err
			}
		}
		if _, err := p.expect(token.FatArrow, diag.Match, "expected '=>' after match pattern"); err != nil {
			return 0, err
		}
		body, braceEnd, err := p.parseBlock()
		if err != nil {
			return 0, err
		}
		if isDefault {
			if sawDefault {
				return 0, diag.New(diag.Match, "multiple default arms in match", armStart)
			}
			sawDefault = true
		}
		arms = append(arms, ast.MatchArm{Pattern: pattern, IsDefault: isDefault, Body: body, Span: armStart.Merge(braceEnd)})

		if p.at(token.Comma) {
			if _, err := p.advance(); err != nil {
				return 0, err
			}
		}
	}
	rbrace, err := p.expect(token.RBrace, diag.Match, "expected '}' to close match body")
	if err != nil {
		return 0, err
	}

	id := p.file.Stmts.Allocate(ast.Stmt{
		Kind: ast.StmtMatch, Span: kwTok.Span.Merge(rbrace.Span),
		MatchSubject: subject, Arms: arms,
	})
	return ast.StmtID(id), nil
}

// underscoreSymbol interns "_", the default-arm pattern token. Match
// patterns are otherwise ordinary expressions (there is no separate
// pattern grammar), so `_` is recognized as a bare identifier whose text
// is exactly "_".
func (p *Parser) underscoreSymbol() intern.SymbolID {
	return p.pool.Intern("_")
}

// parseExprOrAssignStmt parses an expression statement or an assignment,
// terminated by ';'. The leading expression is parsed with struct-literal
// postfix parsing disabled, so a bare `name { ... }` at statement position
// is not mistaken for a struct literal.
func (p *Parser) parseExprOrAssignStmt() (ast.StmtID, *diag.Error) {
	start := p.cur.Span
	prev := p.allowStructLiteral
	p.allowStructLiteral = false
	expr, err := p.parseExpr()
	p.allowStructLiteral = prev
	if err != nil {
		return 0, err
	}
	if assignOps[p.cur.Kind] {
		opTok, err := p.advance()
		if err != nil {
			return 0, err
		}
		val, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		semi, err := p.expect(token.Semicolon, diag.LineEnd, "expected ';' after assignment")
		if err != nil {
			return 0, err
		}
		id := p.file.Stmts.Allocate(ast.Stmt{
			Kind: ast.StmtAssignment, Span: start.Merge(semi.Span),
			AssignOp: opTok.Kind, AssignTarget: expr, AssignValue: val,
		})
		return ast.StmtID(id), nil
	}
	semi, err := p.expect(token.Semicolon, diag.LineEnd, "expected ';' after expression")
	if err != nil {
		return 0, err
	}
	id := p.file.Stmts.Allocate(ast.Stmt{Kind: ast.StmtExpr, Span: start.Merge(semi.Span), Expr: expr})
	return ast.StmtID(id), nil
}

// parseExprOrAssignStmtNoSemicolon is the same grammar used by a for
// loop's update-list entries, which are not terminated by ';'.
func (p *Parser) parseExprOrAssignStmtNoSemicolon() (ast.StmtID, *diag.Error) {
	start := p.cur.Span
	prev := p.allowStructLiteral
	p.allowStructLiteral = false
	expr, err := p.parseExpr()
	p.allowStructLiteral = prev
	if err != nil {
		return 0, err
	}
	if assignOps[p.cur.Kind] {
		opTok, err := p.advance()
		if err != nil {
			return 0, err
		}
		val, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		id := p.file.Stmts.Allocate(ast.Stmt{
			Kind: ast.StmtAssignment, Span: start.Merge(val2Span(p, val)),
			AssignOp: opTok.Kind, AssignTarget: expr, AssignValue: val,
		})
		return ast.StmtID(id), nil
	}
	id := p.file.Stmts.Allocate(ast.Stmt{Kind: ast.StmtExpr, Span: start.Merge(val2Span(p, expr)), Expr: expr})
	return ast.StmtID(id), nil
}

func val2Span(p *Parser, e ast.ExprID) source.Span {
	return p.file.Exprs.Get(uint32(e)).Span
}

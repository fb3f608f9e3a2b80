package parser

import (
	"lumen/internal/ast"
	"lumen/internal/diag"
	"lumen/internal/intern"
	"lumen/internal/token"
)

// parseModuleDecl consumes `module <name>;` and checks it against
// expectedModule (the basename of the directory this file lives in).
func (p *Parser) parseModuleDecl(expectedModule intern.SymbolID) *diag.Error {
	if !p.at(token.KwModule) {
		return diag.New(diag.ModuleDecl, "file must start with a module declaration", p.cur.Span)
	}
	if _, err := p.advance(); err != nil {
		return err
	}
	nameTok, err := p.expect(token.Identifier, diag.ModuleDecl, "expected module name after 'module'")
	if err != nil {
		return err
	}
	if nameTok.Symbol != expectedModule {
		return diag.New(diag.ModuleDecl, "module declaration does not match containing directory", nameTok.Span)
	}
	if _, err := p.expect(token.Semicolon, diag.LineEnd, "expected ';' after module declaration"); err != nil {
		return err
	}
	return nil
}

// parseImports consumes zero or more `import <name>;`.
func (p *Parser) parseImports() *diag.Error {
	for p.at(token.KwImport) {
		if _, err := p.advance(); err != nil {
			return err
		}
		nameTok, err := p.expect(token.Identifier, diag.Import, "expected module name after 'import'")
		if err != nil {
			return err
		}
		if _, err := p.expect(token.Semicolon, diag.LineEnd, "expected ';' after import"); err != nil {
			return err
		}
		if _, dup := p.file.Imports[nameTok.Symbol]; dup {
			return diag.New(diag.Import, "duplicate import", nameTok.Span)
		}
		p.file.Imports[nameTok.Symbol] = nameTok.Span
	}
	return nil
}

// parseTopLevelItems consumes zero or more `<visibility> <decl>` items
// until EOF, checking per-category name uniqueness as it goes.
func (p *Parser) parseTopLevelItems() *diag.Error {
	globalNames := make(map[intern.SymbolID]bool)
	funcNames := make(map[intern.SymbolID]bool)
	typeNames := make(map[intern.SymbolID]bool)

	for !p.at(token.EOF) {
		vis, err := p.parseVisibility()
		if err != nil {
			return err
		}

		switch p.cur.Kind {
		case token.KwStruct, token.KwEnum, token.KwUnion, token.KwUse:
			td, err := p.parseTypeDef(vis)
			if err != nil {
				return err
			}
			if typeNames[td.Name] {
				return diag.New(diag.TypeDefinition, "duplicate type name", td.Span)
			}
			typeNames[td.Name] = true
			p.file.Types = append(p.file.Types, *td)

		case token.KwLet, token.KwVar:
			g, err := p.parseGlobal(vis)
			if err != nil {
				return err
			}
			if globalNames[g.Name] {
				return diag.New(diag.Declaration, "duplicate global name", g.Span)
			}
			globalNames[g.Name] = true
			p.file.Globals = append(p.file.Globals, *g)

		case token.KwFn:
			fn, err := p.parseFunction(vis)
			if err != nil {
				return err
			}
			if funcNames[fn.Name] {
				return diag.New(diag.Function, "duplicate function name", fn.Span)
			}
			funcNames[fn.Name] = true
			p.file.Functions = append(p.file.Functions, *fn)

		default:
			return diag.New(diag.Declaration, "expected a type, global, or function declaration", p.cur.Span)
		}
	}
	return nil
}

// parseVisibility consumes the mandatory pub|prv|mod prefix of a
// top-level item.
func (p *Parser) parseVisibility() (ast.Visibility, *diag.Error) {
	switch p.cur.Kind {
	case token.KwPub:
		if _, err := p.advance(); err != nil {
			return 0, err
		}
		return ast.Public, nil
	case token.KwPrv:
		if _, err := p.advance(); err != nil {
			return 0, err
		}
		return ast.Private, nil
	case token.KwMod:
		if _, err := p.advance(); err != nil {
			return 0, err
		}
		return ast.ModuleVis, nil
	default:
		return 0, diag.New(diag.Declaration, "expected visibility (pub, prv, or mod)", p.cur.Span)
	}
}

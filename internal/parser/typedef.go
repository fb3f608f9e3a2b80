package parser

import (
	"lumen/internal/ast"
	"lumen/internal/diag"
	"lumen/internal/intern"
	"lumen/internal/token"
)

// parseTypeDef parses a struct, enum, union, or alias (`use`) definition.
func (p *Parser) parseTypeDef(vis ast.Visibility) (*ast.TypeDef, *diag.Error) {
	switch p.cur.Kind {
	case token.KwStruct:
		return p.parseFieldsTypeDef(vis, ast.TypeStruct)
	case token.KwUnion:
		return p.parseFieldsTypeDef(vis, ast.TypeUnion)
	case token.KwEnum:
		return p.parseEnumTypeDef(vis)
	case token.KwUse:
		return p.parseAliasTypeDef(vis)
	default:
		return nil, diag.New(diag.TypeDefinition, "expected struct, enum, union, or use", p.cur.Span)
	}
}

// parseFieldsTypeDef parses `struct Name { field: type, ... }` or the
// union equivalent; both share the same field-list grammar.
func (p *Parser) parseFieldsTypeDef(vis ast.Visibility, kind ast.TypeDefBodyKind) (*ast.TypeDef, *diag.Error) {
	kwTok, err := p.advance()
	if err != nil {
		return nil, err
	}
	nameTok, err := p.expect(token.Identifier, diag.TypeDefinition, "expected type name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LBrace, diag.TypeDefinition, "expected '{' to begin type body"); err != nil {
		return nil, err
	}

	seen := make(map[intern.SymbolID]bool)
	var fields []ast.Field
	for !p.at(token.RBrace) {
		fnTok, err := p.expect(token.Identifier, diag.TypeDefinition, "expected field name")
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.Colon, diag.TypeDefinition, "expected ':' after field name"); err != nil {
			return nil, err
		}
		ft, err := p.parseTypeAnnot()
		if err != nil {
			return nil, err
		}
		if seen[fnTok.Symbol] {
			return nil, diag.New(diag.TypeDefinition, "duplicate field name", fnTok.Span)
		}
		seen[fnTok.Symbol] = true
		fields = append(fields, ast.Field{Name: fnTok.Symbol, Type: ft, Span: fnTok.Span})

		if p.at(token.Comma) {
			if _, err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		break
	}
	rbrace, err := p.expect(token.RBrace, diag.TypeDefinition, "expected '}' to close type body")
	if err != nil {
		return nil, err
	}

	return &ast.TypeDef{
		Name:       nameTok.Symbol,
		Visibility: vis,
		Span:       kwTok.Span.Merge(rbrace.Span),
		BodyKind:   kind,
		Fields:     fields,
	}, nil
}

// parseEnumTypeDef parses `enum Name { Variant (= n)?, ... }`.
func (p *Parser) parseEnumTypeDef(vis ast.Visibility) (*ast.TypeDef, *diag.Error) {
	kwTok, err := p.advance()
	if err != nil {
		return nil, err
	}
	nameTok, err := p.expect(token.Identifier, diag.TypeDefinition, "expected type name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LBrace, diag.TypeDefinition, "expected '{' to begin enum body"); err != nil {
		return nil, err
	}

	seenName := make(map[intern.SymbolID]bool)
	seenValue := make(map[uint64]bool)
	var variants []ast.EnumVariant
	var next uint64 // previous + 1, starting at 0

	for !p.at(token.RBrace) {
		vnTok, err := p.expect(token.Identifier, diag.TypeDefinition, "expected variant name")
		if err != nil {
			return nil, err
		}
		explicit := false
		value := next
		if p.at(token.Eq) {
			if _, err := p.advance(); err != nil {
				return nil, err
			}
			vTok, err := p.expect(token.LitUInt, diag.TypeDefinition, "expected positive integer variant value")
			if err != nil {
				return nil, err
			}
			value = vTok.UInt
			explicit = true
		}
		if seenName[vnTok.Symbol] {
			return nil, diag.New(diag.TypeDefinition, "duplicate variant name", vnTok.Span)
		}
		if seenValue[value] {
			return nil, diag.New(diag.TypeDefinition, "duplicate variant value", vnTok.Span)
		}
		seenName[vnTok.Symbol] = true
		seenValue[value] = true
		variants = append(variants, ast.EnumVariant{Name: vnTok.Symbol, Value: value, HasExplicitValue: explicit, Span: vnTok.Span})
		next = value + 1

		if p.at(token.Comma) {
			if _, err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		break
	}
	rbrace, err := p.expect(token.RBrace, diag.TypeDefinition, "expected '}' to close enum body")
	if err != nil {
		return nil, err
	}

	return &ast.TypeDef{
		Name:       nameTok.Symbol,
		Visibility: vis,
		Span:       kwTok.Span.Merge(rbrace.Span),
		BodyKind:   ast.TypeEnum,
		Variants:   variants,
	}, nil
}

// parseAliasTypeDef parses `use Name = type-annot ;`.
func (p *Parser) parseAliasTypeDef(vis ast.Visibility) (*ast.TypeDef, *diag.Error) {
	kwTok, err := p.advance()
	if err != nil {
		return nil, err
	}
	nameTok, err := p.expect(token.Identifier, diag.TypeDefinition, "expected type name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Eq, diag.TypeDefinition, "expected '=' in type alias"); err != nil {
		return nil, err
	}
	annot, err := p.parseTypeAnnot()
	if err != nil {
		return nil, err
	}
	semi, err := p.expect(token.Semicolon, diag.LineEnd, "expected ';' after type alias")
	if err != nil {
		return nil, err
	}
	return &ast.TypeDef{
		Name:       nameTok.Symbol,
		Visibility: vis,
		Span:       kwTok.Span.Merge(semi.Span),
		BodyKind:   ast.TypeAlias,
		Alias:      annot,
	}, nil
}

package semantic

import (
	"lumen/internal/ast"
	"lumen/internal/diag"
	"lumen/internal/token"
)

// resolveExprs implements pass 2 step 4 (spec §4.5, marked optional for
// this core): every identifier expression is bound to the nearest
// enclosing declaration — function parameter, local, global, function, or
// enum variant — walking a block-scoped stack that shadows on Declare and
// restores on Leave, exactly as spec §4.5's "Name shadowing" note
// describes.
func resolveExprs(files []*File) *diag.Error {
	for _, f := range files {
		for _, g := range f.Globals {
			if !g.syntaxValue.IsValid() {
				continue
			}
			s := newScopeStack()
			s.Enter()
			if err := resolveExpr(f, s, g.syntaxValue); err != nil {
				return err
			}
			s.Leave()
		}
		for _, fn := range f.Functions {
			s := newScopeStack()
			s.Enter()
			for _, p := range fn.Params {
				s.Declare(p.Name, &Binding{Kind: BindArgument, Argument: p})
			}
			if err := resolveStmts(f, s, fn.syntaxBody); err != nil {
				return err
			}
			s.Leave()
		}
	}
	return nil
}

func resolveStmts(f *File, s *scopeStack, ids []ast.StmtID) *diag.Error {
	for _, id := range ids {
		if err := resolveStmt(f, s, id); err != nil {
			return err
		}
	}
	return nil
}

func resolveBlock(f *File, s *scopeStack, ids []ast.StmtID) *diag.Error {
	s.Enter()
	err := resolveStmts(f, s, ids)
	s.Leave()
	return err
}

func resolveStmt(f *File, s *scopeStack, id ast.StmtID) *diag.Error {
	st := f.Syntax.Stmts.Get(uint32(id))

	switch st.Kind {
	case ast.StmtDeclaration:
		if err := resolveExpr(f, s, st.DeclValue); err != nil {
			return err
		}
		s.Declare(st.DeclName, &Binding{Kind: BindLocal, Local: &LocalDecl{Name: st.DeclName, Mutable: st.DeclMutable}})

	case ast.StmtAssignment:
		if err := resolveExpr(f, s, st.AssignTarget); err != nil {
			return err
		}
		if err := resolveExpr(f, s, st.AssignValue); err != nil {
			return err
		}

	case ast.StmtExpr:
		if err := resolveExpr(f, s, st.Expr); err != nil {
			return err
		}

	case ast.StmtWhile:
		if st.Cond.IsValid() {
			if err := resolveExpr(f, s, st.Cond); err != nil {
				return err
			}
		}
		if err := resolveBlock(f, s, st.Body); err != nil {
			return err
		}

	case ast.StmtFor:
		s.Enter()
		if st.ForInit.IsValid() {
			if err := resolveStmt(f, s, st.ForInit); err != nil {
				s.Leave()
				return err
			}
		}
		if st.ForCond.IsValid() {
			if err := resolveExpr(f, s, st.ForCond); err != nil {
				s.Leave()
				return err
			}
		}
		for _, upd := range st.ForUpdate {
			if err := resolveStmt(f, s, upd); err != nil {
				s.Leave()
				return err
			}
		}
		if err := resolveBlock(f, s, st.Body); err != nil {
			s.Leave()
			return err
		}
		s.Leave()

	case ast.StmtIf:
		if err := resolveExpr(f, s, st.IfCond); err != nil {
			return err
		}
		if err := resolveBlock(f, s, st.ThenBody); err != nil {
			return err
		}
		if st.HasElse {
			if err := resolveBlock(f, s, st.ElseBody); err != nil {
				return err
			}
		}

	case ast.StmtMatch:
		if err := resolveExpr(f, s, st.MatchSubject); err != nil {
			return err
		}
		for _, arm := range st.Arms {
			if !arm.IsDefault {
				if err := resolveExpr(f, s, arm.Pattern); err != nil {
					return err
				}
			}
			if err := resolveBlock(f, s, arm.Body); err != nil {
				return err
			}
		}

	case ast.StmtReturn:
		if st.HasReturnValue {
			if err := resolveExpr(f, s, st.ReturnValue); err != nil {
				return err
			}
		}

	case ast.StmtContinue, ast.StmtBreak:
		// Nothing to resolve.
	}
	return nil
}

func resolveExpr(f *File, s *scopeStack, id ast.ExprID) *diag.Error {
	if !id.IsValid() {
		return nil
	}
	e := f.Syntax.Exprs.Get(uint32(id))

	switch e.Kind {
	case ast.ExprIdent:
		return resolveIdent(f, s, id, e)

	case ast.ExprLitUInt, ast.ExprLitInt, ast.ExprLitFloat, ast.ExprLitString:
		return nil

	case ast.ExprLitArray:
		for _, el := range e.Elements {
			if err := resolveExpr(f, s, el); err != nil {
				return err
			}
		}
		return nil

	case ast.ExprLitStruct:
		for _, fi := range e.Fields {
			if err := resolveExpr(f, s, fi.Value); err != nil {
				return err
			}
		}
		return nil

	case ast.ExprUnary:
		return resolveExpr(f, s, e.Operand)

	case ast.ExprBinary:
		if err := resolveExpr(f, s, e.Left); err != nil {
			return err
		}
		if e.Op == token.Dot {
			// The right-hand side names a field, not a variable — it is
			// resolved against the left side's type, which is out of
			// scope for this core (spec §4.5 step 4 covers identifier
			// binding, not field lookup).
			return nil
		}
		return resolveExpr(f, s, e.Right)

	case ast.ExprIndex:
		if err := resolveExpr(f, s, e.Left); err != nil {
			return err
		}
		return resolveExpr(f, s, e.Right)

	case ast.ExprCall:
		if err := resolveExpr(f, s, e.Callee); err != nil {
			return err
		}
		for _, a := range e.Args {
			if err := resolveExpr(f, s, a); err != nil {
				return err
			}
		}
		return nil

	default:
		return nil
	}
}

// resolveIdent binds a (possibly multi-segment) identifier expression to
// its declaration: a scope-stack lookup for a bare name, or
// EnumType::Variant for a two-segment name.
func resolveIdent(f *File, s *scopeStack, id ast.ExprID, e *ast.Expr) *diag.Error {
	if e.Name.Single() {
		sym := e.Name.Last()
		if b, ok := s.Lookup(sym); ok {
			f.ExprBindings[id] = b
			return nil
		}
		if fn, ok := f.funcsByName[sym]; ok {
			f.ExprBindings[id] = &Binding{Kind: BindFunction, Function: fn}
			return nil
		}
		if g, ok := f.globsByName[sym]; ok {
			f.ExprBindings[id] = &Binding{Kind: BindGlobal, Global: g}
			return nil
		}
		return diag.New(diag.Expression, "unresolved identifier", e.Name.Span)
	}

	if len(e.Name.Segments) == 2 {
		enumName, variantName := e.Name.Segments[0], e.Name.Segments[1]
		if td, ok := f.typesByName[enumName]; ok && td.BodyKind == ast.TypeEnum {
			for i := range td.Variants {
				if td.Variants[i].Name == variantName {
					f.ExprBindings[id] = &Binding{Kind: BindEnumVariant, Enum: td, Variant: &td.Variants[i]}
					return nil
				}
			}
		}
	}
	return diag.New(diag.Expression, "unresolved identifier", e.Name.Span)
}

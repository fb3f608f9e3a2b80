package parser

import (
	"testing"

	"lumen/internal/ast"
	"lumen/internal/intern"
	"lumen/internal/source"
	"lumen/internal/token"
)

func parseText(t *testing.T, text string) (*ast.File, *intern.Pool) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("t.code", []byte(text))
	pool := intern.NewPool(token.ReservedTable())
	path := pool.InternPath("t.code")
	module := pool.Intern("m")
	name := pool.Intern("t")
	f, err := ParseFile(fs, id, pool, path, name, module)
	if err != nil {
		t.Fatalf("ParseFile(%q) error: %v", text, err)
	}
	return f, pool
}

func parseTextErr(t *testing.T, text string) *testing.T {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("t.code", []byte(text))
	pool := intern.NewPool(token.ReservedTable())
	path := pool.InternPath("t.code")
	module := pool.Intern("m")
	name := pool.Intern("t")
	if _, err := ParseFile(fs, id, pool, path, name, module); err == nil {
		t.Fatalf("ParseFile(%q): expected an error, got none", text)
	}
	return t
}

func TestModuleDeclAndEmptyFile(t *testing.T) {
	f, pool := parseText(t, "module m;")
	if f.Module != pool.Intern("m") {
		t.Fatalf("expected module m")
	}
	if len(f.Functions) != 0 || len(f.Globals) != 0 || len(f.Types) != 0 {
		t.Fatalf("expected an empty file, got %+v", f)
	}
}

func TestModuleDeclMismatchIsAnError(t *testing.T) {
	parseTextErr(t, "module other;")
}

func TestImports(t *testing.T) {
	f, pool := parseText(t, "module m; import util; import net;")
	if len(f.Imports) != 2 {
		t.Fatalf("expected two imports, got %d", len(f.Imports))
	}
	if _, ok := f.Imports[pool.Intern("util")]; !ok {
		t.Fatalf("expected import of util")
	}
}

func TestFunctionSignatureAndVisibility(t *testing.T) {
	f, pool := parseText(t, `
module m;
pub fn add(a: i32, b: i32) -> i32 {
	return a + b;
}
`)
	if len(f.Functions) != 1 {
		t.Fatalf("expected one function, got %d", len(f.Functions))
	}
	fn := f.Functions[0]
	if fn.Name != pool.Intern("add") {
		t.Fatalf("expected function named add")
	}
	if fn.Visibility != ast.Public {
		t.Fatalf("expected pub visibility")
	}
	if len(fn.Params) != 2 {
		t.Fatalf("expected two params, got %d", len(fn.Params))
	}
	if len(fn.Body) != 1 {
		t.Fatalf("expected one statement in body, got %d", len(fn.Body))
	}
	ret := f.Stmts.Get(uint32(fn.Body[0]))
	if ret.Kind != ast.StmtReturn || !ret.HasReturnValue {
		t.Fatalf("expected a return statement with a value, got %+v", ret)
	}
	expr := f.Exprs.Get(uint32(ret.ReturnValue))
	if expr.Kind != ast.ExprBinary || expr.Op != token.Plus {
		t.Fatalf("expected a + binary expression, got %+v", expr)
	}
}

func TestOperatorPrecedence(t *testing.T) {
	// 1 + 2 * 3 must parse as 1 + (2 * 3), not (1 + 2) * 3.
	f, _ := parseText(t, `
module m;
pub fn f() -> i32 {
	return 1 + 2 * 3;
}
`)
	ret := f.Stmts.Get(uint32(f.Functions[0].Body[0]))
	top := f.Exprs.Get(uint32(ret.ReturnValue))
	if top.Kind != ast.ExprBinary || top.Op != token.Plus {
		t.Fatalf("expected top-level + , got %+v", top)
	}
	left := f.Exprs.Get(uint32(top.Left))
	if left.Kind != ast.ExprLitUInt || left.UIntVal != 1 {
		t.Fatalf("expected left operand 1, got %+v", left)
	}
	right := f.Exprs.Get(uint32(top.Right))
	if right.Kind != ast.ExprBinary || right.Op != token.Star {
		t.Fatalf("expected right operand to be a * expression, got %+v", right)
	}
}

func TestStructDefinitionAndLiteral(t *testing.T) {
	f, pool := parseText(t, `
module m;
pub struct Point { x: i32, y: i32 }
pub fn origin() -> Point {
	let p: Point = Point{x: 0, y: 0};
	return p;
}
`)
	if len(f.Types) != 1 || f.Types[0].BodyKind != ast.TypeStruct {
		t.Fatalf("expected one struct type")
	}
	if len(f.Types[0].Fields) != 2 {
		t.Fatalf("expected two fields, got %d", len(f.Types[0].Fields))
	}

	decl := f.Stmts.Get(uint32(f.Functions[0].Body[0]))
	if decl.Kind != ast.StmtDeclaration {
		t.Fatalf("expected a declaration statement")
	}
	lit := f.Exprs.Get(uint32(decl.DeclValue))
	if lit.Kind != ast.ExprLitStruct || lit.StructType.Last() != pool.Intern("Point") {
		t.Fatalf("expected a Point struct literal, got %+v", lit)
	}
	if len(lit.Fields) != 2 {
		t.Fatalf("expected two field initializers, got %d", len(lit.Fields))
	}
}

func TestEnumAutoNumbering(t *testing.T) {
	f, _ := parseText(t, `
module m;
pub enum Color { Red, Green, Blue = 10, Cyan }
`)
	variants := f.Types[0].Variants
	want := map[uint64]bool{0: true, 1: true, 10: true, 11: true}
	for _, v := range variants {
		if !want[v.Value] {
			t.Fatalf("unexpected variant value %d", v.Value)
		}
	}
}

func TestStructLiteralRejectedAtBareStatementPosition(t *testing.T) {
	// Open Question (b): `{` after an identifier is only a struct literal
	// in contexts that explicitly permit an expression (an initializer,
	// here); at bare statement position it's rejected rather than guessed
	// at, since it is neither a valid struct literal there nor any other
	// statement form.
	parseTextErr(t, `
module m;
pub struct Point { x: i32 }
pub fn f() {
	Point { x: 1 };
}
`)
}

func TestWhileWithNoConditionIsLegal(t *testing.T) {
	f, _ := parseText(t, `
module m;
pub fn f() {
	while {
		break;
	}
}
`)
	stmt := f.Stmts.Get(uint32(f.Functions[0].Body[0]))
	if stmt.Kind != ast.StmtWhile || stmt.Cond.IsValid() {
		t.Fatalf("expected a conditionless while, got %+v", stmt)
	}
}

func TestDuplicateFunctionNameIsAnError(t *testing.T) {
	parseTextErr(t, `
module m;
pub fn f() {}
pub fn f() {}
`)
}

func TestPointerAndSliceModifiers(t *testing.T) {
	f, _ := parseText(t, `
module m;
pub struct List { items: []var i32, head: *var i32 }
`)
	fields := f.Types[0].Fields
	items := f.Annot.Get(uint32(fields[0].Type))
	if len(items.Modifiers) != 1 || items.Modifiers[0].Kind != ast.Slice {
		t.Fatalf("expected a slice modifier, got %+v", items)
	}
	head := f.Annot.Get(uint32(fields[1].Type))
	if len(head.Modifiers) != 1 || head.Modifiers[0].Kind != ast.Pointer {
		t.Fatalf("expected a pointer modifier, got %+v", head)
	}
}

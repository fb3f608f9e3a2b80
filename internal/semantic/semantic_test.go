package semantic

import (
	"errors"
	"path/filepath"
	"testing"

	"lumen/internal/ast"
	"lumen/internal/intern"
	"lumen/internal/loader"
	"lumen/internal/source"
	"lumen/internal/token"
)

// fakeFS mirrors loader's own test fake: a flat map of absolute paths to
// file contents, with directory membership derived from path prefixes.
type fakeFS struct {
	files map[string][]byte
}

func newFakeFS() *fakeFS { return &fakeFS{files: make(map[string][]byte)} }

func (f *fakeFS) put(path, content string) { f.files[filepath.Clean(path)] = []byte(content) }

func (f *fakeFS) ReadFile(path string) ([]byte, error) {
	content, ok := f.files[filepath.Clean(path)]
	if !ok {
		return nil, errors.New("no such file: " + path)
	}
	return content, nil
}

func (f *fakeFS) ReadDir(dir string) ([]loader.Entry, error) {
	dir = filepath.Clean(dir)
	seen := make(map[string]bool)
	var out []loader.Entry
	for p := range f.files {
		rel, err := filepath.Rel(dir, p)
		if err != nil || rel == "." || filepath.IsAbs(rel) {
			continue
		}
		parts := splitFirst(rel)
		if seen[parts[0]] {
			continue
		}
		seen[parts[0]] = true
		out = append(out, loader.Entry{Name: parts[0], IsDir: len(parts) > 1})
	}
	return out, nil
}

func splitFirst(rel string) []string {
	var parts []string
	cur := rel
	for {
		dir, file := filepath.Split(filepath.Clean(cur))
		parts = append([]string{file}, parts...)
		if dir == "" {
			break
		}
		cur = filepath.Clean(dir)
	}
	return parts
}

func buildProgram(t *testing.T, fsys *fakeFS, entry string) (*Program, *intern.Pool) {
	t.Helper()
	pool := intern.NewPool(token.ReservedTable())
	fs := source.NewFileSet()
	tree, err := loader.Load(fsys, fs, pool, entry)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	prog, rerr := Resolve(tree, pool)
	if rerr != nil {
		t.Fatalf("Resolve failed: %v", rerr)
	}
	return prog, pool
}

// TestEndToEndSingleModule is spec §8 boundary scenario 6.
func TestEndToEndSingleModule(t *testing.T) {
	fsys := newFakeFS()
	fsys.put("/m/module.json", `{"dependencies":{}}`)
	fsys.put("/m/m.code", `module m; pub fn f() -> bool { return true; }`)

	prog, pool := buildProgram(t, fsys, "/m")

	mSym := pool.Intern("m")
	mod, ok := prog.Modules[mSym]
	if !ok {
		t.Fatalf("expected module %q", "m")
	}
	if len(mod.Files) != 1 || mod.Files[0].Name != mSym {
		t.Fatalf("expected one file named %q", "m")
	}
	f := mod.Files[0]
	if len(f.Functions) != 1 {
		t.Fatalf("expected one function, got %d", len(f.Functions))
	}
	fn := f.Functions[0]
	if fn.Visibility != ast.Public {
		t.Fatalf("expected function to be public")
	}
	if fn.ReturnType == nil || fn.ReturnType.Kind != KindPrimitive || fn.ReturnType.Primitive != Bool {
		t.Fatalf("expected resolved return type bool, got %+v", fn.ReturnType)
	}
}

func TestImportMustMatchDeclaredDependency(t *testing.T) {
	fsys := newFakeFS()
	fsys.put("/m/module.json", `{"dependencies":{}}`)
	fsys.put("/m/m.code", `module m; import util;`)

	pool := intern.NewPool(token.ReservedTable())
	fs := source.NewFileSet()
	tree, err := loader.Load(fsys, fs, pool, "/m")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if _, rerr := Resolve(tree, pool); rerr == nil {
		t.Fatal("expected an error for an import with no matching dependency")
	}
}

func TestCrossModuleTypeResolutionAndVisibility(t *testing.T) {
	fsys := newFakeFS()
	fsys.put("/m/module.json", `{"dependencies":{"util":"../util"}}`)
	fsys.put("/m/m.code", `
module m;
import util;
pub struct Box { inner: util::u::Point }
`)
	fsys.put("/util/module.json", `{"dependencies":{}}`)
	fsys.put("/util/u.code", `
module util;
pub struct Point { x: i32, y: i32 }
`)

	prog, pool := buildProgram(t, fsys, "/m")

	mSym := pool.Intern("m")
	mod := prog.Modules[mSym]
	f := mod.Files[0]
	box := f.Types[0]
	if len(box.Fields) != 1 {
		t.Fatalf("expected one field")
	}
	ft := box.Fields[0].Type
	if ft.Kind != KindCustom || ft.Custom.Name != pool.Intern("Point") {
		t.Fatalf("expected field type resolved to Point, got %+v", ft)
	}
	if box.Size != ft.Custom.Size {
		t.Fatalf("expected Box size %d to equal Point size %d", box.Size, ft.Custom.Size)
	}
	if ft.Custom.Size != 8 { // two i32 fields
		t.Fatalf("expected Point size 8, got %d", ft.Custom.Size)
	}
}

func TestPrivateTypeNotVisibleAcrossModules(t *testing.T) {
	fsys := newFakeFS()
	fsys.put("/m/module.json", `{"dependencies":{"util":"../util"}}`)
	fsys.put("/m/m.code", `
module m;
import util;
pub struct Box { inner: util::u::Secret }
`)
	fsys.put("/util/module.json", `{"dependencies":{}}`)
	fsys.put("/util/u.code", `
module util;
prv struct Secret { v: i32 }
`)

	pool := intern.NewPool(token.ReservedTable())
	fs := source.NewFileSet()
	tree, err := loader.Load(fsys, fs, pool, "/m")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if _, rerr := Resolve(tree, pool); rerr == nil {
		t.Fatal("expected a visibility error referencing a private type across modules")
	}
}

func TestCyclicAliasIsRejected(t *testing.T) {
	fsys := newFakeFS()
	fsys.put("/m/module.json", `{"dependencies":{}}`)
	fsys.put("/m/m.code", `
module m;
pub use A = B;
pub use B = A;
`)

	pool := intern.NewPool(token.ReservedTable())
	fs := source.NewFileSet()
	tree, err := loader.Load(fsys, fs, pool, "/m")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if _, rerr := Resolve(tree, pool); rerr == nil {
		t.Fatal("expected a cyclic-size error")
	}
}

func TestPointerBreaksStructCycle(t *testing.T) {
	fsys := newFakeFS()
	fsys.put("/m/module.json", `{"dependencies":{}}`)
	fsys.put("/m/m.code", `
module m;
pub struct Node { next: *var Node, value: i32 }
`)

	prog, pool := buildProgram(t, fsys, "/m")
	mod := prog.Modules[pool.Intern("m")]
	node := mod.Files[0].Types[0]
	if node.Size != 8+4 { // pointer + i32
		t.Fatalf("expected pointer-broken struct size 12, got %d", node.Size)
	}
}

func TestEnumSizeAndAutoNumbering(t *testing.T) {
	fsys := newFakeFS()
	fsys.put("/m/module.json", `{"dependencies":{}}`)
	fsys.put("/m/m.code", `
module m;
pub enum Color { Red, Green, Blue = 10, Cyan }
`)

	prog, pool := buildProgram(t, fsys, "/m")
	mod := prog.Modules[pool.Intern("m")]
	color := mod.Files[0].Types[0]
	if color.Size != U64.ByteSize() {
		t.Fatalf("expected enum size = u64 size, got %d", color.Size)
	}
	want := map[string]uint64{"Red": 0, "Green": 1, "Blue": 10, "Cyan": 11}
	for _, v := range color.Variants {
		if w, ok := want[pool.Text(v.Name)]; !ok || w != v.Value {
			t.Fatalf("variant %s = %d, want %d", pool.Text(v.Name), v.Value, w)
		}
	}
}

func TestExprBindingsResolveLocalsAndShadowing(t *testing.T) {
	fsys := newFakeFS()
	fsys.put("/m/module.json", `{"dependencies":{}}`)
	fsys.put("/m/m.code", `
module m;
pub fn f(a: i32) -> i32 {
	let x: i32 = a + 1;
	if (x > 0) {
		let x: i32 = x + 100;
		return x;
	}
	return x;
}
`)

	prog, pool := buildProgram(t, fsys, "/m")
	mod := prog.Modules[pool.Intern("m")]
	f := mod.Files[0]
	fn := f.Functions[0]
	if fn.ReturnType == nil || fn.ReturnType.Primitive != I32 {
		t.Fatalf("expected resolved i32 return type")
	}
	if len(f.ExprBindings) == 0 {
		t.Fatalf("expected resolved identifier bindings")
	}
}

func TestEnumVariantExpressionBinding(t *testing.T) {
	fsys := newFakeFS()
	fsys.put("/m/module.json", `{"dependencies":{}}`)
	fsys.put("/m/m.code", `
module m;
pub enum Color { Red, Green, Blue }
pub fn f() -> Color {
	let c: Color = Color::Red;
	return c;
}
`)

	prog, pool := buildProgram(t, fsys, "/m")
	mod := prog.Modules[pool.Intern("m")]
	f := mod.Files[0]
	found := false
	for _, b := range f.ExprBindings {
		if b.Kind == BindEnumVariant && b.Variant.Name == pool.Intern("Red") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an enum-variant binding to Color::Red")
	}
}

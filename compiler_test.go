package compiler

import (
	"errors"
	"path/filepath"
	"testing"

	"lumen/internal/loader"
)

// fakeFS mirrors the loader and semantic packages' own test fake: a flat
// map of absolute paths to file contents, with directory membership
// derived from path prefixes.
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

func TestCompileEndToEnd(t *testing.T) {
	fsys := newFakeFS()
	fsys.put("/m/module.json", `{"dependencies":{}}`)
	fsys.put("/m/m.code", `module m; pub fn f() -> bool { return true; }`)

	prog, pool, fset, err := Compile(fsys, "/m")
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	if prog == nil || len(prog.Modules) != 1 {
		t.Fatalf("expected one resolved module")
	}
	if pool.Len() == 0 {
		t.Fatalf("expected a non-empty symbol pool")
	}
	if fset.Len() != 1 {
		t.Fatalf("expected one file added to the file set, got %d", fset.Len())
	}
}

func TestCompilePropagatesTheFirstError(t *testing.T) {
	fsys := newFakeFS()
	fsys.put("/proj/module.json", `{"dependencies":{}}`)
	fsys.put("/proj/m.code", `module wrong_name;`)

	_, _, _, err := Compile(fsys, "/proj")
	if err == nil {
		t.Fatal("expected a module-declaration mismatch error")
	}
}

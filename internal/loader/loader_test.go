package loader

import (
	"errors"
	"path/filepath"
	"testing"

	"lumen/internal/intern"
	"lumen/internal/source"
	"lumen/internal/token"
)

// fakeFS is an in-memory FS for tests: a flat map of absolute paths to
// file contents, plus directory membership derived from path prefixes.
type fakeFS struct {
	files map[string][]byte
}

func newFakeFS() *fakeFS {
	return &fakeFS{files: make(map[string][]byte)}
}

func (f *fakeFS) put(path, content string) {
	f.files[filepath.Clean(path)] = []byte(content)
}

func (f *fakeFS) ReadFile(path string) ([]byte, error) {
	content, ok := f.files[filepath.Clean(path)]
	if !ok {
		return nil, errors.New("no such file: " + path)
	}
	return content, nil
}

func (f *fakeFS) ReadDir(dir string) ([]Entry, error) {
	dir = filepath.Clean(dir)
	seen := make(map[string]bool)
	var out []Entry
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
		out = append(out, Entry{Name: parts[0], IsDir: len(parts) > 1})
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

func newPool() *intern.Pool {
	return intern.NewPool(token.ReservedTable())
}

func TestLoadSingleModuleNoDependencies(t *testing.T) {
	fsys := newFakeFS()
	fsys.put("/m/module.json", `{"dependencies":{}}`)
	fsys.put("/m/m.code", `module m; pub fn f() -> bool { return true; }`)

	pool := newPool()
	fs := source.NewFileSet()
	tree, err := Load(fsys, fs, pool, "/m")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	mSym := pool.Intern("m")
	mod, ok := tree.Modules[mSym]
	if !ok {
		t.Fatalf("expected module %q in tree, got %v", "m", tree.Modules)
	}
	if len(mod.Files) != 1 {
		t.Fatalf("expected 1 file, got %d", len(mod.Files))
	}
	if len(mod.Files[0].Functions) != 1 {
		t.Fatalf("expected 1 function, got %d", len(mod.Files[0].Functions))
	}
}

func TestLoadRejectsNonTopLevelDependency(t *testing.T) {
	fsys := newFakeFS()
	fsys.put("/m/module.json", `{"dependencies":{"nested":"./sub/nested"}}`)
	fsys.put("/m/m.code", `module m;`)
	fsys.put("/m/sub/module.json", `{"dependencies":{}}`)
	fsys.put("/m/sub/nested/module.json", `{"dependencies":{}}`)

	pool := newPool()
	fs := source.NewFileSet()
	_, err := Load(fsys, fs, pool, "/m")
	if err == nil {
		t.Fatal("expected an error for a dependency nested under another module")
	}
}

func TestLoadResolvesDependencyAndSubmodule(t *testing.T) {
	fsys := newFakeFS()
	fsys.put("/m/module.json", `{"dependencies":{"util":"../util"}}`)
	fsys.put("/m/m.code", `module m; import util;`)
	fsys.put("/m/inner/module.json", `{"dependencies":{}}`)
	fsys.put("/m/inner/helper.code", `module inner;`)
	fsys.put("/util/module.json", `{"dependencies":{}}`)
	fsys.put("/util/u.code", `module util;`)

	pool := newPool()
	fs := source.NewFileSet()
	tree, err := Load(fsys, fs, pool, "/m")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	mSym := pool.Intern("m")
	utilSym := pool.Intern("util")
	innerSym := pool.Intern("inner")

	mod := tree.Modules[mSym]
	if mod == nil {
		t.Fatal("module m missing from tree")
	}
	if _, ok := mod.Submodules[innerSym]; !ok {
		t.Fatalf("expected submodule %q", "inner")
	}
	if mod.Dependencies[utilSym] == nil {
		t.Fatalf("expected dependency %q resolved to a module handle", "util")
	}
	if _, ok := tree.Modules[utilSym]; !ok {
		t.Fatalf("expected dependency module %q registered at top level", "util")
	}
}

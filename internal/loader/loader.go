// Package loader implements the module loader: a breadth-first walk over
// module directories (each holding a module.json manifest and zero or
// more .code source files) that produces a whole-program syntactic AST.
package loader

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"lumen/internal/ast"
	"lumen/internal/diag"
	"lumen/internal/intern"
	"lumen/internal/parser"
	"lumen/internal/source"
)

const codeExt = "*.code"

// pendingDep records one `module.json` dependency entry whose target
// Module is not necessarily loaded yet: mod's Dependencies[name] is
// filled in once path's Module is known, in the finalize pass.
type pendingDep struct {
	mod  *ast.Module
	name intern.SymbolID
	path string
}

// state threads the shared bookkeeping through the recursive directory
// walk: every module loaded so far (by absolute path, for dependency
// resolution) and the dependency edges still to be wired up.
type state struct {
	fsys FS
	fs   *source.FileSet
	pool *intern.Pool

	byPath  map[string]*ast.Module
	pending []pendingDep
}

// Load walks the module graph rooted at entryPath and returns the
// whole-program syntactic Ast, per the module-loader algorithm: a
// breadth-first queue of module directories reached by module.json
// dependency paths, each parsed in full (files plus nested submodule
// subdirectories) before its own dependencies are enqueued.
func Load(fsys FS, fs *source.FileSet, pool *intern.Pool, entryPath string) (*ast.Ast, *diag.Error) {
	entryAbs := cleanPath(entryPath)
	tree := ast.NewAst(pool.InternPath(entryAbs))

	st := &state{fsys: fsys, fs: fs, pool: pool, byPath: make(map[string]*ast.Module)}

	visited := make(map[string]bool)
	queue := []string{entryAbs}

	for len(queue) > 0 {
		dir := queue[0]
		queue = queue[1:]
		if visited[dir] {
			continue
		}
		visited[dir] = true

		if dir != entryAbs {
			if parentHasManifest(fsys, dir) {
				return nil, diag.New(diag.ModuleDecl, "importing non-top-level module", source.Span{})
			}
		}

		mod, deps, err := st.loadModuleDir(dir)
		if err != nil {
			return nil, err
		}
		tree.Modules[mod.Name] = mod
		for _, d := range deps {
			if !visited[d] {
				queue = append(queue, d)
			}
		}
	}

	for _, pd := range st.pending {
		target, ok := st.byPath[pd.path]
		if !ok {
			return nil, diag.New(diag.ModuleNotFound, "dependency module not found: "+pd.path, source.Span{})
		}
		pd.mod.Dependencies[pd.name] = target
	}

	return tree, nil
}

// parentHasManifest reports whether dir's parent directory is itself a
// module directory, the "importing non-top-level module" condition.
func parentHasManifest(fsys FS, dir string) bool {
	parent := filepath.Dir(dir)
	if parent == dir {
		return false
	}
	return hasManifest(fsys, parent)
}

// loadModuleDir parses one module directory in full: its manifest, its
// .code files, and its submodule subdirectories (recursively). It
// returns the Module plus every dependency path declared anywhere in
// this subtree, for the caller's breadth-first queue.
func (st *state) loadModuleDir(dir string) (*ast.Module, []string, *diag.Error) {
	m, err := readManifest(st.fsys, dir)
	if err != nil {
		return nil, nil, err
	}

	name := st.pool.Intern(filepath.Base(dir))
	mod := ast.NewModule(st.pool.InternPath(dir), name)
	st.byPath[dir] = mod

	var deps []string
	for depName, depPath := range m.Dependencies {
		resolved := cleanPath(resolveDepPath(dir, depPath))
		st.pending = append(st.pending, pendingDep{mod: mod, name: st.pool.Intern(depName), path: resolved})
		deps = append(deps, resolved)
	}

	entries, rerr := st.fsys.ReadDir(dir)
	if rerr != nil {
		return nil, nil, diag.Wrap(diag.IO, "failed to read module directory", source.Span{}, rerr)
	}

	fileNames := make(map[intern.SymbolID]bool)
	for _, e := range entries {
		if e.IsDir {
			continue
		}
		ok, merr := doublestar.Match(codeExt, e.Name)
		if merr != nil || !ok {
			continue
		}
		f, err := st.parseCodeFile(dir, e.Name, name)
		if err != nil {
			return nil, nil, err
		}
		if fileNames[f.Name] {
			return nil, nil, diag.New(diag.ModuleDecl, "duplicate file name within module", source.Span{})
		}
		fileNames[f.Name] = true
		mod.Files = append(mod.Files, f)
	}

	for _, e := range entries {
		if !e.IsDir {
			continue
		}
		subDir := filepath.Join(dir, e.Name)
		if !hasManifest(st.fsys, subDir) {
			continue
		}
		sub, subDeps, err := st.loadModuleDir(subDir)
		if err != nil {
			return nil, nil, err
		}
		if fileNames[sub.Name] {
			return nil, nil, diag.New(diag.ModuleDecl, "submodule name collides with a file in the same module", source.Span{})
		}
		mod.Submodules[sub.Name] = sub
		deps = append(deps, subDeps...)
	}

	return mod, deps, nil
}

// parseCodeFile loads and parses one .code file, requiring its `module`
// declaration to name expectedModule.
func (st *state) parseCodeFile(dir, fileName string, expectedModule intern.SymbolID) (*ast.File, *diag.Error) {
	full := filepath.Join(dir, fileName)
	raw, err := st.fsys.ReadFile(full)
	if err != nil {
		return nil, diag.Wrap(diag.IO, "failed to read source file", source.Span{}, err)
	}
	fid := st.fs.AddNormalized(full, raw)
	pathID := st.pool.InternPath(full)
	baseName := st.pool.Intern(strings.TrimSuffix(fileName, filepath.Ext(fileName)))
	return parser.ParseFile(st.fs, fid, st.pool, pathID, baseName, expectedModule)
}

func resolveDepPath(manifestDir, depPath string) string {
	if filepath.IsAbs(depPath) {
		return depPath
	}
	return filepath.Join(manifestDir, depPath)
}

func cleanPath(p string) string {
	return filepath.Clean(p)
}

package semantic

import (
	"lumen/internal/ast"
	"lumen/internal/diag"
	"lumen/internal/intern"
)

// Resolve runs both passes of the semantic resolver over tree (the
// whole-program syntactic Ast produced by the module loader) and returns
// the resolved Program, or the first error encountered.
//
// Pass 1 (buildSkeleton) allocates a stable handle for every
// global/function/type with placeholder content. Pass 2 fills those
// placeholders in four steps, in the order spec §4.5 requires: imports,
// then type annotations (so every Custom(handle) target exists before
// anything depends on its size), then type-body size resolution via
// 3-color DFS, then expression/statement binding.
func Resolve(tree *ast.Ast, pool *intern.Pool) (*Program, *diag.Error) {
	prog := buildSkeleton(tree, pool)
	files := allFiles(prog)

	if err := resolveImports(files); err != nil {
		return nil, err
	}
	if err := resolveTypeAnnotations(files); err != nil {
		return nil, err
	}
	if err := resolveBodies(files); err != nil {
		return nil, err
	}
	if err := resolveExprs(files); err != nil {
		return nil, err
	}
	return prog, nil
}

// allFiles flattens every File reachable from prog's top-level modules,
// recursing into submodules. Top-level modules are already deduplicated
// by name in Program.Modules, and a module directory's submodule tree is
// strictly owned (spec §4.4: a module directory may not nest under
// another), so no pointer can be reached twice.
func allFiles(prog *Program) []*File {
	var out []*File
	var walk func(m *Module)
	walk = func(m *Module) {
		out = append(out, m.Files...)
		for _, sub := range m.Submodules {
			walk(sub)
		}
	}
	for _, m := range prog.Modules {
		walk(m)
	}
	return out
}

// resolveImports implements pass 2 step 1: every `import id` in a file
// must name one of its module's declared dependencies.
func resolveImports(files []*File) *diag.Error {
	for _, f := range files {
		for name, span := range f.Syntax.Imports {
			target, ok := f.owner.Dependencies[name]
			if !ok {
				return diag.New(diag.SemanticImport, "import does not match a declared module dependency", span)
			}
			f.Imports[name] = target
		}
	}
	return nil
}

// isVisible reports whether target (declared with its own Visibility, in
// its own File) may be referenced from fromFile, per spec §4.5 step 2's
// visibility rule: Private = current file only, Module = same module,
// Public = anywhere reachable via imports (already established by the
// caller having walked there).
func isVisible(fromFile *File, vis ast.Visibility, declFile *File) bool {
	switch vis {
	case ast.Private:
		return declFile == fromFile
	case ast.ModuleVis:
		return declFile.owner == fromFile.owner
	case ast.Public:
		return true
	default:
		return false
	}
}

// findFileInModule returns the file named name within m, if any.
func findFileInModule(m *Module, name intern.SymbolID) *File {
	for _, f := range m.Files {
		if f.Name == name {
			return f
		}
	}
	return nil
}

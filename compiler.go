// Package compiler is lumen's public library surface: one call,
// Compile, that turns a directory tree of .code files into a resolved
// Program. It owns no I/O beyond what it's handed through loader.FS and
// never logs or prints — presenting diagnostics is the caller's job
// (see cmd/lumenc).
package compiler

import (
	"lumen/internal/diag"
	"lumen/internal/intern"
	"lumen/internal/loader"
	"lumen/internal/semantic"
	"lumen/internal/source"
	"lumen/internal/token"
)

// Compile loads the module tree rooted at entryPath from fsys, parses
// every source file it finds, and resolves the result into a semantic
// Program. The returned *intern.Pool stays alive for the caller to turn
// interned symbols and paths back into text, and the returned
// *source.FileSet stays alive so the caller can resolve a returned
// diag.Error's span into a path/line/column and source excerpt —
// "presenting errors (file paths, underlines) is the caller's job",
// which needs the file set Compile built internally, not just the span
// it stamped on the error.
//
// Compile stops at the first error, same as every phase beneath it:
// lumen's front end does not recover from errors or collect more than
// one diagnostic per run.
func Compile(fsys loader.FS, entryPath string) (*semantic.Program, *intern.Pool, *source.FileSet, *diag.Error) {
	pool := intern.NewPool(token.ReservedTable())
	fset := source.NewFileSet()

	tree, err := loader.Load(fsys, fset, pool, entryPath)
	if err != nil {
		return nil, pool, fset, err
	}

	prog, err := semantic.Resolve(tree, pool)
	if err != nil {
		return nil, pool, fset, err
	}

	return prog, pool, fset, nil
}

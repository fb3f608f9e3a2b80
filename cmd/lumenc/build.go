package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	compiler "lumen"
	"lumen/internal/diagfmt"
	"lumen/internal/loader"
)

var buildCmd = &cobra.Command{
	Use:   "build <path>",
	Short: "Load, parse, and resolve a module tree rooted at path",
	Args:  cobra.ExactArgs(1),
	RunE:  buildExecution,
}

func buildExecution(cmd *cobra.Command, args []string) error {
	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		return err
	}
	useColor := resolveColor(colorMode, os.Stderr)

	prog, pool, fset, cerr := compiler.Compile(loader.OSFS{}, args[0])
	if cerr != nil {
		diagfmt.Pretty(os.Stderr, cerr, fset, useColor)
		return fmt.Errorf("build failed")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "ok: %d module(s) resolved, %d symbol(s) interned\n", len(prog.Modules), pool.Len())
	return nil
}

func resolveColor(mode string, f *os.File) bool {
	switch mode {
	case "on":
		return true
	case "off":
		return false
	default:
		return term.IsTerminal(int(f.Fd()))
	}
}

// Package main implements the lumenc CLI, a thin demonstration consumer
// of the compiler package. It is not part of the tested core: the
// pipeline's behavior is specified (and tested) at the library level,
// not through this wrapper.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lumenc",
	Short: "lumen language front end",
	Long:  "lumenc loads, parses, and resolves a lumen module tree and reports the first diagnostic it finds.",
}

func main() {
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize diagnostic output (auto|on|off)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

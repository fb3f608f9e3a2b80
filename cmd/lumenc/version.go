package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const versionString = "lumenc 0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the lumenc version",
	RunE: func(cmd *cobra.Command, _ []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), versionString)
		return nil
	},
}

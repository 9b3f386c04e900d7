package cmd

import (
	"github.com/grovetools/core/cli"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for rollcall.
func NewRootCmd() *cobra.Command {
	rootCmd := cli.NewStandardCommand(
		"rollcall",
		"Meeting attendance counting from participant-panel screenshots",
	)

	rootCmd.AddCommand(newScanCmd())
	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newSessionsCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newClearCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// Package cli wires up the gp2core command tree.
package cli

import "github.com/spf13/cobra"

// NewRootCommand returns the gp2core root command with the run subcommand
// attached.
func NewRootCommand() *cobra.Command {
	c := &cobra.Command{
		Use:           "gp2core",
		Short:         "Inspect the GP2 host-graph runtime core",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	c.AddCommand(NewRunCommand())

	return c
}

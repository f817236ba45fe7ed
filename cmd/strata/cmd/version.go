package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-drift/strata/pkg/schema"
)

func init() {
	registerCommand(func(*rootFlags) *cobra.Command {
		return &cobra.Command{
			Use:   "version",
			Short: "Show version information",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "strata version %s (built %s, schema %s)\n",
					Version, BuildTime, schema.CurrentVersion)
			},
		}
	})
}

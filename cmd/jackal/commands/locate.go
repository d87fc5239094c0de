package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/jackal/internal/core/domain"
)

func (c *CLI) newLocateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "locate",
		Short: "Show where the toolchain jars were found",
		Run: func(cmd *cobra.Command, _ []string) {
			tc := c.app.Toolchain()
			fmt.Fprintln(cmd.OutOrStdout(), "jack: "+describe(tc.Jack))
			fmt.Fprintln(cmd.OutOrStdout(), "jill: "+describe(tc.Jill))
		},
	}
}

func describe(loc domain.ToolLocation) string {
	if !loc.Found() {
		return "not found"
	}
	return loc.Path()
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newConvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <jar>...",
		Short: "Convert jar files to jack libraries with Jill",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := c.app.Convert(cmd.Context(), args)
			if err != nil {
				return err
			}
			for _, path := range paths {
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return nil
		},
	}
}

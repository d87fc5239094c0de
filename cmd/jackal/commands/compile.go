package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/jackal/internal/app"
)

func (c *CLI) newCompileCmd() *cobra.Command {
	var opts app.CompileOptions

	cmd := &cobra.Command{
		Use:   "compile <file>...",
		Short: "Compile Java sources to dex with Jack",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := c.app.Compile(cmd.Context(), args, opts)
			if err != nil {
				return err
			}
			for _, line := range lines {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.OutputDex, "output-dex", "o", "", "Directory to write dex files into")
	cmd.Flags().StringVar(&opts.OutputJack, "output-jack", "", "Path to write the output jack library to")
	cmd.Flags().StringVar(&opts.Classpath, "classpath", "", "Compilation classpath")
	cmd.Flags().StringVar(&opts.MultiDex, "multi-dex", "", "Multi-dex mode (none, native, legacy)")
	cmd.Flags().StringVar(&opts.Verbose, "verbose", "", "Compiler verbosity (error, warning, info, debug, trace)")
	cmd.Flags().BoolVarP(&opts.Debug, "debug", "g", false, "Emit debug info")
	cmd.Flags().StringArrayVar(&opts.Imports, "import", nil, "Jack library to import into the output (repeatable)")
	cmd.Flags().StringArrayVarP(&opts.Properties, "property", "D", nil, "Compiler property name=value (repeatable)")

	return cmd
}

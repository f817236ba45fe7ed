package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-drift/strata/pkg/schema"
)

func init() {
	registerCommand(newValidateCmd)
}

func newValidateCmd(root *rootFlags) *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "validate <document>...",
		Short: "Check documents for unknown types and duplicate ids",
		Long: `Parse each document and report problems: unknown component types,
missing types, duplicate ids and null children. Problems are warnings
unless --strict is given, in which case any problem fails the command.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, closeLog, err := root.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer closeLog()

			reg := schema.DefaultRegistry()
			out := cmd.OutOrStdout()
			var failed int
			for _, path := range args {
				doc, err := schema.Load(path)
				if err != nil {
					fmt.Fprintf(out, "%s: %v\n", path, err)
					failed++
					continue
				}
				diags, err := doc.Validate(reg, strict)
				for _, d := range diags {
					fmt.Fprintf(out, "%s: %s\n", path, d)
				}
				if err != nil {
					if len(diags) == 0 {
						fmt.Fprintf(out, "%s: %v\n", path, err)
					}
					failed++
					continue
				}
				if len(diags) == 0 {
					fmt.Fprintf(out, "%s: ok (%d nodes)\n", path, doc.Root.Count())
				}
				logger.Debug().Str("file", path).Int("problems", len(diags)).Msg("validated")
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d document(s) failed validation", failed, len(args))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "Treat any problem as an error")
	return cmd
}

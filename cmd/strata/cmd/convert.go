package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-drift/strata/pkg/schema"
)

func init() {
	registerCommand(newConvertCmd)
}

func newConvertCmd(root *rootFlags) *cobra.Command {
	var to string
	cmd := &cobra.Command{
		Use:   "convert <input> <output>",
		Short: "Convert a document between JSON, YAML and CBOR",
		Long: `Read a document in any supported format and write it in another.
Formats are chosen by file extension (.json, .jsonc, .yaml, .yml, .cbor);
--to overrides the output format. Use "-" as output to write to stdout.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, closeLog, err := root.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer closeLog()

			doc, err := schema.Load(args[0])
			if err != nil {
				return err
			}

			out := args[1]
			switch {
			case out == "-" || to != "":
				if err := writeFormatted(cmd, doc, out, to); err != nil {
					return err
				}
			default:
				if err := schema.Save(doc, out); err != nil {
					return err
				}
			}
			logger.Info().
				Str("from", args[0]).
				Str("to", out).
				Int("nodes", doc.Root.Count()).
				Msg("document converted")
			return nil
		},
	}
	cmd.Flags().StringVar(&to, "to", "", "Output format (json, yaml or cbor)")
	return cmd
}

// writeFormatted encodes doc in the named format, or JSON when name is
// empty, and writes it to path or stdout for "-".
func writeFormatted(cmd *cobra.Command, doc *schema.Document, path, name string) error {
	format := schema.FormatJSON
	if name != "" {
		var err error
		if format, err = schema.ParseFormat(name); err != nil {
			return err
		}
	}
	data, err := schema.Marshal(doc, format)
	if err != nil {
		return err
	}
	if path == "-" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

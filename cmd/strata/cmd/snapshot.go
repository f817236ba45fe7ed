package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-drift/strata/pkg/engine"
	"github.com/go-drift/strata/pkg/graphics"
	"github.com/go-drift/strata/pkg/render"
	"github.com/go-drift/strata/pkg/schema"
)

func init() {
	registerCommand(newSnapshotCmd)
}

type snapshotOptions struct {
	app    appFlags
	output string
	ops    bool
}

func newSnapshotCmd(root *rootFlags) *cobra.Command {
	opts := &snapshotOptions{}
	cmd := &cobra.Command{
		Use:   "snapshot <document>",
		Short: "Render one frame of a document",
		Long: `Build a document, lay it out at the configured size and render a single
frame. The frame is written as PNG, or with --ops printed as the list of
draw calls.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return snapshotDocument(cmd, root, opts, args[0])
		},
	}
	opts.app.bind(cmd.Flags())
	cmd.Flags().StringVarP(&opts.output, "output", "o", "snapshot.png", "PNG output path")
	cmd.Flags().BoolVar(&opts.ops, "ops", false, "Print draw calls instead of writing a PNG")
	return cmd
}

func snapshotDocument(cmd *cobra.Command, root *rootFlags, opts *snapshotOptions, path string) error {
	logger, closeLog, err := root.logger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, t, err := opts.app.resolve(cmd.Flags())
	if err != nil {
		return err
	}
	tree, err := buildTree(path, schema.NewBuilder(nil, logger), logger)
	if err != nil {
		return err
	}

	var (
		surface render.Surface
		raster  *render.Raster
		rec     *render.Recorder
	)
	if opts.ops {
		rec = render.NewRecorder(graphics.Size{Width: float64(cfg.Width), Height: float64(cfg.Height)})
		surface = rec
	} else {
		raster = render.NewRaster(cfg.Width, cfg.Height)
		surface = raster
	}

	eng, err := engine.New(tree, cfg, engine.Options{Theme: t, Logger: &logger, Surface: surface})
	if err != nil {
		return err
	}
	eng.Frame(0)

	if rec != nil {
		_, err := fmt.Fprint(cmd.OutOrStdout(), rec.Dump())
		return err
	}

	file, err := os.Create(opts.output)
	if err != nil {
		return err
	}
	if err := raster.EncodePNG(file); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}
	logger.Info().Str("file", opts.output).Int("width", cfg.Width).Int("height", cfg.Height).Msg("snapshot written")
	return nil
}

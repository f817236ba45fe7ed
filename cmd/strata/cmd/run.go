package cmd

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/go-drift/strata/pkg/core"
	"github.com/go-drift/strata/pkg/engine"
	"github.com/go-drift/strata/pkg/schema"
	"github.com/go-drift/strata/pkg/terminal"
)

func init() {
	registerCommand(newRunCmd)
}

type runOptions struct {
	app  appFlags
	fps  int
	mono bool
}

func newRunCmd(root *rootFlags) *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run <document>",
		Short: "Run a document in the terminal",
		Long: `Build the component tree described by a document and run it in the
terminal until Ctrl+C.

A Button with id "quit" and events: ["on_click"] closes the application.

Logs go to --log-file while the terminal is in use; without it they are
discarded.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDocument(cmd, root, opts, args[0])
		},
	}
	opts.app.bind(cmd.Flags())
	cmd.Flags().IntVar(&opts.fps, "fps", engine.DefaultFPS, "Frames per second")
	cmd.Flags().BoolVar(&opts.mono, "mono", false, "Draw without colors")
	return cmd
}

func runDocument(cmd *cobra.Command, root *rootFlags, opts *runOptions, path string) error {
	logger, closeLog, err := root.logger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, t, err := opts.app.resolve(cmd.Flags())
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("fps") {
		cfg.FPS = opts.fps
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	quit := func(*core.Context) { cancel() }
	builder := schema.NewBuilder(nil, logger).Handle("quit.on_click", quit)
	tree, err := buildTree(path, builder, logger)
	if err != nil {
		return err
	}

	eng, err := engine.New(tree, cfg, engine.Options{Theme: t, Logger: &logger})
	if err != nil {
		return err
	}

	colors := terminal.ColorAuto
	if opts.mono {
		colors = terminal.ColorNone
	}
	driver, err := terminal.New(nil, terminal.Options{Colors: colors, Logger: logger})
	if err != nil {
		return err
	}
	defer driver.Close()

	return eng.Run(ctx, driver)
}

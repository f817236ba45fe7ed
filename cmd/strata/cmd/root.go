// Package cmd implements the strata CLI commands.
//
// The root command carries the logging flags; each subcommand lives in its
// own file and registers itself from init.
package cmd

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	strataerrors "github.com/go-drift/strata/pkg/errors"
	"github.com/go-drift/strata/pkg/logging"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

type rootFlags struct {
	logLevel  string
	logFormat string
	logFile   string
}

// registered holds constructors for subcommands in registration order.
var registered []func(*rootFlags) *cobra.Command

// registerCommand adds a subcommand constructor to the CLI.
func registerCommand(ctor func(*rootFlags) *cobra.Command) {
	registered = append(registered, ctor)
}

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}
	root := &cobra.Command{
		Use:   "strata",
		Short: "Strata - retained-mode UI documents for the terminal",
		Long: `Strata builds component trees from JSON, YAML or CBOR documents and
runs them in the terminal, renders them to PNG or converts between formats.

Use "strata <command> --help" for more information about a command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.logLevel, "log-level", "info", "Log level (trace, debug, info, warn, error)")
	pf.StringVar(&flags.logFormat, "log-format", "console", "Log format (console or json)")
	pf.StringVar(&flags.logFile, "log-file", "", "Write logs to this file instead of stderr")

	for _, ctor := range registered {
		root.AddCommand(ctor(flags))
	}
	return root
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// logger builds the command logger and installs it as the global error
// handler. fallback receives output when no log file is set. The returned
// function closes the log file.
func (f *rootFlags) logger(fallback io.Writer) (zerolog.Logger, func(), error) {
	writer := fallback
	closeFn := func() {}
	if f.logFile != "" {
		file, err := os.OpenFile(f.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Nop(), closeFn, err
		}
		writer = file
		closeFn = func() { _ = file.Close() }
	}

	logger, err := logging.New(logging.Options{Level: f.logLevel, Format: f.logFormat, Writer: writer})
	if err != nil {
		closeFn()
		return zerolog.Nop(), func() {}, err
	}
	handler := strataerrors.NewLogHandler(&logger)
	handler.Verbose = logger.GetLevel() == zerolog.TraceLevel
	strataerrors.SetHandler(handler)
	return logger, closeFn, nil
}

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/you-not-fish/aqa/internal/aqa"
	"github.com/you-not-fish/aqa/internal/config"
)

// errReported is returned by commands that have already printed a
// diagnostic, so main only sets the exit status.
var errReported = errors.New("error already reported")

// app holds state shared by all subcommands. It is filled in by the root
// command's PersistentPreRunE before any subcommand runs.
type app struct {
	// Persistent flags
	cfgFile string
	verbose bool
	noColor bool

	cfg    *config.Config
	logger *slog.Logger
	styles styles
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "aqa",
		Short: "Evaluate AQA pseudocode expressions",
		Long: `aqa scans, parses, and evaluates expressions written in AQA exam
pseudocode. Values are integers, floats, booleans (True, False), and
'quoted' text.

Configuration is read from --config, $AQA_CONFIG, or ./aqa.toml.`,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return a.setup(cmd.ErrOrStderr())
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: $AQA_CONFIG or ./aqa.toml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log pipeline stages to stderr")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colored output")

	root.AddCommand(
		newRunCmd(a),
		newTokensCmd(a),
		newASTCmd(a),
		newREPLCmd(a),
		newVersionCmd(),
	)
	return root
}

// setup loads the configuration and applies the persistent flags to it.
func (a *app) setup(logOut io.Writer) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if a.verbose {
		cfg.Log.Level = "debug"
	}
	if a.noColor {
		cfg.Output.Color = false
	}

	a.cfg = cfg
	a.logger = slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	a.styles = newStyles(cfg.Output.Color)
	return nil
}

// pipeline returns a Pipeline for filename that logs through the app's
// logger.
func (a *app) pipeline(filename string) *aqa.Pipeline {
	return &aqa.Pipeline{
		Filename: filename,
		Logger:   a.logger.With("file", filename),
	}
}

// readSource reads a source file as text.
func readSource(filename string) (string, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return "", fmt.Errorf("failed to read source: %w", err)
	}
	return string(data), nil
}

// report prints a pipeline error as a diagnostic and returns errReported.
// Other errors are returned unchanged for main to print.
func (a *app) report(w io.Writer, filename string, err error) error {
	var e *aqa.Error
	if !errors.As(err, &e) {
		return err
	}
	fmt.Fprintln(w, a.styles.diagnostic(filename, e))
	return errReported
}

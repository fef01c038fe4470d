// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"rnashapes/internal/cli"
	"rnashapes/internal/config"
	"rnashapes/internal/logging"
	"rnashapes/internal/version"
	"rnashapes/internal/writers"
)

// Exit codes.
const (
	ExitOK       = 0
	ExitFailure  = 1 // invalid structure, or mismatches with --fail-on-mismatch
	ExitUsage    = 2
	ExitOutput   = 3
	ExitCanceled = 130
)

// exitError carries an exit code through cobra's RunE.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func usageErr(err error) error  { return &exitError{code: ExitUsage, err: err} }
func outputErr(err error) error { return &exitError{code: ExitOutput, err: err} }
func failErr(err error) error   { return &exitError{code: ExitFailure, err: err} }

// env is the per-invocation state built in PersistentPreRunE.
type env struct {
	stdout io.Writer
	stderr io.Writer
	global cli.Global
	cfg    config.Config
	log    *zap.Logger
}

// setup loads config, applies it to unset flags and builds the logger.
func (e *env) setup(cmd *cobra.Command, outputs []string) error {
	cfg, err := config.Load(e.global.ConfigPath)
	if err != nil {
		return usageErr(err)
	}
	if err := cli.ApplyConfig(cmd.Flags(), cfg, outputs); err != nil {
		return usageErr(err)
	}
	log, err := logging.New(logging.Options{
		Level:  e.global.LogLevel,
		Format: e.global.LogFormat,
		Quiet:  e.global.Quiet,
	}, e.stderr)
	if err != nil {
		return usageErr(err)
	}
	e.cfg, e.log = cfg, log
	if cfg.Source != "" {
		log.Debug("loaded config", zap.String("path", cfg.Source))
	}
	return nil
}

const about = `rnashapes – abstract shapes of RNA secondary structures

Abstracts a dot-bracket structure into shape levels 5, 3 and 1:
  level 5  helix nesting only
  level 3  helix nesting, with a new group at every gap inside a helix
  level 1  level 3 plus '_' for unpaired regions between and around helices

License: MIT
Version: ` + "%s"

func newRootCmd(e *env) *cobra.Command {
	var opts cli.ShapeOptions
	root := &cobra.Command{
		Use:   "rnashapes [flags] [STRUCTURE]",
		Short: "Abstract RNA shapes (levels 5, 3, 1) from dot-bracket structures",
		Long:  fmt.Sprintf(about, version.Version),
		Example: `  rnashapes --structure '((..((...))..((...))..))'
  rnashapes -o json '(())...(())'
  rnashapes batch structures.dbn
  rnashapes bench regression.txt`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			outputs := cli.ShapeFormats
			switch cmd.Name() {
			case "batch":
				outputs = nil
			case "bench":
				outputs = cli.ReportFormats
			}
			return e.setup(cmd, outputs)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Structure == "" && len(args) == 0 {
				return cmd.Help()
			}
			if err := cli.ShapeFromArgs(&opts, args); err != nil {
				return usageErr(err)
			}
			return runShape(cmd.Context(), e, opts)
		},
	}
	root.SetOut(e.stdout)
	root.SetErr(e.stderr)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return usageErr(err) })

	cli.RegisterGlobal(root.PersistentFlags(), &e.global)
	cli.RegisterShape(root.Flags(), &opts)

	root.AddCommand(newBatchCmd(e), newBenchCmd(e), newVersionCmd(e))
	return root
}

func newVersionCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version and exit",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			_, err := fmt.Fprintf(e.stdout, "rnashapes version %s\n", version.Version)
			return err
		},
	}
}

// RunContext executes the CLI with argv and returns the process exit code.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	e := &env{stdout: outw, stderr: stderr, log: zap.NewNop()}

	root := newRootCmd(e)
	root.SetArgs(argv)
	err := root.ExecuteContext(parent)
	defer func() { _ = e.log.Sync() }()

	if ferr := outw.Flush(); ferr != nil && !writers.IsBrokenPipe(ferr) && err == nil {
		err = outputErr(ferr)
	}
	return exitCode(parent, err, stderr)
}

// Run is RunContext without cancellation.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func exitCode(ctx context.Context, err error, stderr io.Writer) int {
	if err == nil {
		return ExitOK
	}
	if ctx.Err() != nil && errors.Is(err, context.Canceled) {
		return ExitCanceled
	}
	if writers.IsBrokenPipe(err) {
		return ExitOK
	}
	_, _ = fmt.Fprintln(stderr, "error:", err)
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	// Unknown commands and argument errors come straight from cobra.
	return ExitUsage
}

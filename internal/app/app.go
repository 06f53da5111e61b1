// internal/app/app.go
package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gfa2fa/internal/cli"
	"gfa2fa/internal/config"
	"gfa2fa/internal/fasta"
	"gfa2fa/internal/gfaio"
	"gfa2fa/internal/logging"
	"gfa2fa/internal/writers"
)

// Exit codes.
const (
	ExitOK          = 0
	ExitFailure     = 1 // bad input, unknown segment, read error
	ExitUsage       = 2 // flags, arguments or config
	ExitWrite       = 3 // output could not be written
	ExitInterrupted = 130
)

type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// RunContext parses argv, converts, and returns the process exit code.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	v := viper.New()
	config.Defaults(v)

	cmd := cli.NewRootCommand(v, func(cmd *cobra.Command, configFile string) error {
		return run(cmd.Context(), v, configFile, stdout, stderr)
	})
	cmd.SetArgs(argv)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(parent)
	if err == nil {
		return ExitOK
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	// cobra-level failure: unknown flag, bad value, extra arguments
	_, _ = fmt.Fprintf(stderr, "Error: %v\n\n", err)
	cmd.SetOut(stderr)
	_ = cmd.Usage()
	return ExitUsage
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func run(ctx context.Context, v *viper.Viper, configFile string, stdout, stderr io.Writer) error {
	cfg, err := config.Load(v, configFile)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return &exitError{ExitUsage, err}
	}
	logger := logging.New(stderr, cfg.LogLevel, cfg.Quiet)
	logger.Debug("loaded config", "input", cfg.Input, "output", cfg.Output, "threads", cfg.Threads, "config_file", configFile)

	in, err := gfaio.Open(cfg.Input)
	if err != nil {
		logger.Error("cannot open input", "path", cfg.Input, "err", err)
		return &exitError{ExitFailure, err}
	}
	defer in.Close()

	out, err := fasta.Create(cfg.Output, stdout)
	if err != nil {
		logger.Error("cannot create output", "path", cfg.Output, "err", err)
		return &exitError{ExitWrite, err}
	}

	st, err := Convert(ctx, in, out, cfg.Threads, logger)
	if cerr := out.Close(); cerr != nil && err == nil {
		err = &writeError{cerr}
	}

	var we *writeError
	switch {
	case err == nil:
		logger.Info("converted", "segments", st.Segments, "links", st.Links, "paths", st.Records, "bases", st.Bases)
		return nil
	case writers.IsBrokenPipe(err):
		// downstream closed early (e.g. `| head`)
		return nil
	case ctx.Err() != nil:
		logger.Warn("interrupted", "paths_written", st.Records)
		return &exitError{ExitInterrupted, err}
	case errors.As(err, &we):
		logger.Error("write failed", "path", cfg.Output, "err", err)
		return &exitError{ExitWrite, err}
	default:
		logger.Error("conversion failed", "input", cfg.Input, "err", err)
		return &exitError{ExitFailure, err}
	}
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/prose/internal/configloader"
	"github.com/yaklabco/prose/internal/logging"
	"github.com/yaklabco/prose/internal/ui/pretty"
	"github.com/yaklabco/prose/pkg/config"
	"github.com/yaklabco/prose/pkg/reporter"
	"github.com/yaklabco/prose/pkg/runner"
)

// stdinName labels standard input in diagnostics.
const stdinName = "<stdin>"

// session is the resolved state shared by the commands that process
// Markdown: configuration, working directory, and output styling.
type session struct {
	cmd     *cobra.Command
	ctx     context.Context
	cfg     *config.Config
	workDir string
	logger  *log.Logger

	// errStyles style diagnostics written to stderr.
	errStyles *pretty.Styles
}

func newSession(cmd *cobra.Command, cliCfg *config.Config) (*session, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.FromContext(ctx)

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}
	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = string(config.ColorAuto)
	}
	cliCfg.Color = config.ColorMode(colorMode)

	workDir, err := os.Getwd()
	if err != nil {
		return nil, withCode(ExitIOError, fmt.Errorf("get working directory: %w", err))
	}

	loaded, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, withCode(ExitConfigError, errors.Join(errors.New("failed to load configuration"), err))
	}

	errStyles := pretty.NewStyles(pretty.IsColorEnabled(string(loaded.Config.Color), cmd.ErrOrStderr()))
	for _, warning := range loaded.Warnings {
		_, _ = fmt.Fprint(cmd.ErrOrStderr(), errStyles.FormatWarning(warning))
	}
	if len(loaded.LoadedFrom) > 0 {
		logger.Debug("loaded configuration", logging.FieldFiles, loaded.LoadedFrom)
	}

	cfg := loaded.Config
	logger.Debug("configuration resolved",
		logging.FieldFormat, cfg.Format,
		logging.FieldJobs, cfg.Jobs,
		logging.FieldOutput, cfg.OutputDir,
	)

	return &session{
		cmd:       cmd,
		ctx:       ctx,
		cfg:       cfg,
		workDir:   workDir,
		logger:    logger,
		errStyles: errStyles,
	}, nil
}

// outStyles returns styles for output written to stdout.
func (s *session) outStyles() *pretty.Styles {
	return pretty.NewStyles(pretty.IsColorEnabled(string(s.cfg.Color), s.cmd.OutOrStdout()))
}

// writeOutputs copies in-memory output of successful files to stdout.
func (s *session) writeOutputs(result *runner.Result) error {
	out := s.cmd.OutOrStdout()
	for _, outcome := range result.Files {
		if outcome.Failed() || outcome.OutputPath != "" {
			continue
		}
		if _, err := out.Write(outcome.Output); err != nil {
			return withCode(ExitIOError, fmt.Errorf("write output: %w", err))
		}
	}
	return nil
}

// runOptions returns runner options for paths under the session config.
func (s *session) runOptions(mode runner.Mode, paths []string) runner.Options {
	opts := runner.OptionsFromConfig(s.cfg)
	opts.Mode = mode
	opts.Paths = paths
	opts.WorkingDir = s.workDir
	return opts
}

// run processes either standard input or the discovered files.
func (s *session) run(opts runner.Options, args []string) (*runner.Result, error) {
	if useStdin(s.cmd, args) {
		src, err := io.ReadAll(s.cmd.InOrStdin())
		if err != nil {
			return nil, withCode(ExitIOError, fmt.Errorf("read stdin: %w", err))
		}
		outcome := runner.Process(s.ctx, stdinName, src, opts)
		return runner.Collect(outcome), nil
	}

	result, err := runner.New(opts).Run(s.ctx)
	if err != nil {
		return nil, withCode(ExitIOError, err)
	}
	return result, nil
}

// report writes parse failures and errors to stderr and returns the error
// the command should finish with.
func (s *session) report(result *runner.Result) error {
	rep := reporter.NewTextReporter(reporter.Options{
		Writer:      s.cmd.ErrOrStderr(),
		Color:       string(s.cfg.Color),
		ShowContext: true,
		WorkingDir:  s.workDir,
	})
	if _, err := rep.Report(s.ctx, result); err != nil {
		return withCode(ExitIOError, fmt.Errorf("write report: %w", err))
	}
	return outcomeError(result)
}

// outcomeError summarizes failures in result as the command's error.
func outcomeError(result *runner.Result) error {
	var errs []error
	for _, outcome := range result.Files {
		if outcome.Error != nil {
			errs = append(errs, outcome.Error)
		}
	}

	if len(errs) > 0 {
		return withCode(ExitIOError, errors.Join(errs...))
	}
	if result.HasParseFailures() {
		return ErrParseFailures
	}
	return nil
}

// displayPath shortens absolute paths under the working directory.
func (s *session) displayPath(path string) string {
	return reporter.DisplayPath(s.workDir, path)
}

// useStdin reports whether input comes from stdin: either "-" was given,
// or no paths were given and stdin is not a terminal.
func useStdin(cmd *cobra.Command, args []string) bool {
	if len(args) == 1 && args[0] == "-" {
		return true
	}
	if len(args) > 0 {
		return false
	}
	if f, ok := cmd.InOrStdin().(*os.File); ok {
		return !term.IsTerminal(int(f.Fd()))
	}
	return true
}

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/prose/internal/logging"
	"github.com/yaklabco/prose/pkg/reporter"
	"github.com/yaklabco/prose/pkg/runner"
)

type fmtFlags struct {
	renderSettings
	write bool
	check bool
	diff  bool
}

func newFmtCommand() *cobra.Command {
	flags := &fmtFlags{}

	cmd := &cobra.Command{
		Use:   "fmt [paths...]",
		Short: "Rewrite Markdown in canonical form",
		Long: `Print Markdown files in canonical form: "-" bullets, ordered items
renumbered from 1, and exactly one newline at the end of every line.

With --write, files are rewritten in place, but only when their content changes
and only if they were not modified since being read. With --check, nothing is
written; files that are not canonical are listed and the command exits 1.
With --diff, a unified diff to the canonical form is printed instead.`,
		Example: `  prose fmt README.md
  prose fmt --write docs/
  prose fmt --check .
  prose fmt --diff --check docs/`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(cmd, args, flags)
		},
	}

	flags.register(cmd, false)
	cmd.Flags().BoolVarP(&flags.write, "write", "w", false, "rewrite files in place")
	cmd.Flags().BoolVarP(&flags.check, "check", "c", false, "list files that are not canonical and exit 1")
	cmd.Flags().BoolVarP(&flags.diff, "diff", "d", false, "print diffs instead of canonical output")
	cmd.MarkFlagsMutuallyExclusive("write", "check")
	cmd.MarkFlagsMutuallyExclusive("write", "diff")

	return cmd
}

func runFmt(cmd *cobra.Command, args []string, flags *fmtFlags) error {
	cliCfg, err := flags.config(cmd)
	if err != nil {
		return err
	}

	sess, err := newSession(cmd, cliCfg)
	if err != nil {
		return err
	}

	stdin := useStdin(cmd, args)
	if flags.write && stdin {
		return withCode(ExitInvalidUsage, errors.New("--write needs file arguments, not stdin"))
	}

	opts := sess.runOptions(runner.ModeFormat, args)
	opts.Write = flags.write

	result, err := sess.run(opts, args)
	if err != nil {
		return err
	}

	switch {
	case flags.diff:
		rep := reporter.NewDiffReporter(reporter.Options{
			Writer:      cmd.OutOrStdout(),
			Color:       string(sess.cfg.Color),
			ShowSummary: true,
			WorkingDir:  sess.workDir,
		})
		if _, err := rep.Report(sess.ctx, result); err != nil {
			return withCode(ExitIOError, err)
		}
	case flags.check:
		for _, outcome := range result.Files {
			if outcome.Changed {
				fmt.Fprintln(cmd.OutOrStdout(), sess.displayPath(outcome.Path))
			}
		}
	case flags.write:
		for _, outcome := range result.Files {
			if outcome.Written {
				sess.logger.Info("formatted", logging.FieldPath, sess.displayPath(outcome.Path))
			}
		}
	default:
		if err := sess.writeOutputs(result); err != nil {
			return err
		}
	}

	if err := sess.report(result); err != nil {
		return err
	}
	if flags.check && result.HasChanges() {
		return ErrNotCanonical
	}
	return nil
}

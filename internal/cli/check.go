package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/prose/pkg/reporter"
	"github.com/yaklabco/prose/pkg/runner"
)

type checkFlags struct {
	renderSettings
	summary bool
	quiet   bool
	report  string
}

func newCheckCommand() *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Parse Markdown files and report failures",
		Long: `Parse Markdown files without rendering them.

Each failure is reported with its location, the grammar rule that could not be
satisfied, and the offending source line. Exits 1 when any file fails to parse.`,
		Example: `  prose check
  prose check docs/ --ignore 'drafts/**'
  prose check --summary README.md
  prose check --report sarif . > prose.sarif`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, flags)
		},
	}

	flags.register(cmd, false)
	cmd.Flags().BoolVar(&flags.summary, "summary", false, "print a detailed summary")
	cmd.Flags().BoolVarP(&flags.quiet, "quiet", "q", false, "print nothing on success")
	cmd.Flags().StringVarP(&flags.report, "report", "r", "text", "report format: text, json, sarif")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string, flags *checkFlags) error {
	format, err := reporter.ParseFormat(flags.report)
	if err == nil && format == reporter.FormatDiff {
		err = errors.New("diff reports are produced by prose fmt --diff")
	}
	if err != nil {
		return withCode(ExitInvalidUsage, err)
	}

	cliCfg, err := flags.config(cmd)
	if err != nil {
		return err
	}

	sess, err := newSession(cmd, cliCfg)
	if err != nil {
		return err
	}

	result, err := sess.run(sess.runOptions(runner.ModeCheck, args), args)
	if err != nil {
		return err
	}

	if format != reporter.FormatText {
		rep, err := reporter.New(reporter.Options{
			Writer:      cmd.OutOrStdout(),
			Format:      format,
			ShowContext: true,
			WorkingDir:  sess.workDir,
			ToolVersion: cmd.Root().Version,
		})
		if err != nil {
			return withCode(ExitInvalidUsage, err)
		}
		if _, err := rep.Report(sess.ctx, result); err != nil {
			return withCode(ExitIOError, err)
		}
		return outcomeError(result)
	}

	reportErr := sess.report(result)

	styles := sess.outStyles()
	switch {
	case flags.summary:
		fmt.Fprint(cmd.OutOrStdout(), styles.FormatSummary(result.Stats))
	case !flags.quiet || reportErr != nil:
		fmt.Fprint(cmd.OutOrStdout(), styles.FormatSummaryOneLine(result.Stats))
	}

	return reportErr
}

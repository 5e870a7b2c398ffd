package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/prose/internal/logging"
	"github.com/yaklabco/prose/pkg/runner"
)

type renderFlags struct {
	renderSettings
	outputDir string
	title     string
	summary   bool
}

func newRenderCommand() *cobra.Command {
	flags := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render [paths...]",
		Short: "Render Markdown files",
		Long: `Render Markdown files as HTML, JSON, canonical Markdown, or styled terminal text.

With no paths, reads standard input when it is not a terminal. Directories are
searched for .md and .markdown files. Output goes to stdout unless --output-dir
is set, in which case one file per input is written, mirroring the source tree.`,
		Example: `  prose render README.md
  prose render --format json docs/
  prose render -o public --standalone .
  cat notes.md | prose render`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args, flags)
		},
	}

	flags.register(cmd, true)
	cmd.Flags().StringVarP(&flags.outputDir, "output-dir", "o", "", "write rendered files to this directory")
	cmd.Flags().StringVar(&flags.title, "title", "", "page title for --standalone output")
	cmd.Flags().BoolVar(&flags.summary, "summary", false, "print a summary to stderr")

	return cmd
}

func runRender(cmd *cobra.Command, args []string, flags *renderFlags) error {
	cliCfg, err := flags.config(cmd)
	if err != nil {
		return err
	}
	cliCfg.OutputDir = flags.outputDir

	sess, err := newSession(cmd, cliCfg)
	if err != nil {
		return err
	}

	opts := sess.runOptions(runner.ModeRender, args)
	opts.Render.HTML.Title = flags.title

	result, err := sess.run(opts, args)
	if err != nil {
		return err
	}

	if err := sess.writeOutputs(result); err != nil {
		return err
	}

	sess.logger.Debug("render finished",
		logging.FieldFilesRendered, result.Stats.FilesProcessed,
		logging.FieldFilesWritten, result.Stats.FilesWritten,
	)

	if flags.summary || opts.OutputDir != "" {
		fmt.Fprint(cmd.ErrOrStderr(), sess.errStyles.FormatSummaryOneLine(result.Stats))
	}

	return sess.report(result)
}

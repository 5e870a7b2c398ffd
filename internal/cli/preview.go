package cli

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/prose/internal/logging"
	"github.com/yaklabco/prose/pkg/config"
	"github.com/yaklabco/prose/pkg/render"
	"github.com/yaklabco/prose/pkg/runner"
)

type previewFlags struct {
	renderSettings
	width int
	style string
}

func newPreviewCommand() *cobra.Command {
	flags := &previewFlags{}

	cmd := &cobra.Command{
		Use:   "preview [paths...]",
		Short: "Show Markdown styled for the terminal",
		Long: `Render Markdown with terminal styling.

The wrap width defaults to the terminal width when stdout is a terminal,
otherwise to terminal.width from the configuration, otherwise 80.`,
		Example: `  prose preview README.md
  prose preview --style light --width 100 notes.md`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, args, flags)
		},
	}

	flags.register(cmd, false)
	cmd.Flags().IntVar(&flags.width, "width", 0, "word-wrap width")
	cmd.Flags().StringVar(&flags.style, "style", "", "glamour style: auto, dark, light, notty, ...")

	return cmd
}

func runPreview(cmd *cobra.Command, args []string, flags *previewFlags) error {
	cliCfg, err := flags.config(cmd)
	if err != nil {
		return err
	}
	cliCfg.Format = config.FormatTerminal
	cliCfg.Terminal = config.TerminalConfig{Width: flags.width, Style: flags.style}

	sess, err := newSession(cmd, cliCfg)
	if err != nil {
		return err
	}

	opts := sess.runOptions(runner.ModeRender, args)
	opts.Format = render.FormatTerminal
	opts.OutputDir = ""
	if !cmd.Flags().Changed("width") {
		if width := terminalWidth(cmd); width > 0 {
			opts.Render.Terminal.Width = width
		}
	}
	sess.logger.Debug("preview",
		logging.FieldWidth, opts.Render.Terminal.Width,
		logging.FieldStyle, opts.Render.Terminal.Style,
	)

	result, err := sess.run(opts, args)
	if err != nil {
		return err
	}
	if err := sess.writeOutputs(result); err != nil {
		return err
	}
	return sess.report(result)
}

// terminalWidth returns the width of stdout, or 0 when it is not a terminal.
func terminalWidth(cmd *cobra.Command) int {
	f, ok := cmd.OutOrStdout().(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}

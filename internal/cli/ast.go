package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/prose/pkg/config"
	"github.com/yaklabco/prose/pkg/render"
	"github.com/yaklabco/prose/pkg/runner"
)

type astFlags struct {
	renderSettings
	compact bool
}

func newASTCommand() *cobra.Command {
	flags := &astFlags{}

	cmd := &cobra.Command{
		Use:   "ast [paths...]",
		Short: "Print the parsed document tree as JSON",
		Long: `Parse Markdown and print the document tree as JSON, one document per
input file. Each block and inline node carries a "type" field.`,
		Example: `  prose ast README.md
  echo '# Title' | prose ast --compact`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAST(cmd, args, flags)
		},
	}

	flags.register(cmd, false)
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "print one line per document")

	return cmd
}

func runAST(cmd *cobra.Command, args []string, flags *astFlags) error {
	cliCfg, err := flags.config(cmd)
	if err != nil {
		return err
	}
	cliCfg.Format = config.FormatJSON

	sess, err := newSession(cmd, cliCfg)
	if err != nil {
		return err
	}

	opts := sess.runOptions(runner.ModeRender, args)
	opts.Format = render.FormatJSON
	opts.Render.IndentJSON = !flags.compact
	opts.OutputDir = ""

	result, err := sess.run(opts, args)
	if err != nil {
		return err
	}
	if err := sess.writeOutputs(result); err != nil {
		return err
	}
	return sess.report(result)
}

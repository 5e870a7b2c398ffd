// Package cli provides the Cobra command tree for prose.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/prose/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root prose command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "prose",
		Short: "Parse and render a small, strict Markdown dialect",
		Long: `prose parses a restricted Markdown dialect (headings, lists, paragraphs,
fenced code, emphasis, inline code, links, and images) and renders it as
HTML, JSON, canonical Markdown, or styled terminal output.

Input that does not fit the grammar is rejected with the exact line, column,
and rule that failed, instead of being silently reinterpreted.`,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := "info"
			if debug {
				level = "debug"
			}
			logger := logging.NewWithWriter(cmd.ErrOrStderr(), level)
			cmd.SetContext(logging.WithLogger(cmd.Context(), logger))
		},
		Version:       info.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto", "colorize output: auto, always, never")

	rootCmd.AddCommand(
		newRenderCommand(),
		newCheckCommand(),
		newFmtCommand(),
		newPreviewCommand(),
		newASTCommand(),
		newInitCommand(),
		newVersionCommand(info),
	)

	applyHelp(rootCmd)

	return rootCmd
}

// Package runner discovers Markdown files and parses and renders them on a
// worker pool.
package runner

import (
	"github.com/yaklabco/prose/pkg/config"
	"github.com/yaklabco/prose/pkg/render"
)

// Mode selects what the runner does with each parsed document.
type Mode int

const (
	// ModeRender renders each document in Options.Format.
	ModeRender Mode = iota

	// ModeCheck only parses, reporting failures.
	ModeCheck

	// ModeFormat renders canonical Markdown and compares it to the source.
	ModeFormat
)

// Options controls a multi-file run.
type Options struct {
	// Paths are the user-specified files or directories.
	// If empty, defaults to the current working directory.
	Paths []string

	// WorkingDir resolves relative Paths and anchors ignore patterns
	// and output paths. Defaults to the process working directory.
	WorkingDir string

	// Extensions are the file extensions (with leading dot) treated as
	// Markdown. Defaults to config.DefaultExtensions().
	Extensions []string

	// ExcludeGlobs skip matching files or directories.
	ExcludeGlobs []string

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// Jobs is the maximum number of concurrent workers.
	// 0 or negative means runtime.NumCPU().
	Jobs int

	Mode   Mode
	Format render.Format
	Render render.Options

	// EnsureNewline normalizes line endings and appends a missing final
	// newline before parsing.
	EnsureNewline bool

	// OutputDir receives rendered files, mirroring the source layout.
	// Empty keeps output in memory on the FileOutcome.
	OutputDir string

	// Write rewrites sources in place in ModeFormat.
	Write bool
}

// OptionsFromConfig builds run options from a resolved configuration.
func OptionsFromConfig(cfg *config.Config) Options {
	if cfg == nil {
		cfg = config.NewConfig()
	}

	format, err := render.ParseFormat(string(cfg.Format))
	if err != nil {
		format = render.FormatHTML
	}

	return Options{
		Extensions:    cfg.Extensions,
		ExcludeGlobs:  cfg.Ignore,
		Jobs:          cfg.Jobs,
		Mode:          ModeRender,
		Format:        format,
		EnsureNewline: cfg.WantEnsureNewline(),
		OutputDir:     cfg.OutputDir,
		Render: render.Options{
			HTML: render.HTMLOptions{
				HeadingIDs:     cfg.WantHeadingIDs(),
				DetectLanguage: cfg.WantDetectLanguage(),
				Standalone:     cfg.WantStandalone(),
			},
			Terminal: render.TerminalOptions{
				Width: cfg.Terminal.Width,
				Style: cfg.Terminal.Style,
			},
			IndentJSON: true,
		},
	}
}

func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return config.DefaultExtensions()
	}
	return o.Extensions
}

func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}

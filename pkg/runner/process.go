package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yaklabco/prose/internal/logging"
	"github.com/yaklabco/prose/pkg/fsutil"
	"github.com/yaklabco/prose/pkg/markdown"
	"github.com/yaklabco/prose/pkg/render"
)

// ProcessFile reads, parses, and renders one file according to opts.
func ProcessFile(ctx context.Context, path string, opts Options) FileOutcome {
	src, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return FileOutcome{Path: path, Error: err}
	}

	outcome := Process(ctx, path, src, opts)
	if outcome.Failed() {
		return outcome
	}

	switch {
	case opts.Mode == ModeFormat && opts.Write && outcome.Changed:
		outcome.Written, outcome.Error = fsutil.ReplaceFile(ctx, info, outcome.Output)
		outcome.OutputPath = path
	case opts.Mode == ModeRender && opts.OutputDir != "":
		outcome.OutputPath = outputPath(path, opts)
		outcome.Written, outcome.Error = fsutil.WriteAtomicIfChanged(ctx, outcome.OutputPath, outcome.Output, 0)
	}

	if outcome.Written {
		logging.FromContext(ctx).Debug("wrote file",
			logging.FieldInput, path,
			logging.FieldOutput, outcome.OutputPath,
			logging.FieldBytes, len(outcome.Output),
		)
	}

	return outcome
}

// Process parses and renders src, named name for titles and diagnostics.
// It never touches the file system, so it also serves stdin.
func Process(ctx context.Context, name string, src []byte, opts Options) FileOutcome {
	outcome := FileOutcome{Path: name, BytesIn: len(src)}

	if err := ctx.Err(); err != nil {
		outcome.Error = err
		return outcome
	}

	text := string(src)
	if opts.EnsureNewline {
		text = markdown.NormalizeInput(text)
	}

	doc, err := markdown.Parse(text)
	if err != nil {
		var perr *markdown.ParseError
		if errors.As(err, &perr) {
			outcome.ParseError = perr
			outcome.SourceLine = perr.SourceLine(text)
			logging.FromContext(ctx).Debug("parse failed",
				logging.FieldPath, name,
				logging.FieldRule, perr.Rule,
				logging.FieldLine, perr.Line,
				logging.FieldColumn, perr.Column,
			)
			return outcome
		}
		outcome.Error = fmt.Errorf("parse %s: %w", name, err)
		return outcome
	}
	outcome.Document = doc

	switch opts.Mode {
	case ModeCheck:
		return outcome
	case ModeFormat:
		outcome.Output = []byte(render.FormatString(doc))
		outcome.Changed = !bytes.Equal(outcome.Output, src)
		outcome.Source = src
		return outcome
	}

	renderOpts := opts.Render
	if renderOpts.HTML.Standalone && renderOpts.HTML.Title == "" && doc.Title() == "" {
		renderOpts.HTML.Title = strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	}

	var buf bytes.Buffer
	if err := render.Render(&buf, doc, opts.Format, renderOpts); err != nil {
		outcome.Error = fmt.Errorf("render %s: %w", name, err)
		return outcome
	}
	outcome.Output = buf.Bytes()

	return outcome
}

// outputPath maps a source path to its rendered location under
// opts.OutputDir, keeping the layout relative to the working directory.
func outputPath(path string, opts Options) string {
	rel := filepath.Base(path)
	if workDir, err := resolveWorkDir(opts.WorkingDir); err == nil {
		if r, err := filepath.Rel(workDir, path); err == nil && !strings.HasPrefix(r, "..") {
			rel = r
		}
	}

	rel = strings.TrimSuffix(rel, filepath.Ext(rel)) + opts.Format.Extension()

	outDir := opts.OutputDir
	if !filepath.IsAbs(outDir) {
		if workDir, err := resolveWorkDir(opts.WorkingDir); err == nil {
			outDir = filepath.Join(workDir, outDir)
		}
	}

	return filepath.Join(outDir, rel)
}

package reporter

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize/english"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/yaklabco/prose/internal/ui/pretty"
	"github.com/yaklabco/prose/pkg/runner"
)

// diffContextLines is the number of unchanged lines around each hunk.
const diffContextLines = 3

// DiffReporter writes git-style unified diffs from each changed source to
// its canonical form.
type DiffReporter struct {
	opts   Options
	styles *pretty.Styles
	out    io.Writer
}

// NewDiffReporter creates a new diff reporter.
func NewDiffReporter(opts Options) *DiffReporter {
	return &DiffReporter{
		opts:   opts,
		styles: pretty.NewStyles(pretty.IsColorEnabled(opts.Color, opts.Writer)),
		out:    opts.Writer,
	}
}

// Report implements Reporter.
func (r *DiffReporter) Report(_ context.Context, result *runner.Result) (int, error) {
	if result == nil {
		return 0, nil
	}

	var files, additions, deletions int
	for _, file := range result.Files {
		if file.Failed() || !file.Changed {
			continue
		}

		path := filepath.ToSlash(DisplayPath(r.opts.WorkingDir, file.Path))
		text, err := UnifiedDiff(path, file.Source, file.Output)
		if err != nil {
			return files, fmt.Errorf("diff %s: %w", path, err)
		}
		if text == "" {
			continue
		}

		files++
		added, removed := r.writeDiff(path, text)
		additions += added
		deletions += removed
	}

	if files > 0 && r.opts.ShowSummary {
		r.writeSummary(files, additions, deletions)
	}

	return files, nil
}

// UnifiedDiff returns the unified diff between before and after, with
// a/ and b/ prefixed file headers. It returns "" when they are equal.
func UnifiedDiff(path string, before, after []byte) (string, error) {
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        splitLines(before),
		B:        splitLines(after),
		FromFile: "a/" + path,
		ToFile:   "b/" + path,
		Context:  diffContextLines,
	})
}

func (r *DiffReporter) writeDiff(path, text string) (added, removed int) {
	fmt.Fprintln(r.out, r.styles.DiffHeader.Render(fmt.Sprintf("diff --git a/%s b/%s", path, path)))

	for _, line := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		var styled string
		switch {
		case strings.HasPrefix(line, "+++"):
			styled = r.styles.DiffAdd.Render(line)
		case strings.HasPrefix(line, "---"):
			styled = r.styles.DiffRemove.Render(line)
		case strings.HasPrefix(line, "@@"):
			styled = r.styles.DiffHunk.Render(line)
		case strings.HasPrefix(line, "+"):
			styled = r.styles.DiffAdd.Render(line)
			added++
		case strings.HasPrefix(line, "-"):
			styled = r.styles.DiffRemove.Render(line)
			removed++
		default:
			styled = r.styles.DiffContext.Render(line)
		}
		fmt.Fprintln(r.out, styled)
	}

	fmt.Fprintln(r.out)
	return added, removed
}

func (r *DiffReporter) writeSummary(files, additions, deletions int) {
	parts := []string{english.Plural(files, "file", "") + " changed"}
	if additions > 0 {
		parts = append(parts, r.styles.DiffAdd.Render(english.Plural(additions, "insertion", "")+"(+)"))
	}
	if deletions > 0 {
		parts = append(parts, r.styles.DiffRemove.Render(english.Plural(deletions, "deletion", "")+"(-)"))
	}
	fmt.Fprintln(r.out, strings.Join(parts, ", "))
}

// splitLines splits content after each newline. A final line without one
// gets one, so every diff line is terminated.
func splitLines(content []byte) []string {
	lines := strings.SplitAfter(string(content), "\n")
	last := len(lines) - 1
	if lines[last] == "" {
		return lines[:last]
	}
	lines[last] += "\n"
	return lines
}

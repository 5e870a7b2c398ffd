// Package reporter writes the outcome of a run as styled text, JSON, SARIF,
// or unified diffs of formatting changes.
package reporter

import (
	"context"
	"fmt"

	"github.com/yaklabco/prose/pkg/runner"
)

// Reporter formats and writes run results.
type Reporter interface {
	// Report writes output for result and returns how many files it
	// reported on: failing files, or changed files for diffs.
	Report(ctx context.Context, result *runner.Result) (int, error)
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}

	format := opts.Format
	if format == "" {
		format = FormatText
	}

	switch format {
	case FormatText:
		return NewTextReporter(opts), nil
	case FormatJSON:
		return NewJSONReporter(opts), nil
	case FormatSARIF:
		return NewSARIFReporter(opts), nil
	case FormatDiff:
		return NewDiffReporter(opts), nil
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

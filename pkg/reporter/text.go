package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/prose/internal/ui/pretty"
	"github.com/yaklabco/prose/pkg/runner"
)

// TextReporter writes parse failures and errors as styled terminal output.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(pretty.IsColorEnabled(opts.Color, opts.Writer)),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Dim.Render("No Markdown files found."))
		}
		return 0, nil
	}

	var reported int
	for _, file := range result.Files {
		path := DisplayPath(r.opts.WorkingDir, file.Path)

		switch {
		case file.ParseError != nil:
			source := ""
			if r.opts.ShowContext {
				source = file.SourceLine
			}
			fmt.Fprint(r.bw, r.styles.FormatParseError(path, file.ParseError, source))
			reported++
		case file.Error != nil:
			fmt.Fprint(r.bw, r.styles.FormatError(path, file.Error))
			reported++
		}
	}

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return reported, nil
}

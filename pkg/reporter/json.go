package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/prose/pkg/runner"
)

// jsonReportVersion is bumped on incompatible changes to JSONOutput.
const jsonReportVersion = "1"

// File statuses in JSON output.
const (
	StatusOK      = "ok"
	StatusFailed  = "failed"
	StatusError   = "error"
	StatusChanged = "changed"
)

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string      `json:"version"`
	Files   []JSONFile  `json:"files"`
	Summary JSONSummary `json:"summary"`
}

// JSONFile is one file's outcome.
type JSONFile struct {
	Path    string       `json:"path"`
	Status  string       `json:"status"`
	Blocks  int          `json:"blocks"`
	Failure *JSONFailure `json:"failure,omitempty"`
	Error   string       `json:"error,omitempty"`
}

// JSONFailure locates a parse failure.
type JSONFailure struct {
	Rule   string `json:"rule"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
	Offset int    `json:"offset"`
	Source string `json:"source,omitempty"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesChecked int `json:"filesChecked"`
	FilesFailed  int `json:"filesFailed"`
	FilesErrored int `json:"filesErrored"`
	FilesChanged int `json:"filesChanged"`
	Blocks       int `json:"blocks"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	encoder.SetEscapeHTML(false)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return output.Summary.FilesFailed + output.Summary.FilesErrored, nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: jsonReportVersion,
		Files:   make([]JSONFile, 0),
	}
	if result == nil {
		return output
	}

	for _, file := range result.Files {
		entry := JSONFile{
			Path:   DisplayPath(r.opts.WorkingDir, file.Path),
			Status: StatusOK,
			Blocks: file.Document.Len(),
		}

		switch {
		case file.ParseError != nil:
			entry.Status = StatusFailed
			entry.Failure = &JSONFailure{
				Rule:   string(file.ParseError.Rule),
				Line:   file.ParseError.Line,
				Column: file.ParseError.Column,
				Offset: file.ParseError.Offset,
			}
			if r.opts.ShowContext {
				entry.Failure.Source = file.SourceLine
			}
			output.Summary.FilesFailed++
		case file.Error != nil:
			entry.Status = StatusError
			entry.Error = file.Error.Error()
			output.Summary.FilesErrored++
		case file.Changed:
			entry.Status = StatusChanged
			output.Summary.FilesChanged++
		}

		output.Summary.Blocks += entry.Blocks
		output.Summary.FilesChecked++
		output.Files = append(output.Files, entry)
	}

	return output
}

package runner

import "github.com/yaklabco/prose/pkg/markdown"

// FileOutcome is what happened to one input.
type FileOutcome struct {
	// Path is the file path that was processed, or a display name for stdin.
	Path string

	// Document is the parse result. Nil when parsing failed.
	Document *markdown.Document

	// Output holds the rendered bytes. In ModeFormat it holds the
	// canonical Markdown. Empty in ModeCheck.
	Output []byte

	// OutputPath is where rendered bytes were written, if anywhere.
	OutputPath string

	// Written is true if a file on disk was created or changed.
	Written bool

	// Changed is true in ModeFormat when the source is not canonical.
	Changed bool

	// Source holds the original bytes in ModeFormat, for diffs.
	Source []byte

	// ParseError is set when the source does not conform to the grammar.
	ParseError *markdown.ParseError

	// SourceLine is the source line ParseError points into.
	SourceLine string

	// BytesIn is the size of the source.
	BytesIn int

	// Error is set if the file could not be read, rendered, or written.
	Error error
}

// Failed reports whether the outcome carries any failure.
func (o FileOutcome) Failed() bool {
	return o.ParseError != nil || o.Error != nil
}

// Stats captures aggregate information about a run.
type Stats struct {
	FilesDiscovered int
	FilesProcessed  int

	// FilesFailed counts files with parse failures.
	FilesFailed int

	// FilesErrored counts files with I/O or render errors.
	FilesErrored int

	FilesWritten int

	// FilesChanged counts non-canonical sources in ModeFormat.
	FilesChanged int

	Blocks   int
	BytesIn  int64
	BytesOut int64
}

// Result is the overall runner result.
type Result struct {
	// Files are ordered like the discovered paths.
	Files []FileOutcome

	Stats Stats
}

// HasParseFailures reports whether any input failed to parse.
func (r *Result) HasParseFailures() bool {
	return r != nil && r.Stats.FilesFailed > 0
}

// HasErrors reports whether any input hit an I/O or render error.
func (r *Result) HasErrors() bool {
	return r != nil && r.Stats.FilesErrored > 0
}

// HasChanges reports whether any source was not canonical.
func (r *Result) HasChanges() bool {
	return r != nil && r.Stats.FilesChanged > 0
}

func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)
	r.Stats.BytesIn += int64(outcome.BytesIn)

	switch {
	case outcome.Error != nil:
		r.Stats.FilesErrored++
		return
	case outcome.ParseError != nil:
		r.Stats.FilesFailed++
		return
	}

	r.Stats.FilesProcessed++
	r.Stats.Blocks += outcome.Document.Len()
	r.Stats.BytesOut += int64(len(outcome.Output))

	if outcome.Written {
		r.Stats.FilesWritten++
	}
	if outcome.Changed {
		r.Stats.FilesChanged++
	}
}

// Collect builds a Result from outcomes produced outside Run, such as
// standard input passed through Process.
func Collect(outcomes ...FileOutcome) *Result {
	r := &Result{Files: make([]FileOutcome, 0, len(outcomes))}
	r.Stats.FilesDiscovered = len(outcomes)
	for _, outcome := range outcomes {
		r.accumulate(outcome)
	}
	return r
}

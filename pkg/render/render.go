// Package render writes a parsed markdown.Document as HTML, canonical
// Markdown, a JSON tree, or styled terminal output.
package render

import (
	"fmt"
	"io"

	"github.com/yaklabco/prose/pkg/markdown"
)

// Format represents an output format.
type Format string

// Output formats supported by Render.
const (
	FormatHTML     Format = "html"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
	FormatTerminal Format = "terminal"
)

// ParseFormat parses a format string, returning an error for unknown formats.
func ParseFormat(formatStr string) (Format, error) {
	switch formatStr {
	case "html", "":
		return FormatHTML, nil
	case "json":
		return FormatJSON, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "terminal", "term":
		return FormatTerminal, nil
	default:
		return "", fmt.Errorf("unknown format %q; valid formats: html, json, markdown, terminal", formatStr)
	}
}

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// IsValid returns true if the format is a known valid format.
func (f Format) IsValid() bool {
	switch f {
	case FormatHTML, FormatJSON, FormatMarkdown, FormatTerminal:
		return true
	default:
		return false
	}
}

// Extension returns the file extension, with leading dot, for output files.
func (f Format) Extension() string {
	switch f {
	case FormatJSON:
		return ".json"
	case FormatMarkdown:
		return ".md"
	case FormatTerminal:
		return ".txt"
	default:
		return ".html"
	}
}

// Options carries per-format settings.
type Options struct {
	HTML     HTMLOptions
	Terminal TerminalOptions

	// IndentJSON pretty-prints JSON output.
	IndentJSON bool
}

// Render writes doc to w in the given format.
func Render(w io.Writer, doc *markdown.Document, format Format, opts Options) error {
	switch format {
	case FormatHTML, "":
		return HTML(w, doc, opts.HTML)
	case FormatJSON:
		return JSON(w, doc, opts.IndentJSON)
	case FormatMarkdown:
		return Markdown(w, doc)
	case FormatTerminal:
		return Terminal(w, doc, opts.Terminal)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

package pretty

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/yaklabco/prose/pkg/markdown"
)

const (
	// sourceIndent aligns source context under the location column.
	sourceIndent = "    "

	tabWidth = 4
)

// FormatParseError formats a parse failure as
//
//	path:line:col  error  expected closing "*"
//	    an *open italic
//	       ^
//
// The source context is omitted when sourceLine is empty.
func (s *Styles) FormatParseError(path string, perr *markdown.ParseError, sourceLine string) string {
	var builder strings.Builder

	location := s.FilePath.Render(path) + s.Location.Render(fmt.Sprintf(":%d:%d", perr.Line, perr.Column))

	fmt.Fprintf(&builder, "%s  %s  %s\n",
		location,
		s.Error.Render("error"),
		s.Message.Render(string(perr.Rule)),
	)

	if sourceLine != "" {
		builder.WriteString(s.FormatSourceContext(sourceLine, perr.Column))
	}

	return builder.String()
}

// FormatSourceContext formats the source line with a caret under column
// (1-based, in runes).
func (s *Styles) FormatSourceContext(line string, column int) string {
	var builder strings.Builder

	builder.WriteString(sourceIndent + s.SourceLine.Render(line) + "\n")

	if column > 0 {
		builder.WriteString(sourceIndent + caretPadding(line, column) + s.Caret.Render("^") + "\n")
	}

	return builder.String()
}

// caretPadding returns whitespace as wide as the first column-1 runes of
// line. Tabs count as tabWidth, the width lipgloss expands them to.
func caretPadding(line string, column int) string {
	var pad strings.Builder
	n := 0
	for _, r := range line {
		if n >= column-1 {
			break
		}
		if r == '\t' {
			pad.WriteString(strings.Repeat(" ", tabWidth))
		} else {
			pad.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
		}
		n++
	}
	if n < column-1 {
		pad.WriteString(strings.Repeat(" ", column-1-n))
	}
	return pad.String()
}

// FormatWarning formats a non-fatal message.
func (s *Styles) FormatWarning(msg string) string {
	return s.Warning.Render("warning") + "  " + s.Message.Render(msg) + "\n"
}

// FormatError formats a non-parse error, such as an unreadable file.
func (s *Styles) FormatError(path string, err error) string {
	if path == "" {
		return s.Error.Render("error") + "  " + s.Message.Render(err.Error()) + "\n"
	}
	return s.FilePath.Render(path) + "  " + s.Error.Render("error") + "  " + s.Message.Render(err.Error()) + "\n"
}

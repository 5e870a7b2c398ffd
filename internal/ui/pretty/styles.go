// Package pretty renders parse failures, summaries, and diffs for the
// terminal with lipgloss.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// ANSI palette indexes.
const (
	colorRed    = "9"
	colorGreen  = "10"
	colorYellow = "11"
	colorCyan   = "14"
	colorGray   = "8"
	colorSilver = "7"
)

// Styles holds one lipgloss style per output element.
type Styles struct {
	Error   lipgloss.Style
	Warning lipgloss.Style

	FilePath   lipgloss.Style
	Location   lipgloss.Style
	Rule       lipgloss.Style
	Message    lipgloss.Style
	SourceLine lipgloss.Style
	Caret      lipgloss.Style

	SummaryTitle lipgloss.Style
	SummaryValue lipgloss.Style
	Success      lipgloss.Style
	Failure      lipgloss.Style

	DiffHeader  lipgloss.Style
	DiffHunk    lipgloss.Style
	DiffAdd     lipgloss.Style
	DiffRemove  lipgloss.Style
	DiffContext lipgloss.Style

	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles returns styles that add no escape sequences when colorEnabled
// is false.
func NewStyles(colorEnabled bool) *Styles {
	plain := lipgloss.NewStyle()
	fg := func(color string) lipgloss.Style {
		if !colorEnabled {
			return plain
		}
		return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	}
	bold := func(s lipgloss.Style) lipgloss.Style {
		if !colorEnabled {
			return s
		}
		return s.Bold(true)
	}

	return &Styles{
		Error:   bold(fg(colorRed)),
		Warning: bold(fg(colorYellow)),

		FilePath:   bold(plain),
		Location:   fg(colorGray),
		Rule:       fg(colorGray),
		Message:    plain,
		SourceLine: fg(colorSilver),
		Caret:      fg(colorRed),

		SummaryTitle: bold(plain),
		SummaryValue: plain,
		Success:      bold(fg(colorGreen)),
		Failure:      bold(fg(colorRed)),

		DiffHeader:  bold(plain),
		DiffHunk:    fg(colorCyan),
		DiffAdd:     fg(colorGreen),
		DiffRemove:  fg(colorRed),
		DiffContext: plain,

		Dim:  fg(colorGray),
		Bold: bold(plain),
	}
}

// IsColorEnabled resolves a --color mode for writer. "auto" (and anything
// unrecognized) means color only on a terminal with NO_COLOR unset.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := writer.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

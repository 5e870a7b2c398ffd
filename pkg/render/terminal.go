package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/yaklabco/prose/pkg/markdown"
)

// DefaultTerminalWidth is used when TerminalOptions.Width is not positive.
const DefaultTerminalWidth = 80

// TerminalOptions controls styled terminal output.
type TerminalOptions struct {
	// Width is the word-wrap column.
	Width int

	// Style is a glamour standard style name ("dark", "light", "notty",
	// ...). Empty or "auto" picks one from the terminal background.
	Style string
}

// Terminal writes doc styled for a terminal using glamour.
func Terminal(w io.Writer, doc *markdown.Document, opts TerminalOptions) error {
	var src strings.Builder
	if err := writeMarkdown(&src, doc, true); err != nil {
		return err
	}

	width := opts.Width
	if width <= 0 {
		width = DefaultTerminalWidth
	}

	rendererOpts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	switch opts.Style {
	case "", "auto":
		rendererOpts = append(rendererOpts, glamour.WithAutoStyle())
	default:
		rendererOpts = append(rendererOpts, glamour.WithStandardStyle(opts.Style))
	}

	tr, err := glamour.NewTermRenderer(rendererOpts...)
	if err != nil {
		return fmt.Errorf("create terminal renderer: %w", err)
	}

	out, err := tr.Render(src.String())
	if err != nil {
		return fmt.Errorf("render terminal output: %w", err)
	}

	if _, err := io.WriteString(w, out); err != nil {
		return fmt.Errorf("write terminal output: %w", err)
	}
	return nil
}

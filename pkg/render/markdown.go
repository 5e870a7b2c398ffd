package render

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/yaklabco/prose/pkg/markdown"
)

type markdownWriter struct {
	w *bufio.Writer

	// spaced separates blocks with a blank line and drops blank-line
	// paragraphs, for consumers that merge adjacent lines.
	spaced bool
}

// Markdown writes doc in canonical form. Parsing the output yields a
// Document equal to doc; ordered list items are renumbered from 1.
func Markdown(w io.Writer, doc *markdown.Document) error {
	return writeMarkdown(w, doc, false)
}

// FormatString returns the canonical Markdown for doc.
func FormatString(doc *markdown.Document) string {
	var sb strings.Builder
	_ = Markdown(&sb, doc)
	return sb.String()
}

func writeMarkdown(w io.Writer, doc *markdown.Document, spaced bool) error {
	mw := &markdownWriter{w: bufio.NewWriter(w), spaced: spaced}
	if doc != nil {
		first := true
		for _, b := range doc.Blocks {
			if spaced {
				if p, ok := b.(markdown.Paragraph); ok && p.Content.IsEmpty() {
					continue
				}
				if !first {
					mw.str("\n")
				}
			}
			mw.block(b)
			first = false
		}
	}
	if err := mw.w.Flush(); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}
	return nil
}

func (mw *markdownWriter) str(s string) {
	_, _ = mw.w.WriteString(s)
}

func (mw *markdownWriter) block(b markdown.Block) {
	switch b := b.(type) {
	case markdown.Heading:
		mw.str(strings.Repeat("#", b.Level) + " ")
		mw.line(b.Content)
	case markdown.UnorderedList:
		for _, item := range b.Items {
			mw.str("- ")
			mw.line(item)
		}
	case markdown.OrderedList:
		for i, item := range b.Items {
			mw.str(strconv.Itoa(i+1) + ". ")
			mw.line(item)
		}
	case markdown.Paragraph:
		mw.line(b.Content)
	case markdown.Codeblock:
		mw.str("```" + b.Language + "\n")
		mw.str(b.Raw)
		mw.str("```\n")
	}
}

func (mw *markdownWriter) line(line markdown.Line) {
	for _, node := range line {
		switch n := node.(type) {
		case markdown.Plaintext:
			mw.str(n.Content)
		case markdown.Bold:
			mw.str("**" + n.Content + "**")
		case markdown.Italic:
			mw.str("*" + n.Content + "*")
		case markdown.InlineCode:
			mw.str("`" + n.Code + "`")
		case markdown.Link:
			mw.str("[" + n.Label + "](" + n.URL + ")")
		case markdown.Image:
			mw.str("![" + n.Alt + "](" + n.URL + ")")
		}
	}
	mw.str("\n")
}

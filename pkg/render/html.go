package render

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/shurcooL/sanitized_anchor_name"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"

	"github.com/yaklabco/prose/pkg/langdetect"
	"github.com/yaklabco/prose/pkg/markdown"
)

// maxHTMLHeading is the deepest heading element HTML defines. Deeper
// headings are written as h6.
const maxHTMLHeading = 6

// HTMLOptions controls HTML output.
type HTMLOptions struct {
	// HeadingIDs adds an id attribute derived from the heading text.
	HeadingIDs bool

	// DetectLanguage guesses a language class for code blocks without one.
	DetectLanguage bool

	// Standalone wraps the fragment in a complete HTML5 page.
	Standalone bool

	// Title is the page title for standalone output. Defaults to the first
	// heading.
	Title string
}

type htmlWriter struct {
	w    *bufio.Writer
	opts HTMLOptions
	ids  map[string]int
}

// HTML writes doc as an HTML fragment, or a full page when opts.Standalone
// is set. Blank-line paragraphs produce no output.
func HTML(w io.Writer, doc *markdown.Document, opts HTMLOptions) error {
	hw := &htmlWriter{
		w:    bufio.NewWriter(w),
		opts: opts,
		ids:  make(map[string]int),
	}

	if opts.Standalone {
		title := opts.Title
		if title == "" {
			title = doc.Title()
		}
		hw.str("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>")
		hw.escaped(title)
		hw.str("</title>\n</head>\n<body>\n")
	}

	if doc != nil {
		for _, b := range doc.Blocks {
			hw.block(b)
		}
	}

	if opts.Standalone {
		hw.str("</body>\n</html>\n")
	}

	if err := hw.w.Flush(); err != nil {
		return fmt.Errorf("write html: %w", err)
	}
	return nil
}

func (hw *htmlWriter) str(s string) {
	_, _ = hw.w.WriteString(s)
}

func (hw *htmlWriter) escaped(s string) {
	_, _ = hw.w.Write(util.EscapeHTML([]byte(s)))
}

// url writes s as an attribute value. Script-capable schemes such as
// javascript: are written as an empty value.
func (hw *htmlWriter) url(s string) {
	dest := []byte(s)
	if gmhtml.IsDangerousURL(dest) {
		return
	}
	hw.escaped(string(util.URLEscape(dest, false)))
}

func (hw *htmlWriter) block(b markdown.Block) {
	switch b := b.(type) {
	case markdown.Heading:
		hw.heading(b)
	case markdown.UnorderedList:
		hw.list("ul", b.Items)
	case markdown.OrderedList:
		hw.list("ol", b.Items)
	case markdown.Paragraph:
		if b.Content.IsEmpty() {
			return
		}
		hw.str("<p>")
		hw.line(b.Content)
		hw.str("</p>\n")
	case markdown.Codeblock:
		hw.codeblock(b)
	}
}

func (hw *htmlWriter) heading(h markdown.Heading) {
	tag := "h" + strconv.Itoa(min(h.Level, maxHTMLHeading))

	hw.str("<" + tag)
	if hw.opts.HeadingIDs {
		if id := hw.headingID(h.Content.Text()); id != "" {
			hw.str(` id="`)
			hw.escaped(id)
			hw.str(`"`)
		}
	}
	hw.str(">")
	hw.line(h.Content)
	hw.str("</" + tag + ">\n")
}

// headingID returns a unique anchor for text. Repeats get a numeric suffix.
func (hw *htmlWriter) headingID(text string) string {
	id := sanitized_anchor_name.Create(text)
	if id == "" {
		return ""
	}
	n := hw.ids[id]
	hw.ids[id] = n + 1
	if n == 0 {
		return id
	}
	return id + "-" + strconv.Itoa(n)
}

func (hw *htmlWriter) list(tag string, items []markdown.Line) {
	hw.str("<" + tag + ">\n")
	for _, item := range items {
		hw.str("<li>")
		hw.line(item)
		hw.str("</li>\n")
	}
	hw.str("</" + tag + ">\n")
}

func (hw *htmlWriter) codeblock(c markdown.Codeblock) {
	lang := langdetect.Normalize(c.Language)
	if lang == langdetect.Unknown && hw.opts.DetectLanguage {
		lang = langdetect.Detect([]byte(c.Raw))
	}

	hw.str("<pre><code")
	if lang != langdetect.Unknown {
		hw.str(` class="language-`)
		hw.escaped(lang)
		hw.str(`"`)
	}
	hw.str(">")
	hw.escaped(c.Raw)
	hw.str("</code></pre>\n")
}

func (hw *htmlWriter) line(line markdown.Line) {
	for _, node := range line {
		hw.inline(node)
	}
}

func (hw *htmlWriter) inline(node markdown.Inline) {
	switch n := node.(type) {
	case markdown.Plaintext:
		hw.escaped(n.Content)
	case markdown.Bold:
		hw.str("<strong>")
		hw.escaped(n.Content)
		hw.str("</strong>")
	case markdown.Italic:
		hw.str("<em>")
		hw.escaped(n.Content)
		hw.str("</em>")
	case markdown.InlineCode:
		hw.str("<code>")
		hw.escaped(n.Code)
		hw.str("</code>")
	case markdown.Link:
		hw.str(`<a href="`)
		hw.url(n.URL)
		hw.str(`">`)
		hw.escaped(n.Label)
		hw.str("</a>")
	case markdown.Image:
		hw.str(`<img src="`)
		hw.url(n.URL)
		hw.str(`" alt="`)
		hw.escaped(n.Alt)
		hw.str(`">`)
	}
}

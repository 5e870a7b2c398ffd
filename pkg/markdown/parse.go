package markdown

import (
	"fmt"
	"io"
	"strings"
)

// Parse parses text into a Document. Empty input yields an empty Document.
// On failure the returned error is a *ParseError and no Document is
// returned. Success means every byte of text was consumed: text left
// after the last complete block is reported by the block that fails on it.
func Parse(text string) (*Document, error) {
	c := cursor{src: text}
	doc := &Document{}

	for !c.eof() {
		next, b, f := matchBlock(c)
		if f != nil {
			return nil, f.toError(text)
		}
		// Guard: every block rule consumes at least a newline.
		if next.pos <= c.pos {
			return nil, fail(c, RuleStalledOnBlock).toError(text)
		}
		doc.Blocks = append(doc.Blocks, b)
		c = next
	}
	return doc, nil
}

// ParseBytes is Parse for a byte slice.
func ParseBytes(src []byte) (*Document, error) {
	return Parse(string(src))
}

// ParseReader reads r to EOF and parses the result.
func ParseReader(r io.Reader) (*Document, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return ParseBytes(src)
}

// NormalizeInput converts CRLF line endings to LF and appends a final
// newline when text is non-empty and lacks one.
func NormalizeInput(text string) string {
	if strings.Contains(text, "\r\n") {
		text = strings.ReplaceAll(text, "\r\n", "\n")
	}
	if text != "" && !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	return text
}

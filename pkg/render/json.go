package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/yaklabco/prose/pkg/markdown"
)

// JSONDocument is the top-level JSON structure.
type JSONDocument struct {
	Blocks []JSONBlock `json:"blocks"`
}

// JSONBlock is one block. Fields irrelevant to Type are omitted.
type JSONBlock struct {
	Type     string         `json:"type"`
	Level    int            `json:"level,omitempty"`
	Content  []JSONInline   `json:"content,omitempty"`
	Items    [][]JSONInline `json:"items,omitempty"`
	Language string         `json:"language,omitempty"`
	Raw      string         `json:"raw,omitempty"`
}

// JSONInline is one inline node.
type JSONInline struct {
	Type string `json:"type"`
	Text string `json:"text"`
	URL  string `json:"url,omitempty"`
}

// JSON writes doc as a tagged JSON tree.
func JSON(w io.Writer, doc *markdown.Document, indent bool) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(NewJSONDocument(doc)); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// NewJSONDocument converts doc to its JSON form.
func NewJSONDocument(doc *markdown.Document) JSONDocument {
	out := JSONDocument{Blocks: make([]JSONBlock, 0, doc.Len())}
	if doc == nil {
		return out
	}

	for _, b := range doc.Blocks {
		jb := JSONBlock{Type: b.Kind().String()}
		switch b := b.(type) {
		case markdown.Heading:
			jb.Level = b.Level
			jb.Content = jsonLine(b.Content)
		case markdown.UnorderedList:
			jb.Items = jsonItems(b.Items)
		case markdown.OrderedList:
			jb.Items = jsonItems(b.Items)
		case markdown.Paragraph:
			jb.Content = jsonLine(b.Content)
		case markdown.Codeblock:
			jb.Language = b.Language
			jb.Raw = b.Raw
		}
		out.Blocks = append(out.Blocks, jb)
	}
	return out
}

func jsonItems(items []markdown.Line) [][]JSONInline {
	out := make([][]JSONInline, 0, len(items))
	for _, item := range items {
		out = append(out, jsonLine(item))
	}
	return out
}

func jsonLine(line markdown.Line) []JSONInline {
	out := make([]JSONInline, 0, len(line))
	for _, node := range line {
		ji := JSONInline{Type: node.Kind().String(), Text: node.Text()}
		switch n := node.(type) {
		case markdown.Link:
			ji.URL = n.URL
		case markdown.Image:
			ji.URL = n.URL
		}
		out = append(out, ji)
	}
	return out
}

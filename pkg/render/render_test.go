package render_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/prose/pkg/markdown"
	"github.com/yaklabco/prose/pkg/render"
)

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    render.Format
		wantErr bool
	}{
		{"", render.FormatHTML, false},
		{"html", render.FormatHTML, false},
		{"json", render.FormatJSON, false},
		{"md", render.FormatMarkdown, false},
		{"markdown", render.FormatMarkdown, false},
		{"term", render.FormatTerminal, false},
		{"pdf", "", true},
	}

	for _, tc := range tests {
		got, err := render.ParseFormat(tc.input)
		if tc.wantErr {
			assert.Error(t, err, tc.input)
			continue
		}
		require.NoError(t, err, tc.input)
		assert.Equal(t, tc.want, got)
		assert.True(t, got.IsValid())
	}
}

func TestFormat_Extension(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ".html", render.FormatHTML.Extension())
	assert.Equal(t, ".json", render.FormatJSON.Extension())
	assert.Equal(t, ".md", render.FormatMarkdown.Extension())
	assert.Equal(t, ".txt", render.FormatTerminal.Extension())
}

func TestRender_Dispatch(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, "# T\n")

	var buf bytes.Buffer
	require.NoError(t, render.Render(&buf, doc, render.FormatHTML, render.Options{}))
	assert.Equal(t, "<h1>T</h1>\n", buf.String())

	buf.Reset()
	require.NoError(t, render.Render(&buf, doc, render.FormatMarkdown, render.Options{}))
	assert.Equal(t, "# T\n", buf.String())

	buf.Reset()
	require.NoError(t, render.Render(&buf, doc, render.FormatJSON, render.Options{}))
	assert.True(t, strings.HasPrefix(buf.String(), `{"blocks":`))

	assert.Error(t, render.Render(&buf, doc, render.Format("pdf"), render.Options{}))
}

func TestJSON(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, "# T\n- a\n\n```sh\nls\n```\nsee [x](y)\n")

	var buf bytes.Buffer
	require.NoError(t, render.JSON(&buf, doc, true))

	want := `{"blocks":[
		{"type":"heading","level":1,"content":[{"type":"plaintext","text":"T"}]},
		{"type":"unordered_list","items":[[{"type":"plaintext","text":"a"}]]},
		{"type":"paragraph"},
		{"type":"codeblock","language":"sh","raw":"ls\n"},
		{"type":"paragraph","content":[{"type":"plaintext","text":"see "},{"type":"link","text":"x","url":"y"}]}
	]}`
	assert.JSONEq(t, want, buf.String())
}

func TestJSON_EmptyDocument(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, render.JSON(&buf, mustParse(t, ""), false))
	assert.Equal(t, "{\"blocks\":[]}\n", buf.String())
}

func TestTerminal(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, "# Title\n\n- item one\n- item two\n")

	var buf bytes.Buffer
	err := render.Terminal(&buf, doc, render.TerminalOptions{Width: 40, Style: "notty"})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "item one")
	assert.Contains(t, out, "item two")
}

func BenchmarkRender(b *testing.B) {
	section := "# Section\nSome *italic* and **bold** with `code` and [a](b).\n- x\n1. y\n```\ncode\n```\n"
	doc := mustParseB(b, strings.Repeat(section, 200))

	for _, format := range []render.Format{render.FormatHTML, render.FormatJSON, render.FormatMarkdown} {
		b.Run(format.String(), func(b *testing.B) {
			b.ReportAllocs()
			var buf bytes.Buffer
			for b.Loop() {
				buf.Reset()
				if err := render.Render(&buf, doc, format, render.Options{HTML: render.HTMLOptions{HeadingIDs: true}}); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func mustParseB(b *testing.B, input string) *markdown.Document {
	b.Helper()
	doc, err := markdown.Parse(input)
	if err != nil {
		b.Fatal(err)
	}
	return doc
}

package render_test

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/prose/pkg/markdown"
	"github.com/yaklabco/prose/pkg/render"
)

func mustParse(t *testing.T, input string) *markdown.Document {
	t.Helper()
	doc, err := markdown.Parse(input)
	require.NoError(t, err)
	return doc
}

func renderHTML(t *testing.T, input string, opts render.HTMLOptions) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, render.HTML(&sb, mustParse(t, input), opts))
	return sb.String()
}

func TestHTML_Fragment(t *testing.T) {
	t.Parallel()

	input := "# Hello World\n" +
		"- *a*\n" +
		"- b & c\n" +
		"1. `x<y`\n" +
		"\n" +
		"[go](https://go.dev/?a=1&b=2) ![logo](img.png)\n" +
		"```go\nif a < b {}\n```\n"

	want := `<h1 id="hello-world">Hello World</h1>
<ul>
<li><em>a</em></li>
<li>b &amp; c</li>
</ul>
<ol>
<li><code>x&lt;y</code></li>
</ol>
<p><a href="https://go.dev/?a=1&amp;b=2">go</a> <img src="img.png" alt="logo"></p>
<pre><code class="language-go">if a &lt; b {}
</code></pre>
`

	assert.Equal(t, want, renderHTML(t, input, render.HTMLOptions{HeadingIDs: true}))
}

func TestHTML_Structure(t *testing.T) {
	t.Parallel()

	input := "# Intro\n## Intro\n- **one**\n- two\n2. first\n2. second\n2. third\npara [x](y)\n"
	out := renderHTML(t, input, render.HTMLOptions{HeadingIDs: true, Standalone: true})

	dom, err := goquery.NewDocumentFromReader(strings.NewReader(out))
	require.NoError(t, err)

	assert.Equal(t, "Intro", dom.Find("title").Text())
	assert.Equal(t, 1, dom.Find("h1#intro").Length())
	assert.Equal(t, 1, dom.Find("h2#intro-1").Length())
	assert.Equal(t, 2, dom.Find("ul > li").Length())
	assert.Equal(t, "one", dom.Find("ul > li strong").Text())
	assert.Equal(t, 3, dom.Find("ol > li").Length())
	assert.Equal(t, "y", dom.Find("p a").AttrOr("href", ""))
}

func TestHTML_DangerousURLsAreDropped(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "javascript link",
			input: "[click](javascript:alert`1`)\n",
			want:  `<p><a href="">click</a></p>` + "\n",
		},
		{
			name:  "javascript image",
			input: "![x](javascript:alert`2`)\n",
			want:  `<p><img src="" alt="x"></p>` + "\n",
		},
		{
			name:  "vbscript link",
			input: "[v](vbscript:msgbox)\n",
			want:  `<p><a href="">v</a></p>` + "\n",
		},
		{
			name:  "https kept",
			input: "[go](https://go.dev/doc)\n",
			want:  `<p><a href="https://go.dev/doc">go</a></p>` + "\n",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := renderHTML(t, tc.input, render.HTMLOptions{})
			assert.Equal(t, tc.want, got)
			assert.NotContains(t, got, "script:")
		})
	}
}

func TestHTML_BlankParagraphsProduceNothing(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "<p>a</p>\n<p>b</p>\n", renderHTML(t, "a\n\n\nb\n", render.HTMLOptions{}))
	assert.Equal(t, "", renderHTML(t, "", render.HTMLOptions{}))
}

func TestHTML_DeepHeadingClamps(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "<h6>deep</h6>\n", renderHTML(t, "######### deep\n", render.HTMLOptions{}))
}

func TestHTML_StandaloneTitle(t *testing.T) {
	t.Parallel()

	out := renderHTML(t, "text\n", render.HTMLOptions{Standalone: true, Title: "A & B"})
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>\n"))
	assert.Contains(t, out, "<title>A &amp; B</title>")
	assert.True(t, strings.HasSuffix(out, "</body>\n</html>\n"))
}

func TestHTML_CodeLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		detect bool
		want   string
	}{
		{
			name:  "tag kept",
			input: "```python\nx = 1\n```\n",
			want:  `<pre><code class="language-python">x = 1` + "\n</code></pre>\n",
		},
		{
			name:  "alias normalized",
			input: "```golang\nx := 1\n```\n",
			want:  `<pre><code class="language-go">x := 1` + "\n</code></pre>\n",
		},
		{
			name:  "no tag without detection",
			input: "```\npackage main\n```\n",
			want:  "<pre><code>package main\n</code></pre>\n",
		},
		{
			name:   "no tag with detection",
			input:  "```\npackage main\n```\n",
			detect: true,
			want:   `<pre><code class="language-go">package main` + "\n</code></pre>\n",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := renderHTML(t, tc.input, render.HTMLOptions{DetectLanguage: tc.detect})
			assert.Equal(t, tc.want, got)
		})
	}
}

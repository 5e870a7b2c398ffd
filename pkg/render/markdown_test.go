package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/prose/pkg/markdown"
	"github.com/yaklabco/prose/pkg/render"
)

func TestMarkdown_RoundTrip(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"\n\n",
		"# Title\n\nSome *it* and **bold** with `code`.\n",
		"- a\n- \n- [l](u)\nafter\n",
		"1. one\n2. two\n",
		"####  spaced\n",
		"```go\nfunc main() {}\n\n```\n",
		"![img](src) trailing!\n",
	}

	for _, input := range inputs {
		doc := mustParse(t, input)
		formatted := render.FormatString(doc)

		reparsed, err := markdown.Parse(formatted)
		require.NoError(t, err, "formatted output must parse: %q", formatted)
		assert.Equal(t, doc, reparsed, "round trip of %q", input)
		assert.Equal(t, input, formatted, "canonical input is a fixed point")
	}
}

func TestMarkdown_RenumbersOrderedLists(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, "3. a\n9. b\n9. c\n")
	assert.Equal(t, "1. a\n2. b\n3. c\n", render.FormatString(doc))
}

func FuzzMarkdownRoundTrip(f *testing.F) {
	for _, seed := range []string{"# a\n", "- *x*\n1. y\n", "```\nz\n```\n", "p [a](b)\n"} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		doc, err := markdown.Parse(input)
		if err != nil {
			return
		}
		reparsed, err := markdown.Parse(render.FormatString(doc))
		if err != nil {
			t.Fatalf("formatted output does not parse: %v", err)
		}
		assert.Equal(t, doc, reparsed)
	})
}

package pretty_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/prose/internal/ui/pretty"
	"github.com/yaklabco/prose/pkg/markdown"
)

func TestFormatParseError(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	perr := &markdown.ParseError{Rule: markdown.RuleItalicClose, Line: 2, Column: 16}

	t.Run("with source", func(t *testing.T) {
		t.Parallel()

		got := styles.FormatParseError("doc.md", perr, "an *open italic")
		want := "doc.md:2:16  error  " + string(markdown.RuleItalicClose) + "\n" +
			"    an *open italic\n" +
			"                   ^\n"
		assert.Equal(t, want, got)
	})

	t.Run("without source", func(t *testing.T) {
		t.Parallel()

		got := styles.FormatParseError("<stdin>", perr, "")
		assert.Equal(t, "<stdin>:2:16  error  "+string(markdown.RuleItalicClose)+"\n", got)
	})
}

func TestFormatSourceContext(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	tests := []struct {
		name   string
		line   string
		column int
		want   string
	}{
		{"first column", "*x", 1, "    *x\n    ^\n"},
		{"expands tabs", "\t*x", 2, "        *x\n        ^\n"},
		{"wide runes", "日本*", 3, "    日本*\n        ^\n"},
		{"past end", "ab", 4, "    ab\n       ^\n"},
		{"no caret", "ab", 0, "    ab\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, styles.FormatSourceContext(tt.line, tt.column))
		})
	}
}

func TestFormatWarningAndError(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	assert.Equal(t, "warning  unused key\n", styles.FormatWarning("unused key"))
	assert.Equal(t, "a.md  error  boom\n", styles.FormatError("a.md", errors.New("boom")))
	assert.Equal(t, "error  boom\n", styles.FormatError("", errors.New("boom")))
}

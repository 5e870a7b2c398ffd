package configloader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/prose/pkg/config"
)

func TestMerge(t *testing.T) {
	t.Parallel()

	t.Run("nil sides", func(t *testing.T) {
		t.Parallel()
		c := config.NewConfig()
		assert.Same(t, c, merge(nil, c))
		assert.Same(t, c, merge(c, nil))
	})

	t.Run("unset override keeps base", func(t *testing.T) {
		t.Parallel()
		base := config.NewConfig()
		got := merge(base, &config.Config{})
		assert.Equal(t, base, got)
		assert.NotSame(t, base, got)
	})

	t.Run("explicit false wins", func(t *testing.T) {
		t.Parallel()
		got := merge(config.NewConfig(), &config.Config{EnsureNewline: config.Bool(false)})
		assert.False(t, got.WantEnsureNewline())
	})

	t.Run("slices replace", func(t *testing.T) {
		t.Parallel()
		base := &config.Config{Ignore: []string{"a"}, Extensions: []string{".md"}}
		got := merge(base, &config.Config{Ignore: []string{"b", "c"}})
		assert.Equal(t, []string{"b", "c"}, got.Ignore)
		assert.Equal(t, []string{".md"}, got.Extensions)
	})

	t.Run("does not alias base", func(t *testing.T) {
		t.Parallel()
		base := config.NewConfig()
		got := merge(base, &config.Config{HeadingIDs: config.Bool(false)})
		require.NotNil(t, base.HeadingIDs)
		assert.True(t, *base.HeadingIDs)
		assert.False(t, *got.HeadingIDs)
	})
}

func TestMergeAll(t *testing.T) {
	t.Parallel()

	assert.Nil(t, MergeAll())

	got := MergeAll(
		config.NewConfig(),
		&config.Config{Format: config.FormatJSON, Terminal: config.TerminalConfig{Width: 60}},
		&config.Config{Format: config.FormatMarkdown},
	)
	assert.Equal(t, config.FormatMarkdown, got.Format)
	assert.Equal(t, 60, got.Terminal.Width)
	assert.Equal(t, "auto", got.Terminal.Style)
}

func TestEnvHelpers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "PROSE_OUTPUT_DIR", GetEnvVarName("output_dir"))
	assert.Empty(t, GetEnvVarName("nope"))
	assert.Contains(t, ListEnvVars(), "PROSE_TERMINAL_WIDTH")
	names := EnvVarNames()
	assert.Len(t, names, len(ListEnvVars()))
	assert.IsIncreasing(t, names)
	assert.Equal(t, []string{"a", "b"}, parseSliceValue(" a, ,b "))
	assert.Nil(t, parseSliceValue(""))
}

func TestValidate(t *testing.T) {
	t.Parallel()

	assert.True(t, Validate(nil).Valid())
	assert.True(t, Validate(config.NewConfig()).Valid())

	res := ValidateWithFile(&config.Config{Jobs: -1, Color: "sometimes"}, "x.yml")
	require.Len(t, res.Errors, 2)
	assert.Equal(t, "x.yml: jobs: jobs must be >= 0 (0 means auto)", res.Errors[0].Error())
	assert.Len(t, res.AllMessages(), 2)
	assert.False(t, res.HasWarnings())
}

package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/prose/pkg/config"
)

func TestConfigClone(t *testing.T) {
	t.Parallel()

	t.Run("nil config returns nil", func(t *testing.T) {
		t.Parallel()
		var c *config.Config
		assert.Nil(t, c.Clone())
	})

	t.Run("empty config", func(t *testing.T) {
		t.Parallel()
		c := &config.Config{}
		clone := c.Clone()
		require.NotNil(t, clone)
		assert.NotSame(t, c, clone)
	})

	t.Run("deep copies pointers and slices", func(t *testing.T) {
		t.Parallel()
		original := config.NewConfig()
		original.Ignore = []string{"vendor/**"}
		original.Jobs = 3

		clone := original.Clone()
		require.NotNil(t, clone)
		assert.Equal(t, original, clone)

		*clone.HeadingIDs = false
		clone.Ignore[0] = "changed"
		clone.Extensions = append(clone.Extensions, ".mdx")

		assert.True(t, *original.HeadingIDs)
		assert.Equal(t, "vendor/**", original.Ignore[0])
		assert.Len(t, original.Extensions, 2)
		assert.Equal(t, 3, clone.Jobs)
	})
}

func TestYAMLRoundTrip(t *testing.T) {
	t.Parallel()

	original := config.NewConfig()
	original.OutputDir = "site"
	original.Ignore = []string{"drafts/**"}
	original.Terminal.Width = 72
	original.Jobs = 4 // CLI-only, not serialized

	data, err := original.ToYAML()
	require.NoError(t, err)
	assert.Contains(t, string(data), "output_dir: site")
	assert.NotContains(t, string(data), "jobs")

	parsed, err := config.FromYAML(data)
	require.NoError(t, err)
	assert.Equal(t, original.Format, parsed.Format)
	assert.Equal(t, original.OutputDir, parsed.OutputDir)
	assert.Equal(t, original.Ignore, parsed.Ignore)
	assert.Equal(t, 72, parsed.Terminal.Width)
	assert.True(t, parsed.WantHeadingIDs())
	assert.Equal(t, 0, parsed.Jobs)
}

func TestFromYAML(t *testing.T) {
	t.Parallel()

	t.Run("explicit false survives", func(t *testing.T) {
		t.Parallel()
		cfg, err := config.FromYAML([]byte("heading_ids: false\n"))
		require.NoError(t, err)
		require.NotNil(t, cfg.HeadingIDs)
		assert.False(t, cfg.WantHeadingIDs())
		assert.Nil(t, cfg.Standalone)
	})

	t.Run("empty document", func(t *testing.T) {
		t.Parallel()
		cfg, err := config.FromYAML([]byte("  \n"))
		require.NoError(t, err)
		assert.Equal(t, &config.Config{}, cfg)
	})

	t.Run("unknown key", func(t *testing.T) {
		t.Parallel()
		_, err := config.FromYAML([]byte("flavour: gfm\n"))
		assert.Error(t, err)
	})

	t.Run("malformed", func(t *testing.T) {
		t.Parallel()
		_, err := config.FromYAML([]byte("format: [html\n"))
		assert.Error(t, err)
	})
}

func TestTemplate(t *testing.T) {
	t.Parallel()

	data, err := config.Template()
	require.NoError(t, err)
	assert.Contains(t, string(data), "# prose configuration")

	cfg, err := config.FromYAML(data)
	require.NoError(t, err)
	assert.Equal(t, config.FormatHTML, cfg.Format)
	assert.True(t, cfg.WantEnsureNewline())
}

func TestEnabled(t *testing.T) {
	t.Parallel()

	assert.True(t, config.Enabled(nil, true))
	assert.False(t, config.Enabled(config.Bool(false), true))
	assert.True(t, config.OutputFormat("json").IsValid())
	assert.False(t, config.OutputFormat("pdf").IsValid())
}

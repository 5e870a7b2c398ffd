package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/prose/pkg/runner"
)

// makeTree creates files (relative paths) under a new temp dir.
func makeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

func rels(t *testing.T, dir string, files []string) []string {
	t.Helper()
	out := make([]string, 0, len(files))
	for _, f := range files {
		rel, err := filepath.Rel(dir, f)
		require.NoError(t, err)
		out = append(out, filepath.ToSlash(rel))
	}
	return out
}

func TestDiscover(t *testing.T) {
	t.Parallel()

	tree := map[string]string{
		"README.md":           "# r\n",
		"docs/guide.md":       "g\n",
		"docs/api.markdown":   "a\n",
		"docs/drafts/wip.md":  "w\n",
		"vendor/lib/notes.md": "v\n",
		"src/main.go":         "package main\n",
		".hidden/secret.md":   "s\n",
		"docs/.scratch.md":    "s\n",
		"site/README.html":    "<p></p>\n",
		"site/generated.md":   "x\n",
		"notes.txt":           "n\n",
		"docs/UPPER.MD":       "u\n",
	}

	tests := []struct {
		name string
		opts runner.Options
		want []string
	}{
		{
			name: "walks directory",
			opts: runner.Options{},
			want: []string{
				"README.md", "docs/UPPER.MD", "docs/api.markdown", "docs/drafts/wip.md",
				"docs/guide.md", "site/generated.md", "vendor/lib/notes.md",
			},
		},
		{
			name: "exclude globs",
			opts: runner.Options{ExcludeGlobs: []string{"**/vendor", "docs/drafts/**", "*.markdown"}},
			want: []string{"README.md", "docs/UPPER.MD", "docs/guide.md", "site/generated.md"},
		},
		{
			name: "custom extensions",
			opts: runner.Options{Extensions: []string{".markdown"}},
			want: []string{"docs/api.markdown"},
		},
		{
			name: "skips output dir",
			opts: runner.Options{OutputDir: "site", Paths: []string{"site", "README.md"}},
			want: []string{"README.md"},
		},
		{
			name: "explicit hidden file and dedupe",
			opts: runner.Options{Paths: []string{"docs/.scratch.md", "docs", "docs/guide.md"}},
			want: []string{
				"docs/.scratch.md", "docs/UPPER.MD", "docs/api.markdown",
				"docs/drafts/wip.md", "docs/guide.md",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := makeTree(t, tree)
			opts := tt.opts
			opts.WorkingDir = dir

			files, err := runner.Discover(context.Background(), opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, rels(t, dir, files))
		})
	}
}

func TestDiscover_Errors(t *testing.T) {
	t.Parallel()

	t.Run("missing path", func(t *testing.T) {
		t.Parallel()
		_, err := runner.Discover(context.Background(), runner.Options{
			WorkingDir: t.TempDir(),
			Paths:      []string{"nope.md"},
		})
		require.Error(t, err)
	})

	t.Run("bad ignore pattern", func(t *testing.T) {
		t.Parallel()
		_, err := runner.Discover(context.Background(), runner.Options{
			WorkingDir:   t.TempDir(),
			ExcludeGlobs: []string{"[unclosed"},
		})
		require.Error(t, err)
	})

	t.Run("cancelled", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := runner.Discover(ctx, runner.Options{WorkingDir: t.TempDir()})
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestDiscover_DirectorySymlinks(t *testing.T) {
	t.Parallel()

	dir := makeTree(t, map[string]string{"real/inner.md": "i\n", "top.md": "t\n"})
	outside := makeTree(t, map[string]string{"linked.md": "l\n"})
	if err := os.Symlink(outside, filepath.Join(dir, "link")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	files, err := runner.Discover(context.Background(), runner.Options{WorkingDir: dir})
	require.NoError(t, err)
	assert.Equal(t, []string{"real/inner.md", "top.md"}, rels(t, dir, files))

	files, err = runner.Discover(context.Background(), runner.Options{WorkingDir: dir, FollowSymlinks: true})
	require.NoError(t, err)
	assert.Len(t, files, 3)
}

package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/prose/pkg/fsutil"
)

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	t.Run("writes new file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "page.html")
		require.NoError(t, fsutil.WriteAtomic(context.Background(), path, []byte("<p>hi</p>\n"), 0))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "<p>hi</p>\n", string(got))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, fsutil.DefaultFileMode, info.Mode().Perm())
	})

	t.Run("creates parent directories", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "site", "docs", "index.html")
		require.NoError(t, fsutil.WriteAtomic(context.Background(), path, []byte("x"), 0o600))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	})

	t.Run("overwrites and leaves no temp files", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "out.md")
		require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

		require.NoError(t, fsutil.WriteAtomic(context.Background(), path, []byte("new"), 0o644))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "new", string(got))
	})

	t.Run("respects cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		path := filepath.Join(t.TempDir(), "never.txt")
		require.ErrorIs(t, fsutil.WriteAtomic(ctx, path, []byte("x"), 0), context.Canceled)
		assert.NoFileExists(t, path)
	})
}

func TestWriteAtomicIfChanged(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "doc.json")

	written, err := fsutil.WriteAtomicIfChanged(ctx, path, []byte(`{"blocks":[]}`), 0)
	require.NoError(t, err)
	assert.True(t, written, "missing file should be written")

	written, err = fsutil.WriteAtomicIfChanged(ctx, path, []byte(`{"blocks":[]}`), 0)
	require.NoError(t, err)
	assert.False(t, written, "identical content should be skipped")

	written, err = fsutil.WriteAtomicIfChanged(ctx, path, []byte(`{"blocks":[{}]}`), 0)
	require.NoError(t, err)
	assert.True(t, written)
}

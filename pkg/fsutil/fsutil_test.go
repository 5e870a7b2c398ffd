package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/prose/pkg/fsutil"
)

func writeSource(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.md")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o640))
	return path
}

func TestReadFile(t *testing.T) {
	t.Parallel()

	t.Run("content and metadata", func(t *testing.T) {
		t.Parallel()

		path := writeSource(t, "# Title\n")
		got, info, err := fsutil.ReadFile(context.Background(), path)
		require.NoError(t, err)

		assert.Equal(t, "# Title\n", string(got))
		assert.Equal(t, path, info.Path)
		assert.Equal(t, int64(8), info.Size)
		assert.Equal(t, os.FileMode(0o640), info.Mode.Perm())
		assert.NotEqual(t, [32]byte{}, info.Hash)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		_, _, err := fsutil.ReadFile(context.Background(), filepath.Join(t.TempDir(), "missing.md"))
		require.ErrorIs(t, err, fsutil.ErrNotFound)
	})

	t.Run("directory", func(t *testing.T) {
		t.Parallel()

		_, _, err := fsutil.ReadFile(context.Background(), t.TempDir())
		require.ErrorIs(t, err, fsutil.ErrIsDirectory)
	})
}

func TestCheckModified(t *testing.T) {
	t.Parallel()

	t.Run("nil info", func(t *testing.T) {
		t.Parallel()
		_, err := fsutil.CheckModified(context.Background(), nil)
		require.ErrorIs(t, err, fsutil.ErrNilFileInfo)
	})

	t.Run("unchanged", func(t *testing.T) {
		t.Parallel()

		path := writeSource(t, "text\n")
		_, info, err := fsutil.ReadFile(context.Background(), path)
		require.NoError(t, err)

		modified, err := fsutil.CheckModified(context.Background(), info)
		require.NoError(t, err)
		assert.False(t, modified)
	})

	t.Run("rewritten", func(t *testing.T) {
		t.Parallel()

		path := writeSource(t, "text\n")
		_, info, err := fsutil.ReadFile(context.Background(), path)
		require.NoError(t, err)

		require.NoError(t, os.WriteFile(path, []byte("other text\n"), 0o640))
		modified, err := fsutil.CheckModified(context.Background(), info)
		require.NoError(t, err)
		assert.True(t, modified)
	})

	t.Run("same size different content", func(t *testing.T) {
		t.Parallel()

		path := writeSource(t, "aaaa\n")
		_, info, err := fsutil.ReadFile(context.Background(), path)
		require.NoError(t, err)

		require.NoError(t, os.WriteFile(path, []byte("bbbb\n"), 0o640))
		require.NoError(t, os.Chtimes(path, info.ModTime, info.ModTime))

		modified, err := fsutil.CheckModified(context.Background(), info)
		require.NoError(t, err)
		assert.True(t, modified)
	})

	t.Run("deleted", func(t *testing.T) {
		t.Parallel()

		path := writeSource(t, "text\n")
		_, info, err := fsutil.ReadFile(context.Background(), path)
		require.NoError(t, err)
		require.NoError(t, os.Remove(path))

		modified, err := fsutil.CheckModified(context.Background(), info)
		require.NoError(t, err)
		assert.True(t, modified)
	})
}

func TestReplaceFile(t *testing.T) {
	t.Parallel()

	t.Run("rewrites keeping mode", func(t *testing.T) {
		t.Parallel()

		path := writeSource(t, "1. a\n3. b\n")
		_, info, err := fsutil.ReadFile(context.Background(), path)
		require.NoError(t, err)

		written, err := fsutil.ReplaceFile(context.Background(), info, []byte("1. a\n2. b\n"))
		require.NoError(t, err)
		assert.True(t, written)

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "1. a\n2. b\n", string(got))

		stat, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o640), stat.Mode().Perm())
	})

	t.Run("refuses when changed underneath", func(t *testing.T) {
		t.Parallel()

		path := writeSource(t, "before\n")
		_, info, err := fsutil.ReadFile(context.Background(), path)
		require.NoError(t, err)

		later := info.ModTime.Add(time.Second)
		require.NoError(t, os.WriteFile(path, []byte("edited elsewhere\n"), 0o640))
		require.NoError(t, os.Chtimes(path, later, later))

		_, err = fsutil.ReplaceFile(context.Background(), info, []byte("formatted\n"))
		require.ErrorIs(t, err, fsutil.ErrModified)

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "edited elsewhere\n", string(got))
	})
}

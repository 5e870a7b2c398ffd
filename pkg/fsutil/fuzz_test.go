package fsutil_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/yaklabco/prose/pkg/fsutil"
)

func FuzzWriteReadReplace(f *testing.F) {
	f.Add([]byte(""), []byte("# Title\n"))
	f.Add([]byte("para\n"), []byte("para\n"))
	f.Add([]byte("\x00\x01"), make([]byte, 1024))

	f.Fuzz(func(t *testing.T, first, second []byte) {
		ctx := context.Background()
		path := filepath.Join(t.TempDir(), "doc.md")

		if err := fsutil.WriteAtomic(ctx, path, first, 0); err != nil {
			t.Fatalf("WriteAtomic: %v", err)
		}

		got, info, err := fsutil.ReadFile(ctx, path)
		if err != nil {
			t.Fatalf("ReadFile: %v", err)
		}
		if !bytes.Equal(got, first) {
			t.Fatalf("read back %q, want %q", got, first)
		}

		written, err := fsutil.ReplaceFile(ctx, info, second)
		if err != nil {
			t.Fatalf("ReplaceFile: %v", err)
		}
		if written == bytes.Equal(first, second) {
			t.Errorf("written = %v for first=%q second=%q", written, first, second)
		}

		got, _, err = fsutil.ReadFile(ctx, path)
		if err != nil {
			t.Fatalf("ReadFile: %v", err)
		}
		if !bytes.Equal(got, second) {
			t.Errorf("after replace got %q, want %q", got, second)
		}
	})
}

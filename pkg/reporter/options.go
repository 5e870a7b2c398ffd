package reporter

import (
	"io"
	"os"
	"path/filepath"
	"strings"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for output. Defaults to os.Stdout.
	Writer io.Writer

	Format Format

	// Color controls colorized output: "auto" (default), "always", "never".
	Color string

	// ShowContext prints the offending source line under each parse failure.
	ShowContext bool

	// ShowSummary appends aggregate statistics.
	ShowSummary bool

	// Compact disables indentation in JSON and SARIF output.
	Compact bool

	// WorkingDir is the directory paths are shown relative to. Empty keeps
	// paths as they are.
	WorkingDir string

	// ToolVersion is reported as the driver version in SARIF output.
	ToolVersion string
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer:      os.Stdout,
		Format:      FormatText,
		Color:       "auto",
		ShowContext: true,
		ShowSummary: true,
	}
}

// DisplayPath shortens path to be relative to workDir when it lies inside it.
func DisplayPath(workDir, path string) string {
	if workDir == "" || !filepath.IsAbs(path) {
		return path
	}
	rel, err := filepath.Rel(workDir, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return rel
}

package runner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gobwas/glob"
)

// Discover finds Markdown files matching opts. It returns a sorted,
// deduplicated list of absolute file paths. Explicitly named files are
// kept even when hidden; directories are walked skipping hidden entries,
// ignored paths, and the output directory.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	m, err := newMatcher(workDir, opts)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var files []string
	add := func(path string) {
		if _, ok := seen[path]; !ok {
			seen[path] = struct{}{}
			files = append(files, path)
		}
	}

	for _, inputPath := range opts.effectivePaths() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("discovery cancelled: %w", err)
		}

		absPath := inputPath
		if !filepath.IsAbs(absPath) {
			absPath = filepath.Join(workDir, absPath)
		}
		absPath = filepath.Clean(absPath)

		info, err := os.Stat(absPath)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", inputPath, err)
		}

		if !info.IsDir() {
			if m.file(absPath) {
				add(absPath)
			}
			continue
		}

		found, err := m.walk(ctx, absPath, opts.FollowSymlinks)
		if err != nil {
			return nil, err
		}
		for _, f := range found {
			add(f)
		}
	}

	slices.Sort(files)
	return files, nil
}

func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	absPath, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	return absPath, nil
}

// matcher decides which paths discovery keeps.
type matcher struct {
	workDir    string
	outputDir  string
	extensions []string
	excludes   []glob.Glob
}

func newMatcher(workDir string, opts Options) (*matcher, error) {
	m := &matcher{workDir: workDir}

	for _, ext := range opts.effectiveExtensions() {
		m.extensions = append(m.extensions, strings.ToLower(ext))
	}

	for _, pattern := range opts.ExcludeGlobs {
		g, err := compileGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("ignore pattern %q: %w", pattern, err)
		}
		m.excludes = append(m.excludes, g...)
	}

	if opts.OutputDir != "" {
		out := opts.OutputDir
		if !filepath.IsAbs(out) {
			out = filepath.Join(workDir, out)
		}
		m.outputDir = filepath.Clean(out)
	}

	return m, nil
}

// compileGlob compiles pattern with "/" as the separator. A leading "**/"
// also matches at the top level, so "**/vendor" excludes "vendor".
func compileGlob(pattern string) ([]glob.Glob, error) {
	pattern = filepath.ToSlash(pattern)

	g, err := glob.Compile(pattern, '/')
	if err != nil {
		return nil, err
	}
	globs := []glob.Glob{g}

	if rest, ok := strings.CutPrefix(pattern, "**/"); ok && rest != "" {
		top, err := glob.Compile(rest, '/')
		if err != nil {
			return nil, err
		}
		globs = append(globs, top)
	}

	return globs, nil
}

func (m *matcher) rel(path string) string {
	rel, err := filepath.Rel(m.workDir, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

// excluded matches the workDir-relative path and, for patterns without a
// separator, the base name.
func (m *matcher) excluded(path string) bool {
	rel := m.rel(path)
	base := filepath.Base(path)
	for _, g := range m.excludes {
		if g.Match(rel) || g.Match(base) {
			return true
		}
	}
	return false
}

func (m *matcher) file(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return slices.Contains(m.extensions, ext) && !m.excluded(path)
}

func (m *matcher) skipDir(path, root string) bool {
	if m.outputDir != "" && path == m.outputDir {
		return true
	}
	if path == root {
		return false
	}
	return strings.HasPrefix(filepath.Base(path), ".") || m.excluded(path)
}

func (m *matcher) walk(ctx context.Context, root string, followSymlinks bool) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		if walkErr != nil {
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}

		if entry.IsDir() {
			if m.skipDir(path, root) {
				return filepath.SkipDir
			}
			return nil
		}

		if strings.HasPrefix(entry.Name(), ".") {
			return nil
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			target, err := os.Stat(path)
			if err != nil {
				return nil //nolint:nilerr // Broken symlinks are skipped.
			}
			if target.IsDir() {
				if !followSymlinks || m.skipDir(path, root) {
					return nil
				}
				real, err := filepath.EvalSymlinks(path)
				if err != nil {
					return nil //nolint:nilerr // Unresolvable symlinks are skipped.
				}
				sub, err := m.walk(ctx, real, followSymlinks)
				if err != nil {
					return err
				}
				files = append(files, sub...)
				return nil
			}
		}

		if m.file(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk directory %s: %w", root, err)
	}

	return files, nil
}

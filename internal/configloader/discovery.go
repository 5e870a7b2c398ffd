package configloader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

const appName = "prose"

// ConfigPaths are the config files found for one working directory. Empty
// means not found.
type ConfigPaths struct {
	System   string
	User     string
	Project  string
	Explicit string
}

// ProjectConfigFiles are tried in order in each directory of the upward
// search.
//
//nolint:gochecknoglobals // Read-only lookup table.
var ProjectConfigFiles = []string{".prose.yml", ".prose.yaml", "prose.yml", "prose.yaml"}

//nolint:gochecknoglobals // Read-only lookup table.
var vcsRootMarkers = []string{".git", ".hg", ".svn"}

// DiscoverPaths locates the system, user, and project config files for
// workDir. Missing files are not errors.
func DiscoverPaths(ctx context.Context, workDir string) (*ConfigPaths, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context cancelled: %w", err)
	}

	project, err := FindProjectConfig(ctx, workDir)
	if err != nil {
		return nil, err
	}

	paths := &ConfigPaths{
		System:  firstFile(systemConfigDir(), "config.yaml", "config.yml"),
		Project: project,
	}
	if dir, err := UserConfigDir(); err == nil {
		paths.User = firstFile(dir, "config.yaml", "config.yml")
	}
	return paths, nil
}

func systemConfigDir() string {
	if runtime.GOOS == "windows" {
		root := os.Getenv("ProgramData")
		if root == "" {
			root = `C:\ProgramData`
		}
		return filepath.Join(root, appName)
	}
	return filepath.Join("/etc", appName)
}

// UserConfigDir is $XDG_CONFIG_HOME/prose, falling back to ~/.config/prose.
func UserConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(home, ".config", appName), nil
}

// FindProjectConfig walks up from startDir (the working directory when
// empty) and returns the first project config file. The walk stops after
// a VCS root, the home directory, or the filesystem root.
func FindProjectConfig(ctx context.Context, startDir string) (string, error) {
	if startDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		startDir = wd
	}

	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	home, _ := os.UserHomeDir()

	for {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("context cancelled: %w", err)
		}
		if found := firstFile(dir, ProjectConfigFiles...); found != "" {
			return found, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir || dir == home || hasVCSRoot(dir) {
			return "", nil
		}
		dir = parent
	}
}

func hasVCSRoot(dir string) bool {
	for _, marker := range vcsRootMarkers {
		if info, err := os.Stat(filepath.Join(dir, marker)); err == nil && info.IsDir() {
			return true
		}
	}
	return false
}

// firstFile returns the first of names that is a regular file in dir.
func firstFile(dir string, names ...string) string {
	for _, name := range names {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

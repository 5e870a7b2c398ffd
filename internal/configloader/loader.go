// Package configloader resolves the effective prose configuration from
// config files, PROSE_* environment variables, and command-line flags.
package configloader

import (
	"context"
	"fmt"
	"os"
	"slices"

	"github.com/yaklabco/prose/pkg/config"
)

// LoadOptions controls which layers Load consults.
type LoadOptions struct {
	// WorkingDir starts the project config search. Defaults to the
	// current directory.
	WorkingDir string

	// ExplicitPath comes from --config.
	ExplicitPath string

	IgnoreSystemConfig  bool
	IgnoreUserConfig    bool
	IgnoreProjectConfig bool
	IgnoreEnv           bool

	// LookupEnv defaults to os.LookupEnv.
	LookupEnv func(string) (string, bool)

	// CLIConfig holds flag values and overrides every other layer.
	CLIConfig *config.Config
}

// LoadResult is the merged configuration and where it came from.
type LoadResult struct {
	Config *config.Config
	Paths  *ConfigPaths

	// LoadedFrom lists the files merged, lowest precedence first.
	LoadedFrom []string

	Warnings []string

	warned []string
}

// Load merges, from lowest to highest precedence: defaults, the system
// config, the user config, the project config, the --config file, PROSE_*
// variables, and CLIConfig. The first validation error is returned as a
// *ValidationError.
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	workDir := opts.WorkingDir
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
		workDir = wd
	}

	paths, err := DiscoverPaths(ctx, workDir)
	if err != nil {
		return nil, fmt.Errorf("discover paths: %w", err)
	}
	paths.Explicit = opts.ExplicitPath

	result := &LoadResult{Paths: paths}
	cfg := config.NewConfig()

	files := []struct {
		layer string
		path  string
		skip  bool
	}{
		{"system", paths.System, opts.IgnoreSystemConfig},
		{"user", paths.User, opts.IgnoreUserConfig},
		{"project", paths.Project, opts.IgnoreProjectConfig},
		{"explicit", paths.Explicit, false},
	}
	for _, f := range files {
		if f.skip || f.path == "" {
			continue
		}
		fileCfg, err := loadConfigFile(f.path)
		if err != nil {
			return nil, fmt.Errorf("load %s config: %w", f.layer, err)
		}
		if err := result.absorb(ValidateWithFile(fileCfg, f.path)); err != nil {
			return nil, err
		}
		cfg = merge(cfg, fileCfg)
		result.LoadedFrom = append(result.LoadedFrom, f.path)
	}

	if !opts.IgnoreEnv {
		lookup := opts.LookupEnv
		if lookup == nil {
			lookup = os.LookupEnv
		}
		if err := LoadFromEnv(cfg, lookup); err != nil {
			return nil, fmt.Errorf("load environment: %w", err)
		}
	}

	cfg = merge(cfg, opts.CLIConfig)
	if err := result.absorb(Validate(cfg)); err != nil {
		return nil, err
	}

	result.Config = cfg
	return result, nil
}

// absorb records warnings and returns the first error, if any.
func (r *LoadResult) absorb(v *ValidationResult) error {
	if !v.Valid() {
		return &v.Errors[0]
	}
	// The final pass revalidates values already reported per file.
	for _, w := range v.Warnings {
		key := w.Field + "\x00" + w.Message
		if slices.Contains(r.warned, key) {
			continue
		}
		r.warned = append(r.warned, key)
		r.Warnings = append(r.Warnings, w.Error())
	}
	return nil
}

func loadConfigFile(path string) (*config.Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	cfg, err := config.FromYAML(content)
	if err != nil {
		return nil, &ValidationError{FilePath: path, Message: err.Error()}
	}
	return cfg, nil
}

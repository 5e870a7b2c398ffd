package configloader

import (
	"slices"

	"github.com/yaklabco/prose/pkg/config"
)

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Scalar values: override overwrites base if override is non-zero
//   - Booleans: override overwrites base if override is non-nil
//   - Slices: override replaces base entirely if override is non-nil
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := base.Clone()

	if override.Format != "" {
		result.Format = override.Format
	}
	if override.OutputDir != "" {
		result.OutputDir = override.OutputDir
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}
	if override.Color != "" {
		result.Color = override.Color
	}
	if override.Terminal.Width != 0 {
		result.Terminal.Width = override.Terminal.Width
	}
	if override.Terminal.Style != "" {
		result.Terminal.Style = override.Terminal.Style
	}

	mergeBool(&result.HeadingIDs, override.HeadingIDs)
	mergeBool(&result.DetectLanguage, override.DetectLanguage)
	mergeBool(&result.Standalone, override.Standalone)
	mergeBool(&result.EnsureNewline, override.EnsureNewline)

	if override.Extensions != nil {
		result.Extensions = slices.Clone(override.Extensions)
	}
	if override.Ignore != nil {
		result.Ignore = slices.Clone(override.Ignore)
	}

	return result
}

func mergeBool(dst **bool, override *bool) {
	if override != nil {
		*dst = config.Bool(*override)
	}
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}

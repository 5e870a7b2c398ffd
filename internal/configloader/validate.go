package configloader

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"

	"github.com/yaklabco/prose/pkg/config"
)

// ValidationError is one problem found in a configuration.
type ValidationError struct {
	// Field is the offending key, e.g. "terminal.width" or "ignore[2]".
	Field string

	Message string

	// FilePath is the config file the value came from, when known.
	FilePath string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, 3)
	for _, s := range []string{e.FilePath, e.Field, e.Message} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ": ")
}

// ValidationResult holds every finding. Errors stop loading; warnings are
// logged.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError
}

func (r *ValidationResult) Valid() bool { return len(r.Errors) == 0 }

func (r *ValidationResult) HasWarnings() bool { return len(r.Warnings) > 0 }

// AllMessages returns errors then warnings, each prefixed with its severity.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

func (r *ValidationResult) fail(field, format string, args ...any) {
	r.Errors = append(r.Errors, ValidationError{Field: field, Message: fmt.Sprintf(format, args...)})
}

func (r *ValidationResult) warn(field, format string, args ...any) {
	r.Warnings = append(r.Warnings, ValidationError{Field: field, Message: fmt.Sprintf(format, args...)})
}

// Validate checks cfg. A nil config is valid.
func Validate(cfg *config.Config) *ValidationResult {
	r := &ValidationResult{}
	if cfg == nil {
		return r
	}

	if cfg.Format != "" && !cfg.Format.IsValid() {
		r.fail("format", "invalid format %q; must be one of: html, json, markdown, terminal", cfg.Format)
	}
	if cfg.Jobs < 0 {
		r.fail("jobs", "jobs must be >= 0 (0 means auto)")
	}
	if cfg.Terminal.Width < 0 {
		r.fail("terminal.width", "width must be >= 0 (0 means terminal width)")
	}
	switch cfg.Color {
	case "", config.ColorAuto, config.ColorAlways, config.ColorNever:
	default:
		r.fail("color", "invalid color mode %q; must be one of: auto, always, never", cfg.Color)
	}

	for i, ext := range cfg.Extensions {
		if !strings.HasPrefix(ext, ".") {
			r.warn(fmt.Sprintf("extensions[%d]", i), "extension %q does not start with a dot and will never match", ext)
		}
	}

	// Same compiler and separator the runner matches with.
	for i, pattern := range cfg.Ignore {
		if _, err := glob.Compile(pattern, '/'); err != nil {
			r.fail(fmt.Sprintf("ignore[%d]", i), "invalid glob pattern: %v", err)
		}
	}

	return r
}

// ValidateWithFile is Validate with every finding attributed to filePath.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	r := Validate(cfg)
	for i := range r.Errors {
		r.Errors[i].FilePath = filePath
	}
	for i := range r.Warnings {
		r.Warnings[i].FilePath = filePath
	}
	return r
}

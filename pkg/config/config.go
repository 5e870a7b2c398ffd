// Package config defines core configuration types for prose.
// These types are pure data structures; loading and merging live in
// internal/configloader.
package config

// OutputFormat specifies what a rendered document is written as.
type OutputFormat string

const (
	FormatHTML     OutputFormat = "html"
	FormatJSON     OutputFormat = "json"
	FormatMarkdown OutputFormat = "markdown"
	FormatTerminal OutputFormat = "terminal"
)

// IsValid returns true if the format is known.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatHTML, FormatJSON, FormatMarkdown, FormatTerminal:
		return true
	default:
		return false
	}
}

// ColorMode controls colored CLI output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// TerminalConfig controls terminal preview output.
type TerminalConfig struct {
	// Width is the word-wrap column. 0 means the terminal width.
	Width int `yaml:"width,omitempty"`

	// Style is a glamour style name, or "auto".
	Style string `yaml:"style,omitempty"`
}

// Config is the root configuration structure for prose.
//
// Booleans are pointers so that a config layer can explicitly turn off
// something a lower layer turned on.
type Config struct {
	// Format is the default output format for render.
	Format OutputFormat `yaml:"format,omitempty"`

	// HeadingIDs adds anchor ids to rendered HTML headings.
	HeadingIDs *bool `yaml:"heading_ids,omitempty"`

	// DetectLanguage guesses languages for untagged code fences.
	DetectLanguage *bool `yaml:"detect_language,omitempty"`

	// Standalone renders full HTML pages instead of fragments.
	Standalone *bool `yaml:"standalone,omitempty"`

	// EnsureNewline normalizes line endings and appends a missing final
	// newline before parsing. With it off, such input fails to parse.
	EnsureNewline *bool `yaml:"ensure_newline,omitempty"`

	// OutputDir receives one output file per input. Empty writes to stdout.
	OutputDir string `yaml:"output_dir,omitempty"`

	// Extensions lists the file extensions treated as Markdown.
	Extensions []string `yaml:"extensions,omitempty"`

	// Ignore contains glob patterns for files to skip.
	Ignore []string `yaml:"ignore,omitempty"`

	// Terminal configures the preview command.
	Terminal TerminalConfig `yaml:"terminal,omitempty"`

	// CLI-level options (not persisted to config files).

	// Jobs specifies the number of parallel workers.
	Jobs int `yaml:"-"`

	// Color controls colored diagnostics.
	Color ColorMode `yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Format:         FormatHTML,
		HeadingIDs:     Bool(true),
		DetectLanguage: Bool(false),
		Standalone:     Bool(false),
		EnsureNewline:  Bool(true),
		Extensions:     DefaultExtensions(),
		Terminal: TerminalConfig{
			Style: "auto",
		},
		Color: ColorAuto,
		Jobs:  0, // 0 means use runtime.NumCPU
	}
}

// DefaultExtensions returns the default set of Markdown file extensions.
func DefaultExtensions() []string {
	return []string{".md", ".markdown"}
}

// Bool returns a pointer to b.
func Bool(b bool) *bool {
	return &b
}

// Enabled dereferences p, returning def when p is nil.
func Enabled(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}

// WantHeadingIDs reports the effective heading_ids setting.
func (c *Config) WantHeadingIDs() bool { return Enabled(c.HeadingIDs, true) }

// WantDetectLanguage reports the effective detect_language setting.
func (c *Config) WantDetectLanguage() bool { return Enabled(c.DetectLanguage, false) }

// WantStandalone reports the effective standalone setting.
func (c *Config) WantStandalone() bool { return Enabled(c.Standalone, false) }

// WantEnsureNewline reports the effective ensure_newline setting.
func (c *Config) WantEnsureNewline() bool { return Enabled(c.EnsureNewline, true) }

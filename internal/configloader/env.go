package configloader

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/yaklabco/prose/pkg/config"
)

const envVarPrefix = "PROSE_"

// envVar binds one PROSE_* variable to the config key it sets.
type envVar struct {
	suffix string
	key    string
	help   string
	apply  func(cfg *config.Config, value string) error
}

func stringVar(set func(*config.Config, string)) func(*config.Config, string) error {
	return func(cfg *config.Config, value string) error {
		set(cfg, value)
		return nil
	}
}

func boolVar(field func(*config.Config) **bool) func(*config.Config, string) error {
	return func(cfg *config.Config, value string) error {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%q is not a boolean (expected true/false/1/0)", value)
		}
		*field(cfg) = config.Bool(b)
		return nil
	}
}

func intVar(field func(*config.Config) *int) func(*config.Config, string) error {
	return func(cfg *config.Config, value string) error {
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%q is not an integer", value)
		}
		*field(cfg) = n
		return nil
	}
}

func listVar(field func(*config.Config) *[]string) func(*config.Config, string) error {
	return func(cfg *config.Config, value string) error {
		*field(cfg) = parseSliceValue(value)
		return nil
	}
}

//nolint:gochecknoglobals // Read-only lookup table.
var envVars = []envVar{
	{"FORMAT", "format", "Output format: html, json, markdown, or terminal",
		stringVar(func(c *config.Config, v string) { c.Format = config.OutputFormat(v) })},
	{"HEADING_IDS", "heading_ids", "Add id anchors to HTML headings",
		boolVar(func(c *config.Config) **bool { return &c.HeadingIDs })},
	{"DETECT_LANGUAGE", "detect_language", "Guess languages for untagged code fences",
		boolVar(func(c *config.Config) **bool { return &c.DetectLanguage })},
	{"STANDALONE", "standalone", "Render full HTML pages",
		boolVar(func(c *config.Config) **bool { return &c.Standalone })},
	{"ENSURE_NEWLINE", "ensure_newline", "Append a missing final newline before parsing",
		boolVar(func(c *config.Config) **bool { return &c.EnsureNewline })},
	{"OUTPUT_DIR", "output_dir", "Directory for rendered files",
		stringVar(func(c *config.Config, v string) { c.OutputDir = v })},
	{"EXTENSIONS", "extensions", "Comma-separated Markdown extensions",
		listVar(func(c *config.Config) *[]string { return &c.Extensions })},
	{"IGNORE", "ignore", "Comma-separated ignore patterns",
		listVar(func(c *config.Config) *[]string { return &c.Ignore })},
	{"JOBS", "jobs", "Number of parallel workers (0 = auto)",
		intVar(func(c *config.Config) *int { return &c.Jobs })},
	{"TERMINAL_WIDTH", "terminal.width", "Word-wrap column for preview (0 = terminal width)",
		intVar(func(c *config.Config) *int { return &c.Terminal.Width })},
	{"TERMINAL_STYLE", "terminal.style", "Glamour style for preview",
		stringVar(func(c *config.Config, v string) { c.Terminal.Style = v })},
}

// LoadFromEnv applies PROSE_* overrides found through lookup. Empty values
// are ignored.
func LoadFromEnv(cfg *config.Config, lookup func(string) (string, bool)) error {
	if cfg == nil {
		return nil
	}
	for _, v := range envVars {
		name := envVarPrefix + v.suffix
		value, ok := lookup(name)
		if !ok || value == "" {
			continue
		}
		if err := v.apply(cfg, value); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

// parseSliceValue splits a comma-separated list, dropping blank entries.
func parseSliceValue(value string) []string {
	var out []string
	for part := range strings.SplitSeq(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// GetEnvVarName returns the variable that sets key, or "".
func GetEnvVarName(key string) string {
	for _, v := range envVars {
		if v.key == key {
			return envVarPrefix + v.suffix
		}
	}
	return ""
}

// ListEnvVars returns every supported variable with its description.
func ListEnvVars() map[string]string {
	vars := make(map[string]string, len(envVars))
	for _, v := range envVars {
		vars[envVarPrefix+v.suffix] = v.help
	}
	return vars
}

// EnvVarNames returns the supported variable names, sorted.
func EnvVarNames() []string {
	names := make([]string, 0, len(envVars))
	for _, v := range envVars {
		names = append(names, envVarPrefix+v.suffix)
	}
	sort.Strings(names)
	return names
}

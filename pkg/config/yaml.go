package config

import (
	"bytes"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

// ToYAML serializes the configuration to YAML format.
func (c *Config) ToYAML() ([]byte, error) {
	if c == nil {
		return nil, nil
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	if err := encoder.Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}

	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}

	return buf.Bytes(), nil
}

// ToYAMLWithHeader serializes the configuration with a header comment.
func (c *Config) ToYAMLWithHeader(header string) ([]byte, error) {
	yamlBytes, err := c.ToYAML()
	if err != nil {
		return nil, err
	}

	if header == "" {
		return yamlBytes, nil
	}

	var buf bytes.Buffer
	buf.WriteString(header)
	if header[len(header)-1] != '\n' {
		buf.WriteByte('\n')
	}
	buf.WriteByte('\n')
	buf.Write(yamlBytes)

	return buf.Bytes(), nil
}

// FromYAML parses a configuration from YAML bytes. Unknown keys are an
// error.
func FromYAML(data []byte) (*Config, error) {
	cfg := &Config{}
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	return cfg, nil
}

// Clone creates a deep copy of the configuration.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}

	clone := *c
	clone.HeadingIDs = clonePtr(c.HeadingIDs)
	clone.DetectLanguage = clonePtr(c.DetectLanguage)
	clone.Standalone = clonePtr(c.Standalone)
	clone.EnsureNewline = clonePtr(c.EnsureNewline)
	clone.Extensions = slices.Clone(c.Extensions)
	clone.Ignore = slices.Clone(c.Ignore)

	return &clone
}

func clonePtr(p *bool) *bool {
	if p == nil {
		return nil
	}
	return Bool(*p)
}

// Template returns a commented default configuration suitable for a new
// project config file.
func Template() ([]byte, error) {
	const header = `# prose configuration
#
# format:          html | json | markdown | terminal
# heading_ids:     add id anchors to HTML headings
# detect_language: guess languages for untagged code fences
# standalone:      wrap HTML output in a full page
# ensure_newline:  append a missing final newline before parsing
# output_dir:      write one file per input here instead of stdout`

	return NewConfig().ToYAMLWithHeader(header)
}

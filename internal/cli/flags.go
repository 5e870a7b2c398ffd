package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/prose/pkg/config"
	"github.com/yaklabco/prose/pkg/render"
)

// renderSettings are the flags shared by commands that render output.
type renderSettings struct {
	format         string
	ignore         []string
	jobs           int
	headingIDs     bool
	detectLanguage bool
	standalone     bool
	ensureNewline  bool
}

func (r *renderSettings) register(cmd *cobra.Command, withFormat bool) {
	if withFormat {
		cmd.Flags().StringVarP(&r.format, "format", "f", "", "output format: html, json, markdown, terminal")
		cmd.Flags().BoolVar(&r.headingIDs, "heading-ids", true, "add id anchors to HTML headings")
		cmd.Flags().BoolVar(&r.detectLanguage, "detect-language", false, "guess languages for untagged code fences")
		cmd.Flags().BoolVar(&r.standalone, "standalone", false, "wrap HTML output in a full page")
	}
	cmd.Flags().BoolVar(&r.ensureNewline, "ensure-newline", true, "append a missing final newline before parsing")
	cmd.Flags().StringSliceVar(&r.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().IntVarP(&r.jobs, "jobs", "j", 0, "number of parallel workers (0 = auto)")
}

// config builds the CLI layer of the configuration from flags the user
// actually set, so unset flags do not mask config files.
func (r *renderSettings) config(cmd *cobra.Command) (*config.Config, error) {
	cfg := &config.Config{Jobs: r.jobs, Ignore: r.ignore}

	flags := cmd.Flags()
	if flags.Changed("format") {
		format, err := render.ParseFormat(r.format)
		if err != nil {
			return nil, withCode(ExitInvalidUsage, err)
		}
		cfg.Format = config.OutputFormat(format)
	}

	for name, dst := range map[string]struct {
		value bool
		field **bool
	}{
		"heading-ids":     {r.headingIDs, &cfg.HeadingIDs},
		"detect-language": {r.detectLanguage, &cfg.DetectLanguage},
		"standalone":      {r.standalone, &cfg.Standalone},
		"ensure-newline":  {r.ensureNewline, &cfg.EnsureNewline},
	} {
		if flags.Lookup(name) != nil && flags.Changed(name) {
			*dst.field = config.Bool(dst.value)
		}
	}

	if r.jobs < 0 {
		return nil, withCode(ExitInvalidUsage, fmt.Errorf("--jobs must be >= 0, got %d", r.jobs))
	}

	return cfg, nil
}

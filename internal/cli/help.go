package cli

import (
	"io"
	"strings"
	"text/template"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yaklabco/prose/internal/configloader"
	"github.com/yaklabco/prose/internal/ui/pretty"
)

// helpTheme styles the sections of command help.
type helpTheme struct {
	heading lipgloss.Style
	command lipgloss.Style
	flag    lipgloss.Style
	dim     lipgloss.Style
}

func newHelpTheme(colorEnabled bool) helpTheme {
	if !colorEnabled {
		plain := lipgloss.NewStyle()
		return helpTheme{heading: plain, command: plain, flag: plain, dim: plain}
	}
	return helpTheme{
		heading: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		command: lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		flag:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

const helpLayout = `{{with (or .Long .Short)}}{{trimRight .}}

{{end}}{{heading "Usage:"}}{{if .Runnable}}
  {{command .UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{command .CommandPath}} [command]{{end}}{{if .HasExample}}

{{heading "Examples:"}}
{{dim .Example}}{{end}}{{if .HasAvailableSubCommands}}

{{heading "Commands:"}}{{range .Commands}}{{if .IsAvailableCommand}}
  {{command (pad .Name .NamePadding)}} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

{{heading "Flags:"}}
{{flags .LocalFlags}}{{end}}{{if .HasAvailableInheritedFlags}}

{{heading "Global Flags:"}}
{{flags .InheritedFlags}}{{end}}{{if not .HasParent}}

{{heading "Environment:"}}{{range envVars}}
  {{command (pad . 24)}} {{envHelp .}}{{end}}{{end}}{{if .HasAvailableSubCommands}}

Run "{{.CommandPath}} [command] --help" for details on a command.{{end}}
`

// applyHelp installs styled help output on cmd and its subcommands.
// Color follows the --color flag when it has been parsed.
func applyHelp(cmd *cobra.Command) {
	render := func(c *cobra.Command, w io.Writer) error {
		mode, err := c.Flags().GetString("color")
		if err != nil {
			mode = "auto"
		}
		theme := newHelpTheme(pretty.IsColorEnabled(mode, w))
		envHelp := configloader.ListEnvVars()

		tmpl, err := template.New("help").Funcs(template.FuncMap{
			"heading":   theme.heading.Render,
			"command":   theme.command.Render,
			"dim":       theme.dim.Render,
			"flags":     theme.flagUsages,
			"pad":       func(s string, n int) string { return runewidth.FillRight(s, n) },
			"trimRight": func(s string) string { return strings.TrimRight(s, " \t\n") },
			"envVars":   configloader.EnvVarNames,
			"envHelp":   func(name string) string { return envHelp[name] },
		}).Parse(helpLayout)
		if err != nil {
			return err
		}
		return tmpl.Execute(w, c)
	}

	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		if err := render(c, c.OutOrStdout()); err != nil {
			c.PrintErrln(err)
		}
	})
	cmd.SetUsageFunc(func(c *cobra.Command) error {
		return render(c, c.ErrOrStderr())
	})
}

// flagUsages styles pflag's usage block: flag names in color and value
// types dimmed, with pflag's column alignment intact.
func (t helpTheme) flagUsages(set *pflag.FlagSet) string {
	lines := strings.Split(strings.TrimRight(set.FlagUsages(), "\n"), "\n")
	for i, line := range lines {
		indent := len(line) - len(strings.TrimLeft(line, " "))
		end := strings.Index(line[indent:], "  ")
		if end < 0 {
			continue
		}
		end += indent

		var sb strings.Builder
		sb.WriteString(line[:indent])
		for j, tok := range strings.Fields(line[indent:end]) {
			if j > 0 {
				sb.WriteByte(' ')
			}
			if strings.HasPrefix(tok, "-") {
				name, comma := strings.CutSuffix(tok, ",")
				sb.WriteString(t.flag.Render(name))
				if comma {
					sb.WriteByte(',')
				}
				continue
			}
			sb.WriteString(t.dim.Render(tok))
		}
		lines[i] = sb.String() + line[end:]
	}
	return strings.Join(lines, "\n")
}

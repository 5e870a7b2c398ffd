package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"

	"github.com/yaklabco/prose/pkg/runner"
)

const summaryDividerWidth = 40

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "2 files failed to parse, 10 rendered (4.1 kB in, 6.3 kB out)".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	var parts []string

	if stats.FilesFailed > 0 {
		parts = append(parts, s.Failure.Render(
			english.Plural(stats.FilesFailed, "file", "")+" failed to parse"))
	}
	if stats.FilesErrored > 0 {
		parts = append(parts, s.Error.Render(
			english.Plural(stats.FilesErrored, "file", "")+" could not be processed"))
	}

	ok := fmt.Sprintf("%d ok", stats.FilesProcessed)
	if len(parts) == 0 {
		ok = s.Success.Render(english.Plural(stats.FilesProcessed, "file", "") + " ok")
	}
	parts = append(parts, ok)

	if stats.FilesChanged > 0 {
		parts = append(parts, s.Warning.Render(
			english.Plural(stats.FilesChanged, "file", "")+" not canonical"))
	}
	if stats.FilesWritten > 0 {
		parts = append(parts, fmt.Sprintf("%d written", stats.FilesWritten))
	}

	line := strings.Join(parts, ", ")
	if stats.BytesIn > 0 {
		line += s.Dim.Render(fmt.Sprintf(" (%s in, %s out)",
			humanize.Bytes(uint64(stats.BytesIn)), humanize.Bytes(uint64(stats.BytesOut))))
	}

	return line + "\n"
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	var builder strings.Builder

	row := func(label string, value string) {
		builder.WriteString(fmt.Sprintf("  %-18s %s\n", label+":", value))
	}

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	row("Files discovered", s.SummaryValue.Render(humanize.Comma(int64(stats.FilesDiscovered))))
	row("Files ok", s.SummaryValue.Render(humanize.Comma(int64(stats.FilesProcessed))))
	if stats.FilesFailed > 0 {
		row("Parse failures", s.Failure.Render(strconv.Itoa(stats.FilesFailed)))
	}
	if stats.FilesErrored > 0 {
		row("Errors", s.Error.Render(strconv.Itoa(stats.FilesErrored)))
	}
	if stats.FilesChanged > 0 {
		row("Not canonical", s.Warning.Render(strconv.Itoa(stats.FilesChanged)))
	}
	if stats.FilesWritten > 0 {
		row("Files written", s.Success.Render(strconv.Itoa(stats.FilesWritten)))
	}

	builder.WriteString("\n")
	row("Blocks", s.SummaryValue.Render(humanize.Comma(int64(stats.Blocks))))
	row("Input", s.SummaryValue.Render(humanize.Bytes(uint64(stats.BytesIn))))
	row("Output", s.SummaryValue.Render(humanize.Bytes(uint64(stats.BytesOut))))
	builder.WriteString("\n")

	switch {
	case stats.FilesFailed > 0 || stats.FilesErrored > 0:
		builder.WriteString(s.Failure.Render("Failed"))
	case stats.FilesChanged > 0:
		builder.WriteString(s.Warning.Render("Completed with formatting changes"))
	default:
		builder.WriteString(s.Success.Render("All files parsed"))
	}
	builder.WriteString("\n")

	return builder.String()
}

package report

import (
	"advent/pkg/domain"
	"advent/pkg/logger"
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
)

const separator = "--------------------------------------------------------------------------------"

// MarkdownWriter renders the report as a markdown table. Without Out the table
// is logged at info level.
type MarkdownWriter struct {
	Out io.Writer
}

func (w *MarkdownWriter) Write(ctx context.Context, report domain.Report) error {
	table := Markdown(report)
	if w.Out == nil {
		logger.Info(ctx, "benchmark results:\n"+table, zap.Int("year", report.Year))

		return nil
	}

	if _, err := io.WriteString(w.Out, table); err != nil {
		return fmt.Errorf("could not write markdown report: %w", err)
	}

	return nil
}

// Markdown renders the header and result table of a report.
func Markdown(report domain.Report) string {
	var sb strings.Builder

	sb.WriteString("\n" + separator + "\n")
	sb.WriteString(strings.Repeat(" ", 30))
	fmt.Fprintf(&sb, "Advent of Code %d", report.Year)
	sb.WriteString("\n" + separator + "\n")

	fmt.Fprintf(&sb, "| %-5s | %-4s | %-35s | %-7s | %-7s | %-7s | %-35s |\n",
		"Year", "Day", "Name", "Parsing", "Part 1", "Part 2", "Assignment")
	for _, d := range report.Days {
		fmt.Fprintf(&sb, "| %5d |  %02d  | %-35s | %-7s | %-7s | %-7s | %-35s |\n",
			report.Year,
			d.Day,
			fmt.Sprintf("[%s](%s)", d.Name, d.SourceURI),
			d.Preparation.Pretty(),
			d.Part1.Pretty(),
			d.Part2.Pretty(),
			fmt.Sprintf("[instructions](%s)", d.InstructionURI))
	}

	return sb.String()
}

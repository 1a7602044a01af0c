package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	labelStyle  = lipgloss.NewStyle().Bold(true)
)

// writeTable renders rows as a bordered table, or tab-separated when
// format is "tsv".
func writeTable(w io.Writer, format string, headers []string, rows [][]string) error {
	switch format {
	case "tsv":
		if _, err := fmt.Fprintln(w, strings.Join(headers, "\t")); err != nil {
			return err
		}
		for _, row := range rows {
			if _, err := fmt.Fprintln(w, strings.Join(row, "\t")); err != nil {
				return err
			}
		}
		return nil
	case "", "table":
		t := table.New().
			Border(lipgloss.NormalBorder()).
			StyleFunc(func(row, _ int) lipgloss.Style {
				if row == table.HeaderRow {
					return headerStyle
				}
				return cellStyle
			}).
			Headers(headers...).
			Rows(rows...)
		_, err := fmt.Fprintln(w, t.String())
		return err
	default:
		return fmt.Errorf("unknown format %q (want table or tsv)", format)
	}
}

// writeField prints one "label: value" summary line.
func writeField(w io.Writer, label, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", labelStyle.Render(label+":"), fmt.Sprintf(format, args...))
}

func formatFloats(values []float64, verb string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = fmt.Sprintf(verb, v)
	}
	return out
}

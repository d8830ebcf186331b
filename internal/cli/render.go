package cli

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/tubeplan/criteria"
)

var (
	colorCyan = lipgloss.Color("36")
	colorRed  = lipgloss.Color("167")
	colorGray = lipgloss.Color("245")
	colorDim  = lipgloss.Color("240")
)

// writeCSV prints the ranking in the deterministic machine-readable form:
// a header row, then name,score,failed_essentials per proposal, best first.
func writeCSV(w io.Writer, results []criteria.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"name", "score", "failed_essentials"}); err != nil {
		return fmt.Errorf("cli: write header: %w", err)
	}
	for _, r := range results {
		record := []string{
			r.Proposal.Name,
			strconv.FormatFloat(r.Score, 'f', 6, 64),
			strconv.Itoa(len(r.Failed)),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("cli: write row for %q: %w", r.Proposal.Name, err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// writeTable prints the ranking as a bordered table for interactive use.
func writeTable(w io.Writer, results []criteria.Result) error {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	failStyle := lipgloss.NewStyle().Foreground(colorRed)
	okStyle := lipgloss.NewStyle().Foreground(colorCyan)

	rows := make([][]string, 0, len(results))
	for i, r := range results {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			r.Proposal.Name,
			strconv.FormatFloat(r.Score, 'f', 3, 64),
			strconv.Itoa(len(r.Failed)),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Proposal", "Score", "Failed").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 3 && row >= 0 && row < len(results) && len(results[row].Failed) > 0 {
				return failStyle
			}
			if col == 2 {
				return okStyle
			}

			return lipgloss.NewStyle()
		})

	_, err := fmt.Fprintln(w, t)

	return err
}

package ui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/ryo246912/bb-qa-reviews/internal/models"
)

const maxTitleWidth = 60

func PadRight(str string, width int) string {
	w := runewidth.StringWidth(str)
	if w < width {
		return str + strings.Repeat(" ", width-w)
	}
	return str
}

// Truncate shortens str to width display cells, marking the cut with "..."
func Truncate(str string, width int) string {
	return runewidth.Truncate(str, width, "...")
}

// FormatTable renders records as aligned rows, header first
func FormatTable(records []models.ReviewRecord) []string {
	rows := [][]string{{"Repository", "PR", "Issue", "Type", "QA Date", "Title"}}
	for _, r := range records {
		rows = append(rows, []string{
			r.Repository,
			fmt.Sprintf("#%d", r.PRID),
			r.IssueKey,
			r.IssueType,
			r.QADate,
			Truncate(r.Title, maxTitleWidth),
		})
	}

	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			if i == len(row)-1 {
				cells[i] = cell
				continue
			}
			cells[i] = PadRight(cell, widths[i])
		}
		lines = append(lines, strings.Join(cells, "  "))
	}
	return lines
}

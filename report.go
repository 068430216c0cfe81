package main

import (
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	errorStyle  = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("9"))
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// renderReport formats one row per image: size, vector counts per
// quadrant, parse time, and the output file or the error.
func renderReport(results []result) string {
	failed := make(map[int]bool)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers("image", "size", "vectors", "TL", "TR", "BL", "BR", "lone", "time", "output")

	for i, r := range results {
		name := filepath.Base(r.Path)
		if r.Err != nil {
			failed[i+1] = true
			t.Row(name, "", "", "", "", "", "", "", "", r.Err.Error())
			continue
		}
		row := []string{
			name,
			fmt.Sprintf("%dx%d", r.Width, r.Height),
			strconv.Itoa(r.Summary.Vectors),
		}
		for _, q := range r.Summary.Quadrants {
			row = append(row, strconv.Itoa(q.Vectors))
		}
		row = append(row,
			strconv.Itoa(r.Summary.Isolated),
			r.Elapsed.Round(100 * time.Microsecond).String(),
			r.Output,
		)
		t.Row(row...)
	}

	t.StyleFunc(func(row, col int) lipgloss.Style {
		switch {
		case row == 0:
			return headerStyle
		case failed[row] && col == 9:
			return errorStyle
		default:
			return cellStyle
		}
	})
	return t.Render()
}

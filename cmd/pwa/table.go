// SPDX-License-Identifier: MIT

package main

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// renderScores lays the score grid out with sequence A across the top and
// sequence B down the side. The leading empty header/row label stands for
// the boundary row and column.
func renderScores(scores [][]int, a, b string) string {
	headers := make([]string, 0, len(a)+2)
	headers = append(headers, "", "")
	for i := 0; i < len(a); i++ {
		headers = append(headers, string(a[i]))
	}

	rows := make([][]string, 0, len(scores))
	for i, row := range scores {
		label := ""
		if i > 0 {
			label = string(b[i-1])
		}
		cells := make([]string, 0, len(row)+1)
		cells = append(cells, label)
		for _, v := range row {
			cells = append(cells, strconv.Itoa(v))
		}
		rows = append(rows, cells)
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		Render()
}

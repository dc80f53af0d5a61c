package model

import "strings"

// Row is an ordered sequence of cell strings. The leftmost cell is first.
// A row may mix a row-header cell (always cell 0 when present) with data cells.
type Row []string

// Table represents a logical table with cells organized in rows.
type Table struct {
	Rows []Row
}

// RowCount returns the number of rows.
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// ColCount returns the number of columns in the first row.
func (t *Table) ColCount() int {
	if len(t.Rows) == 0 {
		return 0
	}
	return len(t.Rows[0])
}

// GetCell returns the cell at the given row and column (0-indexed), and
// whether the position exists.
func (t *Table) GetCell(row, col int) (string, bool) {
	if row < 0 || row >= len(t.Rows) {
		return "", false
	}
	if col < 0 || col >= len(t.Rows[row]) {
		return "", false
	}
	return t.Rows[row][col], true
}

// GetText returns the table content as tab-separated rows.
func (t *Table) GetText() string {
	var sb strings.Builder
	for _, row := range t.Rows {
		for j, cell := range row {
			sb.WriteString(cell)
			if j < len(row)-1 {
				sb.WriteString("\t")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// ToCSV converts the table to CSV format.
func (t *Table) ToCSV() string {
	var sb strings.Builder
	for _, row := range t.Rows {
		for j, cell := range row {
			// Escape quotes and wrap in quotes if necessary
			text := cell
			if strings.Contains(text, ",") || strings.Contains(text, "\"") || strings.Contains(text, "\n") {
				text = "\"" + strings.ReplaceAll(text, "\"", "\"\"") + "\""
			}
			sb.WriteString(text)
			if j < len(row)-1 {
				sb.WriteString(",")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// ToMarkdown converts the table to markdown format. The first row is rendered
// as the header row.
func (t *Table) ToMarkdown() string {
	if len(t.Rows) == 0 {
		return ""
	}

	var sb strings.Builder

	// Header row
	for j, cell := range t.Rows[0] {
		sb.WriteString("| ")
		sb.WriteString(strings.ReplaceAll(cell, "\n", " "))
		sb.WriteString(" ")
		if j == len(t.Rows[0])-1 {
			sb.WriteString("|")
		}
	}
	sb.WriteString("\n")

	// Separator
	for j := range t.Rows[0] {
		sb.WriteString("|---")
		if j == len(t.Rows[0])-1 {
			sb.WriteString("|")
		}
	}
	sb.WriteString("\n")

	// Data rows
	for i := 1; i < len(t.Rows); i++ {
		for j, cell := range t.Rows[i] {
			sb.WriteString("| ")
			sb.WriteString(strings.ReplaceAll(cell, "\n", " "))
			sb.WriteString(" ")
			if j == len(t.Rows[i])-1 {
				sb.WriteString("|")
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

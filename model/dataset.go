package model

import (
	"fmt"
	"strings"
)

// Dataset is an ordered sequence of tables recovered from a single grid.
type Dataset struct {
	Tables []Table
}

// TableCount returns the number of tables.
func (d *Dataset) TableCount() int {
	return len(d.Tables)
}

// IsEmpty reports whether the dataset holds no tables. An empty dataset is a
// valid result, not an error; it means the input contained no grid content.
func (d *Dataset) IsEmpty() bool {
	return len(d.Tables) == 0
}

// ToCSV renders every table as CSV, with a blank line between tables.
func (d *Dataset) ToCSV() string {
	var sb strings.Builder
	for i, table := range d.Tables {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(table.ToCSV())
	}
	return sb.String()
}

// Format renders the dataset as banner-delimited comma-joined rows, the
// layout downstream report consumers expect:
//
//	=== Table 1 ===
//	Name,Count
//	Flu,12
//
// Cells are joined verbatim with commas; empty cells stay empty strings.
func (d *Dataset) Format() string {
	var out []string
	for i, table := range d.Tables {
		out = append(out, fmt.Sprintf("\n=== Table %d ===\n", i+1))
		for _, row := range table.Rows {
			out = append(out, strings.Join(row, ","))
		}
		out = append(out, "")
	}
	return strings.Join(out, "\n")
}

// Package model provides the intermediate representation (IR) for recovered
// grid content.
//
// This package defines the user-facing data structures that represent the
// logical table structure reconstructed from a flattened grid. All extraction
// operations ultimately produce these types, making them the primary API for
// consuming recovered content.
//
// # Structure
//
// A [Dataset] is an ordered sequence of [Table] values, each an ordered
// sequence of [Row] values, each an ordered sequence of cell strings:
//
//	ds := model.Dataset{Tables: []model.Table{{Rows: []model.Row{{"Name", "Count"}}}}}
//
// Row order and cell order within each row preserve the order of the grid
// markup the dataset was recovered from. When a table had column headers,
// its first row is the header row. When a grid row began with a row header,
// cell 0 of that row is the row-header text.
//
// # Export
//
// Tables and datasets render to CSV and Markdown:
//
//   - [Table.ToCSV], [Table.ToMarkdown] - single-table export
//   - [Dataset.ToCSV] - tables separated by a blank line
//   - [Dataset.Format] - banner-delimited plain rendering
package model

// Package tables recovers logical table structure from a flattened stream of
// accessibility-role-tagged grid items.
//
// Virtualized data grids render no <table> markup and carry no explicit row
// or table boundaries; all that survives in the flattened document is a
// raster-scan-ordered sequence of elements tagged columnheader, rowheader,
// or gridcell, where data cells additionally carry a column-index attribute.
// [Reconstruct] infers row boundaries, table boundaries, and header
// association from role transitions and that single positional attribute:
//
//   - A contiguous run of column headers forms a header group, flushed as the
//     table's header row when the first non-header item arrives.
//   - A column header arriving while no header group is accumulating and the
//     current table already has a body starts a new table.
//   - A row header always opens a new row and becomes its cell 0.
//   - A data cell at column index 0 closes the row in progress, unless that
//     row holds only a single cell (a row header that was just emitted).
//
// The reconstruction is a deterministic single pass: it never fails, performs
// no I/O, and is safe to invoke concurrently on independent item slices. A
// data cell without a column index never triggers the row-boundary rule, so
// incomplete input degrades to longer rows rather than an error.
package tables

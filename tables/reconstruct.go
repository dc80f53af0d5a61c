package tables

import "github.com/tsawler/ariagrid/model"

// reconstructor holds the three buffers the single pass maintains between
// items: the header group being collected, the row being assembled, and the
// rows of the table being assembled. At most one of pendingHeaders and
// pendingRow is extended per item, but both may be non-empty between items;
// the next item's role resolves which one flushes first.
type reconstructor struct {
	pendingHeaders model.Row
	pendingRow     model.Row
	current        []model.Row
	out            []model.Table
}

// Reconstruct recovers the logical tables from a flattened grid item stream.
// It is a pure function of the input order and total over any well-formed
// sequence: an empty stream yields an empty dataset, and no input causes an
// error. See the package documentation for the boundary rules.
func Reconstruct(items []Item) model.Dataset {
	var r reconstructor
	for _, it := range items {
		switch it.Role {
		case ColumnHeader:
			r.columnHeader(it.Text)
		case RowHeader:
			r.rowHeader(it.Text)
		case GridCell:
			r.gridCell(it)
		}
	}
	return r.finish()
}

// columnHeader closes the row in progress and accumulates a header. A header
// arriving while no group is accumulating and the current table already has
// rows marks a table boundary.
func (r *reconstructor) columnHeader(text string) {
	r.flushRow()
	if len(r.pendingHeaders) == 0 && len(r.current) > 0 {
		r.out = append(r.out, model.Table{Rows: r.current})
		r.current = nil
	}
	r.pendingHeaders = append(r.pendingHeaders, text)
}

// rowHeader closes the row in progress, records any accumulated header group
// as the header row, and opens a new row with the header text as cell 0.
func (r *reconstructor) rowHeader(text string) {
	r.flushRow()
	r.flushHeaders()
	r.pendingRow = append(r.pendingRow, text)
}

// gridCell records any accumulated header group, then appends the cell to the
// row in progress. A cell at column index 0 closes that row first, unless the
// row holds at most one cell: a single buffered cell alongside index 0 is a
// row header that was just emitted, not a row boundary.
func (r *reconstructor) gridCell(it Item) {
	r.flushHeaders()
	if len(r.pendingRow) > 1 && it.HasColumnIndex && it.ColumnIndex == 0 {
		r.flushRow()
	}
	r.pendingRow = append(r.pendingRow, it.Text)
}

// finish flushes the trailing row and, with it, the trailing table. A table
// whose final row was already recorded before the stream ended is not
// emitted.
func (r *reconstructor) finish() model.Dataset {
	if len(r.pendingRow) > 0 {
		r.current = append(r.current, r.pendingRow)
		r.out = append(r.out, model.Table{Rows: r.current})
	}
	return model.Dataset{Tables: r.out}
}

func (r *reconstructor) flushRow() {
	if len(r.pendingRow) > 0 {
		r.current = append(r.current, r.pendingRow)
		r.pendingRow = nil
	}
}

func (r *reconstructor) flushHeaders() {
	if len(r.pendingHeaders) > 0 {
		r.current = append(r.current, r.pendingHeaders)
		r.pendingHeaders = nil
	}
}

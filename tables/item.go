package tables

// Role is the structural tag of a grid item. Elements with any other
// accessibility role are filtered out before reconstruction.
type Role int

const (
	// ColumnHeader labels a column of the grid.
	ColumnHeader Role = iota
	// RowHeader labels a row; it becomes cell 0 of the row it opens.
	RowHeader
	// GridCell holds one data value.
	GridCell
)

// String returns the markup role attribute value for the role.
func (r Role) String() string {
	switch r {
	case ColumnHeader:
		return "columnheader"
	case RowHeader:
		return "rowheader"
	case GridCell:
		return "gridcell"
	default:
		return "unknown"
	}
}

// Item is one accessibility-role-tagged element as observed in the flattened
// grid markup, in document order. Items are value types; reconstruction never
// mutates or retains them.
type Item struct {
	Role Role
	// Text is the visible text content, whitespace-trimmed. May be empty.
	Text string
	// ColumnIndex is the renderer-assigned column position of a GridCell
	// within its row. Only meaningful when HasColumnIndex is true; headers
	// never carry one.
	ColumnIndex    int
	HasColumnIndex bool
}

// NewColumnHeader returns a ColumnHeader item.
func NewColumnHeader(text string) Item {
	return Item{Role: ColumnHeader, Text: text}
}

// NewRowHeader returns a RowHeader item.
func NewRowHeader(text string) Item {
	return Item{Role: RowHeader, Text: text}
}

// NewCell returns a GridCell item at the given column index.
func NewCell(text string, col int) Item {
	return Item{Role: GridCell, Text: text, ColumnIndex: col, HasColumnIndex: true}
}

// NewUnindexedCell returns a GridCell item whose column index is missing.
// Such a cell never matches the row-boundary rule.
func NewUnindexedCell(text string) Item {
	return Item{Role: GridCell, Text: text}
}

package column

// AttrCellType is the attribute name attribute-style cells use to declare their type.
const AttrCellType = "cell-type"

// Cell is anything that can report the column type it was declared with.
type Cell interface {
	CellType() Type
}

// Attributes adapts attribute-bag cells (as produced by markup) to Cell.
type Attributes map[string]string

// CellType returns the value stored under AttrCellType, or "" when absent.
func (a Attributes) CellType() Type {
	return Type(a[AttrCellType])
}

// IsTextOrEnum reports whether the cell is declared as a text or enum column.
// A nil cell or an unrecognized type yields false.
func IsTextOrEnum(cell Cell) bool {
	if cell == nil {
		return false
	}
	switch cell.CellType() {
	case Text, Enum:
		return true
	default:
		return false
	}
}

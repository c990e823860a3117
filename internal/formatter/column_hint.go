package formatter

// ColumnHint provides display hints for one column of a rendered table.
type ColumnHint struct {
	// MaxWidth caps the column width (in characters). 0 = no cap.
	MaxWidth int

	// Priority controls column importance when shrinking.
	// Higher values resist shrinking; lower values shrink first.
	Priority int

	// Align controls text alignment: "right" or "left" (default).
	Align string
}

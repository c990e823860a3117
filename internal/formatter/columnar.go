package formatter

import (
	"fmt"
	"sort"
	"strings"

	"charm.land/lipgloss/v2"
)

const (
	sepWidth    = 2
	minColWidth = 3
	maxColWidth = 40
)

// ColumnarOptions configures columnar table rendering.
type ColumnarOptions struct {
	// NoColor disables color output
	NoColor bool

	// TotalWidth is the total available width. If 0, uses terminal width.
	TotalWidth int

	// RowNumbers adds a leading "#" column numbering rows from 1.
	RowNumbers bool

	// ColumnHints provides per-column width, priority and alignment hints,
	// keyed by column header.
	ColumnHints map[string]ColumnHint
}

// RenderColumnarTable renders rows under the given column headers. Columns
// are sized to their content, then shrunk to fit TotalWidth, lowest
// priority first.
func RenderColumnarTable(columns []string, rows [][]string, opts ColumnarOptions) string {
	if len(columns) == 0 {
		return ""
	}

	totalWidth := opts.TotalWidth
	if totalWidth <= 0 {
		totalWidth = TerminalWidth()
	}

	rowNumWidth := 0
	if opts.RowNumbers {
		rowNumWidth = max(len(fmt.Sprintf("%d", len(rows))), 1)
		totalWidth -= rowNumWidth + sepWidth
	}

	hints := make([]ColumnHint, len(columns))
	for i, col := range columns {
		hints[i] = opts.ColumnHints[col]
	}
	widths := calculateColumnWidths(columns, rows, totalWidth, hints)

	style := func(s lipgloss.Style, text string) string {
		if opts.NoColor {
			return text
		}
		return s.Render(text)
	}
	sep := strings.Repeat(" ", sepWidth)

	var b strings.Builder

	parts := make([]string, 0, len(columns)+1)
	if opts.RowNumbers {
		parts = append(parts, style(headerStyle, padRight("#", rowNumWidth)))
	}
	for i, col := range columns {
		parts = append(parts, style(headerStyle, padRight(col, widths[i])))
	}
	b.WriteString(strings.TrimRight(strings.Join(parts, sep), " ") + "\n")

	lineWidth := 0
	for _, w := range widths {
		lineWidth += w
	}
	lineWidth += (len(widths) - 1) * sepWidth
	if opts.RowNumbers {
		lineWidth += rowNumWidth + sepWidth
	}
	b.WriteString(style(separatorStyle, strings.Repeat("─", lineWidth)) + "\n")

	for r, row := range rows {
		parts = parts[:0]
		if opts.RowNumbers {
			parts = append(parts, style(keyStyle, padRight(fmt.Sprintf("%d", r+1), rowNumWidth)))
		}
		for i := range columns {
			val := ""
			if i < len(row) {
				val = row[i]
			}
			if hints[i].Align == "right" {
				val = padLeft(val, widths[i])
			} else {
				val = padRight(val, widths[i])
			}
			parts = append(parts, style(valueStyle, val))
		}
		b.WriteString(strings.TrimRight(strings.Join(parts, sep), " ") + "\n")
	}

	return b.String()
}

// NaturalWidth returns the width a table needs to render without truncation.
func NaturalWidth(columns []string, rows [][]string, hints map[string]ColumnHint) int {
	if len(columns) == 0 {
		return 0
	}
	total := (len(columns) - 1) * sepWidth
	for i, w := range naturalWidths(columns, rows) {
		if h := hints[columns[i]]; h.MaxWidth > 0 && w > h.MaxWidth {
			w = h.MaxWidth
		}
		total += w
	}
	return total
}

func naturalWidths(columns []string, rows [][]string) []int {
	widths := make([]int, len(columns))
	for i, col := range columns {
		widths[i] = lipgloss.Width(col)
	}
	for _, row := range rows {
		for i, val := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], lipgloss.Width(val))
			}
		}
	}
	return widths
}

func calculateColumnWidths(columns []string, rows [][]string, availableWidth int, hints []ColumnHint) []int {
	widths := naturalWidths(columns, rows)

	// MaxWidth caps apply before any shrinking.
	for i := range widths {
		if hints[i].MaxWidth > 0 && widths[i] > hints[i].MaxWidth {
			widths[i] = hints[i].MaxWidth
		}
	}

	usable := availableWidth - (len(columns)-1)*sepWidth
	total := 0
	for _, w := range widths {
		total += w
	}
	if total <= usable || usable <= 0 {
		return widths
	}

	if hasPriorities(hints) {
		return shrinkByPriority(widths, usable, hints)
	}

	for i := range widths {
		widths[i] = min(widths[i], maxColWidth)
	}
	return shrinkProportionally(widths, usable)
}

func hasPriorities(hints []ColumnHint) bool {
	for _, h := range hints {
		if h.Priority != 0 {
			return true
		}
	}
	return false
}

func shrinkProportionally(widths []int, usable int) []int {
	total := 0
	for _, w := range widths {
		total += w
	}
	if total <= usable {
		return widths
	}
	for i := range widths {
		widths[i] = max(int(float64(widths[i])/float64(total)*float64(usable)), minColWidth)
	}

	// Rounding up to minColWidth can overshoot; trim the widest columns.
	for {
		sum, widest := 0, 0
		for i, w := range widths {
			sum += w
			if w > widths[widest] {
				widest = i
			}
		}
		if sum <= usable || widths[widest] <= minColWidth {
			return widths
		}
		widths[widest]--
	}
}

// shrinkByPriority reduces widths to fit usable, shrinking the lowest
// priority columns first.
func shrinkByPriority(widths []int, usable int, hints []ColumnHint) []int {
	excess := -usable
	for _, w := range widths {
		excess += w
	}

	order := make([]int, len(widths))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return hints[order[a]].Priority < hints[order[b]].Priority
	})

	for _, idx := range order {
		if excess <= 0 {
			break
		}
		shrink := min(widths[idx]-minColWidth, excess)
		if shrink <= 0 {
			continue
		}
		widths[idx] -= shrink
		excess -= shrink
	}
	return widths
}

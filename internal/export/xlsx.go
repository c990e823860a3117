// Package export writes resolved grid layouts and their records to
// spreadsheet workbooks.
package export

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/oakwood-commons/gridkit/internal/formatter"
	"github.com/oakwood-commons/gridkit/pkg/style"
)

// DefaultSheet is the sheet name used when none is given.
const DefaultSheet = "Sheet1"

// maxSheetNameLen is the longest sheet name a workbook accepts, in characters.
const maxSheetNameLen = 31

// pixelsPerChar approximates one character of the default workbook font.
const pixelsPerChar = 7.0

// Column is one spreadsheet column: its header text and resolved width.
type Column struct {
	Header string
	Width  style.Width
}

// ColumnWidth converts a resolved width into spreadsheet character units.
// It returns 0 when the width carries no pixel count, meaning the sheet
// default is kept.
func ColumnWidth(w style.Width) float64 {
	if w.Mode != style.WidthPixels || w.Pixels <= 0 {
		return 0
	}
	return float64(w.Pixels) / pixelsPerChar
}

// Build creates a workbook with a bold header row and one row per record.
// Map records are matched to columns by header; any other record fills the
// first column.
func Build(sheet string, columns []Column, records []any) (*excelize.File, error) {
	sheet = SheetName(sheet)
	f := excelize.NewFile()
	if sheet != DefaultSheet {
		if err := f.SetSheetName(DefaultSheet, sheet); err != nil {
			f.Close()
			return nil, fmt.Errorf("sheet %q: %w", sheet, err)
		}
	}

	if err := writeHeader(f, sheet, columns); err != nil {
		f.Close()
		return nil, err
	}
	for r, rec := range records {
		if err := writeRow(f, sheet, r+2, columns, rec); err != nil {
			f.Close()
			return nil, fmt.Errorf("row %d: %w", r+1, err)
		}
	}
	return f, nil
}

// SheetName turns free text into a valid sheet name: the characters
// :\/?*[] become "_", surrounding quotes and spaces are dropped, and the
// result is cut to 31 characters. Empty input yields DefaultSheet.
func SheetName(name string) string {
	name = strings.Map(func(r rune) rune {
		if strings.ContainsRune(`:\/?*[]`, r) {
			return '_'
		}
		return r
	}, name)
	name = strings.Trim(name, "' ")
	if utf8.RuneCountInString(name) > maxSheetNameLen {
		name = strings.TrimRight(string([]rune(name)[:maxSheetNameLen]), "' ")
	}
	if name == "" {
		return DefaultSheet
	}
	return name
}

// Write builds the workbook and writes it to w.
func Write(w io.Writer, sheet string, columns []Column, records []any) error {
	f, err := Build(sheet, columns, records)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Write(w)
}

func writeHeader(f *excelize.File, sheet string, columns []Column) error {
	if len(columns) == 0 {
		return nil
	}
	for i, c := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, c.Header); err != nil {
			return err
		}
		if width := ColumnWidth(c.Width); width > 0 {
			name, err := excelize.ColumnNumberToName(i + 1)
			if err != nil {
				return err
			}
			if err := f.SetColWidth(sheet, name, name, width); err != nil {
				return fmt.Errorf("column %s: %w", c.Header, err)
			}
		}
	}

	styleID, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(columns), 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", last, styleID)
}

func writeRow(f *excelize.File, sheet string, row int, columns []Column, rec any) error {
	m, isMap := rec.(map[string]any)
	for i, c := range columns {
		var v any
		switch {
		case isMap:
			v = m[c.Header]
		case i == 0:
			v = rec
		}
		if v == nil {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, cellValue(v)); err != nil {
			return err
		}
	}
	return nil
}

func cellValue(v any) any {
	switch v.(type) {
	case map[string]any, []any:
		return formatter.Stringify(v)
	default:
		return v
	}
}

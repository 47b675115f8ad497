// =============================================================================
// Vocabulary XLSX Converter - XLSX Writer Module
// =============================================================================
//
// This module writes a types.Table to an Excel workbook.
//
// WORKBOOK STRUCTURE:
//   The generated workbook has exactly one sheet:
//
//   Sheet "German Vocabulary"
//   +---------+---------+
//   | German  | English |   <- row 1: header (bold, bordered)
//   +---------+---------+
//   | Hallo   | Hello   |   <- row 2..N+1: data rows in file order
//   | Welt    | World   |
//   +---------+---------+
//
//   There is no index column. Every cell is written as a string, exactly as
//   it was parsed, so the sheet round-trips to the same table.
//
// =============================================================================

package xlsxwriter

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/vocab-xlsx/internal/types"
	"github.com/ginjaninja78/vocab-xlsx/internal/validation"
)

// =============================================================================
// WRITE OPTIONS
// =============================================================================

// WriteOptions contains options for workbook generation.
type WriteOptions struct {
	// HeaderStyle makes the header row bold with a thin border.
	// Default: true
	HeaderStyle bool

	// AutoWidth sizes each column to its longest value, within
	// MinColumnWidth and MaxColumnWidth.
	// Default: true
	AutoWidth bool

	// MinColumnWidth is the narrowest column produced by AutoWidth.
	// Default: 8
	MinColumnWidth float64

	// MaxColumnWidth is the widest column produced by AutoWidth.
	// Default: 60
	MaxColumnWidth float64
}

// DefaultWriteOptions returns the default write options.
func DefaultWriteOptions() WriteOptions {
	return WriteOptions{
		HeaderStyle:    true,
		AutoWidth:      true,
		MinColumnWidth: 8,
		MaxColumnWidth: 60,
	}
}

// =============================================================================
// WRITE FUNCTIONS
// =============================================================================

// Save writes table to path as a workbook with a single sheet named sheetName.
// An existing file at path is overwritten.
//
// RETURNS:
//   - A *types.Error of kind Write if the sheet name is invalid or the file
//     cannot be written.
func Save(table *types.Table, path, sheetName string) error {
	return SaveWithOptions(table, path, sheetName, DefaultWriteOptions())
}

// SaveWithOptions is Save with explicit options.
func SaveWithOptions(table *types.Table, path, sheetName string, options WriteOptions) error {
	f, err := build(table, sheetName, options)
	if err != nil {
		return types.NewWriteError(path, err)
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return types.NewWriteError(path, fmt.Errorf("failed to save workbook: %w", err))
	}

	return nil
}

// Write streams the workbook to w instead of a file.
func Write(w io.Writer, table *types.Table, sheetName string, options WriteOptions) error {
	f, err := build(table, sheetName, options)
	if err != nil {
		return types.NewWriteError("", err)
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return types.NewWriteError("", fmt.Errorf("failed to write workbook: %w", err))
	}

	return nil
}

// build creates the in-memory workbook. The caller must Close it.
func build(table *types.Table, sheetName string, options WriteOptions) (*excelize.File, error) {
	if err := validation.ValidateSheetName(sheetName); err != nil {
		return nil, err
	}
	if err := validation.ValidateTable(table); err != nil {
		return nil, err
	}

	f := excelize.NewFile()

	// A new file starts with "Sheet1"; renaming keeps it the only sheet.
	defaultSheet := f.GetSheetName(0)
	if defaultSheet != sheetName {
		if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to name sheet: %w", err)
		}
	}

	if err := writeRows(f, table, sheetName); err != nil {
		f.Close()
		return nil, err
	}

	if options.HeaderStyle {
		if err := styleHeader(f, sheetName, len(table.Headers)); err != nil {
			f.Close()
			return nil, err
		}
	}

	if options.AutoWidth {
		if err := setColumnWidths(f, table, sheetName, options); err != nil {
			f.Close()
			return nil, err
		}
	}

	return f, nil
}

// writeRows writes the header to row 1 and data rows from row 2.
func writeRows(f *excelize.File, table *types.Table, sheetName string) error {
	if err := setRow(f, sheetName, 1, table.Headers); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, row := range table.Rows {
		if err := setRow(f, sheetName, i+2, row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	return nil
}

func setRow(f *excelize.File, sheetName string, rowNumber int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNumber)
	if err != nil {
		return err
	}

	cells := make([]interface{}, len(values))
	for i, value := range values {
		cells[i] = value
	}

	return f.SetSheetRow(sheetName, cell, &cells)
}

// styleHeader applies a bold, bordered, centred style to the header cells.
func styleHeader(f *excelize.File, sheetName string, columns int) error {
	border := func(side string) excelize.Border {
		return excelize.Border{Type: side, Color: "000000", Style: 1}
	}

	styleID, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Border: []excelize.Border{
			border("left"), border("top"), border("right"), border("bottom"),
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "top"},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	last, err := excelize.CoordinatesToCellName(columns, 1)
	if err != nil {
		return err
	}

	if err := f.SetCellStyle(sheetName, "A1", last, styleID); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}
	return nil
}

// setColumnWidths sizes each column from its longest value.
func setColumnWidths(f *excelize.File, table *types.Table, sheetName string, options WriteOptions) error {
	for j, header := range table.Headers {
		longest := utf8.RuneCountInString(header)
		for _, row := range table.Rows {
			if n := utf8.RuneCountInString(row[j]); n > longest {
				longest = n
			}
		}

		width := float64(longest) + 2
		if width < options.MinColumnWidth {
			width = options.MinColumnWidth
		}
		if options.MaxColumnWidth > 0 && width > options.MaxColumnWidth {
			width = options.MaxColumnWidth
		}

		column, err := excelize.ColumnNumberToName(j + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheetName, column, column, width); err != nil {
			return fmt.Errorf("failed to size column %s: %w", column, err)
		}
	}

	return nil
}

// =============================================================================
// Vocabulary XLSX Converter - XLSX Parser
// =============================================================================
//
// This module reads a sheet of an existing workbook back into a types.Table.
// It is used to verify a freshly written workbook and by the inspect command.
//
// SHEET LAYOUT (Expected):
//   Row 1 holds the column names; every later row is a data row.
//
//   | Column A | Column B |
//   |----------|----------|
//   | German   | English  |
//   | Hallo    | Hello    |
//
// Spreadsheet files omit empty trailing cells, so every data row is padded
// to the header width. Trailing rows with no content are not returned.
//
// =============================================================================

package xlsxparser

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/vocab-xlsx/internal/types"
)

// =============================================================================
// PARSER FUNCTIONS
// =============================================================================

// ReadSheet reads the named sheet of the workbook at path.
//
// PARAMETERS:
//   - path: The path to the XLSX file.
//   - sheetName: The sheet to read. If empty, or if fallback is true and the
//     sheet does not exist, the first sheet is read.
//
// RETURNS:
//   - The table, with SourceFile set to path.
//   - A *types.Error of kind FileNotFound or Parse.
func ReadSheet(path, sheetName string, fallback bool) (*types.Table, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, types.NewFileNotFoundError(path, err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, types.NewParseError(path, 0, fmt.Errorf("failed to open workbook: %w", err))
	}
	defer f.Close()

	sheet, err := resolveSheet(f, sheetName, fallback)
	if err != nil {
		return nil, types.NewParseError(path, 0, err)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, types.NewParseError(path, 0, fmt.Errorf("failed to read rows: %w", err))
	}

	table := tableFromRows(rows)
	table.SourceFile = path
	return table, nil
}

// SheetNames lists the sheets of the workbook at path, in workbook order.
func SheetNames(path string) ([]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, types.NewFileNotFoundError(path, err)
		}
		return nil, types.NewParseError(path, 0, fmt.Errorf("failed to open workbook: %w", err))
	}
	defer f.Close()

	return f.GetSheetList(), nil
}

// resolveSheet picks the sheet to read.
func resolveSheet(f *excelize.File, sheetName string, fallback bool) (string, error) {
	first := f.GetSheetName(0)
	if first == "" {
		return "", fmt.Errorf("workbook has no sheets")
	}
	if sheetName == "" {
		return first, nil
	}

	for _, name := range f.GetSheetList() {
		if name == sheetName {
			return name, nil
		}
	}

	if fallback {
		return first, nil
	}
	return "", fmt.Errorf("sheet %q not found", sheetName)
}

// tableFromRows turns raw sheet rows into a table.
func tableFromRows(rows [][]string) *types.Table {
	// Drop trailing rows with no content.
	end := len(rows)
	for end > 0 && isRowEmpty(rows[end-1]) {
		end--
	}
	rows = rows[:end]

	table := &types.Table{Rows: [][]string{}}
	if len(rows) == 0 {
		return table
	}

	table.Headers = rows[0]
	width := len(table.Headers)
	for _, row := range rows[1:] {
		if len(row) > width {
			width = len(row)
		}
	}
	table.Headers = pad(table.Headers, width)

	for _, row := range rows[1:] {
		table.Rows = append(table.Rows, pad(row, width))
	}

	return table
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// isRowEmpty checks if a row contains only empty cells.
// White space counts as content; it is written and read back verbatim.
func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}

// pad returns row extended with empty strings to width.
func pad(row []string, width int) []string {
	if len(row) >= width {
		return row
	}
	padded := make([]string, width)
	copy(padded, row)
	return padded
}

// TrimTrailingEmptyRows returns table rows without trailing all-empty rows.
// A workbook cannot distinguish those rows from absent ones.
func TrimTrailingEmptyRows(table *types.Table) *types.Table {
	end := len(table.Rows)
	for end > 0 && isRowEmpty(table.Rows[end-1]) {
		end--
	}
	return &types.Table{
		Headers:    table.Headers,
		Rows:       table.Rows[:end],
		SourceFile: table.SourceFile,
	}
}

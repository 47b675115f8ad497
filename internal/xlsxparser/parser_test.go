package xlsxparser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/vocab-xlsx/internal/types"
)

// writeWorkbook saves rows to the named sheets of a new workbook.
func writeWorkbook(t *testing.T, sheets map[string][][]string, order ...string) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, name := range order {
		if i == 0 {
			require.NoError(t, f.SetSheetName("Sheet1", name))
		} else {
			_, err := f.NewSheet(name)
			require.NoError(t, err)
		}
		for r, row := range sheets[name] {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			require.NoError(t, err)
			values := make([]interface{}, len(row))
			for c, v := range row {
				values[c] = v
			}
			require.NoError(t, f.SetSheetRow(name, cell, &values))
		}
	}

	path := filepath.Join(t.TempDir(), "book.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestReadSheet(t *testing.T) {
	path := writeWorkbook(t, map[string][][]string{
		"German Vocabulary": {{"German", "English"}, {"Hallo", "Hello"}, {"Welt", ""}},
	}, "German Vocabulary")

	table, err := ReadSheet(path, "German Vocabulary", false)
	require.NoError(t, err)

	assert.Equal(t, []string{"German", "English"}, table.Headers)
	assert.Equal(t, [][]string{{"Hallo", "Hello"}, {"Welt", ""}}, table.Rows)
	assert.Equal(t, path, table.SourceFile)
}

func TestReadSheet_SheetSelection(t *testing.T) {
	path := writeWorkbook(t, map[string][][]string{
		"First":  {{"a"}, {"1"}},
		"Second": {{"b"}, {"2"}},
	}, "First", "Second")

	table, err := ReadSheet(path, "Second", false)
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, table.Headers)

	table, err = ReadSheet(path, "", false)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, table.Headers)

	table, err = ReadSheet(path, "Missing", true)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, table.Headers)

	_, err = ReadSheet(path, "Missing", false)
	assert.ErrorIs(t, err, types.ErrParse)
	assert.ErrorContains(t, err, `sheet "Missing" not found`)
}

func TestReadSheet_EmptySheet(t *testing.T) {
	path := writeWorkbook(t, map[string][][]string{"Empty": nil}, "Empty")

	table, err := ReadSheet(path, "Empty", false)
	require.NoError(t, err)
	assert.Empty(t, table.Headers)
	assert.Empty(t, table.Rows)
}

func TestReadSheet_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := ReadSheet(filepath.Join(dir, "missing.xlsx"), "", false)
	assert.ErrorIs(t, err, types.ErrFileNotFound)

	garbage := filepath.Join(dir, "garbage.xlsx")
	require.NoError(t, os.WriteFile(garbage, []byte("German,English\n"), 0o644))
	_, err = ReadSheet(garbage, "", false)
	assert.ErrorIs(t, err, types.ErrParse)
}

func TestSheetNames(t *testing.T) {
	path := writeWorkbook(t, map[string][][]string{
		"One": {{"x"}},
		"Two": {{"y"}},
	}, "One", "Two")

	names, err := SheetNames(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"One", "Two"}, names)

	_, err = SheetNames(filepath.Join(t.TempDir(), "nope.xlsx"))
	assert.ErrorIs(t, err, types.ErrFileNotFound)
}

func TestTableFromRows(t *testing.T) {
	table := tableFromRows([][]string{
		{"German", "English"},
		{"Hallo"},
		{},
		{"Welt", "World"},
		{},
		{"", ""},
	})

	assert.Equal(t, [][]string{{"Hallo", ""}, {"", ""}, {"Welt", "World"}}, table.Rows)
}

func TestTrimTrailingEmptyRows(t *testing.T) {
	table := &types.Table{
		Headers: []string{"German", "English"},
		Rows:    [][]string{{"Hallo", "Hello"}, {"", ""}, {" ", ""}, {"", ""}},
	}

	trimmed := TrimTrailingEmptyRows(table)
	assert.Equal(t, [][]string{{"Hallo", "Hello"}, {"", ""}, {" ", ""}}, trimmed.Rows)
	assert.Len(t, table.Rows, 4)
}

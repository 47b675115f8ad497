// =============================================================================
// Vocabulary XLSX Converter - Shared Types
// =============================================================================
//
// This package contains shared types used across multiple modules to avoid
// import cycles. Types defined here are used by:
//   - csvparser   (produces a Table)
//   - xlsxwriter  (consumes a Table)
//   - xlsxparser  (reads a sheet back into a Table)
//   - converter   (orchestration and summary)
//
// =============================================================================

package types

// =============================================================================
// TABLE
// =============================================================================

// Table is an ordered, in-memory collection of rows sharing one column schema.
//
// Rows are stored positionally: Rows[i][j] is the value of column Headers[j]
// in data row i. Every row has exactly len(Headers) values.
type Table struct {
	// Headers contains the column names in file order.
	Headers []string

	// Rows contains the data rows, in file order, excluding the header.
	Rows [][]string

	// SourceFile is the path the table was read from, if any.
	SourceFile string
}

// RowCount returns the number of data rows (the header is not counted).
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// ColumnCount returns the number of columns.
func (t *Table) ColumnCount() int {
	return len(t.Headers)
}

// Row returns data row i as a mapping from column name to value.
func (t *Table) Row(i int) map[string]string {
	row := make(map[string]string, len(t.Headers))
	for j, header := range t.Headers {
		if j < len(t.Rows[i]) {
			row[header] = t.Rows[i][j]
		}
	}
	return row
}

// Column returns every value of the named column, or nil if it does not exist.
func (t *Table) Column(name string) []string {
	index := -1
	for j, header := range t.Headers {
		if header == name {
			index = j
			break
		}
	}
	if index < 0 {
		return nil
	}

	values := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		values[i] = row[index]
	}
	return values
}

// Head returns a table holding at most the first n data rows.
// The returned table shares row storage with t.
func (t *Table) Head(n int) *Table {
	if n < 0 {
		n = 0
	}
	if n > len(t.Rows) {
		n = len(t.Rows)
	}
	return &Table{
		Headers:    t.Headers,
		Rows:       t.Rows[:n],
		SourceFile: t.SourceFile,
	}
}

// Equal reports whether two tables have identical headers and rows.
// SourceFile is ignored.
func (t *Table) Equal(other *Table) bool {
	if len(t.Headers) != len(other.Headers) || len(t.Rows) != len(other.Rows) {
		return false
	}
	for j := range t.Headers {
		if t.Headers[j] != other.Headers[j] {
			return false
		}
	}
	for i := range t.Rows {
		if len(t.Rows[i]) != len(other.Rows[i]) {
			return false
		}
		for j := range t.Rows[i] {
			if t.Rows[i][j] != other.Rows[i][j] {
				return false
			}
		}
	}
	return true
}

// =============================================================================
// Vocabulary XLSX Converter - Validation Module
// =============================================================================
//
// This module checks structural rules before anything is written:
//   - Table shape: every row has exactly one value per header, and header
//     names are unique (a row is a mapping from column name to value)
//   - Sheet names: Excel's naming rules, so a bad name fails before the
//     output file is touched
//
// Cell contents are not inspected. Vocabulary entries are free text.
//
// =============================================================================

package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ginjaninja78/vocab-xlsx/internal/types"
)

// MaxSheetNameLength is Excel's limit on sheet name length, in characters.
const MaxSheetNameLength = 31

// invalidSheetNameChars are the characters Excel rejects in sheet names.
const invalidSheetNameChars = `:\/?*[]`

// ValidationError describes a single structural problem.
type ValidationError struct {
	// Row is the 1-based data row number, or 0 when the problem is not row specific.
	Row int

	// Field names the offending header or setting.
	Field string

	// Message is a human-readable description.
	Message string
}

func (e *ValidationError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("row %d: %s", e.Row, e.Message)
	}
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// ValidateTable checks that headers are non-empty and unique and that every
// row has exactly one value per header. It returns the first problem found.
func ValidateTable(table *types.Table) error {
	if len(table.Headers) == 0 {
		return &ValidationError{Field: "header", Message: "table has no columns"}
	}

	seen := make(map[string]bool, len(table.Headers))
	for _, header := range table.Headers {
		if header == "" {
			return &ValidationError{Field: "header", Message: "empty column name"}
		}
		if seen[header] {
			return &ValidationError{Field: header, Message: "duplicate column name"}
		}
		seen[header] = true
	}

	for i, row := range table.Rows {
		if len(row) != len(table.Headers) {
			return &ValidationError{
				Row:     i + 1,
				Message: fmt.Sprintf("expected %d fields, got %d", len(table.Headers), len(row)),
			}
		}
	}

	return nil
}

// ValidateSheetName applies Excel's sheet naming rules.
func ValidateSheetName(name string) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Field: "sheet_name", Message: "sheet name must not be empty"}
	}
	if n := utf8.RuneCountInString(name); n > MaxSheetNameLength {
		return &ValidationError{
			Field:   "sheet_name",
			Message: fmt.Sprintf("sheet name is %d characters, the limit is %d", n, MaxSheetNameLength),
		}
	}
	if i := strings.IndexAny(name, invalidSheetNameChars); i >= 0 {
		return &ValidationError{
			Field:   "sheet_name",
			Message: fmt.Sprintf("sheet name contains invalid character %q", name[i]),
		}
	}
	if strings.HasPrefix(name, "'") || strings.HasSuffix(name, "'") {
		return &ValidationError{Field: "sheet_name", Message: "sheet name must not start or end with an apostrophe"}
	}
	return nil
}

// =============================================================================
// Vocabulary XLSX Converter - Main Entry Point
// =============================================================================
//
// This is the main entry point for the vocabulary converter CLI. It
// initializes the Cobra CLI framework and delegates command execution to the
// cmd package.
//
// USAGE:
//   vocab-xlsx              - Convert german_english_vocabulary.csv to .xlsx
//   vocab-xlsx inspect      - Summarize an existing workbook
//   vocab-xlsx version      - Display the application version
//
// ARCHITECTURE:
//   - cmd/           : CLI command definitions (Cobra)
//   - internal/      : Conversion logic (not for external import)
//   - pkg/           : Shared file utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/vocab-xlsx/cmd"
)

// main is the entry point of the application.
func main() {
	cmd.Execute()
}

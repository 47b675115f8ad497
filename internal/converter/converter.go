// =============================================================================
// Vocabulary XLSX Converter - Converter Module
// =============================================================================
//
// This module contains the conversion pipeline. It runs three steps in strict
// sequence; a failing step aborts the ones after it:
//
//   1. Load the input CSV into a table
//   2. Save the table as a single-sheet workbook
//      (optionally read it back and check its shape)
//   3. Print the summary
//
// Nothing is written before the input has been fully parsed, so a missing or
// malformed input never creates or modifies the output file.
//
// =============================================================================

package converter

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/ginjaninja78/vocab-xlsx/internal/config"
	"github.com/ginjaninja78/vocab-xlsx/internal/csvparser"
	"github.com/ginjaninja78/vocab-xlsx/internal/types"
	"github.com/ginjaninja78/vocab-xlsx/internal/xlsxparser"
	"github.com/ginjaninja78/vocab-xlsx/internal/xlsxwriter"
	"github.com/ginjaninja78/vocab-xlsx/pkg/utils"
)

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result represents the outcome of one conversion run.
type Result struct {
	// InputFile is the CSV file that was read.
	InputFile string

	// OutputFile is the workbook that was written.
	// This is empty if processing failed before the save step.
	OutputFile string

	// RunID identifies the run in log records.
	RunID string

	// Success indicates whether every step completed.
	Success bool

	// Error contains the error if processing failed.
	Error error

	// Stats contains processing statistics.
	Stats ProcessingStats
}

// ProcessingStats contains statistics about the run.
type ProcessingStats struct {
	// RowsProcessed is the number of data rows converted.
	RowsProcessed int

	// Columns is the number of columns in the table.
	Columns int

	// OutputBytes is the size of the written workbook.
	OutputBytes int64

	// ProcessingTime is the wall time of the run.
	ProcessingTime time.Duration
}

// =============================================================================
// CONVERTER STRUCTURE
// =============================================================================

// Logger is the logging surface the converter needs. *slog.Logger satisfies it.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Converter converts one CSV file into one workbook.
type Converter struct {
	cfg    *config.Config
	logger Logger
	stdout io.Writer
	runID  string
}

// Option configures a Converter.
type Option func(*Converter)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger Logger) Option {
	return func(c *Converter) { c.logger = logger }
}

// WithOutput sets where the summary is printed. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(c *Converter) { c.stdout = w }
}

// WithRunID tags the Result with the run identifier used in logs.
func WithRunID(runID string) Option {
	return func(c *Converter) { c.runID = runID }
}

// New creates a Converter for the given configuration.
func New(cfg *config.Config, opts ...Option) *Converter {
	c := &Converter{
		cfg:    cfg,
		logger: slog.Default(),
		stdout: os.Stdout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// Run executes load, save and summarize in order.
func (c *Converter) Run() Result {
	startTime := time.Now()
	result := Result{
		InputFile: c.cfg.InputPath,
		RunID:     c.runID,
	}

	// =========================================================================
	// STEP 1: LOAD
	// =========================================================================

	c.logger.Info("loading input", "path", c.cfg.InputPath, "encoding", c.cfg.CSVSettings.Encoding)

	table, err := csvparser.Load(c.cfg.InputPath, c.cfg.CSVSettings)
	if err != nil {
		result.Error = fmt.Errorf("failed to load input: %w", err)
		return result
	}

	result.Stats.RowsProcessed = table.RowCount()
	result.Stats.Columns = table.ColumnCount()
	c.logger.Debug("parsed input", "rows", table.RowCount(), "columns", table.Headers)

	// =========================================================================
	// STEP 2: SAVE
	// =========================================================================

	overwrite := utils.FileExists(c.cfg.OutputPath)

	if err := xlsxwriter.Save(table, c.cfg.OutputPath, c.cfg.SheetName); err != nil {
		result.Error = fmt.Errorf("failed to save workbook: %w", err)
		return result
	}

	result.OutputFile = c.cfg.OutputPath
	if size, err := utils.GetFileSize(c.cfg.OutputPath); err == nil {
		result.Stats.OutputBytes = size
	}
	c.logger.Info("wrote workbook",
		"path", c.cfg.OutputPath,
		"sheet", c.cfg.SheetName,
		"size", utils.FormatSize(result.Stats.OutputBytes),
		"overwritten", overwrite,
	)

	if c.cfg.ShouldVerify() {
		if err := c.verify(table); err != nil {
			result.Error = fmt.Errorf("failed to verify workbook: %w", err)
			return result
		}
		c.logger.Debug("verified workbook", "path", c.cfg.OutputPath)
	}

	// =========================================================================
	// STEP 3: SUMMARIZE
	// =========================================================================

	summary := SummarizeWithPreview(table, c.cfg.OutputPath, c.cfg.PreviewRows)
	if _, err := io.WriteString(c.stdout, summary); err != nil {
		result.Error = fmt.Errorf("failed to print summary: %w", err)
		return result
	}

	result.Success = true
	result.Stats.ProcessingTime = time.Since(startTime)
	c.logger.Debug("conversion complete", "elapsed", result.Stats.ProcessingTime)

	return result
}

// verify reads the written sheet back and compares it with the table.
func (c *Converter) verify(table *types.Table) error {
	written, err := xlsxparser.ReadSheet(c.cfg.OutputPath, c.cfg.SheetName, false)
	if err != nil {
		return types.NewWriteError(c.cfg.OutputPath, err)
	}

	expected := xlsxparser.TrimTrailingEmptyRows(table)
	if !expected.Equal(written) {
		return types.NewWriteError(c.cfg.OutputPath, fmt.Errorf(
			"sheet holds %d rows x %d columns, expected %d x %d",
			written.RowCount(), written.ColumnCount(),
			expected.RowCount(), expected.ColumnCount(),
		))
	}

	return nil
}

// =============================================================================
// INSPECT
// =============================================================================

// Inspect reads an existing workbook and prints its summary.
// The configured sheet is read, or the first sheet if it does not exist.
func (c *Converter) Inspect(path string) Result {
	startTime := time.Now()
	result := Result{
		InputFile: path,
		RunID:     c.runID,
	}

	c.logger.Info("inspecting workbook", "path", path, "sheet", c.cfg.SheetName)
	if modTime, err := utils.GetFileModTime(path); err == nil {
		c.logger.Debug("workbook modified", "path", path, "mod_time", modTime)
	}

	table, err := xlsxparser.ReadSheet(path, c.cfg.SheetName, true)
	if err != nil {
		result.Error = fmt.Errorf("failed to read workbook: %w", err)
		return result
	}

	result.Stats.RowsProcessed = table.RowCount()
	result.Stats.Columns = table.ColumnCount()

	sheets, err := xlsxparser.SheetNames(path)
	if err != nil {
		result.Error = fmt.Errorf("failed to list sheets: %w", err)
		return result
	}

	summary := renderSummary(fmt.Sprintf("Excel file: %s (sheets: %s)", path, quoteList(sheets)), table, c.cfg.PreviewRows)
	if _, err := io.WriteString(c.stdout, summary); err != nil {
		result.Error = fmt.Errorf("failed to print summary: %w", err)
		return result
	}

	result.Success = true
	result.Stats.ProcessingTime = time.Since(startTime)
	return result
}

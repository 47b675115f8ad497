// =============================================================================
// Vocabulary XLSX Converter - CSV Parser
// =============================================================================
//
// This module loads a delimited text file into a types.Table.
//
// PARSING RULES:
//   - The first record is the header; every later record is a data row
//   - Every data row must have exactly as many fields as the header
//   - Blank lines are skipped
//   - Field values are kept exactly as read (no trimming, no type inference)
//   - A leading byte-order mark is removed
//   - Non-UTF-8 input is decoded according to CSVSettings.Encoding
//
// HEADER NAMING:
//   Header cells are trimmed. An empty header at position i becomes
//   "Unnamed: i". A repeated header gets a ".1", ".2", ... suffix so that
//   every column name is unique:
//
//   German,English,German   ->   German, English, German.1
//
// ERRORS:
//   - types.ErrFileNotFound : the path does not exist
//   - types.ErrParse        : malformed quoting, wrong field count, invalid
//                             UTF-8, or no header line at all
//
// =============================================================================

package csvparser

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/ginjaninja78/vocab-xlsx/internal/config"
	"github.com/ginjaninja78/vocab-xlsx/internal/types"
)

// =============================================================================
// PARSER FUNCTIONS
// =============================================================================

// Load reads a CSV file and returns the parsed table.
//
// PARAMETERS:
//   - filePath: The path to the CSV file.
//   - settings: Delimiter and encoding settings.
//
// RETURNS:
//   - The parsed table.
//   - A *types.Error of kind FileNotFound or Parse, or a plain error for
//     unusable settings.
func Load(filePath string, settings config.CSVSettings) (*types.Table, error) {
	file, err := os.Open(filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, types.NewFileNotFoundError(filePath, err)
		}
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	table, err := Parse(file, settings)
	if err != nil {
		var typed *types.Error
		if errors.As(err, &typed) {
			typed.Path = filePath
		}
		return nil, err
	}

	table.SourceFile = filePath
	return table, nil
}

// Parse reads CSV data from r. Parse errors carry no path; Load fills it in.
func Parse(r io.Reader, settings config.CSVSettings) (*types.Table, error) {
	decoded, err := decodingReader(r, settings.Encoding)
	if err != nil {
		return nil, err
	}

	csvReader := csv.NewReader(bufio.NewReader(decoded))
	if err := configureReader(csvReader, settings); err != nil {
		return nil, err
	}

	header, err := csvReader.Read()
	if err == io.EOF {
		return nil, types.NewParseError("", 0, errors.New("no header line found"))
	}
	if err != nil {
		return nil, parseError(err)
	}
	if err := checkUTF8(header, csvReader); err != nil {
		return nil, err
	}

	table := &types.Table{
		Headers: cleanHeaders(header),
		Rows:    [][]string{},
	}

	for {
		record, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, parseError(err)
		}
		if err := checkUTF8(record, csvReader); err != nil {
			return nil, err
		}
		table.Rows = append(table.Rows, record)
	}

	return table, nil
}

// configureReader configures the CSV reader based on the settings.
func configureReader(reader *csv.Reader, settings config.CSVSettings) error {
	comma, err := settings.Comma()
	if err != nil {
		return err
	}
	reader.Comma = comma

	// 0 pins the field count to the header's.
	reader.FieldsPerRecord = 0

	reader.LazyQuotes = false
	reader.TrimLeadingSpace = settings.TrimLeadingSpace
	reader.ReuseRecord = false
	return nil
}

// parseError converts a reader error into a types.Error carrying the line.
func parseError(err error) error {
	var csvErr *csv.ParseError
	if errors.As(err, &csvErr) {
		return types.NewParseError("", csvErr.Line, csvErr.Err)
	}
	return types.NewParseError("", 0, err)
}

// checkUTF8 rejects records that are not valid UTF-8 after decoding.
func checkUTF8(record []string, reader *csv.Reader) error {
	for _, field := range record {
		if !utf8.ValidString(field) {
			line, _ := reader.FieldPos(0)
			return types.NewParseError("", line, errors.New("invalid UTF-8 in input, set csv_settings.encoding"))
		}
	}
	return nil
}

// =============================================================================
// ENCODING
// =============================================================================

// decodingReader wraps r so that it yields UTF-8.
//
// UTF-8 input passes through untouched except for a leading byte-order mark.
// Any other IANA charset name (ISO-8859-1, latin1, windows-1252, UTF-16, ...)
// is decoded with golang.org/x/text.
func decodingReader(r io.Reader, name string) (io.Reader, error) {
	enc, err := lookupEncoding(name)
	if err != nil {
		return nil, err
	}

	if canonical, _ := ianaindex.IANA.Name(enc); canonical == "UTF-8" {
		// BOMOverride switches to UTF-16 if a UTF-16 BOM is found.
		return transform.NewReader(r, unicode.BOMOverride(transform.Nop)), nil
	}
	return transform.NewReader(r, unicode.BOMOverride(enc.NewDecoder())), nil
}

// lookupEncoding resolves a charset name. An empty name means UTF-8.
func lookupEncoding(name string) (encoding.Encoding, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return unicode.UTF8, nil
	}

	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q: %w", name, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("unsupported encoding %q", name)
	}
	return enc, nil
}

// =============================================================================
// HEADERS
// =============================================================================

// cleanHeaders trims header names, names empty ones and de-duplicates repeats.
func cleanHeaders(headers []string) []string {
	cleaned := make([]string, len(headers))
	seen := make(map[string]bool, len(headers))

	for i, header := range headers {
		header = strings.TrimSpace(header)
		if header == "" {
			header = fmt.Sprintf("Unnamed: %d", i)
		}

		name := header
		for n := 1; seen[name]; n++ {
			name = fmt.Sprintf("%s.%d", header, n)
		}

		seen[name] = true
		cleaned[i] = name
	}

	return cleaned
}

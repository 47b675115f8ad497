// =============================================================================
// Vocabulary XLSX Converter - Configuration Module
// =============================================================================
//
// This module is responsible for loading the application configuration.
// Every setting has a default, so the converter runs with no configuration
// file at all and reproduces the fixed behaviour:
//
//   german_english_vocabulary.csv  ->  german_english_vocabulary.xlsx
//                                      (sheet "German Vocabulary")
//
// CONFIGURATION FILE (converter.yaml):
//   input_path: german_english_vocabulary.csv
//   output_path: german_english_vocabulary.xlsx
//   sheet_name: German Vocabulary
//   preview_rows: 10
//   verify_output: true
//   log_level: info
//   log_format: text
//   csv_settings:
//     delimiter: ","
//     encoding: UTF-8
//
// =============================================================================

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// DEFAULTS
// =============================================================================

const (
	// DefaultConfigFile is the configuration file looked up when --config is not given.
	DefaultConfigFile = "converter.yaml"

	DefaultInputPath   = "german_english_vocabulary.csv"
	DefaultOutputPath  = "german_english_vocabulary.xlsx"
	DefaultSheetName   = "German Vocabulary"
	DefaultPreviewRows = 10
)

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the application configuration.
type Config struct {
	// InputPath is the CSV file to convert.
	InputPath string `yaml:"input_path"`

	// OutputPath is the XLSX file to write. An existing file is overwritten.
	OutputPath string `yaml:"output_path"`

	// SheetName is the name of the single sheet in the output workbook.
	SheetName string `yaml:"sheet_name"`

	// PreviewRows is the number of rows shown in the printed summary.
	PreviewRows int `yaml:"preview_rows"`

	// VerifyOutput re-reads the written workbook and checks its shape.
	// A pointer so that an explicit "false" survives applyDefaults.
	VerifyOutput *bool `yaml:"verify_output"`

	// LogLevel controls the verbosity of logging.
	// Valid values: "debug", "info", "warn", "error"
	LogLevel string `yaml:"log_level"`

	// LogFormat selects the log handler: "text" or "json".
	LogFormat string `yaml:"log_format"`

	// CSVSettings contains settings for parsing the input file.
	CSVSettings CSVSettings `yaml:"csv_settings"`
}

// CSVSettings contains settings for parsing CSV files.
type CSVSettings struct {
	// Delimiter is the character used to separate fields.
	// Accepts a single character or one of "tab", "pipe", "semicolon".
	// Default: ","
	Delimiter string `yaml:"delimiter"`

	// Encoding is the character encoding of the file.
	// Supported: "UTF-8", "ISO-8859-1" (alias "latin1"), "Windows-1252".
	// Default: "UTF-8"
	Encoding string `yaml:"encoding"`

	// TrimLeadingSpace ignores leading white space in a field.
	TrimLeadingSpace bool `yaml:"trim_leading_space"`
}

// ShouldVerify reports whether the written workbook is read back and checked.
func (c *Config) ShouldVerify() bool {
	return c.VerifyOutput == nil || *c.VerifyOutput
}

// =============================================================================
// LOADING FUNCTIONS
// =============================================================================

// Default returns a configuration with every default applied.
func Default() *Config {
	config := &Config{}
	applyDefaults(config)
	return config
}

// Load reads the configuration from a YAML file.
//
// If the file does not exist and optional is true, the defaults are returned.
// This is how the default config path behaves: the tool needs no config file.
func Load(configPath string, optional bool) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", configPath, err)
	}
	return config, nil
}

// Parse decodes YAML configuration, applies defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&config)

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(config *Config) {
	if config.InputPath == "" {
		config.InputPath = DefaultInputPath
	}
	if config.OutputPath == "" {
		config.OutputPath = DefaultOutputPath
	}
	if config.SheetName == "" {
		config.SheetName = DefaultSheetName
	}
	if config.PreviewRows == 0 {
		config.PreviewRows = DefaultPreviewRows
	}
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
	if config.LogFormat == "" {
		config.LogFormat = "text"
	}
	if config.CSVSettings.Delimiter == "" {
		config.CSVSettings.Delimiter = ","
	}
	if config.CSVSettings.Encoding == "" {
		config.CSVSettings.Encoding = "UTF-8"
	}
}

// validate checks values that would otherwise fail late, after the input was read.
func validate(config *Config) error {
	if config.PreviewRows < 0 {
		return fmt.Errorf("preview_rows must not be negative, got %d", config.PreviewRows)
	}

	switch strings.ToLower(config.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log_level %q", config.LogLevel)
	}

	switch strings.ToLower(config.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log_format %q", config.LogFormat)
	}

	if _, err := config.CSVSettings.Comma(); err != nil {
		return err
	}

	return nil
}

// Comma resolves the configured delimiter to a single rune.
func (s CSVSettings) Comma() (rune, error) {
	switch strings.ToLower(s.Delimiter) {
	case "", ",", "comma":
		return ',', nil
	case "\\t", "\t", "tab":
		return '\t', nil
	case "|", "pipe":
		return '|', nil
	case ";", "semicolon":
		return ';', nil
	}

	runes := []rune(s.Delimiter)
	if len(runes) != 1 {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", s.Delimiter)
	}
	if runes[0] == '"' || runes[0] == '\r' || runes[0] == '\n' {
		return 0, fmt.Errorf("invalid delimiter %q", s.Delimiter)
	}
	return runes[0], nil
}

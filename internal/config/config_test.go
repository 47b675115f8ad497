package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "german_english_vocabulary.csv", cfg.InputPath)
	assert.Equal(t, "german_english_vocabulary.xlsx", cfg.OutputPath)
	assert.Equal(t, "German Vocabulary", cfg.SheetName)
	assert.Equal(t, 10, cfg.PreviewRows)
	assert.True(t, cfg.ShouldVerify())
	assert.Equal(t, ",", cfg.CSVSettings.Delimiter)
	assert.Equal(t, "UTF-8", cfg.CSVSettings.Encoding)
}

func TestLoad_OptionalMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "converter.yaml"), true)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_RequiredMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "custom.yaml"), false)
	assert.ErrorContains(t, err, "failed to read config file")
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "converter.yaml")
	content := `
input_path: words.csv
sheet_name: Wörter
preview_rows: 3
verify_output: false
log_format: json
csv_settings:
  delimiter: semicolon
  encoding: ISO-8859-1
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path, false)
	require.NoError(t, err)

	assert.Equal(t, "words.csv", cfg.InputPath)
	assert.Equal(t, DefaultOutputPath, cfg.OutputPath)
	assert.Equal(t, "Wörter", cfg.SheetName)
	assert.Equal(t, 3, cfg.PreviewRows)
	assert.False(t, cfg.ShouldVerify())
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "ISO-8859-1", cfg.CSVSettings.Encoding)

	comma, err := cfg.CSVSettings.Comma()
	require.NoError(t, err)
	assert.Equal(t, ';', comma)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"bad yaml", "input_path: [", "failed to parse config file"},
		{"negative preview", "preview_rows: -1", "preview_rows must not be negative"},
		{"bad level", "log_level: loud", "unknown log_level"},
		{"bad format", "log_format: xml", "unknown log_format"},
		{"long delimiter", "csv_settings:\n  delimiter: ab", "single character"},
		{"quote delimiter", "csv_settings:\n  delimiter: '\"'", "invalid delimiter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestCSVSettings_Comma(t *testing.T) {
	tests := map[string]rune{
		"":          ',',
		",":         ',',
		"tab":       '\t',
		"\\t":       '\t',
		"PIPE":      '|',
		";":         ';',
		"#":         '#',
		"semicolon": ';',
	}

	for delimiter, want := range tests {
		got, err := CSVSettings{Delimiter: delimiter}.Comma()
		require.NoError(t, err, delimiter)
		assert.Equal(t, want, got, delimiter)
	}
}

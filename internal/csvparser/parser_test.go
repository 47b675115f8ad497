package csvparser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/vocab-xlsx/internal/config"
	"github.com/ginjaninja78/vocab-xlsx/internal/types"
)

func defaultSettings() config.CSVSettings {
	return config.Default().CSVSettings
}

func writeFile(t *testing.T, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "german_english_vocabulary.csv")
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

func TestLoad_Vocabulary(t *testing.T) {
	path := writeFile(t, []byte("German,English\nHallo,Hello\nWelt,World\n"))

	table, err := Load(path, defaultSettings())
	require.NoError(t, err)

	assert.Equal(t, []string{"German", "English"}, table.Headers)
	assert.Equal(t, [][]string{{"Hallo", "Hello"}, {"Welt", "World"}}, table.Rows)
	assert.Equal(t, path, table.SourceFile)
}

func TestLoad_FileNotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.csv")

	_, err := Load(path, defaultSettings())
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrFileNotFound)
	assert.Contains(t, err.Error(), path)
}

func TestLoad_ShortRowIsParseError(t *testing.T) {
	path := writeFile(t, []byte("German,English\nHallo,Hello\nWelt\n"))

	_, err := Load(path, defaultSettings())
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrParse)

	var typed *types.Error
	require.ErrorAs(t, err, &typed)
	assert.Equal(t, 3, typed.Line)
	assert.Equal(t, path, typed.Path)
}

func TestParse_Cases(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantHeaders []string
		wantRows    [][]string
	}{
		{
			name:        "header only",
			input:       "German,English\n",
			wantHeaders: []string{"German", "English"},
			wantRows:    [][]string{},
		},
		{
			name:        "no trailing newline",
			input:       "German,English\nHaus,House",
			wantHeaders: []string{"German", "English"},
			wantRows:    [][]string{{"Haus", "House"}},
		},
		{
			name:        "blank lines skipped",
			input:       "German,English\n\nHaus,House\n\n",
			wantHeaders: []string{"German", "English"},
			wantRows:    [][]string{{"Haus", "House"}},
		},
		{
			name:        "quoted fields keep commas and spaces",
			input:       "German,English\n\"der, die, das\", the \n",
			wantHeaders: []string{"German", "English"},
			wantRows:    [][]string{{"der, die, das", " the "}},
		},
		{
			name:        "crlf line endings",
			input:       "German,English\r\nGrüße,Greetings\r\n",
			wantHeaders: []string{"German", "English"},
			wantRows:    [][]string{{"Grüße", "Greetings"}},
		},
		{
			name:        "header names cleaned",
			input:       " German ,,German,German.1\na,b,c,d\n",
			wantHeaders: []string{"German", "Unnamed: 1", "German.1", "German.1.1"},
			wantRows:    [][]string{{"a", "b", "c", "d"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := Parse(strings.NewReader(tt.input), defaultSettings())
			require.NoError(t, err)
			assert.Equal(t, tt.wantHeaders, table.Headers)
			assert.Equal(t, tt.wantRows, table.Rows)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty file", ""},
		{"only blank lines", "\n\n"},
		{"extra field", "German,English\nHallo,Hello,Hi\n"},
		{"bare quote", "German,English\nHa\"llo,Hello\n"},
		{"unterminated quote", "German,English\n\"Hallo,Hello\n"},
		{"invalid utf-8", "German,English\nGr\xfc\xdfe,Greetings\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input), defaultSettings())
			assert.ErrorIs(t, err, types.ErrParse)
		})
	}
}

func TestParse_StripsByteOrderMark(t *testing.T) {
	table, err := Parse(strings.NewReader("\ufeffGerman,English\nJa,Yes\n"), defaultSettings())
	require.NoError(t, err)
	assert.Equal(t, "German", table.Headers[0])
}

func TestParse_Latin1(t *testing.T) {
	settings := defaultSettings()
	settings.Encoding = "ISO-8859-1"

	table, err := Parse(strings.NewReader("German,English\nGr\xfc\xdfe,Greetings\n"), settings)
	require.NoError(t, err)
	assert.Equal(t, "Grüße", table.Rows[0][0])
}

func TestParse_Semicolon(t *testing.T) {
	settings := defaultSettings()
	settings.Delimiter = ";"

	table, err := Parse(strings.NewReader("German;English\nApfel;Apple\n"), settings)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Apfel", "Apple"}}, table.Rows)
}

func TestParse_UnknownEncoding(t *testing.T) {
	settings := defaultSettings()
	settings.Encoding = "klingon-8"

	_, err := Parse(strings.NewReader("German,English\n"), settings)
	assert.ErrorContains(t, err, "unknown encoding")
}

func TestLoad_Idempotent(t *testing.T) {
	path := writeFile(t, []byte("German,English\nHallo,Hello\nWelt,World\n"))

	first, err := Load(path, defaultSettings())
	require.NoError(t, err)
	second, err := Load(path, defaultSettings())
	require.NoError(t, err)

	assert.True(t, first.Equal(second))
}

package converter

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/ginjaninja78/vocab-xlsx/internal/config"
	"github.com/ginjaninja78/vocab-xlsx/internal/types"
)

// maxPreviewWidth is the longest cell shown in the preview, in characters.
const maxPreviewWidth = 50

// Summarize renders the run report with the default ten-row preview.
func Summarize(table *types.Table, outputPath string) string {
	return SummarizeWithPreview(table, outputPath, config.DefaultPreviewRows)
}

// SummarizeWithPreview renders the run report:
//
//	Excel file created: german_english_vocabulary.xlsx
//	Total words: 2
//	Columns: ['German', 'English']
//
//	First 10 rows:
//	   German  English
//	0   Hallo    Hello
//	1    Welt    World
func SummarizeWithPreview(table *types.Table, outputPath string, previewRows int) string {
	return renderSummary("Excel file created: "+outputPath, table, previewRows)
}

func renderSummary(headline string, table *types.Table, previewRows int) string {
	var b strings.Builder

	fmt.Fprintln(&b, headline)
	fmt.Fprintf(&b, "Total words: %d\n", table.RowCount())
	fmt.Fprintf(&b, "Columns: %s\n", quoteList(table.Headers))
	fmt.Fprintf(&b, "\nFirst %d rows:\n", previewRows)
	b.WriteString(Preview(table, previewRows))

	return b.String()
}

// Preview renders up to n rows as a right-aligned grid with a 0-based index
// column. A table without rows renders as "Empty table".
func Preview(table *types.Table, n int) string {
	head := table.Head(n)
	if head.RowCount() == 0 {
		return fmt.Sprintf("Empty table\nColumns: [%s]\n", strings.Join(table.Headers, ", "))
	}

	var b strings.Builder
	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', tabwriter.AlignRight)

	// Header
	fmt.Fprint(tw, "\t")
	for _, header := range head.Headers {
		fmt.Fprint(tw, clip(header), "\t")
	}
	fmt.Fprintln(tw)

	for i, row := range head.Rows {
		fmt.Fprint(tw, strconv.Itoa(i), "\t")
		for _, value := range row {
			fmt.Fprint(tw, clip(value), "\t")
		}
		fmt.Fprintln(tw)
	}

	_ = tw.Flush()

	// AlignRight pads on the left; drop the padding tabwriter leaves before
	// the index column so the grid starts at the margin.
	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	indent := len(lines[0])
	for _, line := range lines {
		lead := len(line) - len(strings.TrimLeft(line, " "))
		if lead < indent {
			indent = lead
		}
	}

	var out strings.Builder
	for _, line := range lines {
		out.WriteString(strings.TrimRight(line[indent:], " "))
		out.WriteString("\n")
	}
	return out.String()
}

// clip shortens long values and flattens line breaks for one-line display.
func clip(value string) string {
	value = strings.NewReplacer("\r\n", " ", "\n", " ", "\t", " ").Replace(value)
	if utf8.RuneCountInString(value) <= maxPreviewWidth {
		return value
	}
	runes := []rune(value)
	return string(runes[:maxPreviewWidth-3]) + "..."
}

// quoteList renders names as a bracketed, quoted list: ['German', 'English'].
func quoteList(names []string) string {
	quoted := make([]string, len(names))
	for i, name := range names {
		if strings.Contains(name, "'") && !strings.Contains(name, `"`) {
			quoted[i] = `"` + name + `"`
		} else {
			quoted[i] = "'" + strings.ReplaceAll(name, "'", `\'`) + "'"
		}
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

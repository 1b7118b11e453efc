// Package csvio parses and writes the CSV (and XLSX) formats the tool
// exchanges: single-row installed capacity, monthly history, and the
// two-column daily series. Parsing is deliberately lenient: ragged rows
// are allowed, unknown columns are ignored, and row-level failures are
// collected rather than aborting the import.
package csvio

import (
	"strings"
)

// Document is a parsed CSV file: one header row and zero or more data
// rows of trimmed cells. Column counts are not required to be uniform.
type Document struct {
	Header []string
	Rows   [][]string
}

// Cell returns the cell at column i of row, or "" when the row is too
// short. Downstream numeric coercion turns that into a zero.
func Cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

// Parse splits text into a header row and data rows. Lines are split on
// CRLF or LF, trimmed, and blank lines dropped. Each line is parsed with
// double-quote escaping: a doubled quote inside a quoted cell is a
// literal quote, and commas inside quotes do not delimit.
func Parse(text string) Document {
	lines := splitLines(text)
	if len(lines) == 0 {
		return Document{}
	}
	doc := Document{Header: parseLine(lines[0])}
	for _, line := range lines[1:] {
		doc.Rows = append(doc.Rows, parseLine(line))
	}
	return doc
}

// splitLines normalizes CRLF to LF, splits, trims, and drops blanks.
func splitLines(text string) []string {
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	var lines []string
	for _, l := range raw {
		l = strings.TrimSpace(l)
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// parseLine splits a single CSV line on commas outside quotes, handling
// "" escapes inside quoted cells. Cells are trimmed.
func parseLine(line string) []string {
	var cells []string
	var cur strings.Builder
	inQuotes := false

	for i := 0; i < len(line); i++ {
		ch := line[i]
		switch {
		case ch == '"':
			if inQuotes && i+1 < len(line) && line[i+1] == '"' {
				cur.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case ch == ',' && !inQuotes:
			cells = append(cells, strings.TrimSpace(cur.String()))
			cur.Reset()
		default:
			cur.WriteByte(ch)
		}
	}
	cells = append(cells, strings.TrimSpace(cur.String()))
	return cells
}

// headerReplacer folds en and em dashes to a plain hyphen before header
// comparison.
var headerReplacer = strings.NewReplacer("–", "-", "—", "-")

// NormalizeHeader prepares a header cell for case-insensitive matching:
// lowercase, runs of whitespace collapsed to one space, en/em dashes
// normalized to hyphens.
func NormalizeHeader(s string) string {
	s = headerReplacer.Replace(strings.ToLower(strings.TrimSpace(s)))
	return strings.Join(strings.Fields(s), " ")
}

// FindColumn returns the index of the header cell whose normalized form
// equals the normalized want, or -1.
func FindColumn(header []string, want string) int {
	target := NormalizeHeader(want)
	for i, cell := range header {
		if NormalizeHeader(cell) == target {
			return i
		}
	}
	return -1
}

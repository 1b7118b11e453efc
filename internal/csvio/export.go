package csvio

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/skanodia/gridcap/internal/grid"
)

// sortedDates returns the record dates ascending. Canonical ISO keys
// order correctly as strings.
func sortedDates(records grid.DailyRecords) []grid.DateKey {
	dates := make([]grid.DateKey, 0, len(records))
	for d := range records {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i] < dates[j] })
	return dates
}

// WriteDaily writes the daily export format: a "date,<valueColumn>"
// header followed by one row per record sorted ascending by date, with
// the date rendered as DD/MM/YYYY.
func WriteDaily(w io.Writer, records grid.DailyRecords, valueColumn string) error {
	if _, err := fmt.Fprintf(w, "date,%s\n", valueColumn); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, date := range sortedDates(records) {
		if _, err := fmt.Fprintf(w, "%s,%.2f\n", date.DisplaySlash(), records[date]); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	return nil
}

// WriteHistory writes monthly history rows back out in the import
// format: a Month column followed by every source column in display
// order. Used to cache bootstrapped history in the state dir.
func WriteHistory(w io.Writer, rows []HistoryRow) error {
	header := monthColumnLabel
	for _, source := range grid.Sources() {
		header += "," + quoteCell(source.String())
	}
	if _, err := fmt.Fprintln(w, header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, row := range rows {
		line := string(row.Month)
		for _, source := range grid.Sources() {
			line += fmt.Sprintf(",%.2f", row.Snapshot[source])
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	return nil
}

// monthColumnLabel is the header cell written for the month column.
const monthColumnLabel = "Month"

// quoteCell wraps a cell in quotes when it contains a comma.
func quoteCell(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] == ',' {
			return `"` + s + `"`
		}
	}
	return s
}

// WriteDailyXLSX renders the same export as a single-sheet spreadsheet.
func WriteDailyXLSX(records grid.DailyRecords, valueColumn string) ([]byte, error) {
	f := excelize.NewFile()
	sheet := "daily"
	f.SetSheetName("Sheet1", sheet)

	_ = f.SetCellValue(sheet, "A1", "date")
	_ = f.SetCellValue(sheet, "B1", valueColumn)
	for i, date := range sortedDates(records) {
		row := i + 2
		_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row), date.DisplaySlash())
		_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", row), records[date])
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("writing workbook: %w", err)
	}
	return buf.Bytes(), nil
}

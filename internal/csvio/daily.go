package csvio

import (
	"context"
	"strings"

	"github.com/oklog/ulid/v2"

	"github.com/skanodia/gridcap/internal/grid"
	"github.com/skanodia/gridcap/internal/logging"
)

// minDailyColumns is the minimum number of cells a daily row must have.
const minDailyColumns = 2

// RowError describes a single rejected row in a daily import. Row is
// 1-based over the data rows, counted after the optional header line is
// dropped.
type RowError struct {
	Row    int    `json:"row"`
	Value  string `json:"value"`
	Reason string `json:"reason"`
}

// DailyImport is the partial-success result of a daily CSV import: the
// valid records and the full list of per-row failures. BatchID is a ULID
// identifying the import for log correlation.
type DailyImport struct {
	BatchID string                   `json:"batchId"`
	Records map[grid.DateKey]float64 `json:"records"`
	Errors  []RowError               `json:"errors"`
}

// ParseDaily parses a two-column date,value CSV. Lines are split on bare
// commas with no quote handling; the daily format never quotes.
// A header line is dropped when its first cell contains "date"
// case-insensitively. Duplicate dates are last-write-wins. The caller
// always receives both the valid records and the error list; a bad row
// never aborts the import.
func ParseDaily(ctx context.Context, text string) DailyImport {
	log := logging.FromContext(ctx)
	result := DailyImport{
		BatchID: ulid.Make().String(),
		Records: make(map[grid.DateKey]float64),
	}

	lines := splitLines(text)
	start := 0
	if len(lines) > 0 {
		first := strings.Split(lines[0], ",")
		if strings.Contains(strings.ToLower(Cell(first, 0)), "date") {
			start = 1
		}
	}

	// Row numbers are 1-based over the data rows that remain after the
	// optional header is dropped.
	for i := start; i < len(lines); i++ {
		rowNum := i - start + 1
		cells := strings.Split(lines[i], ",")
		if len(cells) < minDailyColumns {
			result.Errors = append(result.Errors, RowError{
				Row: rowNum, Value: lines[i], Reason: "expected date,value",
			})
			continue
		}

		dateCell := strings.TrimSpace(cells[0])
		key, err := grid.ParseDateKey(dateCell)
		if err != nil {
			result.Errors = append(result.Errors, RowError{
				Row: rowNum, Value: dateCell, Reason: "invalid date",
			})
			continue
		}

		// The value may itself contain thousands commas, so everything
		// after the first comma is rejoined before numeric parsing.
		valueCell := strings.TrimSpace(strings.Join(cells[1:], ","))
		value, err := grid.ParseNumber(valueCell)
		if err != nil {
			result.Errors = append(result.Errors, RowError{
				Row: rowNum, Value: valueCell, Reason: "invalid number",
			})
			continue
		}

		result.Records[key] = value
	}

	log.Debug().
		Ctx(ctx).
		Str("component", "csvio").
		Str("operation", "parse_daily").
		Str("batch_id", result.BatchID).
		Int("record_count", len(result.Records)).
		Int("error_count", len(result.Errors)).
		Msg("daily import parsed")

	return result
}

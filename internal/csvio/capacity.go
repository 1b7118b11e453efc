package csvio

import (
	"context"
	"fmt"
	"sort"

	"github.com/skanodia/gridcap/internal/grid"
	"github.com/skanodia/gridcap/internal/logging"
)

// monthColumn is the normalized name of the required history column.
const monthColumn = "month"

// ParseInstalled reads the single-row installed-capacity format: a
// header of source names matched case-sensitively against the canonical
// SourceKey labels, and one data row of values. A missing column reads
// as zero through safe-number coercion.
func ParseInstalled(doc Document) grid.CapacitySnapshot {
	snapshot := make(grid.CapacitySnapshot, len(grid.Sources()))

	var row []string
	if len(doc.Rows) > 0 {
		row = doc.Rows[0]
	}

	for _, source := range grid.Sources() {
		col := -1
		for i, cell := range doc.Header {
			if cell == source.String() {
				col = i
				break
			}
		}
		snapshot[source] = grid.SafeNum(grid.ParseNumberOr(Cell(row, col), 0))
	}
	return snapshot
}

// HistoryRow is one monthly snapshot parsed from the history CSV.
type HistoryRow struct {
	Month    grid.MonthKey
	Snapshot grid.CapacitySnapshot
}

// ParseHistory reads the monthly history format. The header must contain
// a "month" column (case- and whitespace-insensitive, dashes
// normalized); any subset of the eight source columns may be present,
// matched with the same normalization. Rows whose month cell does not
// parse are silently skipped. The result is sorted ascending by month.
func ParseHistory(ctx context.Context, doc Document) ([]HistoryRow, error) {
	log := logging.FromContext(ctx)

	monthCol := FindColumn(doc.Header, monthColumn)
	if monthCol < 0 {
		return nil, fmt.Errorf("history CSV is missing a %q column", monthColumn)
	}

	sourceCols := make(map[grid.SourceKey]int, len(grid.Sources()))
	for _, source := range grid.Sources() {
		sourceCols[source] = FindColumn(doc.Header, source.String())
	}

	var rows []HistoryRow
	skipped := 0
	for _, raw := range doc.Rows {
		month, ok := grid.ParseMonthKey(Cell(raw, monthCol))
		if !ok {
			skipped++
			continue
		}
		snapshot := make(grid.CapacitySnapshot, len(grid.Sources()))
		for source, col := range sourceCols {
			snapshot[source] = grid.SafeNum(grid.ParseNumberOr(Cell(raw, col), 0))
		}
		rows = append(rows, HistoryRow{Month: month, Snapshot: snapshot})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return grid.CompareMonthKeys(rows[i].Month, rows[j].Month) < 0
	})

	log.Debug().
		Ctx(ctx).
		Str("component", "csvio").
		Str("operation", "parse_history").
		Int("row_count", len(rows)).
		Int("skipped_rows", skipped).
		Msg("history parsed")

	return rows, nil
}

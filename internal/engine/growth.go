package engine

import (
	"sort"

	"github.com/skanodia/gridcap/internal/grid"
)

// percentScale converts a ratio to a percentage.
const percentScale = 100

// GrowthPercent computes (curr-prev)/prev*100. The result is nil when
// prev is zero: division by zero must surface as "undefined", never as
// Inf or NaN.
func GrowthPercent(curr, prev float64) *float64 {
	if prev == 0 {
		return nil
	}
	pct := (curr - prev) / prev * percentScale
	return &pct
}

// YoYGrowth computes the year-over-year growth percentage for the record
// at date d. The prior point is the record at the same month and day
// with the year decremented by exactly one, not 365 days earlier. The
// result is nil when d has no record, when the prior-year date does not
// exist (Feb 29), or when no record exists at that exact date.
func YoYGrowth(records grid.DailyRecords, d grid.DateKey) *float64 {
	curr, ok := records[d]
	if !ok {
		return nil
	}
	prevKey, ok := d.YearBefore()
	if !ok {
		return nil
	}
	prev, ok := records[prevKey]
	if !ok {
		return nil
	}
	return GrowthPercent(curr, prev)
}

// SeriesPoint is one row of the daily time series with its derived
// year-over-year growth. YoY is nil when undefined.
type SeriesPoint struct {
	Date  grid.DateKey `json:"date"`
	Value float64      `json:"value"`
	YoY   *float64     `json:"yoy,omitempty"`
}

// DailySeries returns the records as date-ascending points with YoY
// growth attached. A non-positive limit returns the whole series;
// otherwise only the latest limit points are kept.
func DailySeries(records grid.DailyRecords, limit int) []SeriesPoint {
	dates := make([]grid.DateKey, 0, len(records))
	for d := range records {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i] < dates[j] })

	if limit > 0 && len(dates) > limit {
		dates = dates[len(dates)-limit:]
	}

	points := make([]SeriesPoint, 0, len(dates))
	for _, d := range dates {
		points = append(points, SeriesPoint{
			Date:  d,
			Value: records[d],
			YoY:   YoYGrowth(records, d),
		})
	}
	return points
}

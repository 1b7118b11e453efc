// Package engine holds the pure aggregation logic: source sums, rated
// capacity, net additions between monthly snapshots, year-over-year
// growth, and chart-axis domains. Everything here is deterministic and
// side-effect free; persistence and rendering live elsewhere.
package engine

import (
	"math"

	"github.com/skanodia/gridcap/internal/grid"
)

// SumSources folds the full source set, coercing every value through
// SafeNum before adding. Missing or malformed entries contribute zero,
// so a sum is never NaN.
func SumSources(m map[grid.SourceKey]float64) float64 {
	var total float64
	for _, source := range grid.Sources() {
		total += grid.SafeNum(m[source])
	}
	return total
}

// RatedResult is the derived rated capacity: per-source values already
// rounded to two decimals, and a total that is the sum of those rounded
// values. The total is deliberately not the rounding of the unrounded
// sum; callers must reproduce this order of operations to match totals.
type RatedResult struct {
	PerSource map[grid.SourceKey]float64 `json:"perSource"`
	Total     float64                    `json:"total"`
}

// RatedCapacity computes installed * plf/100 per source, rounding each
// value to two decimals before totalling.
func RatedCapacity(installed grid.CapacitySnapshot, plf grid.PLF) RatedResult {
	result := RatedResult{PerSource: make(map[grid.SourceKey]float64, len(grid.Sources()))}
	for _, source := range grid.Sources() {
		rated := grid.Round2(grid.SafeNum(installed[source]) * grid.SafeNum(plf[source]) / 100)
		result.PerSource[source] = rated
		result.Total += rated
	}
	result.Total = grid.Round2(result.Total)
	return result
}

// NetAdditionResult is the capacity delta between two monthly snapshots.
// When either snapshot is absent every value is zero and BothPresent is
// false, letting callers distinguish "no data" from a computed zero.
type NetAdditionResult struct {
	Start       grid.MonthKey              `json:"start"`
	End         grid.MonthKey              `json:"end"`
	PerSource   map[grid.SourceKey]float64 `json:"perSource"`
	Total       float64                    `json:"total"`
	BothPresent bool                       `json:"bothPresent"`
}

// NetAddition computes end minus start per source and in total, rounded
// to two decimals.
func NetAddition(history map[grid.MonthKey]grid.CapacitySnapshot, start, end grid.MonthKey) NetAdditionResult {
	result := NetAdditionResult{
		Start:     start,
		End:       end,
		PerSource: make(map[grid.SourceKey]float64, len(grid.Sources())),
	}
	startSnap, startOK := history[start]
	endSnap, endOK := history[end]
	if !startOK || !endOK {
		for _, source := range grid.Sources() {
			result.PerSource[source] = 0
		}
		return result
	}

	result.BothPresent = true
	for _, source := range grid.Sources() {
		delta := grid.Round2(grid.SafeNum(endSnap[source]) - grid.SafeNum(startSnap[source]))
		result.PerSource[source] = delta
	}
	result.Total = grid.Round2(grid.SafeNum(SumSources(endSnap)) - grid.SafeNum(SumSources(startSnap)))
	return result
}

// Domain is a padded numeric axis range.
type Domain struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// AxisDomain computes a non-degenerate axis range for the given optional
// values. Nil and non-finite entries are filtered out; when nothing
// remains the domain is nil. The pad is max(minAbsPad, (max-min)*padPct),
// and when min equals max, max(minAbsPad, |min|*padPct), so even a
// constant series yields a non-zero-width domain.
func AxisDomain(values []*float64, minAbsPad, padPct float64) *Domain {
	var finite []float64
	for _, v := range values {
		if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
			continue
		}
		finite = append(finite, *v)
	}
	if len(finite) == 0 {
		return nil
	}

	lo, hi := finite[0], finite[0]
	for _, v := range finite[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	var pad float64
	if lo == hi {
		pad = math.Max(minAbsPad, math.Abs(lo)*padPct)
	} else {
		pad = math.Max(minAbsPad, (hi-lo)*padPct)
	}
	return &Domain{Min: lo - pad, Max: hi + pad}
}

package grid

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// round2Scale is the multiplier used for two-decimal rounding.
const round2Scale = 100

// Round2 rounds x to two decimals with halves away from zero, matching
// round(x*100)/100 semantics for negative inputs as well.
func Round2(x float64) float64 {
	return math.Round(x*round2Scale) / round2Scale
}

// SafeNum coerces non-finite values to zero. Aggregations apply this
// before summing so malformed input never propagates as NaN. This is a
// deliberate lenient-ingestion policy, not silent data loss: strict
// callers use ParseNumber and surface the failure instead.
func SafeNum(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return x
}

// ParseNumber parses a decimal number after stripping thousands-separator
// commas. It is the strict variant: a non-numeric or non-finite value is
// an error.
func ParseNumber(s string) (float64, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if cleaned == "" {
		return 0, fmt.Errorf("empty numeric value")
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing number %q: %w", s, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("non-finite number %q", s)
	}
	return v, nil
}

// ParseNumberOr parses like ParseNumber but returns def on failure.
func ParseNumberOr(s string, def float64) float64 {
	v, err := ParseNumber(s)
	if err != nil {
		return def
	}
	return v
}

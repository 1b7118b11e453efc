package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skanodia/gridcap/internal/grid"
)

func TestSumSources(t *testing.T) {
	snap := grid.CapacitySnapshot{
		grid.SourceCoal:  210.5,
		grid.SourceSolar: 94.2,
		grid.SourceWind:  math.NaN(),
	}
	assert.InDelta(t, 304.7, SumSources(snap), 1e-9)
}

func TestRatedCapacity(t *testing.T) {
	installed := grid.CapacitySnapshot{grid.SourceCoal: 100}
	plf := grid.PLF{grid.SourceCoal: 80}

	result := RatedCapacity(installed, plf)

	assert.InDelta(t, 80.00, result.PerSource[grid.SourceCoal], 1e-9)
	assert.InDelta(t, 80.00, result.Total, 1e-9)
	assert.Zero(t, result.PerSource[grid.SourceSolar])
}

func TestRatedCapacity_TotalSumsRoundedValues(t *testing.T) {
	// Each source rounds to 0.00 before totalling, so the total is 0.00
	// even though the unrounded sum would round to 0.01.
	installed := grid.CapacitySnapshot{grid.SourceSolar: 0.4, grid.SourceWind: 0.4}
	plf := grid.PLF{grid.SourceSolar: 1, grid.SourceWind: 1}

	result := RatedCapacity(installed, plf)

	assert.Zero(t, result.PerSource[grid.SourceSolar])
	assert.Zero(t, result.Total)
}

func TestRatedCapacity_NonFiniteInputs(t *testing.T) {
	installed := grid.CapacitySnapshot{grid.SourceCoal: math.Inf(1)}
	plf := grid.PLF{grid.SourceCoal: math.NaN()}

	result := RatedCapacity(installed, plf)

	assert.Zero(t, result.PerSource[grid.SourceCoal])
	assert.Zero(t, result.Total)
}

func TestNetAddition(t *testing.T) {
	history := map[grid.MonthKey]grid.CapacitySnapshot{
		"01/2024": {grid.SourceCoal: 210.5, grid.SourceSolar: 70.3},
		"04/2024": {grid.SourceCoal: 212.0, grid.SourceSolar: 80.1},
	}

	result := NetAddition(history, "01/2024", "04/2024")

	require.True(t, result.BothPresent)
	assert.InDelta(t, 1.5, result.PerSource[grid.SourceCoal], 1e-9)
	assert.InDelta(t, 9.8, result.PerSource[grid.SourceSolar], 1e-9)
	assert.InDelta(t, 11.3, result.Total, 1e-9)
}

func TestNetAddition_MissingSnapshot(t *testing.T) {
	history := map[grid.MonthKey]grid.CapacitySnapshot{
		"01/2024": {grid.SourceCoal: 210.5},
	}

	result := NetAddition(history, "01/2024", "06/2024")

	assert.False(t, result.BothPresent)
	assert.Zero(t, result.Total)
	assert.Zero(t, result.PerSource[grid.SourceCoal])
}

func TestAxisDomain(t *testing.T) {
	v := func(x float64) *float64 { return &x }

	tests := []struct {
		name   string
		values []*float64
		want   *Domain
	}{
		{
			name:   "constant series pads by pct of magnitude",
			values: []*float64{v(50)},
			want:   &Domain{Min: 47.5, Max: 52.5},
		},
		{
			name:   "spread below min pad",
			values: []*float64{v(100), v(101)},
			want:   &Domain{Min: 99, Max: 102},
		},
		{
			name:   "spread above min pad",
			values: []*float64{v(0), v(100)},
			want:   &Domain{Min: -5, Max: 105},
		},
		{
			name:   "nils and non-finites filtered",
			values: []*float64{nil, v(math.NaN()), v(math.Inf(1)), v(50)},
			want:   &Domain{Min: 47.5, Max: 52.5},
		},
		{
			name:   "all filtered",
			values: []*float64{nil, v(math.NaN())},
			want:   nil,
		},
		{
			name:   "empty",
			values: nil,
			want:   nil,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := AxisDomain(tc.values, 1.0, 0.05)
			if tc.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, tc.want.Min, got.Min, 1e-9)
			assert.InDelta(t, tc.want.Max, got.Max, 1e-9)
		})
	}
}

func TestAxisDomain_ZeroConstantUsesMinPad(t *testing.T) {
	zero := 0.0
	got := AxisDomain([]*float64{&zero}, 1.0, 0.05)
	require.NotNil(t, got)
	assert.InDelta(t, -1, got.Min, 1e-9)
	assert.InDelta(t, 1, got.Max, 1e-9)
}

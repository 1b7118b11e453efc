package grid

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSources_Order(t *testing.T) {
	labels := make([]string, 0, len(Sources()))
	for _, s := range Sources() {
		labels = append(labels, s.String())
	}
	assert.Equal(t, []string{
		"Coal", "Oil & Gas", "Nuclear", "Hydro",
		"Solar", "Wind", "Small-Hydro", "Bio Power",
	}, labels)
}

func TestParseSource(t *testing.T) {
	key, ok := ParseSource("Small-Hydro")
	require.True(t, ok)
	assert.Equal(t, SourceSmallHydro, key)

	// Matching is exact, not case-folded.
	_, ok = ParseSource("small-hydro")
	assert.False(t, ok)
	_, ok = ParseSource("Geothermal")
	assert.False(t, ok)
}

func TestCapacitySnapshot_JSONRoundTrip(t *testing.T) {
	snap := CapacitySnapshot{
		SourceSolar:  94.2,
		SourceOilGas: 24.8,
	}

	data, err := json.Marshal(snap)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"Solar"`)

	var back CapacitySnapshot
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, snap, back)
}

func TestSourceKey_UnmarshalText_Unknown(t *testing.T) {
	var s SourceKey
	assert.Error(t, s.UnmarshalText([]byte("Fusion")))
}

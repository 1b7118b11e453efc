// Package grid defines the core value types of the capacity data model:
// generation sources, date and month keys, capacity snapshots, and the
// numeric coercion rules applied during ingestion.
package grid

import "fmt"

// SourceKey identifies a generation source. The set is closed and the
// declaration order is the display order.
//
//nolint:recvcheck // UnmarshalText requires pointer receiver; String/MarshalText use value receivers.
type SourceKey int

const (
	// SourceCoal is coal-fired thermal generation.
	SourceCoal SourceKey = iota
	// SourceOilGas is oil and gas fired generation.
	SourceOilGas
	// SourceNuclear is nuclear generation.
	SourceNuclear
	// SourceHydro is large hydro generation.
	SourceHydro
	// SourceSolar is solar generation.
	SourceSolar
	// SourceWind is wind generation.
	SourceWind
	// SourceSmallHydro is small hydro generation.
	SourceSmallHydro
	// SourceBioPower is biomass and waste-to-energy generation.
	SourceBioPower
)

// sourceLabels maps each SourceKey to its canonical label. These strings
// are also the exact column headers expected in capacity CSV files.
var sourceLabels = map[SourceKey]string{
	SourceCoal:       "Coal",
	SourceOilGas:     "Oil & Gas",
	SourceNuclear:    "Nuclear",
	SourceHydro:      "Hydro",
	SourceSolar:      "Solar",
	SourceWind:       "Wind",
	SourceSmallHydro: "Small-Hydro",
	SourceBioPower:   "Bio Power",
}

// Sources returns all source keys in display order.
func Sources() []SourceKey {
	return []SourceKey{
		SourceCoal, SourceOilGas, SourceNuclear, SourceHydro,
		SourceSolar, SourceWind, SourceSmallHydro, SourceBioPower,
	}
}

// String returns the canonical label for the source.
func (s SourceKey) String() string {
	if label, ok := sourceLabels[s]; ok {
		return label
	}
	return fmt.Sprintf("unknown(%d)", int(s))
}

// ParseSource resolves a canonical label back to its SourceKey. Matching
// is exact; header normalization is the caller's concern.
func ParseSource(label string) (SourceKey, bool) {
	for _, key := range Sources() {
		if sourceLabels[key] == label {
			return key, true
		}
	}
	return 0, false
}

// MarshalText implements encoding.TextMarshaler so SourceKey can be used
// as a JSON object key in persisted snapshots.
func (s SourceKey) MarshalText() ([]byte, error) {
	label, ok := sourceLabels[s]
	if !ok {
		return nil, fmt.Errorf("unknown source key: %d", int(s))
	}
	return []byte(label), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *SourceKey) UnmarshalText(text []byte) error {
	key, ok := ParseSource(string(text))
	if !ok {
		return fmt.Errorf("unknown source label: %q", string(text))
	}
	*s = key
	return nil
}

// CapacitySnapshot maps each source to a capacity value in GW. Missing
// sources read as zero through SafeNum at aggregation time.
type CapacitySnapshot map[SourceKey]float64

// PLF maps each source to a plant load factor percentage. Values outside
// [0,100] are accepted and simply produce out-of-range rated capacity.
type PLF map[SourceKey]float64

// DailyRecords maps an ISO date key to a daily generation value. Writes
// are last-write-wins per date.
type DailyRecords map[DateKey]float64

package csvio

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/skanodia/gridcap/internal/grid"
)

func TestWriteDaily(t *testing.T) {
	records := grid.DailyRecords{
		"2025-12-20": 265.1,
		"2025-12-18": 261.72,
	}

	var buf bytes.Buffer
	require.NoError(t, WriteDaily(&buf, records, "generation_mu"))

	assert.Equal(t,
		"date,generation_mu\n18/12/2025,261.72\n20/12/2025,265.10\n",
		buf.String())
}

func TestWriteDaily_RoundTrip(t *testing.T) {
	records := grid.DailyRecords{
		"2025-12-18": 261.72,
		"2025-12-19": 1234.56,
	}

	var buf bytes.Buffer
	require.NoError(t, WriteDaily(&buf, records, "generation_mu"))

	result := ParseDaily(context.Background(), buf.String())
	assert.Empty(t, result.Errors)
	assert.Equal(t, map[grid.DateKey]float64{
		"2025-12-18": 261.72,
		"2025-12-19": 1234.56,
	}, result.Records)
}

func TestWriteHistory_RoundTrip(t *testing.T) {
	rows := []HistoryRow{
		{Month: "01/2024", Snapshot: fullSnapshot(210.5)},
		{Month: "04/2024", Snapshot: fullSnapshot(215.25)},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteHistory(&buf, rows))

	back, err := ParseHistory(context.Background(), Parse(buf.String()))
	require.NoError(t, err)
	require.Len(t, back, 2)
	assert.Equal(t, grid.MonthKey("01/2024"), back[0].Month)
	assert.InDelta(t, 215.25, back[1].Snapshot[grid.SourceOilGas], 1e-9)
}

func TestWriteDailyXLSX(t *testing.T) {
	records := grid.DailyRecords{"2025-12-18": 261.72}

	data, err := WriteDailyXLSX(records, "generation_mu")
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	date, err := f.GetCellValue("daily", "A2")
	require.NoError(t, err)
	assert.Equal(t, "18/12/2025", date)
}

// fullSnapshot fills every source with the same value.
func fullSnapshot(v float64) grid.CapacitySnapshot {
	snap := make(grid.CapacitySnapshot)
	for _, source := range grid.Sources() {
		snap[source] = v
	}
	return snap
}

package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateKey_FormatEquivalence(t *testing.T) {
	// Every accepted shape of the same calendar date must yield the
	// identical canonical key.
	inputs := []string{"18/12/2025", "18-12-2025", "2025-12-18"}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			key, err := ParseDateKey(input)
			require.NoError(t, err)
			assert.Equal(t, DateKey("2025-12-18"), key)
		})
	}
}

func TestParseDateKey_SingleDigitFields(t *testing.T) {
	key, err := ParseDateKey("5/3/2024")
	require.NoError(t, err)
	assert.Equal(t, DateKey("2024-03-05"), key)
}

func TestParseDateKey_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "overflow day", input: "31-02-2024"},
		{name: "month 13", input: "20/13/2025"},
		{name: "day zero", input: "00/05/2024"},
		{name: "free text", input: "bad"},
		{name: "empty", input: ""},
		{name: "us format", input: "12/31/2025"},
		{name: "two digit year", input: "18/12/25"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseDateKey(tc.input)
			assert.Error(t, err)
		})
	}
}

func TestParseDateKey_LeapDay(t *testing.T) {
	key, err := ParseDateKey("29/02/2024")
	require.NoError(t, err)
	assert.Equal(t, DateKey("2024-02-29"), key)

	_, err = ParseDateKey("29/02/2023")
	assert.Error(t, err)
}

func TestDateKey_Display(t *testing.T) {
	key := DateKey("2025-12-18")
	assert.Equal(t, "18/12/2025", key.DisplaySlash())
	assert.Equal(t, "18-12-2025", key.DisplayDash())
}

func TestDateKey_DisplayPlaceholder(t *testing.T) {
	// Invalid or empty keys render the placeholder instead of failing.
	assert.Equal(t, DatePlaceholder, DateKey("").DisplaySlash())
	assert.Equal(t, DatePlaceholder, DateKey("not-a-date").DisplaySlash())
	assert.Equal(t, DatePlaceholder, DateKey("2024-02-31").DisplayDash())
}

func TestDateKey_YearBefore(t *testing.T) {
	prev, ok := DateKey("2025-12-20").YearBefore()
	require.True(t, ok)
	assert.Equal(t, DateKey("2024-12-20"), prev)

	// Feb 29 has no counterpart in a non-leap prior year.
	_, ok = DateKey("2024-02-29").YearBefore()
	assert.False(t, ok)
}

func TestDateKey_Ordering(t *testing.T) {
	// Canonical keys compare correctly as plain strings.
	assert.Less(t, DateKey("2024-12-31"), DateKey("2025-01-01"))
	assert.Less(t, DateKey("2025-01-09"), DateKey("2025-01-10"))
}

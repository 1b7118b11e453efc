package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const historyFixture = "Month,Coal,Solar\n" +
	"01/2024,210.5,70.3\n" +
	"04/2024,212.0,80.1\n"

func writeHistoryFixture(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "history.csv")
	require.NoError(t, os.WriteFile(path, []byte(historyFixture), 0600))
	return path
}

func TestHistoryImportAndShow(t *testing.T) {
	dir := t.TempDir()
	csvPath := writeHistoryFixture(t, dir)

	out, err := execute(t, dir, "history", "import", "--csv", csvPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 2 month(s)")

	// After import the cached copy serves commands without --csv.
	out, err = execute(t, dir, "history", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "01/2024")
	assert.Contains(t, out, "280.80 GW")
	assert.Contains(t, out, "292.10 GW")
}

func TestHistoryImport_NoParseableMonths(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "history.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("Month,Coal\njunk,1\n"), 0600))

	_, err := execute(t, dir, "history", "import", "--csv", csvPath)
	assert.Error(t, err)
}

func TestHistoryNet(t *testing.T) {
	dir := t.TempDir()
	csvPath := writeHistoryFixture(t, dir)

	out, err := execute(t, dir, "history", "net",
		"--csv", csvPath, "--from", "01/2024", "--to", "04/2024")
	require.NoError(t, err)

	assert.Contains(t, out, "Coal")
	assert.Contains(t, out, "1.50")
	assert.Contains(t, out, "9.80")
	assert.Contains(t, out, "11.30")
}

func TestHistoryNet_SnapsToAvailableMonths(t *testing.T) {
	dir := t.TempDir()
	csvPath := writeHistoryFixture(t, dir)

	// 06/2024 snaps back to 04/2024 and 02/2024 snaps back to 01/2024.
	out, err := execute(t, dir, "history", "net",
		"--csv", csvPath, "--from", "02/2024", "--to", "06/2024")
	require.NoError(t, err)

	assert.Contains(t, out, "01/2024")
	assert.Contains(t, out, "04/2024")
	assert.Contains(t, out, "11.30")
}

func TestHistoryNet_DefaultWindow(t *testing.T) {
	dir := t.TempDir()
	csvPath := writeHistoryFixture(t, dir)

	// The default window reaches 12 months before the latest month,
	// which snaps to the earliest available.
	out, err := execute(t, dir, "history", "net", "--csv", csvPath)
	require.NoError(t, err)
	assert.Contains(t, out, "01/2024")
	assert.Contains(t, out, "04/2024")
}

func TestHistoryNet_InvalidMonthFlags(t *testing.T) {
	dir := t.TempDir()
	csvPath := writeHistoryFixture(t, dir)

	_, err := execute(t, dir, "history", "net", "--csv", csvPath, "--to", "13/2024")
	assert.Error(t, err)

	_, err = execute(t, dir, "history", "net", "--csv", csvPath, "--from", "junk")
	assert.Error(t, err)
}

func TestHistoryShow_MissingCache(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, dir, "history", "show")
	assert.Error(t, err)
}

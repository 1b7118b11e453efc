package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	cfg := New()

	assert.Equal(t, CurrentSchemaVersion, cfg.SchemaVersion)
	assert.Equal(t, "generation_mu", cfg.ValueColumn)
	assert.InDelta(t, 1.0, cfg.Axis.MinAbsPad, 1e-9)
	assert.InDelta(t, 0.05, cfg.Axis.PadPct, 1e-9)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.NotEmpty(t, cfg.StateDir)
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "generation_mu", cfg.ValueColumn)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `schema_version: "1.2.0"
value_column: net_generation
bootstrap:
  installed_url: https://example.com/installed.csv
axis:
  pad_pct: 0.1
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "net_generation", cfg.ValueColumn)
	assert.Equal(t, "https://example.com/installed.csv", cfg.Bootstrap.InstalledURL)
	assert.InDelta(t, 0.1, cfg.Axis.PadPct, 1e-9)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// Omitted fields keep their defaults.
	assert.InDelta(t, 1.0, cfg.Axis.MinAbsPad, 1e-9)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoad_SchemaVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
		wantErr bool
	}{
		{name: "same major", version: "1.9.3"},
		{name: "newer major", version: "2.0.0", wantErr: true},
		{name: "garbage", version: "not-a-version", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			content := "schema_version: \"" + tc.version + "\"\n"
			require.NoError(t, os.WriteFile(path, []byte(content), 0600))

			_, err := Load(path)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("value_column: [unclosed"), 0600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := New()
	cfg.ValueColumn = "demand_mu"
	cfg.Bootstrap.HistoryURL = "https://example.com/history.csv"
	require.NoError(t, cfg.Save(path))

	back, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "demand_mu", back.ValueColumn)
	assert.Equal(t, "https://example.com/history.csv", back.Bootstrap.HistoryURL)
}

func TestGlobalConfig(t *testing.T) {
	original := GetGlobalConfig()
	defer SetGlobalConfig(original)

	cfg := New()
	cfg.ValueColumn = "custom"
	SetGlobalConfig(cfg)
	assert.Equal(t, "custom", GetGlobalConfig().ValueColumn)
}

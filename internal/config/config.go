// Package config loads the gridcap configuration file and exposes it as
// a process-wide value. Configuration is optional: every field has a
// default and a missing or unreadable file silently yields the defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"
)

// CurrentSchemaVersion is the config schema this build writes and
// understands. Files declaring a different major version are rejected.
const CurrentSchemaVersion = "1.0.0"

// Defaults applied when the config file omits a value.
const (
	defaultValueColumn = "generation_mu"
	defaultMinAbsPad   = 1.0
	defaultPadPct      = 0.05
	defaultLogLevel    = "info"
	defaultLogFormat   = "console"
)

// BootstrapConfig holds the seed CSV locations.
type BootstrapConfig struct {
	InstalledURL string `yaml:"installed_url"`
	HistoryURL   string `yaml:"history_url"`
}

// AxisConfig holds the chart-axis padding knobs.
type AxisConfig struct {
	MinAbsPad float64 `yaml:"min_abs_pad"`
	PadPct    float64 `yaml:"pad_pct"`
}

// LoggingConfig holds the logging section.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// Config is the full configuration document.
type Config struct {
	SchemaVersion string          `yaml:"schema_version"`
	StateDir      string          `yaml:"state_dir"`
	ValueColumn   string          `yaml:"value_column"`
	Bootstrap     BootstrapConfig `yaml:"bootstrap"`
	Axis          AxisConfig      `yaml:"axis"`
	Logging       LoggingConfig   `yaml:"logging"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		SchemaVersion: CurrentSchemaVersion,
		StateDir:      DefaultStateDir(),
		ValueColumn:   defaultValueColumn,
		Axis:          AxisConfig{MinAbsPad: defaultMinAbsPad, PadPct: defaultPadPct},
		Logging:       LoggingConfig{Level: defaultLogLevel, Format: defaultLogFormat},
	}
}

// DefaultStateDir is ~/.gridcap, falling back to the working directory
// when the home directory cannot be resolved.
func DefaultStateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".gridcap"
	}
	return filepath.Join(home, ".gridcap")
}

// DefaultPath is the default config file location inside the state dir.
func DefaultPath() string {
	return filepath.Join(DefaultStateDir(), "config.yaml")
}

// Load reads the config file at path over the defaults. A missing file
// is not an error. A file declaring an incompatible schema major
// version is rejected so newer-format files are not half-read.
func Load(path string) (*Config, error) {
	cfg := New()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := checkSchemaVersion(cfg.SchemaVersion); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return cfg, nil
}

// checkSchemaVersion accepts any version with the same major as
// CurrentSchemaVersion. An empty version is treated as current.
func checkSchemaVersion(declared string) error {
	if declared == "" {
		return nil
	}
	have, err := semver.NewVersion(declared)
	if err != nil {
		return fmt.Errorf("invalid schema_version %q: %w", declared, err)
	}
	want := semver.MustParse(CurrentSchemaVersion)
	if have.Major() != want.Major() {
		return fmt.Errorf("unsupported schema_version %q (this build supports %d.x)", declared, want.Major())
	}
	return nil
}

// applyDefaults fills zero-valued fields after unmarshalling.
func (c *Config) applyDefaults() {
	if c.StateDir == "" {
		c.StateDir = DefaultStateDir()
	}
	if c.ValueColumn == "" {
		c.ValueColumn = defaultValueColumn
	}
	if c.Axis.MinAbsPad == 0 {
		c.Axis.MinAbsPad = defaultMinAbsPad
	}
	if c.Axis.PadPct == 0 {
		c.Axis.PadPct = defaultPadPct
	}
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
}

// Save writes the config as YAML to path, creating the directory if
// needed.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Global config, set once during CLI startup and read by commands.
var (
	globalConfig   = New() //nolint:gochecknoglobals // Set once at startup, read by commands
	globalConfigMu sync.RWMutex //nolint:gochecknoglobals // Protects globalConfig
)

// SetGlobalConfig installs cfg as the process-wide configuration.
func SetGlobalConfig(cfg *Config) {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
}

// GetGlobalConfig returns the process-wide configuration.
func GetGlobalConfig() *Config {
	globalConfigMu.RLock()
	defer globalConfigMu.RUnlock()
	return globalConfig
}

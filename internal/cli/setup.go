package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/skanodia/gridcap/internal/config"
	"github.com/skanodia/gridcap/internal/grid"
	"github.com/skanodia/gridcap/internal/store"
)

// Output format names shared by every command with an --output flag.
const (
	outputFormatTable = "table"
	outputFormatJSON  = "json"
)

// openStore opens the file store rooted at the configured state
// directory.
func openStore(*cobra.Command) (store.Store, error) {
	cfg := config.GetGlobalConfig()
	s, err := store.NewFileStore(cfg.StateDir)
	if err != nil {
		return nil, fmt.Errorf("opening state dir: %w", err)
	}
	return s, nil
}

// keyValueParts is the expected number of parts in a source=value pair.
const keyValueParts = 2

// parseSourceValues parses source=value arguments into a per-source map.
// Validation is strict: an unknown source or a non-numeric value fails
// the whole call so the command has no partial effect.
func parseSourceValues(args []string) (map[grid.SourceKey]float64, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("expected at least one source=value argument")
	}
	values := make(map[grid.SourceKey]float64, len(args))
	for _, arg := range args {
		parts := strings.SplitN(arg, "=", keyValueParts)
		if len(parts) != keyValueParts {
			return nil, fmt.Errorf("invalid argument %q: expected source=value", arg)
		}
		source, ok := grid.ParseSource(strings.TrimSpace(parts[0]))
		if !ok {
			return nil, fmt.Errorf("unknown source %q (known: %s)", parts[0], sourceList())
		}
		value, err := grid.ParseNumber(parts[1])
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: %w", source, err)
		}
		values[source] = value
	}
	return values, nil
}

// sourceList returns the canonical source labels for error messages.
func sourceList() string {
	labels := make([]string, 0, len(grid.Sources()))
	for _, s := range grid.Sources() {
		labels = append(labels, s.String())
	}
	return strings.Join(labels, ", ")
}

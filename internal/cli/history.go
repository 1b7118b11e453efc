package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/skanodia/gridcap/internal/config"
	"github.com/skanodia/gridcap/internal/csvio"
	"github.com/skanodia/gridcap/internal/engine"
	"github.com/skanodia/gridcap/internal/grid"
	"github.com/skanodia/gridcap/internal/logging"
)

// historyCacheFile is where the bootstrap command caches the downloaded
// history CSV inside the state dir; history commands default to it.
const historyCacheFile = "history.csv"

// defaultNetMonths is the default window for "history net".
const defaultNetMonths = 12

// newHistoryCmd creates the history command group.
func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "history", Short: "Monthly capacity history commands"}
	cmd.AddCommand(NewHistoryImportCmd(), NewHistoryShowCmd(), NewHistoryNetCmd())
	return cmd
}

// historyCSVPath resolves the history CSV location: the --csv flag when
// given, else the cached bootstrap copy in the state dir.
func historyCSVPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return filepath.Join(config.GetGlobalConfig().StateDir, historyCacheFile)
}

// loadHistory reads and parses the history CSV at path.
func loadHistory(cmd *cobra.Command, path string) ([]csvio.HistoryRow, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading history CSV: %w", err)
	}
	rows, err := csvio.ParseHistory(cmd.Context(), csvio.Parse(string(data)))
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// NewHistoryImportCmd creates "history import": validate a history CSV
// and cache it in the state dir for later analysis.
func NewHistoryImportCmd() *cobra.Command {
	var csvPath string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import the monthly history CSV",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			log := logging.FromContext(ctx)

			rows, err := loadHistory(cmd, csvPath)
			if err != nil {
				return err
			}
			if len(rows) == 0 {
				return fmt.Errorf("history CSV contains no parseable months")
			}

			data, err := os.ReadFile(csvPath)
			if err != nil {
				return fmt.Errorf("reading history CSV: %w", err)
			}
			target := historyCSVPath("")
			if err := os.MkdirAll(filepath.Dir(target), 0700); err != nil {
				return fmt.Errorf("creating state dir: %w", err)
			}
			if err := os.WriteFile(target, data, 0600); err != nil {
				return fmt.Errorf("caching history CSV: %w", err)
			}

			log.Info().Ctx(ctx).
				Str("operation", "history_import").
				Int("months", len(rows)).
				Msg("history imported")
			cmd.Printf("Imported %d month(s): %s … %s\n", len(rows), rows[0].Month, rows[len(rows)-1].Month)
			return nil
		},
	}

	cmd.Flags().StringVar(&csvPath, "csv", "", "Path to the monthly history CSV file")
	_ = cmd.MarkFlagRequired("csv")
	return cmd
}

// NewHistoryShowCmd creates "history show": per-month totals.
func NewHistoryShowCmd() *cobra.Command {
	var csvPath, output string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show monthly capacity totals",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rows, err := loadHistory(cmd, historyCSVPath(csvPath))
			if err != nil {
				return err
			}
			if output == outputFormatJSON {
				return engine.RenderJSON(cmd.OutOrStdout(), rows)
			}
			for _, row := range rows {
				cmd.Printf("%s  %s GW\n", row.Month, engine.FormatGW(engine.SumSources(row.Snapshot)))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&csvPath, "csv", "", "Path to the history CSV (default: cached bootstrap copy)")
	cmd.Flags().StringVar(&output, "output", outputFormatTable, "Output format (table, json)")
	return cmd
}

// NewHistoryNetCmd creates "history net": net capacity addition between
// two months. The requested endpoints snap backward onto the months that
// actually exist in the data; when no earlier month exists they snap to
// the earliest one.
func NewHistoryNetCmd() *cobra.Command {
	var csvPath, from, to, output string
	var months int

	cmd := &cobra.Command{
		Use:   "net",
		Short: "Net capacity addition between two months",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rows, err := loadHistory(cmd, historyCSVPath(csvPath))
			if err != nil {
				return err
			}
			if len(rows) == 0 {
				return fmt.Errorf("history CSV contains no parseable months")
			}

			options := make([]grid.MonthKey, len(rows))
			byMonth := make(map[grid.MonthKey]grid.CapacitySnapshot, len(rows))
			for i, row := range rows {
				options[i] = row.Month
				byMonth[row.Month] = row.Snapshot
			}

			endKey := options[len(options)-1]
			if to != "" {
				parsed, ok := grid.ParseMonthKey(to)
				if !ok {
					return fmt.Errorf("invalid --to month %q", to)
				}
				endKey = grid.ClampMonthKey(parsed, options)
			}

			startKey := endKey.MinusMonths(months)
			if from != "" {
				parsed, ok := grid.ParseMonthKey(from)
				if !ok {
					return fmt.Errorf("invalid --from month %q", from)
				}
				startKey = parsed
			}
			startKey = grid.ClampMonthKey(startKey, options)

			result := engine.NetAddition(byMonth, startKey, endKey)
			if output == outputFormatJSON {
				return engine.RenderJSON(cmd.OutOrStdout(), result)
			}
			return engine.RenderNetAdditionTable(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().StringVar(&csvPath, "csv", "", "Path to the history CSV (default: cached bootstrap copy)")
	cmd.Flags().StringVar(&from, "from", "", "Start month (MM/YYYY; default --to minus --months)")
	cmd.Flags().StringVar(&to, "to", "", "End month (MM/YYYY; default latest available)")
	cmd.Flags().IntVar(&months, "months", defaultNetMonths, "Window length in months when --from is omitted")
	cmd.Flags().StringVar(&output, "output", outputFormatTable, "Output format (table, json)")
	return cmd
}

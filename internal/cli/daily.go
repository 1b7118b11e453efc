package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skanodia/gridcap/internal/config"
	"github.com/skanodia/gridcap/internal/csvio"
	"github.com/skanodia/gridcap/internal/engine"
	"github.com/skanodia/gridcap/internal/grid"
	"github.com/skanodia/gridcap/internal/logging"
)

// maxDisplayedRowErrors caps the per-row error list printed after an
// import; the full count is always reported.
const maxDisplayedRowErrors = 12

// newDailyCmd creates the daily command group.
func newDailyCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "daily", Short: "Daily generation series commands"}
	cmd.AddCommand(
		NewDailyAddCmd(), NewDailyImportCmd(), NewDailyListCmd(),
		NewDailyClearCmd(), NewDailyExportCmd(),
	)
	return cmd
}

// NewDailyAddCmd creates "daily add": manual entry with strict
// validation. A bad date or value blocks the save with no partial
// effect; an existing record for the date is overwritten.
func NewDailyAddCmd() *cobra.Command {
	var date, value string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add or overwrite one daily record",
		RunE: func(cmd *cobra.Command, _ []string) error {
			key, err := grid.ParseDateKey(date)
			if err != nil {
				return fmt.Errorf("invalid --date: %w", err)
			}
			v, err := grid.ParseNumber(value)
			if err != nil {
				return fmt.Errorf("invalid --value: %w", err)
			}

			st, err := openStore(cmd)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			records := st.LoadDaily(ctx)
			records[key] = v
			if err := st.SaveDaily(ctx, records); err != nil {
				return fmt.Errorf("saving daily records: %w", err)
			}
			cmd.Printf("Saved %s = %.2f\n", key.DisplaySlash(), v)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Record date (DD/MM/YYYY, DD-MM-YYYY or YYYY-MM-DD)")
	cmd.Flags().StringVar(&value, "value", "", "Record value")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("value")
	return cmd
}

// NewDailyImportCmd creates "daily import": partial-success CSV import.
// Valid rows are merged last-write-wins; bad rows are listed with their
// 1-based row numbers, capped on screen at maxDisplayedRowErrors.
func NewDailyImportCmd() *cobra.Command {
	var csvPath string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import daily records from a date,value CSV",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			log := logging.FromContext(ctx)

			data, err := os.ReadFile(csvPath)
			if err != nil {
				return fmt.Errorf("reading daily CSV: %w", err)
			}
			imported := csvio.ParseDaily(ctx, string(data))

			st, err := openStore(cmd)
			if err != nil {
				return err
			}
			records := st.LoadDaily(ctx)
			for key, v := range imported.Records {
				records[key] = v
			}
			if err := st.SaveDaily(ctx, records); err != nil {
				return fmt.Errorf("saving daily records: %w", err)
			}

			log.Info().Ctx(ctx).
				Str("operation", "daily_import").
				Str("batch_id", imported.BatchID).
				Int("imported", len(imported.Records)).
				Int("rejected", len(imported.Errors)).
				Msg("daily import complete")

			cmd.Printf("Imported %d record(s)\n", len(imported.Records))
			if len(imported.Errors) > 0 {
				cmd.Printf("Skipped %d row(s):\n", len(imported.Errors))
				for i, rowErr := range imported.Errors {
					if i == maxDisplayedRowErrors {
						cmd.Printf("  … and %d more\n", len(imported.Errors)-maxDisplayedRowErrors)
						break
					}
					cmd.Printf("  row %d: %s (%q)\n", rowErr.Row, rowErr.Reason, rowErr.Value)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&csvPath, "csv", "", "Path to the daily CSV file")
	_ = cmd.MarkFlagRequired("csv")
	return cmd
}

// NewDailyListCmd creates "daily list": the series with YoY growth.
func NewDailyListCmd() *cobra.Command {
	var output string
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List daily records with year-over-year growth",
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := openStore(cmd)
			if err != nil {
				return err
			}
			points := engine.DailySeries(st.LoadDaily(cmd.Context()), limit)

			if output == outputFormatJSON {
				return engine.RenderJSON(cmd.OutOrStdout(), points)
			}
			if len(points) == 0 {
				cmd.Println("No daily records")
				return nil
			}
			return engine.RenderDailyTable(cmd.OutOrStdout(), points)
		},
	}

	cmd.Flags().StringVar(&output, "output", outputFormatTable, "Output format (table, json)")
	cmd.Flags().IntVar(&limit, "limit", 0, "Show only the latest N records (0 = all)")
	return cmd
}

// NewDailyClearCmd creates "daily clear": the bulk delete.
func NewDailyClearCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every daily record",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return fmt.Errorf("refusing to clear without --yes")
			}
			st, err := openStore(cmd)
			if err != nil {
				return err
			}
			if err := st.ClearDaily(cmd.Context()); err != nil {
				return fmt.Errorf("clearing daily records: %w", err)
			}
			cmd.Println("Daily records cleared")
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm the bulk delete")
	return cmd
}

// NewDailyExportCmd creates "daily export": CSV (default) or XLSX.
func NewDailyExportCmd() *cobra.Command {
	var outPath, format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export daily records as CSV or XLSX",
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := openStore(cmd)
			if err != nil {
				return err
			}
			records := st.LoadDaily(cmd.Context())
			valueColumn := config.GetGlobalConfig().ValueColumn

			switch format {
			case "xlsx":
				if outPath == "" {
					return fmt.Errorf("--out is required for xlsx export")
				}
				data, err := csvio.WriteDailyXLSX(records, valueColumn)
				if err != nil {
					return err
				}
				if err := os.WriteFile(outPath, data, 0600); err != nil {
					return fmt.Errorf("writing workbook: %w", err)
				}
			case "csv":
				if outPath == "" {
					return csvio.WriteDaily(cmd.OutOrStdout(), records, valueColumn)
				}
				f, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("creating export file: %w", err)
				}
				defer f.Close()
				if err := csvio.WriteDaily(f, records, valueColumn); err != nil {
					return err
				}
			default:
				return fmt.Errorf("unknown format %q (csv, xlsx)", format)
			}

			if outPath != "" {
				cmd.Printf("Exported %d record(s) to %s\n", len(records), outPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "", "Output file (CSV defaults to stdout)")
	cmd.Flags().StringVar(&format, "format", "csv", "Export format (csv, xlsx)")
	return cmd
}

// NewYoYCmd creates "yoy": year-over-year growth for one date. A missing
// prior-year record reports "undefined", never zero.
func NewYoYCmd() *cobra.Command {
	var date, output string

	cmd := &cobra.Command{
		Use:   "yoy",
		Short: "Year-over-year growth for one date",
		RunE: func(cmd *cobra.Command, _ []string) error {
			key, err := grid.ParseDateKey(date)
			if err != nil {
				return fmt.Errorf("invalid --date: %w", err)
			}
			st, err := openStore(cmd)
			if err != nil {
				return err
			}
			records := st.LoadDaily(cmd.Context())
			yoy := engine.YoYGrowth(records, key)

			if output == outputFormatJSON {
				return engine.RenderJSON(cmd.OutOrStdout(), struct {
					Date grid.DateKey `json:"date"`
					YoY  *float64     `json:"yoy"`
				}{Date: key, YoY: yoy})
			}
			cmd.Printf("%s: %s\n", key.DisplaySlash(), engine.FormatYoY(yoy))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date to evaluate")
	cmd.Flags().StringVar(&output, "output", outputFormatTable, "Output format (table, json)")
	_ = cmd.MarkFlagRequired("date")
	return cmd
}

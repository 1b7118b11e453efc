package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skanodia/gridcap/internal/csvio"
	"github.com/skanodia/gridcap/internal/engine"
	"github.com/skanodia/gridcap/internal/grid"
	"github.com/skanodia/gridcap/internal/logging"
)

// newCapacityCmd creates the capacity command group.
func newCapacityCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "capacity", Short: "Installed capacity commands"}
	cmd.AddCommand(NewCapacityShowCmd(), NewCapacitySetCmd(), NewCapacityImportCmd())
	return cmd
}

// NewCapacityShowCmd creates "capacity show": the installed snapshot
// with PLF and rated capacity.
func NewCapacityShowCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show installed capacity, PLF and rated capacity",
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := openStore(cmd)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			installed := st.LoadInstalled(ctx)
			plf := st.LoadPLF(ctx)
			rated := engine.RatedCapacity(installed, plf)

			if output == outputFormatJSON {
				return engine.RenderJSON(cmd.OutOrStdout(), struct {
					Installed grid.CapacitySnapshot `json:"installed"`
					Total     float64               `json:"total"`
					Rated     engine.RatedResult    `json:"rated"`
				}{
					Installed: installed,
					Total:     engine.SumSources(installed),
					Rated:     rated,
				})
			}
			return engine.RenderCapacityTable(cmd.OutOrStdout(), installed, plf, rated)
		},
	}

	cmd.Flags().StringVar(&output, "output", outputFormatTable, "Output format (table, json)")
	return cmd
}

// NewCapacitySetCmd creates "capacity set": strict source=value edits
// with no partial effect on validation failure.
func NewCapacitySetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set source=value ...",
		Short: "Set installed capacity values (GW)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseSourceValues(args)
			if err != nil {
				return err
			}
			st, err := openStore(cmd)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			installed := st.LoadInstalled(ctx)
			for source, v := range values {
				installed[source] = v
			}
			if err := st.SaveInstalled(ctx, installed); err != nil {
				return fmt.Errorf("saving installed capacity: %w", err)
			}
			cmd.Printf("Updated %d source(s)\n", len(values))
			return nil
		},
	}
}

// NewCapacityImportCmd creates "capacity import": seed the installed
// snapshot from the single-row CSV format.
func NewCapacityImportCmd() *cobra.Command {
	var csvPath string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import installed capacity from a single-row CSV",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			log := logging.FromContext(ctx)

			data, err := os.ReadFile(csvPath)
			if err != nil {
				return fmt.Errorf("reading capacity CSV: %w", err)
			}
			snapshot := csvio.ParseInstalled(csvio.Parse(string(data)))

			st, err := openStore(cmd)
			if err != nil {
				return err
			}
			if err := st.SaveInstalled(ctx, snapshot); err != nil {
				return fmt.Errorf("saving installed capacity: %w", err)
			}

			log.Info().Ctx(ctx).
				Str("operation", "capacity_import").
				Str("csv_path", csvPath).
				Msg("installed capacity imported")
			cmd.Printf("Imported installed capacity (total %.2f GW)\n", engine.SumSources(snapshot))
			return nil
		},
	}

	cmd.Flags().StringVar(&csvPath, "csv", "", "Path to the installed-capacity CSV file")
	_ = cmd.MarkFlagRequired("csv")
	return cmd
}

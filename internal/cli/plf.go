package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skanodia/gridcap/internal/engine"
	"github.com/skanodia/gridcap/internal/grid"
)

// newPLFCmd creates the plf command group.
func newPLFCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "plf", Short: "Plant load factor commands"}
	cmd.AddCommand(NewPLFShowCmd(), NewPLFSetCmd())
	return cmd
}

// NewPLFShowCmd creates "plf show".
func NewPLFShowCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show plant load factors",
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := openStore(cmd)
			if err != nil {
				return err
			}
			plf := st.LoadPLF(cmd.Context())

			if output == outputFormatJSON {
				return engine.RenderJSON(cmd.OutOrStdout(), plf)
			}
			for _, source := range grid.Sources() {
				cmd.Printf("%s: %.1f%%\n", source, grid.SafeNum(plf[source]))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&output, "output", outputFormatTable, "Output format (table, json)")
	return cmd
}

// NewPLFSetCmd creates "plf set". Values outside [0,100] are accepted;
// they simply produce out-of-range rated capacity.
func NewPLFSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set source=value ...",
		Short: "Set plant load factor percentages",
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
			plf := st.LoadPLF(ctx)
			for source, v := range values {
				plf[source] = v
			}
			if err := st.SavePLF(ctx, plf); err != nil {
				return fmt.Errorf("saving PLF: %w", err)
			}
			cmd.Printf("Updated %d source(s)\n", len(values))
			return nil
		},
	}
}

// NewRatedCmd creates "rated": the derived rated-capacity table.
func NewRatedCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "rated",
		Short: "Show rated capacity (installed × PLF)",
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
				return engine.RenderJSON(cmd.OutOrStdout(), rated)
			}
			return engine.RenderCapacityTable(cmd.OutOrStdout(), installed, plf, rated)
		},
	}

	cmd.Flags().StringVar(&output, "output", outputFormatTable, "Output format (table, json)")
	return cmd
}

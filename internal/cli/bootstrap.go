package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/skanodia/gridcap/internal/bootstrap"
	"github.com/skanodia/gridcap/internal/config"
	"github.com/skanodia/gridcap/internal/csvio"
	"github.com/skanodia/gridcap/internal/engine"
	"github.com/skanodia/gridcap/internal/logging"
)

// NewBootstrapCmd creates "bootstrap": fetch the configured seed CSVs
// and persist the resulting state. Each failed file degrades to a
// warning and existing state is left untouched for that file.
func NewBootstrapCmd() *cobra.Command {
	var installedURL, historyURL string

	cmd := &cobra.Command{
		Use:   "bootstrap",
		Short: "Seed state from the configured bootstrap CSV files",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			log := logging.FromContext(ctx)
			cfg := config.GetGlobalConfig()

			if installedURL == "" {
				installedURL = cfg.Bootstrap.InstalledURL
			}
			if historyURL == "" {
				historyURL = cfg.Bootstrap.HistoryURL
			}
			if installedURL == "" && historyURL == "" {
				return fmt.Errorf("no bootstrap URLs configured (set bootstrap.installed_url / bootstrap.history_url or pass flags)")
			}

			result := bootstrap.NewLoader(installedURL, historyURL).Fetch(ctx)
			for _, warning := range result.Warnings {
				cmd.PrintErrf("Warning: %s\n", warning)
			}

			st, err := openStore(cmd)
			if err != nil {
				return err
			}

			if result.Installed != nil {
				if err := st.SaveInstalled(ctx, result.Installed); err != nil {
					return fmt.Errorf("saving installed capacity: %w", err)
				}
				cmd.Printf("Seeded installed capacity (total %.2f GW)\n", engine.SumSources(result.Installed))
			}

			if len(result.History) > 0 {
				target := filepath.Join(cfg.StateDir, historyCacheFile)
				var buf bytes.Buffer
				if err := csvio.WriteHistory(&buf, result.History); err != nil {
					return err
				}
				if err := os.WriteFile(target, buf.Bytes(), 0600); err != nil {
					return fmt.Errorf("caching history CSV: %w", err)
				}
				cmd.Printf("Seeded %d month(s) of history\n", len(result.History))
			}

			log.Info().Ctx(ctx).
				Str("operation", "bootstrap").
				Int("warnings", len(result.Warnings)).
				Msg("bootstrap complete")
			return nil
		},
	}

	cmd.Flags().StringVar(&installedURL, "installed-url", "", "Installed-capacity seed CSV URL (overrides config)")
	cmd.Flags().StringVar(&historyURL, "history-url", "", "Monthly history seed CSV URL (overrides config)")
	return cmd
}

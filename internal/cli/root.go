// Package cli wires the gridcap command tree: capacity and PLF editing,
// monthly history analysis, the daily series, bootstrap seeding, and the
// interactive dashboard.
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/skanodia/gridcap/internal/config"
	"github.com/skanodia/gridcap/internal/logging"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// NewRootCmd creates the root Cobra command for the gridcap CLI. It
// wires up config loading, logging, and the subcommand groups.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.Result

	cmd := &cobra.Command{
		Use:     "gridcap",
		Short:   "Grid capacity dashboard",
		Long:    "gridcap: enter, import and analyse electricity-grid capacity data",
		Version: ver,
		Example: rootCmdExample,
		// Errors are reported once by main; usage spam on runtime
		// failures is suppressed.
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfgPath, _ := cmd.Flags().GetString("config")
			if cfgPath == "" {
				cfgPath = config.DefaultPath()
			}
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			if stateDir, _ := cmd.Flags().GetString("state-dir"); stateDir != "" {
				cfg.StateDir = stateDir
			}
			config.SetGlobalConfig(cfg)

			result := setupLogging(cmd, cfg)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			if logResult != nil {
				return logResult.Close()
			}
			return nil
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "path to config file (default ~/.gridcap/config.yaml)")
	cmd.PersistentFlags().String("state-dir", "", "override the state directory")

	cmd.AddCommand(
		newCapacityCmd(), newPLFCmd(), NewRatedCmd(),
		newHistoryCmd(), newDailyCmd(), NewYoYCmd(),
		NewBootstrapCmd(), NewDashboardCmd(),
	)

	return cmd
}

const rootCmdExample = `  # Show installed capacity with rated totals
  gridcap capacity show

  # Edit installed capacity for one source
  gridcap capacity set Solar=94.2 Wind=48.1

  # Import the daily generation series
  gridcap daily import --csv daily.csv

  # Net capacity addition over the last year of history
  gridcap history net --csv history.csv --months 12

  # Year-over-year growth for one day
  gridcap yoy --date 20/12/2025

  # Interactive dashboard
  gridcap dashboard`

// setupLogging configures logging from the config file and the --debug
// flag, attaches the logger to the command context, and returns the
// handle for cleanup.
func setupLogging(cmd *cobra.Command, cfg *config.Config) logging.Result {
	logCfg := logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		File:   cfg.Logging.File,
	}
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		logCfg.Level = "debug"
		logCfg.Format = "console"
		logCfg.File = ""
	}

	result := logging.New(logCfg)
	logger = logging.ComponentLogger(result.Logger, "cli")
	cmd.SetContext(logging.WithContext(cmd.Context(), logger))

	logger.Debug().Str("command", cmd.Name()).Msg("command started")
	return result
}

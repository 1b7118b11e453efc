package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/skanodia/gridcap/internal/tui"
)

// NewDashboardCmd creates "dashboard": the interactive TUI over the
// persisted state.
func NewDashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Interactive capacity dashboard",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !isTerminal(os.Stdout) {
				return fmt.Errorf("dashboard requires an interactive terminal")
			}

			st, err := openStore(cmd)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			model := tui.NewModel(st.LoadInstalled(ctx), st.LoadPLF(ctx), st.LoadDaily(ctx))

			if _, err := tea.NewProgram(model, tea.WithContext(ctx)).Run(); err != nil {
				return fmt.Errorf("running dashboard: %w", err)
			}
			return nil
		},
	}
}

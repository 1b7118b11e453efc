// Package tui implements the interactive dashboard: a capacity summary
// pane and a scrollable daily-series table with year-over-year growth.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/skanodia/gridcap/internal/engine"
	"github.com/skanodia/gridcap/internal/grid"
)

// Pane identifies which dashboard pane has focus.
type Pane int

const (
	// PaneCapacity is the capacity summary pane.
	PaneCapacity Pane = iota
	// PaneDaily is the daily series pane.
	PaneDaily
)

// dailyTableHeight is the visible row count of the daily table.
const dailyTableHeight = 12

// Column widths for the daily table.
const (
	colWidthDate  = 12
	colWidthValue = 14
	colWidthYoY   = 10
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	focusedPaneStyle = paneStyle.
				BorderForeground(lipgloss.Color("63"))

	totalRowStyle = lipgloss.NewStyle().Bold(true)

	helpStyle = lipgloss.NewStyle().Faint(true)
)

// Model is the dashboard tea.Model. It is constructed with a fully
// loaded data set; the dashboard itself never touches the store.
type Model struct {
	installed grid.CapacitySnapshot
	plf       grid.PLF
	rated     engine.RatedResult
	daily     table.Model
	pane      Pane
	quitting  bool
}

// NewModel builds the dashboard from the loaded state.
func NewModel(installed grid.CapacitySnapshot, plf grid.PLF, records grid.DailyRecords) Model {
	points := engine.DailySeries(records, 0)

	rows := make([]table.Row, 0, len(points))
	for _, p := range points {
		rows = append(rows, table.Row{
			p.Date.DisplaySlash(),
			engine.FormatGW(p.Value),
			engine.FormatYoY(p.YoY),
		})
	}

	daily := table.New(
		table.WithColumns([]table.Column{
			{Title: "Date", Width: colWidthDate},
			{Title: "Value", Width: colWidthValue},
			{Title: "YoY %", Width: colWidthYoY},
		}),
		table.WithRows(rows),
		table.WithHeight(dailyTableHeight),
	)
	// Start on the newest record.
	if len(rows) > 0 {
		daily.GotoBottom()
	}

	return Model{
		installed: installed,
		plf:       plf,
		rated:     engine.RatedCapacity(installed, plf),
		daily:     daily,
		pane:      PaneCapacity,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model: tab switches panes, q or ctrl+c quits,
// and everything else is forwarded to the focused daily table.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "tab":
			if m.pane == PaneCapacity {
				m.pane = PaneDaily
				m.daily.Focus()
			} else {
				m.pane = PaneCapacity
				m.daily.Blur()
			}
			return m, nil
		}
	}

	if m.pane == PaneDaily {
		var cmd tea.Cmd
		m.daily, cmd = m.daily.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	capacity := m.renderCapacityPane()
	daily := m.renderDailyPane()

	body := lipgloss.JoinHorizontal(lipgloss.Top, capacity, daily)
	help := helpStyle.Render("tab: switch pane • ↑/↓: scroll daily • q: quit")
	return lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render("gridcap dashboard"), body, help)
}

// renderCapacityPane renders the installed/rated summary table.
func (m Model) renderCapacityPane() string {
	var lines string
	lines += fmt.Sprintf("%-12s %10s %7s %10s\n", "SOURCE", "INSTALLED", "PLF%", "RATED")
	for _, source := range grid.Sources() {
		lines += fmt.Sprintf("%-12s %10s %7.1f %10s\n",
			source,
			engine.FormatGW(grid.SafeNum(m.installed[source])),
			grid.SafeNum(m.plf[source]),
			engine.FormatGW(m.rated.PerSource[source]),
		)
	}
	lines += totalRowStyle.Render(fmt.Sprintf("%-12s %10s %7s %10s",
		"TOTAL", engine.FormatGW(engine.SumSources(m.installed)), "", engine.FormatGW(m.rated.Total)))

	style := paneStyle
	if m.pane == PaneCapacity {
		style = focusedPaneStyle
	}
	return style.Render(lines)
}

// renderDailyPane renders the scrollable daily table.
func (m Model) renderDailyPane() string {
	style := paneStyle
	if m.pane == PaneDaily {
		style = focusedPaneStyle
	}
	return style.Render(m.daily.View())
}

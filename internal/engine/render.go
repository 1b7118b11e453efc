package engine

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/skanodia/gridcap/internal/grid"
)

// tabwriterPadding is the minimum padding between table columns.
const tabwriterPadding = 2

// undefinedCell marks a value with no defined result (missing prior-year
// record, absent snapshot).
const undefinedCell = "—"

// printer formats numbers with comma grouping for table output.
var printer = message.NewPrinter(language.English)

// FormatGW formats a capacity value with comma grouping and two
// decimals.
func FormatGW(v float64) string {
	return printer.Sprintf("%.2f", v)
}

// FormatYoY renders a growth pointer, using the undefined marker for
// nil.
func FormatYoY(yoy *float64) string {
	if yoy == nil {
		return undefinedCell
	}
	return fmt.Sprintf("%+.2f%%", grid.Round2(*yoy))
}

// RenderCapacityTable writes installed capacity, PLF, and rated capacity
// as an aligned text table with a totals row.
func RenderCapacityTable(w io.Writer, installed grid.CapacitySnapshot, plf grid.PLF, rated RatedResult) error {
	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)

	if _, err := fmt.Fprintf(tw, "SOURCE\tINSTALLED (GW)\tPLF %%\tRATED (GW)\n"); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, source := range grid.Sources() {
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%.1f\t%s\n",
			source,
			FormatGW(grid.SafeNum(installed[source])),
			grid.SafeNum(plf[source]),
			FormatGW(rated.PerSource[source]),
		); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	if _, err := fmt.Fprintf(tw, "TOTAL\t%s\t\t%s\n",
		FormatGW(SumSources(installed)), FormatGW(rated.Total)); err != nil {
		return fmt.Errorf("writing totals: %w", err)
	}
	return tw.Flush()
}

// RenderNetAdditionTable writes the per-source capacity delta between
// two months. Absent snapshots render the undefined marker instead of a
// misleading zero.
func RenderNetAdditionTable(w io.Writer, result NetAdditionResult) error {
	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)

	if _, err := fmt.Fprintf(tw, "SOURCE\tNET ADDITION %s → %s (GW)\n", result.Start, result.End); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, source := range grid.Sources() {
		cell := undefinedCell
		if result.BothPresent {
			cell = FormatGW(result.PerSource[source])
		}
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", source, cell); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	total := undefinedCell
	if result.BothPresent {
		total = FormatGW(result.Total)
	}
	if _, err := fmt.Fprintf(tw, "TOTAL\t%s\n", total); err != nil {
		return fmt.Errorf("writing totals: %w", err)
	}
	return tw.Flush()
}

// RenderDailyTable writes the daily series with year-over-year growth.
func RenderDailyTable(w io.Writer, points []SeriesPoint) error {
	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)

	if _, err := fmt.Fprintf(tw, "DATE\tVALUE\tYOY %%\n"); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, p := range points {
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\n",
			p.Date.DisplaySlash(), FormatGW(p.Value), FormatYoY(p.YoY)); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	return tw.Flush()
}

// RenderJSON writes v as indented JSON, shared by every --output=json
// path.
func RenderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/dataplot/pkg/series"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - headings
	colorYellow = lipgloss.Color("220") // Amber - notable values
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	styleTitle  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleLabel  = lipgloss.NewStyle().Foreground(colorDim)
	styleValue  = lipgloss.NewStyle().Foreground(colorWhite)
	styleNotice = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Reports
// =============================================================================

// printHigh prints every point whose Y value exceeded the threshold,
// with the source line for context.
func printHigh(name string, pts []series.Point, threshold float64) {
	fmt.Fprintln(os.Stdout, styleTitle.Render(fmt.Sprintf("%s: %d value(s) above %g", name, len(pts), threshold)))
	for _, p := range pts {
		fmt.Fprintf(os.Stdout, "  %s  %s\n",
			styleNotice.Render(fmt.Sprintf("%g", p.Y)),
			styleValue.Render(p.Line))
	}
}

// printStats prints the Y-value statistics of one series.
func printStats(name string, sum series.Summary) {
	fmt.Fprintln(os.Stdout, styleTitle.Render(name))
	rows := []struct {
		label string
		value string
	}{
		{"count", fmt.Sprintf("%d", sum.Count)},
		{"min", fmt.Sprintf("%g", sum.Min)},
		{"max", fmt.Sprintf("%g", sum.Max)},
		{"sum", fmt.Sprintf("%.3f", sum.Sum)},
		{"mean", fmt.Sprintf("%.3f", sum.Mean)},
		{"median", fmt.Sprintf("%.3f", sum.Median)},
		{"stddev", fmt.Sprintf("%.3f", sum.StdDev)},
	}
	for _, row := range rows {
		fmt.Fprintf(os.Stdout, "  %s %s\n",
			styleLabel.Render(fmt.Sprintf("%-7s", row.label)),
			styleValue.Render(row.value))
	}
}

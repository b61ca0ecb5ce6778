package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"fitlife/internal/fitness"
)

const chartWidth = 40

var (
	chartDateStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	chartBarStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

// renderChart draws the step series as horizontal bars scaled to the series
// maximum, one row per day, oldest first.
func renderChart(series []fitness.DaySteps) string {
	if len(series) == 0 {
		return "No data yet. Add steps to see your chart."
	}

	max := 1
	for _, d := range series {
		if d.Steps > max {
			max = d.Steps
		}
	}

	var b strings.Builder
	b.WriteString("Chart shows last saved days.\n")
	for _, d := range series {
		width := d.Steps * chartWidth / max
		bar := strings.Repeat("█", width)
		fmt.Fprintf(&b, "%s %s %d\n",
			chartDateStyle.Render(d.Date),
			chartBarStyle.Render(bar),
			d.Steps)
	}
	return b.String()
}

package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cratedig/cratedig/internal/models"
)

const chartBarWidth = 40

var (
	chartBarStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("105"))
	chartLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	chartTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("219"))
)

// ChartRow is one labeled value of a bar chart.
type ChartRow struct {
	Label string
	Value int
}

// BarChart renders labeled values as a horizontal bar chart scaled to
// the largest value. An empty row set renders the title alone.
func BarChart(title string, rows []ChartRow) string {
	var b strings.Builder
	b.WriteString(chartTitleStyle.Render(title))
	b.WriteString("\n")

	maxValue := 0
	maxLabel := 0
	for _, row := range rows {
		if row.Value > maxValue {
			maxValue = row.Value
		}
		if len(row.Label) > maxLabel {
			maxLabel = len(row.Label)
		}
	}

	for _, row := range rows {
		width := 0
		if maxValue > 0 {
			width = row.Value * chartBarWidth / maxValue
		}
		if row.Value > 0 && width == 0 {
			width = 1
		}

		label := chartLabelStyle.Render(fmt.Sprintf("%-*s", maxLabel, row.Label))
		bar := chartBarStyle.Render(strings.Repeat("█", width))
		b.WriteString(fmt.Sprintf("%s %s %d\n", label, bar, row.Value))
	}

	return b.String()
}

// PopularityChart charts track popularity, one bar per track.
func PopularityChart(tracks []*models.Track) string {
	rows := make([]ChartRow, 0, len(tracks))
	for _, t := range tracks {
		rows = append(rows, ChartRow{Label: t.Name, Value: t.Popularity})
	}
	return BarChart("Track popularity", rows)
}

// FollowerChart charts artist follower counts, one bar per artist.
func FollowerChart(artists []*models.Artist) string {
	rows := make([]ChartRow, 0, len(artists))
	for _, a := range artists {
		rows = append(rows, ChartRow{Label: a.Name, Value: a.Followers})
	}
	return BarChart("Artist followers", rows)
}

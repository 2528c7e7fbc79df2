package tui

import (
	"math"
	"strconv"
	"strings"

	"github.com/guptarohit/asciigraph"

	"InterestCalc/internal/model"
	"InterestCalc/internal/projection"
)

// renderChart plots the series and, below it, a year axis and the cursor marker.
func renderChart(s projection.Series, sel *model.Selection, width, height int) string {
	values := s.Values()
	if len(values) < 2 {
		return ""
	}
	plot := asciigraph.Plot(values,
		asciigraph.Width(width),
		asciigraph.Height(height),
		asciigraph.Precision(0),
	)

	margin := axisColumn(plot)
	pad := strings.Repeat(" ", margin)
	years := s.Years()

	var b strings.Builder
	b.WriteString(plot)
	b.WriteString("\n")
	b.WriteString(pad + AxisStyle.Render(yearAxis(years, width)))
	if sel != nil {
		marker := make([]rune, width)
		for i := range marker {
			marker[i] = ' '
		}
		marker[column(sel.Year, years, width)] = '▲'
		b.WriteString("\n")
		b.WriteString(pad + CursorStyle.Render(strings.TrimRight(string(marker), " ")))
	}
	return b.String()
}

// column maps a year to a plot column; asciigraph stretches the series to width.
func column(year, years, width int) int {
	if years <= 0 || width <= 1 {
		return 0
	}
	c := int(math.Round(float64(year) * float64(width-1) / float64(years)))
	return min(max(c, 0), width-1)
}

// yearAxis labels the AxisTicks years under their plot columns.
func yearAxis(years, width int) string {
	line := make([]rune, width+4)
	for i := range line {
		line[i] = ' '
	}
	for _, y := range projection.AxisTicks(years, projection.DefaultTickCount) {
		label := []rune(strconv.Itoa(y))
		start := column(y, years, width)
		if start+len(label) > len(line) {
			start = len(line) - len(label)
		}
		copy(line[start:], label)
	}
	return strings.TrimRight(string(line), " ")
}

// axisColumn finds where the plot area starts: one past the y-axis glyph.
func axisColumn(plot string) int {
	for _, line := range strings.Split(plot, "\n") {
		for i, r := range []rune(line) {
			if r == '┤' || r == '┼' {
				return i + 1
			}
		}
	}
	return 0
}

package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var (
	seriesColor    = drawing.ColorFromHex("2f6fde")
	selectionColor = drawing.ColorFromHex("e4572e")
)

// RenderChart draws the report's series as a PNG line chart.
func RenderChart(w io.Writer, r *Report, size Size) error {
	xs := make([]float64, len(r.Points))
	ys := make([]float64, len(r.Points))
	low, high := 0.0, 0.0
	for i, pt := range r.Points {
		xs[i] = float64(pt.Year)
		ys[i] = pt.Value
		if i == 0 || pt.Value < low {
			low = pt.Value
		}
		if i == 0 || pt.Value > high {
			high = pt.Value
		}
	}
	if len(xs) < 2 {
		return fmt.Errorf("chart needs at least two points, got %d", len(xs))
	}

	xTicks := make([]chart.Tick, 0, len(r.Ticks))
	for _, y := range r.Ticks {
		xTicks = append(xTicks, chart.Tick{Value: float64(y), Label: strconv.Itoa(y)})
	}

	// go-chart refuses a zero-height range.
	var yRange *chart.ContinuousRange
	if high == low {
		yRange = &chart.ContinuousRange{Min: low, Max: low + 1}
	}

	series := []chart.Series{
		chart.ContinuousSeries{
			Name:    r.ValueLabel(),
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeColor: seriesColor,
				StrokeWidth: 2,
				FillColor:   seriesColor.WithAlpha(48),
			},
		},
	}
	if sel := r.Selection; sel != nil {
		series = append(series, chart.AnnotationSeries{
			Annotations: []chart.Value2{{
				XValue: float64(sel.Year),
				YValue: sel.Value,
				Label:  fmt.Sprintf("Year %d: %s", sel.Year, Money(r.Currency, sel.Value)),
			}},
			Style: chart.Style{StrokeColor: selectionColor},
		})
	}

	ch := chart.Chart{
		Title:      r.Title(),
		Width:      size.Width,
		Height:     size.Height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 24, Bottom: 16}},
		XAxis: chart.XAxis{
			Name:  "Year",
			Ticks: xTicks,
		},
		YAxis: chart.YAxis{
			Name:  r.ValueLabel(),
			Range: yRange,
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return Money(r.Currency, f)
				}
				return ""
			},
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	if err := ch.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}

// PNGExporter writes the chart as a PNG image.
type PNGExporter struct {
	Dir  string
	Size Size
}

func (e *PNGExporter) Format() Format { return FormatPNG }

func (e *PNGExporter) Export(r *Report) (string, error) {
	f, path, err := create(e.Dir, r, FormatPNG)
	if err != nil {
		return "", err
	}
	return finish(f, path, RenderChart(f, r, e.Size))
}

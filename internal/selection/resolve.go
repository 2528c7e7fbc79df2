package selection

import (
	"math"

	"InterestCalc/internal/model"
	"InterestCalc/internal/projection"
)

// Resolve maps a pointer position, normalized to 0..1 across the chart width,
// to the nearest year of s and evaluates that year with the series' own formula.
// Positions outside 0..1 clamp to the first or last year. NaN and an empty
// series resolve to no selection.
func Resolve(normalizedX float64, s projection.Series) *model.Selection {
	if math.IsNaN(normalizedX) || s.Len() == 0 {
		return nil
	}
	x := math.Min(math.Max(normalizedX, 0), 1)
	years := s.Years()
	year := int(math.Round(x * float64(years)))
	if year > years {
		year = years
	}
	pt := s.At(year)
	return &model.Selection{Year: pt.Year, Value: pt.Value}
}

// Normalize converts a position within extent (e.g. a column within the chart
// width) to the 0..1 range Resolve expects.
func Normalize(pos, extent float64) float64 {
	if extent <= 0 {
		return 0
	}
	return pos / extent
}

// Tracker holds the current selection of one chart.
type Tracker struct {
	current *model.Selection
}

// Drag resolves the pointer against s and makes it the current selection.
func (t *Tracker) Drag(normalizedX float64, s projection.Series) *model.Selection {
	t.current = Resolve(normalizedX, s)
	return t.Current()
}

// Clear drops the selection (pointer left the chart or parameters changed).
func (t *Tracker) Clear() { t.current = nil }

// Current returns a copy of the selection, or nil.
func (t *Tracker) Current() *model.Selection {
	if t.current == nil {
		return nil
	}
	sel := *t.current
	return &sel
}

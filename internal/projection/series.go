package projection

import (
	"fmt"
	"iter"
	"math"
	"slices"

	"InterestCalc/internal/calculator"
	"InterestCalc/internal/model"
)

// Series is the chart of one formula over years 0..Years of a parameter set.
// It holds no points; every iteration recomputes them.
type Series struct {
	formula Formula
	params  model.Parameters
}

// Generate validates p and binds it to f.
func Generate(f Formula, p model.Parameters) (Series, error) {
	if f == nil {
		return Series{}, fmt.Errorf("%w: nil formula", calculator.ErrInvalidInput)
	}
	if err := calculator.ValidateParameters(p); err != nil {
		return Series{}, err
	}
	if p.Kind != f.Kind() {
		return Series{}, fmt.Errorf("%w: %s parameters given to %s formula", calculator.ErrInvalidInput, p.Kind, f.Kind())
	}
	return Series{formula: f, params: p}, nil
}

// GenerateFor looks up the formula for p.Kind and generates its series.
func GenerateFor(p model.Parameters) (Series, error) {
	f, err := FormulaFor(p.Kind)
	if err != nil {
		return Series{}, err
	}
	return Generate(f, p)
}

func (s Series) Formula() Formula          { return s.formula }
func (s Series) Params() model.Parameters { return s.params }

// Years is the last year of the series.
func (s Series) Years() int { return s.params.Years }

// Len is the number of points, Years+1.
func (s Series) Len() int {
	if s.formula == nil {
		return 0
	}
	return s.params.Years + 1
}

// At evaluates a single year.
func (s Series) At(year int) model.SeriesPoint {
	return model.SeriesPoint{Year: year, Value: s.formula.ValueAt(s.params, year)}
}

// All yields one point per year in ascending order.
func (s Series) All() iter.Seq[model.SeriesPoint] {
	return func(yield func(model.SeriesPoint) bool) {
		for year := 0; year < s.Len(); year++ {
			if !yield(s.At(year)) {
				return
			}
		}
	}
}

// Points materializes the whole series.
func (s Series) Points() []model.SeriesPoint {
	return slices.Collect(s.All())
}

// Values returns the point values in year order.
func (s Series) Values() []float64 {
	vals := make([]float64, 0, s.Len())
	for p := range s.All() {
		vals = append(vals, p.Value)
	}
	return vals
}

// Bounds returns the smallest and largest value of the series.
func (s Series) Bounds() (low, high float64) {
	low, high = math.Inf(1), math.Inf(-1)
	for p := range s.All() {
		low = math.Min(low, p.Value)
		high = math.Max(high, p.Value)
	}
	return low, high
}

// Final returns the last point of the series.
func (s Series) Final() model.SeriesPoint {
	return s.At(s.params.Years)
}

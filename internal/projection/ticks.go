package projection

import "math"

// DefaultTickCount is the number of year labels the chart aims for.
const DefaultTickCount = 5

// AxisTicks picks integer year ticks from 0 to maxYear using a 1-2-5 step,
// the smallest step that keeps the count at or below desired.
func AxisTicks(maxYear, desired int) []int {
	if maxYear <= 0 {
		return []int{0}
	}
	if desired < 2 {
		desired = 2
	}
	step := niceStep(float64(maxYear) / float64(desired-1))
	ticks := make([]int, 0, desired)
	for y := 0; y <= maxYear; y += step {
		ticks = append(ticks, y)
	}
	return ticks
}

func niceStep(raw float64) int {
	if raw <= 1 {
		return 1
	}
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	for _, m := range []float64{1, 2, 5, 10} {
		if step := m * mag; step >= raw {
			return int(step)
		}
	}
	return int(10 * mag)
}

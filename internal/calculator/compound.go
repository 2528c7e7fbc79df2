package calculator

import "math"

// CompoundGrowth returns principal * (1 + rate/100)^elapsedYears.
// Negative rates model depreciation; elapsedYears may be fractional.
func CompoundGrowth(principal, annualRatePercent, elapsedYears float64) (float64, error) {
	if err := checkNonNegative("principal", principal); err != nil {
		return 0, err
	}
	if err := checkFinite("rate", annualRatePercent); err != nil {
		return 0, err
	}
	if err := checkNonNegative("years", elapsedYears); err != nil {
		return 0, err
	}
	return principal * math.Pow(1+annualRatePercent/100, elapsedYears), nil
}

// CompoundGrowthWithFrequency compounds frequency times per year:
// principal * (1 + r/frequency)^(frequency*elapsedYears).
func CompoundGrowthWithFrequency(principal, annualRatePercent float64, frequency int, elapsedYears float64) (float64, error) {
	if frequency < 1 {
		return 0, invalid("frequency", float64(frequency), "must be at least 1")
	}
	if err := checkNonNegative("principal", principal); err != nil {
		return 0, err
	}
	if err := checkFinite("rate", annualRatePercent); err != nil {
		return 0, err
	}
	if err := checkNonNegative("years", elapsedYears); err != nil {
		return 0, err
	}
	n := float64(frequency)
	r := annualRatePercent / 100
	return principal * math.Pow(1+r/n, n*elapsedYears), nil
}

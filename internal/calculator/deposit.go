package calculator

import "math"

// FutureValueOfDeposits returns the value of equal monthly deposits after years,
// compounded monthly: deposit * ((1+m)^n - 1) / m. A zero rate yields deposit * n.
func FutureValueOfDeposits(monthlyDeposit, annualRatePercent float64, years float64) (float64, error) {
	if err := checkNonNegative("monthly deposit", monthlyDeposit); err != nil {
		return 0, err
	}
	if err := checkFinite("rate", annualRatePercent); err != nil {
		return 0, err
	}
	if err := checkNonNegative("years", years); err != nil {
		return 0, err
	}
	periods := years * 12
	m := monthlyRate(annualRatePercent)
	if m == 0 {
		return monthlyDeposit * periods, nil
	}
	growth := math.Pow(1+m, periods)
	if growth == 1 {
		return monthlyDeposit * periods, nil
	}
	return monthlyDeposit * (growth - 1) / m, nil
}

// TotalDeposited is the sum of all deposits without interest.
func TotalDeposited(monthlyDeposit float64, years float64) float64 {
	return monthlyDeposit * years * 12
}

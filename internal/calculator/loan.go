package calculator

import (
	"math"

	"InterestCalc/internal/model"
)

// monthlyRate converts an annual percentage into a monthly fraction.
func monthlyRate(annualRatePercent float64) float64 {
	return annualRatePercent / 100 / 12
}

// monthlyPayment is the level payment that repays loanAmount over periods months.
// A zero rate (or one too small to move 1+m) falls back to straight division.
func monthlyPayment(loanAmount, m float64, periods int) float64 {
	if m == 0 {
		return loanAmount / float64(periods)
	}
	growth := math.Pow(1+m, float64(periods))
	if growth == 1 {
		return loanAmount / float64(periods)
	}
	return loanAmount * m * growth / (growth - 1)
}

func validateLoan(loanAmount, annualRatePercent float64, years int) error {
	if err := checkNonNegative("loan amount", loanAmount); err != nil {
		return err
	}
	if err := checkFinite("rate", annualRatePercent); err != nil {
		return err
	}
	if years <= 0 {
		return invalid("years", float64(years), "must be positive")
	}
	return nil
}

// AmortizedLoan computes the monthly payment, total paid and total interest together.
func AmortizedLoan(loanAmount, annualRatePercent float64, years int) (model.LoanSummary, error) {
	if err := validateLoan(loanAmount, annualRatePercent, years); err != nil {
		return model.LoanSummary{}, err
	}
	periods := years * 12
	payment := monthlyPayment(loanAmount, monthlyRate(annualRatePercent), periods)
	total := payment * float64(periods)
	return model.LoanSummary{
		MonthlyPayment: payment,
		TotalPaid:      total,
		TotalInterest:  total - loanAmount,
	}, nil
}

// AmortizedLoanTotalPayment returns the total of all monthly payments.
func AmortizedLoanTotalPayment(loanAmount, annualRatePercent float64, years int) (float64, error) {
	s, err := AmortizedLoan(loanAmount, annualRatePercent, years)
	if err != nil {
		return 0, err
	}
	return s.TotalPaid, nil
}

// TotalInterest returns the interest portion of an amortized loan.
func TotalInterest(loanAmount, annualRatePercent float64, years int) (float64, error) {
	s, err := AmortizedLoan(loanAmount, annualRatePercent, years)
	if err != nil {
		return 0, err
	}
	return s.TotalInterest, nil
}

// LoanBreakdown splits the total paid into principal and interest shares.
func LoanBreakdown(loanAmount, annualRatePercent float64, years int) ([]model.Slice, error) {
	s, err := AmortizedLoan(loanAmount, annualRatePercent, years)
	if err != nil {
		return nil, err
	}
	return []model.Slice{
		{Name: "Principal", Value: loanAmount},
		{Name: "Interest", Value: s.TotalInterest},
	}, nil
}

// AmortizationSchedule walks the loan month by month and reports one row per year.
// The last row's balance is forced to zero to absorb rounding drift.
func AmortizationSchedule(loanAmount, annualRatePercent float64, years int) ([]model.AmortizationRow, error) {
	if err := validateLoan(loanAmount, annualRatePercent, years); err != nil {
		return nil, err
	}
	m := monthlyRate(annualRatePercent)
	payment := monthlyPayment(loanAmount, m, years*12)

	rows := make([]model.AmortizationRow, 0, years)
	balance := loanAmount
	for y := 1; y <= years; y++ {
		row := model.AmortizationRow{Year: y}
		for month := 0; month < 12; month++ {
			interest := balance * m
			principal := payment - interest
			balance -= principal
			row.InterestPaid += interest
			row.PrincipalPaid += principal
		}
		if y == years {
			row.PrincipalPaid += balance
			balance = 0
		}
		row.Balance = balance
		rows = append(rows, row)
	}
	return rows, nil
}

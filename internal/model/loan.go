package model

// LoanSummary holds the totals of an amortized loan.
type LoanSummary struct {
	MonthlyPayment float64 `json:"monthly_payment"`
	TotalPaid      float64 `json:"total_paid"`
	TotalInterest  float64 `json:"total_interest"`
}

// AmortizationRow is one year of an amortization schedule.
type AmortizationRow struct {
	Year          int     `json:"year"`
	InterestPaid  float64 `json:"interest_paid"`
	PrincipalPaid float64 `json:"principal_paid"`
	Balance       float64 `json:"balance"`
}

// Slice is a named share of a breakdown chart.
type Slice struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

package projection

import (
	"fmt"
	"math"

	"InterestCalc/internal/calculator"
	"InterestCalc/internal/model"
)

// Formula evaluates one calculator at an integer year of its horizon.
// Parameters are validated before ValueAt is called; an evaluation error yields NaN.
type Formula interface {
	Kind() model.Kind
	ValueAt(p model.Parameters, year int) float64
}

// Compound charts principal growth, compounding Frequency times per year when set above 1.
type Compound struct{}

func (Compound) Kind() model.Kind { return model.KindCompound }

func (Compound) ValueAt(p model.Parameters, year int) float64 {
	var v float64
	var err error
	if p.Frequency > 1 {
		v, err = calculator.CompoundGrowthWithFrequency(p.Amount, p.AnnualRatePercent, p.Frequency, float64(year))
	} else {
		v, err = calculator.CompoundGrowth(p.Amount, p.AnnualRatePercent, float64(year))
	}
	if err != nil {
		return math.NaN()
	}
	return v
}

// Loan charts the cumulative amount paid by the end of each year on the full-term schedule.
type Loan struct{}

func (Loan) Kind() model.Kind { return model.KindLoan }

func (Loan) ValueAt(p model.Parameters, year int) float64 {
	s, err := calculator.AmortizedLoan(p.Amount, p.AnnualRatePercent, p.Years)
	if err != nil {
		return math.NaN()
	}
	// Same multiplication order as TotalPaid so the last point matches it exactly.
	return s.MonthlyPayment * float64(year*12)
}

// Savings charts the future value of monthly deposits.
type Savings struct{}

func (Savings) Kind() model.Kind { return model.KindSavings }

func (Savings) ValueAt(p model.Parameters, year int) float64 {
	v, err := calculator.FutureValueOfDeposits(p.Amount, p.AnnualRatePercent, float64(year))
	if err != nil {
		return math.NaN()
	}
	return v
}

// FormulaFor returns the canonical formula of a calculator kind.
func FormulaFor(k model.Kind) (Formula, error) {
	switch k {
	case model.KindCompound:
		return Compound{}, nil
	case model.KindLoan:
		return Loan{}, nil
	case model.KindSavings:
		return Savings{}, nil
	default:
		return nil, fmt.Errorf("%w: no formula for kind %q", calculator.ErrInvalidInput, k)
	}
}

package report

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"InterestCalc/internal/calculator"
	"InterestCalc/internal/model"
	"InterestCalc/internal/projection"
)

// Line is one labelled figure of a report summary.
type Line struct {
	Label string
	Value float64
}

// Report is everything an export needs about one calculation.
type Report struct {
	ID        uuid.UUID
	CreatedAt time.Time
	Currency  string

	Params    model.Parameters
	Points    []model.SeriesPoint
	Ticks     []int
	Selection *model.Selection
	Summary   []Line

	// Loan only.
	Breakdown []model.Slice
	Schedule  []model.AmortizationRow
}

// Build collects the figures of series and the optional selection.
func Build(series projection.Series, sel *model.Selection, currency string) (*Report, error) {
	summary, err := Summarize(series)
	if err != nil {
		return nil, err
	}
	p := series.Params()
	r := &Report{
		ID:        uuid.New(),
		CreatedAt: time.Now(),
		Currency:  currency,
		Params:    p,
		Points:    series.Points(),
		Ticks:     projection.AxisTicks(series.Years(), projection.DefaultTickCount),
		Summary:   summary,
	}
	if sel != nil {
		s := *sel
		r.Selection = &s
	}

	if p.Kind == model.KindLoan {
		if r.Breakdown, err = calculator.LoanBreakdown(p.Amount, p.AnnualRatePercent, p.Years); err != nil {
			return nil, err
		}
		if r.Schedule, err = calculator.AmortizationSchedule(p.Amount, p.AnnualRatePercent, p.Years); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Summarize returns the headline figures of series without building a full report.
func Summarize(series projection.Series) ([]Line, error) {
	if series.Len() == 0 {
		return nil, fmt.Errorf("%w: empty series", calculator.ErrInvalidInput)
	}
	p := series.Params()
	switch p.Kind {
	case model.KindCompound:
		final := series.Final().Value
		return []Line{
			{"Principal", p.Amount},
			{"Final amount", final},
			{"Interest earned", final - p.Amount},
		}, nil
	case model.KindSavings:
		final := series.Final().Value
		deposited := calculator.TotalDeposited(p.Amount, float64(p.Years))
		return []Line{
			{"Total deposited", deposited},
			{"Future value", final},
			{"Interest earned", final - deposited},
		}, nil
	case model.KindLoan:
		sum, err := calculator.AmortizedLoan(p.Amount, p.AnnualRatePercent, p.Years)
		if err != nil {
			return nil, err
		}
		return []Line{
			{"Monthly payment", sum.MonthlyPayment},
			{"Total paid", sum.TotalPaid},
			{"Total interest", sum.TotalInterest},
		}, nil
	default:
		return nil, fmt.Errorf("%w: unknown calculator kind %q", calculator.ErrInvalidInput, p.Kind)
	}
}

// Title is the report heading.
func (r *Report) Title() string {
	return r.Params.Kind.Title()
}

// ValueLabel names the charted value.
func (r *Report) ValueLabel() string {
	switch r.Params.Kind {
	case model.KindLoan:
		return "Paid to date"
	case model.KindSavings:
		return "Balance"
	default:
		return "Amount"
	}
}

// FileName is the base name, without extension, shared by all exports of r.
func (r *Report) FileName() string {
	return fmt.Sprintf("%s-%s-%s", r.Params.Kind, r.CreatedAt.Format("20060102-150405"), r.ID.String()[:8])
}

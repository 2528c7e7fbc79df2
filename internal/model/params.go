package model

import (
	"fmt"
	"math"
)

// Kind identifies a calculator variant.
type Kind string

const (
	KindCompound Kind = "compound"
	KindLoan     Kind = "loan"
	KindSavings  Kind = "savings"
)

// Kinds lists the calculator variants in tab order.
var Kinds = []Kind{KindCompound, KindLoan, KindSavings}

// ParseKind maps a name to a Kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown calculator kind %q", s)
}

// Title returns the display name of the calculator.
func (k Kind) Title() string {
	switch k {
	case KindCompound:
		return "Compound Interest"
	case KindLoan:
		return "Loan"
	case KindSavings:
		return "Monthly Deposits"
	default:
		return string(k)
	}
}

// AmountLabel names what Parameters.Amount means for this kind.
func (k Kind) AmountLabel() string {
	switch k {
	case KindLoan:
		return "Loan amount"
	case KindSavings:
		return "Monthly deposit"
	default:
		return "Principal"
	}
}

// Field names a single adjustable parameter.
type Field string

const (
	FieldAmount    Field = "amount"
	FieldRate      Field = "rate"
	FieldYears     Field = "years"
	FieldFrequency Field = "frequency"
)

// Parameters is the immutable input set of one calculator.
// Amount is the principal, the loan amount or the monthly deposit depending on Kind.
type Parameters struct {
	Kind              Kind    `json:"kind" yaml:"kind"`
	Amount            float64 `json:"amount" yaml:"amount"`
	AnnualRatePercent float64 `json:"annual_rate_percent" yaml:"annual_rate_percent"`
	Years             int     `json:"years" yaml:"years"`
	Frequency         int     `json:"frequency,omitempty" yaml:"frequency,omitempty"` // compounding periods per year, compound only, at least 1
}

// With returns a copy of p with field set to value. Years and Frequency are rounded.
func (p Parameters) With(field Field, value float64) (Parameters, error) {
	switch field {
	case FieldAmount:
		p.Amount = value
	case FieldRate:
		p.AnnualRatePercent = value
	case FieldYears:
		p.Years = int(math.Round(value))
	case FieldFrequency:
		p.Frequency = int(math.Round(value))
	default:
		return p, fmt.Errorf("unknown parameter field %q", field)
	}
	return p, nil
}

// Get returns the value of field as a float64.
func (p Parameters) Get(field Field) float64 {
	switch field {
	case FieldAmount:
		return p.Amount
	case FieldRate:
		return p.AnnualRatePercent
	case FieldYears:
		return float64(p.Years)
	case FieldFrequency:
		return float64(p.Frequency)
	default:
		return math.NaN()
	}
}

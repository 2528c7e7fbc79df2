package calculator

import (
	"errors"
	"fmt"
	"math"

	"InterestCalc/internal/model"
)

// ErrInvalidInput is returned for inputs outside a formula's domain.
var ErrInvalidInput = errors.New("invalid input")

// InputError describes which input was rejected and why.
type InputError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

func (e *InputError) Unwrap() error { return ErrInvalidInput }

func invalid(field string, value float64, reason string) error {
	return &InputError{Field: field, Value: value, Reason: reason}
}

func checkFinite(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return invalid(field, v, "must be a finite number")
	}
	return nil
}

func checkNonNegative(field string, v float64) error {
	if err := checkFinite(field, v); err != nil {
		return err
	}
	if v < 0 {
		return invalid(field, v, "must not be negative")
	}
	return nil
}

// ValidateParameters rejects a parameter set before it reaches any formula.
func ValidateParameters(p model.Parameters) error {
	if err := checkNonNegative(string(model.FieldAmount), p.Amount); err != nil {
		return err
	}
	if err := checkFinite(string(model.FieldRate), p.AnnualRatePercent); err != nil {
		return err
	}
	if p.Years <= 0 {
		return invalid(string(model.FieldYears), float64(p.Years), "must be positive")
	}
	if p.Kind == model.KindCompound && p.Frequency < 1 {
		return invalid(string(model.FieldFrequency), float64(p.Frequency), "must be at least 1")
	}
	switch p.Kind {
	case model.KindCompound, model.KindLoan, model.KindSavings:
	default:
		return fmt.Errorf("%w: unknown calculator kind %q", ErrInvalidInput, p.Kind)
	}
	return nil
}

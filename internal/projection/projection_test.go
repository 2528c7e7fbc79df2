package projection

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"InterestCalc/internal/calculator"
	"InterestCalc/internal/model"
)

func TestGenerate_LengthAndOrder(t *testing.T) {
	params := []model.Parameters{
		{Kind: model.KindCompound, Amount: 10000, AnnualRatePercent: 8, Years: 30, Frequency: 1},
		{Kind: model.KindCompound, Amount: 10000, AnnualRatePercent: 8, Years: 30, Frequency: 12},
		{Kind: model.KindLoan, Amount: 20000, AnnualRatePercent: 5, Years: 10},
		{Kind: model.KindSavings, Amount: 500, AnnualRatePercent: 8, Years: 1},
	}
	for _, p := range params {
		t.Run(string(p.Kind), func(t *testing.T) {
			s, err := GenerateFor(p)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			points := s.Points()
			if len(points) != p.Years+1 {
				t.Fatalf("expected %d points, got %d", p.Years+1, len(points))
			}
			for i, pt := range points {
				if pt.Year != i {
					t.Errorf("point %d has year %d", i, pt.Year)
				}
				if i > 0 && pt.Value < points[i-1].Value {
					t.Errorf("value decreased at year %d: %.2f -> %.2f", i, points[i-1].Value, pt.Value)
				}
				if pt.Value < 0 || math.IsNaN(pt.Value) {
					t.Errorf("year %d: invalid value %v", i, pt.Value)
				}
			}
		})
	}
}

func TestGenerate_MatchesFormulaLibrary(t *testing.T) {
	compound, _ := GenerateFor(model.Parameters{Kind: model.KindCompound, Amount: 10000, AnnualRatePercent: 8, Years: 5, Frequency: 1})
	if got := compound.At(1).Value; math.Abs(got-10800) > 1e-9 {
		t.Errorf("compound year 1: expected 10800, got %v", got)
	}
	if got := compound.At(0).Value; got != 10000 {
		t.Errorf("compound year 0: expected principal, got %v", got)
	}

	loan, _ := GenerateFor(model.Parameters{Kind: model.KindLoan, Amount: 20000, AnnualRatePercent: 5, Years: 10})
	total, _ := calculator.AmortizedLoanTotalPayment(20000, 5, 10)
	if got := loan.Final().Value; got != total {
		t.Errorf("loan final point: expected %v, got %v", total, got)
	}
	if got := loan.At(0).Value; got != 0 {
		t.Errorf("loan year 0: expected 0, got %v", got)
	}

	savings, _ := GenerateFor(model.Parameters{Kind: model.KindSavings, Amount: 500, AnnualRatePercent: 0, Years: 30})
	if got := savings.Final().Value; got != 500*30*12 {
		t.Errorf("zero-rate savings: expected %v, got %v", 500*30*12, got)
	}
}

func TestSeries_IsRestartable(t *testing.T) {
	s, err := GenerateFor(model.Parameters{Kind: model.KindSavings, Amount: 250, AnnualRatePercent: 6, Years: 12})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first := s.Points()
	second := s.Points()
	if !reflect.DeepEqual(first, second) {
		t.Error("iterating twice produced different points")
	}

	// Stopping early must not panic or leak.
	n := 0
	for range s.All() {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("expected to stop after 3 points, got %d", n)
	}
}

func TestGenerate_RejectsInvalidInput(t *testing.T) {
	cases := []model.Parameters{
		{Kind: model.KindCompound, Amount: -1, AnnualRatePercent: 5, Years: 10, Frequency: 1},
		{Kind: model.KindLoan, Amount: 1000, AnnualRatePercent: 5, Years: 0},
		{Kind: model.KindSavings, Amount: 100, AnnualRatePercent: math.NaN(), Years: 10},
		{Kind: model.KindCompound, Amount: 1000, AnnualRatePercent: 5, Years: 10, Frequency: 0},
	}
	for _, p := range cases {
		if _, err := GenerateFor(p); !errors.Is(err, calculator.ErrInvalidInput) {
			t.Errorf("%+v: expected ErrInvalidInput, got %v", p, err)
		}
	}

	if _, err := Generate(Loan{}, model.Parameters{Kind: model.KindSavings, Amount: 1, AnnualRatePercent: 1, Years: 1}); err == nil {
		t.Error("expected kind mismatch error")
	}
}

func TestSeries_Bounds(t *testing.T) {
	s, _ := GenerateFor(model.Parameters{Kind: model.KindCompound, Amount: 1000, AnnualRatePercent: -10, Years: 3, Frequency: 1})
	low, high := s.Bounds()
	if high != 1000 {
		t.Errorf("expected high 1000, got %v", high)
	}
	if math.Abs(low-729) > 1e-9 {
		t.Errorf("expected low 729, got %v", low)
	}
}

func TestAxisTicks(t *testing.T) {
	tests := []struct {
		years   int
		desired int
		want    []int
	}{
		{30, 5, []int{0, 10, 20, 30}},
		{50, 5, []int{0, 20, 40}},
		{10, 5, []int{0, 5, 10}},
		{7, 5, []int{0, 2, 4, 6}},
		{4, 5, []int{0, 1, 2, 3, 4}},
		{1, 5, []int{0, 1}},
		{0, 5, []int{0}},
		{100, 1, []int{0, 100}},
	}
	for _, tt := range tests {
		got := AxisTicks(tt.years, tt.desired)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("AxisTicks(%d, %d) = %v, want %v", tt.years, tt.desired, got, tt.want)
		}
		if len(got) > tt.desired && tt.desired >= 2 {
			t.Errorf("AxisTicks(%d, %d) returned %d ticks", tt.years, tt.desired, len(got))
		}
	}
}

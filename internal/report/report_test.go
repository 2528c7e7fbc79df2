package report

import (
	"bytes"
	"encoding/csv"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"InterestCalc/internal/model"
	"InterestCalc/internal/projection"
)

func mustReport(t *testing.T, p model.Parameters, sel *model.Selection) *Report {
	t.Helper()
	s, err := projection.GenerateFor(p)
	if err != nil {
		t.Fatalf("GenerateFor(%+v): %v", p, err)
	}
	r, err := Build(s, sel, "$")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return r
}

var (
	compoundParams = model.Parameters{Kind: model.KindCompound, Amount: 10000, AnnualRatePercent: 8, Years: 30, Frequency: 1}
	loanParams     = model.Parameters{Kind: model.KindLoan, Amount: 20000, AnnualRatePercent: 5, Years: 10}
	savingsParams  = model.Parameters{Kind: model.KindSavings, Amount: 500, AnnualRatePercent: 0, Years: 30}
)

func TestMoney(t *testing.T) {
	tests := []struct {
		symbol string
		in     float64
		want   string
	}{
		{"$", 10800, "$10,800.00"},
		{"$", 1234.567, "$1,234.57"},
		{"€", 0.5, "€0.50"},
		{"$", -2500.125, "-$2,500.13"},
		{"", 999, "999.00"},
	}
	for _, tt := range tests {
		if got := Money(tt.symbol, tt.in); got != tt.want {
			t.Errorf("Money(%q, %v) = %q, want %q", tt.symbol, tt.in, got, tt.want)
		}
	}
	if got := Percent(7.5); got != "7.50%" {
		t.Errorf("Percent(7.5) = %q", got)
	}
}

func TestBuild_Summaries(t *testing.T) {
	t.Run("compound", func(t *testing.T) {
		r := mustReport(t, compoundParams, nil)
		if len(r.Points) != 31 {
			t.Fatalf("points = %d, want 31", len(r.Points))
		}
		final := r.Points[30].Value
		if r.Summary[1].Value != final || math.Abs(r.Summary[2].Value-(final-10000)) > 1e-9 {
			t.Errorf("summary = %+v", r.Summary)
		}
		if len(r.Schedule) != 0 || len(r.Breakdown) != 0 {
			t.Error("compound report carries loan data")
		}
	})
	t.Run("loan", func(t *testing.T) {
		r := mustReport(t, loanParams, nil)
		if len(r.Schedule) != 10 || len(r.Breakdown) != 2 {
			t.Fatalf("schedule %d rows, breakdown %d slices", len(r.Schedule), len(r.Breakdown))
		}
		totalPaid := r.Summary[1].Value
		if math.Abs(r.Points[10].Value-totalPaid) > 1e-6 {
			t.Errorf("final point %v != total paid %v", r.Points[10].Value, totalPaid)
		}
	})
	t.Run("savings zero rate", func(t *testing.T) {
		r := mustReport(t, savingsParams, nil)
		if r.Summary[0].Value != 180000 || r.Summary[1].Value != 180000 || r.Summary[2].Value != 0 {
			t.Errorf("summary = %+v", r.Summary)
		}
	})
}

func TestBuild_CopiesSelection(t *testing.T) {
	sel := &model.Selection{Year: 3, Value: 1}
	r := mustReport(t, compoundParams, sel)
	sel.Year = 9
	if r.Selection == nil || r.Selection.Year != 3 {
		t.Errorf("selection = %+v, want year 3", r.Selection)
	}
}

func TestWriteCSV(t *testing.T) {
	r := mustReport(t, loanParams, nil)
	var buf bytes.Buffer
	if err := WriteCSV(&buf, r); err != nil {
		t.Fatal(err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 12 {
		t.Fatalf("rows = %d, want header + 11", len(rows))
	}
	if strings.Join(rows[0], ",") != "year,value,interest_paid,principal_paid,balance" {
		t.Errorf("header = %v", rows[0])
	}
	if rows[1][1] != "0.00" || rows[1][4] != "20000.00" {
		t.Errorf("year 0 row = %v", rows[1])
	}
	if rows[11][4] != "0.00" {
		t.Errorf("final balance = %s, want 0.00", rows[11][4])
	}
}

func TestExporters(t *testing.T) {
	dir := t.TempDir()
	r := mustReport(t, compoundParams, &model.Selection{Year: 10, Value: 21589.25})

	magic := map[Format]string{
		FormatPNG: "\x89PNG",
		FormatPDF: "%PDF",
		FormatCSV: "year,value",
	}
	for _, format := range Formats {
		t.Run(string(format), func(t *testing.T) {
			exp, err := New(format, dir, Size{Width: 800, Height: 400})
			if err != nil {
				t.Fatal(err)
			}
			if exp.Format() != format {
				t.Errorf("Format() = %q", exp.Format())
			}
			path, err := exp.Export(r)
			if err != nil {
				t.Fatalf("Export: %v", err)
			}
			if filepath.Dir(path) != dir || filepath.Ext(path) != "."+string(format) {
				t.Errorf("path = %q", path)
			}
			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.HasPrefix(data, []byte(magic[format])) {
				t.Errorf("%s output starts with %q", format, data[:min(len(data), 8)])
			}
		})
	}
}

func TestRenderChart_FlatSeries(t *testing.T) {
	r := mustReport(t, model.Parameters{Kind: model.KindSavings, Amount: 0, AnnualRatePercent: 5, Years: 5}, nil)
	var buf bytes.Buffer
	if err := RenderChart(&buf, r, Size{Width: 400, Height: 200}); err != nil {
		t.Errorf("flat series: %v", err)
	}
}

func TestNoopExporter(t *testing.T) {
	var exp Exporter = NewNoopExporter()
	path, err := exp.Export(mustReport(t, loanParams, nil))
	if path != "" || err != nil {
		t.Errorf("Export = %q, %v", path, err)
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("pdf"); err != nil || f != FormatPDF {
		t.Errorf("ParseFormat(pdf) = %q, %v", f, err)
	}
	if _, err := ParseFormat("gif"); err == nil {
		t.Error("expected error for gif")
	}
}

func TestFormatSummary(t *testing.T) {
	r := mustReport(t, loanParams, &model.Selection{Year: 2, Value: 5000})
	out := FormatSummary(r)
	for _, want := range []string{"Loan", "Loan amount:", "$20,000.00", "5.00%", "Monthly payment:", "$212.13", "Selected year 2"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
	if lines := strings.Count(FormatSeries(r), "\n"); lines != 12 {
		t.Errorf("series table has %d lines, want 12", lines)
	}
}

func TestSummarize_MatchesBuild(t *testing.T) {
	for _, p := range []model.Parameters{compoundParams, loanParams, savingsParams} {
		t.Run(string(p.Kind), func(t *testing.T) {
			s, err := projection.GenerateFor(p)
			if err != nil {
				t.Fatal(err)
			}
			lines, err := Summarize(s)
			if err != nil {
				t.Fatalf("Summarize: %v", err)
			}
			r := mustReport(t, p, nil)
			if len(lines) != len(r.Summary) {
				t.Fatalf("lines = %+v, report summary = %+v", lines, r.Summary)
			}
			for i := range lines {
				if lines[i] != r.Summary[i] {
					t.Errorf("line %d = %+v, want %+v", i, lines[i], r.Summary[i])
				}
			}
		})
	}

	if _, err := Summarize(projection.Series{}); err == nil {
		t.Error("expected error for empty series")
	}
}

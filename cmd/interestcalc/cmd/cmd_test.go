package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"InterestCalc/internal/calculator"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.yaml")}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func run(t *testing.T, args ...string) string {
	t.Helper()
	out, err := execute(t, args...)
	if err != nil {
		t.Fatalf("%v: %v\n%s", args, err, out)
	}
	return out
}

func TestLoanCommand_ZeroRate(t *testing.T) {
	out := run(t, "loan", "--amount", "20000", "--rate", "0", "--years", "10")
	for _, want := range []string{"Monthly payment:", "$166.67", "Total paid:", "$20,000.00", "Total interest:", "$0.00"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestCompoundCommand_FractionalYears(t *testing.T) {
	out := run(t, "compound", "--amount", "10000", "--rate", "8", "--years", "2.5", "--frequency", "1")
	// 10000 * 1.08^2.5
	if !strings.Contains(out, "$12,121.58") {
		t.Errorf("output missing $12,121.58:\n%s", out)
	}
	if strings.Contains(out, "Year ") {
		t.Errorf("fractional years printed a yearly table:\n%s", out)
	}
}

func TestSeriesCommand_CSV(t *testing.T) {
	out := run(t, "series", "--kind", "savings", "--amount", "500", "--rate", "0", "--years", "2")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	want := []string{"year,value", "0,0.00", "1,6000.00", "2,12000.00"}
	if len(lines) != len(want) {
		t.Fatalf("lines = %q, want %q", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestExportCommand(t *testing.T) {
	dir := t.TempDir()
	out := run(t, "export", "--kind", "loan", "--format", "csv", "--dir", dir, "--select", "3")
	path := strings.TrimSpace(out)
	if filepath.Dir(path) != dir || !strings.HasSuffix(path, ".csv") {
		t.Fatalf("path = %q", path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("exported file: %v", err)
	}
}

func TestVersionCommand(t *testing.T) {
	out := run(t, "version")
	if !strings.Contains(out, "interestcalc v"+Version) {
		t.Errorf("output = %q", out)
	}
}

func TestCompoundCommand_ZeroYearsIsPrincipal(t *testing.T) {
	out := run(t, "compound", "--amount", "10000", "--rate", "8", "--years", "0", "--frequency", "1")
	if !strings.Contains(out, "Final amount:") || !strings.Contains(out, "$10,000.00") {
		t.Errorf("output missing principal as final amount:\n%s", out)
	}
	if !strings.Contains(out, "$0.00") {
		t.Errorf("output missing zero interest:\n%s", out)
	}
}

func TestCommands_RejectZeroFrequency(t *testing.T) {
	tests := [][]string{
		{"series", "--kind", "compound", "--frequency", "0"},
		{"export", "--kind", "compound", "--format", "csv", "--dir", t.TempDir(), "--frequency", "0"},
		{"compound", "--years", "3", "--frequency", "0"},
	}
	for _, args := range tests {
		t.Run(args[0], func(t *testing.T) {
			_, err := execute(t, args...)
			if !errors.Is(err, calculator.ErrInvalidInput) {
				t.Errorf("%v: err = %v, want ErrInvalidInput", args, err)
			}
		})
	}
}

package cmd

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"InterestCalc/internal/calculator"
	"InterestCalc/internal/model"
	"InterestCalc/internal/report"
)

var (
	compoundFlags paramFlags
	compoundYears float64
)

var compoundCmd = &cobra.Command{
	Use:   "compound",
	Short: "Compound growth of a principal",
	Long: `Compound growth of a principal at an annual rate.

--years may be fractional (e.g. 2.5) or 0; the yearly table is printed only
for whole, positive years.`,
	Args: cobra.NoArgs,
	RunE: runCompound,
}

func init() {
	f := &compoundFlags
	compoundCmd.Flags().Float64Var(&f.amount, "amount", 0, "principal (default from config)")
	compoundCmd.Flags().Float64Var(&f.rate, "rate", 0, "annual interest rate in percent (default from config)")
	compoundCmd.Flags().Float64Var(&compoundYears, "years", 0, "elapsed years, may be fractional (default from config)")
	compoundCmd.Flags().IntVar(&f.frequency, "frequency", 0, "compounding periods per year (default from config)")
	compoundCmd.Flags().IntVar(&f.year, "select", -1, "highlight the value at this year")
	rootCmd.AddCommand(compoundCmd)
}

func runCompound(cmd *cobra.Command, args []string) error {
	p := compoundFlags.params(cmd, model.KindCompound)
	years := float64(p.Years)
	if cmd.Flags().Changed("years") {
		years = compoundYears
	}

	value, err := calculator.CompoundGrowthWithFrequency(p.Amount, p.AnnualRatePercent, p.Frequency, years)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	// Zero and fractional years have no yearly table.
	if years == 0 || years != math.Trunc(years) {
		fmt.Fprintf(out, "%s\n", model.KindCompound.Title())
		fmt.Fprintf(out, "%-18s %13s\n", "Principal:", report.Money(cfg.CurrencySymbol, p.Amount))
		fmt.Fprintf(out, "%-18s %13s\n", "Annual rate:", report.Percent(p.AnnualRatePercent))
		fmt.Fprintf(out, "%-18s %13g\n", "Years:", years)
		fmt.Fprintf(out, "%-18s %13d\n", "Periods per year:", p.Frequency)
		fmt.Fprintf(out, "\n%-18s %13s\n", "Final amount:", report.Money(cfg.CurrencySymbol, value))
		fmt.Fprintf(out, "%-18s %13s\n", "Interest earned:", report.Money(cfg.CurrencySymbol, value-p.Amount))
		return nil
	}

	p.Years = int(years)
	r, err := buildReport(p, compoundFlags.year)
	if err != nil {
		return err
	}
	fmt.Fprint(out, report.FormatSummary(r))
	fmt.Fprintln(out)
	fmt.Fprint(out, report.FormatSeries(r))
	return nil
}

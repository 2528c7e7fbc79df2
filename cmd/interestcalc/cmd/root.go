package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"InterestCalc/internal/config"
	"InterestCalc/internal/model"
	"InterestCalc/internal/projection"
	"InterestCalc/internal/report"
	"InterestCalc/internal/selection"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "interestcalc",
	Short: "Compound interest, loan and savings calculators",
	Long: `interestcalc projects compound growth, amortized loans and monthly
deposit savings year by year.

Calculators:
  compound  - principal growing at an annual rate
  loan      - monthly payment, total paid and interest of an amortized loan
  savings   - future value of a fixed monthly deposit`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path := config.Path(cfgFile)
		c, err := config.Load(path)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := c.Validate(); err != nil {
			return fmt.Errorf("config validation: %w", err)
		}
		cfg = c
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		log.Printf("[ERROR] %v", err)
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $INTERESTCALC_CONFIG or ./configs/config.yaml)")
}

// paramFlags are the calculator inputs shared by most commands.
type paramFlags struct {
	amount    float64
	rate      float64
	years     int
	frequency int
	kind      string
	year      int
}

func addParamFlags(c *cobra.Command, p *paramFlags) {
	c.Flags().Float64Var(&p.amount, "amount", 0, "principal, loan amount or monthly deposit (default from config)")
	c.Flags().Float64Var(&p.rate, "rate", 0, "annual interest rate in percent (default from config)")
	c.Flags().IntVar(&p.years, "years", 0, "number of years (default from config)")
	c.Flags().IntVar(&p.frequency, "frequency", 0, "compounding periods per year, compound only (default from config)")
}

func addKindFlag(c *cobra.Command, p *paramFlags) {
	c.Flags().StringVar(&p.kind, "kind", string(model.KindCompound), "calculator: compound, loan or savings")
}

// params starts from the configured defaults of kind and applies explicitly set flags.
func (p *paramFlags) params(c *cobra.Command, kind model.Kind) model.Parameters {
	out := cfg.Params(kind)
	if c.Flags().Changed("amount") {
		out.Amount = p.amount
	}
	if c.Flags().Changed("rate") {
		out.AnnualRatePercent = p.rate
	}
	if c.Flags().Changed("years") {
		out.Years = p.years
	}
	if kind == model.KindCompound && c.Flags().Changed("frequency") {
		out.Frequency = p.frequency
	}
	return out
}

// buildReport generates the series for params and, when year >= 0, selects it.
func buildReport(params model.Parameters, year int) (*report.Report, error) {
	series, err := projection.GenerateFor(params)
	if err != nil {
		return nil, err
	}
	var sel *model.Selection
	if year >= 0 {
		if year > params.Years {
			return nil, fmt.Errorf("--select %d is beyond %d years", year, params.Years)
		}
		sel = selection.Resolve(selection.Normalize(float64(year), float64(params.Years)), series)
	}
	return report.Build(series, sel, cfg.CurrencySymbol)
}

func exportSize() report.Size {
	return report.Size{Width: cfg.Export.ChartWidth, Height: cfg.Export.ChartHeight}
}

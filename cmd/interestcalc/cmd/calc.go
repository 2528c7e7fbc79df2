package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"InterestCalc/internal/model"
	"InterestCalc/internal/report"
)

func newCalcCmd(kind model.Kind, short string) *cobra.Command {
	var p paramFlags
	c := &cobra.Command{
		Use:   string(kind),
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := buildReport(p.params(cmd, kind), p.year)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), report.FormatSummary(r))
			fmt.Fprintln(cmd.OutOrStdout())
			fmt.Fprint(cmd.OutOrStdout(), report.FormatSeries(r))
			return nil
		},
	}
	addParamFlags(c, &p)
	c.Flags().Lookup("frequency").Hidden = true
	c.Flags().IntVar(&p.year, "select", -1, "highlight the value at this year")
	return c
}

func init() {
	rootCmd.AddCommand(
		newCalcCmd(model.KindLoan, "Monthly payment and total interest of an amortized loan"),
		newCalcCmd(model.KindSavings, "Future value of a monthly deposit"),
	)
}


package cmd

import (
	"github.com/spf13/cobra"

	"InterestCalc/internal/model"
	"InterestCalc/internal/report"
)

var seriesFlags paramFlags

var seriesCmd = &cobra.Command{
	Use:   "series",
	Short: "Print the yearly series as CSV",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := model.ParseKind(seriesFlags.kind)
		if err != nil {
			return err
		}
		r, err := buildReport(seriesFlags.params(cmd, kind), -1)
		if err != nil {
			return err
		}
		return report.WriteCSV(cmd.OutOrStdout(), r)
	},
}

func init() {
	addParamFlags(seriesCmd, &seriesFlags)
	addKindFlag(seriesCmd, &seriesFlags)
	rootCmd.AddCommand(seriesCmd)
}

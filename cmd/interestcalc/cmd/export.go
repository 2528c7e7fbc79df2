package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"InterestCalc/internal/model"
	"InterestCalc/internal/report"
)

var (
	exportFlags  paramFlags
	exportFormat string
	exportDir    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a chart, PDF report or CSV file",
	Long: `Write the projection of one calculator to a file.

Formats:
  png  - line chart
  pdf  - parameters, summary, chart and year-by-year table
  csv  - yearly series (loan adds the amortization columns)`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	addParamFlags(exportCmd, &exportFlags)
	addKindFlag(exportCmd, &exportFlags)
	exportCmd.Flags().IntVar(&exportFlags.year, "select", -1, "highlight the value at this year")
	exportCmd.Flags().StringVar(&exportFormat, "format", string(report.FormatPNG), "png, pdf or csv")
	exportCmd.Flags().StringVar(&exportDir, "dir", "", "output directory (default from config)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	kind, err := model.ParseKind(exportFlags.kind)
	if err != nil {
		return err
	}
	format, err := report.ParseFormat(exportFormat)
	if err != nil {
		return err
	}
	dir := cfg.Export.Dir
	if exportDir != "" {
		dir = exportDir
	}

	r, err := buildReport(exportFlags.params(cmd, kind), exportFlags.year)
	if err != nil {
		return err
	}
	exp, err := report.New(format, dir, exportSize())
	if err != nil {
		return err
	}
	path, err := exp.Export(r)
	if err != nil {
		return fmt.Errorf("export %s: %w", format, err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

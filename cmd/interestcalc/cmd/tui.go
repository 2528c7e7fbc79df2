package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"InterestCalc/internal/report"
	"InterestCalc/internal/tui"
)

var (
	tuiFormat  string
	tuiLogFile string
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start the interactive calculators",
	Long: `Start the terminal interface with one tab per calculator.

Navigation:
  Tab / Shift+Tab  - switch calculator
  Up / Down        - choose a slider or the chart
  Left / Right     - adjust the slider, or move the chart cursor
  Esc              - clear the chart selection
  e                - export the current view
  q                - quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().StringVar(&tuiFormat, "format", string(report.FormatPNG), "export format for the e key: png, pdf or csv")
	tuiCmd.Flags().StringVar(&tuiLogFile, "log-file", "", "write logs to this file while the interface runs")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	format, err := report.ParseFormat(tuiFormat)
	if err != nil {
		return err
	}
	exp, err := report.New(format, cfg.Export.Dir, exportSize())
	if err != nil {
		return err
	}

	// The terminal belongs to the interface while it runs.
	if tuiLogFile != "" {
		f, err := tea.LogToFile(tuiLogFile, "interestcalc")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
		defer log.SetOutput(os.Stderr)
	}

	return tui.Run(cfg, exp)
}

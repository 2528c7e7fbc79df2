package report

import (
	"fmt"
	"strings"
)

// FormatSummary renders the parameters and summary figures as plain text.
func FormatSummary(r *Report) string {
	var b strings.Builder
	p := r.Params

	b.WriteString(fmt.Sprintf("%s\n", r.Title()))
	b.WriteString(strings.Repeat("─", 32) + "\n")
	b.WriteString(fmt.Sprintf("%-18s %13s\n", p.Kind.AmountLabel()+":", Money(r.Currency, p.Amount)))
	b.WriteString(fmt.Sprintf("%-18s %13s\n", "Annual rate:", Percent(p.AnnualRatePercent)))
	b.WriteString(fmt.Sprintf("%-18s %13d\n", "Years:", p.Years))
	if p.Frequency > 1 {
		b.WriteString(fmt.Sprintf("%-18s %13d\n", "Periods per year:", p.Frequency))
	}
	b.WriteString("\n")
	for _, l := range r.Summary {
		b.WriteString(fmt.Sprintf("%-18s %13s\n", l.Label+":", Money(r.Currency, l.Value)))
	}
	if sel := r.Selection; sel != nil {
		b.WriteString(fmt.Sprintf("\nSelected year %d: %s\n", sel.Year, Money(r.Currency, sel.Value)))
	}
	return b.String()
}

// FormatSeries renders the yearly series as an aligned table.
func FormatSeries(r *Report) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%4s  %16s\n", "Year", r.ValueLabel()))
	for _, pt := range r.Points {
		b.WriteString(fmt.Sprintf("%4d  %16s\n", pt.Year, Money(r.Currency, pt.Value)))
	}
	return b.String()
}

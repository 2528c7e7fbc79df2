package report

import (
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// Cents rounds v half away from zero to two decimals.
func Cents(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}

// Money formats v with the currency symbol and thousands separators, e.g. "$21,589.25".
func Money(symbol string, v float64) string {
	d := Cents(v)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	return sign + symbol + humanize.FormatFloat("#,###.##", d.InexactFloat64())
}

// Percent formats an annual rate such as 7.5 as "7.50%".
func Percent(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2) + "%"
}

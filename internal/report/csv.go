package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// WriteCSV writes the yearly series, one row per year. Loan reports carry
// the amortization columns too.
func WriteCSV(w io.Writer, r *Report) error {
	cw := csv.NewWriter(w)
	header := []string{"year", "value"}
	loan := len(r.Schedule) > 0
	if loan {
		header = append(header, "interest_paid", "principal_paid", "balance")
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, pt := range r.Points {
		row := []string{strconv.Itoa(pt.Year), Cents(pt.Value).StringFixed(2)}
		if loan {
			if pt.Year == 0 {
				row = append(row, "0.00", "0.00", Cents(r.Params.Amount).StringFixed(2))
			} else {
				a := r.Schedule[pt.Year-1]
				row = append(row,
					Cents(a.InterestPaid).StringFixed(2),
					Cents(a.PrincipalPaid).StringFixed(2),
					Cents(a.Balance).StringFixed(2))
			}
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row %d: %w", pt.Year, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// CSVExporter writes the series as comma separated values.
type CSVExporter struct {
	Dir string
}

func (e *CSVExporter) Format() Format { return FormatCSV }

func (e *CSVExporter) Export(r *Report) (string, error) {
	f, path, err := create(e.Dir, r, FormatCSV)
	if err != nil {
		return "", err
	}
	return finish(f, path, WriteCSV(f, r))
}

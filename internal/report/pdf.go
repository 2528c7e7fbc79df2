package report

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/go-pdf/fpdf"
)

const (
	pageWidth    = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 20.0
	contentWidth = pageWidth - marginLeft - marginRight
)

type pdfReport struct {
	pdf  *fpdf.Fpdf
	tr   func(string) string
	r    *Report
	size Size
}

// WritePDF renders a one-report document: parameters, summary, chart and the
// yearly table.
func WritePDF(w io.Writer, r *Report, size Size) error {
	doc := &pdfReport{pdf: fpdf.New("P", "mm", "A4", ""), r: r, size: size}
	// Core fonts are cp1252; translate so symbols such as € and £ survive.
	doc.tr = doc.pdf.UnicodeTranslatorFromDescriptor("")
	doc.pdf.SetMargins(marginLeft, marginTop, marginRight)
	doc.pdf.SetAutoPageBreak(true, marginBottom)
	doc.pdf.SetTitle(r.Title(), true)

	doc.pdf.AddPage()
	doc.addHeader()
	doc.addParameters()
	doc.addSummary()
	if err := doc.addChart(); err != nil {
		return err
	}
	doc.addYearTable()

	if err := doc.pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func (d *pdfReport) money(v float64) string { return d.tr(Money(d.r.Currency, v)) }

func (d *pdfReport) section(title string) {
	d.pdf.Ln(4)
	d.pdf.SetFont("Arial", "B", 13)
	d.pdf.SetTextColor(0, 51, 102)
	d.pdf.CellFormat(contentWidth, 8, title, "", 1, "L", false, 0, "")
	d.pdf.SetFont("Arial", "", 10)
	d.pdf.SetTextColor(0, 0, 0)
}

func (d *pdfReport) row(label, value string) {
	d.pdf.CellFormat(60, 6, label, "", 0, "L", false, 0, "")
	d.pdf.CellFormat(contentWidth-60, 6, value, "", 1, "R", false, 0, "")
}

func (d *pdfReport) addHeader() {
	d.pdf.SetFont("Arial", "B", 22)
	d.pdf.SetTextColor(0, 51, 102)
	d.pdf.CellFormat(contentWidth, 12, d.r.Title(), "", 1, "C", false, 0, "")
	d.pdf.SetFont("Arial", "", 9)
	d.pdf.SetTextColor(100, 100, 100)
	d.pdf.CellFormat(contentWidth, 5,
		fmt.Sprintf("Generated %s  |  Report %s", d.r.CreatedAt.Format("2 January 2006 15:04"), d.r.ID),
		"", 1, "C", false, 0, "")
}

func (d *pdfReport) addParameters() {
	p := d.r.Params
	d.section("Parameters")
	d.row(p.Kind.AmountLabel(), d.money(p.Amount))
	d.row("Annual rate", Percent(p.AnnualRatePercent))
	d.row("Years", strconv.Itoa(p.Years))
	if p.Frequency > 1 {
		d.row("Compounding periods per year", strconv.Itoa(p.Frequency))
	}
}

func (d *pdfReport) addSummary() {
	d.section("Summary")
	for _, l := range d.r.Summary {
		d.row(l.Label, d.money(l.Value))
	}
	for _, s := range d.r.Breakdown {
		d.row(s.Name+" share", d.money(s.Value))
	}
	if sel := d.r.Selection; sel != nil {
		d.row(fmt.Sprintf("Selected year %d", sel.Year), d.money(sel.Value))
	}
}

func (d *pdfReport) addChart() error {
	var buf bytes.Buffer
	if err := RenderChart(&buf, d.r, d.size); err != nil {
		return err
	}
	opts := fpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}
	name := "chart-" + d.r.ID.String()
	d.pdf.RegisterImageOptionsReader(name, opts, &buf)

	d.section("Chart")
	height := contentWidth * float64(d.size.Height) / float64(d.size.Width)
	d.pdf.ImageOptions(name, marginLeft, d.pdf.GetY(), contentWidth, height, true, opts, 0, "")
	return d.pdf.Error()
}

func (d *pdfReport) addYearTable() {
	d.pdf.AddPage()
	d.section("Year by year")

	loan := len(d.r.Schedule) > 0
	headers := []string{"Year", d.r.ValueLabel()}
	widths := []float64{20, contentWidth - 20}
	if loan {
		headers = append(headers, "Interest", "Principal", "Balance")
		widths = []float64{20, 40, 40, 40, contentWidth - 140}
	}

	d.pdf.SetFont("Arial", "B", 10)
	d.pdf.SetFillColor(245, 247, 250)
	for i, h := range headers {
		d.pdf.CellFormat(widths[i], 7, h, "1", 0, "C", true, 0, "")
	}
	d.pdf.Ln(-1)

	d.pdf.SetFont("Arial", "", 9)
	for _, pt := range d.r.Points {
		cells := []string{strconv.Itoa(pt.Year), d.money(pt.Value)}
		if loan {
			if pt.Year == 0 {
				cells = append(cells, "", "", d.money(d.r.Params.Amount))
			} else {
				a := d.r.Schedule[pt.Year-1]
				cells = append(cells, d.money(a.InterestPaid), d.money(a.PrincipalPaid), d.money(a.Balance))
			}
		}
		fill := d.r.Selection != nil && d.r.Selection.Year == pt.Year
		for i, c := range cells {
			align := "R"
			if i == 0 {
				align = "C"
			}
			d.pdf.CellFormat(widths[i], 6, c, "1", 0, align, fill, 0, "")
		}
		d.pdf.Ln(-1)
	}
}

// PDFExporter writes a printable report.
type PDFExporter struct {
	Dir  string
	Size Size
}

func (e *PDFExporter) Format() Format { return FormatPDF }

func (e *PDFExporter) Export(r *Report) (string, error) {
	f, path, err := create(e.Dir, r, FormatPDF)
	if err != nil {
		return "", err
	}
	return finish(f, path, WritePDF(f, r, e.Size))
}

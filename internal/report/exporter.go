package report

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// Format selects an export file type.
type Format string

const (
	FormatPNG Format = "png"
	FormatPDF Format = "pdf"
	FormatCSV Format = "csv"
)

// Formats lists the supported export formats.
var Formats = []Format{FormatPNG, FormatPDF, FormatCSV}

// ParseFormat maps a name to a Format.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown export format %q (want png, pdf or csv)", s)
}

// Exporter writes a report somewhere and returns where.
type Exporter interface {
	Export(r *Report) (string, error)
	Format() Format
}

// Size is the pixel size of rendered charts.
type Size struct {
	Width  int
	Height int
}

// New returns the exporter for format writing into dir.
func New(format Format, dir string, size Size) (Exporter, error) {
	switch format {
	case FormatPNG:
		return &PNGExporter{Dir: dir, Size: size}, nil
	case FormatPDF:
		return &PDFExporter{Dir: dir, Size: size}, nil
	case FormatCSV:
		return &CSVExporter{Dir: dir}, nil
	default:
		return nil, fmt.Errorf("unknown export format %q", format)
	}
}

// create opens dir/<report file name>.<ext> for writing.
func create(dir string, r *Report, ext Format) (*os.File, string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, "", fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(dir, r.FileName()+"."+string(ext))
	f, err := os.Create(path)
	if err != nil {
		return nil, "", fmt.Errorf("create %s: %w", path, err)
	}
	return f, path, nil
}

func finish(f *os.File, path string, err error) (string, error) {
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
		return "", err
	}
	log.Printf("[INFO] report exported: %s", path)
	return path, nil
}

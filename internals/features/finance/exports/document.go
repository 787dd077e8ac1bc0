package exports

import (
	"io"
	"strings"
	"time"

	"pmics_backend/internals/helpers/format"
)

type Format string

const (
	FormatCSV   Format = "csv"
	FormatExcel Format = "excel"
	FormatPDF   Format = "pdf"
)

func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "excel", "xlsx":
		return FormatExcel
	case "pdf":
		return FormatPDF
	case "", "csv":
		return FormatCSV
	default:
		return Format(strings.ToLower(strings.TrimSpace(s)))
	}
}

// Writer menghasilkan satu format file dari Document.
// Instance di-inject lewat NewExporter, tidak ada registry global.
type Writer interface {
	Format() Format
	Extension() string
	ContentType() string
	Write(w io.Writer, doc *Document) error
}

type Metric struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Document: semua yang dibutuhkan writer (judul, filter, ringkasan, tabel).
type Document struct {
	Title       string
	Subtitle    string
	Institution string
	Program     string
	Sheet       string
	FilterText  string
	Badge       string // teks singkat di logo PDF, mis. "DU"
	Currency    string
	GeneratedAt time.Time

	Summary    []Metric // grid 2x2
	Allocation []Metric // grid 3x1

	Table Table
}

// Display: nilai sel untuk tampilan (PDF), uang pakai kode mata uang.
func (d *Document) Display(row, col int) string {
	c := d.Table.Rows[row][col]
	switch d.Table.Columns[col].Kind {
	case KindMoney:
		return format.Money(d.Currency, c.Number)
	case KindNumber:
		return format.Number(c.Number)
	default:
		return c.Text
	}
}

func (d *Document) generatedAt() time.Time {
	if d.GeneratedAt.IsZero() {
		return time.Now()
	}
	return d.GeneratedAt
}

package exports

import (
	"encoding/csv"
	"io"
)

type CSVWriter struct{}

func NewCSVWriter() *CSVWriter { return &CSVWriter{} }

func (CSVWriter) Format() Format { return FormatCSV }
func (CSVWriter) Extension() string { return "csv" }
func (CSVWriter) ContentType() string { return "text/csv; charset=utf-8" }

// Write: header nama tampilan, nilai mentah. Nilai yang mengandung koma /
// kutip otomatis di-quote oleh encoding/csv (kutip digandakan).
func (CSVWriter) Write(w io.Writer, doc *Document) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(doc.Table.Headers()); err != nil {
		return err
	}
	rec := make([]string, len(doc.Table.Columns))
	for i := range doc.Table.Rows {
		for j := range doc.Table.Columns {
			rec[j] = doc.Table.Raw(i, j)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

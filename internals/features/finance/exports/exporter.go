package exports

import (
	"bytes"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

var (
	ErrNoData            = errors.New("no data available to export")
	ErrUnsupportedFormat = errors.New("unsupported export format")
)

// ExportError: format pilihan gagal dan fallback CSV juga gagal.
type ExportError struct {
	Preferred Format
	Cause     error
	Fallback  error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("all export methods failed: %s: %v; csv fallback: %v", e.Preferred, e.Cause, e.Fallback)
}

func (e *ExportError) Unwrap() []error { return []error{e.Cause, e.Fallback} }

type Result struct {
	Format      Format
	Filename    string
	ContentType string
	Body        []byte
	Records     int

	// Fallback = true bila format pilihan gagal lalu diganti CSV.
	// Cause berisi error aslinya.
	Fallback bool
	Cause    error
}

type Exporter struct {
	writers  map[Format]Writer
	fallback Format
	log      *zap.Logger
}

// NewExporter: writer CSV wajib ada sebagai fallback.
func NewExporter(log *zap.Logger, writers ...Writer) *Exporter {
	if log == nil {
		log = zap.NewNop()
	}
	e := &Exporter{writers: map[Format]Writer{}, fallback: FormatCSV, log: log.Named("export")}
	for _, w := range writers {
		e.writers[w.Format()] = w
	}
	if _, ok := e.writers[FormatCSV]; !ok {
		e.writers[FormatCSV] = NewCSVWriter()
	}
	return e
}

// Formats: format yang punya writer terdaftar (CSV selalu ada).
func (e *Exporter) Formats() []Format {
	out := make([]Format, 0, len(e.writers))
	for _, f := range []Format{FormatCSV, FormatExcel, FormatPDF} {
		if _, ok := e.writers[f]; ok {
			out = append(out, f)
		}
	}
	return out
}

// Export: format pilihan → (gagal) CSV → (gagal) *ExportError.
func (e *Exporter) Export(doc *Document, preferred Format, basename string) (*Result, error) {
	if doc == nil || doc.Table.Len() == 0 {
		return nil, ErrNoData
	}

	w, ok := e.writers[preferred]
	var cause error
	if !ok {
		cause = fmt.Errorf("%w: %q", ErrUnsupportedFormat, preferred)
	} else {
		body, err := render(w, doc)
		if err == nil {
			e.log.Info("export generated",
				zap.String("format", string(preferred)),
				zap.Int("records", doc.Table.Len()),
				zap.Int("bytes", len(body)))
			return newResult(w, basename, body, doc.Table.Len()), nil
		}
		cause = err
	}

	e.log.Warn("export failed, falling back to csv",
		zap.String("format", string(preferred)),
		zap.Error(cause))

	fw := e.writers[e.fallback]
	body, err := render(fw, doc)
	if err != nil {
		e.log.Error("all export methods failed", zap.Error(err))
		return nil, &ExportError{Preferred: preferred, Cause: cause, Fallback: err}
	}
	res := newResult(fw, basename, body, doc.Table.Len())
	res.Fallback = preferred != e.fallback
	res.Cause = cause
	return res, nil
}

func newResult(w Writer, basename string, body []byte, n int) *Result {
	return &Result{
		Format:      w.Format(),
		Filename:    basename + "." + w.Extension(),
		ContentType: w.ContentType(),
		Body:        body,
		Records:     n,
	}
}

// render menulis ke buffer; panic dari writer diubah jadi error.
func render(w Writer, doc *Document) (body []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s writer panic: %v", w.Format(), r)
		}
	}()
	var buf bytes.Buffer
	if err := w.Write(&buf, doc); err != nil {
		return nil, fmt.Errorf("%s writer: %w", w.Format(), err)
	}
	return buf.Bytes(), nil
}

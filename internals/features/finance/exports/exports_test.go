package exports

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"rsc.io/pdf"
)

type item struct {
	batch   string
	program string
	income  float64
}

var itemDefs = []ColumnDef[item]{
	TextColumn("batch_id", "Batch ID", func(i item) string { return i.batch }),
	TextColumn("program_code", "Program Code", func(i item) string { return i.program }),
	MoneyColumn("total_income", "Total Income", func(i item) float64 { return i.income }),
}

func makeItems(n int) []item {
	out := make([]item, n)
	for i := range out {
		out[i] = item{batch: fmt.Sprintf("B-%03d", i), program: "CSE", income: float64(i) * 1000.5}
	}
	return out
}

func makeDoc(t *testing.T, rows []item, selected ...string) *Document {
	t.Helper()
	tbl, err := Flatten(rows, itemDefs, selected)
	require.NoError(t, err)
	return &Document{
		Title:       "PMICS Program - Financial Report",
		Subtitle:    "Fiscal Year: 2025",
		Institution: "University of Dhaka",
		Program:     "PMICS",
		Badge:       "DU",
		Currency:    "BDT",
		FilterText:  "All batches and programs",
		GeneratedAt: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
		Summary:     []Metric{{"Total Expected Income", "BDT 1.00"}, {"Total Collected", "BDT 1.00"}, {"Collection Rate", "100.00%"}, {"Program Expenses", "BDT 0.55"}},
		Allocation:  []Metric{{"Department Development", "BDT 0.05"}, {"Research Allocation", "BDT 0.05"}, {"University Income", "BDT 0.35"}},
		Table:       tbl,
	}
}

/* ---------- writers for failure paths ---------- */

type failingWriter struct {
	format Format
	panics bool
}

func (f failingWriter) Format() Format      { return f.format }
func (f failingWriter) Extension() string   { return string(f.format) }
func (f failingWriter) ContentType() string { return "application/octet-stream" }
func (f failingWriter) Write(io.Writer, *Document) error {
	if f.panics {
		panic("font table corrupted")
	}
	return errors.New("renderer unavailable")
}

/* ---------- flatten ---------- */

func TestFlattenSelectedColumns(t *testing.T) {
	rows := makeItems(2)

	all, err := Flatten(rows, itemDefs, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Batch ID", "Program Code", "Total Income"}, all.Headers())

	// urutan kanonik, bukan urutan permintaan
	some, err := Flatten(rows, itemDefs, []string{"total_income", "batch_id"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Batch ID", "Total Income"}, some.Headers())
	assert.Equal(t, "B-001", some.Raw(1, 0))
	assert.Equal(t, "1000.5", some.Raw(1, 1))

	_, err = Flatten(rows, itemDefs, []string{"nope"})
	assert.ErrorIs(t, err, ErrUnknownColumn)
}

/* ---------- csv ---------- */

func TestCSVRoundTripPreservesDelimiters(t *testing.T) {
	rows := []item{
		{batch: "B-1", program: "Science, Tech", income: 10},
		{batch: `He said "hi"`, program: "CSE", income: 2.5},
	}
	doc := makeDoc(t, rows)

	var buf bytes.Buffer
	require.NoError(t, NewCSVWriter().Write(&buf, doc))

	recs, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.Equal(t, []string{"Batch ID", "Program Code", "Total Income"}, recs[0])
	assert.Equal(t, "Science, Tech", recs[1][1])
	assert.Equal(t, `He said "hi"`, recs[2][0])
	assert.Equal(t, "2.5", recs[2][2])
}

/* ---------- exporter ---------- */

func TestExporterFallsBackToCSV(t *testing.T) {
	tests := []struct {
		name   string
		writer Writer
	}{
		{"writer returns error", failingWriter{format: FormatPDF}},
		{"writer panics", failingWriter{format: FormatPDF, panics: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := makeItems(23)
			ex := NewExporter(nil, NewCSVWriter(), tt.writer)

			res, err := ex.Export(makeDoc(t, rows), FormatPDF, "PMICS_Financial_Report_2025")
			require.NoError(t, err)
			assert.Equal(t, FormatCSV, res.Format)
			assert.True(t, res.Fallback)
			assert.Error(t, res.Cause)
			assert.Equal(t, "PMICS_Financial_Report_2025.csv", res.Filename)

			recs, err := csv.NewReader(bytes.NewReader(res.Body)).ReadAll()
			require.NoError(t, err)
			assert.Len(t, recs, len(rows)+1)
		})
	}
}

func TestExporterUnknownFormatFallsBack(t *testing.T) {
	ex := NewExporter(nil)
	res, err := ex.Export(makeDoc(t, makeItems(1)), Format("docx"), "r")
	require.NoError(t, err)
	assert.True(t, res.Fallback)
	assert.ErrorIs(t, res.Cause, ErrUnsupportedFormat)
}

func TestExporterTotalFailure(t *testing.T) {
	ex := NewExporter(nil, failingWriter{format: FormatCSV}, failingWriter{format: FormatPDF, panics: true})
	res, err := ex.Export(makeDoc(t, makeItems(3)), FormatPDF, "r")
	assert.Nil(t, res)

	var exErr *ExportError
	require.ErrorAs(t, err, &exErr)
	assert.Equal(t, FormatPDF, exErr.Preferred)
	assert.Contains(t, exErr.Cause.Error(), "panic")
	assert.Contains(t, exErr.Fallback.Error(), "renderer unavailable")
}

func TestExporterNoData(t *testing.T) {
	ex := NewExporter(nil)
	_, err := ex.Export(makeDoc(t, nil), FormatCSV, "r")
	assert.ErrorIs(t, err, ErrNoData)
}

/* ---------- excel ---------- */

func TestExcelWriter(t *testing.T) {
	doc := makeDoc(t, makeItems(4))
	var buf bytes.Buffer
	require.NoError(t, NewExcelWriter("PMICS Administration").Write(&buf, doc))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Financial Report"}, f.GetSheetList())

	v, err := f.GetCellValue("Financial Report", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Batch ID", v)

	v, err = f.GetCellValue("Financial Report", "A5", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "B-003", v)

	w, err := f.GetColWidth("Financial Report", "A")
	require.NoError(t, err)
	assert.Equal(t, 12.0, w)
	w, err = f.GetColWidth("Financial Report", "C")
	require.NoError(t, err)
	assert.Equal(t, 18.0, w)

	props, err := f.GetDocProps()
	require.NoError(t, err)
	assert.Equal(t, doc.Title, props.Title)
}

func TestColumnWidth(t *testing.T) {
	assert.Equal(t, 12.0, ColumnWidth("Batch ID"))
	assert.Equal(t, 33.0, ColumnWidth("Department Development"))
}

/* ---------- pdf ---------- */

type fixedMeasurer struct{ charWidth float64 }

func (m fixedMeasurer) Lines(text string, width float64, bold bool) int {
	n := int(math.Ceil(float64(len(text)) * m.charWidth / width))
	if n < 1 {
		return 1
	}
	return n
}

func TestComputeLayoutPaginatesAndRepeatsHeader(t *testing.T) {
	doc := makeDoc(t, makeItems(23))
	cfg := DefaultLayoutConfig()
	cfg.TableTop = 100

	lay := ComputeLayout(doc, cfg, fixedMeasurer{charWidth: 0.1})

	assert.Equal(t, 10.0, lay.HeaderHeight)
	require.Len(t, lay.Pages, 2)
	assert.Equal(t, 100.0, lay.Pages[0].HeaderY)
	assert.Equal(t, cfg.Margin, lay.Pages[1].HeaderY)
	assert.Len(t, lay.Pages[0].Rows, 9)
	assert.Len(t, lay.Pages[1].Rows, 14)
	assert.Equal(t, cfg.Margin+lay.HeaderHeight, lay.Pages[1].Rows[0].Y)

	// tinggi glyph footer (8pt) dihitung dari baseline pertama
	footerTop := cfg.FooterBaselines()[0] - 8*ptToMM
	seen := 0
	for _, p := range lay.Pages {
		for _, r := range p.Rows {
			assert.Equal(t, seen, r.Index)
			assert.Equal(t, r.Index%2 == 0, r.Shaded)
			assert.LessOrEqual(t, r.Y+r.Height, cfg.TableBottom())
			assert.Less(t, r.Y+r.Height, footerTop)
			seen++
		}
	}
	assert.Equal(t, 23, seen)
}

func TestFooterBandInsidePage(t *testing.T) {
	tests := []struct {
		name string
		cfg  LayoutConfig
	}{
		{"default", DefaultLayoutConfig()},
		{"tall footer", func() LayoutConfig { c := DefaultLayoutConfig(); c.FooterHeight = 20; return c }()},
		{"portrait", func() LayoutConfig { c := DefaultLayoutConfig(); c.PageWidth, c.PageHeight = 210, 297; return c }()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fy := tt.cfg.FooterBaselines()
			assert.Greater(t, fy[0]-8*ptToMM, tt.cfg.TableBottom())
			assert.Less(t, fy[0], fy[1])
			assert.Less(t, fy[1], fy[2])
			assert.LessOrEqual(t, fy[2], tt.cfg.PageHeight-tt.cfg.BottomMargin)
		})
	}
}

func TestComputeLayoutColumnWidthsAndWrap(t *testing.T) {
	rows := []item{{batch: "short"}, {batch: "a-very-long-batch-identifier-that-wraps-over-several-lines", program: "CSE"}}
	doc := makeDoc(t, rows)
	cfg := DefaultLayoutConfig()

	lay := ComputeLayout(doc, cfg, fixedMeasurer{charWidth: 1.5})

	cw := cfg.ContentWidth()
	assert.InDelta(t, cw*0.15, lay.Columns[0].Width, 1e-9)
	assert.InDelta(t, cw*0.12, lay.Columns[1].Width, 1e-9)
	assert.InDelta(t, cw*0.09, lay.Columns[2].Width, 1e-9)
	assert.False(t, lay.Columns[0].Right)
	assert.True(t, lay.Columns[2].Right)

	r := lay.Pages[0].Rows
	assert.Equal(t, 8.0, r[0].Height)
	assert.Greater(t, r[1].Height, 8.0)
}

func TestPDFWriterProducesReadableDocument(t *testing.T) {
	doc := makeDoc(t, makeItems(60))
	var buf bytes.Buffer
	require.NoError(t, NewPDFWriter().Write(&buf, doc))
	require.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))

	r, err := pdf.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, r.NumPage(), 3)
}

func TestFilename(t *testing.T) {
	tests := []struct {
		parts []string
		want  string
	}{
		{[]string{"all", "all", "all"}, "PMICS_Financial_Report_2025"},
		{[]string{"CSE", "all", "Spring 2025"}, "PMICS_Financial_Report_2025_CSE_Spring-2025"},
		{[]string{"CSE", "B/01", ""}, "PMICS_Financial_Report_2025_CSE_B-01"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Filename("PMICS_Financial_Report", 2025, tt.parts...))
	}
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatExcel, ParseFormat("XLSX"))
	assert.Equal(t, FormatPDF, ParseFormat("pdf"))
	assert.Equal(t, FormatCSV, ParseFormat(""))
	assert.Equal(t, Format("docx"), ParseFormat("docx"))
}

func TestOneLine(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantLen int
	}{
		{"ascii", strings.Repeat("x", 500), 200},
		// "৳" = 3 byte; 199 byte x lalu rune → rune tidak muat, dibuang utuh
		{"taka sign at boundary", strings.Repeat("x", 199) + "৳৳", 199},
		{"bengali text", strings.Repeat("টাকা", 40), 198},
		{"emoji", strings.Repeat("💰", 60), 200},
		{"short", "gagal ৳", len("gagal ৳")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := oneLine(tt.in)
			assert.True(t, utf8.ValidString(got))
			assert.Len(t, got, tt.wantLen)
			assert.True(t, strings.HasPrefix(tt.in, got))
		})
	}
	assert.Equal(t, "a b c", oneLine("a\nb\rc"))
}

package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pmics_backend/internals/configs"
	"pmics_backend/internals/features/finance/exports"
	"pmics_backend/internals/features/finance/reports/dto"
	m "pmics_backend/internals/features/finance/reports/model"
	"pmics_backend/internals/helpers/tabular"
)

/* ---------- fixtures ---------- */

func sp(s string) *string { return &s }

func dec(v float64) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: decimal.NewFromFloat(v), Valid: true}
}

func reportRow(batch, program, period string, income, collected float64) m.FinancialReportRow {
	return m.FinancialReportRow{
		BatchID:               sp(batch),
		ProgramCode:           sp(program),
		AcademicPeriod:        sp(period),
		TotalIncome:           dec(income),
		ActualCollected:       dec(collected),
		ProgramRunningExpense: dec(collected * 0.55),
		DepartmentDevelopment: dec(collected * 0.05),
		ResearchAllocation:    dec(collected * 0.05),
		UniversityIncome:      dec(collected * 0.35),
	}
}

type fakeSource struct {
	rows    []m.FinancialReportRow
	batches []m.BatchModel
	periods []m.AcademicPeriodModel
	err     error
}

func (f *fakeSource) FinancialReport(context.Context, int) ([]m.FinancialReportRow, error) {
	return f.rows, f.err
}
func (f *fakeSource) Batches(context.Context) ([]m.BatchModel, error) { return f.batches, f.err }
func (f *fakeSource) AcademicPeriods(context.Context) ([]m.AcademicPeriodModel, error) {
	return f.periods, f.err
}

func testConfig() configs.AppConfig {
	return configs.AppConfig{
		Institution:    "University of Dhaka",
		Program:        "PMICS",
		Badge:          "DU",
		ReportPrefix:   "PMICS_Financial_Report",
		Currency:       "BDT",
		ReportPageSize: 10,
	}
}

func newService(src ReportSource, writers ...exports.Writer) *Service {
	s := New(src, exports.NewExporter(nil, writers...), testConfig(), nil)
	s.Now = func() time.Time { return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC) }
	return s
}

/* ---------- summary ---------- */

func TestFromModelDefaultsNulls(t *testing.T) {
	r := dto.FromModel(m.FinancialReportRow{ProgramCode: sp(" CSE ")})
	assert.Equal(t, dto.ReportRow{ProgramCode: "CSE"}, r)
}

func TestSummarize(t *testing.T) {
	rows := dto.FromModels([]m.FinancialReportRow{
		reportRow("B1", "CSE", "S1", 1000, 900),
		reportRow("B2", "CSE", "S1", 0.1, 0.2),
		{},
	})
	s := Summarize(rows)
	assert.Equal(t, 1000.1, s.TotalIncome)
	assert.Equal(t, 900.2, s.TotalCollected)
	assert.InDelta(t, 900.2/1000.1, s.CollectionRate, 1e-8)
	assert.InDelta(t, 495.11, s.RunningExpense, 1e-9)
}

func TestCollectionRateZeroExpected(t *testing.T) {
	assert.Equal(t, 0.0, CollectionRate(0, 500))
	assert.Equal(t, 0.0, Summarize(nil).CollectionRate)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		rate   float64
		status string
		badge  string
	}{
		{0.95, StatusSuccess, "default"},
		{0.90, StatusSuccess, "default"},
		{0.75, StatusWarning, "secondary"},
		{0.70, StatusWarning, "secondary"},
		{0.50, StatusDestructive, "destructive"},
		{0, StatusDestructive, "destructive"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.rate), func(t *testing.T) {
			assert.Equal(t, tt.status, Classify(tt.rate))
			assert.Equal(t, tt.badge, BadgeVariant(Classify(tt.rate)))
		})
	}
	assert.Equal(t, "outline", BadgeVariant("pending"))
}

/* ---------- table ---------- */

func manyRows(n int) []m.FinancialReportRow {
	out := make([]m.FinancialReportRow, n)
	for i := range out {
		program := "CSE"
		if i%3 == 0 {
			program = "EEE"
		}
		out[i] = reportRow(fmt.Sprintf("B-%02d", i), program, "Spring", float64(100+i), float64(50+i))
	}
	return out
}

func TestBuildTableSummaryUsesFilteredSet(t *testing.T) {
	rows := dto.FromModels(manyRows(30))
	q := dto.ReportQuery{ProgramCode: "EEE"}
	q.Normalize(time.Now())

	res := BuildTable(rows, q, tabular.SortState{Field: "total_income", Direction: tabular.Desc}, 1, 10)

	want := Summarize(FilterRows(rows, q))
	assert.Equal(t, 10, res.Total)
	assert.Equal(t, want, res.Summary.SummaryMetrics)
	assert.NotEqual(t, Summarize(rows).TotalIncome, res.Summary.TotalIncome)
	assert.Equal(t, "B-27", res.Rows[0].BatchID)
	for _, r := range res.Rows {
		assert.Equal(t, "EEE", r.ProgramCode)
	}
}

func TestBuildTablePaginationAndDefaultSort(t *testing.T) {
	rows := dto.FromModels(manyRows(23))
	q := dto.ReportQuery{}
	q.Normalize(time.Now())

	res := BuildTable(rows, q, tabular.SortState{Field: "unknown"}, 3, 10)
	assert.Equal(t, 3, res.TotalPages)
	assert.Equal(t, 3, res.Page)
	assert.Len(t, res.Rows, 3)
	assert.Equal(t, DefaultSortField, res.Sort.Field)
	assert.Equal(t, "B-20", res.Rows[0].BatchID)

	// page di luar range setelah filter menyempit → kembali ke 1
	q.Search = "B-0"
	res = BuildTable(rows, q, tabular.SortState{Field: "batch_id"}, 3, 10)
	assert.Equal(t, 1, res.Page)
	assert.Equal(t, 10, res.Total)
}

func TestToTableRow(t *testing.T) {
	r := ToTableRow(dto.ReportRow{TotalIncome: 100, ActualCollected: 75})
	assert.Equal(t, 0.75, r.CollectionRate)
	assert.Equal(t, StatusWarning, r.Status)
	assert.Equal(t, "secondary", r.Badge)
}

/* ---------- charts ---------- */

func TestIncomeChartGrouping(t *testing.T) {
	few := dto.FromModels(manyRows(10))
	by, points := IncomeChart(few)
	assert.Equal(t, "batch", by)
	assert.Len(t, points, 10)

	many := dto.FromModels(manyRows(12))
	by, points = IncomeChart(many)
	assert.Equal(t, "program", by)
	require.Len(t, points, 2)
	assert.Equal(t, "EEE", points[0].Name)
	assert.Equal(t, "CSE", points[1].Name)

	var total float64
	for _, r := range many {
		total += r.TotalIncome
	}
	assert.Equal(t, total, points[0].TotalIncome+points[1].TotalIncome)
}

func TestAllocationChart(t *testing.T) {
	slices, empty := AllocationChart(nil)
	assert.True(t, empty)
	require.Len(t, slices, 4)
	assert.Equal(t, "Program Expenses (55%)", slices[0].Name)
	assert.Equal(t, "University Income (35%)", slices[3].Name)

	slices, empty = AllocationChart(dto.FromModels([]m.FinancialReportRow{reportRow("B", "P", "S", 100, 100)}))
	assert.False(t, empty)
	assert.InDelta(t, 55.0, slices[0].Value, 1e-9)
}

/* ---------- reference ---------- */

func TestFiscalYears(t *testing.T) {
	got := FiscalYears(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, []int{2020, 2021, 2022, 2023, 2024, 2025, 2026}, got)
}

func TestResolveSelection(t *testing.T) {
	batches := []dto.BatchOption{
		{ID: "u1", BatchID: "CSE-01", ProgramCode: "CSE"},
		{ID: "u2", BatchID: "CSE-02", ProgramCode: "CSE"},
		{ID: "u3", BatchID: "EEE-01", ProgramCode: "EEE"},
	}
	periods := []dto.PeriodOption{
		{ID: "p1", Name: "Spring", BatchID: "u1"},
		{ID: "p2", Name: "Fall", BatchID: "u1"},
		{ID: "p3", Name: "Summer", BatchID: "u3"},
	}

	tests := []struct {
		name        string
		in          dto.Selection
		want        dto.Selection
		wantBatches int
		wantPeriods int
	}{
		{"all", dto.Selection{Program: "all", Batch: "all", Period: "all"}, dto.Selection{Program: "all", Batch: "all", Period: "all"}, 3, 3},
		{"program narrows batches", dto.Selection{Program: "CSE", Batch: "all", Period: "all"}, dto.Selection{Program: "CSE", Batch: "all", Period: "all"}, 2, 3},
		{"batch outside program resets", dto.Selection{Program: "CSE", Batch: "EEE-01", Period: "all"}, dto.Selection{Program: "CSE", Batch: "all", Period: "all"}, 2, 3},
		{"batch narrows periods", dto.Selection{Program: "all", Batch: "CSE-01", Period: "Fall"}, dto.Selection{Program: "all", Batch: "CSE-01", Period: "Fall"}, 3, 2},
		{"period outside batch resets", dto.Selection{Program: "all", Batch: "CSE-01", Period: "Summer"}, dto.Selection{Program: "all", Batch: "CSE-01", Period: "all"}, 3, 2},
		{"program resets batch only", dto.Selection{Program: "EEE", Batch: "CSE-01", Period: "Fall"}, dto.Selection{Program: "EEE", Batch: "all", Period: "Fall"}, 1, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel, bs, ps := ResolveSelection(tt.in, batches, periods)
			assert.Equal(t, tt.want, sel)
			assert.Len(t, bs, tt.wantBatches)
			assert.Len(t, ps, tt.wantPeriods)
		})
	}
}

func TestFilterDescription(t *testing.T) {
	assert.Equal(t, "All batches and programs for 2025", FilterDescription(dto.Selection{FiscalYear: 2025, Program: "all", Batch: "all", Period: "all"}))
	assert.Equal(t, "Program: CSE | Period: Spring | 2025", FilterDescription(dto.Selection{FiscalYear: 2025, Program: "CSE", Batch: "all", Period: "Spring"}))
	assert.Equal(t, "Program: CSE, Batch: B1", ExportFilterText(dto.Selection{Program: "CSE", Batch: "B1", Period: "all"}))
}

func TestProgramsUniqueInOrder(t *testing.T) {
	got := Programs([]dto.BatchOption{{ProgramCode: "CSE"}, {ProgramCode: ""}, {ProgramCode: "EEE"}, {ProgramCode: "CSE"}})
	assert.Equal(t, []string{"CSE", "EEE"}, got)
}

/* ---------- service ---------- */

func TestServiceReference(t *testing.T) {
	b1 := uuid.New()
	src := &fakeSource{
		batches: []m.BatchModel{{ID: b1, BatchID: "CSE-01", ProgramCode: "CSE"}, {ID: uuid.New(), BatchID: "EEE-01", ProgramCode: "EEE"}},
		periods: []m.AcademicPeriodModel{{ID: uuid.New(), Name: "Spring", BatchID: b1}},
	}
	q := dto.ReportQuery{ProgramCode: "CSE", BatchID: "EEE-01"}
	q.Normalize(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))

	out, err := newService(src).Reference(context.Background(), q)
	require.NoError(t, err)
	assert.Equal(t, []string{"CSE", "EEE"}, out.Programs)
	assert.Equal(t, "all", out.Selection.Batch)
	assert.Len(t, out.Batches, 1)
	assert.Equal(t, "Program: CSE | 2025", out.Description)
	assert.Len(t, out.FiscalYears, 7)
	assert.Equal(t, []string{"csv"}, out.ExportFormats)
}

func TestServiceReferenceExportFormats(t *testing.T) {
	tests := []struct {
		name    string
		writers []exports.Writer
		want    []string
	}{
		{"csv only", nil, []string{"csv"}},
		{"pdf registered", []exports.Writer{brokenPDF{}}, []string{"csv", "pdf"}},
		{"all writers", []exports.Writer{exports.NewExcelWriter("PMICS"), brokenPDF{}}, []string{"csv", "excel", "pdf"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := dto.ReportQuery{}
			q.Normalize(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
			out, err := newService(&fakeSource{}, tt.writers...).Reference(context.Background(), q)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.ExportFormats)
		})
	}
}

func TestBuildDocumentHeader(t *testing.T) {
	list := []Row{dto.FromModel(reportRow("CSE-01", "CSE", "Spring", 1000, 873.4))}
	sel := dto.Selection{FiscalYear: 2025, Program: dto.All, Batch: dto.All, Period: dto.All}

	doc, err := BuildDocument(testConfig(), list, sel, nil, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "PMICS Program - Financial Report", doc.Title)
	assert.Equal(t, "Fiscal Year: 2025", doc.Subtitle)
	assert.Equal(t, exports.Metric{Label: "Collection Rate", Value: "87.34%"}, doc.Summary[2])
}

type brokenPDF struct{}

func (brokenPDF) Format() exports.Format                   { return exports.FormatPDF }
func (brokenPDF) Extension() string                        { return "pdf" }
func (brokenPDF) ContentType() string                      { return "application/pdf" }
func (brokenPDF) Write(io.Writer, *exports.Document) error { return errors.New("no fonts") }

func TestServiceExportFallsBackToCSV(t *testing.T) {
	src := &fakeSource{rows: manyRows(23)}
	s := newService(src, exports.NewCSVWriter(), brokenPDF{})

	q := dto.ReportQuery{Format: "pdf", FiscalYear: 2025}
	q.Normalize(time.Now())

	res, err := s.Export(context.Background(), q, nil)
	require.NoError(t, err)
	assert.True(t, res.Fallback)
	assert.Equal(t, exports.FormatCSV, res.Format)
	assert.Equal(t, "PMICS_Financial_Report_2025.csv", res.Filename)

	recs, err := csv.NewReader(bytes.NewReader(res.Body)).ReadAll()
	require.NoError(t, err)
	assert.Len(t, recs, 24)
	assert.Len(t, recs[0], len(ReportColumns))
}

func TestServiceExportNoData(t *testing.T) {
	s := newService(&fakeSource{})
	q := dto.ReportQuery{}
	q.Normalize(time.Now())
	_, err := s.Export(context.Background(), q, nil)
	assert.ErrorIs(t, err, exports.ErrNoData)
}

func TestServiceFetchError(t *testing.T) {
	boom := errors.New("connection refused")
	s := newService(&fakeSource{err: boom})
	_, err := s.Summary(context.Background(), dto.ReportQuery{FiscalYear: 2025})
	assert.ErrorIs(t, err, boom)
}

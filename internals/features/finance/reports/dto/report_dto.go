// file: internals/features/finance/reports/dto/report_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	m "pmics_backend/internals/features/finance/reports/model"
)

/* =========================
   Row
   ========================= */

// ReportRow: record laporan yang sudah bertipe jelas. NULL → 0 / "".
type ReportRow struct {
	BatchID               string  `json:"batch_id"`
	ProgramCode           string  `json:"program_code"`
	AcademicPeriod        string  `json:"academic_period"`
	TotalIncome           float64 `json:"total_income"`
	ActualCollected       float64 `json:"actual_collected"`
	ProgramRunningExpense float64 `json:"program_running_expense"`
	DepartmentDevelopment float64 `json:"department_development"`
	ResearchAllocation    float64 `json:"research_allocation"`
	UniversityIncome      float64 `json:"university_income"`
}

func str(p *string) string {
	if p == nil {
		return ""
	}
	return strings.TrimSpace(*p)
}

func num(d decimal.NullDecimal) float64 {
	if !d.Valid {
		return 0
	}
	return d.Decimal.InexactFloat64()
}

func FromModel(r m.FinancialReportRow) ReportRow {
	return ReportRow{
		BatchID:               str(r.BatchID),
		ProgramCode:           str(r.ProgramCode),
		AcademicPeriod:        str(r.AcademicPeriod),
		TotalIncome:           num(r.TotalIncome),
		ActualCollected:       num(r.ActualCollected),
		ProgramRunningExpense: num(r.ProgramRunningExpense),
		DepartmentDevelopment: num(r.DepartmentDevelopment),
		ResearchAllocation:    num(r.ResearchAllocation),
		UniversityIncome:      num(r.UniversityIncome),
	}
}

func FromModels(rows []m.FinancialReportRow) []ReportRow {
	out := make([]ReportRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromModel(r))
	}
	return out
}

// TableRow: baris tabel + rate & badge per batch.
type TableRow struct {
	ReportRow
	CollectionRate float64 `json:"collection_rate"`
	Status         string  `json:"status"`
	Badge          string  `json:"badge"`
}

/* =========================
   Query
   ========================= */

type ReportQuery struct {
	FiscalYear     int    `query:"fiscal_year" validate:"omitempty,min=2000,max=2100"`
	BatchID        string `query:"batch_id" validate:"max=64"`
	ProgramCode    string `query:"program_code" validate:"max=64"`
	AcademicPeriod string `query:"academic_period" validate:"max=128"`
	Search         string `query:"search" validate:"max=100"`

	// export
	Format  string `query:"format" validate:"max=16"`
	Columns string `query:"columns"`
}

const All = "all"

func orAll(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return All
	}
	return s
}

// Normalize: fiscal_year default tahun berjalan, filter kosong → "all".
func (q *ReportQuery) Normalize(now time.Time) {
	if q.FiscalYear == 0 {
		q.FiscalYear = now.Year()
	}
	q.BatchID = orAll(q.BatchID)
	q.ProgramCode = orAll(q.ProgramCode)
	q.AcademicPeriod = orAll(q.AcademicPeriod)
	q.Search = strings.TrimSpace(q.Search)
	q.Format = strings.ToLower(strings.TrimSpace(q.Format))
}

func (q ReportQuery) Validate(v *validator.Validate) error {
	return v.Struct(q)
}

func (q ReportQuery) Selection() Selection {
	return Selection{
		FiscalYear: q.FiscalYear,
		Program:    q.ProgramCode,
		Batch:      q.BatchID,
		Period:     q.AcademicPeriod,
	}
}

// Selection: pilihan filter bertingkat (program → batch → period).
type Selection struct {
	FiscalYear int    `json:"fiscal_year"`
	Program    string `json:"program"`
	Batch      string `json:"batch"`
	Period     string `json:"period"`
}

/* =========================
   Summary & charts
   ========================= */

type SummaryMetrics struct {
	TotalIncome           float64 `json:"total_income"`
	TotalCollected        float64 `json:"total_collected"`
	CollectionRate        float64 `json:"collection_rate"`
	RunningExpense        float64 `json:"running_expense"`
	DepartmentDevelopment float64 `json:"department_development"`
	ResearchAllocation    float64 `json:"research_allocation"`
	UniversityIncome      float64 `json:"university_income"`
}

type SummaryResponse struct {
	SummaryMetrics
	Status  string `json:"status"`
	Badge   string `json:"badge"`
	Records int    `json:"records"`
}

type IncomePoint struct {
	Name            string  `json:"name"`
	TotalIncome     float64 `json:"total_income"`
	ActualCollected float64 `json:"actual_collected"`
}

type AllocationSlice struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type ChartsResponse struct {
	GroupedBy  string            `json:"grouped_by"` // batch | program
	Income     []IncomePoint     `json:"income"`
	Allocation []AllocationSlice `json:"allocation"`
	Empty      bool              `json:"allocation_empty"`
}

/* =========================
   Reference data
   ========================= */

type BatchOption struct {
	ID          string `json:"id"`
	BatchID     string `json:"batch_id"`
	ProgramCode string `json:"program_code"`
}

type PeriodOption struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	BatchID string `json:"batch_id"` // id batch (uuid)
}

func BatchOptionsFromModels(rows []m.BatchModel) []BatchOption {
	out := make([]BatchOption, 0, len(rows))
	for _, b := range rows {
		out = append(out, BatchOption{ID: b.ID.String(), BatchID: b.BatchID, ProgramCode: b.ProgramCode})
	}
	return out
}

func PeriodOptionsFromModels(rows []m.AcademicPeriodModel) []PeriodOption {
	out := make([]PeriodOption, 0, len(rows))
	for _, p := range rows {
		out = append(out, PeriodOption{ID: p.ID.String(), Name: p.Name, BatchID: p.BatchID.String()})
	}
	return out
}

type ReferenceResponse struct {
	FiscalYears []int          `json:"fiscal_years"`
	Programs    []string       `json:"programs"`
	Batches     []BatchOption  `json:"batches"`
	Periods     []PeriodOption `json:"periods"`
	Selection   Selection      `json:"selection"`
	Description string         `json:"description"`
	// format export yang punya writer terdaftar, urut csv, excel, pdf
	ExportFormats []string `json:"export_formats"`
}

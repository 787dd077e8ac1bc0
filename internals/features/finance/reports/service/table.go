package service

import (
	"pmics_backend/internals/features/finance/reports/dto"
	"pmics_backend/internals/helpers/tabular"
)

type Row = dto.ReportRow

var (
	fieldBatch   = tabular.TextField("batch_id", tabular.StringOf(func(r Row) string { return r.BatchID }))
	fieldProgram = tabular.TextField("program_code", tabular.StringOf(func(r Row) string { return r.ProgramCode }))
	fieldPeriod  = tabular.TextField("academic_period", tabular.StringOf(func(r Row) string { return r.AcademicPeriod }))
)

// Kolom yang bisa di-sort di tabel laporan.
var reportPipeline = tabular.NewPipeline(
	fieldBatch,
	fieldProgram,
	fieldPeriod,
	tabular.NumberField("total_income", tabular.NumberOf(func(r Row) float64 { return r.TotalIncome })),
	tabular.NumberField("actual_collected", tabular.NumberOf(func(r Row) float64 { return r.ActualCollected })),
	tabular.NumberField("program_running_expense", tabular.NumberOf(func(r Row) float64 { return r.ProgramRunningExpense })),
	tabular.NumberField("department_development", tabular.NumberOf(func(r Row) float64 { return r.DepartmentDevelopment })),
	tabular.NumberField("research_allocation", tabular.NumberOf(func(r Row) float64 { return r.ResearchAllocation })),
	tabular.NumberField("university_income", tabular.NumberOf(func(r Row) float64 { return r.UniversityIncome })),
)

const DefaultSortField = "batch_id"

func SortableFields() []string { return reportPipeline.Fields.Keys() }

// Predicates: filter batch/program/period (exact) + search di kolom teks.
func Predicates(q dto.ReportQuery) []tabular.Predicate[Row] {
	return []tabular.Predicate[Row]{
		tabular.Equal(q.BatchID, fieldBatch),
		tabular.Equal(q.ProgramCode, fieldProgram),
		tabular.Equal(q.AcademicPeriod, fieldPeriod),
		tabular.Search(q.Search, fieldBatch, fieldProgram, fieldPeriod),
	}
}

// FilterRows: set hasil filter (tanpa sort/paging) untuk summary, chart, export.
func FilterRows(rows []Row, q dto.ReportQuery) []Row {
	return tabular.Filter(rows, Predicates(q)...)
}

type TableResult struct {
	Rows       []dto.TableRow
	Page       int
	PerPage    int
	Total      int
	TotalPages int
	Sort       tabular.SortState
	Summary    dto.SummaryResponse
}

// BuildTable: filter → sort → paginate, summary dihitung dari set terfilter penuh.
func BuildTable(rows []Row, q dto.ReportQuery, sort tabular.SortState, page, perPage int) TableResult {
	if _, ok := reportPipeline.Fields.Lookup(sort.Field); !ok {
		sort = tabular.SortState{Field: DefaultSortField, Direction: tabular.Asc}
	}
	res := reportPipeline.Run(rows, tabular.Query[Row]{
		Predicates: Predicates(q),
		Sort:       sort,
		Page:       page,
		PerPage:    perPage,
	})

	out := make([]dto.TableRow, 0, len(res.Page.Rows))
	for _, r := range res.Page.Rows {
		out = append(out, ToTableRow(r))
	}
	return TableResult{
		Rows:       out,
		Page:       res.Page.Page,
		PerPage:    res.Page.PerPage,
		Total:      res.Count(),
		TotalPages: res.Page.TotalPages,
		Sort:       sort,
		Summary:    SummaryOf(res.Filtered),
	}
}

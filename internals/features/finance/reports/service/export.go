package service

import (
	"fmt"
	"time"

	"pmics_backend/internals/configs"
	"pmics_backend/internals/features/finance/exports"
	"pmics_backend/internals/features/finance/reports/dto"
	"pmics_backend/internals/helpers/format"
)

// ReportColumns: urutan kanonik kolom export + nama tampilan.
var ReportColumns = []exports.ColumnDef[Row]{
	exports.TextColumn("batch_id", "Batch ID", func(r Row) string { return r.BatchID }),
	exports.TextColumn("program_code", "Program Code", func(r Row) string { return r.ProgramCode }),
	exports.TextColumn("academic_period", "Academic Period", func(r Row) string { return r.AcademicPeriod }),
	exports.MoneyColumn("total_income", "Total Income", func(r Row) float64 { return r.TotalIncome }),
	exports.MoneyColumn("actual_collected", "Actual Collected", func(r Row) float64 { return r.ActualCollected }),
	exports.MoneyColumn("program_running_expense", "Program Expenses", func(r Row) float64 { return r.ProgramRunningExpense }),
	exports.MoneyColumn("department_development", "Department Development", func(r Row) float64 { return r.DepartmentDevelopment }),
	exports.MoneyColumn("research_allocation", "Research Allocation", func(r Row) float64 { return r.ResearchAllocation }),
	exports.MoneyColumn("university_income", "University Income", func(r Row) float64 { return r.UniversityIncome }),
}

// BuildDocument merakit dokumen export dari set terfilter.
func BuildDocument(cfg configs.AppConfig, rows []Row, sel dto.Selection, columns []string, now time.Time) (*exports.Document, error) {
	tbl, err := exports.Flatten(rows, ReportColumns, columns)
	if err != nil {
		return nil, err
	}
	s := Summarize(rows)
	money := func(v float64) string { return format.Money(cfg.Currency, v) }

	return &exports.Document{
		Title:       cfg.ReportTitle(),
		Subtitle:    fmt.Sprintf("Fiscal Year: %d", sel.FiscalYear),
		Institution: cfg.Institution,
		Program:     cfg.Program,
		Sheet:       "Financial Report",
		Badge:       cfg.Badge,
		Currency:    cfg.Currency,
		FilterText:  ExportFilterText(sel),
		GeneratedAt: now,
		Summary: []exports.Metric{
			{Label: "Total Expected Income", Value: money(s.TotalIncome)},
			{Label: "Total Collected", Value: money(s.TotalCollected)},
			{Label: "Collection Rate", Value: format.Percent(s.CollectionRate)},
			{Label: "Program Expenses", Value: money(s.RunningExpense)},
		},
		Allocation: []exports.Metric{
			{Label: "Department Development", Value: money(s.DepartmentDevelopment)},
			{Label: "Research Allocation", Value: money(s.ResearchAllocation)},
			{Label: "University Income", Value: money(s.UniversityIncome)},
		},
		Table: tbl,
	}, nil
}

// ExportBasename: PMICS_Financial_Report_2025[_program][_batch][_period]
func ExportBasename(cfg configs.AppConfig, sel dto.Selection) string {
	return exports.Filename(cfg.ReportPrefix, sel.FiscalYear, sel.Program, sel.Batch, sel.Period)
}

// file: internals/features/finance/reports/repository/report_repository.go
package repository

import (
	"context"

	"gorm.io/gorm"

	m "pmics_backend/internals/features/finance/reports/model"
)

type ReportRepository struct {
	DB *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{DB: db}
}

// FinancialReport memanggil fungsi get_financial_report(fiscal_year).
// Pembagian 55/5/5/35 dihitung di dalam fungsi DB.
func (r *ReportRepository) FinancialReport(ctx context.Context, fiscalYear int) ([]m.FinancialReportRow, error) {
	var rows []m.FinancialReportRow
	err := r.DB.WithContext(ctx).
		Raw(`SELECT batch_id, program_code, academic_period,
		            total_income, actual_collected, program_running_expense,
		            department_development, research_allocation, university_income
		       FROM get_financial_report(?)`, fiscalYear).
		Scan(&rows).Error
	return rows, err
}

func (r *ReportRepository) Batches(ctx context.Context) ([]m.BatchModel, error) {
	var rows []m.BatchModel
	err := r.DB.WithContext(ctx).
		Select("id", "batch_id", "program_code").
		Order("batch_id ASC").
		Find(&rows).Error
	return rows, err
}

func (r *ReportRepository) AcademicPeriods(ctx context.Context) ([]m.AcademicPeriodModel, error) {
	var rows []m.AcademicPeriodModel
	err := r.DB.WithContext(ctx).
		Select("id", "name", "batch_id").
		Order("name ASC").
		Find(&rows).Error
	return rows, err
}

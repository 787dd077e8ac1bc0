// file: internals/features/finance/reports/model/report_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// FinancialReportRow adalah satu baris hasil fungsi get_financial_report(fiscal_year).
// Semua kolom nullable; konversi ke nilai default ada di dto.FromModel.
type FinancialReportRow struct {
	BatchID               *string             `gorm:"column:batch_id"`
	ProgramCode           *string             `gorm:"column:program_code"`
	AcademicPeriod        *string             `gorm:"column:academic_period"`
	TotalIncome           decimal.NullDecimal `gorm:"column:total_income"`
	ActualCollected       decimal.NullDecimal `gorm:"column:actual_collected"`
	ProgramRunningExpense decimal.NullDecimal `gorm:"column:program_running_expense"`
	DepartmentDevelopment decimal.NullDecimal `gorm:"column:department_development"`
	ResearchAllocation    decimal.NullDecimal `gorm:"column:research_allocation"`
	UniversityIncome      decimal.NullDecimal `gorm:"column:university_income"`
}

/* =========================
   Reference data
   ========================= */

type BatchModel struct {
	ID               uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	BatchID          string     `gorm:"column:batch_id"`
	ProgramCode      string     `gorm:"column:program_code"`
	IntakeSession    *string    `gorm:"column:intake_session"`
	NumberOfStudents *int       `gorm:"column:number_of_students"`
	CreatedAt        *time.Time `gorm:"column:created_at"`
	UpdatedAt        *time.Time `gorm:"column:updated_at"`
}

func (BatchModel) TableName() string { return "batch" }

type AcademicPeriodModel struct {
	ID             uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	Name           string          `gorm:"column:name"`
	BatchID        uuid.UUID       `gorm:"column:batch_id;type:uuid"` // FK ke batch.id (bukan kode batch)
	SemesterNumber *int            `gorm:"column:semester_number"`
	StartDate      *datatypes.Date `gorm:"column:start_date"`
	EndDate        *datatypes.Date `gorm:"column:end_date"`
	IsActive       *bool           `gorm:"column:is_active"`
}

func (AcademicPeriodModel) TableName() string { return "academic_period" }

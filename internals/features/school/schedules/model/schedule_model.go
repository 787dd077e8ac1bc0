// file: internals/features/school/schedules/model/schedule_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	teacherModel "pmics_backend/internals/features/school/teachers/model"
	"pmics_backend/internals/helpers/dbtime"
)

// Go-side enum buat status kelas di assigned_teachers
type ClassStatus string

const (
	StatusScheduled ClassStatus = "scheduled"
	StatusCompleted ClassStatus = "completed"
	StatusCancelled ClassStatus = "cancelled"
	StatusPending   ClassStatus = "pending"
)

// Remunerasi default saat assignment baru dibuat dari kalender.
var DefaultRemuneration = decimal.NewFromInt(1000)

/* =========================
   course
   ========================= */

type CourseModel struct {
	CourseID      int              `json:"course_id"     gorm:"column:CourseID;primaryKey"`
	CourseCode    string           `json:"course_code"   gorm:"column:CourseCode"`
	CourseTitle   string           `json:"course_title"  gorm:"column:CourseTitle"`
	Credits       *decimal.Decimal `json:"credits"       gorm:"column:Credits"`
	SemesterNo    *int             `json:"semester_no"   gorm:"column:SemesterNo"`
	CourseType    *string          `json:"course_type"   gorm:"column:CourseType"`
	IsActive      *bool            `json:"is_active"     gorm:"column:IsActive"`
	Description   *string          `json:"description"   gorm:"column:Description"`
	Prerequisites *string          `json:"prerequisites" gorm:"column:Prerequisites"`
}

func (CourseModel) TableName() string { return "course" }

/* =========================
   batch_courses
   ========================= */

type BatchCourseModel struct {
	ID               uuid.UUID       `json:"id"                 gorm:"column:id;type:uuid;primaryKey"`
	BatchID          uuid.UUID       `json:"batch_id"           gorm:"column:batch_id;type:uuid"`
	CourseID         int             `json:"course_id"          gorm:"column:CourseID"`
	AcademicYear     *string         `json:"academic_year"      gorm:"column:academic_year"`
	StartDate        *datatypes.Date `json:"start_date"         gorm:"column:start_date"`
	EndDate          *datatypes.Date `json:"end_date"           gorm:"column:end_date"`
	AcademicPeriodID *uuid.UUID      `json:"academic_period_id" gorm:"column:academic_period_id;type:uuid"`

	Course    *CourseModel               `json:"course,omitempty"    gorm:"foreignKey:CourseID;references:CourseID"`
	Schedules []BatchCourseScheduleModel `json:"schedules,omitempty" gorm:"foreignKey:BatchCourseID;references:ID"`
}

func (BatchCourseModel) TableName() string { return "batch_courses" }

/* =========================
   batch_course_schedules
   ========================= */

type BatchCourseScheduleModel struct {
	ID            uuid.UUID  `json:"id"              gorm:"column:id;type:uuid;primaryKey"`
	BatchCourseID uuid.UUID  `json:"batch_course_id" gorm:"column:batch_course_id;type:uuid"`
	ClassDay      string     `json:"class_day"       gorm:"column:class_day"`
	StartTime     dbtime.Tod `json:"start_time"      gorm:"column:start_time;type:time"`
	EndTime       dbtime.Tod `json:"end_time"        gorm:"column:end_time;type:time"`
	CreatedAt     *time.Time `json:"created_at"      gorm:"column:created_at"`
	UpdatedAt     *time.Time `json:"updated_at"      gorm:"column:updated_at"`

	BatchCourse *BatchCourseModel `json:"batch_course,omitempty" gorm:"foreignKey:BatchCourseID;references:ID"`
}

func (BatchCourseScheduleModel) TableName() string { return "batch_course_schedules" }

/* =========================
   assigned_teachers
   ========================= */

type AssignedTeacherModel struct {
	ID                    uuid.UUID           `json:"id"                       gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	AssignedDate          datatypes.Date      `json:"assigned_date"            gorm:"column:assigned_date"`
	BatchCourseScheduleID uuid.UUID           `json:"batch_course_schedule_id" gorm:"column:batch_course_schedule_id;type:uuid"`
	TeacherID             *string             `json:"teacher_id"               gorm:"column:teacher_id"`
	Remuneration          decimal.NullDecimal `json:"remuneration"             gorm:"column:remuneration"`
	Tax                   decimal.NullDecimal `json:"tax"                      gorm:"column:tax;->"`     // dihitung DB
	Payment               decimal.NullDecimal `json:"payment"                  gorm:"column:payment;->"` // dihitung DB
	Status                *string             `json:"status"                   gorm:"column:status"`
	IsModified            *bool               `json:"is_modified"              gorm:"column:is_modified"`
	ModifiedBy            *string             `json:"modified_by"              gorm:"column:modified_by"`
	ModifiedAt            *time.Time          `json:"modified_at"              gorm:"column:modified_at"`
	CreatedAt             *time.Time          `json:"created_at"               gorm:"column:created_at;autoCreateTime"`
	UpdatedAt             *time.Time          `json:"updated_at"               gorm:"column:updated_at;autoUpdateTime"`

	Teacher  *teacherModel.TeacherModel `json:"teacher,omitempty"                  gorm:"foreignKey:TeacherID;references:InstructorID"`
	Schedule *BatchCourseScheduleModel  `json:"batch_course_schedules,omitempty" gorm:"foreignKey:BatchCourseScheduleID;references:ID"`
}

func (AssignedTeacherModel) TableName() string { return "assigned_teachers" }

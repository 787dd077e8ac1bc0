// file: internals/features/school/teachers/dto/teacher_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	m "pmics_backend/internals/features/school/teachers/model"
	"pmics_backend/internals/helpers/dbtime"
)

/* =========================
   Roster
   ========================= */

type TeacherListItem struct {
	InstructorID   string `json:"instructor_id"`
	Name           string `json:"name"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone,omitempty"`
	Designation    string `json:"designation,omitempty"`
	Department     string `json:"department,omitempty"`
	Specialization string `json:"specialization,omitempty"`
	JoinDate       string `json:"join_date,omitempty"`
	IsActive       bool   `json:"is_active"`
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return strings.TrimSpace(*p)
}

func FromTeacherModel(t m.TeacherModel) TeacherListItem {
	join := ""
	if t.JoinDate != nil {
		if jt := time.Time(*t.JoinDate); !jt.IsZero() {
			join = jt.Format(dbtime.DateLayout)
		}
	}
	return TeacherListItem{
		InstructorID:   t.InstructorID,
		Name:           t.FullName(),
		FirstName:      t.FirstName,
		LastName:       t.LastName,
		Email:          t.Email,
		Phone:          deref(t.Phone),
		Designation:    deref(t.Designation),
		Department:     deref(t.Department),
		Specialization: deref(t.Specialization),
		JoinDate:       join,
		IsActive:       t.IsActive,
	}
}

func FromTeacherModels(rows []m.TeacherModel) []TeacherListItem {
	out := make([]TeacherListItem, 0, len(rows))
	for _, t := range rows {
		out = append(out, FromTeacherModel(t))
	}
	return out
}

type RosterStats struct {
	Total       int `json:"total"`
	Active      int `json:"active"`
	Departments int `json:"departments"`
}

// Status tab roster.
const (
	RosterAll      = "all"
	RosterActive   = "active"
	RosterInactive = "inactive"
)

type RosterQuery struct {
	Search string `query:"search" validate:"max=100"`
	Status string `query:"status" validate:"omitempty,oneof=all active inactive"`
}

func (q *RosterQuery) Normalize() {
	q.Search = strings.TrimSpace(q.Search)
	q.Status = strings.ToLower(strings.TrimSpace(q.Status))
	if q.Status == "" {
		q.Status = RosterAll
	}
}

func (q RosterQuery) Validate(v *validator.Validate) error { return v.Struct(q) }

/* =========================
   Detail
   ========================= */

type BatchCourseInfo struct {
	ID               string `json:"id"`
	BatchID          string `json:"batch_id"`
	CourseID         int    `json:"course_id"`
	AcademicYear     string `json:"academic_year"`
	StartDate        string `json:"start_date"`
	EndDate          string `json:"end_date"`
	AcademicPeriodID string `json:"academic_period_id"`
}

type ScheduleInfo struct {
	ID            string           `json:"id"`
	ClassDay      string           `json:"class_day"`
	StartTime     string           `json:"start_time"`
	EndTime       string           `json:"end_time"`
	BatchCourseID string           `json:"batch_course_id"`
	BatchCourse   *BatchCourseInfo `json:"batch_courses,omitempty"`
}

// ClassRecord: assigned_teachers yang sudah dinormalisasi.
type ClassRecord struct {
	ID                    string        `json:"id"`
	AssignedDate          string        `json:"assigned_date"`
	BatchCourseScheduleID string        `json:"batch_course_schedule_id"`
	Remuneration          float64       `json:"remuneration"`
	Tax                   float64       `json:"tax"`
	Payment               float64       `json:"payment"`
	Status                string        `json:"status"`
	IsModified            bool          `json:"is_modified"`
	ModifiedBy            *string       `json:"modified_by,omitempty"`
	ModifiedAt            *time.Time    `json:"modified_at,omitempty"`
	CreatedAt             time.Time     `json:"created_at"`
	UpdatedAt             time.Time     `json:"updated_at"`
	Schedule              *ScheduleInfo `json:"batch_course_schedules,omitempty"`
}

func (r ClassRecord) BatchCourse() *BatchCourseInfo {
	if r.Schedule == nil {
		return nil
	}
	return r.Schedule.BatchCourse
}

type BatchInfo struct {
	ID               string `json:"id"`
	BatchID          string `json:"batch_id"`
	ProgramCode      string `json:"program_code"`
	IntakeSession    string `json:"intake_session"`
	NumberOfStudents int    `json:"number_of_students"`
}

type CourseInfo struct {
	CourseID    int     `json:"course_id"`
	CourseCode  string  `json:"course_code"`
	CourseTitle string  `json:"course_title"`
	Credits     float64 `json:"credits"`
	SemesterNo  int     `json:"semester_no"`
	CourseType  string  `json:"course_type,omitempty"`
}

type PeriodInfo struct {
	ID             string `json:"id"`
	BatchID        string `json:"batch_id"`
	Name           string `json:"name"`
	SemesterNumber int    `json:"semester_number"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
	IsActive       bool   `json:"is_active"`
}

type TeacherStats struct {
	TotalCourses    int     `json:"total_courses"`
	TotalBatches    int     `json:"total_batches"`
	TotalStudents   int     `json:"total_students"`
	UpcomingClasses int     `json:"upcoming_classes"`
	TotalEarnings   float64 `json:"total_earnings"`
}

type TeacherDetail struct {
	Teacher TeacherListItem       `json:"teacher"`
	Classes []ClassRecord         `json:"classes"`
	Batches map[string]BatchInfo  `json:"batches"`
	Courses map[int]CourseInfo    `json:"courses"`
	Periods map[string]PeriodInfo `json:"academic_periods"`
	Stats   TeacherStats          `json:"stats"`
}

type PaymentExportQuery struct {
	Format  string `query:"format" validate:"max=16"`
	Columns string `query:"columns"`
}

// file: internals/features/school/schedules/dto/schedule_dto.go
package dto

import (
	"strings"

	"github.com/go-playground/validator/v10"

	m "pmics_backend/internals/features/school/schedules/model"
)

// Sentinel filter dari dropdown kalender.
const (
	AllCourses  = "all-courses"
	AllTeachers = "all-teachers"
	AllDays     = "all-days"
	Unassigned  = "unassigned"
)

// ScheduleRow: satu slot kelas mingguan + assignment hari ini (kalau ada).
type ScheduleRow struct {
	ID                    string         `json:"id"`
	Day                   string         `json:"day"`
	StartTime             string         `json:"start_time"`
	EndTime               string         `json:"end_time"`
	CourseCode            string         `json:"course_code"`
	CourseName            string         `json:"course_name"`
	TeacherID             *string        `json:"teacher_id,omitempty"`
	TeacherName           *string        `json:"teacher_name,omitempty"`
	Status                *m.ClassStatus `json:"status,omitempty"`
	BatchCourseScheduleID string         `json:"batch_course_schedule_id"`
}

func (r ScheduleRow) Teacher() string {
	if r.TeacherName == nil {
		return ""
	}
	return *r.TeacherName
}

// EffectiveStatus: tanpa status = scheduled.
func (r ScheduleRow) EffectiveStatus() m.ClassStatus {
	if r.Status == nil || *r.Status == "" {
		return m.StatusScheduled
	}
	return *r.Status
}

type ScheduleStats struct {
	Total      int `json:"total_classes"`
	Scheduled  int `json:"scheduled_classes"`
	Completed  int `json:"completed_classes"`
	Cancelled  int `json:"cancelled_classes"`
	Unassigned int `json:"unassigned_classes"`
}

type CourseOption struct {
	ID         string `json:"id"`
	CourseCode string `json:"course_code"`
	CourseName string `json:"course_name"`
}

type TeacherOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ScheduleResponse struct {
	Rows     []ScheduleRow   `json:"rows"`
	Stats    ScheduleStats   `json:"stats"`
	Courses  []CourseOption  `json:"courses"`
	Teachers []TeacherOption `json:"teachers"`
	Today    string          `json:"today"`
}

/* =========================
   Query
   ========================= */

type ScheduleQuery struct {
	AcademicPeriodID string `query:"academic_period_id" validate:"omitempty,uuid"`
	Course           string `query:"course" validate:"max=64"`
	Teacher          string `query:"teacher" validate:"max=128"`
	Day              string `query:"day" validate:"max=16"`
	Search           string `query:"search" validate:"max=100"`
}

func (q *ScheduleQuery) Normalize() {
	q.AcademicPeriodID = strings.TrimSpace(q.AcademicPeriodID)
	q.Course = orDefault(q.Course, AllCourses)
	q.Teacher = orDefault(q.Teacher, AllTeachers)
	q.Day = orDefault(q.Day, AllDays)
	q.Search = strings.TrimSpace(q.Search)
}

func (q ScheduleQuery) Validate(v *validator.Validate) error { return v.Struct(q) }

func orDefault(s, def string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	return s
}

/* =========================
   PATCH
   ========================= */

// ScheduleEditRequest: teacher_id kosong / "unassigned" = lepas pengajar.
type ScheduleEditRequest struct {
	TeacherID *string `json:"teacher_id" validate:"omitempty,max=64"`
	Status    string  `json:"status" validate:"required,oneof=scheduled completed cancelled"`
}

// Teacher: id pengajar terpilih, "" bila unassigned.
func (r ScheduleEditRequest) Teacher() string {
	if r.TeacherID == nil {
		return ""
	}
	id := strings.TrimSpace(*r.TeacherID)
	if id == Unassigned {
		return ""
	}
	return id
}

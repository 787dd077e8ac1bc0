// file: internals/features/school/teachers/model/teacher_model.go
package model

import (
	"time"

	"gorm.io/datatypes"
)

// TeacherModel: tabel "teacher" (kolom PascalCase, ber-quote di Postgres).
type TeacherModel struct {
	InstructorID   string          `json:"instructor_id"  gorm:"column:InstructorID;primaryKey"`
	FirstName      string          `json:"first_name"     gorm:"column:FirstName"`
	LastName       string          `json:"last_name"      gorm:"column:LastName"`
	Email          string          `json:"email"          gorm:"column:Email"`
	Phone          *string         `json:"phone"          gorm:"column:Phone"`
	Designation    *string         `json:"designation"    gorm:"column:Designation"`
	Department     *string         `json:"department"     gorm:"column:Department"`
	Specialization *string         `json:"specialization" gorm:"column:Specialization"`
	JoinDate       *datatypes.Date `json:"join_date"      gorm:"column:JoinDate"`
	IsActive       bool            `json:"is_active"      gorm:"column:IsActive"`
	CreatedAt      *time.Time      `json:"created_at"     gorm:"column:CreatedAt"`
}

func (TeacherModel) TableName() string { return "teacher" }

func (t TeacherModel) FullName() string {
	switch {
	case t.FirstName == "":
		return t.LastName
	case t.LastName == "":
		return t.FirstName
	default:
		return t.FirstName + " " + t.LastName
	}
}

// file: internals/features/school/teachers/repository/teacher_repository.go
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	rm "pmics_backend/internals/features/finance/reports/model"
	sm "pmics_backend/internals/features/school/schedules/model"
	tm "pmics_backend/internals/features/school/teachers/model"
	svc "pmics_backend/internals/features/school/teachers/service"
)

type TeacherRepository struct {
	DB *gorm.DB
}

func NewTeacherRepository(db *gorm.DB) *TeacherRepository {
	return &TeacherRepository{DB: db}
}

var _ svc.TeacherSource = (*TeacherRepository)(nil)

func (r *TeacherRepository) Teachers(ctx context.Context) ([]tm.TeacherModel, error) {
	var rows []tm.TeacherModel
	err := r.DB.WithContext(ctx).
		Order(`"JoinDate" DESC NULLS LAST`).
		Find(&rows).Error
	return rows, err
}

func (r *TeacherRepository) Teacher(ctx context.Context, instructorID string) (*tm.TeacherModel, error) {
	var t tm.TeacherModel
	err := r.DB.WithContext(ctx).
		Where(`"InstructorID" = ?`, instructorID).
		Take(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TeacherRepository) Classes(ctx context.Context, instructorID string) ([]sm.AssignedTeacherModel, error) {
	var rows []sm.AssignedTeacherModel
	err := r.DB.WithContext(ctx).
		Preload("Schedule.BatchCourse").
		Where("teacher_id = ?", instructorID).
		Order("assigned_date DESC").
		Find(&rows).Error
	return rows, err
}

/* =========================
   Lookup (= ANY(array))
   ========================= */

// uuidArray: slice kosong tetap jadi '{}' supaya ANY tidak ketemu NULL.
func uuidArray(ids []uuid.UUID) pq.StringArray {
	out := make(pq.StringArray, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}

func intArray(ids []int) pq.Int64Array {
	out := make(pq.Int64Array, 0, len(ids))
	for _, id := range ids {
		out = append(out, int64(id))
	}
	return out
}

func (r *TeacherRepository) BatchesByIDs(ctx context.Context, ids []uuid.UUID) ([]rm.BatchModel, error) {
	var rows []rm.BatchModel
	err := r.DB.WithContext(ctx).Where("id = ANY(?::uuid[])", uuidArray(ids)).Find(&rows).Error
	return rows, err
}

func (r *TeacherRepository) CoursesByIDs(ctx context.Context, ids []int) ([]sm.CourseModel, error) {
	var rows []sm.CourseModel
	err := r.DB.WithContext(ctx).Where(`"CourseID" = ANY(?::int[])`, intArray(ids)).Find(&rows).Error
	return rows, err
}

func (r *TeacherRepository) PeriodsByIDs(ctx context.Context, ids []uuid.UUID) ([]rm.AcademicPeriodModel, error) {
	var rows []rm.AcademicPeriodModel
	err := r.DB.WithContext(ctx).Where("id = ANY(?::uuid[])", uuidArray(ids)).Find(&rows).Error
	return rows, err
}

// file: internals/features/school/schedules/repository/schedule_repository.go
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	m "pmics_backend/internals/features/school/schedules/model"
	svc "pmics_backend/internals/features/school/schedules/service"
	teacherModel "pmics_backend/internals/features/school/teachers/model"
	"pmics_backend/internals/helpers/dbtime"
)

type ScheduleRepository struct {
	DB *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) *ScheduleRepository {
	return &ScheduleRepository{DB: db}
}

var (
	_ svc.ScheduleSource   = (*ScheduleRepository)(nil)
	_ svc.AssignmentWriter = (*ScheduleRepository)(nil)
)

/* =========================
   Read
   ========================= */

func (r *ScheduleRepository) BatchCourses(ctx context.Context, batchID uuid.UUID, periodID *uuid.UUID) ([]m.BatchCourseModel, error) {
	q := r.DB.WithContext(ctx).
		Preload("Course").
		Preload("Schedules").
		Where("batch_id = ?", batchID)
	if periodID != nil {
		q = q.Where("academic_period_id = ?", *periodID)
	}

	var rows []m.BatchCourseModel
	err := q.Order("id ASC").Find(&rows).Error
	return rows, err
}

func (r *ScheduleRepository) Assignments(ctx context.Context, scheduleIDs []uuid.UUID) ([]m.AssignedTeacherModel, error) {
	var rows []m.AssignedTeacherModel
	err := r.DB.WithContext(ctx).
		Preload("Teacher").
		Where("batch_course_schedule_id IN ?", scheduleIDs).
		Order("assigned_date ASC").
		Find(&rows).Error
	return rows, err
}

/* =========================
   Write
   ========================= */

func (r *ScheduleRepository) TeacherName(ctx context.Context, instructorID string) (string, error) {
	var t teacherModel.TeacherModel
	err := r.DB.WithContext(ctx).
		Select(`"InstructorID"`, `"FirstName"`, `"LastName"`).
		Where(`"InstructorID" = ?`, instructorID).
		Take(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return t.FullName(), nil
}

func (r *ScheduleRepository) WithTx(ctx context.Context, fn func(svc.AssignmentStore) error) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&assignmentStore{db: tx})
	})
}

type assignmentStore struct {
	db *gorm.DB
}

func (s *assignmentStore) FindForDate(ctx context.Context, scheduleID uuid.UUID, date time.Time) (*m.AssignedTeacherModel, error) {
	var a m.AssignedTeacherModel
	err := s.db.WithContext(ctx).
		Select("id", "remuneration").
		Where("batch_course_schedule_id = ? AND assigned_date = ?", scheduleID, date.Format(dbtime.DateLayout)).
		Take(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *assignmentStore) Delete(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&m.AssignedTeacherModel{}).Error
}

func (s *assignmentStore) Update(ctx context.Context, id uuid.UUID, teacherID string, status m.ClassStatus) error {
	return s.db.WithContext(ctx).
		Model(&m.AssignedTeacherModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"teacher_id": teacherID,
			"status":     string(status),
			"updated_at": time.Now(),
		}).Error
}

func (s *assignmentStore) Create(ctx context.Context, a *m.AssignedTeacherModel) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return s.db.WithContext(ctx).Create(a).Error
}

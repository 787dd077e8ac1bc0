package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	m "pmics_backend/internals/features/school/schedules/model"
)

// AssignmentStore: operasi assignment dalam satu transaksi.
type AssignmentStore interface {
	// FindForDate → (nil, nil) bila belum ada assignment.
	FindForDate(ctx context.Context, scheduleID uuid.UUID, date time.Time) (*m.AssignedTeacherModel, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Update(ctx context.Context, id uuid.UUID, teacherID string, status m.ClassStatus) error
	Create(ctx context.Context, a *m.AssignedTeacherModel) error
}

// AssignmentWriter: sisi tulis kalender.
type AssignmentWriter interface {
	WithTx(ctx context.Context, fn func(AssignmentStore) error) error
	// TeacherName → ("", nil) bila pengajar tidak ditemukan.
	TeacherName(ctx context.Context, instructorID string) (string, error)
}

type WriteAction string

const (
	ActionNone    WriteAction = "none"
	ActionDeleted WriteAction = "deleted"
	ActionUpdated WriteAction = "updated"
	ActionCreated WriteAction = "created"
)

// WriteAssignment: assignment hari ini untuk satu jadwal.
//   - ada + pengajar dikosongkan → hapus
//   - ada + pengajar diisi       → update pengajar & status
//   - belum ada + pengajar diisi → insert (remunerasi default)
//   - belum ada + tanpa pengajar → tidak ada perubahan
func WriteAssignment(ctx context.Context, store AssignmentStore, scheduleID uuid.UUID, teacherID string, status m.ClassStatus, date time.Time) (WriteAction, error) {
	existing, err := store.FindForDate(ctx, scheduleID, date)
	if err != nil {
		return ActionNone, fmt.Errorf("check existing assignment: %w", err)
	}

	switch {
	case existing != nil && teacherID == "":
		if err := store.Delete(ctx, existing.ID); err != nil {
			return ActionNone, fmt.Errorf("remove teacher assignment: %w", err)
		}
		return ActionDeleted, nil

	case existing != nil:
		if err := store.Update(ctx, existing.ID, teacherID, status); err != nil {
			return ActionNone, fmt.Errorf("update assignment: %w", err)
		}
		return ActionUpdated, nil

	case teacherID != "":
		st := string(status)
		tid := teacherID
		a := &m.AssignedTeacherModel{
			AssignedDate:          datatypes.Date(date),
			BatchCourseScheduleID: scheduleID,
			TeacherID:             &tid,
			Status:                &st,
			Remuneration:          decimal.NullDecimal{Decimal: m.DefaultRemuneration, Valid: true},
		}
		if err := store.Create(ctx, a); err != nil {
			return ActionNone, fmt.Errorf("create assignment: %w", err)
		}
		return ActionCreated, nil
	}
	return ActionNone, nil
}

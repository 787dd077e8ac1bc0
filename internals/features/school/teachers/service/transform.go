package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	sm "pmics_backend/internals/features/school/schedules/model"
	"pmics_backend/internals/features/school/teachers/dto"
	"pmics_backend/internals/helpers/dbtime"
)

var ErrMalformedClass = errors.New("malformed class record")

func normalizeStatus(s *string) string {
	if s == nil {
		return string(sm.StatusPending)
	}
	switch st := sm.ClassStatus(*s); st {
	case sm.StatusScheduled, sm.StatusCompleted, sm.StatusCancelled, sm.StatusPending:
		return string(st)
	default:
		return string(sm.StatusPending)
	}
}

func dateString(d *datatypes.Date) string {
	if d == nil {
		return ""
	}
	t := time.Time(*d)
	if t.IsZero() {
		return ""
	}
	return t.Format(dbtime.DateLayout)
}

func amount(d decimal.NullDecimal) float64 {
	if !d.Valid {
		return 0
	}
	return d.Decimal.InexactFloat64()
}

func optString(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func orNow(t *time.Time, now time.Time) time.Time {
	if t == nil || t.IsZero() {
		return now
	}
	return *t
}

// TransformClass: model → ClassRecord. Field nested yang kosong jadi ""/0,
// status tak dikenal jadi pending. Tanpa id / tanggal → ErrMalformedClass.
func TransformClass(a sm.AssignedTeacherModel, now time.Time) (dto.ClassRecord, error) {
	if a.ID == uuid.Nil {
		return dto.ClassRecord{}, fmt.Errorf("%w: missing id", ErrMalformedClass)
	}
	assigned := dateString(&a.AssignedDate)
	if assigned == "" {
		return dto.ClassRecord{}, fmt.Errorf("%w: %s has no assigned_date", ErrMalformedClass, a.ID)
	}

	rec := dto.ClassRecord{
		ID:                    a.ID.String(),
		AssignedDate:          assigned,
		BatchCourseScheduleID: a.BatchCourseScheduleID.String(),
		Remuneration:          amount(a.Remuneration),
		Tax:                   amount(a.Tax),
		Payment:               amount(a.Payment),
		Status:                normalizeStatus(a.Status),
		IsModified:            a.IsModified != nil && *a.IsModified,
		ModifiedBy:            a.ModifiedBy,
		ModifiedAt:            a.ModifiedAt,
		CreatedAt:             orNow(a.CreatedAt, now),
		UpdatedAt:             orNow(a.UpdatedAt, now),
	}

	if s := a.Schedule; s != nil {
		info := &dto.ScheduleInfo{
			ID:            s.ID.String(),
			ClassDay:      s.ClassDay,
			StartTime:     s.StartTime.String(),
			EndTime:       s.EndTime.String(),
			BatchCourseID: s.BatchCourseID.String(),
		}
		if bc := s.BatchCourse; bc != nil {
			period := ""
			if bc.AcademicPeriodID != nil {
				period = bc.AcademicPeriodID.String()
			}
			info.BatchCourse = &dto.BatchCourseInfo{
				ID:               bc.ID.String(),
				BatchID:          bc.BatchID.String(),
				CourseID:         bc.CourseID,
				AcademicYear:     optString(bc.AcademicYear),
				StartDate:        dateString(bc.StartDate),
				EndDate:          dateString(bc.EndDate),
				AcademicPeriodID: period,
			}
		}
		rec.Schedule = info
	}
	return rec, nil
}

// MinimalClass: pengganti record yang gagal ditransformasi.
func MinimalClass(a sm.AssignedTeacherModel, now time.Time) dto.ClassRecord {
	id := "unknown"
	if a.ID != uuid.Nil {
		id = a.ID.String()
	}
	assigned := dateString(&a.AssignedDate)
	if assigned == "" {
		assigned = now.Format(dbtime.DateLayout)
	}
	sched := "unknown"
	if a.BatchCourseScheduleID != uuid.Nil {
		sched = a.BatchCourseScheduleID.String()
	}
	return dto.ClassRecord{
		ID:                    id,
		AssignedDate:          assigned,
		BatchCourseScheduleID: sched,
		Status:                string(sm.StatusPending),
		CreatedAt:             now,
		UpdatedAt:             now,
	}
}

// TransformClasses: best-effort per item. Item gagal (error/panic) diganti
// MinimalClass dan dicatat, sisanya jalan terus.
func TransformClasses(items []sm.AssignedTeacherModel, now time.Time, log *zap.Logger) []dto.ClassRecord {
	out := make([]dto.ClassRecord, 0, len(items))
	for _, a := range items {
		rec, err := safeTransform(a, now)
		if err != nil {
			log.Warn("transform class record failed", zap.String("id", a.ID.String()), zap.Error(err))
			rec = MinimalClass(a, now)
		}
		out = append(out, rec)
	}
	return out
}

func safeTransform(a sm.AssignedTeacherModel, now time.Time) (rec dto.ClassRecord, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrMalformedClass, r)
		}
	}()
	return TransformClass(a, now)
}

// file: internals/features/school/schedules/service/service.go
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"pmics_backend/internals/features/school/schedules/dto"
	m "pmics_backend/internals/features/school/schedules/model"
	"pmics_backend/internals/helpers/dbtime"
)

// ScheduleSource: sisi baca kalender.
type ScheduleSource interface {
	// BatchCourses + preload Course & Schedules. periodID nil → semua period.
	BatchCourses(ctx context.Context, batchID uuid.UUID, periodID *uuid.UUID) ([]m.BatchCourseModel, error)
	// Assignments untuk jadwal-jadwal tsb + preload Teacher, urut assigned_date ASC.
	Assignments(ctx context.Context, scheduleIDs []uuid.UUID) ([]m.AssignedTeacherModel, error)
}

type Service struct {
	Source ScheduleSource
	Writer AssignmentWriter
	Log    *zap.Logger
	Loc    *time.Location
	Now    func() time.Time
}

func New(src ScheduleSource, w AssignmentWriter, loc *time.Location, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	if loc == nil {
		loc = dbtime.Location("")
	}
	return &Service{Source: src, Writer: w, Log: log.Named("schedules"), Loc: loc, Now: time.Now}
}

func (s *Service) today() time.Time { return dbtime.DateOf(s.Now(), s.Loc) }

type loaded struct {
	rows     []Row
	courses  []dto.CourseOption
	teachers []dto.TeacherOption
}

// load: batch course wajib; assignment gagal → kalender tetap tampil tanpa pengajar.
func (s *Service) load(ctx context.Context, batchID uuid.UUID, periodID *uuid.UUID) (loaded, error) {
	courses, err := s.Source.BatchCourses(ctx, batchID, periodID)
	if err != nil {
		s.Log.Error("fetch batch courses failed", zap.String("batch_id", batchID.String()), zap.Error(err))
		return loaded{}, err
	}

	ids := []uuid.UUID{}
	for _, bc := range courses {
		for _, sc := range bc.Schedules {
			ids = append(ids, sc.ID)
		}
	}

	var assignments []m.AssignedTeacherModel
	if len(ids) > 0 {
		assignments, err = s.Source.Assignments(ctx, ids)
		if err != nil {
			s.Log.Warn("fetch teacher assignments failed, showing schedule without teachers",
				zap.String("batch_id", batchID.String()), zap.Error(err))
			assignments = nil
		}
	}

	today := dbtime.Today(s.Now(), s.Loc)
	return loaded{
		rows:     BuildRows(courses, assignments, today),
		courses:  CourseOptions(courses),
		teachers: TeacherOptions(assignments),
	}, nil
}

// Schedule: rows terfilter + stats dari set terfilter.
func (s *Service) Schedule(ctx context.Context, batchID uuid.UUID, q dto.ScheduleQuery) (dto.ScheduleResponse, error) {
	periodID, err := parseOptionalUUID(q.AcademicPeriodID)
	if err != nil {
		return dto.ScheduleResponse{}, err
	}
	data, err := s.load(ctx, batchID, periodID)
	if err != nil {
		return dto.ScheduleResponse{}, err
	}
	rows := FilterRows(data.rows, q)
	return dto.ScheduleResponse{
		Rows:     rows,
		Stats:    Stats(rows),
		Courses:  data.courses,
		Teachers: data.teachers,
		Today:    dbtime.Today(s.Now(), s.Loc),
	}, nil
}

// Edit: muat kalender batch lalu jalankan Calendar.Edit untuk satu jadwal.
func (s *Service) Edit(ctx context.Context, batchID uuid.UUID, scheduleID string, req dto.ScheduleEditRequest) (Row, error) {
	data, err := s.load(ctx, batchID, nil)
	if err != nil {
		return Row{}, err
	}
	cal := NewCalendar(data.rows, s.Writer, s.today())
	cal.OnUpdate = func(r Row, action WriteAction) {
		s.Log.Info("class updated",
			zap.String("batch_id", batchID.String()),
			zap.String("schedule_id", r.ID),
			zap.String("action", string(action)),
			zap.String("status", string(r.EffectiveStatus())),
			zap.String("teacher", r.Teacher()))
	}
	return cal.Edit(ctx, scheduleID, req)
}

func parseOptionalUUID(s string) (*uuid.UUID, error) {
	if s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// file: internals/features/school/teachers/service/service.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"pmics_backend/internals/configs"
	"pmics_backend/internals/features/finance/exports"
	rm "pmics_backend/internals/features/finance/reports/model"
	sm "pmics_backend/internals/features/school/schedules/model"
	"pmics_backend/internals/features/school/teachers/dto"
	tm "pmics_backend/internals/features/school/teachers/model"
	"pmics_backend/internals/helpers/dbtime"
)

var ErrTeacherNotFound = errors.New("teacher not found")

type TeacherSource interface {
	// Teachers urut JoinDate DESC.
	Teachers(ctx context.Context) ([]tm.TeacherModel, error)
	// Teacher → (nil, nil) bila tidak ada.
	Teacher(ctx context.Context, instructorID string) (*tm.TeacherModel, error)
	// Classes + preload schedule → batch course, urut assigned_date DESC.
	Classes(ctx context.Context, instructorID string) ([]sm.AssignedTeacherModel, error)

	BatchesByIDs(ctx context.Context, ids []uuid.UUID) ([]rm.BatchModel, error)
	CoursesByIDs(ctx context.Context, ids []int) ([]sm.CourseModel, error)
	PeriodsByIDs(ctx context.Context, ids []uuid.UUID) ([]rm.AcademicPeriodModel, error)
}

type Service struct {
	Source   TeacherSource
	Exporter *exports.Exporter
	Cfg      configs.AppConfig
	Log      *zap.Logger
	Loc      *time.Location
	Now      func() time.Time
}

func New(src TeacherSource, ex *exports.Exporter, cfg configs.AppConfig, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		Source:   src,
		Exporter: ex,
		Cfg:      cfg,
		Log:      log.Named("teachers"),
		Loc:      dbtime.Location(cfg.Timezone),
		Now:      time.Now,
	}
}

func (s *Service) Roster(ctx context.Context, q dto.RosterQuery, page, perPage int) (RosterResult, error) {
	rows, err := s.Source.Teachers(ctx)
	if err != nil {
		s.Log.Error("fetch teachers failed", zap.Error(err))
		return RosterResult{}, err
	}
	return BuildRoster(dto.FromTeacherModels(rows), q, page, perPage), nil
}

// Detail: teacher wajib ada; class & data terkait best-effort.
func (s *Service) Detail(ctx context.Context, instructorID string) (dto.TeacherDetail, error) {
	t, err := s.Source.Teacher(ctx, instructorID)
	if err != nil {
		s.Log.Error("fetch teacher failed", zap.String("instructor_id", instructorID), zap.Error(err))
		return dto.TeacherDetail{}, err
	}
	if t == nil {
		return dto.TeacherDetail{}, ErrTeacherNotFound
	}

	now := s.Now()
	detail := dto.TeacherDetail{
		Teacher: dto.FromTeacherModel(*t),
		Classes: []dto.ClassRecord{},
		Batches: map[string]dto.BatchInfo{},
		Courses: map[int]dto.CourseInfo{},
		Periods: map[string]dto.PeriodInfo{},
	}

	raw, err := s.Source.Classes(ctx, instructorID)
	if err != nil {
		s.Log.Warn("fetch classes failed", zap.String("instructor_id", instructorID), zap.Error(err))
		return detail, nil
	}
	if len(raw) == 0 {
		return detail, nil
	}

	detail.Classes = TransformClasses(raw, now, s.Log)
	rel := s.lookupRelated(ctx, CollectRelatedIDs(detail.Classes))
	detail.Batches, detail.Courses, detail.Periods = rel.batches, rel.courses, rel.periods
	detail.Stats = ComputeStats(detail.Classes, rel.batches, rel.courses, dbtime.DateOf(now, s.Loc))
	return detail, nil
}

func (s *Service) ExportPayments(ctx context.Context, instructorID string, format exports.Format, columns []string) (*exports.Result, error) {
	detail, err := s.Detail(ctx, instructorID)
	if err != nil {
		return nil, err
	}
	if len(detail.Classes) == 0 {
		return nil, exports.ErrNoData
	}
	doc, err := BuildPaymentDocument(s.Cfg, detail, columns, s.Now())
	if err != nil {
		return nil, err
	}
	return s.Exporter.Export(doc, format, PaymentBasename(instructorID))
}

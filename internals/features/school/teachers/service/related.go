package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	rm "pmics_backend/internals/features/finance/reports/model"
	sm "pmics_backend/internals/features/school/schedules/model"
	"pmics_backend/internals/features/school/teachers/dto"
	"pmics_backend/internals/helpers/dbtime"
	"pmics_backend/internals/helpers/format"
)

// RelatedIDs: id unik batch / course / period dari class, urutan kemunculan.
type RelatedIDs struct {
	Batches []uuid.UUID
	Courses []int
	Periods []uuid.UUID
}

func CollectRelatedIDs(classes []dto.ClassRecord) RelatedIDs {
	var ids RelatedIDs
	seenBatch, seenCourse, seenPeriod := map[uuid.UUID]bool{}, map[int]bool{}, map[uuid.UUID]bool{}
	for _, c := range classes {
		bc := c.BatchCourse()
		if bc == nil {
			continue
		}
		if id, err := uuid.Parse(bc.BatchID); err == nil && id != uuid.Nil && !seenBatch[id] {
			seenBatch[id] = true
			ids.Batches = append(ids.Batches, id)
		}
		if bc.CourseID != 0 && !seenCourse[bc.CourseID] {
			seenCourse[bc.CourseID] = true
			ids.Courses = append(ids.Courses, bc.CourseID)
		}
		if id, err := uuid.Parse(bc.AcademicPeriodID); err == nil && id != uuid.Nil && !seenPeriod[id] {
			seenPeriod[id] = true
			ids.Periods = append(ids.Periods, id)
		}
	}
	return ids
}

type related struct {
	batches map[string]dto.BatchInfo
	courses map[int]dto.CourseInfo
	periods map[string]dto.PeriodInfo
}

// lookupRelated: tiga query IN paralel. Gagal satu → map-nya kosong, tidak fatal.
func (s *Service) lookupRelated(ctx context.Context, ids RelatedIDs) related {
	out := related{
		batches: map[string]dto.BatchInfo{},
		courses: map[int]dto.CourseInfo{},
		periods: map[string]dto.PeriodInfo{},
	}

	var g errgroup.Group
	if len(ids.Batches) > 0 {
		g.Go(func() error {
			rows, err := s.Source.BatchesByIDs(ctx, ids.Batches)
			if err != nil {
				s.Log.Warn("fetch batches failed", zap.Error(err))
				return nil
			}
			for _, b := range rows {
				out.batches[b.ID.String()] = batchInfo(b)
			}
			return nil
		})
	}
	if len(ids.Courses) > 0 {
		g.Go(func() error {
			rows, err := s.Source.CoursesByIDs(ctx, ids.Courses)
			if err != nil {
				s.Log.Warn("fetch courses failed", zap.Error(err))
				return nil
			}
			for _, c := range rows {
				out.courses[c.CourseID] = courseInfo(c)
			}
			return nil
		})
	}
	if len(ids.Periods) > 0 {
		g.Go(func() error {
			rows, err := s.Source.PeriodsByIDs(ctx, ids.Periods)
			if err != nil {
				s.Log.Warn("fetch academic periods failed", zap.Error(err))
				return nil
			}
			for _, p := range rows {
				out.periods[p.ID.String()] = periodInfo(p)
			}
			return nil
		})
	}
	_ = g.Wait()
	return out
}

func batchInfo(b rm.BatchModel) dto.BatchInfo {
	info := dto.BatchInfo{ID: b.ID.String(), BatchID: b.BatchID, ProgramCode: b.ProgramCode}
	if b.IntakeSession != nil {
		info.IntakeSession = *b.IntakeSession
	}
	if b.NumberOfStudents != nil {
		info.NumberOfStudents = *b.NumberOfStudents
	}
	return info
}

func courseInfo(c sm.CourseModel) dto.CourseInfo {
	info := dto.CourseInfo{CourseID: c.CourseID, CourseCode: c.CourseCode, CourseTitle: c.CourseTitle}
	if c.Credits != nil {
		info.Credits = c.Credits.InexactFloat64()
	}
	if c.SemesterNo != nil {
		info.SemesterNo = *c.SemesterNo
	}
	if c.CourseType != nil {
		info.CourseType = *c.CourseType
	}
	return info
}

func periodInfo(p rm.AcademicPeriodModel) dto.PeriodInfo {
	info := dto.PeriodInfo{
		ID:        p.ID.String(),
		BatchID:   p.BatchID.String(),
		Name:      p.Name,
		StartDate: dateString(p.StartDate),
		EndDate:   dateString(p.EndDate),
		IsActive:  p.IsActive != nil && *p.IsActive,
	}
	if p.SemesterNumber != nil {
		info.SemesterNumber = *p.SemesterNumber
	}
	return info
}

// ComputeStats: course dari lookup, batch unik dari class, mahasiswa dijumlah per batch unik,
// upcoming = tanggal ≥ hari ini & scheduled, earnings dibulatkan ke sen.
func ComputeStats(classes []dto.ClassRecord, batches map[string]dto.BatchInfo, courses map[int]dto.CourseInfo, today time.Time) dto.TeacherStats {
	st := dto.TeacherStats{TotalCourses: len(courses)}

	unique := map[string]bool{}
	earnings := decimal.Zero
	for _, c := range classes {
		if bc := c.BatchCourse(); bc != nil && bc.BatchID != "" {
			unique[bc.BatchID] = true
		}
		earnings = earnings.Add(decimal.NewFromFloat(c.Payment))

		if c.Status != string(sm.StatusScheduled) {
			continue
		}
		if d, err := dbtime.ParseDate(c.AssignedDate); err == nil && !d.Before(today) {
			st.UpcomingClasses++
		}
	}

	st.TotalBatches = len(unique)
	for id := range unique {
		st.TotalStudents += batches[id].NumberOfStudents
	}
	st.TotalEarnings = format.RoundCents(earnings.InexactFloat64())
	return st
}

package service

import (
	"slices"
	"strconv"
	"strings"
	"time"

	"pmics_backend/internals/features/school/schedules/dto"
	m "pmics_backend/internals/features/school/schedules/model"
	"pmics_backend/internals/helpers/dbtime"
	"pmics_backend/internals/helpers/format"
	"pmics_backend/internals/helpers/tabular"
)

type Row = dto.ScheduleRow

var weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

func dayIndex(day string) int {
	if i := slices.Index(weekdays, day); i >= 0 {
		return i
	}
	return len(weekdays)
}

// BuildRows: batch course × jadwal mingguan, lalu ditempel assignment hari ini.
// Batch course tanpa relasi course tetap tampil dengan kode/nama kosong.
func BuildRows(courses []m.BatchCourseModel, assignments []m.AssignedTeacherModel, today string) []Row {
	todays := map[string]m.AssignedTeacherModel{}
	for _, a := range assignments {
		if AssignedDay(a) != today {
			continue
		}
		key := a.BatchCourseScheduleID.String()
		if _, ok := todays[key]; !ok {
			todays[key] = a
		}
	}

	rows := []Row{}
	for _, bc := range courses {
		code, title := "", ""
		if bc.Course != nil {
			code, title = bc.Course.CourseCode, bc.Course.CourseTitle
		}
		for _, s := range bc.Schedules {
			id := s.ID.String()
			r := Row{
				ID:                    id,
				Day:                   format.DayName(s.ClassDay),
				StartTime:             s.StartTime.String(),
				EndTime:               s.EndTime.String(),
				CourseCode:            code,
				CourseName:            title,
				BatchCourseScheduleID: id,
			}
			if a, ok := todays[id]; ok {
				r.TeacherID = a.TeacherID
				if a.Teacher != nil {
					name := a.Teacher.FullName()
					r.TeacherName = &name
				}
				if a.Status != nil && *a.Status != "" {
					st := m.ClassStatus(*a.Status)
					r.Status = &st
				}
			}
			rows = append(rows, r)
		}
	}
	SortRows(rows)
	return rows
}

// SortRows: Senin → Minggu, lalu jam mulai. Hari tak dikenal di akhir.
func SortRows(rows []Row) {
	slices.SortStableFunc(rows, func(a, b Row) int {
		if d := dayIndex(a.Day) - dayIndex(b.Day); d != 0 {
			return d
		}
		return strings.Compare(a.StartTime, b.StartTime)
	})
}

// CourseOptions: dropdown course (urutan batch course).
func CourseOptions(courses []m.BatchCourseModel) []dto.CourseOption {
	out := []dto.CourseOption{}
	seen := map[int]bool{}
	for _, bc := range courses {
		if bc.Course == nil || seen[bc.Course.CourseID] {
			continue
		}
		seen[bc.Course.CourseID] = true
		out = append(out, dto.CourseOption{
			ID:         strconv.Itoa(bc.Course.CourseID),
			CourseCode: bc.Course.CourseCode,
			CourseName: bc.Course.CourseTitle,
		})
	}
	return out
}

// TeacherOptions: pengajar unik dari assignment, nama "Unknown" kalau relasi kosong.
func TeacherOptions(assignments []m.AssignedTeacherModel) []dto.TeacherOption {
	out := []dto.TeacherOption{}
	seen := map[string]bool{}
	for _, a := range assignments {
		if a.TeacherID == nil || *a.TeacherID == "" || seen[*a.TeacherID] {
			continue
		}
		seen[*a.TeacherID] = true
		name := "Unknown"
		if a.Teacher != nil {
			name = a.Teacher.FullName()
		}
		out = append(out, dto.TeacherOption{ID: *a.TeacherID, Name: name})
	}
	return out
}

/* =========================
   Filter & stats
   ========================= */

var (
	fieldCourseCode = tabular.TextField("course_code", tabular.StringOf(func(r Row) string { return r.CourseCode }))
	fieldCourseName = tabular.TextField("course_name", tabular.StringOf(func(r Row) string { return r.CourseName }))
	fieldDay        = tabular.TextField("day", tabular.StringOf(func(r Row) string { return r.Day }))
	fieldTeacher    = tabular.TextField("teacher_name", tabular.StringOf(Row.Teacher))
)

// teacherFilter: "unassigned" → tanpa pengajar, selain itu substring nama.
func teacherFilter(value string) tabular.Predicate[Row] {
	value = strings.TrimSpace(value)
	switch {
	case tabular.IsDisabled(value, dto.AllTeachers):
		return nil
	case value == dto.Unassigned:
		return func(r Row) bool { return r.Teacher() == "" }
	default:
		return func(r Row) bool {
			name := r.Teacher()
			return name != "" && strings.Contains(name, value)
		}
	}
}

func Predicates(q dto.ScheduleQuery) []tabular.Predicate[Row] {
	day := q.Day
	if !tabular.IsDisabled(day, dto.AllDays) {
		day = format.DayName(day)
	}
	return []tabular.Predicate[Row]{
		tabular.Equal(q.Course, fieldCourseCode, dto.AllCourses),
		teacherFilter(q.Teacher),
		tabular.Equal(day, fieldDay, dto.AllDays),
		tabular.Search(q.Search, fieldCourseName, fieldCourseCode, fieldTeacher),
	}
}

func FilterRows(rows []Row, q dto.ScheduleQuery) []Row {
	return tabular.Filter(rows, Predicates(q)...)
}

// Stats dihitung dari set yang sudah difilter.
func Stats(rows []Row) dto.ScheduleStats {
	st := dto.ScheduleStats{Total: len(rows)}
	for _, r := range rows {
		switch r.EffectiveStatus() {
		case m.StatusScheduled:
			st.Scheduled++
		case m.StatusCompleted:
			st.Completed++
		case m.StatusCancelled:
			st.Cancelled++
		}
		if r.Teacher() == "" {
			st.Unassigned++
		}
	}
	return st
}

// AssignedDay: assigned_date → "YYYY-MM-DD" ("" bila kosong).
func AssignedDay(a m.AssignedTeacherModel) string {
	t := time.Time(a.AssignedDate)
	if t.IsZero() {
		return ""
	}
	return t.Format(dbtime.DateLayout)
}

package service

import (
	"pmics_backend/internals/features/school/teachers/dto"
	"pmics_backend/internals/helpers/tabular"
)

type Item = dto.TeacherListItem

var (
	fieldFirstName  = tabular.TextField("first_name", tabular.StringOf(func(t Item) string { return t.FirstName }))
	fieldLastName   = tabular.TextField("last_name", tabular.StringOf(func(t Item) string { return t.LastName }))
	fieldEmail      = tabular.TextField("email", tabular.StringOf(func(t Item) string { return t.Email }))
	fieldInstructor = tabular.TextField("instructor_id", tabular.StringOf(func(t Item) string { return t.InstructorID }))
	fieldDepartment = tabular.TextField("department", tabular.StringOf(func(t Item) string { return t.Department }))
)

func statusFilter(status string) tabular.Predicate[Item] {
	switch status {
	case dto.RosterActive:
		return func(t Item) bool { return t.IsActive }
	case dto.RosterInactive:
		return func(t Item) bool { return !t.IsActive }
	default:
		return nil
	}
}

// FilterRoster: search di nama depan/belakang, email, instructor id, departemen.
func FilterRoster(items []Item, q dto.RosterQuery) []Item {
	return tabular.Filter(items,
		tabular.Search(q.Search, fieldFirstName, fieldLastName, fieldEmail, fieldInstructor, fieldDepartment),
		statusFilter(q.Status),
	)
}

// RosterStatsOf: total, aktif, jumlah departemen unik (non-kosong).
func RosterStatsOf(items []Item) dto.RosterStats {
	st := dto.RosterStats{Total: len(items)}
	depts := map[string]bool{}
	for _, t := range items {
		if t.IsActive {
			st.Active++
		}
		if t.Department != "" {
			depts[t.Department] = true
		}
	}
	st.Departments = len(depts)
	return st
}

type RosterResult struct {
	Page  tabular.Page[Item]
	Stats dto.RosterStats
}

// BuildRoster: urutan dari source (JoinDate DESC) dipertahankan; stats dari roster penuh.
func BuildRoster(items []Item, q dto.RosterQuery, page, perPage int) RosterResult {
	return RosterResult{
		Page:  tabular.Paginate(FilterRoster(items, q), page, perPage),
		Stats: RosterStatsOf(items),
	}
}

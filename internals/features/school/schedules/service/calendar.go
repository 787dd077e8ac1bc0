package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"pmics_backend/internals/features/school/schedules/dto"
	m "pmics_backend/internals/features/school/schedules/model"
)

var (
	ErrScheduleNotFound = errors.New("schedule not found")
	ErrTeacherNotFound  = errors.New("teacher not found")
)

// Calendar: view jadwal satu batch + edit optimistik.
// Write ke DB dulu; state lokal hanya berubah kalau write sukses.
type Calendar struct {
	writer AssignmentWriter
	date   time.Time
	rows   []Row
	index  map[string]int

	// OnUpdate dipanggil dengan row baru setelah edit sukses.
	OnUpdate func(Row, WriteAction)
}

func NewCalendar(rows []Row, w AssignmentWriter, date time.Time) *Calendar {
	c := &Calendar{writer: w, date: date, rows: append([]Row(nil), rows...), index: map[string]int{}}
	for i, r := range c.rows {
		c.index[r.ID] = i
	}
	return c
}

func (c *Calendar) Row(id string) (Row, bool) {
	i, ok := c.index[id]
	if !ok {
		return Row{}, false
	}
	return c.rows[i], true
}

// Edit: validasi transisi → write → Reduce → OnUpdate.
func (c *Calendar) Edit(ctx context.Context, id string, edit dto.ScheduleEditRequest) (Row, error) {
	current, ok := c.Row(id)
	if !ok {
		return Row{}, ErrScheduleNotFound
	}

	status := m.ClassStatus(edit.Status)
	if err := CanTransition(current.EffectiveStatus(), status); err != nil {
		return current, err
	}

	scheduleID, err := uuid.Parse(current.BatchCourseScheduleID)
	if err != nil {
		return current, fmt.Errorf("%w: invalid schedule id %q", ErrScheduleNotFound, current.BatchCourseScheduleID)
	}

	ack := Ack{Status: status}
	if teacherID := edit.Teacher(); teacherID != "" {
		name, err := c.writer.TeacherName(ctx, teacherID)
		if err != nil {
			return current, err
		}
		if name == "" {
			return current, fmt.Errorf("%w: %s", ErrTeacherNotFound, teacherID)
		}
		ack.TeacherID, ack.TeacherName = &teacherID, &name
	}

	var action WriteAction
	err = c.writer.WithTx(ctx, func(store AssignmentStore) error {
		var werr error
		action, werr = WriteAssignment(ctx, store, scheduleID, edit.Teacher(), status, c.date)
		return werr
	})
	if err != nil {
		return current, err
	}

	next := Reduce(current, ack)
	c.rows[c.index[id]] = next
	if c.OnUpdate != nil {
		c.OnUpdate(next, action)
	}
	return next, nil
}

package service

import (
	"errors"
	"fmt"

	m "pmics_backend/internals/features/school/schedules/model"
)

var (
	ErrTerminalStatus = errors.New("class status is final and cannot be changed")
	ErrInvalidStatus  = errors.New("invalid class status")
)

func IsTerminal(s m.ClassStatus) bool {
	return s == m.StatusCompleted || s == m.StatusCancelled
}

func validTarget(s m.ClassStatus) bool {
	switch s {
	case m.StatusScheduled, m.StatusCompleted, m.StatusCancelled:
		return true
	}
	return false
}

// CanTransition: scheduled → {scheduled, completed, cancelled}.
// completed / cancelled final; tetap boleh disimpan ulang dengan status yang sama
// (mis. ganti pengajar). Reset status hanya lewat sinkron data baru.
func CanTransition(from, to m.ClassStatus) error {
	if !validTarget(to) {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, to)
	}
	if IsTerminal(from) && from != to {
		return fmt.Errorf("%w: %s → %s", ErrTerminalStatus, from, to)
	}
	return nil
}

// Ack: nilai yang sudah dikonfirmasi oleh write ke DB.
type Ack struct {
	Status      m.ClassStatus
	TeacherID   *string
	TeacherName *string
}

// Reduce: state lokal berikutnya setelah write sukses. Murni, current tidak diubah.
func Reduce(current Row, ack Ack) Row {
	next := current
	st := ack.Status
	next.Status = &st
	next.TeacherID = clonePtr(ack.TeacherID)
	next.TeacherName = clonePtr(ack.TeacherName)
	return next
}

func clonePtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

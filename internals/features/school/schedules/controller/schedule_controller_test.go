package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "pmics_backend/internals/features/school/schedules/model"
	svc "pmics_backend/internals/features/school/schedules/service"
	"pmics_backend/internals/helpers/dbtime"
)

type memSource struct{ courses []m.BatchCourseModel }

func (s memSource) BatchCourses(context.Context, uuid.UUID, *uuid.UUID) ([]m.BatchCourseModel, error) {
	return s.courses, nil
}
func (memSource) Assignments(context.Context, []uuid.UUID) ([]m.AssignedTeacherModel, error) {
	return nil, nil
}

type memStore struct{ created int }

func (*memStore) FindForDate(context.Context, uuid.UUID, time.Time) (*m.AssignedTeacherModel, error) {
	return nil, nil
}
func (*memStore) Delete(context.Context, uuid.UUID) error                       { return nil }
func (*memStore) Update(context.Context, uuid.UUID, string, m.ClassStatus) error { return nil }
func (s *memStore) Create(context.Context, *m.AssignedTeacherModel) error {
	s.created++
	return nil
}

type memWriter struct{ store *memStore }

func (w memWriter) WithTx(_ context.Context, fn func(svc.AssignmentStore) error) error {
	return fn(w.store)
}
func (memWriter) TeacherName(_ context.Context, id string) (string, error) {
	if id == "T-1" {
		return "Rahim Uddin", nil
	}
	return "", nil
}

func setupApp(t *testing.T) (*fiber.App, uuid.UUID, *memStore) {
	t.Helper()
	schedID := uuid.New()
	start, _ := dbtime.Parse("09:00")
	end, _ := dbtime.Parse("10:30")
	src := memSource{courses: []m.BatchCourseModel{{
		ID:        uuid.New(),
		Course:    &m.CourseModel{CourseID: 7, CourseCode: "CSE101", CourseTitle: "Intro"},
		Schedules: []m.BatchCourseScheduleModel{{ID: schedID, ClassDay: "Sunday", StartTime: start, EndTime: end}},
	}}}
	store := &memStore{}
	s := svc.New(src, memWriter{store: store}, time.UTC, nil)

	h := NewScheduleController(s, nil)
	app := fiber.New()
	app.Get("/batches/:batch_id/schedule", h.List)
	app.Patch("/batches/:batch_id/schedule/:schedule_id", h.Edit)
	return app, schedID, store
}

func patch(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPatch, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestListSchedule(t *testing.T) {
	app, _, _ := setupApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/batches/"+uuid.NewString()+"/schedule?day=sun", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Data struct {
			Rows  []map[string]any `json:"rows"`
			Stats map[string]int   `json:"stats"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Data.Rows, 1)
	assert.Equal(t, "Sunday", body.Data.Rows[0]["day"])
	assert.Equal(t, "09:00:00", body.Data.Rows[0]["start_time"])
	assert.Equal(t, 1, body.Data.Stats["unassigned_classes"])
}

func TestListScheduleBadInput(t *testing.T) {
	app, _, _ := setupApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/batches/not-a-uuid/schedule", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/batches/"+uuid.NewString()+"/schedule?academic_period_id=x", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestEditSchedule(t *testing.T) {
	app, schedID, store := setupApp(t)
	base := "/batches/" + uuid.NewString() + "/schedule/"

	resp := patch(t, app, base+schedID.String(), `{"teacher_id":"T-1","status":"completed"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, store.created)

	tests := []struct {
		name string
		id   string
		body string
		code int
	}{
		{"bad status", schedID.String(), `{"status":"postponed"}`, http.StatusUnprocessableEntity},
		{"missing status", schedID.String(), `{"teacher_id":"T-1"}`, http.StatusUnprocessableEntity},
		{"unknown teacher", schedID.String(), `{"teacher_id":"T-9","status":"scheduled"}`, http.StatusBadRequest},
		{"unknown schedule", uuid.NewString(), `{"status":"scheduled"}`, http.StatusNotFound},
		{"broken json", schedID.String(), `{`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := patch(t, app, base+tt.id, tt.body)
			assert.Equal(t, tt.code, resp.StatusCode)
		})
	}
}

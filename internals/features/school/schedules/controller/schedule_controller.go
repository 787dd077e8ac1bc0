// file: internals/features/school/schedules/controller/schedule_controller.go
package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	d "pmics_backend/internals/features/school/schedules/dto"
	svc "pmics_backend/internals/features/school/schedules/service"
	helper "pmics_backend/internals/helpers"
)

type ScheduleController struct {
	Svc      *svc.Service
	Validate *validator.Validate
}

func NewScheduleController(s *svc.Service, v *validator.Validate) *ScheduleController {
	if v == nil {
		v = helper.NewValidator()
	}
	return &ScheduleController{Svc: s, Validate: v}
}

func parseBatchID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("batch_id")))
	if err != nil {
		return uuid.Nil, fiber.NewError(http.StatusBadRequest, "invalid batch_id")
	}
	return id, nil
}

/* =========================
   GET /batches/:batch_id/schedule
   ========================= */

func (ctl *ScheduleController) List(c *fiber.Ctx) error {
	batchID, err := parseBatchID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var q d.ScheduleQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid query: "+err.Error())
	}
	q.Normalize()
	if err := q.Validate(ctl.Validate); err != nil {
		return helper.ValidationError(c, err)
	}

	out, err := ctl.Svc.Schedule(c.UserContext(), batchID, q)
	if err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "ok", out)
}

/* =========================
   PATCH /batches/:batch_id/schedule/:schedule_id
   ========================= */

func (ctl *ScheduleController) Edit(c *fiber.Ctx) error {
	batchID, err := parseBatchID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	scheduleID := strings.TrimSpace(c.Params("schedule_id"))

	var req d.ScheduleEditRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "Invalid request body")
	}
	req.Status = strings.ToLower(strings.TrimSpace(req.Status))
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row, err := ctl.Svc.Edit(c.UserContext(), batchID, scheduleID, req)
	switch {
	case err == nil:
		return helper.JsonUpdated(c, "Class updated successfully", row)
	case errors.Is(err, svc.ErrScheduleNotFound):
		return helper.JsonError(c, http.StatusNotFound, "Schedule not found")
	case errors.Is(err, svc.ErrTeacherNotFound):
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, svc.ErrTerminalStatus), errors.Is(err, svc.ErrInvalidStatus):
		return helper.JsonError(c, http.StatusConflict, err.Error())
	default:
		return helper.WritePGError(c, err)
	}
}

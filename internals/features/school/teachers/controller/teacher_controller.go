// file: internals/features/school/teachers/controller/teacher_controller.go
package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"pmics_backend/internals/features/finance/exports"
	"pmics_backend/internals/features/school/teachers/dto"
	svc "pmics_backend/internals/features/school/teachers/service"
	helper "pmics_backend/internals/helpers"
)

type TeacherController struct {
	Svc      *svc.Service
	Validate *validator.Validate
}

func NewTeacherController(s *svc.Service, v *validator.Validate) *TeacherController {
	if v == nil {
		v = helper.NewValidator()
	}
	return &TeacherController{Svc: s, Validate: v}
}

func instructorID(c *fiber.Ctx) (string, error) {
	id := strings.TrimSpace(c.Params("instructor_id"))
	if id == "" {
		return "", fiber.NewError(fiber.StatusBadRequest, "instructor_id is required")
	}
	return id, nil
}

/* =========================
   GET /teachers
   ========================= */

func (ctl *TeacherController) List(c *fiber.Ctx) error {
	var q dto.RosterQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid query")
	}
	q.Normalize()
	if err := q.Validate(ctl.Validate); err != nil {
		return helper.ValidationError(c, err)
	}

	p := helper.ParseFiber(c, "join_date", "desc", helper.RosterOpts)
	res, err := ctl.Svc.Roster(c.UserContext(), q, p.Page, p.PerPage)
	if err != nil {
		return helper.WritePGError(c, err)
	}

	pg := helper.BuildPaginationFromPage(int64(res.Page.Total), res.Page.Page, res.Page.PerPage, len(res.Page.Rows))
	return helper.JsonListEx(c, fmt.Sprintf("%d teachers", res.Page.Total), res.Page.Rows, pg, fiber.Map{
		"stats":  res.Stats,
		"status": q.Status,
	})
}

/* =========================
   GET /teachers/:instructor_id
   ========================= */

func (ctl *TeacherController) Detail(c *fiber.Ctx) error {
	id, err := instructorID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	out, err := ctl.Svc.Detail(c.UserContext(), id)
	switch {
	case errors.Is(err, svc.ErrTeacherNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
	case err != nil:
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "ok", out)
}

/* =========================
   GET /teachers/:instructor_id/payments/export
   ========================= */

func (ctl *TeacherController) ExportPayments(c *fiber.Ctx) error {
	id, err := instructorID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var q dto.PaymentExportQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid query")
	}
	q.Format = strings.ToLower(strings.TrimSpace(q.Format))
	if err := ctl.Validate.Struct(q); err != nil {
		return helper.ValidationError(c, err)
	}

	res, err := ctl.Svc.ExportPayments(c.UserContext(), id, exports.ParseFormat(q.Format), helper.SplitCSV(q.Columns))
	switch {
	case errors.Is(err, svc.ErrTeacherNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
	case err != nil:
		return exports.WriteError(c, err)
	}
	return exports.Send(c, res)
}

// file: internals/features/finance/reports/controller/report_controller.go
package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"pmics_backend/internals/features/finance/exports"
	d "pmics_backend/internals/features/finance/reports/dto"
	svc "pmics_backend/internals/features/finance/reports/service"
	helper "pmics_backend/internals/helpers"
	"pmics_backend/internals/helpers/tabular"
)

/* =========================
   Controller & Constructor
   ========================= */

type ReportController struct {
	Svc      *svc.Service
	Validate *validator.Validate
}

func NewReportController(s *svc.Service, v *validator.Validate) *ReportController {
	if v == nil {
		v = helper.NewValidator()
	}
	return &ReportController{Svc: s, Validate: v}
}

// parseQuery: query string → ReportQuery yang sudah dinormalisasi & divalidasi.
func (ctl *ReportController) parseQuery(c *fiber.Ctx) (d.ReportQuery, error) {
	var q d.ReportQuery
	if err := c.QueryParser(&q); err != nil {
		return q, fiber.NewError(http.StatusBadRequest, "invalid query: "+err.Error())
	}
	q.Normalize(ctl.Svc.Now())
	if err := q.Validate(ctl.Validate); err != nil {
		return q, err
	}
	return q, nil
}

func (ctl *ReportController) writeQueryError(c *fiber.Ctx, err error) error {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return helper.JsonValidationError(c, helper.ValidationErrors(err))
	}
	return helper.FromFiberError(c, err)
}

/* =========================
   GET /reports/financial
   ========================= */

func (ctl *ReportController) List(c *fiber.Ctx) error {
	q, err := ctl.parseQuery(c)
	if err != nil {
		return ctl.writeQueryError(c, err)
	}
	p := helper.ParseFiber(c, svc.DefaultSortField, "asc", helper.ReportOpts.WithDefault(ctl.Svc.Cfg.ReportPageSize))
	sort := tabular.SortState{Field: p.SortBy, Direction: tabular.ParseDirection(p.SortOrder)}
	// klik header kolom: ?toggle=<field> relatif ke sort_by/order sekarang
	if f := strings.TrimSpace(c.Query("toggle")); f != "" {
		sort = sort.Toggle(f)
	}

	res, err := ctl.Svc.Table(c.UserContext(), q, sort, p.Page, p.PerPage)
	if err != nil {
		return helper.WritePGError(c, err)
	}

	pg := helper.BuildPaginationFromPage(int64(res.Total), res.Page, res.PerPage, len(res.Rows))
	return helper.JsonListEx(c, fmt.Sprintf("%d records", res.Total), res.Rows, pg, fiber.Map{
		"summary":     res.Summary,
		"sort":        res.Sort,
		"sortable":    svc.SortableFields(),
		"description": svc.FilterDescription(q.Selection()),
	})
}

/* =========================
   GET /reports/financial/summary
   ========================= */

func (ctl *ReportController) Summary(c *fiber.Ctx) error {
	q, err := ctl.parseQuery(c)
	if err != nil {
		return ctl.writeQueryError(c, err)
	}
	out, err := ctl.Svc.Summary(c.UserContext(), q)
	if err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "ok", out)
}

/* =========================
   GET /reports/financial/charts
   ========================= */

func (ctl *ReportController) Charts(c *fiber.Ctx) error {
	q, err := ctl.parseQuery(c)
	if err != nil {
		return ctl.writeQueryError(c, err)
	}
	out, err := ctl.Svc.Charts(c.UserContext(), q)
	if err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "ok", out)
}

/* =========================
   GET /reports/financial/reference
   ========================= */

func (ctl *ReportController) Reference(c *fiber.Ctx) error {
	q, err := ctl.parseQuery(c)
	if err != nil {
		return ctl.writeQueryError(c, err)
	}
	out, err := ctl.Svc.Reference(c.UserContext(), q)
	if err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, out.Description, out)
}

/* =========================
   GET /reports/financial/export
   ========================= */

func (ctl *ReportController) Export(c *fiber.Ctx) error {
	q, err := ctl.parseQuery(c)
	if err != nil {
		return ctl.writeQueryError(c, err)
	}

	res, err := ctl.Svc.Export(c.UserContext(), q, helper.SplitCSV(q.Columns))
	if err != nil {
		return exports.WriteError(c, err)
	}
	return exports.Send(c, res)
}

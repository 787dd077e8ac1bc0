// file: internals/features/finance/reports/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	ctl "pmics_backend/internals/features/finance/reports/controller"
	svc "pmics_backend/internals/features/finance/reports/service"
	"pmics_backend/internals/middlewares"
)

// ReportAdminRoutes mendaftarkan endpoint laporan keuangan (read-only + export).
func ReportAdminRoutes(admin fiber.Router, s *svc.Service) {
	h := ctl.NewReportController(s, nil)

	grp := admin.Group("/reports/financial")
	grp.Get("/", h.List)
	grp.Get("/summary", h.Summary)
	grp.Get("/charts", h.Charts)
	grp.Get("/reference", h.Reference)
	grp.Get("/export", middlewares.ExportRateLimiter(), h.Export)
}

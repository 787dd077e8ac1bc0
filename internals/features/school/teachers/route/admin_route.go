// file: internals/features/school/teachers/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	ctl "pmics_backend/internals/features/school/teachers/controller"
	svc "pmics_backend/internals/features/school/teachers/service"
	"pmics_backend/internals/middlewares"
)

func TeacherAdminRoutes(admin fiber.Router, s *svc.Service) {
	h := ctl.NewTeacherController(s, nil)

	grp := admin.Group("/teachers")
	grp.Get("/", h.List)
	grp.Get("/:instructor_id", h.Detail)
	grp.Get("/:instructor_id/payments/export", middlewares.ExportRateLimiter(), h.ExportPayments)
}

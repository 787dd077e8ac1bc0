// file: internals/features/school/schedules/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	ctl "pmics_backend/internals/features/school/schedules/controller"
	svc "pmics_backend/internals/features/school/schedules/service"
	"pmics_backend/internals/middlewares"
)

func ScheduleAdminRoutes(admin fiber.Router, s *svc.Service) {
	h := ctl.NewScheduleController(s, nil)

	grp := admin.Group("/batches/:batch_id/schedule")
	grp.Get("/", h.List)
	grp.Patch("/:schedule_id", middlewares.MutationRateLimiter(), h.Edit)
}

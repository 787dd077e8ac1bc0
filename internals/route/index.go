// file: internals/route/index.go
package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"pmics_backend/internals/configs"
	"pmics_backend/internals/features/finance/exports"
	reportRepo "pmics_backend/internals/features/finance/reports/repository"
	reportRoute "pmics_backend/internals/features/finance/reports/route"
	reportSvc "pmics_backend/internals/features/finance/reports/service"
	scheduleRepo "pmics_backend/internals/features/school/schedules/repository"
	scheduleRoute "pmics_backend/internals/features/school/schedules/route"
	scheduleSvc "pmics_backend/internals/features/school/schedules/service"
	teacherRepo "pmics_backend/internals/features/school/teachers/repository"
	teacherRoute "pmics_backend/internals/features/school/teachers/route"
	teacherSvc "pmics_backend/internals/features/school/teachers/service"
	"pmics_backend/internals/helpers/dbtime"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg configs.AppConfig, log *zap.Logger) {
	startTime = time.Now()

	log.Info("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app, cfg)

	// ===================== EXPORT =====================
	exporter := exports.NewExporter(log,
		exports.NewCSVWriter(),
		exports.NewExcelWriter(cfg.Institution),
		exports.NewPDFWriter(),
	)

	// ===================== ADMIN =====================
	log.Info("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a")

	log.Info("[INFO] Mounting Finance routes...")
	reports := reportSvc.New(reportRepo.NewReportRepository(db), exporter, cfg, log)
	reportRoute.ReportAdminRoutes(admin, reports)

	log.Info("[INFO] Mounting School routes...")
	schedRepo := scheduleRepo.NewScheduleRepository(db)
	schedules := scheduleSvc.New(schedRepo, schedRepo, dbtime.Location(cfg.Timezone), log)
	scheduleRoute.ScheduleAdminRoutes(admin, schedules)

	teachers := teacherSvc.New(teacherRepo.NewTeacherRepository(db), exporter, cfg, log)
	teacherRoute.TeacherAdminRoutes(admin, teachers)
}

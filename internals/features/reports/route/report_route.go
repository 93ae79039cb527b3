package route

import (
	"github.com/gofiber/fiber/v2"

	"student_result_system/internals/features/reports/controller"
	"student_result_system/internals/features/reports/service"
)

// ReportRoutes dipasang di group yang sudah dijaga session guard.
func ReportRoutes(r fiber.Router, reports *service.ReportService) {
	ctrl := controller.NewReportController(reports)

	r.Get("/students/:id/report", ctrl.Download)
	r.Get("/students/:id/report/preview", ctrl.Preview)
}

package details

import (
	"github.com/gofiber/fiber/v2"

	reportRoute "student_result_system/internals/features/reports/route"
	reportService "student_result_system/internals/features/reports/service"
	studentRoute "student_result_system/internals/features/students/route"
	studentService "student_result_system/internals/features/students/service"
)

// StudentRoutes: form, CRUD siswa, dan report (semua di group private).
func StudentRoutes(private fiber.Router, students *studentService.StudentService, reports *reportService.ReportService) {
	studentRoute.StudentRoutes(private, students)
	reportRoute.ReportRoutes(private, reports)
}

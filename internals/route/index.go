// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	reportService "student_result_system/internals/features/reports/service"
	studentService "student_result_system/internals/features/students/service"
	authService "student_result_system/internals/features/users/auth/service"
	authMiddleware "student_result_system/internals/middlewares/auth"
	routeDetails "student_result_system/internals/route/details"
)

var startTime = time.Now()

// Deps adalah service yang dibutuhkan route.
type Deps struct {
	DB       *gorm.DB
	APIURL   string
	Auth     *authService.AuthService
	Students *studentService.StudentService
	Reports  *reportService.ReportService
}

func SetupRoutes(app *fiber.App, d Deps) {
	startTime = time.Now()

	BaseRoutes(app, d.DB, d.APIURL)

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, d.Auth)

	// ===================== PRIVATE (butuh login) =====================
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api", authMiddleware.RequireSession(d.Auth.Session()))

	log.Println("[INFO] Mounting Student & Report routes...")
	routeDetails.StudentRoutes(private, d.Students, d.Reports)
}

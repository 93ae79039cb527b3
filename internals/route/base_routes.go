package routes

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// BaseRoutes: root & health. db boleh nil (session store bukan postgres).
func BaseRoutes(app *fiber.App, db *gorm.DB, apiURL string) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Student Result System form app is running 🚀")
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		dbStatus := "not used"
		serverStatus := "OK"
		httpStatus := fiber.StatusOK

		if db != nil {
			dbStatus = "Connected"
			sqlDB, err := db.DB()
			if err != nil || sqlDB.PingContext(c.UserContext()) != nil {
				dbStatus = "Database connection error"
				serverStatus = "DOWN"
				httpStatus = fiber.StatusServiceUnavailable
			}
		}

		uptime := time.Since(startTime).Seconds()

		return c.Status(httpStatus).JSON(fiber.Map{
			"status":         serverStatus,
			"session_db":     dbStatus,
			"api_url":        apiURL,
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int(uptime),
			"environment":    os.Getenv("RAILWAY_ENVIRONMENT"),
		})
	})
}

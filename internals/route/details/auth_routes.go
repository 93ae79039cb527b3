package details

import (
	"github.com/gofiber/fiber/v2"

	authRoute "student_result_system/internals/features/users/auth/route"
	authService "student_result_system/internals/features/users/auth/service"
)

func AuthRoutes(app *fiber.App, auth *authService.AuthService) {
	authRoute.AuthRoutes(app, auth)
}

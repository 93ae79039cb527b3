// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	controller "student_result_system/internals/features/users/auth/controller"
	"student_result_system/internals/features/users/auth/service"
	rateLimiter "student_result_system/internals/middlewares"
)

// AuthRoutes: /api/auth/* (tanpa session guard).
func AuthRoutes(app *fiber.App, auth *service.AuthService) {
	authController := controller.NewAuthController(auth)

	baseAuth := app.Group("/api/auth")

	baseAuth.Post("/login", rateLimiter.LoginRateLimiter(), authController.Login)
	baseAuth.Post("/register", rateLimiter.RegisterRateLimiter(), authController.Register)
	baseAuth.Post("/logout", authController.Logout)
	baseAuth.Get("/me", authController.Me)
}

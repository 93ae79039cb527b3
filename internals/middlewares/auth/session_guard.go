package auth

import (
	"context"

	"github.com/gofiber/fiber/v2"

	authModel "student_result_system/internals/features/users/auth/model"
	helper "student_result_system/internals/helpers"
)

const (
	LocalUser     = "user"
	LocalUserRole = "userRole"
)

// Checker adalah bagian dari Session yang dibaca guard.
type Checker interface {
	IsAuthenticated(ctx context.Context) bool
	CurrentUser(ctx context.Context) (*authModel.UserProfile, error)
}

// RequireSession menolak request (401) kalau belum login. Tidak ada cek expiry;
// token kadaluarsa ditangani gateway lewat refresh.
func RequireSession(s Checker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()
		if !s.IsAuthenticated(ctx) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Please login first.")
		}
		if u, err := s.CurrentUser(ctx); err == nil && u != nil {
			c.Locals(LocalUser, u)
			c.Locals(LocalUserRole, u.Role)
		}
		return c.Next()
	}
}

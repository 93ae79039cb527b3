package auth_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authModel "student_result_system/internals/features/users/auth/model"
	authMiddleware "student_result_system/internals/middlewares/auth"
)

type fakeSession struct {
	authed bool
	user   *authModel.UserProfile
}

func (f fakeSession) IsAuthenticated(context.Context) bool { return f.authed }

func (f fakeSession) CurrentUser(context.Context) (*authModel.UserProfile, error) {
	return f.user, nil
}

func newApp(s authMiddleware.Checker) *fiber.App {
	app := fiber.New()
	app.Get("/p", authMiddleware.RequireSession(s), func(c *fiber.Ctx) error {
		role, _ := c.Locals(authMiddleware.LocalUserRole).(string)
		return c.SendString("role=" + role)
	})
	return app
}

func TestRequireSession_Rejects(t *testing.T) {
	resp, err := newApp(fakeSession{}).Test(httptest.NewRequest("GET", "/p", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireSession_Allows(t *testing.T) {
	s := fakeSession{authed: true, user: &authModel.UserProfile{ID: 1, Username: "t", Role: "teacher"}}
	resp, err := newApp(s).Test(httptest.NewRequest("GET", "/p", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"

	authModel "student_result_system/internals/features/users/auth/model"
	"student_result_system/internals/features/users/auth/service"
	helper "student_result_system/internals/helpers"
)

type AuthController struct {
	Auth *service.AuthService
}

func NewAuthController(auth *service.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

// POST /api/auth/register
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var req authModel.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	user, err := ac.Auth.Register(c.UserContext(), req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Registration successful. Please login.", user)
}

// POST /api/auth/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req authModel.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	user, err := ac.Auth.Login(c.UserContext(), req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Login successful", user)
}

// POST /api/auth/logout
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	if err := ac.Auth.Logout(c.UserContext()); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Logged out", nil)
}

// GET /api/auth/me
// Expiry hanya informasi; status login tetap ditentukan ada/tidaknya access token.
func (ac *AuthController) Me(c *fiber.Ctx) error {
	ctx := c.UserContext()
	sess := ac.Auth.Session()

	user, err := sess.CurrentUser(ctx)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	data := fiber.Map{
		"is_authenticated": sess.IsAuthenticated(ctx),
		"user":             user,
	}
	if exp, ok := sess.AccessTokenExpiry(ctx); ok {
		data["access_expires_at"] = exp.UTC().Format(time.RFC3339)
	}
	return helper.JsonOK(c, "", data)
}

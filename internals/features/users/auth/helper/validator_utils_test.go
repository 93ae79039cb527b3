package helper

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authModel "student_result_system/internals/features/users/auth/model"
)

func validRegister() authModel.RegisterRequest {
	return authModel.RegisterRequest{
		Username:        "guru1",
		Email:           "guru1@example.com",
		Password:        "rahasia123",
		ConfirmPassword: "rahasia123",
		Role:            "teacher",
	}
}

func TestValidateRegisterInput(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(r *authModel.RegisterRequest)
		want   string
	}{
		{"ok", func(r *authModel.RegisterRequest) {}, ""},
		{"mismatch", func(r *authModel.RegisterRequest) { r.ConfirmPassword = "different1" }, MsgPasswordMismatch},
		{"mismatch checked before length", func(r *authModel.RegisterRequest) { r.Password = "a"; r.ConfirmPassword = "b" }, MsgPasswordMismatch},
		{"too short in characters", func(r *authModel.RegisterRequest) { r.Password = "ééééééé"; r.ConfirmPassword = "ééééééé" }, MsgPasswordTooShort},
		{"multibyte long enough", func(r *authModel.RegisterRequest) { r.Password = "éééééééé"; r.ConfirmPassword = "éééééééé" }, ""},
		{"too short", func(r *authModel.RegisterRequest) { r.Password = "short"; r.ConfirmPassword = "short" }, MsgPasswordTooShort},
		{"bad email", func(r *authModel.RegisterRequest) { r.Email = "nope" }, "Email is not valid"},
		{"bad role", func(r *authModel.RegisterRequest) { r.Role = "owner" }, `role "owner" is not recognised, use teacher or admin`},
		{"missing username", func(r *authModel.RegisterRequest) { r.Username = "" }, "username is required"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRegister()
			tc.mutate(&req)
			err := ValidateRegisterInput(req)
			if tc.want == "" {
				assert.NoError(t, err)
				return
			}
			var fe *fiber.Error
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, fiber.StatusBadRequest, fe.Code)
			assert.Equal(t, tc.want, fe.Message)
		})
	}
}

func TestValidateLoginInput(t *testing.T) {
	assert.NoError(t, ValidateLoginInput(authModel.LoginRequest{Username: "u", Password: "p"}))
	err := ValidateLoginInput(authModel.LoginRequest{Username: "u"})
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "password is required", fe.Message)
}

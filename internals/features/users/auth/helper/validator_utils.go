package helper

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"student_result_system/internals/constants"
	authModel "student_result_system/internals/features/users/auth/model"
)

const (
	MinPasswordLength = 8

	MsgPasswordMismatch = "Passwords do not match"
	MsgPasswordTooShort = "Password must be at least 8 characters long"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		_ = validate.RegisterValidation("role", func(fl validator.FieldLevel) bool {
			return constants.IsKnownRole(fl.Field().String())
		})
	})
	return validate
}

// ValidateRegisterInput dijalankan sebelum network call apapun.
func ValidateRegisterInput(req authModel.RegisterRequest) error {
	if req.Password != req.ConfirmPassword {
		return fiber.NewError(fiber.StatusBadRequest, MsgPasswordMismatch)
	}
	if utf8.RuneCountInString(req.Password) < MinPasswordLength {
		return fiber.NewError(fiber.StatusBadRequest, MsgPasswordTooShort)
	}
	if err := Validator().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, FirstValidationMessage(err))
	}
	return nil
}

func ValidateLoginInput(req authModel.LoginRequest) error {
	if err := Validator().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, FirstValidationMessage(err))
	}
	return nil
}

// FirstValidationMessage mengubah error validator jadi kalimat pendek untuk form.
func FirstValidationMessage(err error) string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) || len(ve) == 0 {
		return "Invalid input"
	}
	fe := ve[0]
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return "Email is not valid"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", field, fe.Param())
	case "role":
		return constants.RoleError(fmt.Sprint(fe.Value()))
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

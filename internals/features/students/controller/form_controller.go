package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"student_result_system/internals/features/students/dto"
	"student_result_system/internals/features/students/model"
	"student_result_system/internals/features/students/service"
	helper "student_result_system/internals/helpers"
)

var validate = validator.New()

type FormController struct {
	Students *service.StudentService
}

func NewFormController(students *service.StudentService) *FormController {
	return &FormController{Students: students}
}

// bindAndMutate: parse body → validasi → ubah form di bawah lock.
func bindAndMutate[T any](c *fiber.Ctx, h *service.FormHolder, apply func(req T, f *model.FormState) error) error {
	var req T
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	form, err := h.Mutate(func(f *model.FormState) error { return apply(req, f) })
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "", form)
}

// GET /api/form
func (fc *FormController) Get(c *fiber.Ctx) error {
	return helper.JsonOK(c, "", fc.Students.Form().Snapshot())
}

// PATCH /api/form/fields
func (fc *FormController) SetField(c *fiber.Ctx) error {
	return bindAndMutate(c, fc.Students.Form(), func(req dto.SetFieldRequest, f *model.FormState) error {
		return f.SetField(req.Field, req.Value)
	})
}

// PATCH /api/form/theory-attendance
func (fc *FormController) SetTheoryAttendance(c *fiber.Ctx) error {
	return bindAndMutate(c, fc.Students.Form(), func(req dto.SetTheoryAttendanceRequest, f *model.FormState) error {
		return f.SetTheoryAttendance(req.SubjectID, req.Value)
	})
}

// PATCH /api/form/lab-attendance
func (fc *FormController) SetLabAttendance(c *fiber.Ctx) error {
	return bindAndMutate(c, fc.Students.Form(), func(req dto.SetLabAttendanceRequest, f *model.FormState) error {
		return f.SetLabAttendance(req.LabID, req.Value)
	})
}

// PATCH /api/form/assignments
func (fc *FormController) SetAssignment(c *fiber.Ctx) error {
	return bindAndMutate(c, fc.Students.Form(), func(req dto.SetAssignmentRequest, f *model.FormState) error {
		return f.SetAssignmentMark(req.SubjectID, *req.Index, req.Value)
	})
}

// PATCH /api/form/practicals
func (fc *FormController) SetPractical(c *fiber.Ctx) error {
	return bindAndMutate(c, fc.Students.Form(), func(req dto.SetPracticalRequest, f *model.FormState) error {
		return f.SetPractical(req.LabID, *req.Index, req.Value)
	})
}

// POST /api/form/reset
func (fc *FormController) Reset(c *fiber.Ctx) error {
	return helper.JsonOK(c, "Form reset", fc.Students.Form().Reset())
}

// POST /api/form/submit
// Gagal → form tetap utuh, pesan server diteruskan apa adanya.
func (fc *FormController) Submit(c *fiber.Ctx) error {
	rec, err := fc.Students.Submit(c.UserContext())
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Student data saved successfully!", rec)
}

package controller

import (
	"github.com/gofiber/fiber/v2"

	"student_result_system/internals/constants"
	"student_result_system/internals/features/students/dto"
	"student_result_system/internals/features/students/service"
	helper "student_result_system/internals/helpers"
)

type StudentController struct {
	Students *service.StudentService
}

func NewStudentController(students *service.StudentService) *StudentController {
	return &StudentController{Students: students}
}

func studentID(c *fiber.Ctx) (int, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid student id")
	}
	return id, nil
}

// GET /api/catalog
func (sc *StudentController) Catalog(c *fiber.Ctx) error {
	return helper.JsonOK(c, "", fiber.Map{
		"theory_subjects":         constants.TheorySubjects(),
		"lab_subjects":            constants.LabSubjects(),
		"assignments_per_subject": constants.AssignmentsPerSubject,
		"practicals_per_lab":      constants.PracticalsPerLab,
	})
}

// GET /api/students?refresh=true
func (sc *StudentController) List(c *fiber.Ctx) error {
	recs, err := sc.Students.List(c.UserContext(), c.QueryBool("refresh", false))
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "", recs)
}

// GET /api/students/:id
func (sc *StudentController) Get(c *fiber.Ctx) error {
	id, err := studentID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	rec, err := sc.Students.Get(c.UserContext(), id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "", rec)
}

// PUT /api/students/:id
func (sc *StudentController) Update(c *fiber.Ctx) error {
	id, err := studentID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	form, err := req.ToFormState()
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	rec, err := sc.Students.Update(c.UserContext(), id, form, req.Email)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "", rec)
}

// DELETE /api/students/:id
func (sc *StudentController) Delete(c *fiber.Ctx) error {
	id, err := studentID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := sc.Students.Delete(c.UserContext(), id); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "", fiber.Map{"id": id})
}

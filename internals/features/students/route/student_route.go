package route

import (
	"github.com/gofiber/fiber/v2"

	"student_result_system/internals/features/students/controller"
	"student_result_system/internals/features/students/service"
)

// StudentRoutes dipasang di group yang sudah dijaga session guard.
func StudentRoutes(r fiber.Router, students *service.StudentService) {
	formCtrl := controller.NewFormController(students)
	studentCtrl := controller.NewStudentController(students)

	r.Get("/catalog", studentCtrl.Catalog)

	form := r.Group("/form")
	form.Get("/", formCtrl.Get)
	form.Patch("/fields", formCtrl.SetField)
	form.Patch("/theory-attendance", formCtrl.SetTheoryAttendance)
	form.Patch("/lab-attendance", formCtrl.SetLabAttendance)
	form.Patch("/assignments", formCtrl.SetAssignment)
	form.Patch("/practicals", formCtrl.SetPractical)
	form.Post("/reset", formCtrl.Reset)
	form.Post("/submit", formCtrl.Submit)

	st := r.Group("/students")
	st.Get("/", studentCtrl.List)
	st.Get("/:id", studentCtrl.Get)
	st.Put("/:id", studentCtrl.Update)
	st.Delete("/:id", studentCtrl.Delete)
}

package controller

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"student_result_system/internals/features/reports/service"
	helper "student_result_system/internals/helpers"
)

const HeaderReportEmailed = "X-Report-Emailed"

type ReportController struct {
	Reports *service.ReportService
}

func NewReportController(reports *service.ReportService) *ReportController {
	return &ReportController{Reports: reports}
}

func reportStudentID(c *fiber.Ctx) (int, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid student id")
	}
	return id, nil
}

// GET /api/students/:id/report/preview
func (rc *ReportController) Preview(c *fiber.Ctx) error {
	id, err := reportStudentID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	report, err := rc.Reports.Preview(c.UserContext(), id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "", report)
}

// GET /api/students/:id/report
// PDF di-download; kalau siswa punya email, salinannya sudah dikirim lebih dulu.
func (rc *ReportController) Download(c *fiber.Ctx) error {
	id, err := reportStudentID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	doc, err := rc.Reports.Generate(c.UserContext(), id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", doc.Filename))
	c.Set(HeaderReportEmailed, strconv.FormatBool(doc.Emailed))
	return c.Send(doc.Content)
}

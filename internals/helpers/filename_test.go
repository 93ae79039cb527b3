package helper_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	helper "student_result_system/internals/helpers"
)

func TestReportFilename(t *testing.T) {
	cases := map[string]string{
		"Asha":          "Asha_Report.pdf",
		"Asha Kumar":    "Asha_Kumar_Report.pdf",
		"José Núñez":    "Jose_Nunez_Report.pdf",
		"  ../../etc  ": "etc_Report.pdf",
		"":              "student_Report.pdf",
		"a / b \\ c":    "a_b_c_Report.pdf",
		"O'Brien, Sean": "O_Brien_Sean_Report.pdf",
	}
	for in, want := range cases {
		assert.Equal(t, want, helper.ReportFilename(in), in)
	}
}

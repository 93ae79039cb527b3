package service

import (
	"fmt"
	"strconv"
	"time"

	"student_result_system/internals/constants"
	reportModel "student_result_system/internals/features/reports/model"
	studentModel "student_result_system/internals/features/students/model"
	"student_result_system/internals/features/students/transform"
)

// Judul section report.
const (
	ReportTitle         = "Student Academic Report"
	SectionTheory       = "Theory Attendance Records"
	SectionLab          = "Lab Attendance Records"
	SectionExam         = "Examination Marks"
	SectionAssignments  = "Assignments"
	SectionPracticals   = "Practicals"
	SignatureLabel      = "Class Coordinator"
	DefaultAcademicYear = "2023-2024"
	generatedDateLayout = "1/2/2006"
)

type RenderOptions struct {
	AcademicYear string
	Now          time.Time
}

// IAAverage = (ia1+ia2)/2, dua desimal.
func IAAverage(ia1, ia2 int) string {
	return strconv.FormatFloat(float64(ia1+ia2)/2, 'f', 2, 64)
}

// Total = IAAverage (yang sudah dibulatkan) + ese, dua desimal.
func Total(ia1, ia2, ese int) string {
	avg, _ := strconv.ParseFloat(IAAverage(ia1, ia2), 64)
	return strconv.FormatFloat(avg+float64(ese), 'f', 2, 64)
}

// Render menyusun layout report dari record yang sudah di-fromWire.
// Assignment & practical selalu mengikuti urutan catalog; kalau record tidak
// punya entry untuk satu subject/lab, nilainya tampil sebagai default.
func Render(rec studentModel.DisplayRecord, opts RenderOptions) reportModel.Report {
	year := opts.AcademicYear
	if year == "" {
		year = DefaultAcademicYear
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	return reportModel.Report{
		Title:        ReportTitle,
		Subtitle:     "Academic Year " + year,
		StudentID:    rec.ID,
		StudentName:  rec.Name,
		StudentEmail: rec.Email,
		Info: []reportModel.Row{
			{Label: "Roll Number:", Value: rec.RollNo},
			{Label: "Student Name:", Value: rec.Name},
		},
		Sections: []reportModel.Section{
			attendanceSection(SectionTheory, rec.TheoryAttendance, false),
			attendanceSection(SectionLab, rec.LabAttendance, true),
			examSection(rec),
			assignmentSection(rec),
			practicalSection(rec),
		},
		SignatureLabel: SignatureLabel,
		GeneratedAt:    now,
		GeneratedOn:    "Generated on: " + now.Format(generatedDateLayout),
	}
}

func attendanceSection(title string, entries []studentModel.AttendanceEntry, highlight bool) reportModel.Section {
	rows := make([]reportModel.Row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, reportModel.Row{
			Label:     e.Name,
			Value:     fmt.Sprintf("%d%%", e.Attendance),
			Highlight: highlight,
		})
	}
	return reportModel.Section{Title: title, Groups: []reportModel.Group{{Rows: rows}}}
}

func examSection(rec studentModel.DisplayRecord) reportModel.Section {
	rows := []reportModel.Row{
		{Label: "IA 1", Value: fmt.Sprintf("%d/%d", rec.IA1, transform.MaxInternalAssess)},
		{Label: "IA 2", Value: fmt.Sprintf("%d/%d", rec.IA2, transform.MaxInternalAssess)},
		{Label: "IA Average", Value: fmt.Sprintf("%s/%d", IAAverage(rec.IA1, rec.IA2), transform.MaxInternalAssess), Highlight: true},
		{Label: "ESE", Value: fmt.Sprintf("%d/%d", rec.ESE, transform.MaxESE)},
		{Label: "Total", Value: Total(rec.IA1, rec.IA2, rec.ESE) + "/100", Highlight: true},
	}
	return reportModel.Section{Title: SectionExam, Groups: []reportModel.Group{{Rows: rows}}}
}

func assignmentSection(rec studentModel.DisplayRecord) reportModel.Section {
	subjects := constants.TheorySubjects()
	groups := make([]reportModel.Group, 0, len(subjects))
	for _, s := range subjects {
		entry, _ := rec.AssignmentsFor(s.ID)
		rows := make([]reportModel.Row, 0, len(entry.Marks))
		for i, m := range entry.Marks {
			rows = append(rows, reportModel.Row{
				Label: fmt.Sprintf("Assignment %d", i+1),
				Value: fmt.Sprintf("%d/%d", m, transform.MaxAssignmentMark),
			})
		}
		groups = append(groups, reportModel.Group{Heading: s.Name, Rows: rows})
	}
	return reportModel.Section{Title: SectionAssignments, Groups: groups}
}

func practicalSection(rec studentModel.DisplayRecord) reportModel.Section {
	labs := constants.LabSubjects()
	groups := make([]reportModel.Group, 0, len(labs))
	for _, l := range labs {
		// entry yang tidak ada atau slot kosong sama-sama jadi N/A
		entry, _ := rec.PracticalsFor(l.ID)
		rows := make([]reportModel.Row, 0, len(entry.Grades))
		for i, g := range entry.Grades {
			rows = append(rows, reportModel.Row{
				Label: fmt.Sprintf("Practical %d", i+1),
				Value: transform.GradeOrNA(g),
			})
		}
		groups = append(groups, reportModel.Group{Heading: l.Name, Rows: rows})
	}
	return reportModel.Section{Title: SectionPracticals, Groups: groups}
}

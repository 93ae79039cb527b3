package model

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"student_result_system/internals/constants"
)

// Nama field skalar yang boleh di-set lewat SetField.
const (
	FieldRollNo = "rollNo"
	FieldName   = "name"
	FieldIA1    = "ia1"
	FieldIA2    = "ia2"
	FieldESE    = "ese"
)

type TheoryAttendanceInput struct {
	SubjectID   int    `json:"subject_id"`
	SubjectName string `json:"subject_name"`
	Attendance  string `json:"attendance"`
}

type LabAttendanceInput struct {
	LabID      int    `json:"lab_id"`
	LabName    string `json:"lab_name"`
	Attendance string `json:"attendance"`
}

type AssignmentInput struct {
	SubjectID   int                                     `json:"subject_id"`
	SubjectName string                                  `json:"subject_name"`
	Marks       [constants.AssignmentsPerSubject]string `json:"marks"`
}

type PracticalInput struct {
	LabID   int                                 `json:"lab_id"`
	LabName string                              `json:"lab_name"`
	Grades  [constants.PracticalsPerLab]string `json:"grades"`
}

// FormState adalah input mentah satu siswa. Panjang & urutan setiap slice
// selalu sama dengan catalog; entry hanya diubah, tidak pernah ditambah/dihapus.
type FormState struct {
	RollNo           string                  `json:"roll_no"`
	Name             string                  `json:"name"`
	TheoryAttendance []TheoryAttendanceInput `json:"theory_attendance"`
	LabAttendance    []LabAttendanceInput    `json:"lab_attendance"`
	IA1              string                  `json:"ia1"`
	IA2              string                  `json:"ia2"`
	ESE              string                  `json:"ese"`
	Assignments      []AssignmentInput       `json:"assignments"`
	Practicals       []PracticalInput        `json:"practicals"`
}

func NewFormState() *FormState {
	f := &FormState{}
	f.Reset()
	return f
}

// Reset mengosongkan semua input dan membentuk ulang dari catalog.
func (f *FormState) Reset() {
	subjects := constants.TheorySubjects()
	labs := constants.LabSubjects()

	*f = FormState{
		TheoryAttendance: make([]TheoryAttendanceInput, len(subjects)),
		LabAttendance:    make([]LabAttendanceInput, len(labs)),
		Assignments:      make([]AssignmentInput, len(subjects)),
		Practicals:       make([]PracticalInput, len(labs)),
	}
	for i, s := range subjects {
		f.TheoryAttendance[i] = TheoryAttendanceInput{SubjectID: s.ID, SubjectName: s.Name}
		f.Assignments[i] = AssignmentInput{SubjectID: s.ID, SubjectName: s.Name}
	}
	for i, l := range labs {
		f.LabAttendance[i] = LabAttendanceInput{LabID: l.ID, LabName: l.Name}
		f.Practicals[i] = PracticalInput{LabID: l.ID, LabName: l.Name}
	}
}

// Clone: snapshot untuk submit supaya transform tidak membaca state yang sedang diubah.
func (f *FormState) Clone() *FormState {
	c := *f
	c.TheoryAttendance = append([]TheoryAttendanceInput(nil), f.TheoryAttendance...)
	c.LabAttendance = append([]LabAttendanceInput(nil), f.LabAttendance...)
	c.Assignments = append([]AssignmentInput(nil), f.Assignments...)
	c.Practicals = append([]PracticalInput(nil), f.Practicals...)
	return &c
}

func (f *FormState) SetField(field, value string) error {
	switch field {
	case FieldRollNo:
		f.RollNo = value
	case FieldName:
		f.Name = value
	case FieldIA1:
		f.IA1 = value
	case FieldIA2:
		f.IA2 = value
	case FieldESE:
		f.ESE = value
	default:
		return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("unknown field %q", field))
	}
	return nil
}

func (f *FormState) SetTheoryAttendance(subjectID int, value string) error {
	for i := range f.TheoryAttendance {
		if f.TheoryAttendance[i].SubjectID == subjectID {
			f.TheoryAttendance[i].Attendance = value
			return nil
		}
	}
	return unknownSubject(subjectID)
}

func (f *FormState) SetLabAttendance(labID int, value string) error {
	for i := range f.LabAttendance {
		if f.LabAttendance[i].LabID == labID {
			f.LabAttendance[i].Attendance = value
			return nil
		}
	}
	return unknownLab(labID)
}

func (f *FormState) SetAssignmentMark(subjectID, index int, value string) error {
	if index < 0 || index >= constants.AssignmentsPerSubject {
		return badIndex("assignment", index)
	}
	for i := range f.Assignments {
		if f.Assignments[i].SubjectID == subjectID {
			f.Assignments[i].Marks[index] = value
			return nil
		}
	}
	return unknownSubject(subjectID)
}

func (f *FormState) SetPractical(labID, index int, value string) error {
	if index < 0 || index >= constants.PracticalsPerLab {
		return badIndex("practical", index)
	}
	for i := range f.Practicals {
		if f.Practicals[i].LabID == labID {
			f.Practicals[i].Grades[index] = value
			return nil
		}
	}
	return unknownLab(labID)
}

func unknownSubject(id int) error {
	return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("unknown subject id %d", id))
}

func unknownLab(id int) error {
	return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("unknown lab id %d", id))
}

func badIndex(kind string, index int) error {
	return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("%s index %d out of range", kind, index))
}

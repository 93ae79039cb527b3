package model

import "student_result_system/internals/constants"

/* =========================================================
   WIRE (remote API, keyed by id)
   ========================================================= */

// StudentRecordWire adalah bentuk yang dikirim/diterima dari /students/.
// Map ber-key id di-encode sebagai JSON object dengan key string.
type StudentRecordWire struct {
	ID               int                                          `json:"id,omitempty"`
	RollNo           string                                       `json:"roll_no"`
	Name             string                                       `json:"name"`
	Email            string                                       `json:"email"`
	TheoryAttendance map[int]int                                  `json:"theory_attendance"`
	LabAttendance    map[int]int                                  `json:"lab_attendance"`
	IA1              int                                          `json:"ia1"`
	IA2              int                                          `json:"ia2"`
	ESE              int                                          `json:"ese"`
	Assignments      map[int][constants.AssignmentsPerSubject]int `json:"assignments"`
	Practicals       map[int][constants.PracticalsPerLab]string   `json:"practicals"`
}

/* =========================================================
   DISPLAY (hasil fromWire, dipakai list & report)
   ========================================================= */

type AttendanceEntry struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Attendance int    `json:"attendance"`
}

type AssignmentEntry struct {
	SubjectID   int                                  `json:"subject_id"`
	SubjectName string                               `json:"subject_name"`
	Marks       [constants.AssignmentsPerSubject]int `json:"marks"`
}

type PracticalEntry struct {
	LabID   int                                 `json:"lab_id"`
	LabName string                              `json:"lab_name"`
	Grades  [constants.PracticalsPerLab]string `json:"grades"`
}

type DisplayRecord struct {
	ID               int               `json:"id"`
	RollNo           string            `json:"roll_no"`
	Name             string            `json:"name"`
	Email            string            `json:"email,omitempty"`
	TheoryAttendance []AttendanceEntry `json:"theory_attendance"`
	LabAttendance    []AttendanceEntry `json:"lab_attendance"`
	IA1              int               `json:"ia1"`
	IA2              int               `json:"ia2"`
	ESE              int               `json:"ese"`
	Assignments      []AssignmentEntry `json:"assignments"`
	Practicals       []PracticalEntry  `json:"practicals"`
}

// AssignmentsFor mencari entry assignment per subject id.
func (r DisplayRecord) AssignmentsFor(subjectID int) (AssignmentEntry, bool) {
	for _, a := range r.Assignments {
		if a.SubjectID == subjectID {
			return a, true
		}
	}
	return AssignmentEntry{}, false
}

func (r DisplayRecord) PracticalsFor(labID int) (PracticalEntry, bool) {
	for _, p := range r.Practicals {
		if p.LabID == labID {
			return p, true
		}
	}
	return PracticalEntry{}, false
}

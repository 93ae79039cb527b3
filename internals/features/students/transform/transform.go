// Package transform converts between the positional FormState used by the
// entry form and the id-keyed record exchanged with the remote API.
package transform

import (
	"sort"

	"student_result_system/internals/constants"
	"student_result_system/internals/features/students/model"
)

// ToWire selalu menghasilkan tepat satu entry per id catalog, apapun isi form.
// Tidak pernah error: input rusak jatuh ke 0 / "N/A".
func ToWire(f *model.FormState) model.StudentRecordWire {
	subjects := constants.TheorySubjects()
	labs := constants.LabSubjects()

	out := model.StudentRecordWire{
		RollNo:           f.RollNo,
		Name:             f.Name,
		Email:            "",
		TheoryAttendance: make(map[int]int, len(subjects)),
		LabAttendance:    make(map[int]int, len(labs)),
		IA1:              ParseScore(f.IA1, MaxInternalAssess),
		IA2:              ParseScore(f.IA2, MaxInternalAssess),
		ESE:              ParseScore(f.ESE, MaxESE),
		Assignments:      make(map[int][constants.AssignmentsPerSubject]int, len(subjects)),
		Practicals:       make(map[int][constants.PracticalsPerLab]string, len(labs)),
	}

	for _, s := range subjects {
		out.TheoryAttendance[s.ID] = ParseScore(theoryAttendance(f, s.ID), MaxAttendance)

		var marks [constants.AssignmentsPerSubject]int
		raw := assignmentMarks(f, s.ID)
		for i := range marks {
			marks[i] = ParseScore(raw[i], MaxAssignmentMark)
		}
		out.Assignments[s.ID] = marks
	}

	for _, l := range labs {
		out.LabAttendance[l.ID] = ParseScore(labAttendance(f, l.ID), MaxAttendance)

		var grades [constants.PracticalsPerLab]string
		raw := practicalGrades(f, l.ID)
		for i := range grades {
			grades[i] = GradeOrNA(raw[i])
		}
		out.Practicals[l.ID] = grades
	}
	return out
}

// FromWire membentuk ulang record tampilan. Id yang tidak dikenal catalog diberi
// label "Subject {id}" / "Lab {id}". Urutan: urutan catalog, lalu id asing naik.
func FromWire(w model.StudentRecordWire) model.DisplayRecord {
	out := model.DisplayRecord{
		ID:               w.ID,
		RollNo:           w.RollNo,
		Name:             w.Name,
		Email:            w.Email,
		IA1:              w.IA1,
		IA2:              w.IA2,
		ESE:              w.ESE,
		TheoryAttendance: make([]model.AttendanceEntry, 0, len(w.TheoryAttendance)),
		LabAttendance:    make([]model.AttendanceEntry, 0, len(w.LabAttendance)),
		Assignments:      make([]model.AssignmentEntry, 0, len(w.Assignments)),
		Practicals:       make([]model.PracticalEntry, 0, len(w.Practicals)),
	}

	for _, id := range orderedIDs(keysOf(w.TheoryAttendance), constants.SubjectIndex) {
		out.TheoryAttendance = append(out.TheoryAttendance, model.AttendanceEntry{
			ID: id, Name: constants.SubjectLabel(id), Attendance: w.TheoryAttendance[id],
		})
	}
	for _, id := range orderedIDs(keysOf(w.LabAttendance), constants.LabIndex) {
		out.LabAttendance = append(out.LabAttendance, model.AttendanceEntry{
			ID: id, Name: constants.LabLabel(id), Attendance: w.LabAttendance[id],
		})
	}
	for _, id := range orderedIDs(keysOf(w.Assignments), constants.SubjectIndex) {
		out.Assignments = append(out.Assignments, model.AssignmentEntry{
			SubjectID: id, SubjectName: constants.SubjectLabel(id), Marks: w.Assignments[id],
		})
	}
	for _, id := range orderedIDs(keysOf(w.Practicals), constants.LabIndex) {
		out.Practicals = append(out.Practicals, model.PracticalEntry{
			LabID: id, LabName: constants.LabLabel(id), Grades: w.Practicals[id],
		})
	}
	return out
}

// FromWireList untuk hasil GET /students/.
func FromWireList(ws []model.StudentRecordWire) []model.DisplayRecord {
	out := make([]model.DisplayRecord, 0, len(ws))
	for _, w := range ws {
		out = append(out, FromWire(w))
	}
	return out
}

/* ==========================
   lookup per id (form bisa datang dari JSON dengan bentuk tidak lengkap)
========================== */

func theoryAttendance(f *model.FormState, id int) string {
	for _, e := range f.TheoryAttendance {
		if e.SubjectID == id {
			return e.Attendance
		}
	}
	return ""
}

func labAttendance(f *model.FormState, id int) string {
	for _, e := range f.LabAttendance {
		if e.LabID == id {
			return e.Attendance
		}
	}
	return ""
}

func assignmentMarks(f *model.FormState, id int) [constants.AssignmentsPerSubject]string {
	for _, e := range f.Assignments {
		if e.SubjectID == id {
			return e.Marks
		}
	}
	return [constants.AssignmentsPerSubject]string{}
}

func practicalGrades(f *model.FormState, id int) [constants.PracticalsPerLab]string {
	for _, e := range f.Practicals {
		if e.LabID == id {
			return e.Grades
		}
	}
	return [constants.PracticalsPerLab]string{}
}

func keysOf[V any](m map[int]V) []int {
	ids := make([]int, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	return ids
}

// orderedIDs: id catalog sesuai posisinya, id asing di belakang urut naik.
func orderedIDs(ids []int, catalogIndex func(int) int) []int {
	sort.Slice(ids, func(i, j int) bool {
		pi, pj := catalogIndex(ids[i]), catalogIndex(ids[j])
		switch {
		case pi >= 0 && pj >= 0:
			return pi < pj
		case pi >= 0:
			return true
		case pj >= 0:
			return false
		default:
			return ids[i] < ids[j]
		}
	})
	return ids
}

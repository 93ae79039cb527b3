package constants

import "fmt"

// Subject adalah mata pelajaran teori.
type Subject struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Lab adalah mata pelajaran praktikum.
type Lab struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ==========================
// ✅ Catalog (fixed, urutan = urutan tampil)
// ==========================
var (
	theorySubjects = []Subject{
		{ID: 1, Name: "Mathematics"},
		{ID: 2, Name: "Physics"},
		{ID: 3, Name: "Chemistry"},
		{ID: 4, Name: "Computer Science"},
		{ID: 5, Name: "English"},
	}

	labSubjects = []Lab{
		{ID: 101, Name: "Physics Lab"},
		{ID: 102, Name: "Chemistry Lab"},
		{ID: 103, Name: "Computer Lab"},
		{ID: 104, Name: "Electronics Lab"},
	}
)

// Jumlah slot assignment / practical per subject
const (
	AssignmentsPerSubject = 3
	PracticalsPerLab      = 3
)

// TheorySubjects returns a copy so callers cannot mutate the catalog.
func TheorySubjects() []Subject {
	return append([]Subject(nil), theorySubjects...)
}

func LabSubjects() []Lab {
	return append([]Lab(nil), labSubjects...)
}

func SubjectName(id int) (string, bool) {
	for _, s := range theorySubjects {
		if s.ID == id {
			return s.Name, true
		}
	}
	return "", false
}

func LabName(id int) (string, bool) {
	for _, l := range labSubjects {
		if l.ID == id {
			return l.Name, true
		}
	}
	return "", false
}

// SubjectIndex: posisi di catalog, -1 kalau id asing.
func SubjectIndex(id int) int {
	for i, s := range theorySubjects {
		if s.ID == id {
			return i
		}
	}
	return -1
}

func LabIndex(id int) int {
	for i, l := range labSubjects {
		if l.ID == id {
			return i
		}
	}
	return -1
}

// SubjectLabel resolves a display name, falling back to "Subject {id}".
func SubjectLabel(id int) string {
	if name, ok := SubjectName(id); ok {
		return name
	}
	return fmt.Sprintf("Subject %d", id)
}

func LabLabel(id int) string {
	if name, ok := LabName(id); ok {
		return name
	}
	return fmt.Sprintf("Lab %d", id)
}

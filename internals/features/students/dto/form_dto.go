package dto

import "student_result_system/internals/features/students/model"

// PATCH /api/form/fields
type SetFieldRequest struct {
	Field string `json:"field" validate:"required,oneof=rollNo name ia1 ia2 ese"`
	Value string `json:"value"`
}

// PATCH /api/form/theory-attendance
type SetTheoryAttendanceRequest struct {
	SubjectID int    `json:"subject_id" validate:"required"`
	Value     string `json:"value"`
}

// PATCH /api/form/lab-attendance
type SetLabAttendanceRequest struct {
	LabID int    `json:"lab_id" validate:"required"`
	Value string `json:"value"`
}

// PATCH /api/form/assignments
type SetAssignmentRequest struct {
	SubjectID int    `json:"subject_id" validate:"required"`
	Index     *int   `json:"index" validate:"required,min=0,max=2"`
	Value     string `json:"value"`
}

// PATCH /api/form/practicals
type SetPracticalRequest struct {
	LabID int    `json:"lab_id" validate:"required"`
	Index *int   `json:"index" validate:"required,min=0,max=2"`
	Value string `json:"value"`
}

// PUT /api/students/:id
// Bentuknya sama dengan form; email opsional karena form tidak mengumpulkannya.
type UpdateStudentRequest struct {
	model.FormState
	Email string `json:"email" validate:"omitempty,email"`
}

// ToFormState menyusun FormState lengkap: entry yang tidak dikirim tetap blank.
func (r UpdateStudentRequest) ToFormState() (*model.FormState, error) {
	f := model.NewFormState()
	f.RollNo = r.RollNo
	f.Name = r.Name
	f.IA1 = r.IA1
	f.IA2 = r.IA2
	f.ESE = r.ESE

	for _, t := range r.TheoryAttendance {
		if err := f.SetTheoryAttendance(t.SubjectID, t.Attendance); err != nil {
			return nil, err
		}
	}
	for _, l := range r.LabAttendance {
		if err := f.SetLabAttendance(l.LabID, l.Attendance); err != nil {
			return nil, err
		}
	}
	for _, a := range r.Assignments {
		for i, m := range a.Marks {
			if err := f.SetAssignmentMark(a.SubjectID, i, m); err != nil {
				return nil, err
			}
		}
	}
	for _, p := range r.Practicals {
		for i, g := range p.Grades {
			if err := f.SetPractical(p.LabID, i, g); err != nil {
				return nil, err
			}
		}
	}
	return f, nil
}

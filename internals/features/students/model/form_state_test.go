package model

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"student_result_system/internals/constants"
)

func TestNewFormStateMirrorsCatalog(t *testing.T) {
	f := NewFormState()

	subjects := constants.TheorySubjects()
	labs := constants.LabSubjects()
	require.Len(t, f.TheoryAttendance, len(subjects))
	require.Len(t, f.Assignments, len(subjects))
	require.Len(t, f.LabAttendance, len(labs))
	require.Len(t, f.Practicals, len(labs))

	for i, s := range subjects {
		assert.Equal(t, s.ID, f.TheoryAttendance[i].SubjectID)
		assert.Equal(t, s.Name, f.Assignments[i].SubjectName)
		assert.Empty(t, f.TheoryAttendance[i].Attendance)
	}
	for i, l := range labs {
		assert.Equal(t, l.ID, f.Practicals[i].LabID)
		assert.Equal(t, [3]string{}, f.Practicals[i].Grades)
	}
}

func TestFormStateMutationsKeepShape(t *testing.T) {
	f := NewFormState()
	require.NoError(t, f.SetTheoryAttendance(4, "77"))
	require.NoError(t, f.SetLabAttendance(103, "66"))
	require.NoError(t, f.SetAssignmentMark(5, 2, "19"))
	require.NoError(t, f.SetPractical(102, 0, "A"))

	assert.Equal(t, "77", f.TheoryAttendance[3].Attendance)
	assert.Equal(t, "66", f.LabAttendance[2].Attendance)
	assert.Equal(t, "19", f.Assignments[4].Marks[2])
	assert.Equal(t, "A", f.Practicals[1].Grades[0])
	assert.Len(t, f.TheoryAttendance, 5)
	assert.Len(t, f.LabAttendance, 4)
}

func TestFormStateRejectsUnknownTargets(t *testing.T) {
	f := NewFormState()
	before := *f.Clone()

	errs := []error{
		f.SetField("email", "x"),
		f.SetTheoryAttendance(101, "1"),
		f.SetLabAttendance(1, "1"),
		f.SetAssignmentMark(1, 3, "1"),
		f.SetAssignmentMark(1, -1, "1"),
		f.SetAssignmentMark(77, 0, "1"),
		f.SetPractical(101, 5, "A"),
		f.SetPractical(9, 0, "A"),
	}
	for _, err := range errs {
		var fe *fiber.Error
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, fiber.StatusBadRequest, fe.Code)
	}
	assert.Equal(t, before, *f)
}

func TestResetAndClone(t *testing.T) {
	f := NewFormState()
	_ = f.SetField(FieldName, "Sari")
	_ = f.SetAssignmentMark(1, 0, "10")

	snap := f.Clone()
	_ = f.SetAssignmentMark(1, 0, "11")
	assert.Equal(t, "10", snap.Assignments[0].Marks[0], "clone is independent")

	f.Reset()
	assert.Equal(t, *NewFormState(), *f)
	assert.Equal(t, "Sari", snap.Name)
}

package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"student_result_system/internals/features/students/model"
	"student_result_system/internals/features/students/service"
)

type fakeAPI struct {
	mu        sync.Mutex
	nextID    int
	rows      map[int]model.StudentRecordWire
	createErr error
	listCalls int
	created   []model.StudentRecordWire
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{nextID: 1, rows: map[int]model.StudentRecordWire{}}
}

func (f *fakeAPI) Create(_ context.Context, rec model.StudentRecordWire) (model.StudentRecordWire, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, rec)
	if f.createErr != nil {
		return model.StudentRecordWire{}, f.createErr
	}
	rec.ID = f.nextID
	f.nextID++
	f.rows[rec.ID] = rec
	return rec, nil
}

func (f *fakeAPI) List(_ context.Context) ([]model.StudentRecordWire, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	out := make([]model.StudentRecordWire, 0, len(f.rows))
	for id := 1; id < f.nextID; id++ {
		if r, ok := f.rows[id]; ok {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeAPI) Get(_ context.Context, id int) (model.StudentRecordWire, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.rows[id]
	if !ok {
		return model.StudentRecordWire{}, fiber.NewError(fiber.StatusNotFound, "Not found.")
	}
	return r, nil
}

func (f *fakeAPI) Update(_ context.Context, id int, rec model.StudentRecordWire) (model.StudentRecordWire, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[id]; !ok {
		return model.StudentRecordWire{}, fiber.NewError(fiber.StatusNotFound, "Not found.")
	}
	rec.ID = id
	f.rows[id] = rec
	return rec, nil
}

func (f *fakeAPI) Delete(_ context.Context, id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[id]; !ok {
		return fiber.NewError(fiber.StatusNotFound, "Not found.")
	}
	delete(f.rows, id)
	return nil
}

func fillForm(t *testing.T, svc *service.StudentService) {
	t.Helper()
	_, err := svc.Form().Mutate(func(f *model.FormState) error {
		require.NoError(t, f.SetField(model.FieldRollNo, "R-01"))
		require.NoError(t, f.SetField(model.FieldName, "Asha"))
		require.NoError(t, f.SetField(model.FieldIA1, "15"))
		require.NoError(t, f.SetTheoryAttendance(1, "92"))
		require.NoError(t, f.SetPractical(101, 0, "A"))
		return nil
	})
	require.NoError(t, err)
}

func TestSubmit_SuccessResetsFormAndCaches(t *testing.T) {
	api := newFakeAPI()
	svc := service.NewStudentService(api, nil)
	fillForm(t, svc)

	rec, err := svc.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, rec.ID)
	assert.Equal(t, "Asha", rec.Name)
	assert.Equal(t, 92, rec.TheoryAttendance[0].Attendance)
	assert.Equal(t, "A", rec.Practicals[0].Grades[0])
	assert.Equal(t, "N/A", rec.Practicals[0].Grades[1])

	require.Len(t, api.created, 1)
	assert.Equal(t, 15, api.created[0].IA1)
	assert.Len(t, api.created[0].TheoryAttendance, 5)

	form := svc.Form().Snapshot()
	assert.Empty(t, form.Name)
	assert.Empty(t, form.TheoryAttendance[0].Attendance)

	cached, ok := svc.Cache().Get(1)
	require.True(t, ok)
	assert.Equal(t, "R-01", cached.RollNo)
}

func TestSubmit_FailureKeepsForm(t *testing.T) {
	api := newFakeAPI()
	api.createErr = fiber.NewError(fiber.StatusBadRequest, "roll_no already exists")
	svc := service.NewStudentService(api, nil)
	fillForm(t, svc)

	_, err := svc.Submit(context.Background())
	require.Error(t, err)
	assert.Equal(t, "roll_no already exists", err.Error())

	form := svc.Form().Snapshot()
	assert.Equal(t, "Asha", form.Name)
	assert.Equal(t, "92", form.TheoryAttendance[0].Attendance)

	_, loaded := svc.Cached()
	assert.False(t, loaded)
}

func TestList_UsesCacheUntilForced(t *testing.T) {
	api := newFakeAPI()
	svc := service.NewStudentService(api, nil)
	fillForm(t, svc)
	_, err := svc.Submit(context.Background())
	require.NoError(t, err)

	recs, err := svc.List(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, recs, 1)
	assert.Equal(t, 1, api.listCalls)

	_, err = svc.List(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, 1, api.listCalls)

	_, err = svc.List(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, 2, api.listCalls)
}

func TestUpdateAndDelete(t *testing.T) {
	api := newFakeAPI()
	svc := service.NewStudentService(api, nil)
	fillForm(t, svc)
	_, err := svc.Submit(context.Background())
	require.NoError(t, err)

	input := model.NewFormState()
	require.NoError(t, input.SetField(model.FieldName, "Asha K"))
	require.NoError(t, input.SetField(model.FieldESE, "95"))

	rec, err := svc.Update(context.Background(), 1, input, "asha@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Asha K", rec.Name)
	assert.Equal(t, 80, rec.ESE)
	assert.Equal(t, "asha@example.com", rec.Email)

	require.NoError(t, svc.Delete(context.Background(), 1))
	_, ok := svc.Cache().Get(1)
	assert.False(t, ok)

	err = svc.Delete(context.Background(), 1)
	var fe *fiber.Error
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, fiber.StatusNotFound, fe.Code)
}

func TestUpdate_RejectsInvalidID(t *testing.T) {
	svc := service.NewStudentService(newFakeAPI(), nil)
	_, err := svc.Update(context.Background(), 0, model.NewFormState(), "")
	var fe *fiber.Error
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
}

func TestFind_FallsBackToAPI(t *testing.T) {
	api := newFakeAPI()
	api.rows[7] = model.StudentRecordWire{ID: 7, Name: "Ravi"}
	api.nextID = 8
	svc := service.NewStudentService(api, nil)

	rec, err := svc.Find(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Ravi", rec.Name)

	_, ok := svc.Cache().Get(7)
	assert.True(t, ok)
}

func TestClearCache(t *testing.T) {
	api := newFakeAPI()
	svc := service.NewStudentService(api, nil)
	svc.WarmCache(context.Background())
	_, loaded := svc.Cached()
	require.True(t, loaded)

	svc.ClearCache(context.Background())
	_, loaded = svc.Cached()
	assert.False(t, loaded)
}

func TestFormHolder_MutateErrorLeavesState(t *testing.T) {
	h := service.NewFormHolder()
	_, err := h.Mutate(func(f *model.FormState) error {
		return f.SetTheoryAttendance(99, "10")
	})
	require.Error(t, err)

	snap := h.Snapshot()
	for _, a := range snap.TheoryAttendance {
		assert.Empty(t, a.Attendance)
	}
}

package repository

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"student_result_system/internals/features/students/model"
	"student_result_system/internals/gateway"
)

type recordingCaller struct {
	reqs  []gateway.Request
	reply any
	err   error
}

func (r *recordingCaller) Call(ctx context.Context, req gateway.Request, out any) error {
	r.reqs = append(r.reqs, req)
	if r.err != nil {
		return r.err
	}
	if out != nil && r.reply != nil {
		b, _ := json.Marshal(r.reply)
		return json.Unmarshal(b, out)
	}
	return nil
}

func TestStudentClientRoutes(t *testing.T) {
	ctx := context.Background()
	rc := &recordingCaller{reply: map[string]any{"id": 4, "name": "Rina"}}
	c := NewStudentClient(rc)

	created, err := c.Create(ctx, model.StudentRecordWire{ID: 99, Name: "Rina"})
	require.NoError(t, err)
	assert.Equal(t, 4, created.ID)

	_, _ = c.Get(ctx, 4)
	_, _ = c.Update(ctx, 4, model.StudentRecordWire{Name: "Rina S"})
	_ = c.Delete(ctx, 4)
	_, _ = c.SendReport(ctx, "rina@example.com", "data:application/pdf;base64,AA==")

	rc.reply = []map[string]any{{"id": 1}, {"id": 2}}
	list, err := c.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	want := []struct{ method, path string }{
		{http.MethodPost, "/students/"},
		{http.MethodGet, "/students/4/"},
		{http.MethodPut, "/students/4/"},
		{http.MethodDelete, "/students/4/"},
		{http.MethodPost, "/students/send_pdf/"},
		{http.MethodGet, "/students/"},
	}
	require.Len(t, rc.reqs, len(want))
	for i, w := range want {
		assert.Equal(t, w.method, rc.reqs[i].Method, "call %d", i)
		assert.Equal(t, w.path, rc.reqs[i].Path, "call %d", i)
	}

	createBody := rc.reqs[0].Body.(model.StudentRecordWire)
	assert.Zero(t, createBody.ID, "create never sends an id")
	updateBody := rc.reqs[2].Body.(model.StudentRecordWire)
	assert.Equal(t, 4, updateBody.ID)
	sendBody := rc.reqs[4].Body.(sendReportPayload)
	assert.Equal(t, "rina@example.com", sendBody.Email)
	assert.Nil(t, rc.reqs[3].Body)
}

func TestStudentClientPropagatesErrors(t *testing.T) {
	boom := fiber.NewError(fiber.StatusBadRequest, "roll_no already exists")
	c := NewStudentClient(&recordingCaller{err: boom})

	_, err := c.Create(context.Background(), model.StudentRecordWire{})
	assert.True(t, errors.Is(err, boom))

	err = c.Delete(context.Background(), 1)
	assert.Same(t, boom, err)

	_, err = c.List(context.Background())
	assert.Same(t, boom, err)
}

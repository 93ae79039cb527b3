// internals/features/students/repository/student_client.go
package repository

import (
	"context"
	"fmt"
	"net/http"

	"student_result_system/internals/features/students/model"
	"student_result_system/internals/gateway"
)

const (
	PathStudents   = "/students/"
	PathSendReport = "/students/send_pdf/"
)

// Caller adalah gateway terautentikasi.
type Caller interface {
	Call(ctx context.Context, req gateway.Request, out any) error
}

// StudentClient hanya memilih method/path/body; error dari gateway diteruskan apa adanya.
type StudentClient struct {
	api Caller
}

func NewStudentClient(api Caller) *StudentClient {
	return &StudentClient{api: api}
}

func studentPath(id int) string {
	return fmt.Sprintf("%s%d/", PathStudents, id)
}

func (c *StudentClient) Create(ctx context.Context, rec model.StudentRecordWire) (model.StudentRecordWire, error) {
	rec.ID = 0 // id dari server
	var out model.StudentRecordWire
	err := c.api.Call(ctx, gateway.Request{Method: http.MethodPost, Path: PathStudents, Body: rec}, &out)
	return out, err
}

func (c *StudentClient) List(ctx context.Context) ([]model.StudentRecordWire, error) {
	var out []model.StudentRecordWire
	err := c.api.Call(ctx, gateway.Request{Method: http.MethodGet, Path: PathStudents}, &out)
	return out, err
}

func (c *StudentClient) Get(ctx context.Context, id int) (model.StudentRecordWire, error) {
	var out model.StudentRecordWire
	err := c.api.Call(ctx, gateway.Request{Method: http.MethodGet, Path: studentPath(id)}, &out)
	return out, err
}

func (c *StudentClient) Update(ctx context.Context, id int, rec model.StudentRecordWire) (model.StudentRecordWire, error) {
	rec.ID = id
	var out model.StudentRecordWire
	err := c.api.Call(ctx, gateway.Request{Method: http.MethodPut, Path: studentPath(id), Body: rec}, &out)
	return out, err
}

func (c *StudentClient) Delete(ctx context.Context, id int) error {
	return c.api.Call(ctx, gateway.Request{Method: http.MethodDelete, Path: studentPath(id)}, nil)
}

type sendReportPayload struct {
	Email string `json:"email"`
	PDF   string `json:"pdf"`
}

// SendReport mengirim PDF (data URI) ke email siswa lewat API.
func (c *StudentClient) SendReport(ctx context.Context, email, pdfDataURI string) (map[string]any, error) {
	var ack map[string]any
	err := c.api.Call(ctx, gateway.Request{
		Method: http.MethodPost,
		Path:   PathSendReport,
		Body:   sendReportPayload{Email: email, PDF: pdfDataURI},
	}, &ack)
	return ack, err
}

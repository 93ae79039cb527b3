package service

import (
	"sync"

	"student_result_system/internals/features/students/model"
)

// FormHolder menjaga satu FormState yang sedang diisi. Handler fiber jalan
// paralel, jadi semua akses lewat mutex.
type FormHolder struct {
	mu   sync.Mutex
	form *model.FormState
}

func NewFormHolder() *FormHolder {
	return &FormHolder{form: model.NewFormState()}
}

func (h *FormHolder) Snapshot() *model.FormState {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.form.Clone()
}

// Mutate menjalankan fn di bawah lock dan mengembalikan snapshot sesudahnya.
func (h *FormHolder) Mutate(fn func(f *model.FormState) error) (*model.FormState, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := fn(h.form); err != nil {
		return h.form.Clone(), err
	}
	return h.form.Clone(), nil
}

func (h *FormHolder) Reset() *model.FormState {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.form.Reset()
	return h.form.Clone()
}

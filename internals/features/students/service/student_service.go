package service

import (
	"context"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/gofiber/fiber/v2"

	"student_result_system/internals/features/students/model"
	"student_result_system/internals/features/students/transform"
)

// StudentAPI adalah operasi repository client yang dipakai service.
type StudentAPI interface {
	Create(ctx context.Context, rec model.StudentRecordWire) (model.StudentRecordWire, error)
	List(ctx context.Context) ([]model.StudentRecordWire, error)
	Get(ctx context.Context, id int) (model.StudentRecordWire, error)
	Update(ctx context.Context, id int, rec model.StudentRecordWire) (model.StudentRecordWire, error)
	Delete(ctx context.Context, id int) error
}

// StudentService memegang form yang sedang diisi dan cache baca daftar siswa.
type StudentService struct {
	api    StudentAPI
	form   *FormHolder
	cache  *StudentCache
	logger kitlog.Logger
}

func NewStudentService(api StudentAPI, logger kitlog.Logger) *StudentService {
	if logger == nil {
		logger = kitlog.NewNopLogger()
	}
	return &StudentService{
		api:    api,
		form:   NewFormHolder(),
		cache:  NewStudentCache(),
		logger: kitlog.With(logger, "component", "students"),
	}
}

func (s *StudentService) Form() *FormHolder    { return s.form }
func (s *StudentService) Cache() *StudentCache { return s.cache }

/* ==========================
   SUBMIT
========================== */

// Submit: snapshot form → ToWire (selesai sebelum request) → Create → FromWire.
// Form hanya di-reset kalau server sukses; kalau gagal input tetap utuh.
// Double submit tidak di-dedup.
func (s *StudentService) Submit(ctx context.Context) (model.DisplayRecord, error) {
	wire := transform.ToWire(s.form.Snapshot())

	saved, err := s.api.Create(ctx, wire)
	if err != nil {
		level.Warn(s.logger).Log("msg", "create student failed", "roll_no", wire.RollNo, "err", err)
		return model.DisplayRecord{}, err
	}

	rec := transform.FromWire(saved)
	s.cache.Upsert(rec)
	s.form.Reset()
	level.Info(s.logger).Log("msg", "student created", "id", rec.ID, "roll_no", rec.RollNo)
	return rec, nil
}

/* ==========================
   LIST / GET
========================== */

// Refresh mengganti isi cache dengan GET /students/.
func (s *StudentService) Refresh(ctx context.Context) ([]model.DisplayRecord, error) {
	wires, err := s.api.List(ctx)
	if err != nil {
		return nil, err
	}
	recs := transform.FromWireList(wires)
	s.cache.ReplaceAll(recs)
	level.Debug(s.logger).Log("msg", "student cache refreshed", "count", len(recs))
	return recs, nil
}

// List memakai cache kalau sudah pernah dimuat, kecuali force.
func (s *StudentService) List(ctx context.Context, force bool) ([]model.DisplayRecord, error) {
	if !force {
		if recs, ok := s.cache.All(); ok {
			return recs, nil
		}
	}
	return s.Refresh(ctx)
}

func (s *StudentService) Get(ctx context.Context, id int) (model.DisplayRecord, error) {
	wire, err := s.api.Get(ctx, id)
	if err != nil {
		return model.DisplayRecord{}, err
	}
	rec := transform.FromWire(wire)
	s.cache.Upsert(rec)
	return rec, nil
}

// Cached: isi cache tanpa request; ok=false kalau belum pernah dimuat.
func (s *StudentService) Cached() ([]model.DisplayRecord, bool) {
	return s.cache.All()
}

// Find: cache dulu, kalau tidak ada baru ke API.
func (s *StudentService) Find(ctx context.Context, id int) (model.DisplayRecord, error) {
	if rec, ok := s.cache.Get(id); ok {
		return rec, nil
	}
	return s.Get(ctx, id)
}

/* ==========================
   UPDATE / DELETE
========================== */

// Update memakai input berbentuk FormState; email tidak dikumpulkan form,
// jadi email lama dari server dipertahankan lewat parameter.
func (s *StudentService) Update(ctx context.Context, id int, input *model.FormState, email string) (model.DisplayRecord, error) {
	if id <= 0 {
		return model.DisplayRecord{}, fiber.NewError(fiber.StatusBadRequest, "invalid student id")
	}
	wire := transform.ToWire(input)
	wire.Email = email

	saved, err := s.api.Update(ctx, id, wire)
	if err != nil {
		return model.DisplayRecord{}, err
	}
	rec := transform.FromWire(saved)
	s.cache.Upsert(rec)
	return rec, nil
}

func (s *StudentService) Delete(ctx context.Context, id int) error {
	if err := s.api.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Remove(id)
	level.Info(s.logger).Log("msg", "student deleted", "id", id)
	return nil
}

// ClearCache dipanggil saat logout.
func (s *StudentService) ClearCache(ctx context.Context) {
	s.cache.Clear()
}

// WarmCache dipanggil setelah login; gagal hanya dicatat.
func (s *StudentService) WarmCache(ctx context.Context) {
	if _, err := s.Refresh(ctx); err != nil {
		level.Warn(s.logger).Log("msg", "warm student cache failed", "err", err)
	}
}

package service

import (
	"context"
	"time"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"student_result_system/internals/features/reports/model"
	studentModel "student_result_system/internals/features/students/model"
)

// StudentFinder mengambil record siswa (cache dulu, lalu API).
type StudentFinder interface {
	Find(ctx context.Context, id int) (studentModel.DisplayRecord, error)
}

// ReportSender mengirim salinan PDF ke email siswa lewat API.
type ReportSender interface {
	SendReport(ctx context.Context, email, pdfDataURI string) (map[string]any, error)
}

type ReportService struct {
	students     StudentFinder
	sender       ReportSender
	exporter     Exporter
	academicYear string
	now          func() time.Time
	logger       kitlog.Logger
}

type ReportOption func(*ReportService)

func WithAcademicYear(year string) ReportOption {
	return func(s *ReportService) { s.academicYear = year }
}

func WithClock(now func() time.Time) ReportOption {
	return func(s *ReportService) { s.now = now }
}

func WithReportLogger(l kitlog.Logger) ReportOption {
	return func(s *ReportService) { s.logger = l }
}

func NewReportService(students StudentFinder, sender ReportSender, exporter Exporter, opts ...ReportOption) *ReportService {
	s := &ReportService{
		students:     students,
		sender:       sender,
		exporter:     exporter,
		academicYear: DefaultAcademicYear,
		now:          time.Now,
		logger:       kitlog.NewNopLogger(),
	}
	for _, o := range opts {
		o(s)
	}
	s.logger = kitlog.With(s.logger, "component", "reports")
	return s
}

// Preview merender layout tanpa ekspor.
func (s *ReportService) Preview(ctx context.Context, id int) (model.Report, error) {
	rec, err := s.students.Find(ctx, id)
	if err != nil {
		return model.Report{}, err
	}
	return Render(rec, RenderOptions{AcademicYear: s.academicYear, Now: s.now()}), nil
}

// Generate: render → export → kirim ke email siswa (kalau ada) → file untuk di-download.
// Gagal kirim email membatalkan seluruh operasi.
func (s *ReportService) Generate(ctx context.Context, id int) (model.Document, error) {
	report, err := s.Preview(ctx, id)
	if err != nil {
		return model.Document{}, err
	}

	cfg := DefaultExportConfig(report.StudentName)
	pdf, err := s.exporter.Export(report, cfg)
	if err != nil {
		level.Error(s.logger).Log("msg", "export failed", "student_id", id, "err", err)
		return model.Document{}, err
	}

	doc := model.Document{Filename: cfg.Filename, Content: pdf}
	if report.StudentEmail != "" {
		if _, err := s.sender.SendReport(ctx, report.StudentEmail, DataURI(cfg.Filename, pdf)); err != nil {
			level.Warn(s.logger).Log("msg", "send report failed", "student_id", id, "err", err)
			return model.Document{}, err
		}
		doc.Emailed = true
		doc.SentTo = report.StudentEmail
	}
	level.Info(s.logger).Log("msg", "report generated", "student_id", id, "bytes", len(pdf), "emailed", doc.Emailed)
	return doc, nil
}

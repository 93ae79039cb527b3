package service

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"strings"

	"github.com/go-pdf/fpdf"

	"student_result_system/internals/features/reports/model"
	helper "student_result_system/internals/helpers"
)

// Exporter mengubah Report menjadi file.
type Exporter interface {
	Export(r model.Report, cfg model.ExportConfig) ([]byte, error)
}

// DefaultExportConfig: margin 10mm, "<nama>_Report.pdf", quality 0.98, A4 portrait.
func DefaultExportConfig(studentName string) model.ExportConfig {
	return model.ExportConfig{
		MarginMM:     10,
		Filename:     helper.ReportFilename(studentName),
		ImageQuality: 0.98,
		PageSize:     model.PageSizeA4,
		Orientation:  model.OrientationPortrait,
	}
}

// DataURI membungkus PDF sebagai string yang bisa dikirim ke /students/send_pdf/.
func DataURI(filename string, pdf []byte) string {
	return "data:application/pdf;filename=" + filename + ";base64," +
		base64.StdEncoding.EncodeToString(pdf)
}

type PDFExporter struct {
	logo image.Image
}

// NewPDFExporter: logo boleh nil.
func NewPDFExporter(logo image.Image) *PDFExporter {
	return &PDFExporter{logo: logo}
}

const (
	lineH      = 7.0
	gridCols   = 2
	logoSizeMM = 22.0
	logoName   = "school-logo"
)

func (e *PDFExporter) Export(r model.Report, cfg model.ExportConfig) ([]byte, error) {
	cfg = normalizeConfig(cfg)

	orientation := "P"
	if cfg.Orientation == model.OrientationLandscape {
		orientation = "L"
	}
	pdf := fpdf.New(orientation, "mm", cfg.PageSize, "")
	pdf.SetMargins(cfg.MarginMM, cfg.MarginMM, cfg.MarginMM)
	pdf.SetAutoPageBreak(true, cfg.MarginMM)
	pdf.SetTitle(r.Title, true)
	pdf.SetCreationDate(r.GeneratedAt)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 2*cfg.MarginMM

	// header
	if e.logo != nil {
		jpg, err := encodeLogoJPEG(e.logo, cfg.ImageQuality)
		if err != nil {
			return nil, err
		}
		opt := fpdf.ImageOptions{ImageType: "JPG"}
		pdf.RegisterImageOptionsReader(logoName, opt, bytes.NewReader(jpg))
		pdf.ImageOptions(logoName, cfg.MarginMM, cfg.MarginMM, logoSizeMM, 0, false, opt, 0, "")
	}
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, tr(r.Title), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(contentW, 6, tr(r.Subtitle), "", 1, "C", false, 0, "")
	if e.logo != nil && pdf.GetY() < cfg.MarginMM+logoSizeMM {
		pdf.SetY(cfg.MarginMM + logoSizeMM)
	}
	pdf.Ln(4)

	// info siswa
	for _, row := range r.Info {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(35, lineH, tr(row.Label), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(contentW-35, lineH, tr(row.Value), "", 1, "L", false, 0, "")
	}

	for _, sec := range r.Sections {
		pdf.Ln(3)
		pdf.SetFont("Helvetica", "B", 13)
		pdf.CellFormat(contentW, 8, tr(sec.Title), "B", 1, "L", false, 0, "")
		pdf.Ln(1)
		for _, g := range sec.Groups {
			if g.Heading != "" {
				pdf.SetFont("Helvetica", "B", 11)
				pdf.CellFormat(contentW, 6, tr(g.Heading), "", 1, "L", false, 0, "")
			}
			drawGrid(pdf, tr, g.Rows, contentW)
		}
	}

	// tanda tangan
	pdf.Ln(14)
	sigW := 60.0
	x := pdf.GetX()
	y := pdf.GetY()
	pdf.Line(x, y, x+sigW, y)
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(sigW, 6, tr(r.SignatureLabel), "", 0, "C", false, 0, "")
	pdf.CellFormat(contentW-sigW, 6, tr(r.GeneratedOn), "", 1, "R", false, 0, "")

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func drawGrid(pdf *fpdf.Fpdf, tr func(string) string, rows []model.Row, contentW float64) {
	cellW := contentW / gridCols
	labelW := cellW * 0.6
	for i, row := range rows {
		fill := row.Highlight
		if fill {
			pdf.SetFillColor(232, 240, 254)
		}
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(labelW, lineH, tr(row.Label), "LTB", 0, "L", fill, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		ln := 0
		if i%gridCols == gridCols-1 || i == len(rows)-1 {
			ln = 1
		}
		pdf.CellFormat(cellW-labelW, lineH, tr(row.Value), "RTB", ln, "R", fill, 0, "")
	}
}

func normalizeConfig(cfg model.ExportConfig) model.ExportConfig {
	if cfg.MarginMM <= 0 {
		cfg.MarginMM = 10
	}
	if cfg.ImageQuality <= 0 || cfg.ImageQuality > 1 {
		cfg.ImageQuality = 0.98
	}
	switch strings.ToLower(cfg.PageSize) {
	case "letter":
		cfg.PageSize = model.PageSizeLetter
	default:
		cfg.PageSize = model.PageSizeA4
	}
	if cfg.Orientation != model.OrientationLandscape {
		cfg.Orientation = model.OrientationPortrait
	}
	if cfg.Filename == "" {
		cfg.Filename = helper.ReportFilename("")
	}
	return cfg
}

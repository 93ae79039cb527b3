package model

import "time"

// Row adalah satu pasangan label/nilai di grid report.
type Row struct {
	Label     string `json:"label"`
	Value     string `json:"value"`
	Highlight bool   `json:"highlight,omitempty"`
}

// Group: sub-judul (nama subject/lab) + baris-barisnya.
type Group struct {
	Heading string `json:"heading,omitempty"`
	Rows    []Row  `json:"rows"`
}

type Section struct {
	Title  string  `json:"title"`
	Groups []Group `json:"groups"`
}

// Report adalah hasil render yang siap diekspor. Layout-nya tetap;
// exporter hanya menggambar urutan section apa adanya.
type Report struct {
	Title          string    `json:"title"`
	Subtitle       string    `json:"subtitle"`
	StudentID      int       `json:"student_id"`
	StudentName    string    `json:"student_name"`
	StudentEmail   string    `json:"student_email,omitempty"`
	Info           []Row     `json:"info"`
	Sections       []Section `json:"sections"`
	SignatureLabel string    `json:"signature_label"`
	GeneratedAt    time.Time `json:"generated_at"`
	GeneratedOn    string    `json:"generated_on"`
}

// Section mencari section berdasarkan judul.
func (r Report) Section(title string) (Section, bool) {
	for _, s := range r.Sections {
		if s.Title == title {
			return s, true
		}
	}
	return Section{}, false
}

/* =========================================================
   EXPORT
   ========================================================= */

const (
	PageSizeA4     = "A4"
	PageSizeLetter = "Letter"

	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
)

// ExportConfig: margin (mm), nama file, kualitas gambar (0..1), ukuran & orientasi halaman.
type ExportConfig struct {
	MarginMM     float64
	Filename     string
	ImageQuality float64
	PageSize     string
	Orientation  string
}

// Document adalah file yang siap di-download.
type Document struct {
	Filename string
	Content  []byte
	Emailed  bool
	SentTo   string
}

package service

import (
	"bytes"
	"fmt"
	"image"
	"os"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"

	"student_result_system/internals/constants"
)

// Batas ukuran logo header (px) sebelum di-embed ke PDF.
const (
	logoMaxWidth  = 480
	logoMaxHeight = 480
)

// LoadLogo membaca logo sekolah (png/jpeg/webp) dan mengecilkannya kalau perlu.
func LoadLogo(path string) (image.Image, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read logo: %w", err)
	}
	return DecodeLogo(raw, path)
}

// DecodeLogo: format dari ekstensi; webp pakai chai2010, sisanya imaging.
func DecodeLogo(raw []byte, filename string) (image.Image, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("empty logo file")
	}

	var (
		img image.Image
		err error
	)
	switch constants.DetectImageFormatFromExt(filename) {
	case constants.ImageFormatWebP:
		img, err = webp.Decode(bytes.NewReader(raw))
	case constants.ImageFormatPNG, constants.ImageFormatJPEG:
		img, err = imaging.Decode(bytes.NewReader(raw), imaging.AutoOrientation(true))
	default:
		return nil, fmt.Errorf("format logo tidak didukung: %s", filename)
	}
	if err != nil {
		return nil, fmt.Errorf("decode logo: %w", err)
	}

	b := img.Bounds()
	if b.Dx() > logoMaxWidth || b.Dy() > logoMaxHeight {
		img = imaging.Fit(img, logoMaxWidth, logoMaxHeight, imaging.Lanczos)
	}
	return img, nil
}

// encodeLogoJPEG: quality 0..1 (mis. 0.98) → JPEG quality 1..100.
func encodeLogoJPEG(img image.Image, quality float64) ([]byte, error) {
	q := int(quality*100 + 0.5)
	if q < 1 || q > 100 {
		q = 98
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(q)); err != nil {
		return nil, fmt.Errorf("encode logo: %w", err)
	}
	return buf.Bytes(), nil
}

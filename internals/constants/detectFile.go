package constants

import (
	"path/filepath"
	"strings"
)

const (
	ImageFormatUnknown = iota
	ImageFormatPNG
	ImageFormatJPEG
	ImageFormatWebP
)

// DetectImageFormatFromExt dipakai untuk logo header report.
func DetectImageFormatFromExt(filename string) int {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".png":
		return ImageFormatPNG
	case ".jpg", ".jpeg":
		return ImageFormatJPEG
	case ".webp":
		return ImageFormatWebP
	default:
		return ImageFormatUnknown // Tidak diketahui
	}
}

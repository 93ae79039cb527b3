package helper

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	reUnsafeFilename = regexp.MustCompile(`[^A-Za-z0-9._-]+`)
	reUnderscores    = regexp.MustCompile(`_+`)
)

const reportFilenameSuffix = "_Report.pdf"

// SanitizeFilename membuang diakritik & karakter yang tidak aman untuk nama file
// (spasi jadi "_"). Kosong → "student".
func SanitizeFilename(s string) string {
	s = strings.TrimSpace(s)

	var buf []rune
	for _, r := range norm.NFD.String(s) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		buf = append(buf, r)
	}
	s = reUnsafeFilename.ReplaceAllString(string(buf), "_")
	s = reUnderscores.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_.")

	if s == "" {
		return "student"
	}
	return s
}

// ReportFilename: "<nama>_Report.pdf".
func ReportFilename(studentName string) string {
	return SanitizeFilename(studentName) + reportFilenameSuffix
}

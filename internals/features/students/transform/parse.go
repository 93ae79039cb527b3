package transform

import (
	"strconv"
	"strings"
)

// Default per jenis field: skor → 0, grade → "N/A".
const (
	DefaultScore = 0
	DefaultGrade = "N/A"
)

// Batas atas per jenis skor.
const (
	MaxAttendance     = 100
	MaxInternalAssess = 20
	MaxESE            = 80
	MaxAssignmentMark = 20
)

// ParseScore membaca prefix integer basis 10 (spasi di depan diabaikan, "12abc" → 12,
// "17.5" → 17). Gagal parse → DefaultScore. Hasil di-clamp ke [0, max].
func ParseScore(raw string, max int) int {
	n, ok := leadingInt(raw)
	if !ok {
		return DefaultScore
	}
	return clamp(n, 0, max)
}

// GradeOrNA: grade tidak di-parse; kosong/spasi saja → "N/A", selain itu apa adanya.
func GradeOrNA(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return DefaultGrade
	}
	return raw
}

func leadingInt(raw string) (int, bool) {
	s := strings.TrimLeft(raw, " \t\n\r")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		// overflow: ambil batas sesuai tanda
		if s[0] == '-' {
			return -1, true
		}
		return int(^uint(0) >> 1), true
	}
	return n, true
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

package configs

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadEnvDefaults(t *testing.T) {
	t.Setenv("RAILWAY_ENVIRONMENT", "test")
	t.Setenv("API_URL", "http://api.example.test/api/")
	t.Setenv("HTTP_TIMEOUT_SECONDS", "not-a-number")
	t.Setenv("CORS_ORIGINS", " http://a.test , ,http://b.test")

	LoadEnv()

	assert.Equal(t, "http://api.example.test/api", APIURL)
	assert.Equal(t, defaultHTTPTimeout*time.Second, HTTPTimeout)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, CorsOrigins)
	assert.Equal(t, defaultAcademicYear, ReportAcademicYear)
}

func TestGetEnvFallback(t *testing.T) {
	t.Setenv("SRS_PRESENT", "")
	assert.Equal(t, "", GetEnv("SRS_PRESENT", "fallback"))
	assert.Equal(t, "fallback", GetEnv("SRS_SURELY_MISSING_KEY", "fallback"))
}

func TestNewLoggerWritesLogfmt(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf)
	_ = logger.Log("msg", "hello", "component", "test")
	assert.Contains(t, buf.String(), "msg=hello")
	assert.Contains(t, buf.String(), "component=test")
}

package configs

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

const (
	defaultAPIURL       = "http://localhost:8000/api"
	defaultPort         = "3000"
	defaultSessionFile  = "storage/session.json"
	defaultAcademicYear = "2023-2024"
	defaultCacheCron    = "@every 5m"
	defaultHTTPTimeout  = 15
	defaultCorsOrigins  = "http://localhost:5173,http://127.0.0.1:5500"
)

var (
	APIURL             string
	Port               string
	SessionStore       string
	SessionFile        string
	SessionSecret      string
	ReportLogoPath     string
	ReportAcademicYear string
	CacheRefreshCron   string
	HTTPTimeout        time.Duration
	CorsOrigins        []string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("[CONFIG] .env tidak ditemukan, menggunakan ENV dari sistem")
		} else {
			log.Println("[CONFIG] .env file berhasil dimuat")
		}
	} else {
		log.Println("[CONFIG] Running in Railway, menggunakan ENV dari sistem")
	}

	APIURL = strings.TrimRight(GetEnv("API_URL", defaultAPIURL), "/")
	Port = GetEnv("PORT", defaultPort)
	SessionStore = strings.ToLower(GetEnv("SESSION_STORE", "file"))
	SessionFile = GetEnv("SESSION_FILE", defaultSessionFile)
	SessionSecret = GetEnv("SESSION_SECRET")
	ReportLogoPath = GetEnv("REPORT_LOGO_PATH")
	ReportAcademicYear = GetEnv("REPORT_ACADEMIC_YEAR", defaultAcademicYear)
	CacheRefreshCron = GetEnv("STUDENT_CACHE_REFRESH_CRON", defaultCacheCron)
	HTTPTimeout = time.Duration(GetEnvInt("HTTP_TIMEOUT_SECONDS", defaultHTTPTimeout)) * time.Second
	CorsOrigins = splitCSV(GetEnv("CORS_ORIGINS", defaultCorsOrigins))

	if SessionSecret == "" {
		log.Println("[CONFIG] SESSION_SECRET belum diset, token disimpan tanpa enkripsi")
	}
	log.Printf("[CONFIG] API_URL=%s SESSION_STORE=%s", APIURL, SessionStore)
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func GetEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// =======================
// GORM LOGGER CUSTOM
// =======================
type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormLogger.LogLevel
}

func NewGormLogger() gormLogger.Interface {
	return &GormLogger{
		SlowThreshold: 200 * time.Millisecond,
		LogLevel:      gormLogger.Warn,
	}
}

func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	l.LogLevel = level
	return l
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Info {
		log.Printf("[INFO] "+msg, data...)
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Warn {
		log.Printf("[WARN] "+msg, data...)
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Error {
		log.Printf("[ERROR] "+msg, data...)
	}
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.LogLevel <= gormLogger.Silent {
		return
	}
	elapsed := time.Since(begin)
	sql, rows := fc()
	file := utils.FileWithLineNum()

	switch {
	case err != nil && l.LogLevel >= gormLogger.Error:
		log.Printf("[ERROR] %s | %v | %s | %d rows | %s", file, err, elapsed, rows, sql)
	case elapsed > l.SlowThreshold && l.LogLevel >= gormLogger.Warn:
		log.Printf("[SLOW SQL] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	case l.LogLevel >= gormLogger.Info:
		log.Printf("[QUERY] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	}
}

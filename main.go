package main

import (
	"context"
	"image"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"student_result_system/internals/configs"
	database "student_result_system/internals/databases"
	reportService "student_result_system/internals/features/reports/service"
	studentRepo "student_result_system/internals/features/students/repository"
	"student_result_system/internals/features/students/scheduler"
	studentService "student_result_system/internals/features/students/service"
	authRepo "student_result_system/internals/features/users/auth/repository"
	authService "student_result_system/internals/features/users/auth/service"
	"student_result_system/internals/gateway"
	helper "student_result_system/internals/helpers"
	middlewares "student_result_system/internals/middlewares"
	"student_result_system/internals/middlewares/logger"
	routes "student_result_system/internals/route"
)

func main() {
	configs.LoadEnv()
	appLogger := configs.NewLogger(os.Stderr)

	// 🔌 session store (file | memory | postgres)
	store, db := openSessionStore(appLogger)
	session := authService.NewSession(store, authService.NewTokenSealer(configs.SessionSecret), appLogger)

	// 🌐 gateway ke remote API
	api := gateway.New(configs.APIURL, session,
		gateway.WithHTTPClient(&http.Client{Timeout: configs.HTTPTimeout}),
		gateway.WithLogger(appLogger),
	)

	students := studentService.NewStudentService(studentRepo.NewStudentClient(api), appLogger)
	auth := authService.NewAuthService(api, session, appLogger)
	auth.OnLogin(students.WarmCache)
	auth.OnLogout(students.ClearCache)

	reports := reportService.NewReportService(
		students,
		studentRepo.NewStudentClient(api),
		reportService.NewPDFExporter(loadLogo(appLogger)),
		reportService.WithAcademicYear(configs.ReportAcademicYear),
		reportService.WithReportLogger(appLogger),
	)

	// ⏱ refresh cache berkala selama login
	refresher, err := scheduler.NewCacheRefresher(configs.CacheRefreshCron, students, session, configs.HTTPTimeout*3, appLogger)
	if err != nil {
		log.Fatalf("scheduler error: %v", err)
	}
	refresher.Start()

	app := fiber.New(fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ErrorHandler:          helper.ErrorHandler,
	})

	// ⚙️ middleware dasar
	app.Use(middlewares.RecoveryMiddleware(appLogger))
	app.Use(middlewares.RequestID(configs.HTTPTimeout*3, appLogger))
	app.Use(logger.LoggerMiddleware(os.Stdout))
	app.Use(middlewares.CorsMiddleware(configs.CorsOrigins))
	app.Use(middlewares.GlobalRateLimiter())

	// ✅ Routes
	routes.SetupRoutes(app, routes.Deps{
		DB:       db,
		APIURL:   configs.APIURL,
		Auth:     auth,
		Students: students,
		Reports:  reports,
	})

	// 🔒 Keep-Alive & timeout koneksi server
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = configs.HTTPTimeout*3 + 5*time.Second
	app.Server().IdleTimeout = 90 * time.Second

	// Start server non-blocking
	go func() {
		level.Info(appLogger).Log("msg", "listening", "port", configs.Port, "api_url", configs.APIURL)
		if err := app.Listen("0.0.0.0:" + configs.Port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown + stop cron + tutup pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)
	refresher.Stop(ctx)

	if db != nil {
		database.Close(db)
	}
}

func openSessionStore(logger kitlog.Logger) (authRepo.Store, *gorm.DB) {
	switch configs.SessionStore {
	case "memory":
		level.Info(logger).Log("msg", "session store", "backend", "memory")
		return authRepo.NewMemoryStore(), nil
	case "postgres":
		db, err := database.ConnectDB()
		if err != nil {
			log.Fatalf("database error: %v", err)
		}
		store, err := authRepo.NewGormStore(db, authRepo.DefaultSessionProfile)
		if err != nil {
			log.Fatalf("session store error: %v", err)
		}
		level.Info(logger).Log("msg", "session store", "backend", "postgres")
		return store, db
	default:
		level.Info(logger).Log("msg", "session store", "backend", "file", "path", configs.SessionFile)
		return authRepo.NewFileStore(configs.SessionFile), nil
	}
}

// loadLogo: logo opsional; gagal baca hanya warning.
func loadLogo(logger kitlog.Logger) image.Image {
	if configs.ReportLogoPath == "" {
		return nil
	}
	img, err := reportService.LoadLogo(configs.ReportLogoPath)
	if err != nil {
		level.Warn(logger).Log("msg", "report logo skipped", "path", configs.ReportLogoPath, "err", err)
		return nil
	}
	return img
}

package scheduler

import (
	"context"
	"fmt"
	"time"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/robfig/cron/v3"

	"student_result_system/internals/features/students/model"
)

// Refresher adalah bagian StudentService yang dipanggil job.
type Refresher interface {
	Refresh(ctx context.Context) ([]model.DisplayRecord, error)
}

// AuthChecker: job hanya jalan selama ada sesi login.
type AuthChecker interface {
	IsAuthenticated(ctx context.Context) bool
}

type CacheRefresher struct {
	cron     *cron.Cron
	students Refresher
	auth     AuthChecker
	timeout  time.Duration
	logger   kitlog.Logger
}

// NewCacheRefresher mendaftarkan job ke schedule (format cron atau "@every 5m").
// Job yang masih jalan tidak ditumpuk.
func NewCacheRefresher(schedule string, students Refresher, auth AuthChecker, timeout time.Duration, logger kitlog.Logger) (*CacheRefresher, error) {
	if logger == nil {
		logger = kitlog.NewNopLogger()
	}
	if timeout <= 0 {
		timeout = time.Minute
	}
	r := &CacheRefresher{
		cron:     cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger))),
		students: students,
		auth:     auth,
		timeout:  timeout,
		logger:   kitlog.With(logger, "component", "cache-refresher"),
	}
	if _, err := r.cron.AddFunc(schedule, r.RunOnce); err != nil {
		return nil, fmt.Errorf("add cron %q: %w", schedule, err)
	}
	return r, nil
}

// RunOnce menjalankan satu kali refresh; dipakai cron dan test.
func (r *CacheRefresher) RunOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	if !r.auth.IsAuthenticated(ctx) {
		level.Debug(r.logger).Log("msg", "skip refresh, not authenticated")
		return
	}
	recs, err := r.students.Refresh(ctx)
	if err != nil {
		level.Warn(r.logger).Log("msg", "refresh failed", "err", err)
		return
	}
	level.Info(r.logger).Log("msg", "refreshed", "count", len(recs))
}

func (r *CacheRefresher) Start() {
	r.cron.Start()
	level.Info(r.logger).Log("msg", "started")
}

// Stop menunggu job yang sedang jalan selesai atau ctx habis.
func (r *CacheRefresher) Stop(ctx context.Context) {
	select {
	case <-r.cron.Stop().Done():
	case <-ctx.Done():
	}
}

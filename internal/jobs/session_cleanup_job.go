package jobs

import (
	"context"
	"log/slog"
	"time"

	"marketplace/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// SessionCleanupJob periodically purges expired sessions. Sessions expire
// lazily at authentication time; this job keeps the table from growing
// without bound.
type SessionCleanupJob struct {
	sessions ports.SessionRepository
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewSessionCleanupJob creates the cleanup job over the session repository.
func NewSessionCleanupJob(sessions ports.SessionRepository, logger *slog.Logger) *SessionCleanupJob {
	return &SessionCleanupJob{
		sessions: sessions,
		cron:     cron.New(),
		logger:   logger.With("component", "session_cleanup_job"),
	}
}

// Start schedules the cleanup to run every hour.
func (j *SessionCleanupJob) Start() error {
	_, err := j.cron.AddFunc("@hourly", func() {
		ctx := context.Background()

		removed, err := j.sessions.DeleteExpired(ctx, time.Now())
		if err != nil {
			j.logger.ErrorContext(ctx, "Session cleanup job failed", "error", err)
			return
		}

		if removed > 0 {
			j.logger.InfoContext(ctx, "Expired sessions removed", "count", removed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Session cleanup job started (running hourly)")
	return nil
}

// Stop stops the cleanup job.
func (j *SessionCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Session cleanup job stopped")
}

package jobs

import (
	"context"
	"time"

	"rentable-backend/internal/cache"
	"rentable-backend/internal/config"
	"rentable-backend/internal/logger"
	"rentable-backend/internal/repository"
)

// JobRunner coordinates the scheduled maintenance jobs.
type JobRunner struct {
	reservations repository.ReservationRepository
	aggregates   cache.RentalAggregates
	config       *config.Config
	now          func() time.Time
}

// NewJobRunner creates a job runner. A nil aggregates cache is treated as disabled.
func NewJobRunner(reservations repository.ReservationRepository, aggregates cache.RentalAggregates, cfg *config.Config) *JobRunner {
	if aggregates == nil {
		aggregates = cache.NewNoop()
	}
	return &JobRunner{
		reservations: reservations,
		aggregates:   aggregates,
		config:       cfg,
		now:          time.Now,
	}
}

// Config returns the configuration the runner was built with.
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func(ctx context.Context) error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	start := time.Now()
	if err := jobFunc(context.Background()); err != nil {
		logger.Error("Job failed", "job", jobName, "error", err, "elapsed", time.Since(start))
		return
	}
	logger.Info("Job completed", "job", jobName, "elapsed", time.Since(start))
}

// RunAll runs every job once (for manual execution).
func (jr *JobRunner) RunAll() {
	jr.FinishElapsedReservations()
}

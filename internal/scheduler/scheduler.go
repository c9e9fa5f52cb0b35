package scheduler

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Job is a unit of periodic background work.
type Job interface {
	Name() string
	Run(ctx context.Context) error
}

type Scheduler struct {
	job      Job
	interval time.Duration
	timeout  time.Duration
	logger   zerolog.Logger
}

func NewScheduler(job Job, interval, timeout time.Duration, logger zerolog.Logger) *Scheduler {
	return &Scheduler{
		job:      job,
		interval: interval,
		timeout:  timeout,
		logger:   logger.With().Str("component", "scheduler").Str("job", job.Name()).Logger(),
	}
}

// Start runs the job once immediately and then on every tick until ctx is done.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info().Dur("interval", s.interval).Msg("scheduler started")

	s.runJob(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runJob(ctx)
		}
	}
}

func (s *Scheduler) runJob(ctx context.Context) {
	jobCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		jobCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	if err := s.job.Run(jobCtx); err != nil {
		s.logger.Error().Err(err).Msg("job failed")
	}
}

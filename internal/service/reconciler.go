package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"feedhub/internal/config"
	"feedhub/internal/domain"
	"feedhub/internal/metrics"
)

const reconcileLockName = "feed-reconcile"

// Reconciler walks every feed entry in id order and repairs counter drift.
// Only one run may be active across all replicas.
type Reconciler struct {
	entries    FeedEntryStore
	reconciler CounterReconciler
	locker     Locker
	config     config.ReconcileConfig
	logger     zerolog.Logger
}

func NewReconciler(
	entries FeedEntryStore,
	reconciler CounterReconciler,
	locker Locker,
	cfg config.ReconcileConfig,
	logger zerolog.Logger,
) *Reconciler {
	return &Reconciler{
		entries:    entries,
		reconciler: reconciler,
		locker:     locker,
		config:     cfg,
		logger:     logger.With().Str("component", "reconciler").Logger(),
	}
}

func (r *Reconciler) Name() string {
	return "reconcile"
}

// Run adapts ReconcileAll to the scheduler.
func (r *Reconciler) Run(ctx context.Context) error {
	_, err := r.ReconcileAll(ctx)
	return err
}

func (r *Reconciler) ReconcileAll(ctx context.Context) (*domain.ReconcileStats, error) {
	startTime := time.Now()
	stats := &domain.ReconcileStats{}

	release, ok, err := r.locker.TryLock(ctx, reconcileLockName)
	if err != nil {
		metrics.IncReconcileRun(false, err)
		return nil, fmt.Errorf("acquire reconcile lock: %w", err)
	}
	if !ok {
		stats.Skipped = true
		metrics.IncReconcileRun(true, nil)
		r.logger.Info().Msg("reconcile already running elsewhere, skipping")
		return stats, nil
	}
	defer release()

	r.logger.Info().Int("batch_size", r.config.BatchSize).Msg("starting reconcile")

	err = r.walk(ctx, stats)
	stats.Duration = time.Since(startTime)
	metrics.IncReconcileRun(false, err)

	if err != nil {
		return stats, err
	}

	r.logger.Info().
		Int("scanned", stats.Scanned).
		Int("corrected", stats.Corrected).
		Int("errors", stats.Errors).
		Dur("duration", stats.Duration).
		Msg("reconcile completed")

	return stats, nil
}

func (r *Reconciler) walk(ctx context.Context, stats *domain.ReconcileStats) error {
	batchSize := r.config.BatchSize
	if batchSize <= 0 {
		batchSize = 500
	}

	var afterID int64
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		refs, err := r.entries.ListRefs(ctx, afterID, batchSize)
		if err != nil {
			return fmt.Errorf("list entries after %d: %w", afterID, err)
		}
		if len(refs) == 0 {
			return nil
		}

		for _, ref := range refs {
			stats.Scanned++

			rec, err := r.reconciler.Reconcile(ctx, ref.ContentKey)
			switch {
			case errors.Is(err, domain.ErrNotFound):
				// deleted since the batch was listed
			case err != nil:
				stats.Errors++
				r.logger.Error().Err(err).Stringer("key", ref.ContentKey).Msg("reconcile entry failed")
			case rec.Drifted():
				stats.Corrected++
			}
		}

		afterID = refs[len(refs)-1].ID
		if len(refs) < batchSize {
			return nil
		}
	}
}

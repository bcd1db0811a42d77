// Package scheduler drives the two background jobs: the hourly retention
// sweep and the weekly pick synthesis. Both jobs are idempotent, so the
// scheduler never coordinates with other instances; a redundant or
// retried run is safe by construction.
package scheduler

import (
	"context"
	"time"

	"commune/internal/usecase"
	"commune/pkg/logger"
)

type Scheduler struct {
	archiveUseCase usecase.ArchiveUseCase
	pickUseCase    usecase.PickUseCase
	logger         *logger.Logger
	sweepInterval  time.Duration
	picksInterval  time.Duration
}

func New(
	archiveUseCase usecase.ArchiveUseCase,
	pickUseCase usecase.PickUseCase,
	log *logger.Logger,
	sweepInterval, picksInterval time.Duration,
) *Scheduler {
	return &Scheduler{
		archiveUseCase: archiveUseCase,
		pickUseCase:    pickUseCase,
		logger:         log,
		sweepInterval:  sweepInterval,
		picksInterval:  picksInterval,
	}
}

// Start launches both job loops. They stop when ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) {
	go s.runSweep(ctx)
	go s.runSynthesis(ctx)
}

func (s *Scheduler) runSweep(ctx context.Context) {
	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Retention sweep loop stopped")
			return
		case <-ticker.C:
			summary, err := s.archiveUseCase.Sweep()
			if err != nil {
				// Next tick retries; partial progress is safe
				s.logger.Error("Retention sweep failed: %v", err)
				continue
			}
			if summary.Deleted > 0 {
				s.logger.Info("Retention sweep: archived %d, deleted %d", summary.Archived, summary.Deleted)
			}
		}
	}
}

// runSynthesis checks every tick but only generates once per ISO week;
// the use case no-ops when this week's picks already exist.
func (s *Scheduler) runSynthesis(ctx context.Context) {
	ticker := time.NewTicker(s.picksInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Pick synthesis loop stopped")
			return
		case <-ticker.C:
			summary, err := s.pickUseCase.Synthesize()
			if err != nil {
				s.logger.Error("Pick synthesis failed: %v", err)
				continue
			}
			if summary.Generated > 0 {
				s.logger.Info("Pick synthesis: generated %d picks for week %s", summary.Generated, summary.WeekStart)
			}
		}
	}
}

package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type idleSweeper interface {
	Sweep() int
}

// Scheduler periodically evicts idle per-client rate limiter buckets so the
// in-memory store does not grow with every client ever seen.
type Scheduler struct {
	sweeper  idleSweeper
	interval time.Duration
	logger   logger.Logger
}

func New(
	sweeper idleSweeper,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		sweeper:  sweeper,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick()
		}
	}
}

func (s *Scheduler) tick() {
	if removed := s.sweeper.Sweep(); removed > 0 {
		s.logger.Debug("idle rate limiters evicted",
			logger.Int("count", removed),
		)
	}
}

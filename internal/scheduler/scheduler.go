package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type sessionSweeper interface {
	SweepExpired(ctx context.Context) []string
}

// Scheduler periodically discards checkout sessions that were abandoned
// without an explicit cancel.
type Scheduler struct {
	sessions sessionSweeper
	interval time.Duration
	logger   logger.Logger
}

func New(
	sessions sessionSweeper,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		sessions: sessions,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("session janitor started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("session janitor stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	expired := s.sessions.SweepExpired(ctx)

	for _, id := range expired {
		s.logger.Info("checkout session expired",
			logger.String("session_id", id),
		)
	}
}

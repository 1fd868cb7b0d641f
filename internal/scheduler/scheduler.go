package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/osegura/buzzradar/internal/session"
	"github.com/osegura/buzzradar/pkg/alert"
	"github.com/osegura/buzzradar/pkg/buzz"
)

// Scheduler refreshes the session snapshot on a fixed interval and
// pushes alerts for the freshest top stories.
type Scheduler struct {
	collector *buzz.Collector
	session   *session.Session
	alerts    *alert.Manager
	interval  time.Duration
	watchlist []string
}

// New creates a scheduler. alerts may be nil to disable pushing.
func New(collector *buzz.Collector, sess *session.Session, alerts *alert.Manager, interval time.Duration, watchlist []string) *Scheduler {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	return &Scheduler{
		collector: collector,
		session:   sess,
		alerts:    alerts,
		interval:  interval,
		watchlist: watchlist,
	}
}

// Run starts the refresh loop. Blocks until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	// Refresh immediately on start.
	s.refresh(ctx)
	slog.Info("scheduler running", "interval", s.interval)

	for {
		select {
		case <-ctx.Done():
			slog.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.refresh(ctx)
		}
	}
}

func (s *Scheduler) refresh(ctx context.Context) {
	now := time.Now()
	items := s.collector.Collect(ctx, now)
	s.session.Replace(items, now)
	slog.Info("snapshot refreshed", "items", len(items))

	if s.alerts == nil || !s.alerts.HasNotifiers() {
		return
	}
	watched := buzz.FilterWatchlist(items, s.watchlist)
	if sent := s.alerts.SendTop(ctx, watched, now); sent > 0 {
		slog.Info("alerts sent", "count", sent)
	}
}

package session

import (
	"sync"
	"time"

	"github.com/osegura/buzzradar/pkg/buzz"
)

// Session holds the latest refresh snapshot. The pipeline never
// mutates a published snapshot; each refresh replaces it wholesale.
type Session struct {
	mu          sync.RWMutex
	items       []buzz.NewsItem
	refreshedAt time.Time
	ttl         time.Duration
}

// New creates a session with the given staleness TTL.
func New(ttl time.Duration) *Session {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &Session{ttl: ttl}
}

// Replace publishes a new snapshot taken at now.
func (s *Session) Replace(items []buzz.NewsItem, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = items
	s.refreshedAt = now
}

// Snapshot returns the current items and their refresh time. Callers
// must not modify the returned slice.
func (s *Session) Snapshot() ([]buzz.NewsItem, time.Time) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.items, s.refreshedAt
}

// Stale reports whether the snapshot is missing or older than the TTL.
func (s *Session) Stale(now time.Time) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshedAt.IsZero() || now.Sub(s.refreshedAt) > s.ttl
}

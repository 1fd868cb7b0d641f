package alert

import (
	"context"
	"log/slog"
	"time"

	"github.com/osegura/buzzradar/pkg/buzz"
)

// DefaultMaxAlerts caps how many top stories one refresh may push.
const DefaultMaxAlerts = 5

// Notification is the payload for one alerted story.
type Notification struct {
	Title      string   `json:"title"`
	Source     string   `json:"source"`
	AgeMinutes int      `json:"age_minutes"`
	BuzzScore  float64  `json:"buzz_score"`
	Assets     []string `json:"assets"`
	Link       string   `json:"link"`
}

// Notifier delivers one notification to a destination.
type Notifier interface {
	Name() string
	Send(ctx context.Context, n *Notification) error
}

// Manager pushes top-ranked stories to every configured notifier.
// Delivery is best effort: failures are logged and counted, never
// surfaced as errors, and nothing is retried.
type Manager struct {
	notifiers []Notifier
	minBuzz   float64
	maxAlerts int
}

// NewManager creates a manager with a buzz threshold and a cap on
// alerts per batch.
func NewManager(notifiers []Notifier, minBuzz float64, maxAlerts int) *Manager {
	if maxAlerts <= 0 {
		maxAlerts = DefaultMaxAlerts
	}
	return &Manager{notifiers: notifiers, minBuzz: minBuzz, maxAlerts: maxAlerts}
}

// HasNotifiers reports whether any destination is configured.
func (m *Manager) HasNotifiers() bool { return len(m.notifiers) > 0 }

// SendTop walks the ranked items and delivers up to maxAlerts
// notifications for items at or above the buzz threshold. Returns how
// many were delivered to at least one destination.
func (m *Manager) SendTop(ctx context.Context, items []buzz.NewsItem, now time.Time) int {
	sent := 0
	picked := 0

	for _, it := range items {
		if picked >= m.maxAlerts {
			break
		}
		if it.BuzzScore < m.minBuzz {
			continue
		}
		picked++

		n := &Notification{
			Title:      it.Title,
			Source:     it.Source,
			AgeMinutes: it.AgeMinutes(now),
			BuzzScore:  it.BuzzScore,
			Assets:     it.Assets,
			Link:       it.Link,
		}

		delivered := false
		for _, nt := range m.notifiers {
			if err := nt.Send(ctx, n); err != nil {
				slog.Warn("alert delivery failed", "notifier", nt.Name(), "id", it.ID, "err", err)
				continue
			}
			delivered = true
		}
		if delivered {
			sent++
		}
	}
	return sent
}

package buzz

import (
	"context"
	"log/slog"
	"time"

	"github.com/osegura/buzzradar/pkg/source"
)

// DefaultMaxPerFeed caps entries consumed per feed to bound the cost
// of one refresh.
const DefaultMaxPerFeed = 50

// Collector runs one stateless batch pass: fetch every configured
// feed, normalize and score each entry, deduplicate, rank. A failing
// feed is skipped; one bad source never blocks the others.
type Collector struct {
	fetcher    source.Fetcher
	scorer     *Scorer
	feeds      []string
	maxPerFeed int
	loc        *time.Location
}

// NewCollector wires a collector. The feed list is taken as-is: an
// empty list yields an empty (non-nil) result, fallback to defaults
// is the configuration layer's call.
func NewCollector(fetcher source.Fetcher, scorer *Scorer, feeds []string, maxPerFeed int, loc *time.Location) *Collector {
	if scorer == nil {
		scorer = NewScorer(DefaultHalfLifeHours)
	}
	if maxPerFeed <= 0 {
		maxPerFeed = DefaultMaxPerFeed
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Collector{
		fetcher:    fetcher,
		scorer:     scorer,
		feeds:      feeds,
		maxPerFeed: maxPerFeed,
		loc:        loc,
	}
}

// Collect fetches all feeds and returns the ranked, deduplicated
// snapshot for the given now. Never returns nil.
func (c *Collector) Collect(ctx context.Context, now time.Time) []NewsItem {
	items := make([]NewsItem, 0, len(c.feeds)*8)

	for _, feedURL := range c.feeds {
		entries, err := c.fetcher.Fetch(ctx, feedURL)
		if err != nil {
			slog.Warn("feed skipped", "url", feedURL, "err", err)
			continue
		}
		if len(entries) > c.maxPerFeed {
			entries = entries[:c.maxPerFeed]
		}

		for _, entry := range entries {
			title, summary, link, ts := Normalize(entry, now, c.loc)
			it := c.scorer.Score(title, summary, link, ts, now)
			if it.Source == "" {
				// Entries without a usable link are attributed to the feed.
				it.Source = Host(feedURL)
			}
			items = append(items, it)
		}
	}

	return Rank(items)
}

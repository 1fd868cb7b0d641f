package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/osegura/buzzradar/internal/session"
	"github.com/osegura/buzzradar/pkg/alert"
	"github.com/osegura/buzzradar/pkg/buzz"
)

type stubFetcher struct {
	items []*gofeed.Item
}

func (s *stubFetcher) Fetch(_ context.Context, _ string) ([]*gofeed.Item, error) {
	return s.items, nil
}

func TestRefreshReplacesSnapshot(t *testing.T) {
	ts := time.Now().Add(-time.Minute)
	fetcher := &stubFetcher{items: []*gofeed.Item{
		{Title: "Fed rate cut", Link: "https://x.example/1", PublishedParsed: &ts},
	}}
	collector := buzz.NewCollector(fetcher, buzz.NewScorer(6), []string{"https://x.example/rss"}, 50, time.UTC)
	sess := session.New(time.Minute)

	s := New(collector, sess, alert.NewManager(nil, 0.3, 5), time.Minute, nil)
	s.refresh(context.Background())

	items, refreshedAt := sess.Snapshot()
	if len(items) != 1 {
		t.Fatalf("snapshot has %d items, want 1", len(items))
	}
	if refreshedAt.IsZero() {
		t.Fatal("refresh time not recorded")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	collector := buzz.NewCollector(&stubFetcher{}, buzz.NewScorer(6), nil, 50, time.UTC)
	sess := session.New(time.Minute)
	s := New(collector, sess, alert.NewManager(nil, 0.3, 5), time.Hour, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	select {
	case err := <-done:
		if err != context.Canceled {
			t.Fatalf("Run returned %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop after cancellation")
	}
}

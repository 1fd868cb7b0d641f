package session

import (
	"testing"
	"time"

	"github.com/osegura/buzzradar/pkg/buzz"
)

func TestSessionReplaceAndSnapshot(t *testing.T) {
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	s := New(10 * time.Minute)

	items, refreshedAt := s.Snapshot()
	if len(items) != 0 || !refreshedAt.IsZero() {
		t.Fatalf("fresh session not empty: %d items, %v", len(items), refreshedAt)
	}

	first := []buzz.NewsItem{{ID: "a"}}
	s.Replace(first, now)

	second := []buzz.NewsItem{{ID: "b"}, {ID: "c"}}
	s.Replace(second, now.Add(time.Minute))

	items, refreshedAt = s.Snapshot()
	if len(items) != 2 || items[0].ID != "b" {
		t.Fatalf("snapshot not replaced wholesale: %+v", items)
	}
	if !refreshedAt.Equal(now.Add(time.Minute)) {
		t.Fatalf("refreshedAt = %v", refreshedAt)
	}
}

func TestSessionStale(t *testing.T) {
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	s := New(10 * time.Minute)

	if !s.Stale(now) {
		t.Error("empty session should be stale")
	}

	s.Replace(nil, now)
	if s.Stale(now.Add(5 * time.Minute)) {
		t.Error("session stale inside TTL")
	}
	if !s.Stale(now.Add(11 * time.Minute)) {
		t.Error("session not stale past TTL")
	}
}

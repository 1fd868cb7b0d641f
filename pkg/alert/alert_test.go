package alert

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/osegura/buzzradar/pkg/buzz"
)

type fakeNotifier struct {
	name string
	err  error
	got  []*Notification
}

func (f *fakeNotifier) Name() string { return f.name }

func (f *fakeNotifier) Send(_ context.Context, n *Notification) error {
	if f.err != nil {
		return f.err
	}
	f.got = append(f.got, n)
	return nil
}

var alertNow = time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)

func rankedItems(scores ...float64) []buzz.NewsItem {
	items := make([]buzz.NewsItem, len(scores))
	for i, s := range scores {
		items[i] = buzz.NewsItem{
			ID:        buzz.HashID("t", string(rune('a'+i))),
			Time:      alertNow.Add(-time.Duration(i) * time.Minute),
			Title:     "story",
			BuzzScore: s,
		}
	}
	return items
}

func TestSendTopCapsAtMax(t *testing.T) {
	fake := &fakeNotifier{name: "fake"}
	m := NewManager([]Notifier{fake}, 0.3, 5)

	sent := m.SendTop(context.Background(), rankedItems(2.0, 1.8, 1.5, 1.2, 1.0, 0.9, 0.8), alertNow)
	if sent != 5 {
		t.Fatalf("sent = %d, want 5", sent)
	}
	if len(fake.got) != 5 {
		t.Fatalf("delivered = %d, want 5", len(fake.got))
	}
}

func TestSendTopSkipsBelowThreshold(t *testing.T) {
	fake := &fakeNotifier{name: "fake"}
	m := NewManager([]Notifier{fake}, 0.5, 5)

	sent := m.SendTop(context.Background(), rankedItems(1.0, 0.4, 0.2), alertNow)
	if sent != 1 {
		t.Fatalf("sent = %d, want 1", sent)
	}
}

func TestSendTopCountsFailuresAsUnsent(t *testing.T) {
	failing := &fakeNotifier{name: "down", err: errors.New("boom")}
	m := NewManager([]Notifier{failing}, 0.0, 5)

	sent := m.SendTop(context.Background(), rankedItems(1.0, 0.8), alertNow)
	if sent != 0 {
		t.Fatalf("sent = %d, want 0 when every delivery fails", sent)
	}
}

func TestSendTopAnySuccessCounts(t *testing.T) {
	failing := &fakeNotifier{name: "down", err: errors.New("boom")}
	working := &fakeNotifier{name: "up"}
	m := NewManager([]Notifier{failing, working}, 0.0, 5)

	sent := m.SendTop(context.Background(), rankedItems(1.0), alertNow)
	if sent != 1 {
		t.Fatalf("sent = %d, want 1 when one destination succeeds", sent)
	}
}

func TestSendTopEmptyItems(t *testing.T) {
	m := NewManager([]Notifier{&fakeNotifier{name: "fake"}}, 0.3, 5)
	if sent := m.SendTop(context.Background(), nil, alertNow); sent != 0 {
		t.Fatalf("sent = %d, want 0", sent)
	}
}

func TestHasNotifiers(t *testing.T) {
	if NewManager(nil, 0, 5).HasNotifiers() {
		t.Error("empty manager reports notifiers")
	}
	if !NewManager([]Notifier{&fakeNotifier{}}, 0, 5).HasNotifiers() {
		t.Error("manager with a notifier reports none")
	}
}

package buzz

import (
	"testing"
	"time"
)

func TestAggregateTrends(t *testing.T) {
	now := testNow
	items := []NewsItem{
		{ID: "a", Time: now.Add(-10 * time.Minute), Assets: []string{"USD", "US500"}, BuzzScore: 1.0},
		{ID: "b", Time: now.Add(-30 * time.Minute), Assets: []string{"USD"}, BuzzScore: 0.5},
		{ID: "c", Time: now.Add(-5 * time.Hour), Assets: []string{"USD"}, BuzzScore: 2.0}, // outside window
		{ID: "d", Time: now.Add(-1 * time.Minute), Assets: nil, BuzzScore: 3.0},           // no assets
	}

	rows := AggregateTrends(items, time.Hour, now)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2: %+v", len(rows), rows)
	}

	if rows[0].Asset != "USD" || rows[0].Count != 2 {
		t.Errorf("top row = %+v, want USD with count 2", rows[0])
	}
	if got, want := rows[0].AvgBuzz, 0.75; got != want {
		t.Errorf("USD avg buzz = %v, want %v", got, want)
	}
	if rows[1].Asset != "US500" || rows[1].Count != 1 || rows[1].AvgBuzz != 1.0 {
		t.Errorf("second row = %+v, want US500 count 1 avg 1.0", rows[1])
	}
}

func TestAggregateTrendsWindowBoundary(t *testing.T) {
	now := testNow
	items := []NewsItem{
		{ID: "edge", Time: now.Add(-time.Hour), Assets: []string{"OIL"}, BuzzScore: 1.0},
	}
	// time >= now-window keeps the boundary item.
	rows := AggregateTrends(items, time.Hour, now)
	if len(rows) != 1 {
		t.Fatalf("boundary item excluded, got %d rows", len(rows))
	}
}

func TestAggregateTrendsOrdering(t *testing.T) {
	now := testNow
	items := []NewsItem{
		{ID: "a", Time: now, Assets: []string{"OIL"}, BuzzScore: 0.2},
		{ID: "b", Time: now, Assets: []string{"OIL"}, BuzzScore: 0.2},
		{ID: "c", Time: now, Assets: []string{"BTCUSD"}, BuzzScore: 0.9},
		{ID: "d", Time: now, Assets: []string{"XAUUSD"}, BuzzScore: 0.1},
	}
	rows := AggregateTrends(items, time.Hour, now)
	want := []string{"OIL", "BTCUSD", "XAUUSD"} // count desc, then avg buzz desc
	for i, asset := range want {
		if rows[i].Asset != asset {
			t.Fatalf("row %d = %s, want %s (rows: %+v)", i, rows[i].Asset, asset, rows)
		}
	}
}

func TestAggregateTrendsEmpty(t *testing.T) {
	rows := AggregateTrends(nil, time.Hour, testNow)
	if rows == nil {
		t.Fatal("got nil, want empty slice")
	}
	if len(rows) != 0 {
		t.Fatalf("got %d rows, want 0", len(rows))
	}

	// All items filtered out by the window also yields empty, not nil.
	old := []NewsItem{{ID: "a", Time: testNow.Add(-48 * time.Hour), Assets: []string{"USD"}}}
	rows = AggregateTrends(old, time.Hour, testNow)
	if rows == nil || len(rows) != 0 {
		t.Fatalf("got %v, want empty slice", rows)
	}
}

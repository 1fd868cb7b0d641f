package buzz

import (
	"sort"
	"time"
)

// TrendRow is a per-asset aggregate over a trailing window.
// Recomputed per query, never stored.
type TrendRow struct {
	Asset   string  `json:"asset"`
	Count   int     `json:"count"`
	AvgBuzz float64 `json:"avg_buzz"`
}

// AggregateTrends retains items with time >= now-window, explodes each
// item's asset set into (asset, buzz) pairs, and aggregates mention
// counts and mean buzz per asset. Items with no detected assets
// contribute nothing. Rows are sorted by count desc, then avg buzz
// desc, then asset for determinism. Always returns a non-nil slice.
func AggregateTrends(items []NewsItem, window time.Duration, now time.Time) []TrendRow {
	cutoff := now.Add(-window)

	type acc struct {
		count int
		sum   float64
	}
	byAsset := make(map[string]*acc)

	for _, it := range items {
		if it.Time.Before(cutoff) {
			continue
		}
		for _, a := range it.Assets {
			v := byAsset[a]
			if v == nil {
				v = &acc{}
				byAsset[a] = v
			}
			v.count++
			v.sum += it.BuzzScore
		}
	}

	rows := make([]TrendRow, 0, len(byAsset))
	for a, v := range byAsset {
		rows = append(rows, TrendRow{
			Asset:   a,
			Count:   v.count,
			AvgBuzz: v.sum / float64(v.count),
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		if rows[i].AvgBuzz != rows[j].AvgBuzz {
			return rows[i].AvgBuzz > rows[j].AvgBuzz
		}
		return rows[i].Asset < rows[j].Asset
	})
	return rows
}

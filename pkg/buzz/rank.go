package buzz

import (
	"sort"
	"strings"
)

// Deduplicate drops repeated IDs, keeping the first occurrence and
// preserving input order. First-wins is deliberate: the same story
// fetched from a syndicator and an aggregator resolves to whichever
// feed is configured earlier, so the result depends on feed order.
func Deduplicate(items []NewsItem) []NewsItem {
	out := make([]NewsItem, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		if _, ok := seen[it.ID]; ok {
			continue
		}
		seen[it.ID] = struct{}{}
		out = append(out, it)
	}
	return out
}

// Rank deduplicates and sorts descending by buzz score. The sort is
// stable, so equal scores keep fetch order.
func Rank(items []NewsItem) []NewsItem {
	out := Deduplicate(items)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].BuzzScore > out[j].BuzzScore
	})
	return out
}

// FilterWatchlist keeps items that mention at least one watched asset.
// An empty watchlist keeps everything.
func FilterWatchlist(items []NewsItem, watchlist []string) []NewsItem {
	want := make(map[string]struct{}, len(watchlist))
	for _, w := range watchlist {
		w = strings.ToUpper(strings.TrimSpace(w))
		if w != "" {
			want[w] = struct{}{}
		}
	}
	if len(want) == 0 {
		return items
	}

	out := make([]NewsItem, 0, len(items))
	for _, it := range items {
		for _, a := range it.Assets {
			if _, ok := want[a]; ok {
				out = append(out, it)
				break
			}
		}
	}
	return out
}

// FilterMinBuzz keeps items scoring at or above min.
func FilterMinBuzz(items []NewsItem, min float64) []NewsItem {
	out := make([]NewsItem, 0, len(items))
	for _, it := range items {
		if it.BuzzScore >= min {
			out = append(out, it)
		}
	}
	return out
}

package source

import (
	"context"

	"github.com/mmcdole/gofeed"
)

// Fetcher retrieves the raw entries of one feed URL. Implementations
// must honor ctx and bound their own network timeouts; any failure
// mode is reported as a single error and the caller skips the feed.
type Fetcher interface {
	Fetch(ctx context.Context, feedURL string) ([]*gofeed.Item, error)
}

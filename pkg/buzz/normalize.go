package buzz

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"
)

// Normalize turns one raw feed entry into the canonical tuple the
// scorer consumes. Missing fields are a valid state, not an error:
// title/summary/link default to empty and the timestamp falls back
// published -> updated -> now, all in the given location.
func Normalize(entry *gofeed.Item, now time.Time, loc *time.Location) (title, summary, link string, ts time.Time) {
	if loc == nil {
		loc = time.UTC
	}
	if entry == nil {
		return "", "", "", now.In(loc)
	}

	title = entry.Title
	summary = StripHTML(entry.Description)

	link = entry.Link
	if link == "" && len(entry.Links) > 0 {
		link = entry.Links[0]
	}

	switch {
	case entry.PublishedParsed != nil:
		ts = entry.PublishedParsed.In(loc)
	case entry.UpdatedParsed != nil:
		ts = entry.UpdatedParsed.In(loc)
	default:
		ts = now.In(loc)
	}
	return title, summary, link, ts
}

// StripHTML flattens a feed summary to its visible text. RSS
// descriptions routinely embed markup and entities; keyword matching
// wants neither.
func StripHTML(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}
	return strings.TrimSpace(doc.Text())
}

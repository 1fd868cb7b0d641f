package buzz

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// CSVHeader lists the export columns in order.
var CSVHeader = []string{
	"id", "time", "time_ago_min", "title", "summary", "link",
	"assets", "impact", "source_weight", "recency", "buzz_score", "source",
}

// WriteCSV writes the ranked table as UTF-8 CSV with a header row.
// now fixes the derived time_ago_min column.
func WriteCSV(w io.Writer, items []NewsItem, now time.Time) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, it := range items {
		rec := []string{
			it.ID,
			it.Time.Format(time.RFC3339),
			strconv.Itoa(it.AgeMinutes(now)),
			it.Title,
			it.Summary,
			it.Link,
			strings.Join(it.Assets, ", "),
			strconv.FormatFloat(it.Impact, 'f', 3, 64),
			strconv.FormatFloat(it.SourceWeight, 'f', 3, 64),
			strconv.FormatFloat(it.Recency, 'f', 3, 64),
			strconv.FormatFloat(it.BuzzScore, 'f', 5, 64),
			it.Source,
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write csv row %s: %w", it.ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

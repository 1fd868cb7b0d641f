package buzz

import (
	"bytes"
	"encoding/csv"
	"reflect"
	"testing"
	"time"
)

func TestWriteCSV(t *testing.T) {
	items := []NewsItem{
		{
			ID:           "abc123",
			Time:         testNow.Add(-30 * time.Minute),
			Title:        "Fed holds, markets \"relieved\"",
			Summary:      "A summary, with commas",
			Link:         "https://www.cnbc.com/x",
			Source:       "www.cnbc.com",
			Assets:       []string{"US500", "USD"},
			Impact:       1.0,
			SourceWeight: 1.0,
			Recency:      0.94,
			BuzzScore:    0.94,
		},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, items, testNow); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	r := csv.NewReader(&buf)
	records, err := r.ReadAll()
	if err != nil {
		t.Fatalf("read back csv: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want header + 1 row", len(records))
	}
	if !reflect.DeepEqual(records[0], CSVHeader) {
		t.Errorf("header = %v, want %v", records[0], CSVHeader)
	}

	row := records[1]
	if row[0] != "abc123" {
		t.Errorf("id = %q", row[0])
	}
	if row[2] != "30" {
		t.Errorf("time_ago_min = %q, want 30", row[2])
	}
	if row[6] != "US500, USD" {
		t.Errorf("assets = %q", row[6])
	}
	if row[10] != "0.94000" {
		t.Errorf("buzz_score = %q, want 5 decimals", row[10])
	}
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil, testNow); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	r := csv.NewReader(&buf)
	records, err := r.ReadAll()
	if err != nil {
		t.Fatalf("read back csv: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("empty input should still write the header row, got %d records", len(records))
	}
}

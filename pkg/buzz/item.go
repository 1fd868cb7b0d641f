package buzz

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// DefaultIDLength is how many hex characters of the content hash form
// an item ID. 64 bits keeps collision odds negligible at daily feed
// volumes; raise it if volumes grow.
const DefaultIDLength = 16

// NewsItem is one scored story. Immutable after construction; identity
// is a content hash of title and link.
type NewsItem struct {
	ID           string    `json:"id"`
	Time         time.Time `json:"time"`
	Title        string    `json:"title"`
	Summary      string    `json:"summary"`
	Link         string    `json:"link"`
	Source       string    `json:"source"`
	Assets       []string  `json:"assets"`
	Impact       float64   `json:"impact"`
	SourceWeight float64   `json:"source_weight"`
	Recency      float64   `json:"recency"`
	BuzzScore    float64   `json:"buzz_score"`
}

// HashID derives the item identity from title and link using the
// default truncation length.
func HashID(title, link string) string {
	return HashIDN(title, link, DefaultIDLength)
}

// HashIDN is HashID with an explicit truncation length in hex chars.
func HashIDN(title, link string, n int) string {
	h := sha256.New()
	h.Write([]byte(title))
	h.Write([]byte(link))
	sum := hex.EncodeToString(h.Sum(nil))
	if n <= 0 || n > len(sum) {
		n = len(sum)
	}
	return sum[:n]
}

// AgeMinutes returns whole minutes since publication, clamped at zero
// for timestamps ahead of now.
func (it NewsItem) AgeMinutes(now time.Time) int {
	m := now.Sub(it.Time).Minutes()
	if m < 0 {
		return 0
	}
	return int(m)
}

package buzz

import (
	"math"
	"net/url"
	"regexp"
	"sort"
	"strings"
	"time"
)

const (
	// DefaultHalfLifeHours is the recency half-life.
	DefaultHalfLifeHours = 6.0
	// DefaultSourceWeight applies to unknown or unparseable domains.
	DefaultSourceWeight = 0.6

	baseScore  = 0.6
	impactCoef = 0.3
	sourceCoef = 0.1
)

// Ticker-style tokens: $ followed by 1-5 uppercase letters.
var tickerPattern = regexp.MustCompile(`\$[A-Z]{1,5}`)

// Scorer computes per-item buzz scores. It is pure: identical inputs,
// including now, always yield identical output.
type Scorer struct {
	halfLifeHours float64
	keywords      []string // sorted, so float accumulation order is fixed
	weights       map[string]float64
	assets        map[string][]string
	sources       map[string]float64
}

// NewScorer builds a scorer over the default tables. A non-positive
// half-life falls back to DefaultHalfLifeHours.
func NewScorer(halfLifeHours float64) *Scorer {
	if halfLifeHours <= 0 {
		halfLifeHours = DefaultHalfLifeHours
	}
	keywords := make([]string, 0, len(ImpactKeywords))
	for kw := range ImpactKeywords {
		keywords = append(keywords, kw)
	}
	sort.Strings(keywords)
	return &Scorer{
		halfLifeHours: halfLifeHours,
		keywords:      keywords,
		weights:       ImpactKeywords,
		assets:        KeywordAssets,
		sources:       SourceWeights,
	}
}

// Score builds a fully populated NewsItem from a normalized entry.
func (s *Scorer) Score(title, summary, link string, ts, now time.Time) NewsItem {
	assets, impact := s.DetectAssetsAndImpact(title + " " + summary)
	sourceW := s.DomainWeight(link)
	recency := s.Recency(ts, now)
	return NewsItem{
		ID:           HashID(title, link),
		Time:         ts,
		Title:        title,
		Summary:      summary,
		Link:         link,
		Source:       Host(link),
		Assets:       assets,
		Impact:       impact,
		SourceWeight: sourceW,
		Recency:      recency,
		BuzzScore:    recency * (baseScore + impactCoef*impact + sourceCoef*sourceW),
	}
}

// DetectAssetsAndImpact scans text for impact keywords and ticker
// tokens. Each keyword contributes its weight once no matter how often
// it appears; mapped assets are unioned. Returned assets are sorted.
func (s *Scorer) DetectAssetsAndImpact(text string) ([]string, float64) {
	lower := strings.ToLower(text)
	impact := 0.0
	set := make(map[string]struct{})

	for _, kw := range s.keywords {
		if strings.Contains(lower, kw) {
			impact += s.weights[kw]
			for _, a := range s.assets[kw] {
				set[a] = struct{}{}
			}
		}
	}

	// $TSLA-style mentions move the US indices. Original case only.
	if tickerPattern.MatchString(text) {
		for _, a := range tickerAssets {
			set[a] = struct{}{}
		}
	}

	assets := make([]string, 0, len(set))
	for a := range set {
		assets = append(assets, a)
	}
	sort.Strings(assets)
	return assets, impact
}

// DomainWeight looks up the registrable domain of link in the source
// weight table. Unknown or unparseable links get DefaultSourceWeight;
// this lookup never fails.
func (s *Scorer) DomainWeight(link string) float64 {
	if w, ok := s.sources[registrableDomain(link)]; ok {
		return w
	}
	return DefaultSourceWeight
}

// Recency is the exponential freshness factor exp(-ln2/H * ageHours).
// Future timestamps clamp to age zero, so recency never exceeds 1.
func (s *Scorer) Recency(ts, now time.Time) float64 {
	hours := now.Sub(ts).Hours()
	if hours < 0 {
		hours = 0
	}
	return math.Exp(-math.Ln2 / s.halfLifeHours * hours)
}

// HalfLifeHours reports the configured half-life.
func (s *Scorer) HalfLifeHours() float64 { return s.halfLifeHours }

// Host extracts the hostname of a URL, or "" when unparseable.
func Host(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Hostname())
}

// registrableDomain keeps the last two dot-separated labels of the
// link's host ("www.cnbc.com" -> "cnbc.com").
func registrableDomain(link string) string {
	host := Host(link)
	parts := strings.Split(host, ".")
	if len(parts) >= 2 {
		return strings.Join(parts[len(parts)-2:], ".")
	}
	return host
}

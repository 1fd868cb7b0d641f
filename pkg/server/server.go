package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/osegura/buzzradar/internal/session"
	"github.com/osegura/buzzradar/pkg/buzz"
)

// Server exposes the latest snapshot over HTTP.
type Server struct {
	session   *session.Session
	collector *buzz.Collector
	window    time.Duration
	minBuzz   float64
	watchlist []string
	port      int
	now       func() time.Time
}

// New creates an HTTP server over the given session. window, minBuzz
// and watchlist are the defaults applied when a request does not
// override them.
func New(sess *session.Session, collector *buzz.Collector, window time.Duration, minBuzz float64, watchlist []string, port int) *Server {
	if port == 0 {
		port = 8080
	}
	return &Server{
		session:   sess,
		collector: collector,
		window:    window,
		minBuzz:   minBuzz,
		watchlist: watchlist,
		port:      port,
		now:       time.Now,
	}
}

// Handler returns the route mux.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/api/v1/items", s.handleItems)
	mux.HandleFunc("/api/v1/trends", s.handleTrends)
	mux.HandleFunc("/api/v1/export.csv", s.handleExportCSV)
	mux.HandleFunc("/api/v1/refresh", s.handleRefresh)
	return mux
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	addr := fmt.Sprintf(":%d", s.port)
	slog.Info("server listening", "addr", addr)
	return http.ListenAndServe(addr, s.Handler())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// filteredSnapshot applies the request's watchlist and min_buzz
// overrides (or the server defaults) to the current snapshot.
func (s *Server) filteredSnapshot(r *http.Request) ([]buzz.NewsItem, time.Time) {
	items, refreshedAt := s.session.Snapshot()

	minBuzz := s.minBuzz
	if q := r.URL.Query().Get("min_buzz"); q != "" {
		if v, err := strconv.ParseFloat(q, 64); err == nil {
			minBuzz = v
		}
	}

	watchlist := s.watchlist
	if q := r.URL.Query().Get("watchlist"); q != "" {
		watchlist = strings.Split(q, ",")
	}

	return buzz.FilterMinBuzz(buzz.FilterWatchlist(items, watchlist), minBuzz), refreshedAt
}

func (s *Server) handleItems(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	items, refreshedAt := s.filteredSnapshot(r)

	limit := 50
	if q := r.URL.Query().Get("limit"); q != "" {
		if v, err := strconv.Atoi(q); err == nil && v > 0 {
			limit = v
		}
	}
	if len(items) > limit {
		items = items[:limit]
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"data":         items,
		"count":        len(items),
		"refreshed_at": refreshedAt,
	})
}

func (s *Server) handleTrends(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	window := s.window
	if q := r.URL.Query().Get("window"); q != "" {
		if v, err := strconv.Atoi(q); err == nil && v > 0 {
			window = time.Duration(v) * time.Minute
		}
	}

	items, _ := s.filteredSnapshot(r)
	rows := buzz.AggregateTrends(items, window, s.now())

	writeJSON(w, http.StatusOK, map[string]any{
		"data":  rows,
		"count": len(rows),
	})
}

func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	items, _ := s.filteredSnapshot(r)

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="impact_news.csv"`)
	if err := buzz.WriteCSV(w, items, s.now()); err != nil {
		slog.Warn("csv export failed", "err", err)
	}
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	now := s.now()
	items := s.collector.Collect(r.Context(), now)
	s.session.Replace(items, now)

	writeJSON(w, http.StatusOK, map[string]any{
		"items":        len(items),
		"refreshed_at": now,
	})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

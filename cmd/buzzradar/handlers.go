package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/osegura/buzzradar/internal/config"
	"github.com/osegura/buzzradar/internal/scheduler"
	"github.com/osegura/buzzradar/internal/session"
	"github.com/osegura/buzzradar/pkg/alert"
	"github.com/osegura/buzzradar/pkg/buzz"
	"github.com/osegura/buzzradar/pkg/server"
	"github.com/osegura/buzzradar/pkg/source"
)

func loadConfig() (*config.Config, error) {
	path := cfgFile
	if path == "" {
		if _, err := os.Stat("config.yaml"); err == nil {
			path = "config.yaml"
		}
	}
	return config.Load(path)
}

func buildCollector(cfg *config.Config) *buzz.Collector {
	fetcher := source.NewRSSFetcher(cfg.ParseFetchTimeout())
	scorer := buzz.NewScorer(cfg.HalfLifeHours)
	return buzz.NewCollector(fetcher, scorer, cfg.FeedList(), cfg.MaxPerFeed, cfg.Location())
}

func buildAlertManager(cfg *config.Config) *alert.Manager {
	var notifiers []alert.Notifier
	if cfg.Alerts.Enabled {
		if tg := cfg.Alerts.Telegram; tg.BotToken != "" && tg.ChatID != "" {
			notifiers = append(notifiers, alert.NewTelegram(tg.BotToken, tg.ChatID))
		}
		if wh := cfg.Alerts.Webhook; wh.Enabled && wh.URL != "" {
			notifiers = append(notifiers, alert.NewWebhook(wh.URL, wh.Secret))
		}
	}
	return alert.NewManager(notifiers, cfg.MinBuzz, cfg.Alerts.MaxAlerts)
}

func runFetch(jsonOutput bool, limit int, all bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	now := time.Now()
	items := buildCollector(cfg).Collect(context.Background(), now)
	if !all {
		items = buzz.FilterMinBuzz(buzz.FilterWatchlist(items, cfg.Watchlist), cfg.MinBuzz)
	}
	if len(items) > limit && limit > 0 {
		items = items[:limit]
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(items)
	}

	if len(items) == 0 {
		fmt.Println("no stories (all feeds failed or everything was filtered out)")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BUZZ\tAGO_MIN\tIMPACT\tSOURCE\tASSETS\tTITLE")
	for _, it := range items {
		assets := "-"
		if len(it.Assets) > 0 {
			assets = strings.Join(it.Assets, ",")
		}
		fmt.Fprintf(w, "%.5f\t%d\t%.1f\t%s\t%s\t%s\n",
			it.BuzzScore, it.AgeMinutes(now), it.Impact, it.Source, assets, it.Title)
	}
	return w.Flush()
}

func runTrends(jsonOutput bool, windowMin int) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	window := cfg.Window()
	if windowMin > 0 {
		window = time.Duration(windowMin) * time.Minute
	}

	now := time.Now()
	items := buildCollector(cfg).Collect(context.Background(), now)
	items = buzz.FilterMinBuzz(buzz.FilterWatchlist(items, cfg.Watchlist), cfg.MinBuzz)
	rows := buzz.AggregateTrends(items, window, now)

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	if len(rows) == 0 {
		fmt.Println("no trends in the selected window")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ASSET\tCOUNT\tAVG_BUZZ")
	for _, row := range rows {
		fmt.Fprintf(w, "%s\t%d\t%.5f\n", row.Asset, row.Count, row.AvgBuzz)
	}
	return w.Flush()
}

func runExport(out string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	now := time.Now()
	items := buildCollector(cfg).Collect(context.Background(), now)
	items = buzz.FilterMinBuzz(buzz.FilterWatchlist(items, cfg.Watchlist), cfg.MinBuzz)

	w := os.Stdout
	if out != "" {
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("create export file: %w", err)
		}
		defer f.Close()
		w = f
	}
	return buzz.WriteCSV(w, items, now)
}

func runConfigSetAlerts(enable bool, token, chatID string, minBuzz float64) error {
	path := cfgFile
	if path == "" {
		path = "config.yaml"
	}

	cfg := config.Default()
	if _, err := os.Stat(path); err == nil {
		cfg, err = config.Load(path)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
	}

	cfg.Alerts.Enabled = enable
	if token != "" {
		cfg.Alerts.Telegram.BotToken = token
	}
	if chatID != "" {
		cfg.Alerts.Telegram.ChatID = chatID
	}
	if minBuzz >= 0 {
		cfg.MinBuzz = minBuzz
	}

	if err := cfg.Save(path); err != nil {
		return err
	}
	fmt.Printf("saved alert settings to %s\n", path)
	return nil
}

func runServe(port int) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if port == 0 {
		port = cfg.Server.Port
	}

	collector := buildCollector(cfg)
	sess := session.New(cfg.Refresh.ParseInterval())

	// Seed the snapshot so the API has data before the first refresh.
	now := time.Now()
	sess.Replace(collector.Collect(context.Background(), now), now)

	srv := server.New(sess, collector, cfg.Window(), cfg.MinBuzz, cfg.Watchlist, port)
	return srv.ListenAndServe()
}

func runDaemon(port int) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if port == 0 {
		port = cfg.Server.Port
	}

	collector := buildCollector(cfg)
	sess := session.New(cfg.Refresh.ParseInterval())
	alertMgr := buildAlertManager(cfg)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	sched := scheduler.New(collector, sess, alertMgr, cfg.Refresh.ParseInterval(), cfg.Watchlist)
	go func() {
		if err := sched.Run(ctx); err != nil && ctx.Err() == nil {
			fmt.Fprintf(os.Stderr, "scheduler error: %v\n", err)
		}
	}()

	srv := server.New(sess, collector, cfg.Window(), cfg.MinBuzz, cfg.Watchlist, port)
	return srv.ListenAndServe()
}

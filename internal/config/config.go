package config

import (
	"fmt"
	"os"
	"time"

	"github.com/subosito/gotenv"
	"gopkg.in/yaml.v3"

	"github.com/osegura/buzzradar/pkg/buzz"
)

// Config is the root configuration.
type Config struct {
	Feeds         []string      `yaml:"feeds"`
	Timezone      string        `yaml:"timezone"`
	HalfLifeHours float64       `yaml:"half_life_hours"`
	MaxPerFeed    int           `yaml:"max_per_feed"`
	FetchTimeout  string        `yaml:"fetch_timeout"`
	WindowMinutes int           `yaml:"window_minutes"`
	MinBuzz       float64       `yaml:"min_buzz"`
	Watchlist     []string      `yaml:"watchlist"`
	Refresh       RefreshConfig `yaml:"refresh"`
	Alerts        AlertsConfig  `yaml:"alerts"`
	Server        ServerConfig  `yaml:"server"`
}

// RefreshConfig controls the autorefresh loop.
type RefreshConfig struct {
	Interval string `yaml:"interval"`
}

// ParseInterval returns the refresh interval as a duration.
func (r RefreshConfig) ParseInterval() time.Duration {
	d, err := time.ParseDuration(r.Interval)
	if err != nil || d <= 0 {
		return 10 * time.Minute
	}
	return d
}

// AlertsConfig configures push alert destinations.
type AlertsConfig struct {
	Enabled   bool           `yaml:"enabled"`
	MaxAlerts int            `yaml:"max_alerts"`
	Telegram  TelegramConfig `yaml:"telegram"`
	Webhook   WebhookConfig  `yaml:"webhook"`
}

// TelegramConfig holds Bot API credentials.
type TelegramConfig struct {
	BotToken string `yaml:"bot_token"`
	ChatID   string `yaml:"chat_id"`
}

// WebhookConfig for generic webhook alerts.
type WebhookConfig struct {
	Enabled bool   `yaml:"enabled"`
	URL     string `yaml:"url"`
	Secret  string `yaml:"secret"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Port int `yaml:"port"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Feeds:         append([]string(nil), buzz.DefaultFeeds...),
		Timezone:      "America/Panama",
		HalfLifeHours: buzz.DefaultHalfLifeHours,
		MaxPerFeed:    buzz.DefaultMaxPerFeed,
		FetchTimeout:  "20s",
		WindowMinutes: 240,
		MinBuzz:       0.3,
		Watchlist:     append([]string(nil), buzz.DefaultWatchlist...),
		Refresh:       RefreshConfig{Interval: "10m"},
		Alerts:        AlertsConfig{MaxAlerts: 5},
		Server:        ServerConfig{Port: 8080},
	}
}

// Load reads configuration from a YAML file and applies env var
// overrides. An empty path loads defaults plus env. A .env file in the
// working directory is picked up first if present.
func Load(path string) (*Config, error) {
	_ = gotenv.Load()

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

// Save writes the configuration back as YAML. Used to persist alert
// settings changed at runtime.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

// FeedList returns the configured feeds, falling back to the built-in
// default list when none are set.
func (c *Config) FeedList() []string {
	if len(c.Feeds) == 0 {
		return buzz.DefaultFeeds
	}
	return c.Feeds
}

// Location resolves the configured timezone, falling back to UTC.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// ParseFetchTimeout returns the per-feed HTTP timeout.
func (c *Config) ParseFetchTimeout() time.Duration {
	d, err := time.ParseDuration(c.FetchTimeout)
	if err != nil || d <= 0 {
		return 20 * time.Second
	}
	return d
}

// Window returns the trend window as a duration.
func (c *Config) Window() time.Duration {
	if c.WindowMinutes <= 0 {
		return 240 * time.Minute
	}
	return time.Duration(c.WindowMinutes) * time.Minute
}

// applyEnvOverrides overrides config values with environment variables.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Alerts.Telegram.BotToken = v
		cfg.Alerts.Enabled = true
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Alerts.Telegram.ChatID = v
	}
	if v := os.Getenv("BUZZRADAR_WEBHOOK_URL"); v != "" {
		cfg.Alerts.Webhook.URL = v
		cfg.Alerts.Webhook.Enabled = true
		cfg.Alerts.Enabled = true
	}
	if v := os.Getenv("BUZZRADAR_TIMEZONE"); v != "" {
		cfg.Timezone = v
	}
}

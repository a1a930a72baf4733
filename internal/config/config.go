// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/stubhub/pkg/stubhub"
)

// Session backends.
const (
	SessionBackendFile     = "file"
	SessionBackendPostgres = "postgres"
)

// Config is the top-level application configuration.
type Config struct {
	StubHub  StubHubConfig  `yaml:"stubhub"`
	Session  SessionConfig  `yaml:"session"`
	Database DatabaseConfig `yaml:"database"`
	Sync     SyncConfig     `yaml:"sync"`
	Server   ServerConfig   `yaml:"server"`
	Logging  LoggingConfig  `yaml:"logging"`

	Notifications NotificationsConfig `yaml:"notifications"`
}

// StubHubConfig defines the marketplace API settings.
type StubHubConfig struct {
	ConsumerKey    string              `yaml:"consumer_key"`
	ConsumerSecret string              `yaml:"consumer_secret"`
	BaseURL        string              `yaml:"base_url"`
	Sandbox        bool                `yaml:"sandbox"`
	Timeout        time.Duration       `yaml:"timeout"`
	Proxy          stubhub.ProxyConfig `yaml:"proxy"`
	RateLimit      RateLimitConfig     `yaml:"rate_limit"`
}

// RateLimitConfig defines client-side API throttling. A daily limit of -1
// disables the daily quota.
type RateLimitConfig struct {
	PerSecond  float64 `yaml:"per_second"`
	Burst      int     `yaml:"burst"`
	DailyLimit int64   `yaml:"daily_limit"`
}

// SessionConfig selects where the seller session is persisted between runs.
type SessionConfig struct {
	Backend string `yaml:"backend"` // file, postgres
	Path    string `yaml:"path"`
}

// DatabaseConfig defines PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	PoolSize int    `yaml:"pool_size"`
}

// DSN returns a PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s pool_max_conns=%d",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode, d.PoolSize,
	)
}

// SyncConfig defines the background session refresh and sales mirror.
type SyncConfig struct {
	Interval      time.Duration `yaml:"interval"`
	RefreshBefore time.Duration `yaml:"refresh_before"`
	Sales         bool          `yaml:"sales"`
	PageSize      int           `yaml:"page_size"`
	MaxPages      int           `yaml:"max_pages"`
}

// NotificationsConfig defines where new-sale notifications go.
type NotificationsConfig struct {
	Discord DiscordConfig `yaml:"discord"`
}

// DiscordConfig defines Discord webhook settings.
type DiscordConfig struct {
	Enabled    bool   `yaml:"enabled"`
	WebhookURL string `yaml:"webhook_url"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation. A .env file next to the config is loaded
// first when present; variables already set in the environment win.
func Load(path string) (*Config, error) {
	if err := LoadDotEnv(filepath.Join(filepath.Dir(path), ".env")); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Default returns a configuration with every default applied and no
// credentials. Callers fill in the rest and call Validate.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// LoadDotEnv loads KEY=value pairs from path into the environment. A
// missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

func applyDefaults(cfg *Config) {
	applyStubHubDefaults(&cfg.StubHub)
	applySessionDefaults(&cfg.Session)
	applyDatabaseDefaults(&cfg.Database)
	applySyncDefaults(&cfg.Sync)
	applyServerDefaults(&cfg.Server)
	applyLoggingDefaults(&cfg.Logging)
}

func applyStubHubDefaults(s *StubHubConfig) {
	if s.BaseURL == "" {
		s.BaseURL = stubhub.DefaultBaseURL
	}
	if s.Timeout == 0 {
		s.Timeout = 30 * time.Second
	}
	if s.Proxy == (stubhub.ProxyConfig{}) {
		s.Proxy = stubhub.ProxyFromEnv()
	}
	applyRateLimitDefaults(&s.RateLimit)
}

func applyRateLimitDefaults(r *RateLimitConfig) {
	if r.PerSecond == 0 {
		r.PerSecond = 2.0
	}
	if r.Burst == 0 {
		r.Burst = 5
	}
	if r.DailyLimit == 0 {
		r.DailyLimit = 5000
	}
}

func applySessionDefaults(s *SessionConfig) {
	if s.Backend == "" {
		s.Backend = SessionBackendFile
	}
	if s.Path == "" {
		s.Path = defaultSessionPath()
	}
}

func defaultSessionPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "stubhub-session.yaml"
	}
	return filepath.Join(dir, "stubhub", "session.yaml")
}

func applyDatabaseDefaults(d *DatabaseConfig) {
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	if d.PoolSize == 0 {
		d.PoolSize = 4
	}
}

func applySyncDefaults(s *SyncConfig) {
	if s.Interval == 0 {
		s.Interval = 15 * time.Minute
	}
	if s.RefreshBefore == 0 {
		s.RefreshBefore = 2 * s.Interval
	}
	if s.PageSize == 0 {
		s.PageSize = 100
	}
	if s.MaxPages == 0 {
		s.MaxPages = 50
	}
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

// NeedsDatabase reports whether any configured component uses PostgreSQL.
func (c *Config) NeedsDatabase() bool {
	return c.Session.Backend == SessionBackendPostgres || c.Sync.Sales
}

// Validate checks required fields and cross-field constraints.
func (c *Config) Validate() error {
	var errs []error

	if c.StubHub.ConsumerKey == "" {
		errs = append(errs, fmt.Errorf("stubhub.consumer_key is required"))
	}
	if c.StubHub.ConsumerSecret == "" {
		errs = append(errs, fmt.Errorf("stubhub.consumer_secret is required"))
	}
	if c.StubHub.Timeout < 0 {
		errs = append(errs, fmt.Errorf("stubhub.timeout must not be negative"))
	}
	if c.StubHub.RateLimit.PerSecond < 0 {
		errs = append(errs, fmt.Errorf("stubhub.rate_limit.per_second must not be negative"))
	}

	switch c.Session.Backend {
	case SessionBackendFile:
		if c.Session.Path == "" {
			errs = append(errs, fmt.Errorf("session.path is required when backend is file"))
		}
	case SessionBackendPostgres:
	default:
		errs = append(
			errs,
			fmt.Errorf(
				"session.backend must be one of: file, postgres (got %q)",
				c.Session.Backend,
			),
		)
	}

	if c.NeedsDatabase() {
		if c.Database.Host == "" {
			errs = append(errs, fmt.Errorf("database.host is required"))
		}
		if c.Database.Name == "" {
			errs = append(errs, fmt.Errorf("database.name is required"))
		}
		if c.Database.User == "" {
			errs = append(errs, fmt.Errorf("database.user is required"))
		}
	}

	if c.Notifications.Discord.Enabled {
		if c.Notifications.Discord.WebhookURL == "" {
			errs = append(errs, fmt.Errorf("notifications.discord.webhook_url is required when enabled"))
		}
		if !c.Sync.Sales {
			errs = append(errs, fmt.Errorf("notifications.discord requires sync.sales"))
		}
	}

	if c.Sync.Interval <= 0 {
		errs = append(errs, fmt.Errorf("sync.interval must be positive"))
	}
	if c.Sync.RefreshBefore < c.Sync.Interval {
		errs = append(errs, fmt.Errorf(
			"sync.refresh_before (%s) must be at least sync.interval (%s)",
			c.Sync.RefreshBefore, c.Sync.Interval,
		))
	}

	return errors.Join(errs...)
}

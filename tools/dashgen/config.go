package main

import "errors"

// KnownMetrics is the set of metric names exported by stubhub plus the
// recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"stubhub_http_request_duration_seconds": true,
	"stubhub_http_requests_total":           true,

	// Health metrics.
	"stubhub_healthz_up": true,
	"stubhub_readyz_up":  true,

	// StubHub API metrics.
	"stubhub_api_requests_total":           true,
	"stubhub_api_request_duration_seconds": true,
	"stubhub_logins_total":                 true,
	"stubhub_rate_limit_hits_total":        true,
	"stubhub_daily_usage":                  true,

	// Sync metrics.
	"stubhub_sync_runs_total":                  true,
	"stubhub_sync_duration_seconds":            true,
	"stubhub_sales_synced_total":               true,
	"stubhub_session_expiry_timestamp_seconds": true,

	// Notification metrics.
	"stubhub_notification_duration_seconds": true,
	"stubhub_notification_failures_total":   true,

	// Recording rules.
	"stubhub:http_requests:rate5m": true,
	"stubhub:http_errors:rate5m":   true,
	"stubhub:api_requests:rate5m":  true,
	"stubhub:api_errors:rate5m":    true,
	"stubhub:sync_failures:rate5m": true,
	"stubhub:sales_synced:rate5m":  true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/stubhub/tools/dashgen/dashboards"
	"github.com/donaldgifford/stubhub/tools/dashgen/rules"
	"github.com/donaldgifford/stubhub/tools/dashgen/validate"
)

func TestDefaultConfigValid(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
}

func TestConfigValidate_EmptyOutputDir(t *testing.T) {
	t.Parallel()
	cfg := Config{OutputDir: "", DashboardEnabled: true}
	assert.Error(t, cfg.Validate())
}

func TestConfigValidate_NothingEnabled(t *testing.T) {
	t.Parallel()
	cfg := Config{OutputDir: "/tmp", DashboardEnabled: false, RulesEnabled: false}
	assert.Error(t, cfg.Validate())
}

func TestBuildOverviewDashboard(t *testing.T) {
	t.Parallel()

	builder := dashboards.BuildOverview()
	dash, err := builder.Build()
	require.NoError(t, err)

	require.NotNil(t, dash.Uid)
	assert.Equal(t, "stubhub-overview", *dash.Uid)

	require.NotNil(t, dash.Title)
	assert.Equal(t, "StubHub Overview", *dash.Title)

	require.NotNil(t, dash.Templating)
	assert.Len(t, dash.Templating.List, 1)
	assert.Equal(t, "datasource", dash.Templating.List[0].Name)

	// Overview, HTTP, StubHub API, Sync.
	assert.Len(t, dash.Panels, 4)

	totalPanels := 0
	for _, p := range dash.Panels {
		if p.RowPanel != nil {
			totalPanels += len(p.RowPanel.Panels)
		}
	}
	assert.Equal(t, 18, totalPanels)

	result := validate.Dashboard(dash, KnownMetrics)
	assert.True(t, result.Ok(), "validation errors: %v", result.Errors)
	assert.Empty(t, result.Warnings, "unexpected warnings: %v", result.Warnings)
}

func TestRecordingRules(t *testing.T) {
	t.Parallel()

	cr := rules.RecordingRules()
	assert.Equal(t, "monitoring.coreos.com/v1", cr.APIVersion)
	assert.Equal(t, "PrometheusRule", cr.Kind)
	assert.Equal(t, "stubhub-recording-rules", cr.Metadata.Name)

	require.Len(t, cr.Spec.Groups, 1)
	group := cr.Spec.Groups[0]
	assert.Equal(t, "stubhub-recording", group.Name)
	require.Len(t, group.Rules, 6)

	expectedRecords := []string{
		"stubhub:http_requests:rate5m",
		"stubhub:http_errors:rate5m",
		"stubhub:api_requests:rate5m",
		"stubhub:api_errors:rate5m",
		"stubhub:sync_failures:rate5m",
		"stubhub:sales_synced:rate5m",
	}
	for i, rule := range group.Rules {
		assert.Equal(t, expectedRecords[i], rule.Record)
		assert.NotEmpty(t, rule.Expr)
	}

	result := validate.Rules(cr, KnownMetrics)
	assert.True(t, result.Ok(), "validation errors: %v", result.Errors)

	data, err := yaml.Marshal(cr)
	require.NoError(t, err)
	assert.Contains(t, string(data), "apiVersion: monitoring.coreos.com/v1")
}

func TestAlertRules(t *testing.T) {
	t.Parallel()

	cr := rules.AlertRules()
	assert.Equal(t, "monitoring.coreos.com/v1", cr.APIVersion)
	assert.Equal(t, "PrometheusRule", cr.Kind)
	assert.Equal(t, "stubhub-alerts", cr.Metadata.Name)

	require.Len(t, cr.Spec.Groups, 1)
	group := cr.Spec.Groups[0]
	assert.Equal(t, "stubhub-alerts", group.Name)
	require.Len(t, group.Rules, 8)

	expectedAlerts := []string{
		"StubHubDown",
		"StubHubReadinessDown",
		"StubHubHighErrorRate",
		"StubHubSessionExpiring",
		"StubHubSyncFailing",
		"StubHubQuotaHigh",
		"StubHubLimitReached",
		"StubHubNotificationFailures",
	}
	for i, rule := range group.Rules {
		assert.Equal(t, expectedAlerts[i], rule.Alert)
		assert.NotEmpty(t, rule.Expr)
		assert.NotEmpty(t, rule.Labels["severity"], "alert %s missing severity", rule.Alert)
		assert.NotEmpty(t, rule.Annotations["summary"], "alert %s missing summary", rule.Alert)
		assert.NotEmpty(t, rule.Annotations["description"], "alert %s missing description", rule.Alert)
	}

	result := validate.Rules(cr, KnownMetrics)
	assert.True(t, result.Ok(), "validation errors: %v", result.Errors)
}

func TestValidateExpr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		expr   string
		wantOk bool
	}{
		{name: "known counter", expr: `rate(stubhub_sales_synced_total[5m])`, wantOk: true},
		{
			name:   "histogram bucket",
			expr:   `histogram_quantile(0.95, sum(rate(stubhub_sync_duration_seconds_bucket[5m])) by (le))`,
			wantOk: true,
		},
		{name: "recording rule", expr: `stubhub:http_errors:rate5m > 0`, wantOk: true},
		{name: "unknown metric", expr: `rate(ebay_ingestion_errors_total[5m])`},
		{name: "syntax error", expr: `sum(rate(stubhub_daily_usage[5m]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result := validate.Expr(tt.expr, KnownMetrics)
			assert.Equal(t, tt.wantOk, result.Ok(), "errors: %v", result.Errors)
		})
	}
}

func TestRun_WritesArtifacts(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := Config{OutputDir: dir, DashboardEnabled: true, RulesEnabled: true}
	require.NoError(t, run(cfg, false))

	for _, rel := range []string{
		filepath.Join("grafana", "data", "stubhub-overview.json"),
		filepath.Join("prometheus", "stubhub-recording-rules.yaml"),
		filepath.Join("prometheus", "stubhub-alerts.yaml"),
	} {
		data, err := os.ReadFile(filepath.Join(dir, rel))
		require.NoError(t, err, rel)
		assert.NotEmpty(t, data, rel)
		if strings.HasSuffix(rel, ".yaml") {
			assert.True(t, strings.HasPrefix(string(data), generatedHeader), rel)
		}
	}
}

func TestRun_ValidateOnlyWritesNothing(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := Config{OutputDir: dir, DashboardEnabled: true, RulesEnabled: true}
	require.NoError(t, run(cfg, true))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

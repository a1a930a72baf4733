package panels

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// SyncRuns returns a timeseries panel showing sync runs by job and status.
func SyncRuns() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Sync Runs").
		Description("Session refresh and sales sync runs by status").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			fmt.Sprintf("sum(increase(stubhub_sync_runs_total{%s}[1h])) by (task, status)", job),
			"{{task}} {{status}}", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("sum")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleBars)
}

// SyncDuration returns a timeseries panel showing p95 sync duration by job.
func SyncDuration() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Sync Duration (p95)").
		Description("95th percentile sync run duration by job").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			Quantile(0.95, "stubhub_sync_duration_seconds", "task"),
			"{{task}}", "A",
		)).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// SalesSynced returns a timeseries panel showing the rate of sale records
// written to the mirror.
func SalesSynced() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Sales Synced").
		Description("Sale records written to PostgreSQL per second").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`stubhub:sales_synced:rate5m`, "rows/s", "A")).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// SyncFailures returns a stat panel showing failed sync runs in the last
// 24 hours.
func SyncFailures() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Sync Failures (24h)").
		Description("Failed refresh and sales sync runs in the last 24 hours").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			fmt.Sprintf(`sum(increase(stubhub_sync_runs_total{%s,status="failed"}[24h]))`, job),
			"", "A",
		)).
		Thresholds(ThresholdsGreenYellowRed(1, 5)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}

// NotificationFailures returns a stat panel showing failed new-sale webhook
// deliveries in the last 24 hours.
func NotificationFailures() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Notification Failures (24h)").
		Description("New-sale Discord webhook calls that failed in the last 24 hours").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			fmt.Sprintf(`sum(increase(stubhub_notification_failures_total{%s}[24h]))`, job),
			"", "A",
		)).
		Thresholds(ThresholdsGreenYellowRed(1, 3)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}

package panels

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// APIRequestRate returns a timeseries panel showing StubHub API calls per
// second by endpoint.
func APIRequestRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("API Calls").
		Description("StubHub API calls per second by endpoint").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			fmt.Sprintf("sum(rate(stubhub_api_requests_total{%s}[5m])) by (endpoint)", job),
			"{{endpoint}}", "A",
		)).
		Unit("reqps").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// APILatency returns a timeseries panel showing p95 StubHub API latency by
// endpoint.
func APILatency() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("API Latency (p95)").
		Description("95th percentile StubHub API request duration by endpoint").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			Quantile(0.95, "stubhub_api_request_duration_seconds", "endpoint"),
			"{{endpoint}}", "A",
		)).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenYellowRed(2, 10)).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// APIErrorRate returns a timeseries panel showing failed StubHub API calls
// as a percentage of all calls.
func APIErrorRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("API Error Rate %").
		Description("StubHub API calls answered with an error status").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`stubhub:api_errors:rate5m / stubhub:api_requests:rate5m * 100`,
			"error %", "A",
		)).
		Unit("percent").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenYellowRed(5, 20)).
		ColorScheme(ColorSchemeThresholds()).
		DrawStyle(common.GraphDrawStyleLine)
}

// Logins returns a timeseries panel showing login attempts by result.
func Logins() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Logins").
		Description("Login and refresh attempts by result").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			fmt.Sprintf("sum(increase(stubhub_logins_total{%s}[1h])) by (result)", job),
			"{{result}}", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleBars)
}

// LimitHits returns a stat panel showing calls refused by the daily limit
// in the last 24 hours.
func LimitHits() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Daily Limit Hits (24h)").
		Description("Calls refused locally because the daily API limit was reached").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			fmt.Sprintf("increase(stubhub_rate_limit_hits_total{%s}[24h])", job),
			"", "A",
		)).
		Thresholds(ThresholdsGreenYellowRed(1, 10)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}

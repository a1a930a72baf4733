// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/donaldgifford/stubhub/tools/dashgen/panels"
)

// BuildOverview constructs the StubHub Overview dashboard with all metric rows.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("StubHub Overview").
		Uid("stubhub-overview").
		Tags([]string{"stubhub"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	// Row 1: Overview.
	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.QuotaGauge()).
		WithPanel(panels.SessionExpiryStat()).
		WithPanel(panels.UptimeStat()))

	// Row 2: HTTP.
	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()))

	// Row 3: StubHub API.
	b.WithRow(dashboard.NewRowBuilder("StubHub API").
		WithPanel(panels.APIRequestRate()).
		WithPanel(panels.APILatency()).
		WithPanel(panels.APIErrorRate()).
		WithPanel(panels.Logins()).
		WithPanel(panels.LimitHits()))

	// Row 4: Sync.
	b.WithRow(dashboard.NewRowBuilder("Sync").
		WithPanel(panels.SyncRuns()).
		WithPanel(panels.SyncDuration()).
		WithPanel(panels.SalesSynced()).
		WithPanel(panels.SyncFailures()).
		WithPanel(panels.NotificationFailures()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}

package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "stubhub-recording-rules",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "stubhub-recording",
					Rules: []Rule{
						{
							Record: "stubhub:http_requests:rate5m",
							Expr:   `sum(rate(stubhub_http_requests_total[5m]))`,
						},
						{
							Record: "stubhub:http_errors:rate5m",
							Expr:   `sum(rate(stubhub_http_requests_total{status=~"5.."}[5m]))`,
						},
						{
							Record: "stubhub:api_requests:rate5m",
							Expr:   `sum(rate(stubhub_api_requests_total[5m]))`,
						},
						{
							Record: "stubhub:api_errors:rate5m",
							Expr:   `sum(rate(stubhub_api_requests_total{status!~"2.."}[5m]))`,
						},
						{
							Record: "stubhub:sync_failures:rate5m",
							Expr:   `sum(rate(stubhub_sync_runs_total{status="failed"}[5m])) by (task)`,
						},
						{
							Record: "stubhub:sales_synced:rate5m",
							Expr:   `rate(stubhub_sales_synced_total[5m])`,
						},
					},
				},
			},
		},
	}
}

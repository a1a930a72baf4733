package rules

// AlertRules returns a PrometheusRule CR containing alert rules for
// stubhub operational monitoring.
func AlertRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "stubhub-alerts",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "stubhub-alerts",
					Rules: []Rule{
						{
							Alert: "StubHubDown",
							Expr:  `absent(up{job="stubhub"})`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "stubhub serve is down",
								"description": "The stubhub job has been absent for more than 2 minutes.",
							},
						},
						{
							Alert: "StubHubReadinessDown",
							Expr:  `stubhub_readyz_up == 0`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "stubhub readiness check is failing",
								"description": "The readiness probe has been reporting not-ready for more than 2 minutes.",
							},
						},
						{
							Alert: "StubHubHighErrorRate",
							Expr:  `stubhub:http_errors:rate5m / stubhub:http_requests:rate5m > 0.05`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "High HTTP error rate on stubhub serve",
								"description": "More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes.",
							},
						},
						{
							Alert: "StubHubSessionExpiring",
							Expr:  `stubhub_session_expiry_timestamp_seconds - time() < 3600`,
							For:   "10m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "StubHub session expires within an hour",
								"description": "The stored access token is close to expiry and has not been refreshed. Run `stubhub login`.",
							},
						},
						{
							Alert: "StubHubSyncFailing",
							Expr:  `stubhub:sync_failures:rate5m > 0`,
							For:   "15m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Sync runs are failing",
								"description": "Session refresh or sales sync runs have been failing for more than 15 minutes.",
							},
						},
						{
							Alert: "StubHubQuotaHigh",
							Expr:  `stubhub_daily_usage > 4000`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "StubHub API usage is above 80% of the daily limit",
								"description": "API calls in the rolling 24-hour window have exceeded 4000 (default limit is 5000).",
							},
						},
						{
							Alert: "StubHubLimitReached",
							Expr:  `increase(stubhub_rate_limit_hits_total[5m]) > 0`,
							For:   "0m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "StubHub daily API limit has been reached",
								"description": "Calls are being refused locally until the rolling window frees up.",
							},
						},
						{
							Alert: "StubHubNotificationFailures",
							Expr:  `increase(stubhub_notification_failures_total[30m]) > 2`,
							For:   "0m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "New-sale notifications are failing",
								"description": "Discord webhook deliveries failed more than twice in 30 minutes. Check notifications.discord.webhook_url.",
							},
						},
					},
				},
			},
		},
	}
}

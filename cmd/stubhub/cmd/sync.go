package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/stubhub/internal/notify"
	"github.com/donaldgifford/stubhub/internal/syncer"
)

func newSyncer(a *app) *syncer.Syncer {
	opts := []syncer.Option{
		syncer.WithLogger(a.log),
		syncer.WithRefreshBefore(a.cfg.Sync.RefreshBefore),
		syncer.WithPaging(a.cfg.Sync.PageSize, a.cfg.Sync.MaxPages),
	}
	if a.cfg.Sync.Sales && a.pg != nil {
		opts = append(opts, syncer.WithSalesStore(a.pg))
		if d := a.cfg.Notifications.Discord; d.Enabled {
			opts = append(opts, syncer.WithNotifier(notify.NewDiscordNotifier(d.WebhookURL)))
		}
	}
	return syncer.New(a.client, a.sessions, a.accountKey(), opts...)
}

func syncCmd() *cobra.Command {
	syncRoot := &cobra.Command{
		Use:   "sync",
		Short: "Refresh the session and mirror sales once",
		Long: "Refresh the stored session when it is close to expiry and, when\n" +
			"sync.sales is enabled, copy the seller's sales into PostgreSQL.\n" +
			"`stubhub serve` runs the same cycle on sync.interval.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			return withApp(ctx, func(a *app) error {
				sy := newSyncer(a)

				refreshed, err := sy.RefreshSession(ctx)
				if err != nil {
					return err
				}
				result := map[string]any{"refreshed": refreshed}

				if sy.SalesEnabled() {
					n, err := sy.SyncSales(ctx)
					if err != nil {
						return err
					}
					result["sales"] = n
				}

				if jsonOutput() {
					return outputJSON(result)
				}
				fmt.Printf("Session refreshed: %v\n", refreshed)
				if n, ok := result["sales"]; ok {
					fmt.Printf("Sales written: %d\n", n)
				}
				return nil
			})
		},
	}

	syncRoot.AddCommand(syncRunsCmd())
	return syncRoot
}

func syncRunsCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Show recent sales sync runs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			return withApp(ctx, func(a *app) error {
				if a.pg == nil {
					return errors.New("sync runs are recorded only when sync.sales is enabled")
				}
				runs, err := a.pg.ListSyncRuns(ctx, syncer.JobSales, limit)
				if err != nil {
					return err
				}
				if jsonOutput() {
					return outputJSON(runs)
				}
				if len(runs) == 0 {
					fmt.Println("No sync runs recorded.")
					return nil
				}
				return printSyncRunsTable(runs)
			})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "number of runs")

	return cmd
}

package cmd

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
			defer cancel()

			return withApp(ctx, func(a *app) error {
				if a.pg == nil {
					return errors.New("no database configured; set session.backend: postgres or sync.sales: true")
				}

				a.log.Info("running migrations", "host", a.cfg.Database.Host)
				if err := a.pg.Migrate(ctx); err != nil {
					return err
				}
				a.log.Info("migrations complete")
				return nil
			})
		},
	}
}

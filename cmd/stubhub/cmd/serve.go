package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/donaldgifford/stubhub/internal/api/handlers"
	mw "github.com/donaldgifford/stubhub/internal/api/middleware"
	"github.com/donaldgifford/stubhub/internal/store"
	"github.com/donaldgifford/stubhub/internal/syncer"
	"github.com/donaldgifford/stubhub/pkg/stubhub"
)

const shutdownTimeout = 10 * time.Second

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the session refresh and sales sync on a schedule",
		Long: "Run the session refresh and, when enabled, the sales mirror every\n" +
			"sync.interval. Serves /healthz, /readyz, /metrics, /session,\n" +
			"POST /sync and /sync/runs.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), func(a *app) error {
				return runServe(cmd.Context(), a)
			})
		},
	}
}

func runServe(ctx context.Context, a *app) error {
	var sales store.SalesStore
	if a.pg != nil {
		if err := a.pg.Migrate(ctx); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
		sales = a.pg
	}

	sched, err := syncer.NewScheduler(newSyncer(a), a.cfg.Sync.Interval, a.log)
	if err != nil {
		return fmt.Errorf("creating scheduler: %w", err)
	}

	e := newServer(a.log, sched, sales, a.client)
	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", a.cfg.Server.Host, a.cfg.Server.Port),
		Handler:      e,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
	}

	sched.RecoverStaleSyncRuns(ctx)
	sched.Start()
	go sched.RunNow(ctx) //nolint:errcheck // cycle logs its own failures

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("starting server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			<-sched.Stop().Done()
			return fmt.Errorf("server error: %w", err)
		}
	}

	a.log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}
	<-sched.Stop().Done()

	a.log.Info("server stopped")
	return nil
}

// newServer builds the operational HTTP surface. Health and metrics are plain
// echo routes; the sync and session operations are huma operations. sales may
// be nil when the mirror is disabled.
func newServer(
	log *slog.Logger,
	sched *syncer.Scheduler,
	sales store.SalesStore,
	client *stubhub.Client,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(mw.RequestLog(log), mw.Recovery(log), mw.Metrics())

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	e.GET("/readyz", func(c echo.Context) error {
		if sales != nil {
			if err := sales.Ping(c.Request().Context()); err != nil {
				return c.JSON(http.StatusServiceUnavailable, map[string]string{
					"status": "unavailable",
					"error":  err.Error(),
				})
			}
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ready"})
	})

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := humaecho.New(e, huma.DefaultConfig("stubhub", Version))
	handlers.RegisterSyncRoutes(api, handlers.NewSyncHandler(sched))
	handlers.RegisterSessionRoutes(api, handlers.NewSessionHandler(client))

	var runs handlers.SyncRunsProvider
	if sales != nil {
		runs = sales
	}
	handlers.RegisterSyncRunRoutes(api, handlers.NewSyncRunsHandler(runs))

	return e
}

package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/donaldgifford/stubhub/internal/config"
	"github.com/donaldgifford/stubhub/internal/store"
	"github.com/donaldgifford/stubhub/pkg/logger"
	"github.com/donaldgifford/stubhub/pkg/stubhub"
)

var errNotLoggedIn = errors.New("not logged in; run `stubhub login` first")

// app bundles what every command needs: config, logger, API client and the
// session store.
type app struct {
	cfg      *config.Config
	log      *slog.Logger
	client   *stubhub.Client
	limiter  *stubhub.RateLimiter
	sessions store.SessionStore
	pg       *store.PostgresStore
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	a := &app{
		cfg: cfg,
		log: logger.New(cfg.Logging.Level, cfg.Logging.Format),
	}
	a.limiter = stubhub.NewRateLimiter(
		cfg.StubHub.RateLimit.PerSecond,
		cfg.StubHub.RateLimit.Burst,
		cfg.StubHub.RateLimit.DailyLimit,
	)
	a.client = stubhub.New(cfg.StubHub.ConsumerKey, cfg.StubHub.ConsumerSecret,
		stubhub.WithBaseURL(cfg.StubHub.BaseURL),
		stubhub.WithTimeout(cfg.StubHub.Timeout),
		stubhub.WithProxy(cfg.StubHub.Proxy),
		stubhub.WithSandbox(cfg.StubHub.Sandbox),
		stubhub.WithRateLimiter(a.limiter),
		stubhub.WithLogger(a.log),
	)

	if cfg.NeedsDatabase() {
		pg, err := store.NewPostgresStore(ctx, cfg.Database.DSN())
		if err != nil {
			return nil, fmt.Errorf("connecting to database: %w", err)
		}
		a.pg = pg
	}

	switch cfg.Session.Backend {
	case config.SessionBackendPostgres:
		a.sessions = a.pg
	default:
		a.sessions = store.NewFileSessionStore(cfg.Session.Path)
	}

	return a, nil
}

func (a *app) close() {
	if a.pg != nil {
		a.pg.Close()
	}
}

// accountKey keys stored sessions by application so several consumer keys
// can share one store.
func (a *app) accountKey() string {
	return a.cfg.StubHub.ConsumerKey
}

// restoreSession loads the stored session into the client.
func (a *app) restoreSession(ctx context.Context) error {
	sess, err := a.sessions.LoadSession(ctx, a.accountKey())
	if errors.Is(err, store.ErrNotFound) {
		return errNotLoggedIn
	}
	if err != nil {
		return err
	}
	if !sess.Authenticated() {
		return errNotLoggedIn
	}
	a.client.SetSession(sess)
	return nil
}

// withApp runs fn with a ready app and closes it afterwards.
func withApp(ctx context.Context, fn func(*app) error) error {
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()
	return fn(a)
}

// withSession is withApp for commands that call authenticated endpoints.
func withSession(ctx context.Context, fn func(*app) error) error {
	return withApp(ctx, func(a *app) error {
		if err := a.restoreSession(ctx); err != nil {
			return err
		}
		return fn(a)
	})
}

// Package syncer keeps a seller's StubHub session fresh and mirrors their
// sales into the local store. It runs on a cron schedule under the serve
// command or once from the CLI.
package syncer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/donaldgifford/stubhub/internal/metrics"
	"github.com/donaldgifford/stubhub/internal/notify"
	"github.com/donaldgifford/stubhub/internal/store"
	"github.com/donaldgifford/stubhub/pkg/stubhub"
)

// Job names recorded in sync_runs and metric labels.
const (
	JobRefresh = "refresh"
	JobSales   = "sales"
)

const (
	defaultRefreshBefore = 30 * time.Minute
	defaultPageSize      = 100
	defaultMaxPages      = 50
)

var (
	// ErrNoSession is returned when neither the store nor the client holds
	// an access token.
	ErrNoSession = errors.New("syncer: no stored session; run login first")

	// ErrRefreshRejected is returned when the login endpoint refuses the
	// refresh token.
	ErrRefreshRejected = errors.New("syncer: refresh token rejected")

	// ErrSalesDisabled is returned by SyncSales when no sales store is set.
	ErrSalesDisabled = errors.New("syncer: sales mirroring is not configured")
)

// Client is the part of *stubhub.Client the syncer drives.
type Client interface {
	Session() stubhub.Session
	SetSession(s stubhub.Session)
	Login(ctx context.Context, creds stubhub.Credentials) (bool, error)
	Sales(ctx context.Context, f stubhub.SalesFilter) (*stubhub.SalesPage, error)
}

// Syncer refreshes the stored session and mirrors sales.
type Syncer struct {
	client     Client
	sessions   store.SessionStore
	sales      store.SalesStore
	notifier   notify.Notifier
	accountKey string
	log        *slog.Logger
	now        func() time.Time

	refreshBefore time.Duration
	pageSize      int
	maxPages      int
}

// Option configures the Syncer.
type Option func(*Syncer)

// WithSalesStore enables SyncSales.
func WithSalesStore(s store.SalesStore) Option {
	return func(sy *Syncer) {
		sy.sales = s
	}
}

// WithNotifier announces sales seen for the first time by SyncSales.
func WithNotifier(n notify.Notifier) Option {
	return func(sy *Syncer) {
		sy.notifier = n
	}
}

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) Option {
	return func(sy *Syncer) {
		sy.log = l
	}
}

// WithRefreshBefore sets how long before expiry the session is refreshed.
func WithRefreshBefore(d time.Duration) Option {
	return func(sy *Syncer) {
		sy.refreshBefore = d
	}
}

// WithPaging sets the page size and the maximum pages fetched per run.
func WithPaging(pageSize, maxPages int) Option {
	return func(sy *Syncer) {
		if pageSize > 0 {
			sy.pageSize = pageSize
		}
		if maxPages > 0 {
			sy.maxPages = maxPages
		}
	}
}

// WithNowFunc overrides the time function for testing.
func WithNowFunc(f func() time.Time) Option {
	return func(sy *Syncer) {
		sy.now = f
	}
}

// New creates a Syncer for the account identified by accountKey.
func New(client Client, sessions store.SessionStore, accountKey string, opts ...Option) *Syncer {
	sy := &Syncer{
		client:        client,
		sessions:      sessions,
		accountKey:    accountKey,
		log:           slog.Default(),
		now:           time.Now,
		refreshBefore: defaultRefreshBefore,
		pageSize:      defaultPageSize,
		maxPages:      defaultMaxPages,
	}
	for _, opt := range opts {
		opt(sy)
	}
	return sy
}

// SalesEnabled reports whether a sales store is configured.
func (sy *Syncer) SalesEnabled() bool {
	return sy.sales != nil
}

// RefreshSession loads the stored session into the client and, when the
// access token lapses within the refresh window, logs in again with the
// refresh token and stores the result. It reports whether a refresh happened.
func (sy *Syncer) RefreshSession(ctx context.Context) (refreshed bool, err error) {
	start := sy.now()
	defer func() {
		observeRun(JobRefresh, start, sy.now(), err)
	}()

	sess, err := sy.loadSession(ctx)
	if err != nil {
		return false, err
	}
	sy.client.SetSession(sess)
	setExpiryGauge(sess)

	if !sess.ExpiresWithin(sy.now(), sy.refreshBefore) {
		sy.log.Debug("session still fresh", "expires_at", sess.ExpiresAt())
		return false, nil
	}
	if sess.RefreshToken == "" {
		return false, fmt.Errorf("refreshing session: %w", ErrRefreshRejected)
	}

	ok, err := sy.client.Login(ctx, stubhub.Credentials{RefreshToken: sess.RefreshToken})
	if err != nil {
		return false, fmt.Errorf("refreshing session: %w", err)
	}
	if !ok {
		return false, ErrRefreshRejected
	}

	fresh := sy.client.Session()
	if err := sy.sessions.SaveSession(ctx, sy.accountKey, fresh); err != nil {
		return true, fmt.Errorf("saving refreshed session: %w", err)
	}
	setExpiryGauge(fresh)

	sy.log.Info("session refreshed", "expires_at", fresh.ExpiresAt())
	return true, nil
}

// loadSession prefers the stored session and falls back to whatever the
// client already holds.
func (sy *Syncer) loadSession(ctx context.Context) (stubhub.Session, error) {
	sess, err := sy.sessions.LoadSession(ctx, sy.accountKey)
	switch {
	case errors.Is(err, store.ErrNotFound):
		sess = sy.client.Session()
	case err != nil:
		return stubhub.Session{}, fmt.Errorf("loading session: %w", err)
	}
	if !sess.Authenticated() {
		return stubhub.Session{}, ErrNoSession
	}
	return sess, nil
}

// SyncSales pages through the seller's sales, newest first, and upserts them
// into the sales store. The run is recorded in sync_runs. It returns the
// number of rows written.
func (sy *Syncer) SyncSales(ctx context.Context) (written int, err error) {
	if sy.sales == nil {
		return 0, ErrSalesDisabled
	}

	start := sy.now()
	runID := uuid.NewString()
	if err := sy.sales.InsertSyncRun(ctx, runID, JobSales); err != nil {
		observeRun(JobSales, start, sy.now(), err)
		return 0, fmt.Errorf("recording sync run: %w", err)
	}

	defer func() {
		status, errText := store.RunStatusSucceeded, ""
		if err != nil {
			status, errText = store.RunStatusFailed, err.Error()
		}
		// A cancelled run must still leave sync_runs, so the update ignores ctx cancellation.
		if cerr := sy.sales.CompleteSyncRun(context.WithoutCancel(ctx), runID, status, errText, written); cerr != nil {
			sy.log.Error("completing sync run", "run_id", runID, "error", cerr)
		}
		observeRun(JobSales, start, sy.now(), err)
	}()

	written, fresh, err := sy.pageSales(ctx)
	if err != nil {
		return written, err
	}

	metrics.SalesSyncedTotal.Add(float64(written))
	sy.log.Info("sales synced", "run_id", runID, "rows", written, "new", len(fresh))
	sy.notifyNew(ctx, fresh)
	return written, nil
}

// pageSales returns the rows written and, when a notifier is set, the
// records that were not mirrored before this run.
func (sy *Syncer) pageSales(ctx context.Context) (int, []store.SaleRecord, error) {
	sellerID := sy.client.Session().UserID

	var fresh []store.SaleRecord
	written, offset := 0, 0
	for page := 0; page < sy.maxPages; page++ {
		resp, err := sy.client.Sales(ctx, stubhub.SalesFilter{Start: offset, Rows: sy.pageSize})
		if err != nil {
			return written, fresh, fmt.Errorf("fetching sales page %d: %w", page, err)
		}
		if len(resp.Sales) == 0 {
			return written, fresh, nil
		}

		records := make([]store.SaleRecord, 0, len(resp.Sales))
		for i := range resp.Sales {
			records = append(records, toRecord(sellerID, &resp.Sales[i]))
		}

		if sy.notifier != nil {
			unseen, err := sy.unseen(ctx, records)
			if err != nil {
				return written, fresh, fmt.Errorf("checking sales page %d: %w", page, err)
			}
			fresh = append(fresh, unseen...)
		}

		n, err := sy.sales.UpsertSales(ctx, records)
		written += n
		if err != nil {
			return written, fresh, fmt.Errorf("storing sales page %d: %w", page, err)
		}

		offset += len(resp.Sales)
		if offset >= resp.NumFound {
			return written, fresh, nil
		}
	}

	sy.log.Warn("sales sync stopped at page limit", "max_pages", sy.maxPages, "rows", written)
	return written, fresh, nil
}

func (sy *Syncer) unseen(ctx context.Context, records []store.SaleRecord) ([]store.SaleRecord, error) {
	ids := make([]string, len(records))
	for i := range records {
		ids[i] = records[i].SaleID
	}
	existing, err := sy.sales.ExistingSaleIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	var out []store.SaleRecord
	for i := range records {
		if !existing[records[i].SaleID] {
			out = append(out, records[i])
		}
	}
	return out, nil
}

// notifyNew announces fresh sales. Delivery failures never fail the sync.
func (sy *Syncer) notifyNew(ctx context.Context, fresh []store.SaleRecord) {
	if sy.notifier == nil || len(fresh) == 0 {
		return
	}

	payloads := make([]notify.SalePayload, len(fresh))
	for i := range fresh {
		payloads[i] = salePayload(&fresh[i])
	}
	if err := sy.notifier.NotifySales(ctx, payloads); err != nil {
		sy.log.Warn("new-sale notification failed", "sales", len(fresh), "error", err)
	}
}

func observeRun(job string, start, end time.Time, err error) {
	status := store.RunStatusSucceeded
	if err != nil {
		status = store.RunStatusFailed
	}
	metrics.SyncRunsTotal.WithLabelValues(job, status).Inc()
	metrics.SyncDuration.WithLabelValues(job).Observe(end.Sub(start).Seconds())
}

func setExpiryGauge(s stubhub.Session) {
	if exp := s.ExpiresAt(); !exp.IsZero() {
		metrics.SessionExpiry.Set(float64(exp.Unix()))
	}
}

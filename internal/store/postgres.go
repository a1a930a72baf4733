package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/donaldgifford/stubhub/pkg/stubhub"
)

// PostgresStore implements SessionStore and SalesStore using pgxpool.
//
// Methods require live Postgres and are covered by the integration tests.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore with connection pooling. The
// pool size comes from pool_max_conns in connString.
func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// LoadSession implements SessionStore.
func (s *PostgresStore) LoadSession(ctx context.Context, key string) (stubhub.Session, error) {
	var (
		sess   stubhub.Session
		issued *time.Time
	)
	err := s.pool.QueryRow(ctx, queryGetSession, key).Scan(
		&sess.AccessToken, &sess.RefreshToken, &sess.ExpiresIn, &sess.UserID, &issued,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return stubhub.Session{}, ErrNotFound
	}
	if err != nil {
		return stubhub.Session{}, fmt.Errorf("loading session: %w", err)
	}
	if issued != nil {
		sess.IssuedAt = *issued
	}
	return sess, nil
}

// SaveSession implements SessionStore.
func (s *PostgresStore) SaveSession(ctx context.Context, key string, sess stubhub.Session) error {
	var issued *time.Time
	if !sess.IssuedAt.IsZero() {
		issued = &sess.IssuedAt
	}
	args := pgx.NamedArgs{
		"account_key":   key,
		"access_token":  sess.AccessToken,
		"refresh_token": sess.RefreshToken,
		"expires_in":    sess.ExpiresIn,
		"user_id":       sess.UserID,
		"issued_at":     issued,
	}
	if _, err := s.pool.Exec(ctx, queryUpsertSession, args); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	return nil
}

// DeleteSession implements SessionStore.
func (s *PostgresStore) DeleteSession(ctx context.Context, key string) error {
	if _, err := s.pool.Exec(ctx, queryDeleteSession, key); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}

// UpsertSales inserts or updates sales by sale id in a single batch and
// returns the number of rows written.
func (s *PostgresStore) UpsertSales(ctx context.Context, records []SaleRecord) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for i := range records {
		r := &records[i]
		batch.Queue(queryUpsertSale, pgx.NamedArgs{
			"sale_id":           r.SaleID,
			"seller_id":         r.SellerID,
			"listing_id":        r.ListingID,
			"event_id":          r.EventID,
			"event_description": r.EventDescription,
			"event_date":        r.EventDate,
			"sale_date":         r.SaleDate,
			"status":            r.Status,
			"quantity":          r.Quantity,
			"section":           r.Section,
			"seat_rows":         r.Rows,
			"seats":             r.Seats,
			"delivery_option":   r.DeliveryOption,
			"price_per_ticket":  r.PricePerTicket,
			"payout":            r.Payout,
			"currency":          r.Currency,
		})
	}

	br := s.pool.SendBatch(ctx, batch)
	defer br.Close()

	written := 0
	for i := range records {
		tag, err := br.Exec()
		if err != nil {
			return written, fmt.Errorf("upserting sale %s: %w", records[i].SaleID, err)
		}
		written += int(tag.RowsAffected())
	}
	return written, nil
}

// ExistingSaleIDs implements SalesStore.
func (s *PostgresStore) ExistingSaleIDs(ctx context.Context, ids []string) (map[string]bool, error) {
	existing := make(map[string]bool, len(ids))
	if len(ids) == 0 {
		return existing, nil
	}

	rows, err := s.pool.Query(ctx, queryExistingSaleIDs, ids)
	if err != nil {
		return nil, fmt.Errorf("querying existing sales: %w", err)
	}
	found, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("scanning existing sales: %w", err)
	}
	for _, id := range found {
		existing[id] = true
	}
	return existing, nil
}

// ListSales queries mirrored sales with optional filters, returning results
// and total count.
func (s *PostgresStore) ListSales(ctx context.Context, q *SalesQuery) ([]SaleRecord, int, error) {
	dataSQL, countSQL, args := q.ToSQL()

	var total int
	if err := s.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting sales: %w", err)
	}

	rows, err := s.pool.Query(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("querying sales: %w", err)
	}

	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (SaleRecord, error) {
		var r SaleRecord
		err := row.Scan(
			&r.SaleID, &r.SellerID, &r.ListingID, &r.EventID, &r.EventDescription,
			&r.EventDate, &r.SaleDate, &r.Status, &r.Quantity,
			&r.Section, &r.Rows, &r.Seats, &r.DeliveryOption,
			&r.PricePerTicket, &r.Payout, &r.Currency, &r.FirstSeenAt, &r.UpdatedAt,
		)
		return r, err
	})
	if err != nil {
		return nil, 0, fmt.Errorf("scanning sales: %w", err)
	}

	return records, total, nil
}

// InsertSyncRun records the start of a sync job run under the given id.
func (s *PostgresStore) InsertSyncRun(ctx context.Context, id, job string) error {
	if _, err := s.pool.Exec(ctx, queryInsertSyncRun, id, job); err != nil {
		return fmt.Errorf("inserting sync run: %w", err)
	}
	return nil
}

// CompleteSyncRun marks a sync run as finished with the given status.
func (s *PostgresStore) CompleteSyncRun(
	ctx context.Context,
	id, status, errText string,
	rowsAffected int,
) error {
	tag, err := s.pool.Exec(ctx, queryCompleteSyncRun, id, status, errText, rowsAffected)
	if err != nil {
		return fmt.Errorf("completing sync run: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("completing sync run %s: %w", id, ErrNotFound)
	}
	return nil
}

// ListSyncRuns returns the most recent runs of a job, newest first.
func (s *PostgresStore) ListSyncRuns(ctx context.Context, job string, limit int) ([]SyncRun, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	limit = min(limit, maxLimit)

	rows, err := s.pool.Query(ctx, queryListSyncRuns, job, limit)
	if err != nil {
		return nil, fmt.Errorf("querying sync runs: %w", err)
	}

	runs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (SyncRun, error) {
		var r SyncRun
		err := row.Scan(
			&r.ID, &r.Job, &r.StartedAt, &r.CompletedAt, &r.Status, &r.ErrorText, &r.RowsAffected,
		)
		return r, err
	})
	if err != nil {
		return nil, fmt.Errorf("scanning sync runs: %w", err)
	}
	return runs, nil
}

// RecoverStaleSyncRuns marks running rows older than olderThan as crashed,
// then deletes runs older than 90 days.
func (s *PostgresStore) RecoverStaleSyncRuns(ctx context.Context, olderThan time.Duration) (int, error) {
	cutoff := time.Now().Add(-olderThan)

	tag, err := s.pool.Exec(ctx, queryMarkStaleSyncRunsCrashed, cutoff)
	if err != nil {
		return 0, fmt.Errorf("marking stale sync runs crashed: %w", err)
	}
	marked := int(tag.RowsAffected())

	if _, err := s.pool.Exec(ctx, queryDeleteOldSyncRuns); err != nil {
		return marked, fmt.Errorf("deleting old sync runs: %w", err)
	}
	return marked, nil
}

//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/donaldgifford/stubhub/internal/store"
)

func setupPostgres(t *testing.T) *store.PostgresStore {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("stubhub_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, pgContainer.Terminate(ctx))
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable", "pool_max_conns=4")
	require.NoError(t, err)

	s, err := store.NewPostgresStore(ctx, connStr)
	require.NoError(t, err)

	t.Cleanup(func() {
		s.Close()
	})

	require.NoError(t, s.Migrate(ctx))

	return s
}

func testSale(id string) store.SaleRecord {
	saleDate := time.Date(2024, 3, 1, 18, 30, 0, 0, time.UTC)
	eventDate := time.Date(2024, 4, 12, 19, 0, 0, 0, time.UTC)
	return store.SaleRecord{
		SaleID:           id,
		SellerID:         "userid",
		ListingID:        123123,
		EventID:          "9001",
		EventDescription: "Home Team vs Away Team",
		EventDate:        &eventDate,
		SaleDate:         &saleDate,
		Status:           "CONFIRMED",
		Quantity:         2,
		Section:          "Section A",
		Rows:             "14",
		Seats:            "2,3",
		DeliveryOption:   "BARCODE",
		PricePerTicket:   123.25,
		Payout:           221.85,
		Currency:         "USD",
	}
}

func TestPostgresStore_Ping(t *testing.T) {
	s := setupPostgres(t)
	require.NoError(t, s.Ping(context.Background()))
}

func TestPostgresStore_MigrateIsIdempotent(t *testing.T) {
	s := setupPostgres(t)
	require.NoError(t, s.Migrate(context.Background()))
}

func TestPostgresStore_Sessions(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		_, err := s.LoadSession(ctx, "missing")
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("save and load", func(t *testing.T) {
		sess := testSession()
		require.NoError(t, s.SaveSession(ctx, "foo_key", sess))

		got, err := s.LoadSession(ctx, "foo_key")
		require.NoError(t, err)
		assert.Equal(t, sess.AccessToken, got.AccessToken)
		assert.Equal(t, sess.RefreshToken, got.RefreshToken)
		assert.Equal(t, sess.ExpiresIn, got.ExpiresIn)
		assert.Equal(t, sess.UserID, got.UserID)
		assert.True(t, sess.IssuedAt.Equal(got.IssuedAt))
	})

	t.Run("overwrite", func(t *testing.T) {
		sess := testSession()
		sess.AccessToken = "rotated"
		require.NoError(t, s.SaveSession(ctx, "foo_key", sess))

		got, err := s.LoadSession(ctx, "foo_key")
		require.NoError(t, err)
		assert.Equal(t, "rotated", got.AccessToken)
	})

	t.Run("unknown issue time", func(t *testing.T) {
		sess := testSession()
		sess.IssuedAt = time.Time{}
		require.NoError(t, s.SaveSession(ctx, "no_issue", sess))

		got, err := s.LoadSession(ctx, "no_issue")
		require.NoError(t, err)
		assert.True(t, got.IssuedAt.IsZero())
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, s.DeleteSession(ctx, "foo_key"))
		require.NoError(t, s.DeleteSession(ctx, "foo_key"))

		_, err := s.LoadSession(ctx, "foo_key")
		assert.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestPostgresStore_UpsertSales(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	n, err := s.UpsertSales(ctx, nil)
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = s.UpsertSales(ctx, []store.SaleRecord{testSale("s-1"), testSale("s-2")})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	first, _, err := s.ListSales(ctx, &store.SalesQuery{ListingID: ptrTo(int64(123123))})
	require.NoError(t, err)
	require.Len(t, first, 2)

	updated := testSale("s-1")
	updated.Status = "SHIPPED"
	updated.Payout = 200
	n, err = s.UpsertSales(ctx, []store.SaleRecord{updated})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, total, err := s.ListSales(ctx, &store.SalesQuery{Status: ptrTo("shipped")})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, got, 1)
	assert.Equal(t, "s-1", got[0].SaleID)
	assert.InDelta(t, 200, got[0].Payout, 0.001)
	assert.InDelta(t, 123.25, got[0].PricePerTicket, 0.001)
	assert.Equal(t, "14", got[0].Rows)
	assert.False(t, got[0].FirstSeenAt.IsZero())
}

func TestPostgresStore_ExistingSaleIDs(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	_, err := s.UpsertSales(ctx, []store.SaleRecord{testSale("s-1"), testSale("s-2")})
	require.NoError(t, err)

	got, err := s.ExistingSaleIDs(ctx, []string{"s-1", "s-3"})
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"s-1": true}, got)

	got, err = s.ExistingSaleIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestPostgresStore_ListSales(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	older := testSale("old")
	olderDate := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	older.SaleDate = &olderDate
	older.Payout = 500

	_, err := s.UpsertSales(ctx, []store.SaleRecord{testSale("new"), older})
	require.NoError(t, err)

	t.Run("default order is newest first", func(t *testing.T) {
		got, total, err := s.ListSales(ctx, &store.SalesQuery{})
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		require.Len(t, got, 2)
		assert.Equal(t, "new", got[0].SaleID)
	})

	t.Run("since filter", func(t *testing.T) {
		since := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
		got, total, err := s.ListSales(ctx, &store.SalesQuery{Since: &since})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, got, 1)
		assert.Equal(t, "new", got[0].SaleID)
	})

	t.Run("order by payout", func(t *testing.T) {
		got, _, err := s.ListSales(ctx, &store.SalesQuery{OrderBy: "payout"})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "old", got[0].SaleID)
	})

	t.Run("pagination keeps total", func(t *testing.T) {
		got, total, err := s.ListSales(ctx, &store.SalesQuery{Limit: 1, Offset: 1})
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		assert.Len(t, got, 1)
	})
}

func TestPostgresStore_SyncRuns(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	okID := uuid.NewString()
	require.NoError(t, s.InsertSyncRun(ctx, okID, "sales"))
	require.NoError(t, s.CompleteSyncRun(ctx, okID, store.RunStatusSucceeded, "", 7))

	failID := uuid.NewString()
	require.NoError(t, s.InsertSyncRun(ctx, failID, "sales"))
	require.NoError(t, s.CompleteSyncRun(ctx, failID, store.RunStatusFailed, "boom", 0))

	runs, err := s.ListSyncRuns(ctx, "sales", 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	byID := map[string]store.SyncRun{}
	for _, r := range runs {
		byID[r.ID] = r
	}
	assert.Equal(t, store.RunStatusSucceeded, byID[okID].Status)
	assert.Equal(t, 7, byID[okID].RowsAffected)
	assert.Empty(t, byID[okID].ErrorText)
	assert.NotNil(t, byID[okID].CompletedAt)
	assert.Equal(t, "boom", byID[failID].ErrorText)

	err = s.CompleteSyncRun(ctx, uuid.NewString(), store.RunStatusSucceeded, "", 0)
	assert.ErrorIs(t, err, store.ErrNotFound)

	none, err := s.ListSyncRuns(ctx, "other", 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestPostgresStore_ListSyncRuns_ClampsLimit(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	for range 3 {
		require.NoError(t, s.InsertSyncRun(ctx, uuid.NewString(), "clamp"))
	}

	runs, err := s.ListSyncRuns(ctx, "clamp", 1_000_000)
	require.NoError(t, err)
	assert.Len(t, runs, 3)
}

func TestPostgresStore_RecoverStaleSyncRuns(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	doneID := uuid.NewString()
	require.NoError(t, s.InsertSyncRun(ctx, doneID, "recover"))
	require.NoError(t, s.CompleteSyncRun(ctx, doneID, store.RunStatusSucceeded, "", 1))

	stuckID := uuid.NewString()
	require.NoError(t, s.InsertSyncRun(ctx, stuckID, "recover"))

	marked, err := s.RecoverStaleSyncRuns(ctx, time.Hour)
	require.NoError(t, err)
	assert.Zero(t, marked, "a run younger than the cutoff is left alone")

	time.Sleep(20 * time.Millisecond)

	marked, err = s.RecoverStaleSyncRuns(ctx, time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, 1, marked)

	runs, err := s.ListSyncRuns(ctx, "recover", 10)
	require.NoError(t, err)
	byID := map[string]store.SyncRun{}
	for _, r := range runs {
		byID[r.ID] = r
	}
	assert.Equal(t, store.RunStatusSucceeded, byID[doneID].Status)
	assert.Equal(t, store.RunStatusCrashed, byID[stuckID].Status)
	assert.NotNil(t, byID[stuckID].CompletedAt)
	assert.Equal(t, "interrupted before completion", byID[stuckID].ErrorText)
}

func ptrTo[T any](v T) *T { return &v }

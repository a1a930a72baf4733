package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/stubhub/internal/api/handlers"
	"github.com/donaldgifford/stubhub/internal/store"
	"github.com/donaldgifford/stubhub/internal/syncer"
)

// mockRunsProvider is a test double for SyncRunsProvider.
type mockRunsProvider struct {
	runs     []store.SyncRun
	err      error
	gotJob   string
	gotLimit int
}

func (m *mockRunsProvider) ListSyncRuns(_ context.Context, job string, limit int) ([]store.SyncRun, error) {
	m.gotJob, m.gotLimit = job, limit
	return m.runs, m.err
}

func sampleRun(status string) store.SyncRun {
	return store.SyncRun{
		ID:           "run-1",
		Job:          syncer.JobSales,
		StartedAt:    time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		Status:       status,
		RowsAffected: 3,
	}
}

func TestListSyncRuns_Success(t *testing.T) {
	t.Parallel()

	p := &mockRunsProvider{runs: []store.SyncRun{sampleRun(store.RunStatusSucceeded)}}

	_, api := humatest.New(t)
	handlers.RegisterSyncRunRoutes(api, handlers.NewSyncRunsHandler(p))

	resp := api.Get("/sync/runs")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"status":"succeeded"`)
	assert.Equal(t, syncer.JobSales, p.gotJob)
	assert.Equal(t, 20, p.gotLimit)
}

func TestListSyncRuns_Limit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		target    string
		wantCode  int
		wantLimit int
	}{
		{name: "explicit", target: "/sync/runs?limit=5", wantCode: http.StatusOK, wantLimit: 5},
		{name: "maximum", target: "/sync/runs?limit=500", wantCode: http.StatusOK, wantLimit: 500},
		{name: "not a number", target: "/sync/runs?limit=zero", wantCode: http.StatusUnprocessableEntity},
		{name: "zero", target: "/sync/runs?limit=0", wantCode: http.StatusUnprocessableEntity},
		{name: "above maximum", target: "/sync/runs?limit=100000", wantCode: http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := &mockRunsProvider{}

			_, api := humatest.New(t)
			handlers.RegisterSyncRunRoutes(api, handlers.NewSyncRunsHandler(p))

			resp := api.Get(tt.target)
			require.Equal(t, tt.wantCode, resp.Code)
			assert.Equal(t, tt.wantLimit, p.gotLimit)
		})
	}
}

func TestListSyncRuns_Empty(t *testing.T) {
	t.Parallel()

	_, api := humatest.New(t)
	handlers.RegisterSyncRunRoutes(api, handlers.NewSyncRunsHandler(&mockRunsProvider{}))

	resp := api.Get("/sync/runs")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, "[]", resp.Body.String())
}

func TestListSyncRuns_Error(t *testing.T) {
	t.Parallel()

	_, api := humatest.New(t)
	handlers.RegisterSyncRunRoutes(api,
		handlers.NewSyncRunsHandler(&mockRunsProvider{err: errors.New("db down")}))

	resp := api.Get("/sync/runs")
	require.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Contains(t, resp.Body.String(), "listing sync runs failed: db down")
}

func TestListSyncRuns_MirrorDisabled(t *testing.T) {
	t.Parallel()

	_, api := humatest.New(t)
	handlers.RegisterSyncRunRoutes(api, handlers.NewSyncRunsHandler(nil))

	resp := api.Get("/sync/runs")
	require.Equal(t, http.StatusNotFound, resp.Code)
	assert.Contains(t, resp.Body.String(), "sales mirror disabled")
}

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/stubhub/internal/store"
	"github.com/donaldgifford/stubhub/internal/syncer"
)

// SyncRunsProvider defines the store method required by the runs handler.
type SyncRunsProvider interface {
	ListSyncRuns(ctx context.Context, job string, limit int) ([]store.SyncRun, error)
}

// SyncRunsHandler serves the sync run history.
type SyncRunsHandler struct {
	store SyncRunsProvider
}

// NewSyncRunsHandler creates a new SyncRunsHandler. A nil provider means the
// sales mirror is disabled.
func NewSyncRunsHandler(p SyncRunsProvider) *SyncRunsHandler {
	return &SyncRunsHandler{store: p}
}

// ListSyncRunsInput holds the query parameters for the runs endpoint.
type ListSyncRunsInput struct {
	Limit int `query:"limit" default:"20" minimum:"1" maximum:"500" doc:"Number of runs to return"`
}

// ListSyncRunsOutput is the response body for the runs endpoint.
type ListSyncRunsOutput struct {
	Body []store.SyncRun
}

// ListSyncRuns returns the most recent sales sync runs, newest first.
func (h *SyncRunsHandler) ListSyncRuns(
	ctx context.Context,
	input *ListSyncRunsInput,
) (*ListSyncRunsOutput, error) {
	if h.store == nil {
		return nil, huma.Error404NotFound("sales mirror disabled")
	}

	runs, err := h.store.ListSyncRuns(ctx, syncer.JobSales, input.Limit)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing sync runs failed: " + err.Error())
	}

	if runs == nil {
		runs = []store.SyncRun{}
	}

	return &ListSyncRunsOutput{Body: runs}, nil
}

// RegisterSyncRunRoutes registers the run history endpoint with the Huma API.
func RegisterSyncRunRoutes(api huma.API, h *SyncRunsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-sync-runs",
		Method:      http.MethodGet,
		Path:        "/sync/runs",
		Summary:     "List sales sync runs",
		Description: "Returns the most recent sales sync runs (newest first).",
		Tags:        []string{"sync"},
		Errors:      []int{http.StatusNotFound, http.StatusInternalServerError},
	}, h.ListSyncRuns)
}

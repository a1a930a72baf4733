package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/stubhub/internal/syncer"
)

// SyncRunner runs one refresh and sync cycle on demand.
type SyncRunner interface {
	RunNow(ctx context.Context) error
}

// SyncHandler handles manual sync trigger requests.
type SyncHandler struct {
	runner SyncRunner
}

// NewSyncHandler creates a new SyncHandler.
func NewSyncHandler(r SyncRunner) *SyncHandler {
	return &SyncHandler{runner: r}
}

// SyncOutput is the response body for the sync endpoint.
type SyncOutput struct {
	Body StatusResponse
}

// Sync runs a cycle and waits for it. The cycle is not cancelled when the
// client disconnects.
func (h *SyncHandler) Sync(ctx context.Context, _ *struct{}) (*SyncOutput, error) {
	err := h.runner.RunNow(context.WithoutCancel(ctx))
	switch {
	case errors.Is(err, syncer.ErrCycleRunning):
		return nil, huma.Error409Conflict("sync already running")
	case err != nil:
		return nil, huma.Error500InternalServerError("sync failed: " + err.Error())
	}

	return &SyncOutput{Body: StatusResponse{Status: "done"}}, nil
}

// RegisterSyncRoutes registers the trigger endpoint with the Huma API.
func RegisterSyncRoutes(api huma.API, h *SyncHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "trigger-sync",
		Method:      http.MethodPost,
		Path:        "/sync",
		Summary:     "Trigger a sync cycle",
		Description: "Refreshes the seller session and, when the sales mirror is " +
			"enabled, copies the seller's sales into the database.",
		Tags:   []string{"sync"},
		Errors: []int{http.StatusConflict, http.StatusInternalServerError},
	}, h.Sync)
}

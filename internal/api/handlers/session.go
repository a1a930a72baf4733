package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/stubhub/pkg/stubhub"
)

// SessionSource exposes the client's current session.
type SessionSource interface {
	Session() stubhub.Session
}

// SessionHandler serves a token-free view of the seller session.
type SessionHandler struct {
	source SessionSource
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(s SessionSource) *SessionHandler {
	return &SessionHandler{source: s}
}

// SessionView is the session summary. Tokens are never included.
type SessionView struct {
	Authenticated bool       `json:"authenticated"`
	UserID        string     `json:"user_id,omitempty"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
}

// SessionOutput is the response body for the session endpoint.
type SessionOutput struct {
	Body SessionView
}

// Summarize builds the view of s.
func Summarize(s stubhub.Session) SessionView {
	v := SessionView{Authenticated: s.Authenticated(), UserID: s.UserID}
	if exp := s.ExpiresAt(); !exp.IsZero() {
		v.ExpiresAt = &exp
	}
	return v
}

// Session returns the summary of the current session.
func (h *SessionHandler) Session(_ context.Context, _ *struct{}) (*SessionOutput, error) {
	return &SessionOutput{Body: Summarize(h.source.Session())}, nil
}

// RegisterSessionRoutes registers the session endpoint with the Huma API.
func RegisterSessionRoutes(api huma.API, h *SessionHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-session",
		Method:      http.MethodGet,
		Path:        "/session",
		Summary:     "Show the seller session",
		Description: "Reports whether a session is loaded, its user and when the access token expires.",
		Tags:        []string{"session"},
	}, h.Session)
}

// Package handlers implements the huma operations of the stubhub service:
// the manual sync trigger, sync run history and the session summary.
package handlers

// StatusResponse is a generic status response body.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

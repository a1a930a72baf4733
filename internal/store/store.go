// Package store persists what the StubHub client needs between runs: the
// seller session and, optionally, a local mirror of the seller's sales.
// Callers depend on the SessionStore and SalesStore interfaces so the sync
// job can be tested with mocks instead of a running database.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/donaldgifford/stubhub/pkg/stubhub"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("store: not found")

// Sync run statuses.
const (
	RunStatusRunning   = "running"
	RunStatusSucceeded = "succeeded"
	RunStatusFailed    = "failed"
	// RunStatusCrashed marks a run that was still running when the process
	// went away.
	RunStatusCrashed = "crashed"
)

// SessionStore persists seller sessions keyed by an account key, usually
// the application's consumer key.
type SessionStore interface {
	// LoadSession returns ErrNotFound when no session is stored for key.
	LoadSession(ctx context.Context, key string) (stubhub.Session, error)
	SaveSession(ctx context.Context, key string, s stubhub.Session) error
	DeleteSession(ctx context.Context, key string) error
}

// SalesStore mirrors the seller's sales and records sync runs.
type SalesStore interface {
	UpsertSales(ctx context.Context, records []SaleRecord) (int, error)
	// ExistingSaleIDs reports which of ids are already mirrored.
	ExistingSaleIDs(ctx context.Context, ids []string) (map[string]bool, error)
	ListSales(ctx context.Context, q *SalesQuery) ([]SaleRecord, int, error)

	InsertSyncRun(ctx context.Context, id, job string) error
	CompleteSyncRun(ctx context.Context, id, status, errText string, rowsAffected int) error
	ListSyncRuns(ctx context.Context, job string, limit int) ([]SyncRun, error)
	// RecoverStaleSyncRuns marks runs left running for longer than olderThan
	// as crashed and prunes old history. It returns the number marked.
	RecoverStaleSyncRuns(ctx context.Context, olderThan time.Duration) (int, error)

	Ping(ctx context.Context) error
}

// SaleRecord is one mirrored sale.
type SaleRecord struct {
	SaleID           string     `json:"sale_id"`
	SellerID         string     `json:"seller_id"`
	ListingID        int64      `json:"listing_id"`
	EventID          string     `json:"event_id"`
	EventDescription string     `json:"event_description,omitempty"`
	EventDate        *time.Time `json:"event_date,omitempty"`
	SaleDate         *time.Time `json:"sale_date,omitempty"`
	Status           string     `json:"status"`
	Quantity         int        `json:"quantity"`
	Section          string     `json:"section,omitempty"`
	Rows             string     `json:"rows,omitempty"`
	Seats            string     `json:"seats,omitempty"`
	DeliveryOption   string     `json:"delivery_option,omitempty"`
	PricePerTicket   float64    `json:"price_per_ticket"`
	Payout           float64    `json:"payout"`
	Currency         string     `json:"currency"`
	FirstSeenAt      time.Time  `json:"first_seen_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// SalesQuery defines optional filters for mirrored sales.
type SalesQuery struct {
	SellerID  *string
	ListingID *int64
	EventID   *string
	Status    *string
	Since     *time.Time
	Limit     int // default 50
	Offset    int
	OrderBy   string // "sale_date", "payout"
}

// SyncRun records one execution of a sync job.
type SyncRun struct {
	ID           string     `json:"id"`
	Job          string     `json:"job"`
	StartedAt    time.Time  `json:"started_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	Status       string     `json:"status"`
	ErrorText    string     `json:"error,omitempty"`
	RowsAffected int        `json:"rows_affected"`
}

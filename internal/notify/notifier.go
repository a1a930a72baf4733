// Package notify delivers notifications about newly mirrored sales.
package notify

import "context"

// SalePayload is what a notification shows about one sale. Values are
// preformatted for display.
type SalePayload struct {
	SaleID    string
	ListingID string
	Event     string
	EventDate string
	SaleDate  string
	Status    string
	Quantity  int
	Section   string
	Rows      string
	Seats     string
	Payout    string
}

// Notifier sends new-sale notifications.
type Notifier interface {
	NotifySale(ctx context.Context, sale *SalePayload) error
	NotifySales(ctx context.Context, sales []SalePayload) error
}

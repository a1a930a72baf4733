package syncer

import (
	"fmt"
	"strconv"
	"time"

	"github.com/donaldgifford/stubhub/internal/notify"
	"github.com/donaldgifford/stubhub/internal/store"
	"github.com/donaldgifford/stubhub/pkg/stubhub"
)

// saleDateLayouts are the timestamp shapes seen in sale records.
var saleDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.000-0700",
	"2006-01-02T15:04:05-0700",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseSaleDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range saleDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

func toRecord(sellerID string, s *stubhub.Sale) store.SaleRecord {
	r := store.SaleRecord{
		SaleID:           s.ID,
		SellerID:         sellerID,
		ListingID:        int64(s.ListingID),
		EventID:          s.EventID,
		EventDescription: s.EventDescription,
		EventDate:        parseSaleDate(s.EventDate),
		SaleDate:         parseSaleDate(s.SaleDate),
		Status:           s.Status,
		Quantity:         s.Quantity,
		Section:          s.Section,
		Rows:             s.Rows,
		Seats:            s.Seats,
		DeliveryOption:   s.DeliveryOption,
		Currency:         stubhub.DefaultCurrency,
	}
	if s.PricePerTicket != nil {
		r.PricePerTicket = s.PricePerTicket.Amount
		if s.PricePerTicket.Currency != "" {
			r.Currency = s.PricePerTicket.Currency
		}
	}
	if s.Payout != nil {
		r.Payout = s.Payout.Amount
	}
	return r
}

const displayTime = "2006-01-02 15:04"

func salePayload(r *store.SaleRecord) notify.SalePayload {
	p := notify.SalePayload{
		SaleID:   r.SaleID,
		Event:    r.EventDescription,
		Status:   r.Status,
		Quantity: r.Quantity,
		Section:  r.Section,
		Rows:     r.Rows,
		Seats:    r.Seats,
		Payout:   fmt.Sprintf("%.2f %s", r.Payout, r.Currency),
	}
	if r.ListingID != 0 {
		p.ListingID = strconv.FormatInt(r.ListingID, 10)
	}
	if r.EventDate != nil {
		p.EventDate = r.EventDate.Format(displayTime)
	}
	if r.SaleDate != nil {
		p.SaleDate = r.SaleDate.Format(displayTime)
	}
	return p
}

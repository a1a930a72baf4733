package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/donaldgifford/stubhub/pkg/stubhub"
)

const dateLayout = "2006-01-02"

func parseListingID(s string) (stubhub.ListingID, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid listing id %q", s)
	}
	return stubhub.ListingID(n), nil
}

func parseListingIDs(ss []string) ([]stubhub.ListingID, error) {
	ids := make([]stubhub.ListingID, 0, len(ss))
	for _, s := range ss {
		id, err := parseListingID(s)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", s)
	}
	return t, nil
}

// parseBarcode reads "row:seat:barcode" with an optional ":type" suffix.
func parseBarcode(s string) (stubhub.Barcode, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 3 || len(parts) > 4 {
		return stubhub.Barcode{}, fmt.Errorf("invalid barcode %q: want row:seat:barcode[:type]", s)
	}
	b := stubhub.Barcode{Row: parts[0], Seat: parts[1], Barcode: parts[2]}
	if len(parts) == 4 {
		b.Type = parts[3]
	}
	if b.Seat == "" || b.Barcode == "" {
		return stubhub.Barcode{}, fmt.Errorf("invalid barcode %q: seat and barcode are required", s)
	}
	return b, nil
}

func parseBarcodes(ss []string) ([]stubhub.Barcode, error) {
	out := make([]stubhub.Barcode, 0, len(ss))
	for _, s := range ss {
		b, err := parseBarcode(s)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

// parseTicketFile reads "row:seat:path". The path may itself contain colons.
func parseTicketFile(s string) (stubhub.TicketFile, error) {
	parts := strings.SplitN(s, ":", 3)
	if len(parts) != 3 || parts[1] == "" || parts[2] == "" {
		return stubhub.TicketFile{}, fmt.Errorf("invalid ticket %q: want row:seat:path", s)
	}
	return stubhub.TicketFile{Row: parts[0], Seat: parts[1], Path: parts[2]}, nil
}

func parsePriceMode(s string) (stubhub.PriceMode, error) {
	switch strings.ToLower(s) {
	case "listing", "":
		return stubhub.PriceModeListing, nil
	case "display":
		return stubhub.PriceModeDisplay, nil
	default:
		return 0, fmt.Errorf("invalid price mode %q: want listing or display", s)
	}
}

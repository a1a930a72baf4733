package stubhub

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	eventMetadataPath = "/inventory/eventmetadata/v1/event/"
	eventSearchPath   = "/search/catalog/events/v3"
	catalogEventPath  = "/catalog/events/v2/"

	searchDateLayout   = "2006-01-02T15:04"
	searchEventStatus  = "active |contingent"
	searchEventSort    = "eventDateLocal asc"
	defaultSearchLimit = 10
)

// EventSearch describes a catalog search. From and To are widened to whole
// days; leave both zero to search without a date range.
type EventSearch struct {
	Query string
	From  time.Time
	To    time.Time
	Start int
	Limit int
}

// dateRange formats the range as "2024-05-01T00:00 TO 2024-05-31T23:59".
func (s EventSearch) dateRange() (string, error) {
	if s.From.IsZero() && s.To.IsZero() {
		return "", nil
	}
	if s.From.IsZero() || s.To.IsZero() {
		return "", errors.New("event search needs both from and to dates")
	}

	from := time.Date(s.From.Year(), s.From.Month(), s.From.Day(), 0, 0, 0, 0, s.From.Location())
	to := time.Date(s.To.Year(), s.To.Month(), s.To.Day(), 23, 59, 0, 0, s.To.Location())
	if to.Before(from) {
		return "", fmt.Errorf("event search range ends (%s) before it starts (%s)",
			to.Format(inhandDateLayout), from.Format(inhandDateLayout))
	}
	return from.Format(searchDateLayout) + " TO " + to.Format(searchDateLayout), nil
}

// Metadata returns the inventory settings for an event: the traits and
// delivery types a listing may use, the delivery fee and whether venue
// details are hidden.
func (c *Client) Metadata(ctx context.Context, eventID string) (*EventMetadata, error) {
	if err := c.requireSession(); err != nil {
		return nil, err
	}

	var resp struct {
		Metadata EventMetadata `json:"InventoryEventMetaData"`
	}
	if err := c.get(ctx, eventMetadataPath+url.PathEscape(eventID), nil, &resp); err != nil {
		return nil, fmt.Errorf("getting event metadata %s: %w", eventID, err)
	}
	return &resp.Metadata, nil
}

// SearchEvents searches active and contingent events, earliest first.
func (c *Client) SearchEvents(ctx context.Context, s EventSearch) (*EventsPage, error) {
	if err := c.requireSession(); err != nil {
		return nil, err
	}

	dates, err := s.dateRange()
	if err != nil {
		return nil, err
	}

	limit := s.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	q := url.Values{}
	q.Set("q", s.Query)
	if dates != "" {
		q.Set("date", dates)
	}
	q.Set("status", searchEventStatus)
	q.Set("sort", searchEventSort)
	q.Set("start", strconv.Itoa(s.Start))
	q.Set("rows", strconv.Itoa(limit))

	var page EventsPage
	if err := c.get(ctx, eventSearchPath, q, &page); err != nil {
		return nil, fmt.Errorf("searching events: %w", err)
	}
	return &page, nil
}

// flexBool decodes true, "true", "Y" and 1 as true.
type flexBool bool

func (b *flexBool) UnmarshalJSON(data []byte) error {
	v := strings.ToLower(string(bytes.Trim(data, `"`)))
	switch v {
	case "true", "y", "yes", "1":
		*b = true
	case "false", "n", "no", "0", "", "null":
		*b = false
	default:
		return fmt.Errorf("invalid boolean %q", data)
	}
	return nil
}

// IsEventIntegrated reports whether the event's tickets are issued through
// an integrated primary ticketing system.
func (c *Client) IsEventIntegrated(ctx context.Context, eventID string) (bool, error) {
	if err := c.requireSession(); err != nil {
		return false, err
	}

	var resp struct {
		Integrated flexBool `json:"integrated"`
	}
	if err := c.get(ctx, catalogEventPath+url.PathEscape(eventID), nil, &resp); err != nil {
		return false, fmt.Errorf("getting event %s: %w", eventID, err)
	}
	return bool(resp.Integrated), nil
}

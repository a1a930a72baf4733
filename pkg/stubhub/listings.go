package stubhub

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	listingsPath       = "/inventory/listings/v1"
	sellerListingsPath = "/accountmanagement/listings/v1/seller/"

	inhandDateLayout = "2006-01-02"
)

// SplitOption controls how a listing may be split between buyers.
// SplitNoSingles never leaves a single ticket behind, SplitNone allows any
// split, and a positive value N sells only in multiples of N.
type SplitOption int

const (
	SplitNoSingles SplitOption = -1
	SplitNone      SplitOption = 0
)

// Wire values of the split option.
const (
	splitNoSingles = "NOSINGLES"
	splitNone      = "NONE"
	splitMultiples = "MULTIPLES"
)

// encode returns the vendor split option and, for multiples, the quantity.
func (o SplitOption) encode() (option string, quantity int, err error) {
	switch {
	case o == SplitNoSingles:
		return splitNoSingles, 0, nil
	case o == SplitNone:
		return splitNone, 0, nil
	case o > 0:
		return splitMultiples, int(o), nil
	default:
		return "", 0, fmt.Errorf("invalid split option %d", o)
	}
}

// ParseSplitOption accepts "no_singles", "none" or a positive integer.
func ParseSplitOption(s string) (SplitOption, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch v {
	case "no_singles", "nosingles", "-1":
		return SplitNoSingles, nil
	case "none", "", "0":
		return SplitNone, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid split option %q: want no_singles, none or a positive integer", s)
	}
	return SplitOption(n), nil
}

// ListingStatus filters seller listings.
type ListingStatus string

const (
	ListingStatusActive   ListingStatus = "ACTIVE"
	ListingStatusInactive ListingStatus = "INACTIVE"
)

// CreateListingParams describes a new listing. When Tickets is non-empty
// the listing is created with its barcodes attached.
type CreateListingParams struct {
	EventID        string
	Quantity       int
	Seats          string
	PricePerTicket float64
	DeliveryOption string
	Traits         []string
	Section        string
	Rows           string
	InhandDate     time.Time
	InternalNotes  string
	SplitOption    SplitOption
	Tickets        []Barcode
}

// UpdateListingParams holds the fields to change. Nil members are left
// untouched; a nil or empty Traits keeps the current traits.
type UpdateListingParams struct {
	Quantity       *int
	Seats          *string
	PricePerTicket *float64
	DeliveryOption *string
	Traits         []string
	InhandDate     *time.Time
	InternalNotes  *string
	SplitOption    *SplitOption
}

// ListingsFilter selects a page of the seller's listings.
type ListingsFilter struct {
	Start int
	Rows  int
	// Status defaults to ListingStatusActive.
	Status ListingStatus
}

// listingPayload is the vendor shape shared by create and update.
type listingPayload struct {
	EventID        string        `json:"eventId,omitempty"`
	Quantity       int           `json:"quantity,omitempty"`
	Section        string        `json:"section,omitempty"`
	Rows           string        `json:"rows,omitempty"`
	Seats          string        `json:"seats,omitempty"`
	PricePerTicket *Money        `json:"pricePerTicket,omitempty"`
	DeliveryOption string        `json:"deliveryOption,omitempty"`
	TicketTraits   []TicketTrait `json:"ticketTraits,omitempty"`
	InhandDate     string        `json:"inhandDate,omitempty"`
	InternalNotes  *string       `json:"internalNotes,omitempty"`
	SplitOption    string        `json:"splitOption,omitempty"`
	SplitQuantity  int           `json:"splitQuantity,omitempty"`
	Tickets        []Barcode     `json:"tickets,omitempty"`
}

type listingEnvelope struct {
	Listing listingPayload `json:"listing"`
}

type listingResponse struct {
	Listing Listing `json:"listing"`
}

func (p *listingPayload) setSplit(o SplitOption) error {
	option, qty, err := o.encode()
	if err != nil {
		return err
	}
	p.SplitOption = option
	p.SplitQuantity = qty
	return nil
}

func (p *listingPayload) setPrice(amount float64) {
	p.PricePerTicket = &Money{Amount: amount, Currency: DefaultCurrency}
}

func toTraits(ids []string) []TicketTrait {
	if len(ids) == 0 {
		return nil
	}
	traits := make([]TicketTrait, 0, len(ids))
	for _, id := range ids {
		traits = append(traits, TicketTrait{ID: id})
	}
	return traits
}

func (p CreateListingParams) payload() (listingPayload, error) {
	lp := listingPayload{
		EventID:        p.EventID,
		Quantity:       p.Quantity,
		Section:        p.Section,
		Rows:           p.Rows,
		Seats:          p.Seats,
		DeliveryOption: p.DeliveryOption,
		TicketTraits:   toTraits(p.Traits),
		Tickets:        p.Tickets,
	}
	if p.PricePerTicket > 0 {
		lp.setPrice(p.PricePerTicket)
	}
	if !p.InhandDate.IsZero() {
		lp.InhandDate = p.InhandDate.Format(inhandDateLayout)
	}
	if p.InternalNotes != "" {
		notes := p.InternalNotes
		lp.InternalNotes = &notes
	}
	if err := lp.setSplit(p.SplitOption); err != nil {
		return listingPayload{}, err
	}
	return lp, nil
}

func (p UpdateListingParams) payload() (listingPayload, error) {
	var lp listingPayload
	if p.Quantity != nil {
		lp.Quantity = *p.Quantity
	}
	if p.Seats != nil {
		lp.Seats = *p.Seats
	}
	if p.PricePerTicket != nil {
		lp.setPrice(*p.PricePerTicket)
	}
	if p.DeliveryOption != nil {
		lp.DeliveryOption = *p.DeliveryOption
	}
	lp.TicketTraits = toTraits(p.Traits)
	if p.InhandDate != nil {
		lp.InhandDate = p.InhandDate.Format(inhandDateLayout)
	}
	lp.InternalNotes = p.InternalNotes
	if p.SplitOption != nil {
		if err := lp.setSplit(*p.SplitOption); err != nil {
			return listingPayload{}, err
		}
	}
	return lp, nil
}

// CreateListing creates a listing and returns its id.
func (c *Client) CreateListing(ctx context.Context, p CreateListingParams) (ListingID, error) {
	if err := c.requireSession(); err != nil {
		return 0, err
	}

	lp, err := p.payload()
	if err != nil {
		return 0, err
	}

	path := listingsPath
	if len(p.Tickets) > 0 {
		path += "/barcodes"
	}

	var resp listingResponse
	if _, err := c.post(ctx, path, ContentTypeJSON, listingEnvelope{Listing: lp}, &resp); err != nil {
		return 0, fmt.Errorf("creating listing: %w", err)
	}
	return resp.Listing.ID, nil
}

// UpdateListing replaces the given fields of listing id and returns the id.
func (c *Client) UpdateListing(
	ctx context.Context,
	id ListingID,
	p UpdateListingParams,
) (ListingID, error) {
	if err := c.requireSession(); err != nil {
		return 0, err
	}

	lp, err := p.payload()
	if err != nil {
		return 0, err
	}

	if err := c.put(ctx, listingsPath+"/"+id.String(), listingEnvelope{Listing: lp}, nil); err != nil {
		return 0, fmt.Errorf("updating listing %d: %w", id, err)
	}
	return id, nil
}

// DeleteListing deletes listing id and returns the id the API confirmed.
func (c *Client) DeleteListing(ctx context.Context, id ListingID) (ListingID, error) {
	if err := c.requireSession(); err != nil {
		return 0, err
	}

	var resp listingResponse
	if err := c.del(ctx, listingsPath+"/"+id.String(), &resp); err != nil {
		return 0, fmt.Errorf("deleting listing %d: %w", id, err)
	}
	if resp.Listing.ID == 0 {
		return id, nil
	}
	return resp.Listing.ID, nil
}

// GetListing returns listing id.
func (c *Client) GetListing(ctx context.Context, id ListingID) (*Listing, error) {
	if err := c.requireSession(); err != nil {
		return nil, err
	}

	var resp listingResponse
	if err := c.get(ctx, listingsPath+"/"+id.String(), nil, &resp); err != nil {
		return nil, fmt.Errorf("getting listing %d: %w", id, err)
	}
	return &resp.Listing, nil
}

// GetListings returns one page of the seller's listings.
func (c *Client) GetListings(ctx context.Context, f ListingsFilter) (*ListingsPage, error) {
	userID, err := c.userID()
	if err != nil {
		return nil, err
	}

	status := f.Status
	if status == "" {
		status = ListingStatusActive
	}

	q := url.Values{}
	q.Set("start", strconv.Itoa(f.Start))
	if f.Rows > 0 {
		q.Set("rows", strconv.Itoa(f.Rows))
	}
	q.Set("filters", "STATUS:"+string(status))

	var resp struct {
		Listings ListingsPage `json:"listings"`
	}
	if err := c.get(ctx, sellerListingsPath+url.PathEscape(userID), q, &resp); err != nil {
		return nil, fmt.Errorf("listing seller listings: %w", err)
	}
	return &resp.Listings, nil
}

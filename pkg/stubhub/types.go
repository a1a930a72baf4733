package stubhub

import (
	"bytes"
	"fmt"
	"strconv"
)

// DefaultCurrency is the currency sent with every price.
const DefaultCurrency = "USD"

// ListingID identifies a listing. The API sends it as a number in some
// responses and as a string in others; both decode.
type ListingID int64

// UnmarshalJSON accepts 123 and "123".
func (id *ListingID) UnmarshalJSON(b []byte) error {
	b = bytes.Trim(b, `"`)
	if len(b) == 0 || string(b) == "null" {
		*id = 0
		return nil
	}
	n, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid listing id %q: %w", b, err)
	}
	*id = ListingID(n)
	return nil
}

func (id ListingID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// flexInt decodes integers that may arrive quoted, such as expires_in.
// Values that are not integers decode as zero.
type flexInt int64

func (n *flexInt) UnmarshalJSON(b []byte) error {
	v, err := strconv.ParseInt(string(bytes.Trim(b, `"`)), 10, 64)
	if err != nil {
		*n = 0
		return nil //nolint:nilerr // unknown lifetime, not a decode failure
	}
	*n = flexInt(v)
	return nil
}

// Money is an amount with its currency.
type Money struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// Listing is a listing as returned by the inventory endpoints.
type Listing struct {
	ID             ListingID     `json:"id"`
	EventID        string        `json:"eventId"`
	Status         string        `json:"status,omitempty"`
	Quantity       int           `json:"quantity"`
	QuantityRemain int           `json:"quantityRemain,omitempty"`
	Section        string        `json:"section,omitempty"`
	Rows           string        `json:"rows,omitempty"`
	Seats          string        `json:"seats,omitempty"`
	PricePerTicket *Money        `json:"pricePerTicket,omitempty"`
	DisplayPrice   *Money        `json:"displayPricePerTicket,omitempty"`
	DeliveryOption string        `json:"deliveryOption,omitempty"`
	SplitOption    string        `json:"splitOption,omitempty"`
	SplitQuantity  int           `json:"splitQuantity,omitempty"`
	InhandDate     string        `json:"inhandDate,omitempty"`
	InternalNotes  string        `json:"internalNotes,omitempty"`
	TicketTraits   []TicketTrait `json:"ticketTraits,omitempty"`
}

// TicketTrait references a listing trait (such as "Aisle" or "Parking
// included") by id. Name is populated on reads only.
type TicketTrait struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// ListingsPage is one page of a seller's listings.
type ListingsPage struct {
	NumFound int       `json:"numFound"`
	Listings []Listing `json:"listing"`
}

// Sale is one sale record of the seller.
type Sale struct {
	ID               string    `json:"saleId"`
	ListingID        ListingID `json:"listingId"`
	EventID          string    `json:"eventId"`
	EventDescription string    `json:"eventDescription,omitempty"`
	EventDate        string    `json:"eventDate,omitempty"`
	SaleDate         string    `json:"saleDate"`
	Status           string    `json:"status"`
	Quantity         int       `json:"quantity"`
	Section          string    `json:"section,omitempty"`
	Rows             string    `json:"rows,omitempty"`
	Seats            string    `json:"seats,omitempty"`
	DeliveryOption   string    `json:"deliveryOption,omitempty"`
	PricePerTicket   *Money    `json:"pricePerTicket,omitempty"`
	Payout           *Money    `json:"payout,omitempty"`
}

// SalesPage is one page of a seller's sales.
type SalesPage struct {
	NumFound int    `json:"numFound"`
	Sales    []Sale `json:"sale"`
}

// Event is a catalog event as returned by search.
type Event struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Status         string `json:"status"`
	EventDateLocal string `json:"eventDateLocal"`
	EventDateUTC   string `json:"eventDateUTC,omitempty"`
	Venue          *Venue `json:"venue,omitempty"`
	WebURI         string `json:"webURI,omitempty"`
}

// Venue is the venue of an event.
type Venue struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	City string `json:"city,omitempty"`
}

// EventsPage is one page of event search results.
type EventsPage struct {
	NumFound int     `json:"numFound"`
	Events   []Event `json:"events"`
}

// ListingAttribute is a trait a seller may attach to listings for an event.
type ListingAttribute struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	CategoryID string `json:"listingAttributeCategoryId,omitempty"`
}

// DeliveryType is a delivery method offered for an event.
type DeliveryType struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// EventMetadata holds the per-event inventory settings.
type EventMetadata struct {
	ListingAttributes    []ListingAttribute `json:"listingAttributeList"`
	DeliveryTypes        []DeliveryType     `json:"deliveryTypeList"`
	DeliveryFeePerTicket *Money             `json:"deliveryFeePerTicket,omitempty"`
	VenueDetailsHidden   bool               `json:"venueConfigDetailsHidden"`
}

// Barcode is one seat's barcode. Type is only sent for order deliveries.
type Barcode struct {
	Row     string `json:"row"`
	Seat    string `json:"seat"`
	Barcode string `json:"barcode"`
	Type    string `json:"type,omitempty"`
}

// TicketFile pairs a seat with the ticket file to upload for it.
type TicketFile struct {
	Row  string
	Seat string
	Path string
}

// Airbill is the shipping label issued for an order.
type Airbill struct {
	TrackingNumber string `json:"trackingNumber"`
	// PDF is the label document. The API sends it base64 encoded.
	PDF []byte `json:"airbillPdf"`
}

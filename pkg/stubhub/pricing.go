package stubhub

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
)

const pricePath = "/pricing/aip/v1/price"

// PriceMode selects which price GetPrice reads back.
type PriceMode int

const (
	// PriceModeListing converts a buyer-facing display price into the
	// seller's listing price.
	PriceModeListing PriceMode = iota
	// PriceModeDisplay converts a listing price into the display price
	// buyers see.
	PriceModeDisplay
)

// amountType is the vendor name of the price the request amount represents,
// which is the opposite of the one being asked for.
func (m PriceMode) amountType() string {
	if m == PriceModeDisplay {
		return "LISTING_PRICE"
	}
	return "DISPLAY_PRICE"
}

// PriceRequest asks for one price conversion.
type PriceRequest struct {
	ListingID ListingID
	EventID   string
	Amount    float64
	Mode      PriceMode
}

type priceRequestItem struct {
	ListingID       ListingID `json:"listingId,omitempty"`
	EventID         string    `json:"eventId,omitempty"`
	AmountPerTicket Money     `json:"amountPerTicket"`
	AmountType      string    `json:"amountType"`
}

type priceRequestBody struct {
	PriceRequestList struct {
		PriceRequest []priceRequestItem `json:"priceRequest"`
	} `json:"priceRequestList"`
}

type priceResponseItem struct {
	ListingPrice *Money `json:"listingPrice"`
	DisplayPrice *Money `json:"displayPrice"`
}

type priceResponseBody struct {
	PriceResponseList *struct {
		// PriceResponse is normally a list but single results have been
		// seen as a bare object.
		PriceResponse json.RawMessage `json:"priceResponse"`
	} `json:"priceResponseList"`
}

// GetPrice submits a single price request and returns the converted price.
// It returns nil, nil when the response carries no price for the request.
func (c *Client) GetPrice(ctx context.Context, p PriceRequest) (*Money, error) {
	if err := c.requireSession(); err != nil {
		return nil, err
	}

	var body priceRequestBody
	body.PriceRequestList.PriceRequest = []priceRequestItem{{
		ListingID:       p.ListingID,
		EventID:         p.EventID,
		AmountPerTicket: Money{Amount: p.Amount, Currency: DefaultCurrency},
		AmountType:      p.Mode.amountType(),
	}}

	var resp priceResponseBody
	if _, err := c.post(ctx, pricePath, ContentTypeJSON, body, &resp); err != nil {
		return nil, fmt.Errorf("getting price: %w", err)
	}

	item := firstPriceResponse(resp)
	if item == nil {
		return nil, nil
	}
	if p.Mode == PriceModeDisplay {
		return item.DisplayPrice, nil
	}
	return item.ListingPrice, nil
}

func firstPriceResponse(resp priceResponseBody) *priceResponseItem {
	if resp.PriceResponseList == nil {
		return nil
	}
	raw := bytes.TrimSpace(resp.PriceResponseList.PriceResponse)
	if len(raw) == 0 {
		return nil
	}

	switch raw[0] {
	case '[':
		var items []priceResponseItem
		if err := json.Unmarshal(raw, &items); err != nil || len(items) == 0 {
			return nil
		}
		return &items[0]
	case '{':
		var item priceResponseItem
		if err := json.Unmarshal(raw, &item); err != nil {
			return nil
		}
		return &item
	default:
		return nil
	}
}

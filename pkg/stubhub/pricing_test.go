package stubhub_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/stubhub/pkg/stubhub"
)

func TestClient_GetPrice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		req        stubhub.PriceRequest
		wantBody   string
		respBody   string
		wantPrice  *stubhub.Money
		wantAbsent bool
	}{
		{
			name: "listing price from display price",
			req:  stubhub.PriceRequest{ListingID: 42, Amount: 100, Mode: stubhub.PriceModeListing},
			wantBody: `{"priceRequestList":{"priceRequest":[{
				"listingId":42,
				"amountPerTicket":{"amount":100,"currency":"USD"},
				"amountType":"DISPLAY_PRICE"
			}]}}`,
			respBody: `{"priceResponseList":{"priceResponse":[{
				"listingPrice":{"amount":85,"currency":"USD"},
				"displayPrice":{"amount":100,"currency":"USD"}
			}]}}`,
			wantPrice: &stubhub.Money{Amount: 85, Currency: "USD"},
		},
		{
			name: "display price from listing price",
			req:  stubhub.PriceRequest{EventID: "9", Amount: 85, Mode: stubhub.PriceModeDisplay},
			wantBody: `{"priceRequestList":{"priceRequest":[{
				"eventId":"9",
				"amountPerTicket":{"amount":85,"currency":"USD"},
				"amountType":"LISTING_PRICE"
			}]}}`,
			respBody: `{"priceResponseList":{"priceResponse":{
				"listingPrice":{"amount":85,"currency":"USD"},
				"displayPrice":{"amount":100,"currency":"USD"}
			}}}`,
			wantPrice: &stubhub.Money{Amount: 100, Currency: "USD"},
		},
		{
			name:       "missing response list",
			req:        stubhub.PriceRequest{ListingID: 1, Amount: 10},
			respBody:   `{}`,
			wantAbsent: true,
		},
		{
			name:       "empty response array",
			req:        stubhub.PriceRequest{ListingID: 1, Amount: 10},
			respBody:   `{"priceResponseList":{"priceResponse":[]}}`,
			wantAbsent: true,
		},
		{
			name:       "missing price object",
			req:        stubhub.PriceRequest{ListingID: 1, Amount: 10},
			respBody:   `{"priceResponseList":{"priceResponse":[{"displayPrice":{"amount":12,"currency":"USD"}}]}}`,
			wantAbsent: true,
		},
		{
			name:       "unexpected shape",
			req:        stubhub.PriceRequest{ListingID: 1, Amount: 10},
			respBody:   `{"priceResponseList":{"priceResponse":"n/a"}}`,
			wantAbsent: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/pricing/aip/v1/price", r.URL.Path)
				body := readBody(t, r)
				if tt.wantBody != "" {
					assert.JSONEq(t, tt.wantBody, body)
				}
				writeJSON(w, tt.respBody)
			})

			price, err := c.GetPrice(context.Background(), tt.req)

			require.NoError(t, err)
			if tt.wantAbsent {
				assert.Nil(t, price)
				return
			}
			assert.Equal(t, tt.wantPrice, price)
		})
	}
}

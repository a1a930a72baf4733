package stubhub_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/stubhub/pkg/stubhub"
)

func TestClient_Sales(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		filter      stubhub.SalesFilter
		wantFilters string
		wantRows    string
	}{
		{
			name:   "no filters",
			filter: stubhub.SalesFilter{},
		},
		{
			name:        "listing ids",
			filter:      stubhub.SalesFilter{ListingIDs: []stubhub.ListingID{1, 2}},
			wantFilters: "LISTINGIDS:1,2",
		},
		{
			name:        "status",
			filter:      stubhub.SalesFilter{Status: "pending"},
			wantFilters: "STATUS:PENDING",
		},
		{
			name: "listing ids and status",
			filter: stubhub.SalesFilter{
				ListingIDs: []stubhub.ListingID{1, 2},
				Status:     "CONFIRMED",
				Rows:       25,
			},
			wantFilters: "LISTINGIDS:1,2 AND STATUS:CONFIRMED",
			wantRows:    "25",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/accountmanagement/sales/v1/seller/"+testUserID, r.URL.Path)
				q := r.URL.Query()
				assert.Equal(t, "SALEDATE desc", q.Get("sort"))
				assert.Equal(t, tt.wantFilters, q.Get("filters"))
				assert.Equal(t, tt.wantRows, q.Get("rows"))
				writeJSON(w, `{"sales":{"numFound":1,"sale":[{
					"saleId":"9001",
					"listingId":"1",
					"eventId":"55",
					"saleDate":"2025-02-01T10:00:00Z",
					"status":"CONFIRMED",
					"quantity":2,
					"payout":{"amount":180.5,"currency":"USD"}
				}]}}`)
			})

			page, err := c.Sales(context.Background(), tt.filter)

			require.NoError(t, err)
			assert.Equal(t, 1, page.NumFound)
			require.Len(t, page.Sales, 1)
			sale := page.Sales[0]
			assert.Equal(t, "9001", sale.ID)
			assert.Equal(t, stubhub.ListingID(1), sale.ListingID)
			require.NotNil(t, sale.Payout)
			assert.InDelta(t, 180.5, sale.Payout.Amount, 0.001)
		})
	}
}

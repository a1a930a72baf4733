package stubhub

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const (
	sellerSalesPath = "/accountmanagement/sales/v1/seller/"
	salesSort       = "SALEDATE desc"
)

// SalesFilter narrows the seller's sales. Filters combine with AND.
type SalesFilter struct {
	ListingIDs []ListingID
	Status     string
	Start      int
	Rows       int
}

func (f SalesFilter) filters() string {
	var parts []string
	if len(f.ListingIDs) > 0 {
		ids := make([]string, 0, len(f.ListingIDs))
		for _, id := range f.ListingIDs {
			ids = append(ids, id.String())
		}
		parts = append(parts, "LISTINGIDS:"+strings.Join(ids, ","))
	}
	if f.Status != "" {
		parts = append(parts, "STATUS:"+strings.ToUpper(f.Status))
	}
	return strings.Join(parts, " AND ")
}

// Sales returns the seller's sales, newest first.
func (c *Client) Sales(ctx context.Context, f SalesFilter) (*SalesPage, error) {
	userID, err := c.userID()
	if err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("sort", salesSort)
	if filters := f.filters(); filters != "" {
		q.Set("filters", filters)
	}
	if f.Start > 0 {
		q.Set("start", strconv.Itoa(f.Start))
	}
	if f.Rows > 0 {
		q.Set("rows", strconv.Itoa(f.Rows))
	}

	var resp struct {
		Sales SalesPage `json:"sales"`
	}
	if err := c.get(ctx, sellerSalesPath+url.PathEscape(userID), q, &resp); err != nil {
		return nil, fmt.Errorf("listing sales: %w", err)
	}
	return &resp.Sales, nil
}

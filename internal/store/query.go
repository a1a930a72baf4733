package store

import (
	"fmt"
	"strings"
)

const (
	defaultLimit = 50
	maxLimit     = 500

	orderBySaleDate = "sale_date"
	orderByPayout   = "payout"
)

// validOrderBy maps allowed OrderBy values to their SQL column expressions.
var validOrderBy = map[string]string{
	orderBySaleDate: "sale_date DESC NULLS LAST",
	orderByPayout:   "payout DESC",
}

const defaultOrderBy = "sale_date DESC NULLS LAST"

const baseSalesSelect = `SELECT sale_id, seller_id, listing_id, event_id, event_description,
	event_date, sale_date, status, quantity, section, seat_rows, seats, delivery_option,
	price_per_ticket::float8, payout::float8, currency, first_seen_at, updated_at
FROM sales`

const countSalesSelect = "SELECT COUNT(*) FROM sales"

// ToSQL builds the WHERE clause, ORDER BY, LIMIT, and OFFSET for a sales query.
// It returns two SQL strings (one for the data query, one for the count query)
// and the positional parameters.
func (q *SalesQuery) ToSQL() (dataSQL, countSQL string, args []any) {
	var conditions []string
	paramIdx := 1

	add := func(expr string, v any) {
		conditions = append(conditions, fmt.Sprintf(expr, paramIdx))
		args = append(args, v)
		paramIdx++
	}

	if q.SellerID != nil {
		add("seller_id = $%d", *q.SellerID)
	}
	if q.ListingID != nil {
		add("listing_id = $%d", *q.ListingID)
	}
	if q.EventID != nil {
		add("event_id = $%d", *q.EventID)
	}
	if q.Status != nil {
		add("status = $%d", strings.ToUpper(*q.Status))
	}
	if q.Since != nil {
		add("sale_date >= $%d", *q.Since)
	}

	var whereClause string
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	orderClause := defaultOrderBy
	if col, ok := validOrderBy[q.OrderBy]; ok {
		orderClause = col
	}

	limit := q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	offset := max(q.Offset, 0)

	dataSQL = fmt.Sprintf(
		"%s%s ORDER BY %s LIMIT %d OFFSET %d",
		baseSalesSelect, whereClause, orderClause, limit, offset,
	)

	countSQL = countSalesSelect + whereClause

	return dataSQL, countSQL, args
}

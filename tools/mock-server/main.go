// Package main implements a mock StubHub API server for local development.
// It keeps listings in memory and serves canned sales, events and pricing so
// the stubhub CLI can be exercised without real seller credentials.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	mockUserID      = "mock-seller"
	userGUIDHeader  = "X-StubHub-User-GUID"
	defaultPageRows = 100
	feeRate         = 0.1
	firstListingID  = 1000001
)

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	sales := flag.Int("sales", 25, "number of canned sales to serve")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock StubHub server", "addr", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, newMarketplace(logger, *sales).routes()),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

type money struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

type listing struct {
	ID             int64  `json:"id"`
	EventID        string `json:"eventId"`
	Status         string `json:"status"`
	Quantity       int    `json:"quantity"`
	QuantityRemain int    `json:"quantityRemain"`
	Section        string `json:"section,omitempty"`
	Rows           string `json:"rows,omitempty"`
	Seats          string `json:"seats,omitempty"`
	PricePerTicket *money `json:"pricePerTicket,omitempty"`
	DeliveryOption string `json:"deliveryOption,omitempty"`
	SplitOption    string `json:"splitOption,omitempty"`
	SplitQuantity  int    `json:"splitQuantity,omitempty"`
	InternalNotes  string `json:"internalNotes,omitempty"`
}

type sale struct {
	ID             string `json:"saleId"`
	ListingID      string `json:"listingId"`
	EventID        string `json:"eventId"`
	SaleDate       string `json:"saleDate"`
	Status         string `json:"status"`
	Quantity       int    `json:"quantity"`
	PricePerTicket money  `json:"pricePerTicket"`
	Payout         money  `json:"payout"`
}

// marketplace is the in-memory state behind the mock endpoints.
type marketplace struct {
	log *slog.Logger

	mu       sync.Mutex
	nextID   int64
	listings map[int64]*listing
	sales    []sale
}

func newMarketplace(logger *slog.Logger, numSales int) *marketplace {
	m := &marketplace{
		log:      logger,
		nextID:   firstListingID,
		listings: map[int64]*listing{},
	}
	base := time.Date(2025, 3, 1, 18, 0, 0, 0, time.UTC)
	for i := range numSales {
		m.sales = append(m.sales, sale{
			ID:             strconv.Itoa(500000 + i),
			ListingID:      strconv.Itoa(1000000 - i),
			EventID:        "9001",
			SaleDate:       base.Add(-time.Duration(i) * time.Hour).Format("2006-01-02T15:04:05.000-0700"),
			Status:         "CONFIRMED",
			Quantity:       2,
			PricePerTicket: money{Amount: 50, Currency: "USD"},
			Payout:         money{Amount: 90, Currency: "USD"},
		})
	}
	return m
}

func (m *marketplace) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /login", m.login)
	mux.HandleFunc("POST /inventory/listings/v1", m.createListing)
	mux.HandleFunc("POST /inventory/listings/v1/barcodes", m.createListing)
	mux.HandleFunc("GET /inventory/listings/v1/{id}", m.requireToken(m.getListing))
	mux.HandleFunc("PUT /inventory/listings/v1/{id}", m.requireToken(m.updateListing))
	mux.HandleFunc("DELETE /inventory/listings/v1/{id}", m.requireToken(m.deleteListing))
	mux.HandleFunc("POST /inventory/listings/v1/{id}/barcodes", m.requireToken(m.accept))
	mux.HandleFunc("GET /accountmanagement/listings/v1/seller/{user}", m.requireToken(m.sellerListings))
	mux.HandleFunc("GET /accountmanagement/sales/v1/seller/{user}", m.requireToken(m.sellerSales))
	mux.HandleFunc("POST /pricing/aip/v1/price", m.requireToken(m.price))
	mux.HandleFunc("GET /inventory/eventmetadata/v1/event/{id}", m.requireToken(m.metadata))
	mux.HandleFunc("GET /search/catalog/events/v3", m.requireToken(m.searchEvents))
	mux.HandleFunc("GET /catalog/events/v2/{id}", m.requireToken(m.catalogEvent))
	mux.HandleFunc("POST /fulfillment/", m.requireToken(m.accept))
	return mux
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, description string) {
	writeJSON(w, status, map[string]string{"code": code, "description": description})
}

// requireToken rejects requests without a bearer token. Tokens are not
// verified.
func (m *marketplace) requireToken(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ") {
			writeError(w, http.StatusUnauthorized, "unauthorized", "missing bearer token")
			return
		}
		next(w, r)
	}
}

func (m *marketplace) login(w http.ResponseWriter, r *http.Request) {
	if _, _, ok := r.BasicAuth(); !ok {
		m.log.Warn("login request missing Basic Auth header")
		writeError(w, http.StatusUnauthorized, "invalid_client", "client authentication failed")
		return
	}
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	switch r.PostForm.Get("grant_type") {
	case "password":
		if r.PostForm.Get("username") == "" || r.PostForm.Get("password") == "" {
			writeError(w, http.StatusBadRequest, "invalid_grant", "username and password required")
			return
		}
	case "refresh_token":
		if r.PostForm.Get("refresh_token") == "" {
			writeError(w, http.StatusBadRequest, "invalid_grant", "refresh token required")
			return
		}
	default:
		writeError(w, http.StatusBadRequest, "unsupported_grant_type", "unsupported grant type")
		return
	}

	suffix := strconv.FormatInt(time.Now().UnixNano(), 16)
	w.Header().Set(userGUIDHeader, mockUserID)
	writeJSON(w, http.StatusOK, map[string]any{
		"access_token":  "mock-access-" + suffix,
		"refresh_token": "mock-refresh-" + suffix,
		"expires_in":    "15552000",
		"token_type":    "bearer",
	})
	m.log.Info("issued mock session", "grant_type", r.PostForm.Get("grant_type"))
}

func (m *marketplace) createListing(w http.ResponseWriter, r *http.Request) {
	if !strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ") {
		writeError(w, http.StatusUnauthorized, "unauthorized", "missing bearer token")
		return
	}

	var body struct {
		Listing listing `json:"listing"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	if body.Listing.EventID == "" || body.Listing.Quantity <= 0 {
		writeError(w, http.StatusBadRequest, "invalid_listing", "eventId and quantity are required")
		return
	}

	m.mu.Lock()
	l := body.Listing
	l.ID = m.nextID
	l.Status = "ACTIVE"
	l.QuantityRemain = l.Quantity
	m.nextID++
	m.listings[l.ID] = &l
	m.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{"listing": map[string]any{"id": strconv.FormatInt(l.ID, 10)}})
	m.log.Info("created listing", "id", l.ID, "event", l.EventID)
}

// lookup returns the listing named by the {id} path value, writing a 404
// when it does not exist.
func (m *marketplace) lookup(w http.ResponseWriter, r *http.Request) *listing {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_listing_id", "listing id must be numeric")
		return nil
	}
	l, ok := m.listings[id]
	if !ok {
		writeError(w, http.StatusNotFound, "listing_not_found", "listing not found")
		return nil
	}
	return l
}

func (m *marketplace) getListing(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if l := m.lookup(w, r); l != nil {
		writeJSON(w, http.StatusOK, map[string]any{"listing": l})
	}
}

func (m *marketplace) updateListing(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Listing listing `json:"listing"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	l := m.lookup(w, r)
	if l == nil {
		return
	}
	u := body.Listing
	if u.Quantity > 0 {
		l.Quantity, l.QuantityRemain = u.Quantity, u.Quantity
	}
	if u.Seats != "" {
		l.Seats = u.Seats
	}
	if u.PricePerTicket != nil {
		l.PricePerTicket = u.PricePerTicket
	}
	if u.DeliveryOption != "" {
		l.DeliveryOption = u.DeliveryOption
	}
	if u.SplitOption != "" {
		l.SplitOption, l.SplitQuantity = u.SplitOption, u.SplitQuantity
	}
	if u.InternalNotes != "" {
		l.InternalNotes = u.InternalNotes
	}
	w.WriteHeader(http.StatusNoContent)
}

func (m *marketplace) deleteListing(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	defer m.mu.Unlock()

	l := m.lookup(w, r)
	if l == nil {
		return
	}
	l.Status = "DELETED"
	writeJSON(w, http.StatusOK, map[string]any{"listing": map[string]any{"id": l.ID}})
}

// page parses start and rows, clamping them to the collection size.
func page(r *http.Request, total int) (start, end int) {
	start, _ = strconv.Atoi(r.URL.Query().Get("start"))
	rows, err := strconv.Atoi(r.URL.Query().Get("rows"))
	if err != nil || rows <= 0 {
		rows = defaultPageRows
	}
	start = min(max(start, 0), total)
	return start, min(start+rows, total)
}

func (m *marketplace) sellerListings(w http.ResponseWriter, r *http.Request) {
	status := strings.TrimPrefix(r.URL.Query().Get("filters"), "STATUS:")

	m.mu.Lock()
	matched := make([]listing, 0, len(m.listings))
	for id := m.nextID - 1; id >= firstListingID; id-- {
		l := m.listings[id]
		if status == "" || l.Status == status {
			matched = append(matched, *l)
		}
	}
	m.mu.Unlock()

	start, end := page(r, len(matched))
	writeJSON(w, http.StatusOK, map[string]any{
		"listings": map[string]any{"numFound": len(matched), "listing": matched[start:end]},
	})
}

func (m *marketplace) sellerSales(w http.ResponseWriter, r *http.Request) {
	if r.PathValue("user") != mockUserID {
		writeError(w, http.StatusForbidden, "forbidden", "unknown seller")
		return
	}
	start, end := page(r, len(m.sales))
	writeJSON(w, http.StatusOK, map[string]any{
		"sales": map[string]any{"numFound": len(m.sales), "sale": m.sales[start:end]},
	})
	m.log.Info("sales", "start", start, "returned", end-start)
}

func (m *marketplace) price(w http.ResponseWriter, r *http.Request) {
	var body struct {
		PriceRequestList struct {
			PriceRequest []struct {
				AmountPerTicket money  `json:"amountPerTicket"`
				AmountType      string `json:"amountType"`
			} `json:"priceRequest"`
		} `json:"priceRequestList"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	out := make([]map[string]money, 0, len(body.PriceRequestList.PriceRequest))
	for _, pr := range body.PriceRequestList.PriceRequest {
		amt, cur := pr.AmountPerTicket.Amount, pr.AmountPerTicket.Currency
		listingPrice, displayPrice := amt, amt*(1+feeRate)
		if pr.AmountType == "DISPLAY_PRICE" {
			listingPrice, displayPrice = amt/(1+feeRate), amt
		}
		out = append(out, map[string]money{
			"listingPrice": {Amount: listingPrice, Currency: cur},
			"displayPrice": {Amount: displayPrice, Currency: cur},
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"priceResponseList": map[string]any{"priceResponse": out},
	})
}

func (m *marketplace) metadata(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"InventoryEventMetaData": map[string]any{
			"listingAttributeList": []map[string]string{
				{"id": "101", "name": "Aisle", "listingAttributeCategoryId": "1"},
				{"id": "102", "name": "Obstructed view", "listingAttributeCategoryId": "2"},
			},
			"deliveryTypeList": []map[string]string{
				{"id": "1", "name": "Electronic"},
				{"id": "2", "name": "UPS"},
			},
			"deliveryFeePerTicket":     money{Amount: 2.5, Currency: "USD"},
			"venueConfigDetailsHidden": false,
			"eventId":                  r.PathValue("id"),
		},
	})
}

func (m *marketplace) searchEvents(w http.ResponseWriter, r *http.Request) {
	q := strings.ToLower(r.URL.Query().Get("q"))
	events := []map[string]any{
		{"id": 9001, "name": "Mock Band World Tour", "status": "Active", "eventDateLocal": "2025-06-01T20:00:00-07:00", "venue": map[string]any{"id": 1, "name": "Mock Arena"}},
		{"id": 9002, "name": "Mock City FC vs Example United", "status": "Active", "eventDateLocal": "2025-06-08T15:00:00-07:00", "venue": map[string]any{"id": 2, "name": "Mock Stadium"}},
	}

	matched := make([]map[string]any, 0, len(events))
	for _, ev := range events {
		name, _ := ev["name"].(string)
		if q == "" || strings.Contains(strings.ToLower(name), q) {
			matched = append(matched, ev)
		}
	}
	start, end := page(r, len(matched))
	writeJSON(w, http.StatusOK, map[string]any{"numFound": len(matched), "events": matched[start:end]})
}

func (m *marketplace) catalogEvent(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"id":         r.PathValue("id"),
		"integrated": r.PathValue("id") == "9001",
	})
}

// accept answers fulfillment uploads. Shipping labels get a tiny PDF.
func (m *marketplace) accept(w http.ResponseWriter, r *http.Request) {
	if strings.HasSuffix(r.URL.Path, "/shipping/v1/labels") {
		writeJSON(w, http.StatusOK, map[string]any{
			"delivery": map[string]any{
				"trackingNumber": "1Z999AA10123456784",
				"airbillPdf":     []byte("%PDF-1.4 mock"),
			},
		})
		return
	}
	w.WriteHeader(http.StatusOK)
}

package stubhub_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/stubhub/pkg/stubhub"
)

const (
	testConsumerKey    = "foo_key"
	testConsumerSecret = "foo_secret"
	testAccessToken    = "access_token"
	testUserID         = "userid"
)

// newTestClient starts srv with h and returns a client pointed at it that
// already holds a session.
func newTestClient(t *testing.T, h http.HandlerFunc, opts ...stubhub.Option) *stubhub.Client {
	t.Helper()

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	opts = append([]stubhub.Option{stubhub.WithBaseURL(srv.URL)}, opts...)
	c := stubhub.New(testConsumerKey, testConsumerSecret, opts...)
	c.SetSession(stubhub.Session{AccessToken: testAccessToken, UserID: testUserID})
	return c
}

func writeJSON(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(body))
}

func readBody(t *testing.T, r *http.Request) string {
	t.Helper()
	b, err := io.ReadAll(r.Body)
	assert.NoError(t, err)
	return string(b)
}

func TestNew(t *testing.T) {
	t.Parallel()

	c := stubhub.New(testConsumerKey, testConsumerSecret)

	require.NotNil(t, c)
	assert.False(t, c.Authenticated())
	assert.Equal(t, stubhub.Session{}, c.Session())
	assert.False(t, c.Sandbox())
}

func TestClient_SetSession(t *testing.T) {
	t.Parallel()

	c := stubhub.New(testConsumerKey, testConsumerSecret)
	c.SetSession(stubhub.Session{AccessToken: "foo", UserID: "bar"})

	assert.True(t, c.Authenticated())
	assert.Equal(t, "bar", c.Session().UserID)

	c.SetSandbox(true)
	assert.True(t, c.Sandbox())
}

func TestClient_RequiresSession(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		writeJSON(w, `{}`)
	}))
	defer srv.Close()

	c := stubhub.New(testConsumerKey, testConsumerSecret, stubhub.WithBaseURL(srv.URL))
	ctx := context.Background()

	ops := map[string]func() error{
		"create listing": func() error {
			_, err := c.CreateListing(ctx, stubhub.CreateListingParams{EventID: "1", Quantity: 1})
			return err
		},
		"update listing": func() error {
			_, err := c.UpdateListing(ctx, 1, stubhub.UpdateListingParams{})
			return err
		},
		"delete listing": func() error {
			_, err := c.DeleteListing(ctx, 1)
			return err
		},
		"get listing": func() error {
			_, err := c.GetListing(ctx, 1)
			return err
		},
		"get listings": func() error {
			_, err := c.GetListings(ctx, stubhub.ListingsFilter{})
			return err
		},
		"sales": func() error {
			_, err := c.Sales(ctx, stubhub.SalesFilter{})
			return err
		},
		"price": func() error {
			_, err := c.GetPrice(ctx, stubhub.PriceRequest{ListingID: 1, Amount: 10})
			return err
		},
		"metadata": func() error {
			_, err := c.Metadata(ctx, "1")
			return err
		},
		"search events": func() error {
			_, err := c.SearchEvents(ctx, stubhub.EventSearch{Query: "x"})
			return err
		},
		"integrated": func() error {
			_, err := c.IsEventIntegrated(ctx, "1")
			return err
		},
		"predeliver barcodes": func() error {
			return c.PredeliverBarcodes(ctx, 1, []stubhub.Barcode{{Row: "1", Seat: "1", Barcode: "x"}})
		},
		"deliver barcodes": func() error {
			return c.DeliverBarcodes(ctx, "o1", []stubhub.Barcode{{Row: "1", Seat: "1", Barcode: "x"}})
		},
		"predeliver": func() error {
			return c.Predeliver(ctx, 1, "1", "1", "missing.pdf")
		},
		"deliver": func() error {
			return c.Deliver(ctx, "o1", []stubhub.TicketFile{{Row: "1", Seat: "1", Path: "missing.pdf"}})
		},
		"airbill": func() error {
			_, err := c.GetAirbill(ctx, "o1")
			return err
		},
	}

	for name, op := range ops {
		err := op()
		require.ErrorIs(t, err, stubhub.ErrNotAuthenticated, name)
	}
	assert.Equal(t, int32(0), calls.Load())
}

func TestClient_MissingUserID(t *testing.T) {
	t.Parallel()

	c := stubhub.New(testConsumerKey, testConsumerSecret)
	c.SetSession(stubhub.Session{AccessToken: "foo"})

	_, err := c.GetListings(context.Background(), stubhub.ListingsFilter{})
	require.ErrorIs(t, err, stubhub.ErrMissingUserID)

	_, err = c.Sales(context.Background(), stubhub.SalesFilter{})
	require.ErrorIs(t, err, stubhub.ErrMissingUserID)
}

func TestClient_APIErrorPerMethod(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		method string
		status int
		call   func(*stubhub.Client) error
	}{
		{
			name:   "get",
			method: http.MethodGet,
			status: http.StatusNotFound,
			call: func(c *stubhub.Client) error {
				_, err := c.GetListing(context.Background(), 42)
				return err
			},
		},
		{
			name:   "post",
			method: http.MethodPost,
			status: http.StatusBadRequest,
			call: func(c *stubhub.Client) error {
				_, err := c.CreateListing(context.Background(), stubhub.CreateListingParams{EventID: "1"})
				return err
			},
		},
		{
			name:   "put",
			method: http.MethodPut,
			status: http.StatusConflict,
			call: func(c *stubhub.Client) error {
				_, err := c.UpdateListing(context.Background(), 42, stubhub.UpdateListingParams{})
				return err
			},
		},
		{
			name:   "delete",
			method: http.MethodDelete,
			status: http.StatusInternalServerError,
			call: func(c *stubhub.Client) error {
				_, err := c.DeleteListing(context.Background(), 42)
				return err
			},
		},
		{
			name:   "created is not success",
			method: http.MethodPost,
			status: http.StatusCreated,
			call: func(c *stubhub.Client) error {
				_, err := c.CreateListing(context.Background(), stubhub.CreateListingParams{EventID: "1"})
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			body := `{"code":"` + tt.name + `"}`
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.method, r.Method)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(body))
			})

			err := tt.call(c)

			var apiErr *stubhub.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, body, apiErr.Body)
			assert.True(t, stubhub.IsStatus(err, tt.status))
			assert.Contains(t, err.Error(), "status")
		})
	}
}

func TestClient_TransportError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := stubhub.New(testConsumerKey, testConsumerSecret, stubhub.WithBaseURL(url))
	c.SetSession(stubhub.Session{AccessToken: testAccessToken})

	_, err := c.GetListing(context.Background(), 1)

	require.ErrorIs(t, err, stubhub.ErrTransport)
	var apiErr *stubhub.APIError
	assert.False(t, errors.As(err, &apiErr))
}

func TestClient_InvalidJSON(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, "not json")
	})

	_, err := c.GetListing(context.Background(), 1)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing response")
}

func TestClient_Timeout(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		writeJSON(w, `{}`)
	}, stubhub.WithHTTPClient(&http.Client{Timeout: 20 * time.Millisecond}))

	_, err := c.GetListing(context.Background(), 1)

	require.ErrorIs(t, err, stubhub.ErrTransport)
}

func TestClient_Sandbox(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		handler func(t *testing.T) http.HandlerFunc
		call    func(*stubhub.Client) error
	}{
		{
			name: "json body",
			handler: func(t *testing.T) http.HandlerFunc {
				return func(w http.ResponseWriter, r *http.Request) {
					assert.JSONEq(t,
						`{"orderId":"o1","scope":"SANDBOX"}`,
						readBody(t, r),
					)
					writeJSON(w, `{"delivery":{"trackingNumber":"1Z"}}`)
				}
			},
			call: func(c *stubhub.Client) error {
				_, err := c.GetAirbill(context.Background(), "o1")
				return err
			},
		},
		{
			name: "query string",
			handler: func(t *testing.T) http.HandlerFunc {
				return func(w http.ResponseWriter, r *http.Request) {
					assert.Equal(t, "SANDBOX", r.URL.Query().Get("scope"))
					writeJSON(w, `{"listing":{"id":7}}`)
				}
			},
			call: func(c *stubhub.Client) error {
				_, err := c.GetListing(context.Background(), 7)
				return err
			},
		},
		{
			name: "form body",
			handler: func(t *testing.T) http.HandlerFunc {
				return func(w http.ResponseWriter, r *http.Request) {
					assert.NoError(t, r.ParseForm())
					assert.Equal(t, "SANDBOX", r.PostForm.Get("scope"))
					assert.Equal(t, "password", r.PostForm.Get("grant_type"))
					writeJSON(w, `{"access_token":"a"}`)
				}
			},
			call: func(c *stubhub.Client) error {
				_, err := c.Login(context.Background(), stubhub.Credentials{Username: "u", Password: "p"})
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := newTestClient(t, tt.handler(t), stubhub.WithSandbox(true))
			require.NoError(t, tt.call(c))
		})
	}
}

func TestClient_NoSandboxScope(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.Query().Get("scope"))
		writeJSON(w, `{"listing":{"id":7}}`)
	})

	_, err := c.GetListing(context.Background(), 7)
	require.NoError(t, err)
}

func TestClient_RateLimiter(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		writeJSON(w, `{"listing":{"id":1}}`)
	}, stubhub.WithRateLimiter(stubhub.NewRateLimiter(100, 10, 1)))

	_, err := c.GetListing(context.Background(), 1)
	require.NoError(t, err)

	_, err = c.GetListing(context.Background(), 1)
	require.ErrorIs(t, err, stubhub.ErrDailyLimitReached)
	assert.Equal(t, int32(1), calls.Load())
}

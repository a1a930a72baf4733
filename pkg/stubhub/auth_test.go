package stubhub_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/stubhub/pkg/stubhub"
)

func TestClient_Login(t *testing.T) {
	t.Parallel()

	issued := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		creds       stubhub.Credentials
		wantForm    map[string]string
		body        string
		wantSession stubhub.Session
	}{
		{
			name:  "password grant",
			creds: stubhub.Credentials{Username: "user", Password: "pass"},
			wantForm: map[string]string{
				"grant_type": "password",
				"username":   "user",
				"password":   "pass",
			},
			body: `{"token_type":"bearer","expires_in":"1234567890","refresh_token":"bar_refresh_token","access_token":"foo_access_token"}`,
			wantSession: stubhub.Session{
				AccessToken:  "foo_access_token",
				RefreshToken: "bar_refresh_token",
				ExpiresIn:    1234567890,
				UserID:       "foobar_user_guid",
				IssuedAt:     issued,
			},
		},
		{
			name:  "refresh token grant",
			creds: stubhub.Credentials{RefreshToken: "refresh_token"},
			wantForm: map[string]string{
				"grant_type":    "refresh_token",
				"refresh_token": "refresh_token",
			},
			body: `{"token_type":"bearer","expires_in":"expires_in","refresh_token":"new_refresh_token","access_token":"new_access_token"}`,
			wantSession: stubhub.Session{
				AccessToken:  "new_access_token",
				RefreshToken: "new_refresh_token",
				UserID:       "foobar_user_guid",
				IssuedAt:     issued,
			},
		},
		{
			name:  "password wins over refresh token",
			creds: stubhub.Credentials{Username: "user", Password: "pass", RefreshToken: "r"},
			wantForm: map[string]string{
				"grant_type": "password",
				"username":   "user",
			},
			body: `{"access_token":"a","refresh_token":"b","expires_in":3600}`,
			wantSession: stubhub.Session{
				AccessToken:  "a",
				RefreshToken: "b",
				ExpiresIn:    3600,
				UserID:       "foobar_user_guid",
				IssuedAt:     issued,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/login", r.URL.Path)
				assert.Equal(t, stubhub.ContentTypeForm, r.Header.Get("Content-Type"))

				user, pass, ok := r.BasicAuth()
				assert.True(t, ok)
				assert.Equal(t, testConsumerKey, user)
				assert.Equal(t, testConsumerSecret, pass)

				assert.NoError(t, r.ParseForm())
				for k, v := range tt.wantForm {
					assert.Equal(t, v, r.PostForm.Get(k), k)
				}

				w.Header().Set(stubhub.UserGUIDHeader, "foobar_user_guid")
				writeJSON(w, tt.body)
			}, stubhub.WithNowFunc(func() time.Time { return issued }))
			c.SetSession(stubhub.Session{})

			ok, err := c.Login(context.Background(), tt.creds)

			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, tt.wantSession, c.Session())
		})
	}
}

func TestClient_Login_Rejected(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			writeJSON(w, `{"access_token":"first"}`)
			return
		}
		w.WriteHeader(http.StatusForbidden)
		writeJSON(w, `{"access_token":"ignored"}`)
	})
	creds := stubhub.Credentials{Username: "user", Password: "pass"}

	ok, err := c.Login(context.Background(), creds)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "first", c.Session().AccessToken)

	ok, err = c.Login(context.Background(), creds)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.False(t, c.Authenticated())
}

func TestClient_Login_ClearsTokenBeforeRequest(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _, ok := r.BasicAuth()
		assert.True(t, ok, "login must use application credentials")
		writeJSON(w, `{"access_token":"new"}`)
	})
	c.SetSession(stubhub.Session{AccessToken: "stale", UserID: "keep"})

	ok, err := c.Login(context.Background(), stubhub.Credentials{RefreshToken: "r"})

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "new", c.Session().AccessToken)
}

func TestClient_Login_InvalidCredentials(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		writeJSON(w, `{}`)
	})

	tests := []stubhub.Credentials{
		{},
		{Username: "user"},
		{Password: "pass"},
	}
	for _, creds := range tests {
		ok, err := c.Login(context.Background(), creds)
		require.ErrorIs(t, err, stubhub.ErrInvalidCredentials)
		assert.False(t, ok)
	}

	assert.Equal(t, int32(0), calls.Load())
	assert.True(t, c.Authenticated(), "invalid input must not clear the session")
}

func TestClient_Login_TransportError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	c := stubhub.New(testConsumerKey, testConsumerSecret, stubhub.WithBaseURL(srv.URL))

	ok, err := c.Login(context.Background(), stubhub.Credentials{Username: "u", Password: "p"})

	require.ErrorIs(t, err, stubhub.ErrTransport)
	assert.False(t, ok)
}

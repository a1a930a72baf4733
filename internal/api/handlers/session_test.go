package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/stubhub/internal/api/handlers"
	"github.com/donaldgifford/stubhub/pkg/stubhub"
)

type fixedSession stubhub.Session

func (f fixedSession) Session() stubhub.Session { return stubhub.Session(f) }

func TestSessionHandler(t *testing.T) {
	t.Parallel()

	t.Run("anonymous", func(t *testing.T) {
		t.Parallel()

		_, api := humatest.New(t)
		handlers.RegisterSessionRoutes(api, handlers.NewSessionHandler(fixedSession{}))

		resp := api.Get("/session")
		require.Equal(t, http.StatusOK, resp.Code)
		assert.JSONEq(t, `{"authenticated":false}`, stripSchema(t, resp.Body.Bytes()))
	})

	t.Run("logged in hides tokens", func(t *testing.T) {
		t.Parallel()

		issued := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
		src := fixedSession{
			AccessToken:  "access",
			RefreshToken: "refresh",
			ExpiresIn:    3600,
			UserID:       "userid",
			IssuedAt:     issued,
		}

		_, api := humatest.New(t)
		handlers.RegisterSessionRoutes(api, handlers.NewSessionHandler(src))

		resp := api.Get("/session")
		require.Equal(t, http.StatusOK, resp.Code)

		var got handlers.SessionView
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
		assert.True(t, got.Authenticated)
		assert.Equal(t, "userid", got.UserID)
		require.NotNil(t, got.ExpiresAt)
		assert.True(t, issued.Add(time.Hour).Equal(*got.ExpiresAt))
		assert.NotContains(t, resp.Body.String(), `"access"`)
		assert.NotContains(t, resp.Body.String(), "refresh")
	})
}

func TestSummarize_UnknownLifetime(t *testing.T) {
	t.Parallel()

	v := handlers.Summarize(stubhub.Session{AccessToken: "a", UserID: "u"})
	assert.True(t, v.Authenticated)
	assert.Equal(t, "u", v.UserID)
	assert.Nil(t, v.ExpiresAt, "unknown lifetime has no expiry")
}

// stripSchema drops the $schema link huma adds to object bodies.
func stripSchema(t *testing.T, body []byte) string {
	t.Helper()

	var m map[string]any
	require.NoError(t, json.Unmarshal(body, &m))
	delete(m, "$schema")
	out, err := json.Marshal(m)
	require.NoError(t, err)
	return string(out)
}

package stubhub

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndpointLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want string
	}{
		{path: "/login", want: "/login"},
		{path: "/inventory/listings/v1", want: "/inventory/listings/v1"},
		{path: "/inventory/listings/v1/123", want: "/inventory/listings/v1/:id"},
		{path: "/inventory/listings/v1/123/barcodes", want: "/inventory/listings/v1/:id/barcodes"},
		{path: "/accountmanagement/sales/v1/seller/AB12CD", want: "/accountmanagement/sales/v1/seller/:id"},
		{path: "/search/catalog/events/v3", want: "/search/catalog/events/v3"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, endpointLabel(tt.path))
		})
	}
}

func TestMergeScope(t *testing.T) {
	t.Parallel()

	got, err := mergeScope([]byte(`{"orderId":"1"}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"orderId":"1","scope":"SANDBOX"}`, string(got))

	got, err = mergeScope([]byte(`[1,2]`))
	require.NoError(t, err)
	assert.Equal(t, `[1,2]`, string(got))
}

func TestAuthorization(t *testing.T) {
	t.Parallel()

	c := New("key", "secret")

	_, err := c.authorization(false)
	require.ErrorIs(t, err, ErrNotAuthenticated)

	h, err := c.authorization(true)
	require.NoError(t, err)
	assert.Equal(t, "Basic a2V5OnNlY3JldA==", h)

	c.SetSession(Session{AccessToken: "tok"})
	h, err = c.authorization(false)
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok", h)
}

func TestEncodeBody_FormRequiresValues(t *testing.T) {
	t.Parallel()

	c := New("key", "secret")
	_, err := c.encodeBody(ContentTypeForm, map[string]string{"a": "b"})
	require.Error(t, err)

	_, err = c.encodeBody("text/plain", nil)
	require.Error(t, err)
}

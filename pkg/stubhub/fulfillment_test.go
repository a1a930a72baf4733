package stubhub_test

import (
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/stubhub/pkg/stubhub"
)

func writeTicket(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func partContent(t *testing.T, fh *multipart.FileHeader) string {
	t.Helper()
	f, err := fh.Open()
	if !assert.NoError(t, err) {
		return ""
	}
	defer f.Close()
	b, err := io.ReadAll(f)
	assert.NoError(t, err)
	return string(b)
}

func TestClient_PredeliverBarcodes(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/inventory/listings/v1/42/barcodes", r.URL.Path)
		assert.JSONEq(t, `{"tickets":[
			{"row":"A","seat":"1","barcode":"0001"},
			{"row":"A","seat":"2","barcode":"0002"}
		]}`, readBody(t, r))
		writeJSON(w, `{}`)
	})

	err := c.PredeliverBarcodes(context.Background(), 42, []stubhub.Barcode{
		{Row: "A", Seat: "1", Barcode: "0001", Type: "ignored"},
		{Row: "A", Seat: "2", Barcode: "0002"},
	})
	require.NoError(t, err)
}

func TestClient_DeliverBarcodes(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/fulfillment/barcode/v1/order", r.URL.Path)
		assert.JSONEq(t, `{"orderId":"o-1","tickets":[
			{"row":"A","seat":"1","barcode":"0001","type":"BARCODE"}
		]}`, readBody(t, r))
		writeJSON(w, `{}`)
	})

	err := c.DeliverBarcodes(context.Background(), "o-1", []stubhub.Barcode{
		{Row: "A", Seat: "1", Barcode: "0001", Type: "BARCODE"},
	})
	require.NoError(t, err)
}

func TestClient_Predeliver(t *testing.T) {
	t.Parallel()

	path := writeTicket(t, t.TempDir(), "seat-1.pdf", "%PDF-seat-1")

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/fulfillment/pdf/v1/listing/42", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("seat"))
		assert.Equal(t, "A", r.URL.Query().Get("row"))
		if !assert.NoError(t, r.ParseMultipartForm(1<<20)) {
			return
		}
		files := r.MultipartForm.File["ticket"]
		if assert.Len(t, files, 1) {
			assert.Equal(t, "seat-1.pdf", files[0].Filename)
			assert.Equal(t, "%PDF-seat-1", partContent(t, files[0]))
		}
		assert.Empty(t, r.MultipartForm.Value["scope"])
		writeJSON(w, `{}`)
	})

	require.NoError(t, c.Predeliver(context.Background(), 42, "1", "A", path))
}

func TestClient_Predeliver_MissingFile(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(_ http.ResponseWriter, _ *http.Request) {
		t.Error("no request expected")
	})

	err := c.Predeliver(context.Background(), 42, "1", "A", filepath.Join(t.TempDir(), "nope.pdf"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening ticket file")
}

func TestClient_Deliver(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "b"), 0o700))
	files := []stubhub.TicketFile{
		{Row: "A", Seat: "1", Path: writeTicket(t, dir, "ticket.pdf", "first")},
		{Row: "A", Seat: "2", Path: writeTicket(t, filepath.Join(dir, "b"), "ticket.pdf", "second")},
	}

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/fulfillment/pdf/v1/order", r.URL.Path)
		if !assert.NoError(t, r.ParseMultipartForm(1<<20)) {
			return
		}

		manifestValues := r.MultipartForm.Value["json"]
		if !assert.Len(t, manifestValues, 1) {
			return
		}
		var manifest struct {
			OrderID string `json:"orderId"`
			Tickets []struct {
				Row  string `json:"row"`
				Seat string `json:"seat"`
				Name string `json:"name"`
			} `json:"tickets"`
		}
		assert.NoError(t, json.Unmarshal([]byte(manifestValues[0]), &manifest))
		assert.Equal(t, "o-1", manifest.OrderID)
		if !assert.Len(t, manifest.Tickets, 2) {
			return
		}
		assert.NotEqual(t, manifest.Tickets[0].Name, manifest.Tickets[1].Name)

		want := []string{"first", "second"}
		for i, mt := range manifest.Tickets {
			part := r.MultipartForm.File["ticket"+strconv.Itoa(i)]
			if assert.Len(t, part, 1) {
				assert.Equal(t, mt.Name, part[0].Filename)
				assert.Equal(t, want[i], partContent(t, part[0]))
			}
		}
		assert.Equal(t, "2", manifest.Tickets[1].Seat)
		assert.Equal(t, "SANDBOX", r.MultipartForm.Value["scope"][0])
		writeJSON(w, `{}`)
	}, stubhub.WithSandbox(true))

	require.NoError(t, c.Deliver(context.Background(), "o-1", files))
}

func TestClient_Deliver_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	good := writeTicket(t, dir, "good.pdf", "ok")

	tests := []struct {
		name    string
		files   []stubhub.TicketFile
		wantErr string
	}{
		{name: "no files", files: nil, wantErr: "at least one ticket file"},
		{
			name: "second file missing",
			files: []stubhub.TicketFile{
				{Row: "A", Seat: "1", Path: good},
				{Row: "A", Seat: "2", Path: filepath.Join(dir, "missing.pdf")},
			},
			wantErr: "seat 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := newTestClient(t, func(_ http.ResponseWriter, _ *http.Request) {
				t.Error("no request expected")
			})

			err := c.Deliver(context.Background(), "o-1", tt.files)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestClient_Deliver_Rejected(t *testing.T) {
	t.Parallel()

	path := writeTicket(t, t.TempDir(), "t.pdf", "x")
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"code":"INVALID_ORDER"}`))
	})

	err := c.Deliver(context.Background(), "o-1", []stubhub.TicketFile{{Row: "A", Seat: "1", Path: path}})

	assert.True(t, stubhub.IsStatus(err, http.StatusBadRequest))
}

func TestClient_GetAirbill(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/fulfillment/shipping/v1/labels", r.URL.Path)
		assert.JSONEq(t, `{"orderId":"o-1"}`, readBody(t, r))
		// "JVBERi0=" is base64 for "%PDF-".
		writeJSON(w, `{"delivery":{"trackingNumber":"1Z999","airbillPdf":"JVBERi0="}}`)
	})

	bill, err := c.GetAirbill(context.Background(), "o-1")

	require.NoError(t, err)
	assert.Equal(t, "1Z999", bill.TrackingNumber)
	assert.Equal(t, []byte("%PDF-"), bill.PDF)
}

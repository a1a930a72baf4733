package cmd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/stubhub/pkg/stubhub"
)

func TestParseListingID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		want    stubhub.ListingID
		wantErr bool
	}{
		{name: "plain", in: "1234567", want: 1234567},
		{name: "surrounding space", in: " 42 ", want: 42},
		{name: "zero", in: "0", wantErr: true},
		{name: "negative", in: "-5", wantErr: true},
		{name: "not a number", in: "abc", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := parseListingID(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseListingIDs(t *testing.T) {
	t.Parallel()

	ids, err := parseListingIDs([]string{"1", "2", "3"})
	require.NoError(t, err)
	assert.Equal(t, []stubhub.ListingID{1, 2, 3}, ids)

	_, err = parseListingIDs([]string{"1", "x"})
	assert.ErrorContains(t, err, `invalid listing id "x"`)
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	got, err := parseDate("2025-03-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), got)

	got, err = parseDate("")
	require.NoError(t, err)
	assert.True(t, got.IsZero())

	_, err = parseDate("03/01/2025")
	assert.ErrorContains(t, err, "want YYYY-MM-DD")
}

func TestParseBarcode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		want    stubhub.Barcode
		wantErr bool
	}{
		{
			name: "row seat barcode",
			in:   "A:12:ABC123",
			want: stubhub.Barcode{Row: "A", Seat: "12", Barcode: "ABC123"},
		},
		{
			name: "with type",
			in:   "A:12:ABC123:BARCODE",
			want: stubhub.Barcode{Row: "A", Seat: "12", Barcode: "ABC123", Type: "BARCODE"},
		},
		{
			name: "general admission has no row",
			in:   ":GA1:XYZ",
			want: stubhub.Barcode{Seat: "GA1", Barcode: "XYZ"},
		},
		{name: "too few parts", in: "A:12", wantErr: true},
		{name: "too many parts", in: "A:12:B:T:X", wantErr: true},
		{name: "missing seat", in: "A::ABC", wantErr: true},
		{name: "missing barcode", in: "A:12:", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := parseBarcode(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseBarcodes(t *testing.T) {
	t.Parallel()

	got, err := parseBarcodes([]string{"A:1:X", "A:2:Y"})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	_, err = parseBarcodes([]string{"A:1:X", "bad"})
	require.Error(t, err)
}

func TestParseTicketFile(t *testing.T) {
	t.Parallel()

	got, err := parseTicketFile("A:12:/tmp/tickets/a12.pdf")
	require.NoError(t, err)
	assert.Equal(t, stubhub.TicketFile{Row: "A", Seat: "12", Path: "/tmp/tickets/a12.pdf"}, got)

	got, err = parseTicketFile(`B:3:C:\tickets\b3.pdf`)
	require.NoError(t, err)
	assert.Equal(t, `C:\tickets\b3.pdf`, got.Path)

	for _, bad := range []string{"A:12", "A::x.pdf", "A:12:"} {
		_, err := parseTicketFile(bad)
		assert.Error(t, err, bad)
	}
}

func TestParsePriceMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    stubhub.PriceMode
		wantErr bool
	}{
		{in: "", want: stubhub.PriceModeListing},
		{in: "listing", want: stubhub.PriceModeListing},
		{in: "DISPLAY", want: stubhub.PriceModeDisplay},
		{in: "retail", wantErr: true},
	}

	for _, tt := range tests {
		got, err := parsePriceMode(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

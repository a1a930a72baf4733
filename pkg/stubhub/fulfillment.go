package stubhub

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
)

const (
	barcodeOrderPath   = "/fulfillment/barcode/v1/order"
	pdfListingPath     = "/fulfillment/pdf/v1/listing/"
	pdfOrderPath       = "/fulfillment/pdf/v1/order"
	shippingLabelsPath = "/fulfillment/shipping/v1/labels"

	manifestPart = "json"
	ticketPart   = "ticket"
)

// PredeliverBarcodes attaches barcodes to an existing listing before it
// sells.
func (c *Client) PredeliverBarcodes(ctx context.Context, listingID ListingID, seats []Barcode) error {
	if err := c.requireSession(); err != nil {
		return err
	}

	tickets := make([]Barcode, 0, len(seats))
	for _, s := range seats {
		tickets = append(tickets, Barcode{Row: s.Row, Seat: s.Seat, Barcode: s.Barcode})
	}
	body := struct {
		Tickets []Barcode `json:"tickets"`
	}{Tickets: tickets}

	path := listingsPath + "/" + listingID.String() + "/barcodes"
	if _, err := c.post(ctx, path, ContentTypeJSON, body, nil); err != nil {
		return fmt.Errorf("predelivering barcodes for listing %d: %w", listingID, err)
	}
	return nil
}

// DeliverBarcodes fulfills a sold order with barcodes, including the
// ticket type of each seat.
func (c *Client) DeliverBarcodes(ctx context.Context, orderID string, seats []Barcode) error {
	if err := c.requireSession(); err != nil {
		return err
	}

	body := struct {
		OrderID string    `json:"orderId"`
		Tickets []Barcode `json:"tickets"`
	}{OrderID: orderID, Tickets: seats}

	if _, err := c.post(ctx, barcodeOrderPath, ContentTypeJSON, body, nil); err != nil {
		return fmt.Errorf("delivering barcodes for order %s: %w", orderID, err)
	}
	return nil
}

// Predeliver uploads the ticket file for one seat of a listing.
func (c *Client) Predeliver(ctx context.Context, listingID ListingID, seat, row, path string) error {
	if err := c.requireSession(); err != nil {
		return err
	}

	f, err := os.Open(path) //nolint:gosec // ticket path supplied by the seller
	if err != nil {
		return fmt.Errorf("opening ticket file: %w", err)
	}
	defer f.Close()

	q := url.Values{}
	q.Set("seat", seat)
	q.Set("row", row)

	build := func(mw *multipart.Writer) error {
		return writeFilePart(mw, ticketPart, filepath.Base(path), f)
	}
	if err := c.postMultipart(ctx, pdfListingPath+listingID.String(), q, build, nil); err != nil {
		return fmt.Errorf("predelivering ticket for listing %d: %w", listingID, err)
	}
	return nil
}

type deliveryManifest struct {
	OrderID string           `json:"orderId"`
	Tickets []manifestTicket `json:"tickets"`
}

type manifestTicket struct {
	Row  string `json:"row"`
	Seat string `json:"seat"`
	Name string `json:"name"`
}

// Deliver fulfills a sold order by uploading one ticket file per seat in a
// single request. Each file part is listed by name in a JSON manifest part.
func (c *Client) Deliver(ctx context.Context, orderID string, files []TicketFile) error {
	if err := c.requireSession(); err != nil {
		return err
	}
	if len(files) == 0 {
		return errors.New("deliver needs at least one ticket file")
	}

	opened := make([]*os.File, 0, len(files))
	defer func() {
		for _, f := range opened {
			_ = f.Close() //nolint:errcheck // read-only handle
		}
	}()

	manifest := deliveryManifest{OrderID: orderID}
	names := make([]string, 0, len(files))
	for i, tf := range files {
		f, err := os.Open(tf.Path) //nolint:gosec // ticket path supplied by the seller
		if err != nil {
			return fmt.Errorf("opening ticket file for seat %s: %w", tf.Seat, err)
		}
		opened = append(opened, f)

		// Prefixing the index keeps names unique when two seats share a
		// file name.
		name := strconv.Itoa(i) + "_" + filepath.Base(tf.Path)
		names = append(names, name)
		manifest.Tickets = append(manifest.Tickets, manifestTicket{
			Row:  tf.Row,
			Seat: tf.Seat,
			Name: name,
		})
	}

	build := func(mw *multipart.Writer) error {
		if err := writeJSONPart(mw, manifestPart, manifest); err != nil {
			return err
		}
		for i, f := range opened {
			if err := writeFilePart(mw, ticketPart+strconv.Itoa(i), names[i], f); err != nil {
				return err
			}
		}
		return nil
	}
	if err := c.postMultipart(ctx, pdfOrderPath, nil, build, nil); err != nil {
		return fmt.Errorf("delivering tickets for order %s: %w", orderID, err)
	}
	return nil
}

// GetAirbill returns the shipping label for an order.
func (c *Client) GetAirbill(ctx context.Context, orderID string) (*Airbill, error) {
	if err := c.requireSession(); err != nil {
		return nil, err
	}

	body := struct {
		OrderID string `json:"orderId"`
	}{OrderID: orderID}

	var resp struct {
		Delivery Airbill `json:"delivery"`
	}
	if _, err := c.post(ctx, shippingLabelsPath, ContentTypeJSON, body, &resp); err != nil {
		return nil, fmt.Errorf("getting airbill for order %s: %w", orderID, err)
	}
	return &resp.Delivery, nil
}

func writeFilePart(mw *multipart.Writer, field, filename string, r io.Reader) error {
	part, err := mw.CreateFormFile(field, filename)
	if err != nil {
		return fmt.Errorf("creating part %s: %w", field, err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return fmt.Errorf("writing part %s: %w", field, err)
	}
	return nil
}

func writeJSONPart(mw *multipart.Writer, field string, v any) error {
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q`, field))
	h.Set("Content-Type", ContentTypeJSON)
	part, err := mw.CreatePart(h)
	if err != nil {
		return fmt.Errorf("creating part %s: %w", field, err)
	}
	if err := json.NewEncoder(part).Encode(v); err != nil {
		return fmt.Errorf("writing part %s: %w", field, err)
	}
	return nil
}

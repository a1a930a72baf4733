package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/donaldgifford/stubhub/internal/store"
	"github.com/donaldgifford/stubhub/pkg/stubhub"
)

const timeLayout = "2006-01-02 15:04"

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printSession(s stubhub.Session) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("User:\t%s\n", s.UserID)
	if exp := s.ExpiresAt(); !exp.IsZero() {
		tw.writef("Expires:\t%s\n", exp.Local().Format(timeLayout))
	} else {
		tw.writef("Expires:\tunknown\n")
	}
	return tw.finish()
}

func money(m *stubhub.Money) string {
	if m == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f %s", m.Amount, m.Currency)
}

func printListingsTable(listings []stubhub.Listing) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tEVENT\tSTATUS\tQTY\tSECTION\tROWS\tSEATS\tPRICE\n")
	for i := range listings {
		l := &listings[i]
		tw.writef("%s\t%s\t%s\t%d\t%s\t%s\t%s\t%s\n",
			l.ID,
			l.EventID,
			l.Status,
			l.Quantity,
			truncate(l.Section, 24),
			l.Rows,
			truncate(l.Seats, 24),
			money(l.PricePerTicket),
		)
	}
	return tw.finish()
}

func printListingDetail(l *stubhub.Listing) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID:\t%s\n", l.ID)
	tw.writef("Event:\t%s\n", l.EventID)
	tw.writef("Status:\t%s\n", l.Status)
	tw.writef("Quantity:\t%d (%d remaining)\n", l.Quantity, l.QuantityRemain)
	tw.writef("Section:\t%s\n", l.Section)
	tw.writef("Rows:\t%s\n", l.Rows)
	tw.writef("Seats:\t%s\n", l.Seats)
	tw.writef("Price:\t%s\n", money(l.PricePerTicket))
	tw.writef("Display Price:\t%s\n", money(l.DisplayPrice))
	tw.writef("Delivery:\t%s\n", l.DeliveryOption)
	tw.writef("Split:\t%s\n", splitLabel(l.SplitOption, l.SplitQuantity))
	if l.InhandDate != "" {
		tw.writef("In Hand:\t%s\n", l.InhandDate)
	}
	if len(l.TicketTraits) > 0 {
		names := make([]string, 0, len(l.TicketTraits))
		for _, tr := range l.TicketTraits {
			name := tr.Name
			if name == "" {
				name = tr.ID
			}
			names = append(names, name)
		}
		tw.writef("Traits:\t%s\n", strings.Join(names, ", "))
	}
	if l.InternalNotes != "" {
		tw.writef("Notes:\t%s\n", l.InternalNotes)
	}
	return tw.finish()
}

func splitLabel(option string, quantity int) string {
	if option == "MULTIPLES" && quantity > 0 {
		return fmt.Sprintf("%s of %d", option, quantity)
	}
	if option == "" {
		return "-"
	}
	return option
}

func printSalesTable(sales []stubhub.Sale) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("SALE\tLISTING\tEVENT\tDATE\tSTATUS\tQTY\tPAYOUT\n")
	for i := range sales {
		s := &sales[i]
		tw.writef("%s\t%s\t%s\t%s\t%s\t%d\t%s\n",
			s.ID,
			s.ListingID,
			truncate(firstNonEmpty(s.EventDescription, s.EventID), 32),
			s.SaleDate,
			s.Status,
			s.Quantity,
			money(s.Payout),
		)
	}
	return tw.finish()
}

func printSaleRecordsTable(records []store.SaleRecord) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("SALE\tLISTING\tEVENT\tDATE\tSTATUS\tQTY\tPAYOUT\n")
	for i := range records {
		r := &records[i]
		tw.writef("%s\t%d\t%s\t%s\t%s\t%d\t%.2f %s\n",
			r.SaleID,
			r.ListingID,
			truncate(firstNonEmpty(r.EventDescription, r.EventID), 32),
			formatTime(r.SaleDate),
			r.Status,
			r.Quantity,
			r.Payout,
			r.Currency,
		)
	}
	return tw.finish()
}

func printEventsTable(events []stubhub.Event) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tNAME\tDATE\tVENUE\tSTATUS\n")
	for i := range events {
		ev := &events[i]
		venue := "-"
		if ev.Venue != nil {
			venue = ev.Venue.Name
		}
		tw.writef("%d\t%s\t%s\t%s\t%s\n",
			ev.ID,
			truncate(ev.Name, 40),
			ev.EventDateLocal,
			truncate(venue, 28),
			ev.Status,
		)
	}
	return tw.finish()
}

func printEventMetadata(md *stubhub.EventMetadata) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("Delivery Fee:\t%s\n", money(md.DeliveryFeePerTicket))
	tw.writef("Venue Details Hidden:\t%v\n", md.VenueDetailsHidden)
	tw.writef("\nDELIVERY TYPE\tID\n")
	for _, d := range md.DeliveryTypes {
		tw.writef("%s\t%s\n", d.Name, d.ID)
	}
	tw.writef("\nTRAIT\tID\n")
	for _, a := range md.ListingAttributes {
		tw.writef("%s\t%s\n", truncate(a.Name, 40), a.ID)
	}
	return tw.finish()
}

func printSyncRunsTable(runs []store.SyncRun) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("STARTED\tCOMPLETED\tSTATUS\tROWS\tERROR\n")
	for i := range runs {
		r := &runs[i]
		tw.writef("%s\t%s\t%s\t%d\t%s\n",
			r.StartedAt.Local().Format(timeLayout),
			formatTime(r.CompletedAt),
			r.Status,
			r.RowsAffected,
			truncate(r.ErrorText, 40),
		)
	}
	return tw.finish()
}

func formatTime(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Local().Format(timeLayout)
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

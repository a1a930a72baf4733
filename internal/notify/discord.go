package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/donaldgifford/stubhub/internal/metrics"
)

const (
	colorGreen  = 0x2ECC71 // confirmed
	colorYellow = 0xF1C40F // pending
	colorOrange = 0xE67E22 // anything else

	// Discord allows max 10 embeds per message.
	maxEmbeds = 10
)

// DiscordNotifier implements Notifier via Discord webhook.
type DiscordNotifier struct {
	webhookURL string
	client     *http.Client
}

// NewDiscordNotifier creates a new DiscordNotifier.
func NewDiscordNotifier(webhookURL string, opts ...DiscordOption) *DiscordNotifier {
	d := &DiscordNotifier{
		webhookURL: webhookURL,
		client:     http.DefaultClient,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DiscordOption configures a DiscordNotifier.
type DiscordOption func(*DiscordNotifier)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) DiscordOption {
	return func(d *DiscordNotifier) {
		d.client = c
	}
}

// discordWebhookPayload is the Discord webhook JSON structure.
type discordWebhookPayload struct {
	Embeds []discordEmbed `json:"embeds"`
}

type discordEmbed struct {
	Title       string              `json:"title"`
	Color       int                 `json:"color"`
	Description string              `json:"description,omitempty"`
	Fields      []discordEmbedField `json:"fields,omitempty"`
}

type discordEmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// NotifySale sends a single sale as a Discord embed.
func (d *DiscordNotifier) NotifySale(ctx context.Context, sale *SalePayload) error {
	payload := discordWebhookPayload{
		Embeds: []discordEmbed{buildEmbed(sale)},
	}
	return d.post(ctx, payload)
}

// NotifySales sends several sales as one Discord message. Sales past the
// embed limit are summarised in a final embed. An empty batch sends nothing.
func (d *DiscordNotifier) NotifySales(ctx context.Context, sales []SalePayload) error {
	if len(sales) == 0 {
		return nil
	}

	limit := min(len(sales), maxEmbeds)
	embeds := make([]discordEmbed, 0, limit+1)
	for i := range limit {
		embeds = append(embeds, buildEmbed(&sales[i]))
	}

	if len(sales) > maxEmbeds {
		embeds = append(embeds, discordEmbed{
			Title:       fmt.Sprintf("... and %d more sales", len(sales)-maxEmbeds),
			Color:       colorYellow,
			Description: "Run `stubhub sales --local` for the full list.",
		})
	}

	return d.post(ctx, discordWebhookPayload{Embeds: embeds})
}

func buildEmbed(sale *SalePayload) discordEmbed {
	embed := discordEmbed{
		Title: fmt.Sprintf("Sold: %s", orDash(sale.Event)),
		Color: statusColor(sale.Status),
		Fields: []discordEmbedField{
			{Name: "Payout", Value: orDash(sale.Payout), Inline: true},
			{Name: "Quantity", Value: strconv.Itoa(sale.Quantity), Inline: true},
			{Name: "Status", Value: orDash(sale.Status), Inline: true},
			{Name: "Seats", Value: seatLine(sale), Inline: true},
			{Name: "Listing", Value: orDash(sale.ListingID), Inline: true},
			{Name: "Sale", Value: orDash(sale.SaleID), Inline: true},
		},
	}
	if sale.EventDate != "" {
		embed.Description = "Event date: " + sale.EventDate
	}
	return embed
}

func statusColor(status string) int {
	switch strings.ToUpper(status) {
	case "CONFIRMED", "DELIVERED", "PAID":
		return colorGreen
	case "PENDING", "PENDINGREVIEW":
		return colorYellow
	default:
		return colorOrange
	}
}

func seatLine(sale *SalePayload) string {
	var parts []string
	if sale.Section != "" {
		parts = append(parts, "Sec "+sale.Section)
	}
	if sale.Rows != "" {
		parts = append(parts, "Row "+sale.Rows)
	}
	if sale.Seats != "" {
		parts = append(parts, "Seats "+sale.Seats)
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, ", ")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func (d *DiscordNotifier) post(ctx context.Context, payload discordWebhookPayload) (err error) {
	start := time.Now()
	defer func() {
		metrics.NotificationDuration.Observe(time.Since(start).Seconds())
		if err != nil {
			metrics.NotificationFailuresTotal.Inc()
		}
	}()

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling discord payload: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		d.webhookURL,
		bytes.NewReader(body),
	)
	if err != nil {
		return fmt.Errorf("creating discord request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending discord webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("discord rate limited (429)")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return fmt.Errorf("discord returned %d (body unreadable)", resp.StatusCode)
		}
		return fmt.Errorf("discord returned %d: %s", resp.StatusCode, respBody)
	}

	return nil
}

package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/pawhaven/fundraising/pkg/clients"
)

const (
	EventDonationReceived  = "donation.received"
	EventCampaignCompleted = "campaign.completed"
)

type Event struct {
	Type        string           `json:"type"`
	CampaignID  int              `json:"campaign_id"`
	DonationID  int              `json:"donation_id,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	RecipientID *int             `json:"recipient_id,omitempty"`
	OccurredAt  time.Time        `json:"occurred_at"`
}

// Notifier delivers events best-effort. Delivery failure is never surfaced
// to the operation that produced the event.
type Notifier interface {
	Notify(ctx context.Context, event Event)
}

type Webhook struct {
	url    string
	client clients.HTTPClientI
}

func NewWebhook(url string, client clients.HTTPClientI) *Webhook {
	return &Webhook{
		url:    url,
		client: client,
	}
}

func (w *Webhook) Notify(ctx context.Context, event Event) {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now()
	}
	body, err := json.Marshal(event)
	if err != nil {
		zap.L().Error("failed to encode notification", zap.Error(err))
		return
	}

	// Fire-and-forget: the caller's request must not wait on delivery.
	go func() {
		headers := http.Header{}
		headers.Set("Content-Type", "application/json")
		statusCode, _, err := w.client.Post(w.url, headers, body)
		if err != nil {
			zap.L().Warn("notification delivery failed", zap.String("type", event.Type), zap.Error(err))
			return
		}
		if statusCode >= http.StatusBadRequest {
			zap.L().Warn("notification rejected",
				zap.String("type", event.Type),
				zap.Int("status", statusCode),
			)
		}
	}()
}

// Noop is used when no webhook address is configured.
type Noop struct{}

func (Noop) Notify(ctx context.Context, event Event) {}

func New(url string, client clients.HTTPClientI) Notifier {
	if url == "" {
		return Noop{}
	}
	return NewWebhook(url, client)
}

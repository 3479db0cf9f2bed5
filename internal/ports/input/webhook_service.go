package input

import (
	"context"

	"stocksentry/internal/domain"
)

// WebhookService interface - Input port (use case)
// Defines what the application can do with incoming transcript webhooks
type WebhookService interface {
	// HandleWebhook runs the aggregation pipeline for one webhook delivery:
	// buffer the segments, check the notification cooldown, flush the buffer
	// when the aggregation window elapsed, extract stock intent and fetch
	// news sentiment. Returns an error only when a confirmed notification
	// could not be completed (sentiment provider failure); every other
	// failure is recovered into a success outcome.
	HandleWebhook(ctx context.Context, request domain.WebhookRequest) (*domain.WebhookResult, error)
}

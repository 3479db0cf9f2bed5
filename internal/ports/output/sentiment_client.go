package output

import (
	"context"

	"stocksentry/internal/domain"
)

// SentimentClient interface - Output port
// Defines what the application needs from the news-sentiment data provider.
type SentimentClient interface {
	// FetchSentiment retrieves the news feed for the given ticker and
	// aggregates the per-article sentiment labels. Returns
	// domain.ErrNoSentimentData when the provider has no feed for the
	// ticker; other errors are transport or decode failures. Not retried.
	FetchSentiment(ctx context.Context, ticker string) (*domain.SentimentResult, error)
}

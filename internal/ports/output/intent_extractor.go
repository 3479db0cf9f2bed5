package output

import (
	"context"

	"stocksentry/internal/domain"
)

// IntentExtractor interface - Output port
// Defines what the application needs from the language-model provider for
// deciding whether combined transcript text asks about a stock.
type IntentExtractor interface {
	// ExtractIntent sends the combined text to the completion provider and
	// parses the returned JSON object with key stock_ticker_symbol.
	// Implementations retry transient failures internally; an error here
	// means the provider was exhausted or returned an unusable body, and
	// the caller is expected to recover it to a negative intent.
	ExtractIntent(ctx context.Context, text string) (domain.IntentResult, error)
}

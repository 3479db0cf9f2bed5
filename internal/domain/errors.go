package domain

import "errors"

var (
	// ErrProviderUnavailable indicates the language-model provider could not
	// be reached after all retry attempts
	ErrProviderUnavailable = errors.New("completion provider unavailable")

	// ErrInvalidRequest indicates an invalid request was made (4xx client errors)
	ErrInvalidRequest = errors.New("invalid request")

	// ErrNoSentimentData indicates the sentiment provider returned no feed
	// for the requested ticker
	ErrNoSentimentData = errors.New("no sentiment data available")
)

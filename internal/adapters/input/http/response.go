package http

import "stocksentry/internal/domain"

type (
	// SetupStatusResponse struct - HTTP response DTO for setup-status
	SetupStatusResponse struct {
		IsSetupCompleted bool   `json:"is_setup_completed"`
		Error            string `json:"error,omitempty"`
	}

	// NotificationResponse struct - HTTP response DTO for a dispatched notification
	NotificationResponse struct {
		Message   string            `json:"message"`
		Sentiment map[string]int    `json:"sentiment_counts,omitempty"`
		News      []domain.NewsItem `json:"news_data,omitempty"`
	}
)

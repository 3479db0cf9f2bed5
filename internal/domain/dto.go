package domain

// DTOs (Data Transfer Objects) - Domain layer request/response structures

type (
	// WebhookRequest struct - Domain webhook request DTO
	WebhookRequest struct {
		SessionID string
		Segments  []Segment
	}

	// WebhookOutcome type - Which branch of the pipeline handled the request
	WebhookOutcome string

	// WebhookResult struct - Domain webhook response DTO
	// Symbol and Sentiment are only set when Outcome is OutcomeNotified.
	WebhookResult struct {
		Outcome   WebhookOutcome
		Symbol    string
		Sentiment *SentimentResult
	}

	// SetupStatus struct - Domain setup-status response DTO
	SetupStatus struct {
		IsSetupCompleted bool
		Error            string
	}
)

const (
	// OutcomeCooldown - cooldown still active, segments buffered for later
	OutcomeCooldown WebhookOutcome = "cooldown"
	// OutcomeBuffered - aggregation window not yet elapsed (or nothing buffered)
	OutcomeBuffered WebhookOutcome = "buffered"
	// OutcomeNoIntent - flushed and analyzed, no stock intent found
	OutcomeNoIntent WebhookOutcome = "no_intent"
	// OutcomeNotified - intent confirmed, sentiment fetched
	OutcomeNotified WebhookOutcome = "notified"
)

package http

type (
	// WebhookRequest struct - HTTP request DTO
	WebhookRequest struct {
		SessionID string           `json:"session_id" validate:"required"`
		Segments  []SegmentRequest `json:"segments" validate:"omitempty,dive"`
	}

	// SegmentRequest struct - One transcript segment in the webhook body
	SegmentRequest struct {
		Start   float64 `json:"start"`
		End     float64 `json:"end"`
		Text    string  `json:"text"`
		Speaker string  `json:"speaker"`
	}
)

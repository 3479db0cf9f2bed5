package http

import (
	"fmt"

	"stocksentry/internal/domain"
	"stocksentry/internal/ports/input"
	"stocksentry/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// WebhookHandler struct - Primary/Driving adapter for the transcript webhook
type WebhookHandler struct {
	service         input.WebhookService
	validator       validator.Validator
	openAIKey       string
	alphaVantageKey string
}

// NewWebhookHandler func - Creates new webhook handler
func NewWebhookHandler(service input.WebhookService, openAIKey, alphaVantageKey string) *WebhookHandler {
	return &WebhookHandler{
		service:         service,
		validator:       validator.New(),
		openAIKey:       openAIKey,
		alphaVantageKey: alphaVantageKey,
	}
}

// HandleWebhook func - Handles incoming transcript webhook requests
// @Summary Transcript webhook
// @Description Ingests streamed transcript segments for a session and, when the aggregation window elapsed, analyzes them for stock intent
// @Tags Webhook
// @Accept application/json
// @Produce json
// @param Webhook body WebhookRequest true "Webhook"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /webhook [post]
func (h *WebhookHandler) HandleWebhook(c *fiber.Ctx) error {
	var request WebhookRequest
	if err := c.BodyParser(&request); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "Invalid request body",
		})
	}

	if err := h.validator.ValidateStruct(request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "No session id provided",
		})
	}

	segments := make([]domain.Segment, 0, len(request.Segments))
	for _, seg := range request.Segments {
		segments = append(segments, domain.Segment{
			Start:   seg.Start,
			End:     seg.End,
			Text:    seg.Text,
			Speaker: seg.Speaker,
		})
	}

	result, err := h.service.HandleWebhook(c.Context(), domain.WebhookRequest{
		SessionID: request.SessionID,
		Segments:  segments,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"message": err.Error(),
			"Reason":  "Please provide a valid stock",
		})
	}

	if result.Outcome != domain.OutcomeNotified {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "success",
		})
	}

	return c.Status(fiber.StatusOK).JSON(NotificationResponse{
		Message:   fmt.Sprintf("Stock: %s, Sentiment: %s", result.Symbol, result.Sentiment.Dominant),
		Sentiment: result.Sentiment.Counts,
		News:      result.Sentiment.News,
	})
}

// SetupStatus func - Reports whether the required provider credentials are configured
// @Summary Setup status
// @Description Checks presence of the completion-provider and sentiment-provider credentials
// @Tags Webhook
// @Produce json
// @Success 200 {object} SetupStatusResponse
// @Router /webhook/setup-status [get]
func (h *WebhookHandler) SetupStatus(c *fiber.Ctx) error {
	response := SetupStatusResponse{IsSetupCompleted: true}

	switch {
	case h.openAIKey == "" && h.alphaVantageKey == "":
		response.IsSetupCompleted = false
		response.Error = "OPENAI_API_KEY and ALPHAVANTAGE_API_KEY are not set"
	case h.openAIKey == "":
		response.IsSetupCompleted = false
		response.Error = "OPENAI_API_KEY is not set"
	case h.alphaVantageKey == "":
		response.IsSetupCompleted = false
		response.Error = "ALPHAVANTAGE_API_KEY is not set"
	}

	return c.Status(fiber.StatusOK).JSON(response)
}

// Auth func - Stub authentication endpoint
// @Summary Auth
// @Description Stub endpoint, always succeeds
// @Tags Webhook
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /auth [post]
func (h *WebhookHandler) Auth(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "success",
	})
}

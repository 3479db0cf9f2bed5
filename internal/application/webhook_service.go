package application

import (
	"context"
	"time"

	"stocksentry/internal/domain"
	"stocksentry/internal/ports/output"

	"github.com/sirupsen/logrus"
)

// Default pipeline timings
const (
	// DefaultAggregationInterval - minimum time between two flushes of one session's buffer
	DefaultAggregationInterval = 30 * time.Second
	// DefaultNotificationCooldown - minimum time between two notifications for one session
	DefaultNotificationCooldown = 60 * time.Second
)

// WebhookService struct - Application service implementing the transcript
// aggregation pipeline. Per session the flow is: buffer the incoming
// segments, gate on the notification cooldown, flush when the aggregation
// window elapsed, extract stock intent from the combined text and fetch news
// sentiment for a confirmed ticker.
//
// Segments always get buffered before the cooldown gate is consulted, so
// text arriving during an active cooldown is queued for the next window
// rather than dropped.
type WebhookService struct {
	sessions      output.SessionStore
	extractor     output.IntentExtractor
	sentiment     output.SentimentClient
	notifications output.NotificationRepository

	interval time.Duration
	cooldown time.Duration

	now func() time.Time // injectable clock for tests
}

// NewWebhookService func - Creates new webhook service
func NewWebhookService(
	sessions output.SessionStore,
	extractor output.IntentExtractor,
	sentiment output.SentimentClient,
	notifications output.NotificationRepository,
	interval, cooldown time.Duration,
) *WebhookService {
	if interval <= 0 {
		interval = DefaultAggregationInterval
	}
	if cooldown <= 0 {
		cooldown = DefaultNotificationCooldown
	}
	return &WebhookService{
		sessions:      sessions,
		extractor:     extractor,
		sentiment:     sentiment,
		notifications: notifications,
		interval:      interval,
		cooldown:      cooldown,
		now:           time.Now,
	}
}

// HandleWebhook func - Use case: Process one webhook delivery for a session
func (s *WebhookService) HandleWebhook(ctx context.Context, request domain.WebhookRequest) (*domain.WebhookResult, error) {
	session, err := s.sessions.GetOrCreate(request.SessionID)
	if err != nil {
		logrus.Errorln(err)
		return nil, err
	}

	// One request at a time per session id; the lock spans the external
	// calls too, so flush/cooldown state never races.
	session.Lock()
	defer session.Unlock()

	now := s.now()

	appended := session.AppendSegments(request.Segments)
	logrus.Infof("Session %s: buffered %d segment(s), buffer size %d", request.SessionID, appended, len(session.Buffer))

	if !session.CanNotify(now, s.cooldown) {
		logrus.Infof("Session %s: notification cooldown active, skipping analysis", request.SessionID)
		return &domain.WebhookResult{Outcome: domain.OutcomeCooldown}, nil
	}

	if !session.ShouldFlush(now, s.interval) {
		return &domain.WebhookResult{Outcome: domain.OutcomeBuffered}, nil
	}

	combinedText := session.Flush(now)

	intent, err := s.extractor.ExtractIntent(ctx, combinedText)
	if err != nil {
		// Recovered failure: extraction exhaustion is never surfaced to the caller
		logrus.Errorf("Intent extraction failed for session %s: %v", request.SessionID, err)
		intent = domain.NoIntent()
	}

	if !intent.Positive() {
		return &domain.WebhookResult{Outcome: domain.OutcomeNoIntent}, nil
	}

	logrus.Warnf("Stock intent detected for session %s: %s", request.SessionID, intent.Symbol)
	session.MarkNotified(now)

	sentimentResult, err := s.sentiment.FetchSentiment(ctx, intent.Symbol)
	if err != nil {
		logrus.Errorf("Failed to fetch sentiment for %s: %v", intent.Symbol, err)
		return nil, err
	}

	s.recordNotification(request.SessionID, intent.Symbol, sentimentResult.Dominant)

	return &domain.WebhookResult{
		Outcome:   domain.OutcomeNotified,
		Symbol:    intent.Symbol,
		Sentiment: sentimentResult,
	}, nil
}

// recordNotification writes the audit record; failures are logged only and
// never affect the webhook response.
func (s *WebhookService) recordNotification(sessionID, symbol, sentiment string) {
	if s.notifications == nil {
		return
	}
	_, err := s.notifications.CreateNotification(domain.Notification{
		SessionID: sessionID,
		Symbol:    symbol,
		Sentiment: sentiment,
	})
	if err != nil {
		logrus.Errorf("Failed to record notification for session %s: %v", sessionID, err)
	}
}

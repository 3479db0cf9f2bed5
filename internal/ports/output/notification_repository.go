package output

import "stocksentry/internal/domain"

// NotificationRepository interface - Output port
// Defines what the application needs for recording dispatched notifications
type NotificationRepository interface {
	// CreateNotification persists one dispatched-notification audit record
	CreateNotification(notification domain.Notification) (*domain.Notification, error)
}

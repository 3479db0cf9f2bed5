package postgres

import (
	"stocksentry/internal/domain"
	"stocksentry/internal/ports/output"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Compile-time check to ensure NotificationRepository implements the output port
var _ output.NotificationRepository = (*NotificationRepository)(nil)

// NotificationRepository struct - Secondary/Driven adapter for PostgreSQL
type NotificationRepository struct {
	dbGorm *gorm.DB
}

// NewNotificationRepository func - Creates new PostgreSQL repository
func NewNotificationRepository(dbGorm *gorm.DB) *NotificationRepository {
	logrus.Info("Migrate database ...")
	domain.MigrateDatabase(dbGorm)
	return &NotificationRepository{
		dbGorm: dbGorm,
	}
}

// CreateNotification func - Persists one dispatched-notification audit record
func (p *NotificationRepository) CreateNotification(notification domain.Notification) (*domain.Notification, error) {
	if err := p.dbGorm.Create(&notification).Error; err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	return &notification, nil
}

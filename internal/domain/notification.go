package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Notification struct - Audit record of a dispatched sentiment notification.
// Session and buffer state stay strictly in memory; only the fact that a
// notification went out is persisted.
type Notification struct {
	ID        *uuid.UUID `gorm:"type:uuid;primary_key;"`
	SessionID string     `gorm:"type:varchar(128);not null;index"`
	Symbol    string     `gorm:"type:varchar(16);not null;"`
	Sentiment string     `gorm:"type:varchar(32);not null;"`
	CreatedAt *time.Time `gorm:"type:timestamp"`
	UpdatedAt *time.Time `gorm:"type:timestamp"`
}

// TableName func
func (n *Notification) TableName() string {
	return "notifications"
}

// BeforeCreate hook - generates UUID before creating
func (n *Notification) BeforeCreate(tx *gorm.DB) (err error) {
	uuid, err := uuid.NewRandom() // v4
	if err != nil {
		return err
	}
	n.ID = &uuid
	return nil
}

// MigrateDatabase func - Auto-migrate database schema
func MigrateDatabase(db *gorm.DB) {
	if db == nil {
		panic("An error when connect database")
	}

	err := db.AutoMigrate(&Notification{})
	if err != nil {
		panic(err)
	}
}

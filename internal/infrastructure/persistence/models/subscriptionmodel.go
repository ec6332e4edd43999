package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/resumelift/resumelift/internal/shared/constants"
)

// SubscriptionModel represents the database persistence model for subscriptions
type SubscriptionModel struct {
	ID              uint      `gorm:"primarykey"`
	SID             string    `gorm:"column:sid;uniqueIndex;not null;size:50;comment:Stripe-style ID: sub_xxx"`
	UserID          uint      `gorm:"not null;index:idx_user_subscription"`
	Tier            string    `gorm:"not null;size:20"`
	Status          string    `gorm:"not null;size:20;index:idx_status"`
	MonthlyQuota    int       `gorm:"not null"`
	ConversionsUsed int       `gorm:"not null;default:0"`
	CycleStart      time.Time `gorm:"not null"`
	ExternalRef     string    `gorm:"size:255"`
	EndedAt         *time.Time
	Version         int `gorm:"not null;default:1"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (SubscriptionModel) TableName() string {
	return constants.TableSubscriptions
}

// BeforeCreate hook for GORM
func (s *SubscriptionModel) BeforeCreate(tx *gorm.DB) error {
	if s.Version == 0 {
		s.Version = 1
	}
	return nil
}

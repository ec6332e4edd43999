package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/resumelift/resumelift/internal/shared/constants"
)

// PaymentEventModel represents the database persistence model for inbound
// payment provider events. The unique external_ref index is what makes
// webhook replays idempotent at the storage level.
type PaymentEventModel struct {
	ID          uint   `gorm:"primarykey"`
	ExternalRef string `gorm:"uniqueIndex;not null;size:255"`
	UserSID     string `gorm:"column:user_sid;not null;size:50;index:idx_event_user"`
	Tier        string `gorm:"not null;size:20"`
	Payload     datatypes.JSON
	ReceivedAt  time.Time `gorm:"not null"`
	CreatedAt   time.Time
}

// TableName specifies the table name for GORM
func (PaymentEventModel) TableName() string {
	return constants.TablePaymentEvents
}

package models

import (
	"time"

	"github.com/resumelift/resumelift/internal/shared/constants"
)

// ConversionModel represents the database persistence model for CV conversions
type ConversionModel struct {
	ID         uint   `gorm:"primarykey"`
	SID        string `gorm:"column:sid;uniqueIndex;not null;size:50;comment:Stripe-style ID: cv_xxx"`
	UserID     uint   `gorm:"not null;index:idx_user_conversion"`
	TargetRole string `gorm:"not null;size:255"`
	SourceText string `gorm:"type:text;not null"`
	ResultText string `gorm:"type:text"`
	Model      string `gorm:"size:100"`
	CreatedAt  time.Time
}

// TableName specifies the table name for GORM
func (ConversionModel) TableName() string {
	return constants.TableConversions
}

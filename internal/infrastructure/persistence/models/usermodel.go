// Package models holds the gorm persistence models. They are the
// anti-corruption layer between the domain aggregates and the database.
package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/resumelift/resumelift/internal/shared/constants"
)

// UserModel represents the database persistence model for users
type UserModel struct {
	ID           uint   `gorm:"primarykey"`
	SID          string `gorm:"column:sid;uniqueIndex;not null;size:50;comment:Stripe-style ID: user_xxx"`
	Email        string `gorm:"uniqueIndex;not null;size:255"`
	PasswordHash string `gorm:"not null;size:255"`
	Role         string `gorm:"not null;default:user;size:20"`
	Version      int    `gorm:"not null;default:1"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return constants.TableUsers
}

// BeforeCreate hook for GORM
func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.Role == "" {
		u.Role = "user"
	}
	if u.Version == 0 {
		u.Version = 1
	}
	return nil
}

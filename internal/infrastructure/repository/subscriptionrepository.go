// Package repository provides gorm-backed implementations of the domain
// repository interfaces.
package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/resumelift/resumelift/internal/domain/subscription"
	"github.com/resumelift/resumelift/internal/infrastructure/persistence/mappers"
	"github.com/resumelift/resumelift/internal/infrastructure/persistence/models"
	"github.com/resumelift/resumelift/internal/shared/biztime"
	"github.com/resumelift/resumelift/internal/shared/db"
	"github.com/resumelift/resumelift/internal/shared/logger"
)

type SubscriptionRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.SubscriptionMapper
	logger logger.Interface
}

func NewSubscriptionRepository(
	gdb *gorm.DB,
	logger logger.Interface,
) subscription.SubscriptionRepository {
	return &SubscriptionRepositoryImpl{
		db:     gdb,
		mapper: mappers.NewSubscriptionMapper(),
		logger: logger,
	}
}

func (r *SubscriptionRepositoryImpl) Create(ctx context.Context, sub *subscription.Subscription) error {
	model, err := r.mapper.ToModel(sub)
	if err != nil {
		r.logger.Errorw("failed to map subscription entity to model", "error", err)
		return fmt.Errorf("failed to map subscription entity: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		// The schema admits one active row per user, so a duplicate key here
		// means another writer activated a subscription first.
		if isDuplicateKeyError(err) {
			return subscription.ErrAlreadySubscribed
		}
		r.logger.Errorw("failed to create subscription in database", "error", err)
		return fmt.Errorf("failed to create subscription: %w", err)
	}

	if err := sub.SetID(model.ID); err != nil {
		r.logger.Errorw("failed to set subscription ID", "error", err)
		return fmt.Errorf("failed to set subscription ID: %w", err)
	}

	r.logger.Infow("subscription created", "id", model.ID, "user_id", model.UserID, "tier", model.Tier)
	return nil
}

// GetCurrentByUserID returns the newest subscription row for the user,
// active or canceled, or nil when the user never subscribed.
func (r *SubscriptionRepositoryImpl) GetCurrentByUserID(ctx context.Context, userID uint) (*subscription.Subscription, error) {
	var model models.SubscriptionModel

	err := db.GetTxFromContext(ctx, r.db).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get subscription by user ID", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		r.logger.Errorw("failed to map subscription model to entity", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to map subscription: %w", err)
	}

	return entity, nil
}

func (r *SubscriptionRepositoryImpl) GetBySID(ctx context.Context, sid string) (*subscription.Subscription, error) {
	var model models.SubscriptionModel

	if err := db.GetTxFromContext(ctx, r.db).Where("sid = ?", sid).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get subscription by SID", "sid", sid, "error", err)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		r.logger.Errorw("failed to map subscription model to entity", "sid", sid, "error", err)
		return nil, fmt.Errorf("failed to map subscription: %w", err)
	}

	return entity, nil
}

// UpdateWithVersion writes the full row guarded by the version the caller
// read. Zero affected rows means a concurrent writer got there first.
func (r *SubscriptionRepositoryImpl) UpdateWithVersion(ctx context.Context, sub *subscription.Subscription, expectedVersion int) error {
	model, err := r.mapper.ToModel(sub)
	if err != nil {
		r.logger.Errorw("failed to map subscription entity to model", "error", err)
		return fmt.Errorf("failed to map subscription entity: %w", err)
	}

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.SubscriptionModel{}).
		Where("id = ? AND version = ?", model.ID, expectedVersion).
		Updates(map[string]interface{}{
			"tier":             model.Tier,
			"status":           model.Status,
			"monthly_quota":    model.MonthlyQuota,
			"conversions_used": model.ConversionsUsed,
			"cycle_start":      model.CycleStart,
			"ended_at":         model.EndedAt,
			"version":          model.Version,
			"updated_at":       model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update subscription", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update subscription: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return subscription.ErrConcurrentModification
	}

	return nil
}

// IncrementUsage consumes one quota unit as a single conditional update, so
// two racing consumers can never both take the last unit. The version bumps
// in the same statement: any writer holding a copy read before the consume
// fails its version guard instead of writing the counter back stale.
func (r *SubscriptionRepositoryImpl) IncrementUsage(ctx context.Context, subscriptionID uint) error {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.SubscriptionModel{}).
		Where("id = ? AND conversions_used < monthly_quota", subscriptionID).
		Updates(map[string]interface{}{
			"conversions_used": gorm.Expr("conversions_used + 1"),
			"version":          gorm.Expr("version + 1"),
			"updated_at":       biztime.NowUTC(),
		})
	if result.Error != nil {
		r.logger.Errorw("failed to increment usage", "id", subscriptionID, "error", result.Error)
		return fmt.Errorf("failed to increment usage: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return subscription.ErrQuotaExceeded
	}

	return nil
}

// DecrementUsage refunds one quota unit, flooring at zero. Bumps the version
// for the same reason IncrementUsage does.
func (r *SubscriptionRepositoryImpl) DecrementUsage(ctx context.Context, subscriptionID uint) error {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.SubscriptionModel{}).
		Where("id = ? AND conversions_used > 0", subscriptionID).
		Updates(map[string]interface{}{
			"conversions_used": gorm.Expr("conversions_used - 1"),
			"version":          gorm.Expr("version + 1"),
			"updated_at":       biztime.NowUTC(),
		})
	if result.Error != nil {
		r.logger.Errorw("failed to decrement usage", "id", subscriptionID, "error", result.Error)
		return fmt.Errorf("failed to decrement usage: %w", result.Error)
	}

	return nil
}

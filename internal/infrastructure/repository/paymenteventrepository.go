package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/resumelift/resumelift/internal/domain/billing"
	"github.com/resumelift/resumelift/internal/infrastructure/persistence/mappers"
	"github.com/resumelift/resumelift/internal/infrastructure/persistence/models"
	"github.com/resumelift/resumelift/internal/shared/db"
	"github.com/resumelift/resumelift/internal/shared/logger"
)

type PaymentEventRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.PaymentEventMapper
	logger logger.Interface
}

func NewPaymentEventRepository(
	gdb *gorm.DB,
	logger logger.Interface,
) billing.PaymentEventRepository {
	return &PaymentEventRepositoryImpl{
		db:     gdb,
		mapper: mappers.NewPaymentEventMapper(),
		logger: logger,
	}
}

// Create records the event. The unique index on external_ref turns replays
// into ErrDuplicatePaymentEvent instead of a second row.
func (r *PaymentEventRepositoryImpl) Create(ctx context.Context, event *billing.PaymentEvent) error {
	model, err := r.mapper.ToModel(event)
	if err != nil {
		r.logger.Errorw("failed to map payment event to model", "error", err)
		return fmt.Errorf("failed to map payment event: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateKeyError(err) {
			return billing.ErrDuplicatePaymentEvent
		}
		r.logger.Errorw("failed to create payment event", "external_ref", model.ExternalRef, "error", err)
		return fmt.Errorf("failed to create payment event: %w", err)
	}

	if err := event.SetID(model.ID); err != nil {
		r.logger.Errorw("failed to set payment event ID", "error", err)
		return fmt.Errorf("failed to set payment event ID: %w", err)
	}

	return nil
}

func (r *PaymentEventRepositoryImpl) GetByExternalRef(ctx context.Context, externalRef string) (*billing.PaymentEvent, error) {
	var model models.PaymentEventModel

	if err := db.GetTxFromContext(ctx, r.db).Where("external_ref = ?", externalRef).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get payment event", "external_ref", externalRef, "error", err)
		return nil, fmt.Errorf("failed to get payment event: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

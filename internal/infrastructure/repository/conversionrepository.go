package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/resumelift/resumelift/internal/domain/conversion"
	"github.com/resumelift/resumelift/internal/infrastructure/persistence/mappers"
	"github.com/resumelift/resumelift/internal/infrastructure/persistence/models"
	"github.com/resumelift/resumelift/internal/shared/db"
	"github.com/resumelift/resumelift/internal/shared/logger"
)

type ConversionRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ConversionMapper
	logger logger.Interface
}

func NewConversionRepository(
	gdb *gorm.DB,
	logger logger.Interface,
) conversion.ConversionRepository {
	return &ConversionRepositoryImpl{
		db:     gdb,
		mapper: mappers.NewConversionMapper(),
		logger: logger,
	}
}

func (r *ConversionRepositoryImpl) Create(ctx context.Context, c *conversion.Conversion) error {
	model, err := r.mapper.ToModel(c)
	if err != nil {
		r.logger.Errorw("failed to map conversion entity to model", "error", err)
		return fmt.Errorf("failed to map conversion entity: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create conversion", "error", err)
		return fmt.Errorf("failed to create conversion: %w", err)
	}

	if err := c.SetID(model.ID); err != nil {
		r.logger.Errorw("failed to set conversion ID", "error", err)
		return fmt.Errorf("failed to set conversion ID: %w", err)
	}

	return nil
}

func (r *ConversionRepositoryImpl) GetBySID(ctx context.Context, sid string) (*conversion.Conversion, error) {
	var model models.ConversionModel

	if err := db.GetTxFromContext(ctx, r.db).Where("sid = ?", sid).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get conversion by SID", "sid", sid, "error", err)
		return nil, fmt.Errorf("failed to get conversion: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *ConversionRepositoryImpl) ListByUserID(ctx context.Context, userID uint, limit int) ([]*conversion.Conversion, error) {
	var convModels []*models.ConversionModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&convModels).Error; err != nil {
		r.logger.Errorw("failed to list conversions", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to list conversions: %w", err)
	}

	return r.mapper.ToEntities(convModels)
}

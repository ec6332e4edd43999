package usecases

import (
	"context"
	"fmt"

	"github.com/resumelift/resumelift/internal/domain/conversion"
	"github.com/resumelift/resumelift/internal/shared/logger"
)

const defaultHistoryLimit = 20

type ListConversionsUseCase struct {
	conversionRepo conversion.ConversionRepository
	logger         logger.Interface
}

func NewListConversionsUseCase(conversionRepo conversion.ConversionRepository, logger logger.Interface) *ListConversionsUseCase {
	return &ListConversionsUseCase{conversionRepo: conversionRepo, logger: logger}
}

// Execute lists the user's most recent conversions, newest first.
func (uc *ListConversionsUseCase) Execute(ctx context.Context, userID uint, limit int) ([]ConversionDTO, error) {
	if limit <= 0 || limit > 100 {
		limit = defaultHistoryLimit
	}

	convs, err := uc.conversionRepo.ListByUserID(ctx, userID, limit)
	if err != nil {
		uc.logger.Errorw("failed to list conversions", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to list conversions: %w", err)
	}

	out := make([]ConversionDTO, 0, len(convs))
	for _, c := range convs {
		out = append(out, toConversionDTO(c, ""))
	}
	return out, nil
}

package usecases

import (
	"context"
	"fmt"

	"github.com/resumelift/resumelift/internal/domain/conversion"
	"github.com/resumelift/resumelift/internal/shared/authorization"
	apperrors "github.com/resumelift/resumelift/internal/shared/errors"
	"github.com/resumelift/resumelift/internal/shared/logger"
	"github.com/resumelift/resumelift/internal/shared/services/markdown"
)

type GetConversionQuery struct {
	SID         string
	RequesterID uint
	Role        authorization.UserRole
	// RenderHTML asks for a sanitized HTML preview of the rewritten markdown.
	RenderHTML bool
}

type GetConversionUseCase struct {
	conversionRepo conversion.ConversionRepository
	markdown       markdown.MarkdownService
	logger         logger.Interface
}

func NewGetConversionUseCase(
	conversionRepo conversion.ConversionRepository,
	markdownSvc markdown.MarkdownService,
	logger logger.Interface,
) *GetConversionUseCase {
	return &GetConversionUseCase{
		conversionRepo: conversionRepo,
		markdown:       markdownSvc,
		logger:         logger,
	}
}

// Execute fetches one conversion. Non-admins may only read their own.
func (uc *GetConversionUseCase) Execute(ctx context.Context, q GetConversionQuery) (*ConversionDTO, error) {
	conv, err := uc.conversionRepo.GetBySID(ctx, q.SID)
	if err != nil {
		uc.logger.Errorw("failed to get conversion", "sid", q.SID, "error", err)
		return nil, fmt.Errorf("failed to get conversion: %w", err)
	}
	if conv == nil {
		return nil, apperrors.NewNotFoundError("conversion not found")
	}

	if !authorization.CanAccessResource(q.RequesterID, q.Role, conv) {
		return nil, apperrors.NewForbiddenError("access denied")
	}

	var resultHTML string
	if q.RenderHTML {
		resultHTML, err = uc.markdown.ToHTMLSanitized(conv.ResultText())
		if err != nil {
			uc.logger.Errorw("failed to render conversion preview", "sid", q.SID, "error", err)
			return nil, fmt.Errorf("failed to render preview: %w", err)
		}
	}

	dto := toConversionDTO(conv, resultHTML)
	return &dto, nil
}

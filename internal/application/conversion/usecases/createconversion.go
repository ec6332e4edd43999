package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/resumelift/resumelift/internal/domain/conversion"
	"github.com/resumelift/resumelift/internal/shared/biztime"
	apperrors "github.com/resumelift/resumelift/internal/shared/errors"
	"github.com/resumelift/resumelift/internal/shared/logger"
	"github.com/resumelift/resumelift/internal/shared/services/markdown"
)

// MaxSourceTextLen bounds submitted CV text. Anything longer is rejected
// before a quota unit is consumed.
const MaxSourceTextLen = 50_000

type CreateConversionCommand struct {
	UserID     uint
	TargetRole string
	SourceText string
}

type CreateConversionUseCase struct {
	quota          QuotaConsumer
	refunder       UsageRefunder
	rewriter       Rewriter
	conversionRepo conversion.ConversionRepository
	markdown       markdown.MarkdownService
	logger         logger.Interface
}

func NewCreateConversionUseCase(
	quota QuotaConsumer,
	refunder UsageRefunder,
	rewriter Rewriter,
	conversionRepo conversion.ConversionRepository,
	markdownSvc markdown.MarkdownService,
	logger logger.Interface,
) *CreateConversionUseCase {
	return &CreateConversionUseCase{
		quota:          quota,
		refunder:       refunder,
		rewriter:       rewriter,
		conversionRepo: conversionRepo,
		markdown:       markdownSvc,
		logger:         logger,
	}
}

// Execute rewrites one CV. The quota unit is consumed before the AI call and
// refunded if the rewrite fails, so a flaky upstream never burns quota.
// Admin-override consumers have nothing to refund.
func (uc *CreateConversionUseCase) Execute(ctx context.Context, cmd CreateConversionCommand) (*CreateConversionResult, error) {
	targetRole := strings.TrimSpace(cmd.TargetRole)
	if targetRole == "" {
		return nil, apperrors.NewValidationError("target role is required")
	}

	source := strings.TrimSpace(uc.markdown.StripTags(cmd.SourceText))
	if source == "" {
		return nil, apperrors.NewValidationError("cv text is required")
	}
	if len(source) > MaxSourceTextLen {
		return nil, apperrors.NewValidationError("cv text too long", fmt.Sprintf("maximum %d characters", MaxSourceTextLen))
	}

	quotaRes, err := uc.quota.Execute(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	rewrite, err := uc.rewriter.Rewrite(ctx, source, targetRole)
	if err != nil {
		uc.logger.Errorw("cv rewrite failed", "user_id", cmd.UserID, "error", err)
		uc.refundUnit(ctx, quotaRes.SubscriptionID, quotaRes.AdminOverride)
		return nil, apperrors.NewInternalError("cv rewrite failed, quota was not consumed")
	}

	conv, err := conversion.NewConversion(cmd.UserID, targetRole, source, rewrite.Text, rewrite.Model, biztime.NowUTC())
	if err != nil {
		uc.refundUnit(ctx, quotaRes.SubscriptionID, quotaRes.AdminOverride)
		return nil, fmt.Errorf("failed to build conversion: %w", err)
	}

	if err := uc.conversionRepo.Create(ctx, conv); err != nil {
		uc.logger.Errorw("failed to store conversion", "user_id", cmd.UserID, "error", err)
		uc.refundUnit(ctx, quotaRes.SubscriptionID, quotaRes.AdminOverride)
		return nil, fmt.Errorf("failed to store conversion: %w", err)
	}

	uc.logger.Infow("cv converted",
		"user_id", cmd.UserID,
		"conversion_sid", conv.SID(),
		"model", rewrite.Model,
		"quota_remaining", quotaRes.Entitlement.QuotaRemaining,
	)

	return &CreateConversionResult{
		Conversion:  toConversionDTO(conv, ""),
		Entitlement: quotaRes.Entitlement,
	}, nil
}

func (uc *CreateConversionUseCase) refundUnit(ctx context.Context, subscriptionID uint, adminOverride bool) {
	if adminOverride || subscriptionID == 0 {
		return
	}
	if err := uc.refunder.DecrementUsage(ctx, subscriptionID); err != nil {
		uc.logger.Errorw("failed to refund quota unit", "subscription_id", subscriptionID, "error", err)
	}
}

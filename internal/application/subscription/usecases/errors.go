package usecases

import (
	"errors"

	"github.com/resumelift/resumelift/internal/domain/subscription"
	apperrors "github.com/resumelift/resumelift/internal/shared/errors"
)

// toAppError translates domain errors into transport-mappable AppErrors.
// The routing layer is the only place HTTP codes are interpreted; domain
// components never log-and-swallow.
func toAppError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, subscription.ErrInvalidStatusTransition):
		return apperrors.NewConflictError("invalid subscription transition", err.Error())
	case errors.Is(err, subscription.ErrQuotaExceeded):
		return apperrors.NewQuotaExceededError("monthly conversion quota exhausted", "upgrade your plan to continue converting")
	case errors.Is(err, subscription.ErrNoEntitlement):
		return apperrors.NewForbiddenError("no active subscription", "subscribe to a plan to continue")
	case errors.Is(err, subscription.ErrUnknownPlan):
		return apperrors.NewValidationError("unknown plan", err.Error())
	case errors.Is(err, subscription.ErrConcurrentModification):
		return apperrors.NewConflictError("subscription busy, please try again")
	case errors.Is(err, subscription.ErrAlreadySubscribed):
		return apperrors.NewConflictError("subscription already active", err.Error())
	default:
		return err
	}
}

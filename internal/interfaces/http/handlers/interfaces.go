package handlers

import (
	"context"

	authusecases "github.com/resumelift/resumelift/internal/application/auth/usecases"
	billingusecases "github.com/resumelift/resumelift/internal/application/billing/usecases"
	convusecases "github.com/resumelift/resumelift/internal/application/conversion/usecases"
	subusecases "github.com/resumelift/resumelift/internal/application/subscription/usecases"
	"github.com/resumelift/resumelift/internal/domain/subscription"
)

// Narrow use case interfaces so handlers can be tested with stubs.

type registerUseCase interface {
	Execute(ctx context.Context, cmd authusecases.RegisterCommand) (*authusecases.UserDTO, error)
}

type loginUseCase interface {
	Execute(ctx context.Context, cmd authusecases.LoginCommand) (*authusecases.LoginResult, error)
}

type tokenRefresher interface {
	Refresh(refreshToken string) (*authusecases.TokenPair, error)
}

type listPlansUseCase interface {
	Execute(ctx context.Context) []subusecases.PlanDTO
}

type subscribeUseCase interface {
	Execute(ctx context.Context, cmd subusecases.SubscribeCommand) (*subscription.Entitlement, error)
}

type changePlanUseCase interface {
	Execute(ctx context.Context, cmd subusecases.ChangePlanCommand) (*subscription.Entitlement, error)
}

type cancelSubscriptionUseCase interface {
	Execute(ctx context.Context, userID uint) (*subscription.Entitlement, error)
}

type getEntitlementUseCase interface {
	Execute(ctx context.Context, userID uint) (*subscription.Entitlement, error)
}

type userEntitlementLookupUseCase interface {
	ExecuteBySID(ctx context.Context, sid string) (*subscription.Entitlement, error)
}

type createConversionUseCase interface {
	Execute(ctx context.Context, cmd convusecases.CreateConversionCommand) (*convusecases.CreateConversionResult, error)
}

type getConversionUseCase interface {
	Execute(ctx context.Context, q convusecases.GetConversionQuery) (*convusecases.ConversionDTO, error)
}

type listConversionsUseCase interface {
	Execute(ctx context.Context, userID uint, limit int) ([]convusecases.ConversionDTO, error)
}

type handlePaymentEventUseCase interface {
	Execute(ctx context.Context, cmd billingusecases.HandlePaymentEventCommand) error
}

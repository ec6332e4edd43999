package mappers

import (
	"github.com/resumelift/resumelift/internal/domain/billing"
	vo "github.com/resumelift/resumelift/internal/domain/subscription/valueobjects"
	"github.com/resumelift/resumelift/internal/infrastructure/persistence/models"
)

// PaymentEventMapper handles the conversion between domain entities and persistence models
type PaymentEventMapper interface {
	ToEntity(model *models.PaymentEventModel) (*billing.PaymentEvent, error)
	ToModel(entity *billing.PaymentEvent) (*models.PaymentEventModel, error)
}

type PaymentEventMapperImpl struct{}

// NewPaymentEventMapper creates a new payment event mapper
func NewPaymentEventMapper() PaymentEventMapper {
	return &PaymentEventMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity
func (m *PaymentEventMapperImpl) ToEntity(model *models.PaymentEventModel) (*billing.PaymentEvent, error) {
	if model == nil {
		return nil, nil
	}

	return billing.ReconstructPaymentEvent(
		model.ID,
		model.ExternalRef,
		model.UserSID,
		vo.Tier(model.Tier),
		model.Payload,
		model.ReceivedAt,
	)
}

// ToModel converts a domain entity to a persistence model
func (m *PaymentEventMapperImpl) ToModel(entity *billing.PaymentEvent) (*models.PaymentEventModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.PaymentEventModel{
		ID:          entity.ID(),
		ExternalRef: entity.ExternalRef(),
		UserSID:     entity.UserSID(),
		Tier:        entity.Tier().String(),
		Payload:     entity.Payload(),
		ReceivedAt:  entity.ReceivedAt(),
	}, nil
}

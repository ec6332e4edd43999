package mappers

import (
	"github.com/resumelift/resumelift/internal/domain/subscription"
	vo "github.com/resumelift/resumelift/internal/domain/subscription/valueobjects"
	"github.com/resumelift/resumelift/internal/infrastructure/persistence/models"
)

// SubscriptionMapper handles the conversion between domain entities and persistence models
type SubscriptionMapper interface {
	ToEntity(model *models.SubscriptionModel) (*subscription.Subscription, error)
	ToModel(entity *subscription.Subscription) (*models.SubscriptionModel, error)
	ToEntities(models []*models.SubscriptionModel) ([]*subscription.Subscription, error)
}

type SubscriptionMapperImpl struct{}

// NewSubscriptionMapper creates a new subscription mapper
func NewSubscriptionMapper() SubscriptionMapper {
	return &SubscriptionMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity
func (m *SubscriptionMapperImpl) ToEntity(model *models.SubscriptionModel) (*subscription.Subscription, error) {
	if model == nil {
		return nil, nil
	}

	return subscription.ReconstructSubscription(subscription.SubscriptionReconstructParams{
		ID:              model.ID,
		SID:             model.SID,
		UserID:          model.UserID,
		Tier:            vo.Tier(model.Tier),
		Status:          vo.SubscriptionStatus(model.Status),
		MonthlyQuota:    model.MonthlyQuota,
		ConversionsUsed: model.ConversionsUsed,
		CycleStart:      model.CycleStart,
		ExternalRef:     model.ExternalRef,
		EndedAt:         model.EndedAt,
		Version:         model.Version,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	})
}

// ToModel converts a domain entity to a persistence model
func (m *SubscriptionMapperImpl) ToModel(entity *subscription.Subscription) (*models.SubscriptionModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.SubscriptionModel{
		ID:              entity.ID(),
		SID:             entity.SID(),
		UserID:          entity.UserID(),
		Tier:            entity.Tier().String(),
		Status:          string(entity.Status()),
		MonthlyQuota:    entity.MonthlyQuota(),
		ConversionsUsed: entity.ConversionsUsed(),
		CycleStart:      entity.CycleStart(),
		ExternalRef:     entity.ExternalRef(),
		EndedAt:         entity.EndedAt(),
		Version:         entity.Version(),
		CreatedAt:       entity.CreatedAt(),
		UpdatedAt:       entity.UpdatedAt(),
	}, nil
}

// ToEntities converts multiple persistence models to domain entities
func (m *SubscriptionMapperImpl) ToEntities(subModels []*models.SubscriptionModel) ([]*subscription.Subscription, error) {
	entities := make([]*subscription.Subscription, 0, len(subModels))
	for _, model := range subModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

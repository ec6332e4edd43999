// Package mappers converts between domain aggregates and persistence models.
package mappers

import (
	"github.com/resumelift/resumelift/internal/domain/user"
	"github.com/resumelift/resumelift/internal/infrastructure/persistence/models"
	"github.com/resumelift/resumelift/internal/shared/authorization"
)

// UserMapper handles the conversion between domain entities and persistence models
type UserMapper interface {
	ToEntity(model *models.UserModel) (*user.User, error)
	ToModel(entity *user.User) (*models.UserModel, error)
	ToEntities(models []*models.UserModel) ([]*user.User, error)
}

type UserMapperImpl struct{}

// NewUserMapper creates a new user mapper
func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity
func (m *UserMapperImpl) ToEntity(model *models.UserModel) (*user.User, error) {
	if model == nil {
		return nil, nil
	}

	return user.ReconstructUser(user.UserReconstructParams{
		ID:           model.ID,
		SID:          model.SID,
		Email:        model.Email,
		PasswordHash: model.PasswordHash,
		Role:         authorization.ParseUserRole(model.Role),
		Version:      model.Version,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	})
}

// ToModel converts a domain entity to a persistence model
func (m *UserMapperImpl) ToModel(entity *user.User) (*models.UserModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.UserModel{
		ID:           entity.ID(),
		SID:          entity.SID(),
		Email:        entity.Email(),
		PasswordHash: entity.PasswordHash(),
		Role:         entity.Role().String(),
		Version:      entity.Version(),
		CreatedAt:    entity.CreatedAt(),
		UpdatedAt:    entity.UpdatedAt(),
	}, nil
}

// ToEntities converts multiple persistence models to domain entities
func (m *UserMapperImpl) ToEntities(userModels []*models.UserModel) ([]*user.User, error) {
	entities := make([]*user.User, 0, len(userModels))
	for _, model := range userModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

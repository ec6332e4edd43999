package mappers

import (
	"github.com/resumelift/resumelift/internal/domain/conversion"
	"github.com/resumelift/resumelift/internal/infrastructure/persistence/models"
)

// ConversionMapper handles the conversion between domain entities and persistence models
type ConversionMapper interface {
	ToEntity(model *models.ConversionModel) (*conversion.Conversion, error)
	ToModel(entity *conversion.Conversion) (*models.ConversionModel, error)
	ToEntities(models []*models.ConversionModel) ([]*conversion.Conversion, error)
}

type ConversionMapperImpl struct{}

// NewConversionMapper creates a new conversion mapper
func NewConversionMapper() ConversionMapper {
	return &ConversionMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity
func (m *ConversionMapperImpl) ToEntity(model *models.ConversionModel) (*conversion.Conversion, error) {
	if model == nil {
		return nil, nil
	}

	return conversion.ReconstructConversion(
		model.ID,
		model.SID,
		model.UserID,
		model.TargetRole,
		model.SourceText,
		model.ResultText,
		model.Model,
		model.CreatedAt,
	)
}

// ToModel converts a domain entity to a persistence model
func (m *ConversionMapperImpl) ToModel(entity *conversion.Conversion) (*models.ConversionModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.ConversionModel{
		ID:         entity.ID(),
		SID:        entity.SID(),
		UserID:     entity.UserID(),
		TargetRole: entity.TargetRole(),
		SourceText: entity.SourceText(),
		ResultText: entity.ResultText(),
		Model:      entity.Model(),
		CreatedAt:  entity.CreatedAt(),
	}, nil
}

// ToEntities converts multiple persistence models to domain entities
func (m *ConversionMapperImpl) ToEntities(convModels []*models.ConversionModel) ([]*conversion.Conversion, error) {
	entities := make([]*conversion.Conversion, 0, len(convModels))
	for _, model := range convModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

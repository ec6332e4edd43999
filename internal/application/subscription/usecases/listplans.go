package usecases

import (
	"context"

	"github.com/resumelift/resumelift/internal/domain/subscription"
)

// PlanDTO is the public view of one purchasable plan.
type PlanDTO struct {
	Tier         string `json:"tier"`
	MonthlyQuota int    `json:"monthly_quota"`
	Unlimited    bool   `json:"unlimited"`
	DisplayPrice string `json:"display_price"`
}

type ListPlansUseCase struct {
	catalog *subscription.Catalog
}

func NewListPlansUseCase(catalog *subscription.Catalog) *ListPlansUseCase {
	return &ListPlansUseCase{catalog: catalog}
}

// Execute returns the plan catalog in rank order, lowest tier first.
func (uc *ListPlansUseCase) Execute(_ context.Context) []PlanDTO {
	plans := uc.catalog.Plans()
	out := make([]PlanDTO, 0, len(plans))
	for _, p := range plans {
		out = append(out, PlanDTO{
			Tier:         p.Tier.String(),
			MonthlyQuota: p.MonthlyQuota,
			Unlimited:    p.Unlimited,
			DisplayPrice: p.DisplayPrice,
		})
	}
	return out
}

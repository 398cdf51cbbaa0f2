package usecases

import (
	"context"

	"rentora/internal/domain/subscription"
)

// PlanDTO is the public view of a subscription plan.
type PlanDTO struct {
	Tier         string   `json:"tier"`
	Name         string   `json:"name"`
	MonthlyPrice float64  `json:"monthly_price"`
	Features     []string `json:"features"`
}

// ListPlansUseCase returns the plan catalog. The catalog is compiled in,
// so this use case needs no authorization and no repository.
type ListPlansUseCase struct{}

func NewListPlansUseCase() *ListPlansUseCase {
	return &ListPlansUseCase{}
}

func (uc *ListPlansUseCase) Execute(ctx context.Context) []PlanDTO {
	plans := subscription.Plans()
	dtos := make([]PlanDTO, 0, len(plans))
	for _, p := range plans {
		dtos = append(dtos, PlanDTO{
			Tier:         p.Tier.String(),
			Name:         p.Name,
			MonthlyPrice: p.MonthlyPrice,
			Features:     p.Features,
		})
	}
	return dtos
}

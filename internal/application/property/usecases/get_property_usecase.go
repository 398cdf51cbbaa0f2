package usecases

import (
	"context"
	"time"

	"rentora/internal/domain/property"
	"rentora/internal/shared/authorization"
	"rentora/internal/shared/errors"
)

// PropertyDTO is the read model shared by the property queries.
type PropertyDTO struct {
	ID               uint       `json:"id"`
	OwnerID          uint       `json:"owner_id"`
	Title            string     `json:"title"`
	Address          string     `json:"address"`
	PricePerMonth    float64    `json:"price_per_month"`
	AdvanceAmount    float64    `json:"advance_amount"`
	ApprovalStatus   string     `json:"approval_status"`
	HasSubscription  bool       `json:"has_subscription"`
	SubscriptionTier string     `json:"subscription_tier"`
	AssignedStaffID  *uint      `json:"assigned_staff_id,omitempty"`
	Condition        string     `json:"condition"`
	LastInspectionAt *time.Time `json:"last_inspection_at,omitempty"`
	NextInspectionAt *time.Time `json:"next_inspection_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

func toPropertyDTO(p *property.Property) PropertyDTO {
	return PropertyDTO{
		ID:               p.ID(),
		OwnerID:          p.OwnerID(),
		Title:            p.Title(),
		Address:          p.Address(),
		PricePerMonth:    p.PricePerMonth(),
		AdvanceAmount:    p.AdvanceAmount(),
		ApprovalStatus:   p.ApprovalStatus().String(),
		HasSubscription:  p.HasSubscription(),
		SubscriptionTier: p.SubscriptionTier().String(),
		AssignedStaffID:  p.AssignedStaffID(),
		Condition:        p.Condition().String(),
		LastInspectionAt: p.LastInspectionAt(),
		NextInspectionAt: p.NextInspectionAt(),
		CreatedAt:        p.CreatedAt(),
	}
}

// GetPropertyUseCase returns one property. Tenants and staff only see
// approved listings; owners additionally see their own pending ones.
type GetPropertyUseCase struct {
	guard        *authorization.Guard
	propertyRepo property.Repository
}

func NewGetPropertyUseCase(guard *authorization.Guard, propertyRepo property.Repository) *GetPropertyUseCase {
	return &GetPropertyUseCase{guard: guard, propertyRepo: propertyRepo}
}

type GetPropertyCommand struct {
	Principal  authorization.Principal
	PropertyID uint
}

func (uc *GetPropertyUseCase) Execute(ctx context.Context, cmd GetPropertyCommand) (*PropertyDTO, error) {
	if err := uc.guard.Authorize(cmd.Principal, authorization.ActionPropertyRead, authorization.NoTarget()); err != nil {
		return nil, err
	}

	prop, err := uc.propertyRepo.FindByID(ctx, cmd.PropertyID)
	if err != nil {
		return nil, err
	}

	if !prop.ApprovalStatus().IsApproved() {
		visible := cmd.Principal.Role.IsAdmin() ||
			(cmd.Principal.Role.IsOwner() && prop.OwnerID() == cmd.Principal.ID)
		if !visible {
			return nil, errors.NewNotFoundError("property not found")
		}
	}

	dto := toPropertyDTO(prop)
	return &dto, nil
}

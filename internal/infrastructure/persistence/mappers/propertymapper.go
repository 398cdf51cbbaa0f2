package mappers

import (
	"rentora/internal/domain/entitlement"
	"rentora/internal/domain/property"
	vo "rentora/internal/domain/property/valueobjects"
	"rentora/internal/infrastructure/persistence/models"
)

// PropertyMapper handles conversion between the Property domain entity and
// its model.
type PropertyMapper interface {
	ToModel(p *property.Property) *models.PropertyModel
	ToDomain(model *models.PropertyModel) (*property.Property, error)
}

type PropertyMapperImpl struct{}

func NewPropertyMapper() PropertyMapper {
	return &PropertyMapperImpl{}
}

func (m *PropertyMapperImpl) ToModel(p *property.Property) *models.PropertyModel {
	return &models.PropertyModel{
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
		Version:          p.Version(),
		CreatedAt:        p.CreatedAt(),
		UpdatedAt:        p.UpdatedAt(),
	}
}

func (m *PropertyMapperImpl) ToDomain(model *models.PropertyModel) (*property.Property, error) {
	return property.ReconstructProperty(
		model.ID, model.OwnerID,
		model.Title, model.Address,
		model.PricePerMonth, model.AdvanceAmount,
		vo.ApprovalStatus(model.ApprovalStatus),
		model.HasSubscription,
		entitlement.Tier(model.SubscriptionTier),
		model.AssignedStaffID,
		vo.Condition(model.Condition),
		model.LastInspectionAt, model.NextInspectionAt,
		model.Version,
		model.CreatedAt, model.UpdatedAt,
	)
}

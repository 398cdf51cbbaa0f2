package mappers

import (
	"rentora/internal/domain/entitlement"
	"rentora/internal/domain/subscription"
	vo "rentora/internal/domain/subscription/valueobjects"
	"rentora/internal/infrastructure/persistence/models"
)

// SubscriptionMapper handles conversion between the Subscription domain
// entity and its model.
type SubscriptionMapper interface {
	ToModel(s *subscription.Subscription) *models.SubscriptionModel
	ToDomain(model *models.SubscriptionModel) (*subscription.Subscription, error)
}

type SubscriptionMapperImpl struct{}

func NewSubscriptionMapper() SubscriptionMapper {
	return &SubscriptionMapperImpl{}
}

func (m *SubscriptionMapperImpl) ToModel(s *subscription.Subscription) *models.SubscriptionModel {
	return &models.SubscriptionModel{
		ID:            s.ID(),
		PropertyID:    s.PropertyID(),
		OwnerID:       s.OwnerID(),
		Tier:          s.Tier().String(),
		Status:        s.Status().String(),
		StartDate:     s.StartDate(),
		EndDate:       s.EndDate(),
		Amount:        s.Amount(),
		PaymentMethod: s.PaymentMethod(),
		TransactionID: s.TransactionID(),
		AutoRenew:     s.AutoRenew(),
		CancelledAt:   s.CancelledAt(),
		Version:       s.Version(),
		CreatedAt:     s.CreatedAt(),
		UpdatedAt:     s.UpdatedAt(),
	}
}

func (m *SubscriptionMapperImpl) ToDomain(model *models.SubscriptionModel) (*subscription.Subscription, error) {
	return subscription.ReconstructSubscription(
		model.ID, model.PropertyID, model.OwnerID,
		entitlement.Tier(model.Tier),
		vo.SubscriptionStatus(model.Status),
		model.StartDate, model.EndDate,
		model.Amount,
		model.PaymentMethod, model.TransactionID,
		model.AutoRenew,
		model.CancelledAt,
		model.Version,
		model.CreatedAt, model.UpdatedAt,
	)
}

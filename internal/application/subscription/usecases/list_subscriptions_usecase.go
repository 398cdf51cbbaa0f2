package usecases

import (
	"context"
	"time"

	"rentora/internal/domain/subscription"
	"rentora/internal/shared/authorization"
	"rentora/internal/shared/errors"
)

// SubscriptionDTO is the subscription read model.
type SubscriptionDTO struct {
	ID            uint       `json:"id"`
	PropertyID    uint       `json:"property_id"`
	OwnerID       uint       `json:"owner_id"`
	Tier          string     `json:"tier"`
	Status        string     `json:"status"`
	StartDate     time.Time  `json:"start_date"`
	EndDate       time.Time  `json:"end_date"`
	Amount        float64    `json:"amount"`
	PaymentMethod string     `json:"payment_method"`
	AutoRenew     bool       `json:"auto_renew"`
	CancelledAt   *time.Time `json:"cancelled_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

func toSubscriptionDTO(s *subscription.Subscription) SubscriptionDTO {
	return SubscriptionDTO{
		ID:            s.ID(),
		PropertyID:    s.PropertyID(),
		OwnerID:       s.OwnerID(),
		Tier:          s.Tier().String(),
		Status:        s.Status().String(),
		StartDate:     s.StartDate(),
		EndDate:       s.EndDate(),
		Amount:        s.Amount(),
		PaymentMethod: s.PaymentMethod(),
		AutoRenew:     s.AutoRenew(),
		CancelledAt:   s.CancelledAt(),
		CreatedAt:     s.CreatedAt(),
	}
}

// ListSubscriptionsUseCase returns the caller's subscription history.
// Admins may inspect any owner's history via OwnerID.
type ListSubscriptionsUseCase struct {
	subscriptionRepo subscription.Repository
}

func NewListSubscriptionsUseCase(subscriptionRepo subscription.Repository) *ListSubscriptionsUseCase {
	return &ListSubscriptionsUseCase{subscriptionRepo: subscriptionRepo}
}

type ListSubscriptionsCommand struct {
	Principal authorization.Principal
	// OwnerID narrows to one owner; admins only, owners always see their own.
	OwnerID uint
}

type ListSubscriptionsResult struct {
	Subscriptions []SubscriptionDTO
}

func (uc *ListSubscriptionsUseCase) Execute(ctx context.Context, cmd ListSubscriptionsCommand) (*ListSubscriptionsResult, error) {
	ownerID := cmd.Principal.ID
	switch {
	case cmd.Principal.Role.IsOwner():
		// always the caller's own history
	case cmd.Principal.Role.IsAdmin():
		if cmd.OwnerID == 0 {
			return nil, errors.NewValidationError("owner ID is required")
		}
		ownerID = cmd.OwnerID
	default:
		return nil, errors.NewForbiddenError("subscriptions are not visible to this role")
	}

	subs, err := uc.subscriptionRepo.FindByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	dtos := make([]SubscriptionDTO, 0, len(subs))
	for _, s := range subs {
		dtos = append(dtos, toSubscriptionDTO(s))
	}
	return &ListSubscriptionsResult{Subscriptions: dtos}, nil
}

// GetSubscriptionUseCase returns a single subscription, visible to its
// owner and to admins.
type GetSubscriptionUseCase struct {
	subscriptionRepo subscription.Repository
}

func NewGetSubscriptionUseCase(subscriptionRepo subscription.Repository) *GetSubscriptionUseCase {
	return &GetSubscriptionUseCase{subscriptionRepo: subscriptionRepo}
}

type GetSubscriptionCommand struct {
	Principal      authorization.Principal
	SubscriptionID uint
}

func (uc *GetSubscriptionUseCase) Execute(ctx context.Context, cmd GetSubscriptionCommand) (*SubscriptionDTO, error) {
	sub, err := uc.subscriptionRepo.FindByID(ctx, cmd.SubscriptionID)
	if err != nil {
		return nil, err
	}
	if !cmd.Principal.Role.IsAdmin() && sub.OwnerID() != cmd.Principal.ID {
		return nil, errors.NewForbiddenError("subscription belongs to a different owner")
	}
	dto := toSubscriptionDTO(sub)
	return &dto, nil
}

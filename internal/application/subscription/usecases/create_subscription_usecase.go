package usecases

import (
	"context"
	"time"

	"rentora/internal/application/coordinator"
	"rentora/internal/domain/entitlement"
	"rentora/internal/domain/property"
	"rentora/internal/domain/shared/audit"
	"rentora/internal/domain/subscription"
	"rentora/internal/shared/authorization"
	"rentora/internal/shared/db"
	"rentora/internal/shared/errors"
	"rentora/internal/shared/logger"
)

// CreateSubscriptionUseCase activates a plan on one of the owner's
// properties. The subscription row and the mirrored flags on the property
// commit in one transaction; a second active subscription on the same
// property is a conflict.
type CreateSubscriptionUseCase struct {
	guard            *authorization.Guard
	subscriptionRepo subscription.Repository
	propertyRepo     property.Repository
	coordinator      coordinator.Coordinator
	txManager        db.Transactor
	logger           logger.Interface
}

func NewCreateSubscriptionUseCase(
	guard *authorization.Guard,
	subscriptionRepo subscription.Repository,
	propertyRepo property.Repository,
	coord coordinator.Coordinator,
	txManager db.Transactor,
	logger logger.Interface,
) *CreateSubscriptionUseCase {
	return &CreateSubscriptionUseCase{
		guard:            guard,
		subscriptionRepo: subscriptionRepo,
		propertyRepo:     propertyRepo,
		coordinator:      coord,
		txManager:        txManager,
		logger:           logger,
	}
}

type CreateSubscriptionCommand struct {
	Principal     authorization.Principal
	PropertyID    uint
	Tier          string
	PaymentMethod string
	TransactionID string
}

type CreateSubscriptionResult struct {
	SubscriptionID uint
	Tier           string
	Status         string
	Amount         float64
	EndDate        time.Time
	StateChange    audit.StateChange
}

func (uc *CreateSubscriptionUseCase) Execute(ctx context.Context, cmd CreateSubscriptionCommand) (*CreateSubscriptionResult, error) {
	prop, err := uc.propertyRepo.FindByID(ctx, cmd.PropertyID)
	if err != nil {
		return nil, err
	}

	if err := uc.guard.Authorize(cmd.Principal, authorization.ActionSubscriptionCreate, authorization.OwnedBy(prop.OwnerID())); err != nil {
		return nil, err
	}

	tier, err := entitlement.NewTier(cmd.Tier)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	existing, err := uc.subscriptionRepo.FindActiveByPropertyID(ctx, cmd.PropertyID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.NewConflictError("property already has an active subscription")
	}

	sub, err := subscription.NewSubscription(cmd.PropertyID, prop.OwnerID(), tier, cmd.PaymentMethod, cmd.TransactionID, time.Now())
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.subscriptionRepo.Save(txCtx, sub); err != nil {
			return err
		}
		return uc.coordinator.ApplySubscription(txCtx, cmd.PropertyID, tier)
	})
	if err != nil {
		uc.logger.Errorw("failed to activate subscription", "property_id", cmd.PropertyID, "error", err)
		return nil, err
	}

	uc.logger.Infow("subscription activated",
		"subscription_id", sub.ID(),
		"property_id", cmd.PropertyID,
		"tier", tier.String(),
	)

	return &CreateSubscriptionResult{
		SubscriptionID: sub.ID(),
		Tier:           sub.Tier().String(),
		Status:         sub.Status().String(),
		Amount:         sub.Amount(),
		EndDate:        sub.EndDate(),
		StateChange:    audit.NewStateChange("subscription", sub.ID(), "", sub.Status().String(), cmd.Principal.ID),
	}, nil
}

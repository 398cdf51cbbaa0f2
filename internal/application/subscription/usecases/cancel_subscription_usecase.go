package usecases

import (
	"context"

	"rentora/internal/application/coordinator"
	"rentora/internal/domain/shared/audit"
	"rentora/internal/domain/subscription"
	"rentora/internal/shared/authorization"
	"rentora/internal/shared/db"
	"rentora/internal/shared/errors"
	"rentora/internal/shared/logger"
)

// CancelSubscriptionUseCase cancels an active subscription and clears the
// mirrored flags on the property in the same transaction. The property
// drops back to the basic tier, so gated capabilities fail closed from
// the next check on.
type CancelSubscriptionUseCase struct {
	guard            *authorization.Guard
	subscriptionRepo subscription.Repository
	coordinator      coordinator.Coordinator
	txManager        db.Transactor
	logger           logger.Interface
}

func NewCancelSubscriptionUseCase(
	guard *authorization.Guard,
	subscriptionRepo subscription.Repository,
	coord coordinator.Coordinator,
	txManager db.Transactor,
	logger logger.Interface,
) *CancelSubscriptionUseCase {
	return &CancelSubscriptionUseCase{
		guard:            guard,
		subscriptionRepo: subscriptionRepo,
		coordinator:      coord,
		txManager:        txManager,
		logger:           logger,
	}
}

type CancelSubscriptionCommand struct {
	Principal      authorization.Principal
	SubscriptionID uint
}

type CancelSubscriptionResult struct {
	SubscriptionID uint
	Status         string
	StateChange    audit.StateChange
}

func (uc *CancelSubscriptionUseCase) Execute(ctx context.Context, cmd CancelSubscriptionCommand) (*CancelSubscriptionResult, error) {
	sub, err := uc.subscriptionRepo.FindByID(ctx, cmd.SubscriptionID)
	if err != nil {
		return nil, err
	}

	if err := uc.guard.Authorize(cmd.Principal, authorization.ActionSubscriptionCancel, authorization.OwnedBy(sub.OwnerID())); err != nil {
		return nil, err
	}

	from := sub.Status().String()
	if err := sub.Cancel(); err != nil {
		return nil, errors.NewInvalidStateError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.subscriptionRepo.Update(txCtx, sub); err != nil {
			return err
		}
		return uc.coordinator.ClearSubscription(txCtx, sub.PropertyID())
	})
	if err != nil {
		uc.logger.Errorw("failed to cancel subscription", "subscription_id", cmd.SubscriptionID, "error", err)
		return nil, err
	}

	uc.logger.Infow("subscription cancelled",
		"subscription_id", sub.ID(),
		"property_id", sub.PropertyID(),
	)

	return &CancelSubscriptionResult{
		SubscriptionID: sub.ID(),
		Status:         sub.Status().String(),
		StateChange:    audit.NewStateChange("subscription", sub.ID(), from, sub.Status().String(), cmd.Principal.ID),
	}, nil
}

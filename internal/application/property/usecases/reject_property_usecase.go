package usecases

import (
	"context"

	"rentora/internal/domain/property"
	"rentora/internal/domain/shared/audit"
	"rentora/internal/shared/authorization"
	"rentora/internal/shared/errors"
	"rentora/internal/shared/logger"
)

// RejectPropertyUseCase handles an admin rejecting a pending listing.
// Rejection is terminal; the owner must submit a fresh listing.
type RejectPropertyUseCase struct {
	guard        *authorization.Guard
	propertyRepo property.Repository
	logger       logger.Interface
}

func NewRejectPropertyUseCase(
	guard *authorization.Guard,
	propertyRepo property.Repository,
	logger logger.Interface,
) *RejectPropertyUseCase {
	return &RejectPropertyUseCase{
		guard:        guard,
		propertyRepo: propertyRepo,
		logger:       logger,
	}
}

type RejectPropertyCommand struct {
	Principal  authorization.Principal
	PropertyID uint
}

type RejectPropertyResult struct {
	PropertyID     uint
	ApprovalStatus string
	StateChange    audit.StateChange
}

func (uc *RejectPropertyUseCase) Execute(ctx context.Context, cmd RejectPropertyCommand) (*RejectPropertyResult, error) {
	if err := uc.guard.Authorize(cmd.Principal, authorization.ActionPropertyReject, authorization.NoTarget()); err != nil {
		return nil, err
	}

	prop, err := uc.propertyRepo.FindByID(ctx, cmd.PropertyID)
	if err != nil {
		return nil, err
	}

	from := prop.ApprovalStatus().String()
	if err := prop.Reject(); err != nil {
		return nil, errors.NewInvalidStateError(err.Error())
	}

	if err := uc.propertyRepo.Update(ctx, prop); err != nil {
		uc.logger.Errorw("failed to update property", "property_id", cmd.PropertyID, "error", err)
		return nil, err
	}

	uc.logger.Infow("property rejected",
		"property_id", prop.ID(),
		"admin_id", cmd.Principal.ID,
	)

	return &RejectPropertyResult{
		PropertyID:     prop.ID(),
		ApprovalStatus: prop.ApprovalStatus().String(),
		StateChange:    audit.NewStateChange("property", prop.ID(), from, prop.ApprovalStatus().String(), cmd.Principal.ID),
	}, nil
}

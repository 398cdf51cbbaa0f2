package usecases

import (
	"context"

	"rentora/internal/domain/property"
	"rentora/internal/domain/shared/audit"
	"rentora/internal/shared/authorization"
	"rentora/internal/shared/errors"
	"rentora/internal/shared/logger"
)

// ApprovePropertyUseCase handles an admin approving a pending listing.
type ApprovePropertyUseCase struct {
	guard        *authorization.Guard
	propertyRepo property.Repository
	logger       logger.Interface
}

func NewApprovePropertyUseCase(
	guard *authorization.Guard,
	propertyRepo property.Repository,
	logger logger.Interface,
) *ApprovePropertyUseCase {
	return &ApprovePropertyUseCase{
		guard:        guard,
		propertyRepo: propertyRepo,
		logger:       logger,
	}
}

type ApprovePropertyCommand struct {
	Principal  authorization.Principal
	PropertyID uint
}

type ApprovePropertyResult struct {
	PropertyID     uint
	ApprovalStatus string
	StateChange    audit.StateChange
}

func (uc *ApprovePropertyUseCase) Execute(ctx context.Context, cmd ApprovePropertyCommand) (*ApprovePropertyResult, error) {
	if err := uc.guard.Authorize(cmd.Principal, authorization.ActionPropertyApprove, authorization.NoTarget()); err != nil {
		return nil, err
	}

	prop, err := uc.propertyRepo.FindByID(ctx, cmd.PropertyID)
	if err != nil {
		return nil, err
	}

	from := prop.ApprovalStatus().String()
	if err := prop.Approve(); err != nil {
		return nil, errors.NewInvalidStateError(err.Error())
	}

	if err := uc.propertyRepo.Update(ctx, prop); err != nil {
		uc.logger.Errorw("failed to update property", "property_id", cmd.PropertyID, "error", err)
		return nil, err
	}

	uc.logger.Infow("property approved",
		"property_id", prop.ID(),
		"admin_id", cmd.Principal.ID,
	)

	return &ApprovePropertyResult{
		PropertyID:     prop.ID(),
		ApprovalStatus: prop.ApprovalStatus().String(),
		StateChange:    audit.NewStateChange("property", prop.ID(), from, prop.ApprovalStatus().String(), cmd.Principal.ID),
	}, nil
}

package usecases

import (
	"context"
	"fmt"

	"rentora/internal/domain/property"
	"rentora/internal/domain/shared/audit"
	"rentora/internal/domain/user"
	"rentora/internal/shared/authorization"
	"rentora/internal/shared/errors"
	"rentora/internal/shared/logger"
)

// TransferOwnershipUseCase reassigns a property to a different owner.
// Report forwarding resolves the owner at forward time, so a report
// submitted before the transfer escalates to the new owner.
type TransferOwnershipUseCase struct {
	guard        *authorization.Guard
	propertyRepo property.Repository
	userRepo     user.Repository
	logger       logger.Interface
}

func NewTransferOwnershipUseCase(
	guard *authorization.Guard,
	propertyRepo property.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *TransferOwnershipUseCase {
	return &TransferOwnershipUseCase{
		guard:        guard,
		propertyRepo: propertyRepo,
		userRepo:     userRepo,
		logger:       logger,
	}
}

type TransferOwnershipCommand struct {
	Principal  authorization.Principal
	PropertyID uint
	NewOwnerID uint
}

type TransferOwnershipResult struct {
	PropertyID      uint
	PreviousOwnerID uint
	NewOwnerID      uint
	StateChange     audit.StateChange
}

func (uc *TransferOwnershipUseCase) Execute(ctx context.Context, cmd TransferOwnershipCommand) (*TransferOwnershipResult, error) {
	if err := uc.guard.Authorize(cmd.Principal, authorization.ActionPropertyTransferOwner, authorization.NoTarget()); err != nil {
		return nil, err
	}

	newOwner, err := uc.userRepo.FindByID(ctx, cmd.NewOwnerID)
	if err != nil {
		return nil, err
	}
	if !newOwner.Role().IsOwner() && !newOwner.Role().IsAdmin() {
		return nil, errors.NewValidationError("new owner must hold the owner or admin role")
	}

	prop, err := uc.propertyRepo.FindByID(ctx, cmd.PropertyID)
	if err != nil {
		return nil, err
	}

	previousOwnerID := prop.OwnerID()
	if err := prop.TransferOwner(cmd.NewOwnerID); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.propertyRepo.Update(ctx, prop); err != nil {
		uc.logger.Errorw("failed to update property", "property_id", cmd.PropertyID, "error", err)
		return nil, err
	}

	uc.logger.Infow("property ownership transferred",
		"property_id", prop.ID(),
		"previous_owner_id", previousOwnerID,
		"new_owner_id", cmd.NewOwnerID,
		"admin_id", cmd.Principal.ID,
	)

	return &TransferOwnershipResult{
		PropertyID:      prop.ID(),
		PreviousOwnerID: previousOwnerID,
		NewOwnerID:      cmd.NewOwnerID,
		StateChange: audit.NewStateChange("property", prop.ID(),
			fmt.Sprintf("owner:%d", previousOwnerID), fmt.Sprintf("owner:%d", cmd.NewOwnerID), cmd.Principal.ID),
	}, nil
}

package usecases

import (
	"context"

	"rentora/internal/application/coordinator"
	"rentora/internal/domain/assignment"
	"rentora/internal/domain/user"
	"rentora/internal/shared/authorization"
	"rentora/internal/shared/db"
	"rentora/internal/shared/errors"
	"rentora/internal/shared/logger"
)

// RemoveStaffUseCase deactivates a staff account. Open assignments are
// cancelled and every property pointing at the staff member is released in
// the same transaction, so no property is left referencing a gone account.
type RemoveStaffUseCase struct {
	guard          *authorization.Guard
	userRepo       user.Repository
	assignmentRepo assignment.Repository
	coordinator    coordinator.Coordinator
	txManager      db.Transactor
	logger         logger.Interface
}

func NewRemoveStaffUseCase(
	guard *authorization.Guard,
	userRepo user.Repository,
	assignmentRepo assignment.Repository,
	coord coordinator.Coordinator,
	txManager db.Transactor,
	logger logger.Interface,
) *RemoveStaffUseCase {
	return &RemoveStaffUseCase{
		guard:          guard,
		userRepo:       userRepo,
		assignmentRepo: assignmentRepo,
		coordinator:    coord,
		txManager:      txManager,
		logger:         logger,
	}
}

type RemoveStaffCommand struct {
	Principal authorization.Principal
	StaffID   uint
}

type RemoveStaffResult struct {
	StaffID            uint
	ReleasedProperties []uint
}

func (uc *RemoveStaffUseCase) Execute(ctx context.Context, cmd RemoveStaffCommand) (*RemoveStaffResult, error) {
	if err := uc.guard.Authorize(cmd.Principal, authorization.ActionStaffRemove, authorization.NoTarget()); err != nil {
		return nil, err
	}

	staff, err := uc.userRepo.FindByID(ctx, cmd.StaffID)
	if err != nil {
		return nil, err
	}
	if !staff.Role().IsStaff() {
		return nil, errors.NewValidationError("user is not a staff member")
	}
	if !staff.IsActive() {
		return nil, errors.NewInvalidStateError("staff account is already deactivated")
	}

	released := append([]uint(nil), staff.AssignedPropertyIDs()...)

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.assignmentRepo.CancelActiveByStaffID(txCtx, cmd.StaffID); err != nil {
			return err
		}
		for _, propertyID := range released {
			if err := uc.coordinator.DetachStaffFromProperty(txCtx, propertyID, cmd.StaffID); err != nil {
				return err
			}
		}

		// Detaching rewrites the staff roster, so reload before deactivating.
		fresh, err := uc.userRepo.FindByID(txCtx, cmd.StaffID)
		if err != nil {
			return err
		}
		fresh.Deactivate()
		return uc.userRepo.Update(txCtx, fresh)
	})
	if err != nil {
		uc.logger.Errorw("failed to remove staff", "staff_id", cmd.StaffID, "error", err)
		return nil, err
	}

	uc.logger.Infow("staff account removed",
		"staff_id", cmd.StaffID,
		"released_properties", len(released),
	)

	return &RemoveStaffResult{StaffID: cmd.StaffID, ReleasedProperties: released}, nil
}

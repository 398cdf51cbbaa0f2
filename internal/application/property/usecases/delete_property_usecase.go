package usecases

import (
	"context"
	"fmt"

	"rentora/internal/application/coordinator"
	"rentora/internal/domain/assignment"
	"rentora/internal/domain/booking"
	"rentora/internal/domain/property"
	"rentora/internal/shared/authorization"
	"rentora/internal/shared/db"
	"rentora/internal/shared/errors"
	"rentora/internal/shared/logger"
)

// DeletePropertyUseCase removes a listing. Deletion is refused while any
// live booking exists; an open staff assignment is cancelled and the staff
// member's roster detached as part of the same transaction.
type DeletePropertyUseCase struct {
	guard          *authorization.Guard
	propertyRepo   property.Repository
	bookingRepo    booking.Repository
	assignmentRepo assignment.Repository
	coordinator    coordinator.Coordinator
	txManager      db.Transactor
	logger         logger.Interface
}

func NewDeletePropertyUseCase(
	guard *authorization.Guard,
	propertyRepo property.Repository,
	bookingRepo booking.Repository,
	assignmentRepo assignment.Repository,
	coord coordinator.Coordinator,
	txManager db.Transactor,
	logger logger.Interface,
) *DeletePropertyUseCase {
	return &DeletePropertyUseCase{
		guard:          guard,
		propertyRepo:   propertyRepo,
		bookingRepo:    bookingRepo,
		assignmentRepo: assignmentRepo,
		coordinator:    coord,
		txManager:      txManager,
		logger:         logger,
	}
}

type DeletePropertyCommand struct {
	Principal  authorization.Principal
	PropertyID uint
}

func (uc *DeletePropertyUseCase) Execute(ctx context.Context, cmd DeletePropertyCommand) error {
	prop, err := uc.propertyRepo.FindByID(ctx, cmd.PropertyID)
	if err != nil {
		return err
	}

	if err := uc.guard.Authorize(cmd.Principal, authorization.ActionPropertyDelete, authorization.OwnedBy(prop.OwnerID())); err != nil {
		return err
	}

	live, err := uc.bookingRepo.CountNonTerminalByPropertyID(ctx, cmd.PropertyID)
	if err != nil {
		return err
	}
	if live > 0 {
		return errors.NewPreconditionError(
			fmt.Sprintf("property has %d live bookings", live))
	}

	return uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		active, err := uc.assignmentRepo.FindActiveByPropertyID(txCtx, cmd.PropertyID)
		if err != nil {
			return err
		}
		if active != nil {
			if err := active.Cancel(); err != nil {
				return errors.NewInvalidStateError(err.Error())
			}
			if err := uc.assignmentRepo.Update(txCtx, active); err != nil {
				return err
			}
			if err := uc.coordinator.DetachStaffFromProperty(txCtx, cmd.PropertyID, active.StaffID()); err != nil {
				return err
			}
		}

		if err := uc.propertyRepo.Delete(txCtx, cmd.PropertyID); err != nil {
			return err
		}

		uc.logger.Infow("property deleted",
			"property_id", cmd.PropertyID,
			"actor_id", cmd.Principal.ID,
		)
		return nil
	})
}

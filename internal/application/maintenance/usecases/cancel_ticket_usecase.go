package usecases

import (
	"context"

	"rentora/internal/domain/maintenance"
	"rentora/internal/domain/property"
	"rentora/internal/domain/shared/audit"
	"rentora/internal/shared/authorization"
	"rentora/internal/shared/errors"
	"rentora/internal/shared/logger"
)

// CancelTicketUseCase withdraws a ticket that is not yet finished.
type CancelTicketUseCase struct {
	guard           *authorization.Guard
	maintenanceRepo maintenance.Repository
	propertyRepo    property.Repository
	logger          logger.Interface
}

func NewCancelTicketUseCase(
	guard *authorization.Guard,
	maintenanceRepo maintenance.Repository,
	propertyRepo property.Repository,
	logger logger.Interface,
) *CancelTicketUseCase {
	return &CancelTicketUseCase{
		guard:           guard,
		maintenanceRepo: maintenanceRepo,
		propertyRepo:    propertyRepo,
		logger:          logger,
	}
}

type CancelTicketCommand struct {
	Principal authorization.Principal
	TicketID  uint
}

type CancelTicketResult struct {
	TicketID    uint
	Status      string
	StateChange audit.StateChange
}

func (uc *CancelTicketUseCase) Execute(ctx context.Context, cmd CancelTicketCommand) (*CancelTicketResult, error) {
	ticket, err := uc.maintenanceRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}
	prop, err := uc.propertyRepo.FindByID(ctx, ticket.PropertyID())
	if err != nil {
		return nil, err
	}

	if err := uc.guard.Authorize(cmd.Principal, authorization.ActionMaintenanceCancel, authorization.OwnedBy(prop.OwnerID())); err != nil {
		return nil, err
	}

	from := ticket.Status().String()
	if err := ticket.Cancel(); err != nil {
		return nil, errors.NewInvalidStateError(err.Error())
	}
	if err := uc.maintenanceRepo.Update(ctx, ticket); err != nil {
		return nil, err
	}

	uc.logger.Infow("maintenance ticket cancelled", "ticket_id", ticket.ID())

	return &CancelTicketResult{
		TicketID:    ticket.ID(),
		Status:      ticket.Status().String(),
		StateChange: audit.NewStateChange("maintenance_ticket", ticket.ID(), from, ticket.Status().String(), cmd.Principal.ID),
	}, nil
}

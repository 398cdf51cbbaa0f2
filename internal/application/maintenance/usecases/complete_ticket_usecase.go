package usecases

import (
	"context"
	"time"

	"rentora/internal/application/coordinator"
	"rentora/internal/domain/maintenance"
	"rentora/internal/domain/property"
	propertyvo "rentora/internal/domain/property/valueobjects"
	"rentora/internal/domain/shared/audit"
	"rentora/internal/shared/authorization"
	"rentora/internal/shared/db"
	"rentora/internal/shared/errors"
	"rentora/internal/shared/logger"
)

// CompleteTicketUseCase closes out maintenance work. Completion counts as an
// inspection of the property, so the property's condition and last-inspection
// stamp are refreshed in the same transaction.
type CompleteTicketUseCase struct {
	guard           *authorization.Guard
	maintenanceRepo maintenance.Repository
	propertyRepo    property.Repository
	coordinator     coordinator.Coordinator
	txManager       db.Transactor
	logger          logger.Interface
}

func NewCompleteTicketUseCase(
	guard *authorization.Guard,
	maintenanceRepo maintenance.Repository,
	propertyRepo property.Repository,
	coord coordinator.Coordinator,
	txManager db.Transactor,
	logger logger.Interface,
) *CompleteTicketUseCase {
	return &CompleteTicketUseCase{
		guard:           guard,
		maintenanceRepo: maintenanceRepo,
		propertyRepo:    propertyRepo,
		coordinator:     coord,
		txManager:       txManager,
		logger:          logger,
	}
}

type CompleteTicketCommand struct {
	Principal       authorization.Principal
	TicketID        uint
	CompletionNotes string
	ActualCost      float64
}

type CompleteTicketResult struct {
	TicketID    uint
	Status      string
	ActualCost  float64
	StateChange audit.StateChange
}

func (uc *CompleteTicketUseCase) Execute(ctx context.Context, cmd CompleteTicketCommand) (*CompleteTicketResult, error) {
	ticket, err := uc.maintenanceRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}
	prop, err := uc.propertyRepo.FindByID(ctx, ticket.PropertyID())
	if err != nil {
		return nil, err
	}

	ownerID := prop.OwnerID()
	rel := authorization.Relation{OwnerID: &ownerID, StaffID: ticket.AssignedStaffID()}
	if err := uc.guard.Authorize(cmd.Principal, authorization.ActionMaintenanceComplete, rel); err != nil {
		return nil, err
	}

	from := ticket.Status().String()
	if err := ticket.Complete(cmd.CompletionNotes, cmd.ActualCost); err != nil {
		return nil, errors.NewInvalidStateError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.maintenanceRepo.Update(txCtx, ticket); err != nil {
			return err
		}
		return uc.coordinator.RecordInspectionOutcome(txCtx, ticket.PropertyID(), propertyvo.ConditionGood, time.Now(), nil)
	})
	if err != nil {
		uc.logger.Errorw("failed to complete maintenance ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("maintenance ticket completed",
		"ticket_id", ticket.ID(),
		"property_id", ticket.PropertyID(),
		"actual_cost", cmd.ActualCost,
	)

	return &CompleteTicketResult{
		TicketID:    ticket.ID(),
		Status:      ticket.Status().String(),
		ActualCost:  ticket.ActualCost(),
		StateChange: audit.NewStateChange("maintenance_ticket", ticket.ID(), from, ticket.Status().String(), cmd.Principal.ID),
	}, nil
}

package usecases

import (
	"context"
	"time"

	"rentora/internal/application/coordinator"
	"rentora/internal/domain/entitlement"
	"rentora/internal/domain/maintenance"
	maintenancevo "rentora/internal/domain/maintenance/valueobjects"
	"rentora/internal/domain/property"
	"rentora/internal/domain/shared/audit"
	"rentora/internal/shared/authorization"
	"rentora/internal/shared/db"
	"rentora/internal/shared/errors"
	"rentora/internal/shared/logger"
)

// CreateTicketUseCase raises a maintenance ticket on a property the owner
// holds. An urgent ticket immediately degrades the property's condition.
type CreateTicketUseCase struct {
	guard           *authorization.Guard
	gate            *entitlement.Gate
	maintenanceRepo maintenance.Repository
	propertyRepo    property.Repository
	coordinator     coordinator.Coordinator
	txManager       db.Transactor
	logger          logger.Interface
}

func NewCreateTicketUseCase(
	guard *authorization.Guard,
	gate *entitlement.Gate,
	maintenanceRepo maintenance.Repository,
	propertyRepo property.Repository,
	coord coordinator.Coordinator,
	txManager db.Transactor,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		guard:           guard,
		gate:            gate,
		maintenanceRepo: maintenanceRepo,
		propertyRepo:    propertyRepo,
		coordinator:     coord,
		txManager:       txManager,
		logger:          logger,
	}
}

type CreateTicketCommand struct {
	Principal     authorization.Principal
	PropertyID    uint
	Kind          string
	Priority      string
	Title         string
	Description   string
	ScheduledDate *time.Time
	EstimatedCost float64
}

type CreateTicketResult struct {
	TicketID    uint
	Status      string
	Priority    string
	StateChange audit.StateChange
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	prop, err := uc.propertyRepo.FindByID(ctx, cmd.PropertyID)
	if err != nil {
		return nil, err
	}

	if err := uc.guard.Authorize(cmd.Principal, authorization.ActionMaintenanceCreate, authorization.OwnedBy(prop.OwnerID())); err != nil {
		return nil, err
	}
	if !uc.gate.IsEntitled(prop, entitlement.CapabilityMaintenanceTracking) {
		return nil, errors.NewForbiddenError("maintenance tracking requires an active premium or enterprise subscription")
	}

	kind, err := maintenancevo.NewTicketKind(cmd.Kind)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	priority, err := maintenancevo.NewPriority(cmd.Priority)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	ticket, err := maintenance.NewTicket(cmd.PropertyID, cmd.Principal.ID, kind, priority, cmd.Title, cmd.Description, cmd.ScheduledDate, cmd.EstimatedCost, time.Now())
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.maintenanceRepo.Save(txCtx, ticket); err != nil {
			return err
		}
		if priority.IsUrgent() {
			return uc.coordinator.FlagUrgentMaintenance(txCtx, cmd.PropertyID)
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to create maintenance ticket", "property_id", cmd.PropertyID, "error", err)
		return nil, err
	}

	uc.logger.Infow("maintenance ticket created",
		"ticket_id", ticket.ID(),
		"property_id", cmd.PropertyID,
		"priority", priority.String(),
	)

	return &CreateTicketResult{
		TicketID:    ticket.ID(),
		Status:      ticket.Status().String(),
		Priority:    ticket.Priority().String(),
		StateChange: audit.NewStateChange("maintenance_ticket", ticket.ID(), "", ticket.Status().String(), cmd.Principal.ID),
	}, nil
}

package usecases

import (
	"context"

	"rentora/internal/domain/maintenance"
	"rentora/internal/domain/shared/audit"
	"rentora/internal/domain/user"
	"rentora/internal/shared/authorization"
	"rentora/internal/shared/errors"
	"rentora/internal/shared/logger"
)

// AssignTicketStaffUseCase hands a pending ticket to a staff member, which
// moves the ticket to in_progress.
type AssignTicketStaffUseCase struct {
	guard           *authorization.Guard
	maintenanceRepo maintenance.Repository
	userRepo        user.Repository
	logger          logger.Interface
}

func NewAssignTicketStaffUseCase(
	guard *authorization.Guard,
	maintenanceRepo maintenance.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *AssignTicketStaffUseCase {
	return &AssignTicketStaffUseCase{
		guard:           guard,
		maintenanceRepo: maintenanceRepo,
		userRepo:        userRepo,
		logger:          logger,
	}
}

type AssignTicketStaffCommand struct {
	Principal authorization.Principal
	TicketID  uint
	StaffID   uint
}

type AssignTicketStaffResult struct {
	TicketID    uint
	StaffID     uint
	Status      string
	StateChange audit.StateChange
}

func (uc *AssignTicketStaffUseCase) Execute(ctx context.Context, cmd AssignTicketStaffCommand) (*AssignTicketStaffResult, error) {
	if err := uc.guard.Authorize(cmd.Principal, authorization.ActionMaintenanceAssignStaff, authorization.NoTarget()); err != nil {
		return nil, err
	}

	ticket, err := uc.maintenanceRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	staff, err := uc.userRepo.FindByID(ctx, cmd.StaffID)
	if err != nil {
		return nil, err
	}
	if !staff.Role().IsStaff() {
		return nil, errors.NewValidationError("assignee must have the staff role")
	}

	from := ticket.Status().String()
	if err := ticket.AssignStaff(cmd.StaffID); err != nil {
		return nil, errors.NewInvalidStateError(err.Error())
	}
	if err := uc.maintenanceRepo.Update(ctx, ticket); err != nil {
		return nil, err
	}

	uc.logger.Infow("maintenance ticket assigned",
		"ticket_id", ticket.ID(),
		"staff_id", cmd.StaffID,
	)

	return &AssignTicketStaffResult{
		TicketID:    ticket.ID(),
		StaffID:     cmd.StaffID,
		Status:      ticket.Status().String(),
		StateChange: audit.NewStateChange("maintenance_ticket", ticket.ID(), from, ticket.Status().String(), cmd.Principal.ID),
	}, nil
}

package usecases

import (
	"context"
	"time"

	"rentora/internal/application/coordinator"
	"rentora/internal/domain/assignment"
	assignmentvo "rentora/internal/domain/assignment/valueobjects"
	"rentora/internal/domain/shared/audit"
	"rentora/internal/domain/entitlement"
	"rentora/internal/domain/property"
	"rentora/internal/domain/user"
	"rentora/internal/shared/authorization"
	"rentora/internal/shared/db"
	"rentora/internal/shared/errors"
	"rentora/internal/shared/logger"
)

// AssignStaffUseCase creates or refreshes the single staff assignment on
// a property. Re-assigning the same staff member updates the existing
// assignment in place; a different staff member while one is open is a
// conflict. The insert itself is conditional, so two concurrent assigns
// cannot both win.
type AssignStaffUseCase struct {
	guard          *authorization.Guard
	gate           *entitlement.Gate
	assignmentRepo assignment.Repository
	propertyRepo   property.Repository
	userRepo       user.Repository
	coordinator    coordinator.Coordinator
	txManager      db.Transactor
	logger         logger.Interface
}

func NewAssignStaffUseCase(
	guard *authorization.Guard,
	gate *entitlement.Gate,
	assignmentRepo assignment.Repository,
	propertyRepo property.Repository,
	userRepo user.Repository,
	coord coordinator.Coordinator,
	txManager db.Transactor,
	logger logger.Interface,
) *AssignStaffUseCase {
	return &AssignStaffUseCase{
		guard:          guard,
		gate:           gate,
		assignmentRepo: assignmentRepo,
		propertyRepo:   propertyRepo,
		userRepo:       userRepo,
		coordinator:    coord,
		txManager:      txManager,
		logger:         logger,
	}
}

type AssignStaffCommand struct {
	Principal           authorization.Principal
	PropertyID          uint
	StaffID             uint
	InspectionFrequency string
	Description         string
	Instructions        string
}

type AssignStaffResult struct {
	AssignmentID     uint
	Status           string
	NextInspectionAt time.Time
	Reassigned       bool
	StateChange      audit.StateChange
}

func (uc *AssignStaffUseCase) Execute(ctx context.Context, cmd AssignStaffCommand) (*AssignStaffResult, error) {
	if err := uc.guard.Authorize(cmd.Principal, authorization.ActionAssignmentAssign, authorization.NoTarget()); err != nil {
		return nil, err
	}

	staff, err := uc.userRepo.FindByID(ctx, cmd.StaffID)
	if err != nil {
		return nil, err
	}
	if !staff.Role().IsStaff() {
		return nil, errors.NewValidationError("assignee is not a staff member")
	}

	prop, err := uc.propertyRepo.FindByID(ctx, cmd.PropertyID)
	if err != nil {
		return nil, err
	}
	if !uc.gate.IsEntitled(prop, entitlement.CapabilityStaffAssignment) {
		return nil, errors.NewForbiddenError("staff assignment requires an active premium or enterprise subscription")
	}

	frequency, err := assignmentvo.NewInspectionFrequency(cmd.InspectionFrequency)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	now := time.Now()

	existing, err := uc.assignmentRepo.FindActiveByPropertyID(ctx, cmd.PropertyID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if existing.StaffID() != cmd.StaffID {
			return nil, errors.NewConflictError("property already has an open assignment")
		}
		from := existing.Status().String()
		// Same staff member: refresh the open assignment in place.
		if err := existing.Reassign(frequency, cmd.Description, cmd.Instructions, now); err != nil {
			return nil, errors.NewInvalidStateError(err.Error())
		}
		if err := uc.assignmentRepo.Update(ctx, existing); err != nil {
			return nil, err
		}
		return &AssignStaffResult{
			AssignmentID:     existing.ID(),
			Status:           existing.Status().String(),
			NextInspectionAt: existing.NextInspectionAt(),
			Reassigned:       true,
			StateChange:      audit.NewStateChange("assignment", existing.ID(), from, existing.Status().String(), cmd.Principal.ID),
		}, nil
	}

	assn, err := assignment.NewAssignment(cmd.StaffID, cmd.PropertyID, cmd.Principal.ID, frequency, cmd.Description, cmd.Instructions, now)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.assignmentRepo.SaveExclusive(txCtx, assn); err != nil {
			return err
		}
		return uc.coordinator.AttachStaffToProperty(txCtx, cmd.PropertyID, cmd.StaffID)
	})
	if err != nil {
		uc.logger.Errorw("failed to assign staff", "property_id", cmd.PropertyID, "staff_id", cmd.StaffID, "error", err)
		return nil, err
	}

	uc.logger.Infow("staff assigned",
		"assignment_id", assn.ID(),
		"property_id", cmd.PropertyID,
		"staff_id", cmd.StaffID,
	)

	return &AssignStaffResult{
		AssignmentID:     assn.ID(),
		Status:           assn.Status().String(),
		NextInspectionAt: assn.NextInspectionAt(),
		StateChange:      audit.NewStateChange("assignment", assn.ID(), "", assn.Status().String(), cmd.Principal.ID),
	}, nil
}

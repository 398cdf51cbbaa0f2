package usecases

import (
	"context"

	"rentora/internal/application/coordinator"
	"rentora/internal/domain/assignment"
	"rentora/internal/domain/shared/audit"
	"rentora/internal/shared/authorization"
	"rentora/internal/shared/db"
	"rentora/internal/shared/errors"
	"rentora/internal/shared/logger"
)

// TransitionAssignmentResult is shared by the accept/start/complete/cancel
// use cases.
type TransitionAssignmentResult struct {
	AssignmentID uint
	Status       string
	StateChange  audit.StateChange
}

// AcceptAssignmentUseCase lets the assigned staff member acknowledge the
// assignment.
type AcceptAssignmentUseCase struct {
	guard          *authorization.Guard
	assignmentRepo assignment.Repository
	logger         logger.Interface
}

func NewAcceptAssignmentUseCase(
	guard *authorization.Guard,
	assignmentRepo assignment.Repository,
	logger logger.Interface,
) *AcceptAssignmentUseCase {
	return &AcceptAssignmentUseCase{guard: guard, assignmentRepo: assignmentRepo, logger: logger}
}

type AcceptAssignmentCommand struct {
	Principal    authorization.Principal
	AssignmentID uint
}

func (uc *AcceptAssignmentUseCase) Execute(ctx context.Context, cmd AcceptAssignmentCommand) (*TransitionAssignmentResult, error) {
	assn, err := uc.assignmentRepo.FindByID(ctx, cmd.AssignmentID)
	if err != nil {
		return nil, err
	}

	if err := uc.guard.Authorize(cmd.Principal, authorization.ActionAssignmentAccept, authorization.StaffOf(assn.StaffID())); err != nil {
		return nil, err
	}

	from := assn.Status().String()
	if err := assn.Accept(); err != nil {
		return nil, errors.NewInvalidStateError(err.Error())
	}
	if err := uc.assignmentRepo.Update(ctx, assn); err != nil {
		return nil, err
	}

	uc.logger.Infow("assignment accepted", "assignment_id", assn.ID(), "staff_id", cmd.Principal.ID)

	return &TransitionAssignmentResult{
		AssignmentID: assn.ID(),
		Status:       assn.Status().String(),
		StateChange:  audit.NewStateChange("assignment", assn.ID(), from, assn.Status().String(), cmd.Principal.ID),
	}, nil
}

// StartAssignmentUseCase lets the assigned staff member begin the work.
type StartAssignmentUseCase struct {
	guard          *authorization.Guard
	assignmentRepo assignment.Repository
	logger         logger.Interface
}

func NewStartAssignmentUseCase(
	guard *authorization.Guard,
	assignmentRepo assignment.Repository,
	logger logger.Interface,
) *StartAssignmentUseCase {
	return &StartAssignmentUseCase{guard: guard, assignmentRepo: assignmentRepo, logger: logger}
}

type StartAssignmentCommand struct {
	Principal    authorization.Principal
	AssignmentID uint
}

func (uc *StartAssignmentUseCase) Execute(ctx context.Context, cmd StartAssignmentCommand) (*TransitionAssignmentResult, error) {
	assn, err := uc.assignmentRepo.FindByID(ctx, cmd.AssignmentID)
	if err != nil {
		return nil, err
	}

	if err := uc.guard.Authorize(cmd.Principal, authorization.ActionAssignmentStart, authorization.StaffOf(assn.StaffID())); err != nil {
		return nil, err
	}

	from := assn.Status().String()
	if err := assn.Start(); err != nil {
		return nil, errors.NewInvalidStateError(err.Error())
	}
	if err := uc.assignmentRepo.Update(ctx, assn); err != nil {
		return nil, err
	}

	uc.logger.Infow("assignment started", "assignment_id", assn.ID(), "staff_id", cmd.Principal.ID)

	return &TransitionAssignmentResult{
		AssignmentID: assn.ID(),
		Status:       assn.Status().String(),
		StateChange:  audit.NewStateChange("assignment", assn.ID(), from, assn.Status().String(), cmd.Principal.ID),
	}, nil
}

// CompleteAssignmentUseCase finishes the assignment. The staff link on
// the property and roster is released in the same transaction so the
// property becomes assignable again.
type CompleteAssignmentUseCase struct {
	guard          *authorization.Guard
	assignmentRepo assignment.Repository
	coordinator    coordinator.Coordinator
	txManager      db.Transactor
	logger         logger.Interface
}

func NewCompleteAssignmentUseCase(
	guard *authorization.Guard,
	assignmentRepo assignment.Repository,
	coord coordinator.Coordinator,
	txManager db.Transactor,
	logger logger.Interface,
) *CompleteAssignmentUseCase {
	return &CompleteAssignmentUseCase{
		guard:          guard,
		assignmentRepo: assignmentRepo,
		coordinator:    coord,
		txManager:      txManager,
		logger:         logger,
	}
}

type CompleteAssignmentCommand struct {
	Principal    authorization.Principal
	AssignmentID uint
	StaffNotes   string
}

func (uc *CompleteAssignmentUseCase) Execute(ctx context.Context, cmd CompleteAssignmentCommand) (*TransitionAssignmentResult, error) {
	assn, err := uc.assignmentRepo.FindByID(ctx, cmd.AssignmentID)
	if err != nil {
		return nil, err
	}

	if err := uc.guard.Authorize(cmd.Principal, authorization.ActionAssignmentComplete, authorization.StaffOf(assn.StaffID())); err != nil {
		return nil, err
	}

	from := assn.Status().String()
	if err := assn.Complete(); err != nil {
		return nil, errors.NewInvalidStateError(err.Error())
	}
	if cmd.StaffNotes != "" {
		assn.SetStaffNotes(cmd.StaffNotes)
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.assignmentRepo.Update(txCtx, assn); err != nil {
			return err
		}
		return uc.coordinator.DetachStaffFromProperty(txCtx, assn.PropertyID(), assn.StaffID())
	})
	if err != nil {
		uc.logger.Errorw("failed to complete assignment", "assignment_id", cmd.AssignmentID, "error", err)
		return nil, err
	}

	uc.logger.Infow("assignment completed", "assignment_id", assn.ID(), "staff_id", cmd.Principal.ID)

	return &TransitionAssignmentResult{
		AssignmentID: assn.ID(),
		Status:       assn.Status().String(),
		StateChange:  audit.NewStateChange("assignment", assn.ID(), from, assn.Status().String(), cmd.Principal.ID),
	}, nil
}

// CancelAssignmentUseCase lets an admin cancel an open assignment. The
// property-staff link is released in the same transaction.
type CancelAssignmentUseCase struct {
	guard          *authorization.Guard
	assignmentRepo assignment.Repository
	coordinator    coordinator.Coordinator
	txManager      db.Transactor
	logger         logger.Interface
}

func NewCancelAssignmentUseCase(
	guard *authorization.Guard,
	assignmentRepo assignment.Repository,
	coord coordinator.Coordinator,
	txManager db.Transactor,
	logger logger.Interface,
) *CancelAssignmentUseCase {
	return &CancelAssignmentUseCase{
		guard:          guard,
		assignmentRepo: assignmentRepo,
		coordinator:    coord,
		txManager:      txManager,
		logger:         logger,
	}
}

type CancelAssignmentCommand struct {
	Principal    authorization.Principal
	AssignmentID uint
}

func (uc *CancelAssignmentUseCase) Execute(ctx context.Context, cmd CancelAssignmentCommand) (*TransitionAssignmentResult, error) {
	if err := uc.guard.Authorize(cmd.Principal, authorization.ActionAssignmentCancel, authorization.NoTarget()); err != nil {
		return nil, err
	}

	assn, err := uc.assignmentRepo.FindByID(ctx, cmd.AssignmentID)
	if err != nil {
		return nil, err
	}

	from := assn.Status().String()
	if err := assn.Cancel(); err != nil {
		return nil, errors.NewInvalidStateError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.assignmentRepo.Update(txCtx, assn); err != nil {
			return err
		}
		return uc.coordinator.DetachStaffFromProperty(txCtx, assn.PropertyID(), assn.StaffID())
	})
	if err != nil {
		uc.logger.Errorw("failed to cancel assignment", "assignment_id", cmd.AssignmentID, "error", err)
		return nil, err
	}

	uc.logger.Infow("assignment cancelled", "assignment_id", assn.ID(), "admin_id", cmd.Principal.ID)

	return &TransitionAssignmentResult{
		AssignmentID: assn.ID(),
		Status:       assn.Status().String(),
		StateChange:  audit.NewStateChange("assignment", assn.ID(), from, assn.Status().String(), cmd.Principal.ID),
	}, nil
}

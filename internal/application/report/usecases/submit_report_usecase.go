package usecases

import (
	"context"
	"time"

	"rentora/internal/application/coordinator"
	"rentora/internal/domain/assignment"
	propertyvo "rentora/internal/domain/property/valueobjects"
	"rentora/internal/domain/report"
	reportvo "rentora/internal/domain/report/valueobjects"
	"rentora/internal/domain/shared/audit"
	"rentora/internal/shared/authorization"
	"rentora/internal/shared/db"
	"rentora/internal/shared/errors"
	"rentora/internal/shared/logger"
)

// SubmitReportUseCase files an inspection report against an open
// assignment. In one transaction it saves the report, advances the
// assignment's recurring schedule, and records the inspection outcome on
// the property.
type SubmitReportUseCase struct {
	guard          *authorization.Guard
	reportRepo     report.Repository
	assignmentRepo assignment.Repository
	coordinator    coordinator.Coordinator
	txManager      db.Transactor
	logger         logger.Interface
}

func NewSubmitReportUseCase(
	guard *authorization.Guard,
	reportRepo report.Repository,
	assignmentRepo assignment.Repository,
	coord coordinator.Coordinator,
	txManager db.Transactor,
	logger logger.Interface,
) *SubmitReportUseCase {
	return &SubmitReportUseCase{
		guard:          guard,
		reportRepo:     reportRepo,
		assignmentRepo: assignmentRepo,
		coordinator:    coord,
		txManager:      txManager,
		logger:         logger,
	}
}

type SubmitReportCommand struct {
	Principal              authorization.Principal
	AssignmentID           uint
	Condition              string
	Notes                  string
	MaintenanceRecommended bool
	MaintenanceDetails     string
}

type SubmitReportResult struct {
	ReportID         uint
	Status           string
	NextInspectionAt time.Time
	StateChange      audit.StateChange
}

// propertyCondition maps the staff verdict onto the property's coarser
// maintenance condition.
func propertyCondition(c reportvo.PropertyCondition) propertyvo.Condition {
	switch c {
	case reportvo.ConditionUrgentIssues:
		return propertyvo.ConditionUrgent
	case reportvo.ConditionNeedsAttention:
		return propertyvo.ConditionNeedsAttention
	default:
		return propertyvo.ConditionGood
	}
}

func (uc *SubmitReportUseCase) Execute(ctx context.Context, cmd SubmitReportCommand) (*SubmitReportResult, error) {
	assn, err := uc.assignmentRepo.FindByID(ctx, cmd.AssignmentID)
	if err != nil {
		return nil, err
	}

	if err := uc.guard.Authorize(cmd.Principal, authorization.ActionReportSubmit, authorization.StaffOf(assn.StaffID())); err != nil {
		return nil, err
	}

	if assn.Status().IsTerminal() {
		return nil, errors.NewInvalidStateError("cannot file a report against a closed assignment")
	}

	condition, err := reportvo.NewPropertyCondition(cmd.Condition)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	now := time.Now()
	rep, err := report.NewReport(cmd.AssignmentID, assn.PropertyID(), cmd.Principal.ID, condition, cmd.Notes, cmd.MaintenanceRecommended, cmd.MaintenanceDetails, now)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.reportRepo.Save(txCtx, rep); err != nil {
			return err
		}
		if err := assn.RecordInspection(now); err != nil {
			return errors.NewInvalidStateError(err.Error())
		}
		if err := uc.assignmentRepo.Update(txCtx, assn); err != nil {
			return err
		}
		next := assn.NextInspectionAt()
		return uc.coordinator.RecordInspectionOutcome(txCtx, assn.PropertyID(), propertyCondition(condition), now, &next)
	})
	if err != nil {
		uc.logger.Errorw("failed to submit report", "assignment_id", cmd.AssignmentID, "error", err)
		return nil, err
	}

	uc.logger.Infow("inspection report submitted",
		"report_id", rep.ID(),
		"assignment_id", cmd.AssignmentID,
		"condition", condition.String(),
	)

	return &SubmitReportResult{
		ReportID:         rep.ID(),
		Status:           rep.Status().String(),
		NextInspectionAt: assn.NextInspectionAt(),
		StateChange:      audit.NewStateChange("report", rep.ID(), "", rep.Status().String(), cmd.Principal.ID),
	}, nil
}

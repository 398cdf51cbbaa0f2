package usecases

import (
	"context"

	"rentora/internal/application/coordinator"
	"rentora/internal/domain/report"
	"rentora/internal/domain/shared/audit"
	"rentora/internal/shared/authorization"
	"rentora/internal/shared/errors"
	"rentora/internal/shared/logger"
)

// ReviewReportUseCase records an admin's review of a submitted report.
type ReviewReportUseCase struct {
	guard      *authorization.Guard
	reportRepo report.Repository
	logger     logger.Interface
}

func NewReviewReportUseCase(
	guard *authorization.Guard,
	reportRepo report.Repository,
	logger logger.Interface,
) *ReviewReportUseCase {
	return &ReviewReportUseCase{guard: guard, reportRepo: reportRepo, logger: logger}
}

type ReviewReportCommand struct {
	Principal authorization.Principal
	ReportID  uint
}

type ReviewReportResult struct {
	ReportID    uint
	Status      string
	StateChange audit.StateChange
}

func (uc *ReviewReportUseCase) Execute(ctx context.Context, cmd ReviewReportCommand) (*ReviewReportResult, error) {
	if err := uc.guard.Authorize(cmd.Principal, authorization.ActionReportReview, authorization.NoTarget()); err != nil {
		return nil, err
	}

	rep, err := uc.reportRepo.FindByID(ctx, cmd.ReportID)
	if err != nil {
		return nil, err
	}

	from := rep.Status().String()
	if err := rep.Review(cmd.Principal.ID); err != nil {
		return nil, errors.NewInvalidStateError(err.Error())
	}
	if err := uc.reportRepo.Update(ctx, rep); err != nil {
		return nil, err
	}

	uc.logger.Infow("report reviewed", "report_id", rep.ID(), "admin_id", cmd.Principal.ID)

	return &ReviewReportResult{
		ReportID:    rep.ID(),
		Status:      rep.Status().String(),
		StateChange: audit.NewStateChange("report", rep.ID(), from, rep.Status().String(), cmd.Principal.ID),
	}, nil
}

// ForwardReportUseCase escalates a report to the property's owner. The
// recipient is resolved at forward time, so an ownership transfer between
// inspection and escalation routes the report to the new owner.
type ForwardReportUseCase struct {
	guard       *authorization.Guard
	reportRepo  report.Repository
	coordinator coordinator.Coordinator
	logger      logger.Interface
}

func NewForwardReportUseCase(
	guard *authorization.Guard,
	reportRepo report.Repository,
	coord coordinator.Coordinator,
	logger logger.Interface,
) *ForwardReportUseCase {
	return &ForwardReportUseCase{
		guard:       guard,
		reportRepo:  reportRepo,
		coordinator: coord,
		logger:      logger,
	}
}

type ForwardReportCommand struct {
	Principal authorization.Principal
	ReportID  uint
}

type ForwardReportResult struct {
	ReportID    uint
	Status      string
	OwnerID     uint
	StateChange audit.StateChange
}

func (uc *ForwardReportUseCase) Execute(ctx context.Context, cmd ForwardReportCommand) (*ForwardReportResult, error) {
	if err := uc.guard.Authorize(cmd.Principal, authorization.ActionReportForward, authorization.NoTarget()); err != nil {
		return nil, err
	}

	rep, err := uc.reportRepo.FindByID(ctx, cmd.ReportID)
	if err != nil {
		return nil, err
	}

	ownerID, err := uc.coordinator.ResolveCurrentOwner(ctx, rep.PropertyID())
	if err != nil {
		return nil, err
	}

	from := rep.Status().String()
	if err := rep.ForwardTo(ownerID); err != nil {
		return nil, errors.NewInvalidStateError(err.Error())
	}
	if err := uc.reportRepo.Update(ctx, rep); err != nil {
		return nil, err
	}

	uc.logger.Infow("report forwarded",
		"report_id", rep.ID(),
		"owner_id", ownerID,
	)

	return &ForwardReportResult{
		ReportID:    rep.ID(),
		Status:      rep.Status().String(),
		OwnerID:     ownerID,
		StateChange: audit.NewStateChange("report", rep.ID(), from, rep.Status().String(), cmd.Principal.ID),
	}, nil
}

// AcknowledgeReportUseCase lets the owner the report was forwarded to
// mark it as seen. This closes the escalation chain.
type AcknowledgeReportUseCase struct {
	guard      *authorization.Guard
	reportRepo report.Repository
	logger     logger.Interface
}

func NewAcknowledgeReportUseCase(
	guard *authorization.Guard,
	reportRepo report.Repository,
	logger logger.Interface,
) *AcknowledgeReportUseCase {
	return &AcknowledgeReportUseCase{guard: guard, reportRepo: reportRepo, logger: logger}
}

type AcknowledgeReportCommand struct {
	Principal authorization.Principal
	ReportID  uint
}

type AcknowledgeReportResult struct {
	ReportID    uint
	Status      string
	StateChange audit.StateChange
}

func (uc *AcknowledgeReportUseCase) Execute(ctx context.Context, cmd AcknowledgeReportCommand) (*AcknowledgeReportResult, error) {
	rep, err := uc.reportRepo.FindByID(ctx, cmd.ReportID)
	if err != nil {
		return nil, err
	}

	if rep.ForwardedToOwnerID() == nil {
		return nil, errors.NewInvalidStateError("report has not been forwarded")
	}
	if err := uc.guard.Authorize(cmd.Principal, authorization.ActionReportAcknowledge, authorization.OwnedBy(*rep.ForwardedToOwnerID())); err != nil {
		return nil, err
	}

	if err := rep.Acknowledge(); err != nil {
		return nil, errors.NewInvalidStateError(err.Error())
	}
	if err := uc.reportRepo.Update(ctx, rep); err != nil {
		return nil, err
	}

	uc.logger.Infow("report acknowledged", "report_id", rep.ID(), "owner_id", cmd.Principal.ID)

	return &AcknowledgeReportResult{
		ReportID:    rep.ID(),
		Status:      rep.Status().String(),
		StateChange: audit.NewStateChange("report", rep.ID(), rep.Status().String(), "acknowledged", cmd.Principal.ID),
	}, nil
}

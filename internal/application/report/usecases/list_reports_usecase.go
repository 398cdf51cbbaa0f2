package usecases

import (
	"context"
	"time"

	"rentora/internal/domain/report"
	"rentora/internal/shared/authorization"
	"rentora/internal/shared/errors"
)

// ReportDTO is the inspection report read model.
type ReportDTO struct {
	ID                     uint       `json:"id"`
	AssignmentID           uint       `json:"assignment_id"`
	PropertyID             uint       `json:"property_id"`
	StaffID                uint       `json:"staff_id"`
	Condition              string     `json:"condition"`
	Notes                  string     `json:"notes"`
	MaintenanceRecommended bool       `json:"maintenance_recommended"`
	MaintenanceDetails     string     `json:"maintenance_details,omitempty"`
	Status                 string     `json:"status"`
	ForwardedToOwnerID     *uint      `json:"forwarded_to_owner_id,omitempty"`
	ForwardedAt            *time.Time `json:"forwarded_at,omitempty"`
	Acknowledged           bool       `json:"acknowledged"`
	AcknowledgedAt         *time.Time `json:"acknowledged_at,omitempty"`
	SubmittedAt            time.Time  `json:"submitted_at"`
}

func toReportDTO(r *report.Report) ReportDTO {
	return ReportDTO{
		ID:                     r.ID(),
		AssignmentID:           r.AssignmentID(),
		PropertyID:             r.PropertyID(),
		StaffID:                r.StaffID(),
		Condition:              r.Condition().String(),
		Notes:                  r.Notes(),
		MaintenanceRecommended: r.MaintenanceRecommended(),
		MaintenanceDetails:     r.MaintenanceDetails(),
		Status:                 r.Status().String(),
		ForwardedToOwnerID:     r.ForwardedToOwnerID(),
		ForwardedAt:            r.ForwardedAt(),
		Acknowledged:           r.IsAcknowledged(),
		AcknowledgedAt:         r.AcknowledgedAt(),
		SubmittedAt:            r.SubmittedAt(),
	}
}

// ListReportsUseCase returns the reports visible to the caller: staff see
// their own submissions, owners see reports forwarded to them, admins see
// a property's full history.
type ListReportsUseCase struct {
	reportRepo report.Repository
}

func NewListReportsUseCase(reportRepo report.Repository) *ListReportsUseCase {
	return &ListReportsUseCase{reportRepo: reportRepo}
}

type ListReportsCommand struct {
	Principal authorization.Principal
	// PropertyID narrows to one property; required for admins.
	PropertyID uint
}

type ListReportsResult struct {
	Reports []ReportDTO
}

func (uc *ListReportsUseCase) Execute(ctx context.Context, cmd ListReportsCommand) (*ListReportsResult, error) {
	var (
		reports []*report.Report
		err     error
	)

	switch {
	case cmd.Principal.Role.IsStaff():
		reports, err = uc.reportRepo.FindByStaffID(ctx, cmd.Principal.ID)
	case cmd.Principal.Role.IsOwner():
		reports, err = uc.reportRepo.FindForwardedToOwner(ctx, cmd.Principal.ID)
	case cmd.Principal.Role.IsAdmin():
		if cmd.PropertyID == 0 {
			return nil, errors.NewValidationError("property ID is required")
		}
		reports, err = uc.reportRepo.FindByPropertyID(ctx, cmd.PropertyID)
	default:
		return nil, errors.NewForbiddenError("reports are not visible to this role")
	}
	if err != nil {
		return nil, err
	}

	dtos := make([]ReportDTO, 0, len(reports))
	for _, r := range reports {
		dtos = append(dtos, toReportDTO(r))
	}
	return &ListReportsResult{Reports: dtos}, nil
}

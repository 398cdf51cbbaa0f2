package mappers

import (
	"rentora/internal/domain/report"
	vo "rentora/internal/domain/report/valueobjects"
	"rentora/internal/infrastructure/persistence/models"
)

// ReportMapper handles conversion between the Report domain entity and its
// model.
type ReportMapper interface {
	ToModel(r *report.Report) *models.ReportModel
	ToDomain(model *models.ReportModel) (*report.Report, error)
}

type ReportMapperImpl struct{}

func NewReportMapper() ReportMapper {
	return &ReportMapperImpl{}
}

func (m *ReportMapperImpl) ToModel(r *report.Report) *models.ReportModel {
	return &models.ReportModel{
		ID:                     r.ID(),
		AssignmentID:           r.AssignmentID(),
		PropertyID:             r.PropertyID(),
		StaffID:                r.StaffID(),
		Condition:              r.Condition().String(),
		Notes:                  r.Notes(),
		MaintenanceRecommended: r.MaintenanceRecommended(),
		MaintenanceDetails:     r.MaintenanceDetails(),
		Status:                 r.Status().String(),
		ReviewedByAdminID:      r.ReviewedByAdminID(),
		ReviewedAt:             r.ReviewedAt(),
		ForwardedToOwnerID:     r.ForwardedToOwnerID(),
		ForwardedAt:            r.ForwardedAt(),
		Acknowledged:           r.IsAcknowledged(),
		AcknowledgedAt:         r.AcknowledgedAt(),
		SubmittedAt:            r.SubmittedAt(),
		Version:                r.Version(),
		CreatedAt:              r.CreatedAt(),
		UpdatedAt:              r.UpdatedAt(),
	}
}

func (m *ReportMapperImpl) ToDomain(model *models.ReportModel) (*report.Report, error) {
	return report.ReconstructReport(
		model.ID, model.AssignmentID, model.PropertyID, model.StaffID,
		vo.PropertyCondition(model.Condition),
		model.Notes,
		model.MaintenanceRecommended,
		model.MaintenanceDetails,
		vo.ReportStatus(model.Status),
		model.ReviewedByAdminID,
		model.ReviewedAt,
		model.ForwardedToOwnerID,
		model.ForwardedAt,
		model.Acknowledged,
		model.AcknowledgedAt,
		model.SubmittedAt,
		model.Version,
		model.CreatedAt, model.UpdatedAt,
	)
}

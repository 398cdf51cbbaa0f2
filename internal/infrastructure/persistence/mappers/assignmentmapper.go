package mappers

import (
	"rentora/internal/domain/assignment"
	vo "rentora/internal/domain/assignment/valueobjects"
	"rentora/internal/infrastructure/persistence/models"
)

// AssignmentMapper handles conversion between the Assignment domain entity
// and its model.
type AssignmentMapper interface {
	ToModel(a *assignment.Assignment) *models.AssignmentModel
	ToDomain(model *models.AssignmentModel) (*assignment.Assignment, error)
}

type AssignmentMapperImpl struct{}

func NewAssignmentMapper() AssignmentMapper {
	return &AssignmentMapperImpl{}
}

func (m *AssignmentMapperImpl) ToModel(a *assignment.Assignment) *models.AssignmentModel {
	return &models.AssignmentModel{
		ID:                  a.ID(),
		StaffID:             a.StaffID(),
		PropertyID:          a.PropertyID(),
		AssignedByAdminID:   a.AssignedByAdminID(),
		Status:              a.Status().String(),
		InspectionFrequency: a.InspectionFrequency().String(),
		NextInspectionAt:    a.NextInspectionAt(),
		LastInspectionAt:    a.LastInspectionAt(),
		Description:         a.Description(),
		Instructions:        a.Instructions(),
		StaffNotes:          a.StaffNotes(),
		CompletedDate:       a.CompletedDate(),
		Version:             a.Version(),
		CreatedAt:           a.CreatedAt(),
		UpdatedAt:           a.UpdatedAt(),
	}
}

func (m *AssignmentMapperImpl) ToDomain(model *models.AssignmentModel) (*assignment.Assignment, error) {
	return assignment.ReconstructAssignment(
		model.ID, model.StaffID, model.PropertyID, model.AssignedByAdminID,
		vo.AssignmentStatus(model.Status),
		vo.InspectionFrequency(model.InspectionFrequency),
		model.NextInspectionAt,
		model.LastInspectionAt,
		model.Description, model.Instructions, model.StaffNotes,
		model.CompletedDate,
		model.Version,
		model.CreatedAt, model.UpdatedAt,
	)
}

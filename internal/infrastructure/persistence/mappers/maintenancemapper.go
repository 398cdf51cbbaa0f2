package mappers

import (
	"rentora/internal/domain/maintenance"
	vo "rentora/internal/domain/maintenance/valueobjects"
	"rentora/internal/infrastructure/persistence/models"
)

// MaintenanceTicketMapper handles conversion between the maintenance Ticket
// domain entity and its model.
type MaintenanceTicketMapper interface {
	ToModel(t *maintenance.Ticket) *models.MaintenanceTicketModel
	ToDomain(model *models.MaintenanceTicketModel) (*maintenance.Ticket, error)
}

type MaintenanceTicketMapperImpl struct{}

func NewMaintenanceTicketMapper() MaintenanceTicketMapper {
	return &MaintenanceTicketMapperImpl{}
}

func (m *MaintenanceTicketMapperImpl) ToModel(t *maintenance.Ticket) *models.MaintenanceTicketModel {
	return &models.MaintenanceTicketModel{
		ID:              t.ID(),
		PropertyID:      t.PropertyID(),
		RequestedByID:   t.RequestedByID(),
		AssignedStaffID: t.AssignedStaffID(),
		Kind:            t.Kind().String(),
		Priority:        t.Priority().String(),
		Status:          t.Status().String(),
		Title:           t.Title(),
		Description:     t.Description(),
		ScheduledDate:   t.ScheduledDate(),
		EstimatedCost:   t.EstimatedCost(),
		ActualCost:      t.ActualCost(),
		CompletionNotes: t.CompletionNotes(),
		CompletedAt:     t.CompletedAt(),
		Feedback:        t.Feedback(),
		Rating:          t.Rating(),
		Version:         t.Version(),
		CreatedAt:       t.CreatedAt(),
		UpdatedAt:       t.UpdatedAt(),
	}
}

func (m *MaintenanceTicketMapperImpl) ToDomain(model *models.MaintenanceTicketModel) (*maintenance.Ticket, error) {
	return maintenance.ReconstructTicket(
		model.ID, model.PropertyID, model.RequestedByID,
		model.AssignedStaffID,
		vo.TicketKind(model.Kind),
		vo.Priority(model.Priority),
		vo.TicketStatus(model.Status),
		model.Title, model.Description,
		model.ScheduledDate,
		model.EstimatedCost, model.ActualCost,
		model.CompletionNotes,
		model.CompletedAt,
		model.Feedback,
		model.Rating,
		model.Version,
		model.CreatedAt, model.UpdatedAt,
	)
}

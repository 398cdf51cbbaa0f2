package usecases

import (
	"context"
	"time"

	"rentora/internal/domain/maintenance"
	"rentora/internal/domain/property"
	"rentora/internal/shared/authorization"
	"rentora/internal/shared/errors"
)

// TicketDTO is the maintenance ticket read model.
type TicketDTO struct {
	ID              uint       `json:"id"`
	PropertyID      uint       `json:"property_id"`
	RequestedByID   uint       `json:"requested_by_id"`
	AssignedStaffID *uint      `json:"assigned_staff_id,omitempty"`
	Kind            string     `json:"kind"`
	Priority        string     `json:"priority"`
	Status          string     `json:"status"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	EstimatedCost   float64    `json:"estimated_cost"`
	ActualCost      float64    `json:"actual_cost"`
	CompletionNotes string     `json:"completion_notes,omitempty"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
	Feedback        string     `json:"feedback,omitempty"`
	Rating          int        `json:"rating,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

func toTicketDTO(t *maintenance.Ticket) TicketDTO {
	return TicketDTO{
		ID:              t.ID(),
		PropertyID:      t.PropertyID(),
		RequestedByID:   t.RequestedByID(),
		AssignedStaffID: t.AssignedStaffID(),
		Kind:            t.Kind().String(),
		Priority:        t.Priority().String(),
		Status:          t.Status().String(),
		Title:           t.Title(),
		Description:     t.Description(),
		EstimatedCost:   t.EstimatedCost(),
		ActualCost:      t.ActualCost(),
		CompletionNotes: t.CompletionNotes(),
		CompletedAt:     t.CompletedAt(),
		Feedback:        t.Feedback(),
		Rating:          t.Rating(),
		CreatedAt:       t.CreatedAt(),
	}
}

// ListTicketsUseCase returns the maintenance tickets visible to the
// caller: owners see tickets across all their properties, staff see their
// assigned workload, admins see a property's full history.
type ListTicketsUseCase struct {
	maintenanceRepo maintenance.Repository
	propertyRepo    property.Repository
}

func NewListTicketsUseCase(
	maintenanceRepo maintenance.Repository,
	propertyRepo property.Repository,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		maintenanceRepo: maintenanceRepo,
		propertyRepo:    propertyRepo,
	}
}

type ListTicketsCommand struct {
	Principal authorization.Principal
	// PropertyID narrows to one property; required for admins.
	PropertyID uint
}

type ListTicketsResult struct {
	Tickets []TicketDTO
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, cmd ListTicketsCommand) (*ListTicketsResult, error) {
	var (
		tickets []*maintenance.Ticket
		err     error
	)

	switch {
	case cmd.Principal.Role.IsOwner():
		tickets, err = uc.ownerTickets(ctx, cmd)
	case cmd.Principal.Role.IsStaff():
		tickets, err = uc.maintenanceRepo.FindByStaffID(ctx, cmd.Principal.ID)
	case cmd.Principal.Role.IsAdmin():
		if cmd.PropertyID == 0 {
			return nil, errors.NewValidationError("property ID is required")
		}
		tickets, err = uc.maintenanceRepo.FindByPropertyID(ctx, cmd.PropertyID)
	default:
		return nil, errors.NewForbiddenError("maintenance tickets are not visible to this role")
	}
	if err != nil {
		return nil, err
	}

	dtos := make([]TicketDTO, 0, len(tickets))
	for _, t := range tickets {
		dtos = append(dtos, toTicketDTO(t))
	}
	return &ListTicketsResult{Tickets: dtos}, nil
}

func (uc *ListTicketsUseCase) ownerTickets(ctx context.Context, cmd ListTicketsCommand) ([]*maintenance.Ticket, error) {
	if cmd.PropertyID != 0 {
		prop, err := uc.propertyRepo.FindByID(ctx, cmd.PropertyID)
		if err != nil {
			return nil, err
		}
		if prop.OwnerID() != cmd.Principal.ID {
			return nil, errors.NewForbiddenError("maintenance tickets are visible to the property owner only")
		}
		return uc.maintenanceRepo.FindByPropertyID(ctx, cmd.PropertyID)
	}

	props, err := uc.propertyRepo.FindByOwnerID(ctx, cmd.Principal.ID)
	if err != nil {
		return nil, err
	}
	var tickets []*maintenance.Ticket
	for _, p := range props {
		more, err := uc.maintenanceRepo.FindByPropertyID(ctx, p.ID())
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, more...)
	}
	return tickets, nil
}

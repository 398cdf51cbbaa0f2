package maintenance

import (
	"fmt"
	"strings"
	"time"

	vo "rentora/internal/domain/maintenance/valueobjects"
)

// Ticket is a maintenance work item raised by the property owner. Urgent
// tickets degrade the property's condition while open; completing any
// ticket restores it and stamps the last inspection time.
type Ticket struct {
	id              uint
	propertyID      uint
	requestedByID   uint
	assignedStaffID *uint
	kind            vo.TicketKind
	priority        vo.Priority
	status          vo.TicketStatus
	title           string
	description     string
	scheduledDate   *time.Time
	estimatedCost   float64
	actualCost      float64
	completionNotes string
	completedAt     *time.Time
	feedback        string
	rating          int
	version         int
	createdAt       time.Time
	updatedAt       time.Time
}

// NewTicket creates a pending maintenance ticket.
func NewTicket(
	propertyID, requestedByID uint,
	kind vo.TicketKind,
	priority vo.Priority,
	title, description string,
	scheduledDate *time.Time,
	estimatedCost float64,
	now time.Time,
) (*Ticket, error) {
	if propertyID == 0 {
		return nil, fmt.Errorf("property ID is required")
	}
	if requestedByID == 0 {
		return nil, fmt.Errorf("requester ID is required")
	}
	if !kind.IsValid() {
		return nil, fmt.Errorf("invalid maintenance kind: %s", kind)
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid maintenance priority: %s", priority)
	}
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("title is required")
	}
	if strings.TrimSpace(description) == "" {
		return nil, fmt.Errorf("description is required")
	}
	if estimatedCost < 0 {
		return nil, fmt.Errorf("estimated cost cannot be negative")
	}

	return &Ticket{
		propertyID:    propertyID,
		requestedByID: requestedByID,
		kind:          kind,
		priority:      priority,
		status:        vo.StatusPending,
		title:         title,
		description:   description,
		scheduledDate: scheduledDate,
		estimatedCost: estimatedCost,
		version:       1,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// ReconstructTicket rebuilds a ticket from persistence.
func ReconstructTicket(
	id, propertyID, requestedByID uint,
	assignedStaffID *uint,
	kind vo.TicketKind,
	priority vo.Priority,
	status vo.TicketStatus,
	title, description string,
	scheduledDate *time.Time,
	estimatedCost, actualCost float64,
	completionNotes string,
	completedAt *time.Time,
	feedback string,
	rating int,
	version int,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if !kind.IsValid() {
		return nil, fmt.Errorf("invalid maintenance kind: %s", kind)
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid maintenance priority: %s", priority)
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid maintenance status: %s", status)
	}

	return &Ticket{
		id:              id,
		propertyID:      propertyID,
		requestedByID:   requestedByID,
		assignedStaffID: assignedStaffID,
		kind:            kind,
		priority:        priority,
		status:          status,
		title:           title,
		description:     description,
		scheduledDate:   scheduledDate,
		estimatedCost:   estimatedCost,
		actualCost:      actualCost,
		completionNotes: completionNotes,
		completedAt:     completedAt,
		feedback:        feedback,
		rating:          rating,
		version:         version,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}, nil
}

func (m *Ticket) ID() uint                  { return m.id }
func (m *Ticket) PropertyID() uint          { return m.propertyID }
func (m *Ticket) RequestedByID() uint       { return m.requestedByID }
func (m *Ticket) AssignedStaffID() *uint    { return m.assignedStaffID }
func (m *Ticket) Kind() vo.TicketKind       { return m.kind }
func (m *Ticket) Priority() vo.Priority     { return m.priority }
func (m *Ticket) Status() vo.TicketStatus   { return m.status }
func (m *Ticket) Title() string             { return m.title }
func (m *Ticket) Description() string       { return m.description }
func (m *Ticket) ScheduledDate() *time.Time { return m.scheduledDate }
func (m *Ticket) EstimatedCost() float64    { return m.estimatedCost }
func (m *Ticket) ActualCost() float64       { return m.actualCost }
func (m *Ticket) CompletionNotes() string   { return m.completionNotes }
func (m *Ticket) CompletedAt() *time.Time   { return m.completedAt }
func (m *Ticket) Feedback() string          { return m.feedback }
func (m *Ticket) Rating() int               { return m.rating }
func (m *Ticket) Version() int              { return m.version }
func (m *Ticket) CreatedAt() time.Time      { return m.createdAt }
func (m *Ticket) UpdatedAt() time.Time      { return m.updatedAt }

// SetID sets the ticket ID (only for persistence layer use).
func (m *Ticket) SetID(id uint) error {
	if m.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	m.id = id
	return nil
}

// AssignStaff hands the pending ticket to a staff member and moves it to
// in progress.
func (m *Ticket) AssignStaff(staffID uint) error {
	if staffID == 0 {
		return fmt.Errorf("staff ID is required")
	}
	if !m.status.CanTransitionTo(vo.StatusInProgress) {
		return fmt.Errorf("cannot assign staff to a %s ticket", m.status)
	}
	m.status = vo.StatusInProgress
	m.assignedStaffID = &staffID
	m.touch()
	return nil
}

// Complete finishes the ticket and records the outcome.
func (m *Ticket) Complete(completionNotes string, actualCost float64) error {
	if !m.status.CanTransitionTo(vo.StatusCompleted) {
		return fmt.Errorf("cannot complete a %s ticket", m.status)
	}
	if actualCost < 0 {
		return fmt.Errorf("actual cost cannot be negative")
	}
	now := time.Now()
	m.status = vo.StatusCompleted
	m.completionNotes = completionNotes
	m.actualCost = actualCost
	m.completedAt = &now
	m.touch()
	return nil
}

// Cancel terminates the ticket from any non-terminal state.
func (m *Ticket) Cancel() error {
	if m.status.IsTerminal() {
		return fmt.Errorf("cannot cancel a %s ticket", m.status)
	}
	m.status = vo.StatusCancelled
	m.touch()
	return nil
}

// AddFeedback records the owner's verdict on completed work. Feedback
// never reopens the ticket.
func (m *Ticket) AddFeedback(feedback string, rating int) error {
	if !m.status.IsCompleted() {
		return fmt.Errorf("cannot add feedback to a %s ticket", m.status)
	}
	if rating < 1 || rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5")
	}
	m.feedback = feedback
	m.rating = rating
	m.touch()
	return nil
}

func (m *Ticket) touch() {
	m.updatedAt = time.Now()
	m.version++
}

package booking

import (
	"fmt"
	"time"

	vo "rentora/internal/domain/booking/valueobjects"
)

// SupportTicket is embedded in a booking; it has no identity outside it.
type SupportTicket struct {
	kind        vo.TicketKind
	description string
	status      vo.TicketStatus
	createdAt   time.Time
	resolvedAt  *time.Time
}

func NewSupportTicket(kind vo.TicketKind, description string) (*SupportTicket, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("invalid support ticket kind: %s", kind)
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}

	return &SupportTicket{
		kind:        kind,
		description: description,
		status:      vo.TicketPending,
		createdAt:   time.Now(),
	}, nil
}

func ReconstructSupportTicket(
	kind vo.TicketKind,
	description string,
	status vo.TicketStatus,
	createdAt time.Time,
	resolvedAt *time.Time,
) (*SupportTicket, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("invalid support ticket kind: %s", kind)
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid support ticket status: %s", status)
	}

	return &SupportTicket{
		kind:        kind,
		description: description,
		status:      status,
		createdAt:   createdAt,
		resolvedAt:  resolvedAt,
	}, nil
}

func (t *SupportTicket) Kind() vo.TicketKind     { return t.kind }
func (t *SupportTicket) Description() string     { return t.description }
func (t *SupportTicket) Status() vo.TicketStatus { return t.status }
func (t *SupportTicket) CreatedAt() time.Time    { return t.createdAt }
func (t *SupportTicket) ResolvedAt() *time.Time  { return t.resolvedAt }

// Resolve closes the ticket and stamps the resolution time.
func (t *SupportTicket) Resolve() error {
	if t.status.IsResolved() {
		return fmt.Errorf("support ticket is already resolved")
	}
	now := time.Now()
	t.status = vo.TicketResolved
	t.resolvedAt = &now
	return nil
}

// Progress moves a pending ticket to in_progress.
func (t *SupportTicket) Progress() error {
	if t.status != vo.TicketPending {
		return fmt.Errorf("cannot progress support ticket with status %s", t.status)
	}
	t.status = vo.TicketInProgress
	return nil
}

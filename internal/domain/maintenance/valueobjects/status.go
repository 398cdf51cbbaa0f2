package valueobjects

import "fmt"

// TicketStatus tracks a maintenance ticket through its lifecycle.
type TicketStatus string

const (
	StatusPending    TicketStatus = "pending"
	StatusInProgress TicketStatus = "in_progress"
	StatusCompleted  TicketStatus = "completed"
	StatusCancelled  TicketStatus = "cancelled"
)

var ticketTransitions = map[TicketStatus][]TicketStatus{
	StatusPending:    {StatusInProgress, StatusCancelled},
	StatusInProgress: {StatusCompleted, StatusCancelled},
	StatusCompleted:  {},
	StatusCancelled:  {},
}

func (s TicketStatus) String() string {
	return string(s)
}

func (s TicketStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

func (s TicketStatus) CanTransitionTo(target TicketStatus) bool {
	for _, allowed := range ticketTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

func (s TicketStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

func (s TicketStatus) IsCompleted() bool {
	return s == StatusCompleted
}

func NewTicketStatus(s string) (TicketStatus, error) {
	status := TicketStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid maintenance status: %s", s)
	}
	return status, nil
}

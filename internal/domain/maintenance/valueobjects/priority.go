package valueobjects

import "fmt"

// Priority ranks how quickly a maintenance ticket must be handled.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

func (p Priority) String() string {
	return string(p)
}

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// IsUrgent reports whether the ticket should degrade the property's
// maintenance condition while it stays open.
func (p Priority) IsUrgent() bool {
	return p == PriorityUrgent
}

func NewPriority(s string) (Priority, error) {
	p := Priority(s)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid maintenance priority: %s", s)
	}
	return p, nil
}

package valueobjects

import "fmt"

// AssignmentStatus is the staff assignment lifecycle state. The staff member
// advances assigned → accepted → in_progress → completed; admins may cancel
// from any non-terminal state.
type AssignmentStatus string

const (
	StatusAssigned   AssignmentStatus = "assigned"
	StatusAccepted   AssignmentStatus = "accepted"
	StatusInProgress AssignmentStatus = "in_progress"
	StatusCompleted  AssignmentStatus = "completed"
	StatusCancelled  AssignmentStatus = "cancelled"
)

var validAssignmentStatuses = map[AssignmentStatus]bool{
	StatusAssigned:   true,
	StatusAccepted:   true,
	StatusInProgress: true,
	StatusCompleted:  true,
	StatusCancelled:  true,
}

var assignmentTransitions = map[AssignmentStatus][]AssignmentStatus{
	StatusAssigned:   {StatusAccepted, StatusCancelled},
	StatusAccepted:   {StatusInProgress, StatusCancelled},
	StatusInProgress: {StatusCompleted, StatusCancelled},
}

func (s AssignmentStatus) String() string {
	return string(s)
}

func (s AssignmentStatus) IsValid() bool {
	return validAssignmentStatuses[s]
}

func (s AssignmentStatus) CanTransitionTo(next AssignmentStatus) bool {
	for _, allowed := range assignmentTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the assignment can no longer change state.
func (s AssignmentStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

func (s AssignmentStatus) IsCompleted() bool {
	return s == StatusCompleted
}

func (s AssignmentStatus) IsCancelled() bool {
	return s == StatusCancelled
}

func NewAssignmentStatus(s string) (AssignmentStatus, error) {
	status := AssignmentStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid assignment status: %s", s)
	}
	return status, nil
}

package valueobjects

import "fmt"

// ApprovalStatus is the vetting state of a listed property. Both approved
// and rejected are terminal on this axis; a rejected property is not
// resubmitted.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

var validApprovalStatuses = map[ApprovalStatus]bool{
	ApprovalPending:  true,
	ApprovalApproved: true,
	ApprovalRejected: true,
}

var approvalTransitions = map[ApprovalStatus][]ApprovalStatus{
	ApprovalPending: {ApprovalApproved, ApprovalRejected},
}

func (s ApprovalStatus) String() string {
	return string(s)
}

func (s ApprovalStatus) IsValid() bool {
	return validApprovalStatuses[s]
}

func (s ApprovalStatus) CanTransitionTo(next ApprovalStatus) bool {
	for _, allowed := range approvalTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s ApprovalStatus) IsPending() bool {
	return s == ApprovalPending
}

func (s ApprovalStatus) IsApproved() bool {
	return s == ApprovalApproved
}

func (s ApprovalStatus) IsRejected() bool {
	return s == ApprovalRejected
}

func NewApprovalStatus(s string) (ApprovalStatus, error) {
	status := ApprovalStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid approval status: %s", s)
	}
	return status, nil
}

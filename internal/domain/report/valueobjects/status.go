package valueobjects

import "fmt"

// ReportStatus tracks an inspection report through the escalation chain.
type ReportStatus string

const (
	StatusSubmitted ReportStatus = "submitted"
	StatusReviewed  ReportStatus = "reviewed"
	StatusForwarded ReportStatus = "forwarded"
)

var reportTransitions = map[ReportStatus][]ReportStatus{
	StatusSubmitted: {StatusReviewed, StatusForwarded},
	StatusReviewed:  {StatusForwarded},
	StatusForwarded: {},
}

func (s ReportStatus) String() string {
	return string(s)
}

func (s ReportStatus) IsValid() bool {
	switch s {
	case StatusSubmitted, StatusReviewed, StatusForwarded:
		return true
	}
	return false
}

func (s ReportStatus) CanTransitionTo(target ReportStatus) bool {
	for _, allowed := range reportTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

func NewReportStatus(s string) (ReportStatus, error) {
	status := ReportStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid report status: %s", s)
	}
	return status, nil
}

package valueobjects

import "fmt"

// TicketKind classifies a support ticket raised against a booking. An
// emergency ticket is a pure signal; it does not auto-create a maintenance
// request.
type TicketKind string

const (
	TicketMaintenance TicketKind = "maintenance"
	TicketEmergency   TicketKind = "emergency"
	TicketGeneral     TicketKind = "general"
)

func (k TicketKind) String() string {
	return string(k)
}

func (k TicketKind) IsValid() bool {
	switch k {
	case TicketMaintenance, TicketEmergency, TicketGeneral:
		return true
	}
	return false
}

func NewTicketKind(s string) (TicketKind, error) {
	k := TicketKind(s)
	if !k.IsValid() {
		return "", fmt.Errorf("invalid support ticket kind: %s", s)
	}
	return k, nil
}

// TicketStatus is the support ticket lifecycle state.
type TicketStatus string

const (
	TicketPending    TicketStatus = "pending"
	TicketInProgress TicketStatus = "in_progress"
	TicketResolved   TicketStatus = "resolved"
)

func (s TicketStatus) String() string {
	return string(s)
}

func (s TicketStatus) IsValid() bool {
	switch s {
	case TicketPending, TicketInProgress, TicketResolved:
		return true
	}
	return false
}

func (s TicketStatus) IsResolved() bool {
	return s == TicketResolved
}

func NewTicketStatus(s string) (TicketStatus, error) {
	status := TicketStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid support ticket status: %s", s)
	}
	return status, nil
}

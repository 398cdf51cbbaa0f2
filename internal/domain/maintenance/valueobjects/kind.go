package valueobjects

import "fmt"

// TicketKind classifies the kind of maintenance work requested.
type TicketKind string

const (
	KindInspection TicketKind = "inspection"
	KindRepair     TicketKind = "repair"
	KindCleaning   TicketKind = "cleaning"
	KindRenovation TicketKind = "renovation"
	KindEmergency  TicketKind = "emergency"
	KindRoutine    TicketKind = "routine"
)

func (k TicketKind) String() string {
	return string(k)
}

func (k TicketKind) IsValid() bool {
	switch k {
	case KindInspection, KindRepair, KindCleaning, KindRenovation, KindEmergency, KindRoutine:
		return true
	}
	return false
}

func NewTicketKind(s string) (TicketKind, error) {
	k := TicketKind(s)
	if !k.IsValid() {
		return "", fmt.Errorf("invalid maintenance kind: %s", s)
	}
	return k, nil
}

package valueobjects

import "fmt"

// BookingStatus is the booking pipeline state. Cancelled is terminal;
// confirmed is reachable only with a completed payment.
type BookingStatus string

const (
	StatusRequested        BookingStatus = "requested"
	StatusPendingPayment   BookingStatus = "pending_payment"
	StatusPaymentCompleted BookingStatus = "payment_completed"
	StatusConfirmed        BookingStatus = "confirmed"
	StatusCancelled        BookingStatus = "cancelled"
)

var validBookingStatuses = map[BookingStatus]bool{
	StatusRequested:        true,
	StatusPendingPayment:   true,
	StatusPaymentCompleted: true,
	StatusConfirmed:        true,
	StatusCancelled:        true,
}

var bookingTransitions = map[BookingStatus][]BookingStatus{
	StatusRequested: {
		StatusPendingPayment,
		StatusCancelled,
	},
	StatusPendingPayment: {
		StatusPaymentCompleted,
		StatusCancelled,
	},
	StatusPaymentCompleted: {
		StatusConfirmed,
		StatusCancelled,
	},
	StatusConfirmed: {
		StatusCancelled,
	},
}

func (s BookingStatus) String() string {
	return string(s)
}

func (s BookingStatus) IsValid() bool {
	return validBookingStatuses[s]
}

func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range bookingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s BookingStatus) IsCancelled() bool {
	return s == StatusCancelled
}

func (s BookingStatus) IsConfirmed() bool {
	return s == StatusConfirmed
}

// IsTerminal reports whether no transition may leave this state.
func (s BookingStatus) IsTerminal() bool {
	return s == StatusCancelled
}

func NewBookingStatus(s string) (BookingStatus, error) {
	status := BookingStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid booking status: %s", s)
	}
	return status, nil
}

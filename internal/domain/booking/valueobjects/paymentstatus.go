package valueobjects

import "fmt"

// PaymentStatus tracks the advance payment attached to a booking. Completion
// is an attested external event; the core does not verify it.
type PaymentStatus string

const (
	PaymentNotPaid   PaymentStatus = "not_paid"
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
)

func (s PaymentStatus) String() string {
	return string(s)
}

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentNotPaid, PaymentPending, PaymentCompleted:
		return true
	}
	return false
}

func (s PaymentStatus) IsCompleted() bool {
	return s == PaymentCompleted
}

func NewPaymentStatus(s string) (PaymentStatus, error) {
	status := PaymentStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid payment status: %s", s)
	}
	return status, nil
}

package booking

import (
	"fmt"
	"time"

	vo "rentora/internal/domain/booking/valueobjects"
)

// Contact is the tenant contact snapshot captured at booking time.
type Contact struct {
	Name  string
	Email string
	Phone string
}

func (c Contact) validate() error {
	if len(c.Name) == 0 {
		return fmt.Errorf("contact name is required")
	}
	if len(c.Email) == 0 {
		return fmt.Errorf("contact email is required")
	}
	if len(c.Phone) == 0 {
		return fmt.Errorf("contact phone is required")
	}
	return nil
}

// Booking is the tenancy request aggregate. The advance amount is
// snapshotted from the property at creation; later price changes never
// alter an existing booking. Invariant: confirmed implies payment
// completed, and cancelled is terminal.
type Booking struct {
	id            uint
	propertyID    uint
	tenantID      uint
	contact       Contact
	startDate     time.Time
	message       string
	termsAccepted bool
	status        vo.BookingStatus
	paymentStatus vo.PaymentStatus
	advanceAmount float64
	paymentMethod string
	transactionID string
	tickets       []*SupportTicket
	version       int
	createdAt     time.Time
	updatedAt     time.Time
}

// NewBooking creates a booking in pending_payment against an approved
// property. termsAccepted must already be true; the caller verifies the
// property's approval state.
func NewBooking(
	propertyID, tenantID uint,
	contact Contact,
	startDate time.Time,
	message string,
	termsAccepted bool,
	advanceAmount float64,
) (*Booking, error) {
	if propertyID == 0 {
		return nil, fmt.Errorf("property ID is required")
	}
	if tenantID == 0 {
		return nil, fmt.Errorf("tenant ID is required")
	}
	if err := contact.validate(); err != nil {
		return nil, err
	}
	if startDate.IsZero() {
		return nil, fmt.Errorf("start date is required")
	}
	if !termsAccepted {
		return nil, fmt.Errorf("terms must be accepted before booking")
	}
	if advanceAmount < 0 {
		return nil, fmt.Errorf("advance amount cannot be negative")
	}

	now := time.Now()
	return &Booking{
		propertyID:    propertyID,
		tenantID:      tenantID,
		contact:       contact,
		startDate:     startDate,
		message:       message,
		termsAccepted: true,
		status:        vo.StatusPendingPayment,
		paymentStatus: vo.PaymentNotPaid,
		advanceAmount: advanceAmount,
		tickets:       []*SupportTicket{},
		version:       1,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// ReconstructBooking rebuilds a booking from persistence.
func ReconstructBooking(
	id, propertyID, tenantID uint,
	contact Contact,
	startDate time.Time,
	message string,
	termsAccepted bool,
	status vo.BookingStatus,
	paymentStatus vo.PaymentStatus,
	advanceAmount float64,
	paymentMethod, transactionID string,
	tickets []*SupportTicket,
	version int,
	createdAt, updatedAt time.Time,
) (*Booking, error) {
	if id == 0 {
		return nil, fmt.Errorf("booking ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid booking status: %s", status)
	}
	if !paymentStatus.IsValid() {
		return nil, fmt.Errorf("invalid payment status: %s", paymentStatus)
	}
	if status.IsConfirmed() && !paymentStatus.IsCompleted() {
		return nil, fmt.Errorf("confirmed booking must have completed payment")
	}
	if tickets == nil {
		tickets = []*SupportTicket{}
	}

	return &Booking{
		id:            id,
		propertyID:    propertyID,
		tenantID:      tenantID,
		contact:       contact,
		startDate:     startDate,
		message:       message,
		termsAccepted: termsAccepted,
		status:        status,
		paymentStatus: paymentStatus,
		advanceAmount: advanceAmount,
		paymentMethod: paymentMethod,
		transactionID: transactionID,
		tickets:       tickets,
		version:       version,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (b *Booking) ID() uint                         { return b.id }
func (b *Booking) PropertyID() uint                 { return b.propertyID }
func (b *Booking) TenantID() uint                   { return b.tenantID }
func (b *Booking) Contact() Contact                 { return b.contact }
func (b *Booking) StartDate() time.Time             { return b.startDate }
func (b *Booking) Message() string                  { return b.message }
func (b *Booking) TermsAccepted() bool              { return b.termsAccepted }
func (b *Booking) Status() vo.BookingStatus         { return b.status }
func (b *Booking) PaymentStatus() vo.PaymentStatus  { return b.paymentStatus }
func (b *Booking) AdvanceAmount() float64           { return b.advanceAmount }
func (b *Booking) PaymentMethod() string            { return b.paymentMethod }
func (b *Booking) TransactionID() string            { return b.transactionID }
func (b *Booking) Version() int                     { return b.version }
func (b *Booking) CreatedAt() time.Time             { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time             { return b.updatedAt }

// SupportTickets returns a copy of the embedded support tickets.
func (b *Booking) SupportTickets() []*SupportTicket {
	out := make([]*SupportTicket, len(b.tickets))
	copy(out, b.tickets)
	return out
}

// SetID sets the booking ID (only for persistence layer use).
func (b *Booking) SetID(id uint) error {
	if b.id != 0 {
		return fmt.Errorf("booking ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("booking ID cannot be zero")
	}
	b.id = id
	return nil
}

// CompletePayment records the attested advance payment. Only legal from
// pending_payment.
func (b *Booking) CompletePayment(method, transactionID string) error {
	if b.status != vo.StatusPendingPayment {
		return fmt.Errorf("cannot complete payment for booking with status %s", b.status)
	}
	if len(method) == 0 {
		return fmt.Errorf("payment method is required")
	}
	if len(transactionID) == 0 {
		return fmt.Errorf("transaction ID is required")
	}

	b.paymentStatus = vo.PaymentCompleted
	b.status = vo.StatusPaymentCompleted
	b.paymentMethod = method
	b.transactionID = transactionID
	b.touch()
	return nil
}

// Confirm moves the booking to confirmed. Rejected unless the payment has
// completed, which keeps the confirmed-implies-paid invariant.
func (b *Booking) Confirm() error {
	if !b.paymentStatus.IsCompleted() {
		return fmt.Errorf("cannot confirm booking before payment completes")
	}
	if !b.status.CanTransitionTo(vo.StatusConfirmed) {
		return fmt.Errorf("cannot confirm booking with status %s", b.status)
	}

	b.status = vo.StatusConfirmed
	b.touch()
	return nil
}

// Cancel terminates the booking from any non-terminal state.
func (b *Booking) Cancel() error {
	if b.status.IsTerminal() {
		return fmt.Errorf("booking is already cancelled")
	}

	b.status = vo.StatusCancelled
	b.touch()
	return nil
}

// AddSupportTicket appends a ticket; rejected once the booking is
// cancelled.
func (b *Booking) AddSupportTicket(ticket *SupportTicket) error {
	if ticket == nil {
		return fmt.Errorf("support ticket cannot be nil")
	}
	if b.status.IsCancelled() {
		return fmt.Errorf("cannot add support ticket to a cancelled booking")
	}

	b.tickets = append(b.tickets, ticket)
	b.touch()
	return nil
}

// ResolveSupportTicket resolves the ticket at the given index.
func (b *Booking) ResolveSupportTicket(index int) error {
	if index < 0 || index >= len(b.tickets) {
		return fmt.Errorf("support ticket index %d out of range", index)
	}
	if err := b.tickets[index].Resolve(); err != nil {
		return err
	}
	b.touch()
	return nil
}

func (b *Booking) touch() {
	b.updatedAt = time.Now()
	b.version++
}

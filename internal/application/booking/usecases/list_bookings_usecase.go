package usecases

import (
	"context"
	"time"

	"rentora/internal/domain/booking"
	"rentora/internal/domain/property"
	"rentora/internal/shared/authorization"
	"rentora/internal/shared/errors"
)

// SupportTicketDTO is the embedded ticket read model.
type SupportTicketDTO struct {
	Index       int        `json:"index"`
	Kind        string     `json:"kind"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty"`
}

// BookingDTO is the booking read model.
type BookingDTO struct {
	ID            uint               `json:"id"`
	PropertyID    uint               `json:"property_id"`
	TenantID      uint               `json:"tenant_id"`
	ContactName   string             `json:"contact_name"`
	ContactEmail  string             `json:"contact_email"`
	ContactPhone  string             `json:"contact_phone"`
	StartDate     time.Time          `json:"start_date"`
	Status        string             `json:"status"`
	PaymentStatus string             `json:"payment_status"`
	AdvanceAmount float64            `json:"advance_amount"`
	Tickets       []SupportTicketDTO `json:"support_tickets"`
	CreatedAt     time.Time          `json:"created_at"`
}

func toBookingDTO(b *booking.Booking) BookingDTO {
	tickets := make([]SupportTicketDTO, 0, len(b.SupportTickets()))
	for i, t := range b.SupportTickets() {
		tickets = append(tickets, SupportTicketDTO{
			Index:       i,
			Kind:        t.Kind().String(),
			Description: t.Description(),
			Status:      t.Status().String(),
			CreatedAt:   t.CreatedAt(),
			ResolvedAt:  t.ResolvedAt(),
		})
	}
	return BookingDTO{
		ID:            b.ID(),
		PropertyID:    b.PropertyID(),
		TenantID:      b.TenantID(),
		ContactName:   b.Contact().Name,
		ContactEmail:  b.Contact().Email,
		ContactPhone:  b.Contact().Phone,
		StartDate:     b.StartDate(),
		Status:        b.Status().String(),
		PaymentStatus: b.PaymentStatus().String(),
		AdvanceAmount: b.AdvanceAmount(),
		Tickets:       tickets,
		CreatedAt:     b.CreatedAt(),
	}
}

// ListBookingsUseCase returns the bookings visible to the caller: tenants
// see their own, owners see bookings on one of their properties, admins
// see either view.
type ListBookingsUseCase struct {
	bookingRepo  booking.Repository
	propertyRepo property.Repository
}

func NewListBookingsUseCase(
	bookingRepo booking.Repository,
	propertyRepo property.Repository,
) *ListBookingsUseCase {
	return &ListBookingsUseCase{
		bookingRepo:  bookingRepo,
		propertyRepo: propertyRepo,
	}
}

type ListBookingsCommand struct {
	Principal authorization.Principal
	// PropertyID filters to one property; required for owners.
	PropertyID uint
}

type ListBookingsResult struct {
	Bookings []BookingDTO
}

func (uc *ListBookingsUseCase) Execute(ctx context.Context, cmd ListBookingsCommand) (*ListBookingsResult, error) {
	var (
		bookings []*booking.Booking
		err      error
	)

	switch {
	case cmd.Principal.Role.IsTenant():
		bookings, err = uc.bookingRepo.FindByTenantID(ctx, cmd.Principal.ID)
	case cmd.Principal.Role.IsOwner():
		if cmd.PropertyID == 0 {
			return nil, errors.NewValidationError("property ID is required")
		}
		var prop *property.Property
		prop, err = uc.propertyRepo.FindByID(ctx, cmd.PropertyID)
		if err != nil {
			return nil, err
		}
		if prop.OwnerID() != cmd.Principal.ID {
			return nil, errors.NewForbiddenError("bookings are visible to the property owner only")
		}
		bookings, err = uc.bookingRepo.FindByPropertyID(ctx, cmd.PropertyID)
	case cmd.Principal.Role.IsAdmin():
		if cmd.PropertyID != 0 {
			bookings, err = uc.bookingRepo.FindByPropertyID(ctx, cmd.PropertyID)
		} else {
			return nil, errors.NewValidationError("property ID is required")
		}
	default:
		return nil, errors.NewForbiddenError("bookings are not visible to this role")
	}
	if err != nil {
		return nil, err
	}

	dtos := make([]BookingDTO, 0, len(bookings))
	for _, b := range bookings {
		dtos = append(dtos, toBookingDTO(b))
	}
	return &ListBookingsResult{Bookings: dtos}, nil
}

package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"rentora/internal/domain/booking"
	vo "rentora/internal/domain/booking/valueobjects"
	"rentora/internal/infrastructure/persistence/models"
)

// supportTicketRecord is the JSON form of an embedded support ticket.
type supportTicketRecord struct {
	Kind        string     `json:"kind"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty"`
}

// BookingMapper handles conversion between the Booking domain entity and its
// model, including the embedded support tickets.
type BookingMapper interface {
	ToModel(b *booking.Booking) (*models.BookingModel, error)
	ToDomain(model *models.BookingModel) (*booking.Booking, error)
}

type BookingMapperImpl struct{}

func NewBookingMapper() BookingMapper {
	return &BookingMapperImpl{}
}

func (m *BookingMapperImpl) ToModel(b *booking.Booking) (*models.BookingModel, error) {
	records := make([]supportTicketRecord, 0, len(b.SupportTickets()))
	for _, t := range b.SupportTickets() {
		records = append(records, supportTicketRecord{
			Kind:        t.Kind().String(),
			Description: t.Description(),
			Status:      t.Status().String(),
			CreatedAt:   t.CreatedAt(),
			ResolvedAt:  t.ResolvedAt(),
		})
	}
	ticketsJSON, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal support tickets: %w", err)
	}

	contact := b.Contact()
	return &models.BookingModel{
		ID:             b.ID(),
		PropertyID:     b.PropertyID(),
		TenantID:       b.TenantID(),
		ContactName:    contact.Name,
		ContactEmail:   contact.Email,
		ContactPhone:   contact.Phone,
		StartDate:      b.StartDate(),
		Message:        b.Message(),
		TermsAccepted:  b.TermsAccepted(),
		Status:         b.Status().String(),
		PaymentStatus:  b.PaymentStatus().String(),
		AdvanceAmount:  b.AdvanceAmount(),
		PaymentMethod:  b.PaymentMethod(),
		TransactionID:  b.TransactionID(),
		SupportTickets: string(ticketsJSON),
		Version:        b.Version(),
		CreatedAt:      b.CreatedAt(),
		UpdatedAt:      b.UpdatedAt(),
	}, nil
}

func (m *BookingMapperImpl) ToDomain(model *models.BookingModel) (*booking.Booking, error) {
	var records []supportTicketRecord
	if model.SupportTickets != "" {
		if err := json.Unmarshal([]byte(model.SupportTickets), &records); err != nil {
			return nil, fmt.Errorf("failed to unmarshal support tickets: %w", err)
		}
	}

	tickets := make([]*booking.SupportTicket, 0, len(records))
	for _, r := range records {
		ticket, err := booking.ReconstructSupportTicket(
			vo.TicketKind(r.Kind), r.Description, vo.TicketStatus(r.Status), r.CreatedAt, r.ResolvedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to reconstruct support ticket: %w", err)
		}
		tickets = append(tickets, ticket)
	}

	return booking.ReconstructBooking(
		model.ID, model.PropertyID, model.TenantID,
		booking.Contact{Name: model.ContactName, Email: model.ContactEmail, Phone: model.ContactPhone},
		model.StartDate,
		model.Message,
		model.TermsAccepted,
		vo.BookingStatus(model.Status),
		vo.PaymentStatus(model.PaymentStatus),
		model.AdvanceAmount,
		model.PaymentMethod, model.TransactionID,
		tickets,
		model.Version,
		model.CreatedAt, model.UpdatedAt,
	)
}

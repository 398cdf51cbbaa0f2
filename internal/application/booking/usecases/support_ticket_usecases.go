package usecases

import (
	"context"

	"rentora/internal/domain/booking"
	bookingvo "rentora/internal/domain/booking/valueobjects"
	"rentora/internal/shared/authorization"
	"rentora/internal/shared/errors"
	"rentora/internal/shared/logger"
)

// AddSupportTicketUseCase attaches a support ticket to a live booking.
type AddSupportTicketUseCase struct {
	guard       *authorization.Guard
	bookingRepo booking.Repository
	logger      logger.Interface
}

func NewAddSupportTicketUseCase(
	guard *authorization.Guard,
	bookingRepo booking.Repository,
	logger logger.Interface,
) *AddSupportTicketUseCase {
	return &AddSupportTicketUseCase{
		guard:       guard,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

type AddSupportTicketCommand struct {
	Principal   authorization.Principal
	BookingID   uint
	Kind        string
	Description string
}

type AddSupportTicketResult struct {
	BookingID   uint
	TicketIndex int
	Status      string
}

func (uc *AddSupportTicketUseCase) Execute(ctx context.Context, cmd AddSupportTicketCommand) (*AddSupportTicketResult, error) {
	bk, err := uc.bookingRepo.FindByID(ctx, cmd.BookingID)
	if err != nil {
		return nil, err
	}

	if err := uc.guard.Authorize(cmd.Principal, authorization.ActionBookingAddTicket, authorization.TenantOf(bk.TenantID())); err != nil {
		return nil, err
	}

	kind, err := bookingvo.NewTicketKind(cmd.Kind)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	ticket, err := booking.NewSupportTicket(kind, cmd.Description)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := bk.AddSupportTicket(ticket); err != nil {
		return nil, errors.NewInvalidStateError(err.Error())
	}

	if err := uc.bookingRepo.Update(ctx, bk); err != nil {
		uc.logger.Errorw("failed to update booking", "booking_id", cmd.BookingID, "error", err)
		return nil, err
	}

	uc.logger.Infow("support ticket added",
		"booking_id", bk.ID(),
		"kind", kind.String(),
	)

	return &AddSupportTicketResult{
		BookingID:   bk.ID(),
		TicketIndex: len(bk.SupportTickets()) - 1,
		Status:      ticket.Status().String(),
	}, nil
}

// ResolveSupportTicketUseCase closes one of a booking's support tickets.
type ResolveSupportTicketUseCase struct {
	guard       *authorization.Guard
	bookingRepo booking.Repository
	logger      logger.Interface
}

func NewResolveSupportTicketUseCase(
	guard *authorization.Guard,
	bookingRepo booking.Repository,
	logger logger.Interface,
) *ResolveSupportTicketUseCase {
	return &ResolveSupportTicketUseCase{
		guard:       guard,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

type ResolveSupportTicketCommand struct {
	Principal   authorization.Principal
	BookingID   uint
	TicketIndex int
}

type ResolveSupportTicketResult struct {
	BookingID   uint
	TicketIndex int
	Status      string
}

func (uc *ResolveSupportTicketUseCase) Execute(ctx context.Context, cmd ResolveSupportTicketCommand) (*ResolveSupportTicketResult, error) {
	bk, err := uc.bookingRepo.FindByID(ctx, cmd.BookingID)
	if err != nil {
		return nil, err
	}

	if err := uc.guard.Authorize(cmd.Principal, authorization.ActionBookingResolveTicket, authorization.TenantOf(bk.TenantID())); err != nil {
		return nil, err
	}

	if err := bk.ResolveSupportTicket(cmd.TicketIndex); err != nil {
		return nil, errors.NewInvalidStateError(err.Error())
	}

	if err := uc.bookingRepo.Update(ctx, bk); err != nil {
		uc.logger.Errorw("failed to update booking", "booking_id", cmd.BookingID, "error", err)
		return nil, err
	}

	uc.logger.Infow("support ticket resolved",
		"booking_id", bk.ID(),
		"ticket_index", cmd.TicketIndex,
	)

	return &ResolveSupportTicketResult{
		BookingID:   bk.ID(),
		TicketIndex: cmd.TicketIndex,
		Status:      bk.SupportTickets()[cmd.TicketIndex].Status().String(),
	}, nil
}

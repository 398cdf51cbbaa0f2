package usecases

import (
	"context"

	"rentora/internal/domain/booking"
	"rentora/internal/domain/shared/audit"
	"rentora/internal/shared/authorization"
	"rentora/internal/shared/errors"
	"rentora/internal/shared/logger"
)

// CancelBookingUseCase cancels a booking from any non-terminal state.
// Tenants cancel their own bookings; admins can cancel any.
type CancelBookingUseCase struct {
	guard       *authorization.Guard
	bookingRepo booking.Repository
	logger      logger.Interface
}

func NewCancelBookingUseCase(
	guard *authorization.Guard,
	bookingRepo booking.Repository,
	logger logger.Interface,
) *CancelBookingUseCase {
	return &CancelBookingUseCase{
		guard:       guard,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

type CancelBookingCommand struct {
	Principal authorization.Principal
	BookingID uint
}

type CancelBookingResult struct {
	BookingID   uint
	Status      string
	StateChange audit.StateChange
}

func (uc *CancelBookingUseCase) Execute(ctx context.Context, cmd CancelBookingCommand) (*CancelBookingResult, error) {
	bk, err := uc.bookingRepo.FindByID(ctx, cmd.BookingID)
	if err != nil {
		return nil, err
	}

	if err := uc.guard.Authorize(cmd.Principal, authorization.ActionBookingCancel, authorization.TenantOf(bk.TenantID())); err != nil {
		return nil, err
	}

	from := bk.Status().String()
	if err := bk.Cancel(); err != nil {
		return nil, errors.NewInvalidStateError(err.Error())
	}

	if err := uc.bookingRepo.Update(ctx, bk); err != nil {
		uc.logger.Errorw("failed to update booking", "booking_id", cmd.BookingID, "error", err)
		return nil, err
	}

	uc.logger.Infow("booking cancelled",
		"booking_id", bk.ID(),
		"actor_id", cmd.Principal.ID,
	)

	return &CancelBookingResult{
		BookingID:   bk.ID(),
		Status:      bk.Status().String(),
		StateChange: audit.NewStateChange("booking", bk.ID(), from, bk.Status().String(), cmd.Principal.ID),
	}, nil
}

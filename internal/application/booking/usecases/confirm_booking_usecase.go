package usecases

import (
	"context"

	"rentora/internal/domain/booking"
	"rentora/internal/domain/property"
	"rentora/internal/domain/shared/audit"
	"rentora/internal/shared/authorization"
	"rentora/internal/shared/errors"
	"rentora/internal/shared/logger"
)

// ConfirmBookingUseCase handles the property owner confirming a paid
// booking. Confirmation without completed payment is rejected regardless
// of who asks.
type ConfirmBookingUseCase struct {
	guard        *authorization.Guard
	bookingRepo  booking.Repository
	propertyRepo property.Repository
	logger       logger.Interface
}

func NewConfirmBookingUseCase(
	guard *authorization.Guard,
	bookingRepo booking.Repository,
	propertyRepo property.Repository,
	logger logger.Interface,
) *ConfirmBookingUseCase {
	return &ConfirmBookingUseCase{
		guard:        guard,
		bookingRepo:  bookingRepo,
		propertyRepo: propertyRepo,
		logger:       logger,
	}
}

type ConfirmBookingCommand struct {
	Principal authorization.Principal
	BookingID uint
}

type ConfirmBookingResult struct {
	BookingID   uint
	Status      string
	StateChange audit.StateChange
}

func (uc *ConfirmBookingUseCase) Execute(ctx context.Context, cmd ConfirmBookingCommand) (*ConfirmBookingResult, error) {
	bk, err := uc.bookingRepo.FindByID(ctx, cmd.BookingID)
	if err != nil {
		return nil, err
	}

	prop, err := uc.propertyRepo.FindByID(ctx, bk.PropertyID())
	if err != nil {
		return nil, err
	}

	if err := uc.guard.Authorize(cmd.Principal, authorization.ActionBookingConfirm, authorization.OwnedBy(prop.OwnerID())); err != nil {
		return nil, err
	}

	from := bk.Status().String()
	if err := bk.Confirm(); err != nil {
		return nil, errors.NewInvalidStateError(err.Error())
	}

	if err := uc.bookingRepo.Update(ctx, bk); err != nil {
		uc.logger.Errorw("failed to update booking", "booking_id", cmd.BookingID, "error", err)
		return nil, err
	}

	uc.logger.Infow("booking confirmed",
		"booking_id", bk.ID(),
		"actor_id", cmd.Principal.ID,
	)

	return &ConfirmBookingResult{
		BookingID:   bk.ID(),
		Status:      bk.Status().String(),
		StateChange: audit.NewStateChange("booking", bk.ID(), from, bk.Status().String(), cmd.Principal.ID),
	}, nil
}

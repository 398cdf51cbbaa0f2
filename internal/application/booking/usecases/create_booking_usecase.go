package usecases

import (
	"context"
	"time"

	"rentora/internal/domain/booking"
	"rentora/internal/domain/property"
	"rentora/internal/domain/shared/audit"
	"rentora/internal/shared/authorization"
	"rentora/internal/shared/errors"
	"rentora/internal/shared/logger"
)

// CreateBookingUseCase handles a tenant requesting an approved property.
// The advance amount is snapshotted from the listing so later price edits
// do not change what the tenant owes.
type CreateBookingUseCase struct {
	guard        *authorization.Guard
	bookingRepo  booking.Repository
	propertyRepo property.Repository
	logger       logger.Interface
}

func NewCreateBookingUseCase(
	guard *authorization.Guard,
	bookingRepo booking.Repository,
	propertyRepo property.Repository,
	logger logger.Interface,
) *CreateBookingUseCase {
	return &CreateBookingUseCase{
		guard:        guard,
		bookingRepo:  bookingRepo,
		propertyRepo: propertyRepo,
		logger:       logger,
	}
}

type CreateBookingCommand struct {
	Principal     authorization.Principal
	PropertyID    uint
	ContactName   string
	ContactEmail  string
	ContactPhone  string
	StartDate     time.Time
	Message       string
	TermsAccepted bool
}

type CreateBookingResult struct {
	BookingID     uint
	Status        string
	PaymentStatus string
	AdvanceAmount float64
	StateChange   audit.StateChange
}

func (uc *CreateBookingUseCase) Execute(ctx context.Context, cmd CreateBookingCommand) (*CreateBookingResult, error) {
	if err := uc.guard.Authorize(cmd.Principal, authorization.ActionBookingCreate, authorization.NoTarget()); err != nil {
		return nil, err
	}

	prop, err := uc.propertyRepo.FindByID(ctx, cmd.PropertyID)
	if err != nil {
		return nil, err
	}
	if !prop.ApprovalStatus().IsApproved() {
		return nil, errors.NewInvalidStateError("property is not open for booking")
	}

	contact := booking.Contact{
		Name:  cmd.ContactName,
		Email: cmd.ContactEmail,
		Phone: cmd.ContactPhone,
	}
	bk, err := booking.NewBooking(cmd.PropertyID, cmd.Principal.ID, contact, cmd.StartDate, cmd.Message, cmd.TermsAccepted, prop.AdvanceAmount())
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.bookingRepo.Save(ctx, bk); err != nil {
		uc.logger.Errorw("failed to save booking", "property_id", cmd.PropertyID, "error", err)
		return nil, err
	}

	uc.logger.Infow("booking requested",
		"booking_id", bk.ID(),
		"property_id", cmd.PropertyID,
		"tenant_id", cmd.Principal.ID,
	)

	return &CreateBookingResult{
		BookingID:     bk.ID(),
		Status:        bk.Status().String(),
		PaymentStatus: bk.PaymentStatus().String(),
		AdvanceAmount: bk.AdvanceAmount(),
		StateChange:   audit.NewStateChange("booking", bk.ID(), "", bk.Status().String(), cmd.Principal.ID),
	}, nil
}

package usecases

import (
	"context"

	"rentora/internal/domain/booking"
	"rentora/internal/domain/shared/audit"
	"rentora/internal/shared/authorization"
	"rentora/internal/shared/errors"
	"rentora/internal/shared/logger"
)

// CompletePaymentUseCase records the tenant's advance payment. The
// booking moves to payment_completed and becomes confirmable.
type CompletePaymentUseCase struct {
	guard       *authorization.Guard
	bookingRepo booking.Repository
	logger      logger.Interface
}

func NewCompletePaymentUseCase(
	guard *authorization.Guard,
	bookingRepo booking.Repository,
	logger logger.Interface,
) *CompletePaymentUseCase {
	return &CompletePaymentUseCase{
		guard:       guard,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

type CompletePaymentCommand struct {
	Principal     authorization.Principal
	BookingID     uint
	PaymentMethod string
	TransactionID string
}

type CompletePaymentResult struct {
	BookingID     uint
	Status        string
	PaymentStatus string
	StateChange   audit.StateChange
}

func (uc *CompletePaymentUseCase) Execute(ctx context.Context, cmd CompletePaymentCommand) (*CompletePaymentResult, error) {
	bk, err := uc.bookingRepo.FindByID(ctx, cmd.BookingID)
	if err != nil {
		return nil, err
	}

	if err := uc.guard.Authorize(cmd.Principal, authorization.ActionBookingCompletePayment, authorization.TenantOf(bk.TenantID())); err != nil {
		return nil, err
	}

	from := bk.Status().String()
	if err := bk.CompletePayment(cmd.PaymentMethod, cmd.TransactionID); err != nil {
		return nil, errors.NewInvalidStateError(err.Error())
	}

	if err := uc.bookingRepo.Update(ctx, bk); err != nil {
		uc.logger.Errorw("failed to update booking", "booking_id", cmd.BookingID, "error", err)
		return nil, err
	}

	uc.logger.Infow("booking payment completed",
		"booking_id", bk.ID(),
		"transaction_id", cmd.TransactionID,
	)

	return &CompletePaymentResult{
		BookingID:     bk.ID(),
		Status:        bk.Status().String(),
		PaymentStatus: bk.PaymentStatus().String(),
		StateChange:   audit.NewStateChange("booking", bk.ID(), from, bk.Status().String(), cmd.Principal.ID),
	}, nil
}

package usecases

import (
	"context"

	"rentora/internal/domain/maintenance"
	"rentora/internal/domain/property"
	"rentora/internal/shared/authorization"
	"rentora/internal/shared/errors"
	"rentora/internal/shared/logger"
)

// AddFeedbackUseCase records the owner's verdict on completed maintenance
// work. Feedback never reopens the ticket.
type AddFeedbackUseCase struct {
	guard           *authorization.Guard
	maintenanceRepo maintenance.Repository
	propertyRepo    property.Repository
	logger          logger.Interface
}

func NewAddFeedbackUseCase(
	guard *authorization.Guard,
	maintenanceRepo maintenance.Repository,
	propertyRepo property.Repository,
	logger logger.Interface,
) *AddFeedbackUseCase {
	return &AddFeedbackUseCase{
		guard:           guard,
		maintenanceRepo: maintenanceRepo,
		propertyRepo:    propertyRepo,
		logger:          logger,
	}
}

type AddFeedbackCommand struct {
	Principal authorization.Principal
	TicketID  uint
	Feedback  string
	Rating    int
}

type AddFeedbackResult struct {
	TicketID uint
	Rating   int
}

func (uc *AddFeedbackUseCase) Execute(ctx context.Context, cmd AddFeedbackCommand) (*AddFeedbackResult, error) {
	ticket, err := uc.maintenanceRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}
	prop, err := uc.propertyRepo.FindByID(ctx, ticket.PropertyID())
	if err != nil {
		return nil, err
	}

	if err := uc.guard.Authorize(cmd.Principal, authorization.ActionMaintenanceFeedback, authorization.OwnedBy(prop.OwnerID())); err != nil {
		return nil, err
	}

	if err := ticket.AddFeedback(cmd.Feedback, cmd.Rating); err != nil {
		if !ticket.Status().IsCompleted() {
			return nil, errors.NewInvalidStateError(err.Error())
		}
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.maintenanceRepo.Update(ctx, ticket); err != nil {
		return nil, err
	}

	uc.logger.Infow("maintenance feedback recorded", "ticket_id", ticket.ID(), "rating", cmd.Rating)

	return &AddFeedbackResult{TicketID: ticket.ID(), Rating: ticket.Rating()}, nil
}

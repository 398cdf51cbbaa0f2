package usecases

import (
	"context"
	"time"

	"rentora/internal/domain/property"
	"rentora/internal/shared/authorization"
	"rentora/internal/shared/errors"
	"rentora/internal/shared/logger"
)

// CreatePropertyUseCase handles an owner submitting a new listing. The
// listing starts pending and is invisible to tenants until approved.
type CreatePropertyUseCase struct {
	guard        *authorization.Guard
	propertyRepo property.Repository
	logger       logger.Interface
}

func NewCreatePropertyUseCase(
	guard *authorization.Guard,
	propertyRepo property.Repository,
	logger logger.Interface,
) *CreatePropertyUseCase {
	return &CreatePropertyUseCase{
		guard:        guard,
		propertyRepo: propertyRepo,
		logger:       logger,
	}
}

type CreatePropertyCommand struct {
	Principal     authorization.Principal
	Title         string
	Address       string
	PricePerMonth float64
	AdvanceAmount float64
}

type CreatePropertyResult struct {
	PropertyID     uint
	ApprovalStatus string
	CreatedAt      time.Time
}

func (uc *CreatePropertyUseCase) Execute(ctx context.Context, cmd CreatePropertyCommand) (*CreatePropertyResult, error) {
	if err := uc.guard.Authorize(cmd.Principal, authorization.ActionPropertyCreate, authorization.NoTarget()); err != nil {
		return nil, err
	}

	prop, err := property.NewProperty(cmd.Principal.ID, cmd.Title, cmd.Address, cmd.PricePerMonth, cmd.AdvanceAmount)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.propertyRepo.Save(ctx, prop); err != nil {
		uc.logger.Errorw("failed to save property", "owner_id", cmd.Principal.ID, "error", err)
		return nil, err
	}

	uc.logger.Infow("property submitted",
		"property_id", prop.ID(),
		"owner_id", cmd.Principal.ID,
	)

	return &CreatePropertyResult{
		PropertyID:     prop.ID(),
		ApprovalStatus: prop.ApprovalStatus().String(),
		CreatedAt:      prop.CreatedAt(),
	}, nil
}

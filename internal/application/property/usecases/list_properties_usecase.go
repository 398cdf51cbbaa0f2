package usecases

import (
	"context"

	"rentora/internal/domain/property"
	"rentora/internal/shared/authorization"
)

// ListPropertiesUseCase returns the listings visible to the caller:
// approved properties for tenants and staff, the caller's own for owners,
// everything pending for admins reviewing the queue.
type ListPropertiesUseCase struct {
	guard        *authorization.Guard
	propertyRepo property.Repository
}

func NewListPropertiesUseCase(guard *authorization.Guard, propertyRepo property.Repository) *ListPropertiesUseCase {
	return &ListPropertiesUseCase{guard: guard, propertyRepo: propertyRepo}
}

type ListPropertiesCommand struct {
	Principal authorization.Principal
	// Mine restricts the listing to the owner's own properties.
	Mine bool
	// PendingOnly lists the admin review queue.
	PendingOnly bool
}

type ListPropertiesResult struct {
	Properties []PropertyDTO
}

func (uc *ListPropertiesUseCase) Execute(ctx context.Context, cmd ListPropertiesCommand) (*ListPropertiesResult, error) {
	if err := uc.guard.Authorize(cmd.Principal, authorization.ActionPropertyRead, authorization.NoTarget()); err != nil {
		return nil, err
	}

	var (
		props []*property.Property
		err   error
	)
	switch {
	case cmd.PendingOnly && cmd.Principal.Role.IsAdmin():
		props, err = uc.propertyRepo.FindPending(ctx)
	case cmd.Mine && cmd.Principal.Role.IsOwner():
		props, err = uc.propertyRepo.FindByOwnerID(ctx, cmd.Principal.ID)
	default:
		props, err = uc.propertyRepo.FindApproved(ctx)
	}
	if err != nil {
		return nil, err
	}

	dtos := make([]PropertyDTO, 0, len(props))
	for _, p := range props {
		dtos = append(dtos, toPropertyDTO(p))
	}
	return &ListPropertiesResult{Properties: dtos}, nil
}

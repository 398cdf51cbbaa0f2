package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentora/internal/domain/assignment"
	assignmentvo "rentora/internal/domain/assignment/valueobjects"
	"rentora/internal/domain/entitlement"
	"rentora/internal/domain/property"
	propertyvo "rentora/internal/domain/property/valueobjects"
	"rentora/internal/domain/user"
	"rentora/internal/shared/authorization"
	"rentora/internal/shared/errors"
	"rentora/internal/shared/logger"
)

func newGuard(t *testing.T) *authorization.Guard {
	t.Helper()
	g, err := authorization.NewGuard()
	require.NoError(t, err)
	return g
}

func pendingProperty(t *testing.T, id, ownerID uint) *property.Property {
	t.Helper()
	now := time.Now()
	p, err := property.ReconstructProperty(
		id, ownerID,
		"Lakeview Flat", "12 Shore Rd",
		1500, 3000,
		propertyvo.ApprovalPending,
		false, entitlement.TierBasic,
		nil,
		propertyvo.ConditionGood,
		nil, nil,
		1, now, now,
	)
	require.NoError(t, err)
	return p
}

func TestCreateProperty(t *testing.T) {
	saved := false
	repo := &mockPropertyRepository{
		SaveFunc: func(ctx context.Context, p *property.Property) error {
			saved = true
			return p.SetID(8)
		},
	}
	uc := NewCreatePropertyUseCase(newGuard(t), repo, logger.NewNop())

	result, err := uc.Execute(context.Background(), CreatePropertyCommand{
		Principal:     authorization.Principal{ID: 7, Role: authorization.RoleOwner},
		Title:         "Lakeview Flat",
		Address:       "12 Shore Rd",
		PricePerMonth: 1500,
		AdvanceAmount: 3000,
	})
	require.NoError(t, err)

	assert.True(t, saved)
	assert.Equal(t, uint(8), result.PropertyID)
	assert.Equal(t, "pending", result.ApprovalStatus)
}

func TestCreateProperty_TenantForbidden(t *testing.T) {
	uc := NewCreatePropertyUseCase(newGuard(t), &mockPropertyRepository{}, logger.NewNop())

	_, err := uc.Execute(context.Background(), CreatePropertyCommand{
		Principal: authorization.Principal{ID: 3, Role: authorization.RoleTenant},
		Title:     "Lakeview Flat",
		Address:   "12 Shore Rd",
	})
	assert.True(t, errors.IsForbiddenError(err))
}

func TestApproveProperty(t *testing.T) {
	prop := pendingProperty(t, 8, 7)
	repo := &mockPropertyRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*property.Property, error) {
			return prop, nil
		},
		UpdateFunc: func(ctx context.Context, p *property.Property) error { return nil },
	}
	uc := NewApprovePropertyUseCase(newGuard(t), repo, logger.NewNop())

	result, err := uc.Execute(context.Background(), ApprovePropertyCommand{
		Principal:  authorization.Principal{ID: 1, Role: authorization.RoleAdmin},
		PropertyID: 8,
	})
	require.NoError(t, err)

	assert.Equal(t, "approved", result.ApprovalStatus)
	assert.Equal(t, "pending", result.StateChange.FromState)
	assert.Equal(t, "approved", result.StateChange.ToState)
	assert.Equal(t, uint(1), result.StateChange.ActorID)
}

func TestApproveProperty_AlreadyDecided(t *testing.T) {
	prop := pendingProperty(t, 8, 7)
	require.NoError(t, prop.Reject())

	repo := &mockPropertyRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*property.Property, error) {
			return prop, nil
		},
	}
	uc := NewApprovePropertyUseCase(newGuard(t), repo, logger.NewNop())

	_, err := uc.Execute(context.Background(), ApprovePropertyCommand{
		Principal:  authorization.Principal{ID: 1, Role: authorization.RoleAdmin},
		PropertyID: 8,
	})
	assert.True(t, errors.IsInvalidStateError(err))
}

func TestApproveProperty_OwnerForbidden(t *testing.T) {
	uc := NewApprovePropertyUseCase(newGuard(t), &mockPropertyRepository{}, logger.NewNop())

	_, err := uc.Execute(context.Background(), ApprovePropertyCommand{
		Principal:  authorization.Principal{ID: 7, Role: authorization.RoleOwner},
		PropertyID: 8,
	})
	assert.True(t, errors.IsForbiddenError(err))
}

func TestDeleteProperty_LiveBookingsBlock(t *testing.T) {
	prop := pendingProperty(t, 8, 7)
	propRepo := &mockPropertyRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*property.Property, error) {
			return prop, nil
		},
	}
	bookingRepo := &mockBookingRepository{
		CountNonTerminalByPropertyIDFunc: func(ctx context.Context, propertyID uint) (int64, error) {
			return 2, nil
		},
	}
	uc := NewDeletePropertyUseCase(newGuard(t), propRepo, bookingRepo, &mockAssignmentRepository{}, &mockCoordinator{}, passthroughTx{}, logger.NewNop())

	err := uc.Execute(context.Background(), DeletePropertyCommand{
		Principal:  authorization.Principal{ID: 1, Role: authorization.RoleAdmin},
		PropertyID: 8,
	})
	assert.True(t, errors.IsPreconditionError(err))
}

func TestDeleteProperty_OwnerForbidden(t *testing.T) {
	prop := pendingProperty(t, 8, 7)
	propRepo := &mockPropertyRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*property.Property, error) {
			return prop, nil
		},
	}
	uc := NewDeletePropertyUseCase(newGuard(t), propRepo, &mockBookingRepository{}, &mockAssignmentRepository{}, &mockCoordinator{}, passthroughTx{}, logger.NewNop())

	err := uc.Execute(context.Background(), DeletePropertyCommand{
		Principal:  authorization.Principal{ID: 99, Role: authorization.RoleOwner},
		PropertyID: 8,
	})
	assert.True(t, errors.IsForbiddenError(err))
}

func TestDeleteProperty_CancelsAssignmentAndDetachesStaff(t *testing.T) {
	prop := pendingProperty(t, 8, 7)
	require.NoError(t, prop.Approve())

	propRepo := &mockPropertyRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*property.Property, error) {
			return prop, nil
		},
		DeleteFunc: func(ctx context.Context, id uint) error { return nil },
	}
	bookingRepo := &mockBookingRepository{
		CountNonTerminalByPropertyIDFunc: func(ctx context.Context, propertyID uint) (int64, error) {
			return 0, nil
		},
	}

	active, err := assignment.NewAssignment(4, 8, 1, assignmentvo.FrequencyMonthly, "", "", time.Now())
	require.NoError(t, err)
	require.NoError(t, active.SetID(3))

	var cancelled bool
	assignmentRepo := &mockAssignmentRepository{
		FindActiveByPropertyIDFunc: func(ctx context.Context, propertyID uint) (*assignment.Assignment, error) {
			return active, nil
		},
		UpdateFunc: func(ctx context.Context, a *assignment.Assignment) error {
			cancelled = a.Status().IsTerminal()
			return nil
		},
	}
	var detachedProperty, detachedStaff uint
	coord := &mockCoordinator{
		DetachStaffFromPropertyFunc: func(ctx context.Context, propertyID, staffID uint) error {
			detachedProperty, detachedStaff = propertyID, staffID
			return nil
		},
	}
	uc := NewDeletePropertyUseCase(newGuard(t), propRepo, bookingRepo, assignmentRepo, coord, passthroughTx{}, logger.NewNop())

	err = uc.Execute(context.Background(), DeletePropertyCommand{
		Principal:  authorization.Principal{ID: 1, Role: authorization.RoleAdmin},
		PropertyID: 8,
	})
	require.NoError(t, err)
	assert.True(t, cancelled)
	assert.Equal(t, uint(8), detachedProperty)
	assert.Equal(t, uint(4), detachedStaff)
}

func TestGetProperty_PendingHiddenFromTenant(t *testing.T) {
	prop := pendingProperty(t, 8, 7)
	repo := &mockPropertyRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*property.Property, error) {
			return prop, nil
		},
	}
	uc := NewGetPropertyUseCase(newGuard(t), repo)

	_, err := uc.Execute(context.Background(), GetPropertyCommand{
		Principal:  authorization.Principal{ID: 3, Role: authorization.RoleTenant},
		PropertyID: 8,
	})
	assert.True(t, errors.IsNotFoundError(err))

	// The owner still sees their own pending listing.
	dto, err := uc.Execute(context.Background(), GetPropertyCommand{
		Principal:  authorization.Principal{ID: 7, Role: authorization.RoleOwner},
		PropertyID: 8,
	})
	require.NoError(t, err)
	assert.Equal(t, uint(8), dto.ID)
}

func ownerUser(t *testing.T, id uint) *user.User {
	t.Helper()
	now := time.Now()
	u, err := user.ReconstructUser(id, "Leah Boren", "leah@example.com", "hash",
		authorization.RoleOwner, "", "", nil, true, 1, now, now)
	require.NoError(t, err)
	return u
}

func TestTransferOwnership(t *testing.T) {
	prop := pendingProperty(t, 8, 7)
	require.NoError(t, prop.Approve())

	var updated *property.Property
	propRepo := &mockPropertyRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*property.Property, error) {
			return prop, nil
		},
		UpdateFunc: func(ctx context.Context, p *property.Property) error {
			updated = p
			return nil
		},
	}
	userRepo := &mockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return ownerUser(t, 9), nil
		},
	}
	uc := NewTransferOwnershipUseCase(newGuard(t), propRepo, userRepo, logger.NewNop())

	result, err := uc.Execute(context.Background(), TransferOwnershipCommand{
		Principal:  authorization.Principal{ID: 1, Role: authorization.RoleAdmin},
		PropertyID: 8,
		NewOwnerID: 9,
	})
	require.NoError(t, err)

	assert.Equal(t, uint(7), result.PreviousOwnerID)
	assert.Equal(t, uint(9), result.NewOwnerID)
	require.NotNil(t, updated)
	assert.Equal(t, uint(9), updated.OwnerID())
	assert.Equal(t, "owner:7", result.StateChange.FromState)
	assert.Equal(t, "owner:9", result.StateChange.ToState)
}

func TestTransferOwnership_OwnerForbidden(t *testing.T) {
	uc := NewTransferOwnershipUseCase(newGuard(t), &mockPropertyRepository{}, &mockUserRepository{}, logger.NewNop())

	_, err := uc.Execute(context.Background(), TransferOwnershipCommand{
		Principal:  authorization.Principal{ID: 7, Role: authorization.RoleOwner},
		PropertyID: 8,
		NewOwnerID: 9,
	})
	assert.True(t, errors.IsForbiddenError(err))
}

func TestTransferOwnership_TenantRecipientRejected(t *testing.T) {
	now := time.Now()
	tenant, err := user.ReconstructUser(5, "Ana Reyes", "ana@example.com", "hash",
		authorization.RoleTenant, "", "", nil, true, 1, now, now)
	require.NoError(t, err)

	userRepo := &mockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) { return tenant, nil },
	}
	uc := NewTransferOwnershipUseCase(newGuard(t), &mockPropertyRepository{}, userRepo, logger.NewNop())

	_, err = uc.Execute(context.Background(), TransferOwnershipCommand{
		Principal:  authorization.Principal{ID: 1, Role: authorization.RoleAdmin},
		PropertyID: 8,
		NewOwnerID: 5,
	})
	assert.True(t, errors.IsValidationError(err))
}

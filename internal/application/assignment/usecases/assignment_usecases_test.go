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

func subscribedProperty(t *testing.T, id, ownerID uint, tier entitlement.Tier) *property.Property {
	t.Helper()
	now := time.Now()
	p, err := property.ReconstructProperty(
		id, ownerID,
		"Lakeview Flat", "12 Shore Rd",
		1500, 3000,
		propertyvo.ApprovalApproved,
		tier != entitlement.TierBasic, tier,
		nil,
		propertyvo.ConditionGood,
		nil, nil,
		1, now, now,
	)
	require.NoError(t, err)
	return p
}

func staffMember(t *testing.T, id uint) *user.User {
	t.Helper()
	now := time.Now()
	u, err := user.ReconstructUser(id, "Mira Shah", "mira@example.com", "hash",
		authorization.RoleStaff, "", "STF0001", nil, true, 1, now, now)
	require.NoError(t, err)
	return u
}

func openAssignment(t *testing.T, id, staffID, propertyID uint) *assignment.Assignment {
	t.Helper()
	a, err := assignment.NewAssignment(staffID, propertyID, 1, assignmentvo.FrequencyMonthly, "", "", time.Now())
	require.NoError(t, err)
	require.NoError(t, a.SetID(id))
	return a
}

func newAssignUseCase(
	t *testing.T,
	assignmentRepo *mockAssignmentRepository,
	propRepo *mockPropertyRepository,
	userRepo *mockUserRepository,
	coord *mockCoordinator,
) *AssignStaffUseCase {
	t.Helper()
	return NewAssignStaffUseCase(newGuard(t), entitlement.NewGate(), assignmentRepo, propRepo, userRepo, coord, passthroughTx{}, logger.NewNop())
}

func TestAssignStaff(t *testing.T) {
	prop := subscribedProperty(t, 8, 7, entitlement.TierPremium)
	staff := staffMember(t, 4)

	var attached bool
	assignmentRepo := &mockAssignmentRepository{
		FindActiveByPropertyIDFunc: func(ctx context.Context, propertyID uint) (*assignment.Assignment, error) {
			return nil, nil
		},
		SaveExclusiveFunc: func(ctx context.Context, a *assignment.Assignment) error {
			return a.SetID(3)
		},
	}
	propRepo := &mockPropertyRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*property.Property, error) { return prop, nil },
	}
	userRepo := &mockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) { return staff, nil },
	}
	coord := &mockCoordinator{
		AttachStaffToPropertyFunc: func(ctx context.Context, propertyID, staffID uint) error {
			attached = propertyID == 8 && staffID == 4
			return nil
		},
	}
	uc := newAssignUseCase(t, assignmentRepo, propRepo, userRepo, coord)

	result, err := uc.Execute(context.Background(), AssignStaffCommand{
		Principal:           authorization.Principal{ID: 1, Role: authorization.RoleAdmin},
		PropertyID:          8,
		StaffID:             4,
		InspectionFrequency: "monthly",
	})
	require.NoError(t, err)

	assert.Equal(t, uint(3), result.AssignmentID)
	assert.Equal(t, "assigned", result.Status)
	assert.False(t, result.Reassigned)
	assert.True(t, attached)
	assert.Equal(t, "assignment", result.StateChange.EntityType)
	assert.Equal(t, "", result.StateChange.FromState)
	assert.Equal(t, "assigned", result.StateChange.ToState)
}

func TestAssignStaff_BasicTierDenied(t *testing.T) {
	prop := subscribedProperty(t, 8, 7, entitlement.TierBasic)
	staff := staffMember(t, 4)

	propRepo := &mockPropertyRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*property.Property, error) { return prop, nil },
	}
	userRepo := &mockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) { return staff, nil },
	}

	// The gate must deny before any write is attempted, so the repo and
	// coordinator mocks would panic if touched.
	uc := newAssignUseCase(t, &mockAssignmentRepository{}, propRepo, userRepo, &mockCoordinator{})

	_, err := uc.Execute(context.Background(), AssignStaffCommand{
		Principal:           authorization.Principal{ID: 1, Role: authorization.RoleAdmin},
		PropertyID:          8,
		StaffID:             4,
		InspectionFrequency: "monthly",
	})
	assert.True(t, errors.IsForbiddenError(err))
}

func TestAssignStaff_OpenAssignmentConflicts(t *testing.T) {
	prop := subscribedProperty(t, 8, 7, entitlement.TierPremium)
	staff := staffMember(t, 9)
	existing := openAssignment(t, 3, 4, 8)

	assignmentRepo := &mockAssignmentRepository{
		FindActiveByPropertyIDFunc: func(ctx context.Context, propertyID uint) (*assignment.Assignment, error) {
			return existing, nil
		},
	}
	propRepo := &mockPropertyRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*property.Property, error) { return prop, nil },
	}
	userRepo := &mockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) { return staff, nil },
	}
	uc := newAssignUseCase(t, assignmentRepo, propRepo, userRepo, &mockCoordinator{})

	_, err := uc.Execute(context.Background(), AssignStaffCommand{
		Principal:           authorization.Principal{ID: 1, Role: authorization.RoleAdmin},
		PropertyID:          8,
		StaffID:             9,
		InspectionFrequency: "monthly",
	})
	assert.True(t, errors.IsConflictError(err))
}

func TestAssignStaff_SameStaffReassignsInPlace(t *testing.T) {
	prop := subscribedProperty(t, 8, 7, entitlement.TierPremium)
	staff := staffMember(t, 4)
	existing := openAssignment(t, 3, 4, 8)

	var updated bool
	assignmentRepo := &mockAssignmentRepository{
		FindActiveByPropertyIDFunc: func(ctx context.Context, propertyID uint) (*assignment.Assignment, error) {
			return existing, nil
		},
		UpdateFunc: func(ctx context.Context, a *assignment.Assignment) error {
			updated = true
			return nil
		},
	}
	propRepo := &mockPropertyRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*property.Property, error) { return prop, nil },
	}
	userRepo := &mockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) { return staff, nil },
	}
	uc := newAssignUseCase(t, assignmentRepo, propRepo, userRepo, &mockCoordinator{})

	result, err := uc.Execute(context.Background(), AssignStaffCommand{
		Principal:           authorization.Principal{ID: 1, Role: authorization.RoleAdmin},
		PropertyID:          8,
		StaffID:             4,
		InspectionFrequency: "quarterly",
	})
	require.NoError(t, err)

	assert.True(t, result.Reassigned)
	assert.True(t, updated)
	assert.Equal(t, uint(3), result.AssignmentID)
	assert.Equal(t, assignmentvo.FrequencyQuarterly, existing.InspectionFrequency())
}

func TestAssignStaff_ConcurrentLoserGetsConflict(t *testing.T) {
	prop := subscribedProperty(t, 8, 7, entitlement.TierPremium)
	staff := staffMember(t, 4)

	// The racing transaction already inserted, so the conditional write
	// affects zero rows and the repository reports a conflict.
	assignmentRepo := &mockAssignmentRepository{
		FindActiveByPropertyIDFunc: func(ctx context.Context, propertyID uint) (*assignment.Assignment, error) {
			return nil, nil
		},
		SaveExclusiveFunc: func(ctx context.Context, a *assignment.Assignment) error {
			return errors.NewConflictError("property already has an open assignment")
		},
	}
	propRepo := &mockPropertyRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*property.Property, error) { return prop, nil },
	}
	userRepo := &mockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) { return staff, nil },
	}
	uc := newAssignUseCase(t, assignmentRepo, propRepo, userRepo, &mockCoordinator{})

	_, err := uc.Execute(context.Background(), AssignStaffCommand{
		Principal:           authorization.Principal{ID: 1, Role: authorization.RoleAdmin},
		PropertyID:          8,
		StaffID:             4,
		InspectionFrequency: "monthly",
	})
	assert.True(t, errors.IsConflictError(err))
}

func TestAssignStaff_NonStaffAssigneeRejected(t *testing.T) {
	now := time.Now()
	tenant, err := user.ReconstructUser(5, "Ana Reyes", "ana@example.com", "hash",
		authorization.RoleTenant, "", "", nil, true, 1, now, now)
	require.NoError(t, err)

	userRepo := &mockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) { return tenant, nil },
	}
	uc := newAssignUseCase(t, &mockAssignmentRepository{}, &mockPropertyRepository{}, userRepo, &mockCoordinator{})

	_, err = uc.Execute(context.Background(), AssignStaffCommand{
		Principal:           authorization.Principal{ID: 1, Role: authorization.RoleAdmin},
		PropertyID:          8,
		StaffID:             5,
		InspectionFrequency: "monthly",
	})
	assert.True(t, errors.IsValidationError(err))
}

func TestAssignmentLifecycleTransitions(t *testing.T) {
	assn := openAssignment(t, 3, 4, 8)
	assignmentRepo := &mockAssignmentRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*assignment.Assignment, error) {
			return assn, nil
		},
		UpdateFunc: func(ctx context.Context, a *assignment.Assignment) error { return nil },
	}
	staffPrincipal := authorization.Principal{ID: 4, Role: authorization.RoleStaff}

	acceptUC := NewAcceptAssignmentUseCase(newGuard(t), assignmentRepo, logger.NewNop())
	startUC := NewStartAssignmentUseCase(newGuard(t), assignmentRepo, logger.NewNop())

	accepted, err := acceptUC.Execute(context.Background(), AcceptAssignmentCommand{Principal: staffPrincipal, AssignmentID: 3})
	require.NoError(t, err)
	assert.Equal(t, "accepted", accepted.Status)

	started, err := startUC.Execute(context.Background(), StartAssignmentCommand{Principal: staffPrincipal, AssignmentID: 3})
	require.NoError(t, err)
	assert.Equal(t, "in_progress", started.Status)

	var detached bool
	coord := &mockCoordinator{
		DetachStaffFromPropertyFunc: func(ctx context.Context, propertyID, staffID uint) error {
			detached = propertyID == 8 && staffID == 4
			return nil
		},
	}
	completeUC := NewCompleteAssignmentUseCase(newGuard(t), assignmentRepo, coord, passthroughTx{}, logger.NewNop())

	completed, err := completeUC.Execute(context.Background(), CompleteAssignmentCommand{Principal: staffPrincipal, AssignmentID: 3})
	require.NoError(t, err)
	assert.Equal(t, "completed", completed.Status)
	assert.True(t, detached)
	assert.NotNil(t, assn.CompletedDate())
}

func TestAcceptAssignment_ForeignStaffForbidden(t *testing.T) {
	assn := openAssignment(t, 3, 4, 8)
	assignmentRepo := &mockAssignmentRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*assignment.Assignment, error) {
			return assn, nil
		},
	}
	uc := NewAcceptAssignmentUseCase(newGuard(t), assignmentRepo, logger.NewNop())

	_, err := uc.Execute(context.Background(), AcceptAssignmentCommand{
		Principal:    authorization.Principal{ID: 99, Role: authorization.RoleStaff},
		AssignmentID: 3,
	})
	assert.True(t, errors.IsForbiddenError(err))
}

func TestCancelAssignment(t *testing.T) {
	assn := openAssignment(t, 3, 4, 8)
	assignmentRepo := &mockAssignmentRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*assignment.Assignment, error) {
			return assn, nil
		},
		UpdateFunc: func(ctx context.Context, a *assignment.Assignment) error { return nil },
	}
	coord := &mockCoordinator{
		DetachStaffFromPropertyFunc: func(ctx context.Context, propertyID, staffID uint) error { return nil },
	}
	uc := NewCancelAssignmentUseCase(newGuard(t), assignmentRepo, coord, passthroughTx{}, logger.NewNop())

	result, err := uc.Execute(context.Background(), CancelAssignmentCommand{
		Principal:    authorization.Principal{ID: 1, Role: authorization.RoleAdmin},
		AssignmentID: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, "cancelled", result.Status)

	// Staff cannot cancel, even their own assignment.
	_, err = uc.Execute(context.Background(), CancelAssignmentCommand{
		Principal:    authorization.Principal{ID: 4, Role: authorization.RoleStaff},
		AssignmentID: 3,
	})
	assert.True(t, errors.IsForbiddenError(err))
}

func TestListAssignments(t *testing.T) {
	assignmentRepo := &mockAssignmentRepository{
		FindByStaffIDFunc: func(ctx context.Context, staffID uint) ([]*assignment.Assignment, error) {
			assert.Equal(t, uint(4), staffID)
			return []*assignment.Assignment{openAssignment(t, 3, 4, 8)}, nil
		},
	}
	uc := NewListAssignmentsUseCase(assignmentRepo)

	result, err := uc.Execute(context.Background(), ListAssignmentsCommand{
		Principal: authorization.Principal{ID: 4, Role: authorization.RoleStaff},
	})
	require.NoError(t, err)
	require.Len(t, result.Assignments, 1)
	assert.Equal(t, uint(3), result.Assignments[0].ID)
	assert.Equal(t, "assigned", result.Assignments[0].Status)
}

func TestListAssignments_AdminNeedsStaffID(t *testing.T) {
	uc := NewListAssignmentsUseCase(&mockAssignmentRepository{})

	_, err := uc.Execute(context.Background(), ListAssignmentsCommand{
		Principal: authorization.Principal{ID: 1, Role: authorization.RoleAdmin},
	})
	assert.True(t, errors.IsValidationError(err))
}

func TestListAssignments_OwnerForbidden(t *testing.T) {
	uc := NewListAssignmentsUseCase(&mockAssignmentRepository{})

	_, err := uc.Execute(context.Background(), ListAssignmentsCommand{
		Principal: authorization.Principal{ID: 7, Role: authorization.RoleOwner},
	})
	assert.True(t, errors.IsForbiddenError(err))
}

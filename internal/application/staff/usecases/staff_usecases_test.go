package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

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

func activeStaff(t *testing.T, id uint, propertyIDs []uint) *user.User {
	t.Helper()
	now := time.Now()
	u, err := user.ReconstructUser(id, "Mira Shah", "mira@example.com", "hash",
		authorization.RoleStaff, "", "STF0001", propertyIDs, true, 1, now, now)
	require.NoError(t, err)
	return u
}

func TestCreateStaff(t *testing.T) {
	admin := authorization.Principal{ID: 1, Role: authorization.RoleAdmin}

	t.Run("creates an account with a generated code and hashed password", func(t *testing.T) {
		var saved *user.User
		userRepo := &mockUserRepository{
			ExistsByEmailFunc: func(ctx context.Context, email string) (bool, error) { return false, nil },
			CountByRoleFunc: func(ctx context.Context, role authorization.Role) (int64, error) {
				assert.Equal(t, authorization.RoleStaff, role)
				return 4, nil
			},
			SaveFunc: func(ctx context.Context, u *user.User) error {
				saved = u
				return u.SetID(12)
			},
		}

		uc := NewCreateStaffUseCase(newGuard(t), userRepo, logger.NewNop())
		res, err := uc.Execute(context.Background(), CreateStaffCommand{
			Principal: admin,
			Name:      "Mira Shah",
			Email:     "Mira@Example.com",
			Password:  "long-enough-secret",
			Phone:     "555-0142",
		})
		require.NoError(t, err)
		assert.Equal(t, uint(12), res.StaffID)
		assert.Equal(t, "STF0005", res.StaffCode)
		assert.Equal(t, "mira@example.com", res.Email)

		require.NotNil(t, saved)
		assert.NotEqual(t, "long-enough-secret", saved.PasswordHash())
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.PasswordHash()), []byte("long-enough-secret")))
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		userRepo := &mockUserRepository{
			ExistsByEmailFunc: func(ctx context.Context, email string) (bool, error) { return true, nil },
		}

		uc := NewCreateStaffUseCase(newGuard(t), userRepo, logger.NewNop())
		_, err := uc.Execute(context.Background(), CreateStaffCommand{
			Principal: admin,
			Name:      "Mira Shah",
			Email:     "mira@example.com",
			Password:  "long-enough-secret",
		})
		require.Error(t, err)
		assert.True(t, errors.IsConflictError(err))
	})

	t.Run("short password is rejected", func(t *testing.T) {
		uc := NewCreateStaffUseCase(newGuard(t), &mockUserRepository{}, logger.NewNop())
		_, err := uc.Execute(context.Background(), CreateStaffCommand{
			Principal: admin,
			Name:      "Mira Shah",
			Email:     "mira@example.com",
			Password:  "short",
		})
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("only admins may create staff", func(t *testing.T) {
		uc := NewCreateStaffUseCase(newGuard(t), &mockUserRepository{}, logger.NewNop())
		_, err := uc.Execute(context.Background(), CreateStaffCommand{
			Principal: authorization.Principal{ID: 7, Role: authorization.RoleOwner},
			Name:      "Mira Shah",
			Email:     "mira@example.com",
			Password:  "long-enough-secret",
		})
		require.Error(t, err)
		assert.True(t, errors.IsForbiddenError(err))
	})
}

func TestRemoveStaff(t *testing.T) {
	admin := authorization.Principal{ID: 1, Role: authorization.RoleAdmin}

	t.Run("cancels assignments, releases properties and deactivates", func(t *testing.T) {
		staff := activeStaff(t, 4, []uint{8, 9})
		var deactivated *user.User
		userRepo := &mockUserRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) { return staff, nil },
			UpdateFunc: func(ctx context.Context, u *user.User) error {
				deactivated = u
				return nil
			},
		}
		var cancelled bool
		assignmentRepo := &mockAssignmentRepository{
			CancelActiveByStaffIDFunc: func(ctx context.Context, staffID uint) error {
				cancelled = true
				assert.Equal(t, uint(4), staffID)
				return nil
			},
		}
		var detachedFrom []uint
		coord := &mockCoordinator{
			DetachStaffFromPropertyFunc: func(ctx context.Context, propertyID, staffID uint) error {
				detachedFrom = append(detachedFrom, propertyID)
				require.NoError(t, staff.RemoveAssignedProperty(propertyID))
				return nil
			},
		}

		uc := NewRemoveStaffUseCase(newGuard(t), userRepo, assignmentRepo, coord, passthroughTx{}, logger.NewNop())
		res, err := uc.Execute(context.Background(), RemoveStaffCommand{Principal: admin, StaffID: 4})
		require.NoError(t, err)
		assert.Equal(t, []uint{8, 9}, res.ReleasedProperties)
		assert.Equal(t, []uint{8, 9}, detachedFrom)
		assert.True(t, cancelled)
		require.NotNil(t, deactivated)
		assert.False(t, deactivated.IsActive())
		assert.Empty(t, deactivated.AssignedPropertyIDs())
	})

	t.Run("non-staff user is rejected", func(t *testing.T) {
		now := time.Now()
		owner, err := user.ReconstructUser(7, "Ada Wong", "ada@example.com", "hash",
			authorization.RoleOwner, "", "", nil, true, 1, now, now)
		require.NoError(t, err)
		userRepo := &mockUserRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) { return owner, nil },
		}

		uc := NewRemoveStaffUseCase(newGuard(t), userRepo, &mockAssignmentRepository{}, &mockCoordinator{}, passthroughTx{}, logger.NewNop())
		_, err = uc.Execute(context.Background(), RemoveStaffCommand{Principal: admin, StaffID: 7})
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("removing twice is an invalid state", func(t *testing.T) {
		staff := activeStaff(t, 4, nil)
		staff.Deactivate()
		userRepo := &mockUserRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) { return staff, nil },
		}

		uc := NewRemoveStaffUseCase(newGuard(t), userRepo, &mockAssignmentRepository{}, &mockCoordinator{}, passthroughTx{}, logger.NewNop())
		_, err := uc.Execute(context.Background(), RemoveStaffCommand{Principal: admin, StaffID: 4})
		require.Error(t, err)
		assert.True(t, errors.IsInvalidStateError(err))
	})

	t.Run("staff may not remove staff", func(t *testing.T) {
		uc := NewRemoveStaffUseCase(newGuard(t), &mockUserRepository{}, &mockAssignmentRepository{}, &mockCoordinator{}, passthroughTx{}, logger.NewNop())
		_, err := uc.Execute(context.Background(), RemoveStaffCommand{
			Principal: authorization.Principal{ID: 4, Role: authorization.RoleStaff},
			StaffID:   5,
		})
		require.Error(t, err)
		assert.True(t, errors.IsForbiddenError(err))
	})
}

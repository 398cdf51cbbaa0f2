package usecases

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"rentora/internal/domain/user"
	"rentora/internal/shared/authorization"
	"rentora/internal/shared/errors"
	"rentora/internal/shared/logger"
)

// CreateStaffUseCase provisions a staff account with a generated staff code.
type CreateStaffUseCase struct {
	guard    *authorization.Guard
	userRepo user.Repository
	logger   logger.Interface
}

func NewCreateStaffUseCase(
	guard *authorization.Guard,
	userRepo user.Repository,
	logger logger.Interface,
) *CreateStaffUseCase {
	return &CreateStaffUseCase{guard: guard, userRepo: userRepo, logger: logger}
}

type CreateStaffCommand struct {
	Principal authorization.Principal
	Name      string
	Email     string
	Password  string
	Phone     string
}

type CreateStaffResult struct {
	StaffID   uint
	StaffCode string
	Email     string
}

func (uc *CreateStaffUseCase) Execute(ctx context.Context, cmd CreateStaffCommand) (*CreateStaffResult, error) {
	if err := uc.guard.Authorize(cmd.Principal, authorization.ActionStaffCreate, authorization.NoTarget()); err != nil {
		return nil, err
	}

	if len(cmd.Password) < 8 {
		return nil, errors.NewValidationError("password must be at least 8 characters")
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, cmd.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.NewConflictError("a user with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.NewInternalError("failed to hash password", err.Error())
	}

	count, err := uc.userRepo.CountByRole(ctx, authorization.RoleStaff)
	if err != nil {
		return nil, err
	}
	staffCode := fmt.Sprintf("STF%04d", count+1)

	staff, err := user.NewStaff(cmd.Name, cmd.Email, string(hash), cmd.Phone, staffCode, time.Now())
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.userRepo.Save(ctx, staff); err != nil {
		return nil, err
	}

	uc.logger.Infow("staff account created",
		"staff_id", staff.ID(),
		"staff_code", staffCode,
	)

	return &CreateStaffResult{
		StaffID:   staff.ID(),
		StaffCode: staff.StaffCode(),
		Email:     staff.Email(),
	}, nil
}

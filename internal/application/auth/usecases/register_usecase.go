package usecases

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"rentora/internal/domain/user"
	"rentora/internal/shared/authorization"
	"rentora/internal/shared/errors"
	"rentora/internal/shared/logger"
)

// RegisterUseCase self-registers a tenant or owner account. Staff and admin
// accounts are provisioned through staff administration, never here.
type RegisterUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewRegisterUseCase(userRepo user.Repository, logger logger.Interface) *RegisterUseCase {
	return &RegisterUseCase{userRepo: userRepo, logger: logger}
}

type RegisterCommand struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Role     string
}

type RegisterResult struct {
	UserID uint
	Email  string
	Role   string
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*RegisterResult, error) {
	role, ok := authorization.ParseRole(cmd.Role)
	if !ok || (role != authorization.RoleTenant && role != authorization.RoleOwner) {
		return nil, errors.NewValidationError("role must be tenant or owner")
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

	u, err := user.NewUser(cmd.Name, cmd.Email, string(hash), role, cmd.Phone, time.Now())
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.userRepo.Save(ctx, u); err != nil {
		return nil, err
	}

	uc.logger.Infow("user registered", "user_id", u.ID(), "role", role.String())

	return &RegisterResult{UserID: u.ID(), Email: u.Email(), Role: u.Role().String()}, nil
}

package usecases

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"rentora/internal/domain/user"
	"rentora/internal/infrastructure/auth"
	"rentora/internal/shared/errors"
	"rentora/internal/shared/logger"
)

// LoginUseCase exchanges credentials for a token pair. Lookup and password
// failures return the same unauthorized error so the response does not leak
// which emails exist.
type LoginUseCase struct {
	userRepo   user.Repository
	jwtService *auth.JWTService
	logger     logger.Interface
}

func NewLoginUseCase(userRepo user.Repository, jwtService *auth.JWTService, logger logger.Interface) *LoginUseCase {
	return &LoginUseCase{userRepo: userRepo, jwtService: jwtService, logger: logger}
}

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	UserID       uint
	Role         string
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	u, err := uc.userRepo.FindByEmail(ctx, cmd.Email)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewUnauthorizedError("invalid email or password")
		}
		return nil, err
	}
	if !u.IsActive() {
		return nil, errors.NewUnauthorizedError("account is deactivated")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash()), []byte(cmd.Password)); err != nil {
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	pair, err := uc.jwtService.Generate(u.ID(), u.Role())
	if err != nil {
		return nil, errors.NewInternalError("failed to issue tokens", err.Error())
	}

	uc.logger.Infow("user logged in", "user_id", u.ID(), "role", u.Role().String())

	return &LoginResult{
		UserID:       u.ID(),
		Role:         u.Role().String(),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}

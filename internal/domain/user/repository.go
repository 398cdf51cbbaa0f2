package user

import (
	"context"

	"rentora/internal/shared/authorization"
)

// Repository is the persistence port for user accounts.
type Repository interface {
	Save(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByRole(ctx context.Context, role authorization.Role) ([]*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// CountByRole supports staff code generation.
	CountByRole(ctx context.Context, role authorization.Role) (int64, error)
}

package usecases

import (
	"context"

	"rentora/internal/domain/user"
	"rentora/internal/shared/authorization"
)

type mockUserRepository struct {
	SaveFunc          func(ctx context.Context, u *user.User) error
	UpdateFunc        func(ctx context.Context, u *user.User) error
	DeleteFunc        func(ctx context.Context, id uint) error
	FindByIDFunc      func(ctx context.Context, id uint) (*user.User, error)
	FindByEmailFunc   func(ctx context.Context, email string) (*user.User, error)
	FindByRoleFunc    func(ctx context.Context, role authorization.Role) ([]*user.User, error)
	ExistsByEmailFunc func(ctx context.Context, email string) (bool, error)
	CountByRoleFunc   func(ctx context.Context, role authorization.Role) (int64, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	return m.SaveFunc(ctx, u)
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	return m.UpdateFunc(ctx, u)
}

func (m *mockUserRepository) Delete(ctx context.Context, id uint) error {
	return m.DeleteFunc(ctx, id)
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return m.FindByEmailFunc(ctx, email)
}

func (m *mockUserRepository) FindByRole(ctx context.Context, role authorization.Role) ([]*user.User, error) {
	return m.FindByRoleFunc(ctx, role)
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return m.ExistsByEmailFunc(ctx, email)
}

func (m *mockUserRepository) CountByRole(ctx context.Context, role authorization.Role) (int64, error) {
	return m.CountByRoleFunc(ctx, role)
}

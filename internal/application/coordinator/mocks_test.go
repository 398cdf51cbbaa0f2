package coordinator

import (
	"context"

	"rentora/internal/domain/property"
	"rentora/internal/domain/user"
	"rentora/internal/shared/authorization"
)

type mockPropertyRepository struct {
	SaveFunc          func(ctx context.Context, p *property.Property) error
	UpdateFunc        func(ctx context.Context, p *property.Property) error
	DeleteFunc        func(ctx context.Context, id uint) error
	FindByIDFunc      func(ctx context.Context, id uint) (*property.Property, error)
	FindByOwnerIDFunc func(ctx context.Context, ownerID uint) ([]*property.Property, error)
	FindPendingFunc   func(ctx context.Context) ([]*property.Property, error)
	FindApprovedFunc  func(ctx context.Context) ([]*property.Property, error)
}

func (m *mockPropertyRepository) Save(ctx context.Context, p *property.Property) error {
	return m.SaveFunc(ctx, p)
}

func (m *mockPropertyRepository) Update(ctx context.Context, p *property.Property) error {
	return m.UpdateFunc(ctx, p)
}

func (m *mockPropertyRepository) Delete(ctx context.Context, id uint) error {
	return m.DeleteFunc(ctx, id)
}

func (m *mockPropertyRepository) FindByID(ctx context.Context, id uint) (*property.Property, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockPropertyRepository) FindByOwnerID(ctx context.Context, ownerID uint) ([]*property.Property, error) {
	return m.FindByOwnerIDFunc(ctx, ownerID)
}

func (m *mockPropertyRepository) FindPending(ctx context.Context) ([]*property.Property, error) {
	return m.FindPendingFunc(ctx)
}

func (m *mockPropertyRepository) FindApproved(ctx context.Context) ([]*property.Property, error) {
	return m.FindApprovedFunc(ctx)
}

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

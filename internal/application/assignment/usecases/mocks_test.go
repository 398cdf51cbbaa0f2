package usecases

import (
	"context"
	"time"

	"rentora/internal/domain/assignment"
	"rentora/internal/domain/entitlement"
	"rentora/internal/domain/property"
	propertyvo "rentora/internal/domain/property/valueobjects"
	"rentora/internal/domain/user"
	"rentora/internal/shared/authorization"
)

type mockAssignmentRepository struct {
	SaveExclusiveFunc          func(ctx context.Context, a *assignment.Assignment) error
	UpdateFunc                 func(ctx context.Context, a *assignment.Assignment) error
	FindByIDFunc               func(ctx context.Context, id uint) (*assignment.Assignment, error)
	FindByStaffIDFunc          func(ctx context.Context, staffID uint) ([]*assignment.Assignment, error)
	FindActiveByPropertyIDFunc func(ctx context.Context, propertyID uint) (*assignment.Assignment, error)
	CancelActiveByStaffIDFunc  func(ctx context.Context, staffID uint) error
}

func (m *mockAssignmentRepository) SaveExclusive(ctx context.Context, a *assignment.Assignment) error {
	return m.SaveExclusiveFunc(ctx, a)
}

func (m *mockAssignmentRepository) Update(ctx context.Context, a *assignment.Assignment) error {
	return m.UpdateFunc(ctx, a)
}

func (m *mockAssignmentRepository) FindByID(ctx context.Context, id uint) (*assignment.Assignment, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockAssignmentRepository) FindByStaffID(ctx context.Context, staffID uint) ([]*assignment.Assignment, error) {
	return m.FindByStaffIDFunc(ctx, staffID)
}

func (m *mockAssignmentRepository) FindActiveByPropertyID(ctx context.Context, propertyID uint) (*assignment.Assignment, error) {
	return m.FindActiveByPropertyIDFunc(ctx, propertyID)
}

func (m *mockAssignmentRepository) CancelActiveByStaffID(ctx context.Context, staffID uint) error {
	return m.CancelActiveByStaffIDFunc(ctx, staffID)
}

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

type mockCoordinator struct {
	RecordInspectionOutcomeFunc func(ctx context.Context, propertyID uint, condition propertyvo.Condition, inspectedAt time.Time, nextInspectionAt *time.Time) error
	AttachStaffToPropertyFunc   func(ctx context.Context, propertyID, staffID uint) error
	DetachStaffFromPropertyFunc func(ctx context.Context, propertyID, staffID uint) error
	ResolveCurrentOwnerFunc     func(ctx context.Context, propertyID uint) (uint, error)
	ApplySubscriptionFunc       func(ctx context.Context, propertyID uint, tier entitlement.Tier) error
	ClearSubscriptionFunc       func(ctx context.Context, propertyID uint) error
	FlagUrgentMaintenanceFunc   func(ctx context.Context, propertyID uint) error
}

func (m *mockCoordinator) RecordInspectionOutcome(ctx context.Context, propertyID uint, condition propertyvo.Condition, inspectedAt time.Time, nextInspectionAt *time.Time) error {
	return m.RecordInspectionOutcomeFunc(ctx, propertyID, condition, inspectedAt, nextInspectionAt)
}

func (m *mockCoordinator) AttachStaffToProperty(ctx context.Context, propertyID, staffID uint) error {
	return m.AttachStaffToPropertyFunc(ctx, propertyID, staffID)
}

func (m *mockCoordinator) DetachStaffFromProperty(ctx context.Context, propertyID, staffID uint) error {
	return m.DetachStaffFromPropertyFunc(ctx, propertyID, staffID)
}

func (m *mockCoordinator) ResolveCurrentOwner(ctx context.Context, propertyID uint) (uint, error) {
	return m.ResolveCurrentOwnerFunc(ctx, propertyID)
}

func (m *mockCoordinator) ApplySubscription(ctx context.Context, propertyID uint, tier entitlement.Tier) error {
	return m.ApplySubscriptionFunc(ctx, propertyID, tier)
}

func (m *mockCoordinator) ClearSubscription(ctx context.Context, propertyID uint) error {
	return m.ClearSubscriptionFunc(ctx, propertyID)
}

func (m *mockCoordinator) FlagUrgentMaintenance(ctx context.Context, propertyID uint) error {
	return m.FlagUrgentMaintenanceFunc(ctx, propertyID)
}

// passthroughTx runs the function without a real transaction.
type passthroughTx struct{}

func (passthroughTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

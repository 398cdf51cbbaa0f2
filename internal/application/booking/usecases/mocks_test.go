package usecases

import (
	"context"

	"rentora/internal/domain/booking"
	"rentora/internal/domain/property"
)

type mockBookingRepository struct {
	SaveFunc                         func(ctx context.Context, b *booking.Booking) error
	UpdateFunc                       func(ctx context.Context, b *booking.Booking) error
	FindByIDFunc                     func(ctx context.Context, id uint) (*booking.Booking, error)
	FindByTenantIDFunc               func(ctx context.Context, tenantID uint) ([]*booking.Booking, error)
	FindByPropertyIDFunc             func(ctx context.Context, propertyID uint) ([]*booking.Booking, error)
	CountNonTerminalByPropertyIDFunc func(ctx context.Context, propertyID uint) (int64, error)
}

func (m *mockBookingRepository) Save(ctx context.Context, b *booking.Booking) error {
	return m.SaveFunc(ctx, b)
}

func (m *mockBookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	return m.UpdateFunc(ctx, b)
}

func (m *mockBookingRepository) FindByID(ctx context.Context, id uint) (*booking.Booking, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockBookingRepository) FindByTenantID(ctx context.Context, tenantID uint) ([]*booking.Booking, error) {
	return m.FindByTenantIDFunc(ctx, tenantID)
}

func (m *mockBookingRepository) FindByPropertyID(ctx context.Context, propertyID uint) ([]*booking.Booking, error) {
	return m.FindByPropertyIDFunc(ctx, propertyID)
}

func (m *mockBookingRepository) CountNonTerminalByPropertyID(ctx context.Context, propertyID uint) (int64, error) {
	return m.CountNonTerminalByPropertyIDFunc(ctx, propertyID)
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

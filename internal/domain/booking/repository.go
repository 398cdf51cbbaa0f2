package booking

import "context"

// Repository is the persistence port for bookings.
type Repository interface {
	Save(ctx context.Context, b *Booking) error
	Update(ctx context.Context, b *Booking) error
	FindByID(ctx context.Context, id uint) (*Booking, error)
	FindByTenantID(ctx context.Context, tenantID uint) ([]*Booking, error)
	FindByPropertyID(ctx context.Context, propertyID uint) ([]*Booking, error)
	// CountNonTerminalByPropertyID reports how many bookings on the property
	// are still live; property deletion is rejected while any exist.
	CountNonTerminalByPropertyID(ctx context.Context, propertyID uint) (int64, error)
}

package maintenance

import "context"

// Repository is the persistence port for maintenance tickets.
type Repository interface {
	Save(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	FindByID(ctx context.Context, id uint) (*Ticket, error)
	FindByPropertyID(ctx context.Context, propertyID uint) ([]*Ticket, error)
	FindByStaffID(ctx context.Context, staffID uint) ([]*Ticket, error)
	// FindOpenByPropertyID returns non-terminal tickets for the property.
	FindOpenByPropertyID(ctx context.Context, propertyID uint) ([]*Ticket, error)
}

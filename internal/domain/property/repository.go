package property

import "context"

// Repository is the persistence port for properties.
type Repository interface {
	Save(ctx context.Context, p *Property) error
	Update(ctx context.Context, p *Property) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*Property, error)
	FindByOwnerID(ctx context.Context, ownerID uint) ([]*Property, error)
	FindPending(ctx context.Context) ([]*Property, error)
	FindApproved(ctx context.Context) ([]*Property, error)
}

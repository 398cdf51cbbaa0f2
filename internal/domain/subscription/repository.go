package subscription

import "context"

// Repository is the persistence port for subscriptions.
type Repository interface {
	Save(ctx context.Context, s *Subscription) error
	Update(ctx context.Context, s *Subscription) error
	FindByID(ctx context.Context, id uint) (*Subscription, error)
	FindByOwnerID(ctx context.Context, ownerID uint) ([]*Subscription, error)
	// FindActiveByPropertyID returns the single active subscription for a
	// property, or nil when none exists.
	FindActiveByPropertyID(ctx context.Context, propertyID uint) (*Subscription, error)
}

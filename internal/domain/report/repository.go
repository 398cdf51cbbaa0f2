package report

import "context"

// Repository is the persistence port for inspection reports.
type Repository interface {
	Save(ctx context.Context, r *Report) error
	Update(ctx context.Context, r *Report) error
	FindByID(ctx context.Context, id uint) (*Report, error)
	FindByAssignmentID(ctx context.Context, assignmentID uint) ([]*Report, error)
	FindByPropertyID(ctx context.Context, propertyID uint) ([]*Report, error)
	FindByStaffID(ctx context.Context, staffID uint) ([]*Report, error)
	// FindForwardedToOwner returns reports escalated to the owner, most
	// recently forwarded first.
	FindForwardedToOwner(ctx context.Context, ownerID uint) ([]*Report, error)
}

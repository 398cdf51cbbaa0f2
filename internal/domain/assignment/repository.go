package assignment

import "context"

// Repository is the persistence port for staff assignments.
type Repository interface {
	// SaveExclusive inserts the assignment only if the property currently
	// has no non-terminal assignment. The check and the insert happen in a
	// single conditional statement so two concurrent assigns cannot both
	// succeed; the loser receives a Conflict error.
	SaveExclusive(ctx context.Context, a *Assignment) error
	Update(ctx context.Context, a *Assignment) error
	FindByID(ctx context.Context, id uint) (*Assignment, error)
	FindByStaffID(ctx context.Context, staffID uint) ([]*Assignment, error)
	// FindActiveByPropertyID returns the non-terminal assignment for the
	// property, or nil when none exists.
	FindActiveByPropertyID(ctx context.Context, propertyID uint) (*Assignment, error)
	// CancelActiveByStaffID cancels every non-terminal assignment held by
	// the staff member (staff removal).
	CancelActiveByStaffID(ctx context.Context, staffID uint) error
}

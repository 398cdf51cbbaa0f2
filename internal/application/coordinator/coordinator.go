package coordinator

import (
	"context"
	"time"

	"rentora/internal/domain/entitlement"
	"rentora/internal/domain/property"
	propertyvo "rentora/internal/domain/property/valueobjects"
	"rentora/internal/domain/user"
	"rentora/internal/shared/logger"
)

// Coordinator is the single seam for writes that span entities. Pipelines
// never touch another aggregate's repository directly; they call through
// here so the cross-entity side effects stay in one place and run inside
// the caller's transaction.
type Coordinator interface {
	// RecordInspectionOutcome stamps the property's last inspection time
	// and resets or degrades its condition. When nextInspectionAt is
	// non-nil the recurring schedule is advanced too.
	RecordInspectionOutcome(ctx context.Context, propertyID uint, condition propertyvo.Condition, inspectedAt time.Time, nextInspectionAt *time.Time) error
	// AttachStaffToProperty links the staff member on the property and
	// adds the property to the staff roster.
	AttachStaffToProperty(ctx context.Context, propertyID, staffID uint) error
	// DetachStaffFromProperty clears the link on both sides.
	DetachStaffFromProperty(ctx context.Context, propertyID, staffID uint) error
	// ResolveCurrentOwner returns the property's owner as of now, not as
	// of any earlier event.
	ResolveCurrentOwner(ctx context.Context, propertyID uint) (uint, error)
	// ApplySubscription mirrors an activated subscription onto the
	// property so entitlement checks need no join.
	ApplySubscription(ctx context.Context, propertyID uint, tier entitlement.Tier) error
	// ClearSubscription removes the mirrored subscription state.
	ClearSubscription(ctx context.Context, propertyID uint) error
	// FlagUrgentMaintenance degrades the property condition to urgent
	// while an urgent ticket is open.
	FlagUrgentMaintenance(ctx context.Context, propertyID uint) error
}

type coordinator struct {
	propertyRepo property.Repository
	userRepo     user.Repository
	logger       logger.Interface
}

// NewCoordinator creates the cross-entity write coordinator.
func NewCoordinator(propertyRepo property.Repository, userRepo user.Repository, logger logger.Interface) Coordinator {
	return &coordinator{
		propertyRepo: propertyRepo,
		userRepo:     userRepo,
		logger:       logger,
	}
}

func (c *coordinator) RecordInspectionOutcome(ctx context.Context, propertyID uint, condition propertyvo.Condition, inspectedAt time.Time, nextInspectionAt *time.Time) error {
	prop, err := c.propertyRepo.FindByID(ctx, propertyID)
	if err != nil {
		return err
	}

	if err := prop.RecordInspectionOutcome(condition, inspectedAt); err != nil {
		return err
	}
	if nextInspectionAt != nil {
		prop.ScheduleNextInspection(*nextInspectionAt)
	}

	if err := c.propertyRepo.Update(ctx, prop); err != nil {
		return err
	}

	c.logger.Debugw("recorded inspection outcome",
		"property_id", propertyID,
		"condition", condition.String(),
	)
	return nil
}

func (c *coordinator) AttachStaffToProperty(ctx context.Context, propertyID, staffID uint) error {
	prop, err := c.propertyRepo.FindByID(ctx, propertyID)
	if err != nil {
		return err
	}
	staff, err := c.userRepo.FindByID(ctx, staffID)
	if err != nil {
		return err
	}

	if err := prop.AssignStaff(staffID); err != nil {
		return err
	}
	if err := staff.AddAssignedProperty(propertyID); err != nil {
		return err
	}

	if err := c.propertyRepo.Update(ctx, prop); err != nil {
		return err
	}
	return c.userRepo.Update(ctx, staff)
}

func (c *coordinator) DetachStaffFromProperty(ctx context.Context, propertyID, staffID uint) error {
	prop, err := c.propertyRepo.FindByID(ctx, propertyID)
	if err != nil {
		return err
	}
	staff, err := c.userRepo.FindByID(ctx, staffID)
	if err != nil {
		return err
	}

	prop.UnassignStaff()
	if err := staff.RemoveAssignedProperty(propertyID); err != nil {
		return err
	}

	if err := c.propertyRepo.Update(ctx, prop); err != nil {
		return err
	}
	return c.userRepo.Update(ctx, staff)
}

func (c *coordinator) ResolveCurrentOwner(ctx context.Context, propertyID uint) (uint, error) {
	prop, err := c.propertyRepo.FindByID(ctx, propertyID)
	if err != nil {
		return 0, err
	}
	return prop.OwnerID(), nil
}

func (c *coordinator) ApplySubscription(ctx context.Context, propertyID uint, tier entitlement.Tier) error {
	prop, err := c.propertyRepo.FindByID(ctx, propertyID)
	if err != nil {
		return err
	}
	if err := prop.AttachSubscription(tier); err != nil {
		return err
	}
	return c.propertyRepo.Update(ctx, prop)
}

func (c *coordinator) ClearSubscription(ctx context.Context, propertyID uint) error {
	prop, err := c.propertyRepo.FindByID(ctx, propertyID)
	if err != nil {
		return err
	}
	prop.DetachSubscription()
	return c.propertyRepo.Update(ctx, prop)
}

func (c *coordinator) FlagUrgentMaintenance(ctx context.Context, propertyID uint) error {
	prop, err := c.propertyRepo.FindByID(ctx, propertyID)
	if err != nil {
		return err
	}
	prop.FlagUrgentMaintenance()
	return c.propertyRepo.Update(ctx, prop)
}

package property

import (
	"fmt"
	"time"

	"rentora/internal/domain/entitlement"
	vo "rentora/internal/domain/property/valueobjects"
)

// Property is the listing aggregate. Approval transitions are admin-only;
// the subscription flags, staff pointer, and maintenance condition are
// mutated through coordinator side effects rather than by handlers.
type Property struct {
	id               uint
	ownerID          uint
	title            string
	address          string
	pricePerMonth    float64
	advanceAmount    float64
	approvalStatus   vo.ApprovalStatus
	hasSubscription  bool
	subscriptionTier entitlement.Tier
	assignedStaffID  *uint
	condition        vo.Condition
	lastInspectionAt *time.Time
	nextInspectionAt *time.Time
	version          int
	createdAt        time.Time
	updatedAt        time.Time
}

// NewProperty creates a pending listing submitted by an owner.
func NewProperty(ownerID uint, title, address string, pricePerMonth, advanceAmount float64) (*Property, error) {
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(address) == 0 {
		return nil, fmt.Errorf("address is required")
	}
	if pricePerMonth <= 0 {
		return nil, fmt.Errorf("price per month must be positive")
	}
	if advanceAmount < 0 {
		return nil, fmt.Errorf("advance amount cannot be negative")
	}

	now := time.Now()
	return &Property{
		ownerID:          ownerID,
		title:            title,
		address:          address,
		pricePerMonth:    pricePerMonth,
		advanceAmount:    advanceAmount,
		approvalStatus:   vo.ApprovalPending,
		subscriptionTier: entitlement.TierBasic,
		condition:        vo.ConditionGood,
		version:          1,
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

// ReconstructProperty rebuilds a property from persistence.
func ReconstructProperty(
	id, ownerID uint,
	title, address string,
	pricePerMonth, advanceAmount float64,
	approvalStatus vo.ApprovalStatus,
	hasSubscription bool,
	subscriptionTier entitlement.Tier,
	assignedStaffID *uint,
	condition vo.Condition,
	lastInspectionAt, nextInspectionAt *time.Time,
	version int,
	createdAt, updatedAt time.Time,
) (*Property, error) {
	if id == 0 {
		return nil, fmt.Errorf("property ID cannot be zero")
	}
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}
	if !approvalStatus.IsValid() {
		return nil, fmt.Errorf("invalid approval status: %s", approvalStatus)
	}
	if !condition.IsValid() {
		return nil, fmt.Errorf("invalid maintenance condition: %s", condition)
	}
	if !subscriptionTier.IsValid() {
		return nil, fmt.Errorf("invalid subscription tier: %s", subscriptionTier)
	}

	return &Property{
		id:               id,
		ownerID:          ownerID,
		title:            title,
		address:          address,
		pricePerMonth:    pricePerMonth,
		advanceAmount:    advanceAmount,
		approvalStatus:   approvalStatus,
		hasSubscription:  hasSubscription,
		subscriptionTier: subscriptionTier,
		assignedStaffID:  assignedStaffID,
		condition:        condition,
		lastInspectionAt: lastInspectionAt,
		nextInspectionAt: nextInspectionAt,
		version:          version,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}, nil
}

func (p *Property) ID() uint                      { return p.id }
func (p *Property) OwnerID() uint                 { return p.ownerID }
func (p *Property) Title() string                 { return p.title }
func (p *Property) Address() string               { return p.address }
func (p *Property) PricePerMonth() float64        { return p.pricePerMonth }
func (p *Property) AdvanceAmount() float64        { return p.advanceAmount }
func (p *Property) ApprovalStatus() vo.ApprovalStatus { return p.approvalStatus }
func (p *Property) AssignedStaffID() *uint        { return p.assignedStaffID }
func (p *Property) Condition() vo.Condition       { return p.condition }
func (p *Property) LastInspectionAt() *time.Time  { return p.lastInspectionAt }
func (p *Property) NextInspectionAt() *time.Time  { return p.nextInspectionAt }
func (p *Property) Version() int                  { return p.version }
func (p *Property) CreatedAt() time.Time          { return p.createdAt }
func (p *Property) UpdatedAt() time.Time          { return p.updatedAt }

// HasSubscription implements entitlement.Subscribed.
func (p *Property) HasSubscription() bool { return p.hasSubscription }

// SubscriptionTier implements entitlement.Subscribed.
func (p *Property) SubscriptionTier() entitlement.Tier { return p.subscriptionTier }

// SetID sets the property ID (only for persistence layer use).
func (p *Property) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("property ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("property ID cannot be zero")
	}
	p.id = id
	return nil
}

// Approve moves a pending listing to approved.
func (p *Property) Approve() error {
	if !p.approvalStatus.CanTransitionTo(vo.ApprovalApproved) {
		return fmt.Errorf("cannot approve property with status %s", p.approvalStatus)
	}
	p.approvalStatus = vo.ApprovalApproved
	p.touch()
	return nil
}

// Reject moves a pending listing to rejected. Rejected is terminal.
func (p *Property) Reject() error {
	if !p.approvalStatus.CanTransitionTo(vo.ApprovalRejected) {
		return fmt.Errorf("cannot reject property with status %s", p.approvalStatus)
	}
	p.approvalStatus = vo.ApprovalRejected
	p.touch()
	return nil
}

// AttachSubscription marks the property as covered by an active
// subscription of the given tier. Coordinator side effect.
func (p *Property) AttachSubscription(tier entitlement.Tier) error {
	if !tier.IsValid() {
		return fmt.Errorf("invalid subscription tier: %s", tier)
	}
	p.hasSubscription = true
	p.subscriptionTier = tier
	p.touch()
	return nil
}

// DetachSubscription clears the subscription flags after cancellation or
// expiry. Coordinator side effect.
func (p *Property) DetachSubscription() {
	p.hasSubscription = false
	p.subscriptionTier = entitlement.TierBasic
	p.touch()
}

// AssignStaff points the property at its managing staff member.
// Coordinator side effect.
func (p *Property) AssignStaff(staffID uint) error {
	if staffID == 0 {
		return fmt.Errorf("staff ID cannot be zero")
	}
	p.assignedStaffID = &staffID
	p.touch()
	return nil
}

// UnassignStaff clears the staff pointer. Coordinator side effect.
func (p *Property) UnassignStaff() {
	p.assignedStaffID = nil
	p.touch()
}

// RecordInspectionOutcome applies the shared inspection/resolution side
// effect: stamp the inspection time and reset or degrade the condition.
func (p *Property) RecordInspectionOutcome(condition vo.Condition, inspectedAt time.Time) error {
	if !condition.IsValid() {
		return fmt.Errorf("invalid maintenance condition: %s", condition)
	}
	p.condition = condition
	p.lastInspectionAt = &inspectedAt
	p.touch()
	return nil
}

// FlagUrgentMaintenance marks the property condition urgent without
// touching inspection timestamps. Coordinator side effect.
func (p *Property) FlagUrgentMaintenance() {
	p.condition = vo.ConditionUrgent
	p.touch()
}

// ScheduleNextInspection stamps the next recurring inspection time.
func (p *Property) ScheduleNextInspection(at time.Time) {
	p.nextInspectionAt = &at
	p.touch()
}

// TransferOwner reassigns the property to a new owner. Report forwarding
// resolves the owner dynamically, so transfers take effect immediately.
func (p *Property) TransferOwner(newOwnerID uint) error {
	if newOwnerID == 0 {
		return fmt.Errorf("owner ID cannot be zero")
	}
	p.ownerID = newOwnerID
	p.touch()
	return nil
}

func (p *Property) touch() {
	p.updatedAt = time.Now()
	p.version++
}

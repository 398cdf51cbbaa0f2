package subscription

import (
	"fmt"
	"time"

	"rentora/internal/domain/entitlement"
	vo "rentora/internal/domain/subscription/valueobjects"
)

// Subscription attaches a plan tier to a single property. The amount is the
// plan price snapshotted at purchase time.
type Subscription struct {
	id            uint
	propertyID    uint
	ownerID       uint
	tier          entitlement.Tier
	status        vo.SubscriptionStatus
	startDate     time.Time
	endDate       time.Time
	amount        float64
	paymentMethod string
	transactionID string
	autoRenew     bool
	cancelledAt   *time.Time
	version       int
	createdAt     time.Time
	updatedAt     time.Time
}

// NewSubscription creates an active one-month subscription for a property.
func NewSubscription(propertyID, ownerID uint, tier entitlement.Tier, paymentMethod, transactionID string, now time.Time) (*Subscription, error) {
	if propertyID == 0 {
		return nil, fmt.Errorf("property ID is required")
	}
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}
	plan, err := PlanForTier(tier)
	if err != nil {
		return nil, err
	}

	return &Subscription{
		propertyID:    propertyID,
		ownerID:       ownerID,
		tier:          tier,
		status:        vo.StatusActive,
		startDate:     now,
		endDate:       now.AddDate(0, 1, 0),
		amount:        plan.MonthlyPrice,
		paymentMethod: paymentMethod,
		transactionID: transactionID,
		autoRenew:     true,
		version:       1,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// ReconstructSubscription rebuilds a subscription from persistence.
func ReconstructSubscription(
	id, propertyID, ownerID uint,
	tier entitlement.Tier,
	status vo.SubscriptionStatus,
	startDate, endDate time.Time,
	amount float64,
	paymentMethod, transactionID string,
	autoRenew bool,
	cancelledAt *time.Time,
	version int,
	createdAt, updatedAt time.Time,
) (*Subscription, error) {
	if id == 0 {
		return nil, fmt.Errorf("subscription ID cannot be zero")
	}
	if !tier.IsValid() {
		return nil, fmt.Errorf("invalid subscription tier: %s", tier)
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid subscription status: %s", status)
	}

	return &Subscription{
		id:            id,
		propertyID:    propertyID,
		ownerID:       ownerID,
		tier:          tier,
		status:        status,
		startDate:     startDate,
		endDate:       endDate,
		amount:        amount,
		paymentMethod: paymentMethod,
		transactionID: transactionID,
		autoRenew:     autoRenew,
		cancelledAt:   cancelledAt,
		version:       version,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (s *Subscription) ID() uint                        { return s.id }
func (s *Subscription) PropertyID() uint                { return s.propertyID }
func (s *Subscription) OwnerID() uint                   { return s.ownerID }
func (s *Subscription) Tier() entitlement.Tier          { return s.tier }
func (s *Subscription) Status() vo.SubscriptionStatus   { return s.status }
func (s *Subscription) StartDate() time.Time            { return s.startDate }
func (s *Subscription) EndDate() time.Time              { return s.endDate }
func (s *Subscription) Amount() float64                 { return s.amount }
func (s *Subscription) PaymentMethod() string           { return s.paymentMethod }
func (s *Subscription) TransactionID() string           { return s.transactionID }
func (s *Subscription) AutoRenew() bool                 { return s.autoRenew }
func (s *Subscription) CancelledAt() *time.Time         { return s.cancelledAt }
func (s *Subscription) Version() int                    { return s.version }
func (s *Subscription) CreatedAt() time.Time            { return s.createdAt }
func (s *Subscription) UpdatedAt() time.Time            { return s.updatedAt }

// SetID sets the subscription ID (only for persistence layer use).
func (s *Subscription) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("subscription ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("subscription ID cannot be zero")
	}
	s.id = id
	return nil
}

// Cancel terminates the subscription and switches off auto-renew.
func (s *Subscription) Cancel() error {
	if s.status.IsCancelled() {
		return fmt.Errorf("subscription is already cancelled")
	}
	if !s.status.CanTransitionTo(vo.StatusCancelled) {
		return fmt.Errorf("cannot cancel subscription with status %s", s.status)
	}

	now := time.Now()
	s.status = vo.StatusCancelled
	s.autoRenew = false
	s.cancelledAt = &now
	s.touch()
	return nil
}

// MarkExpired flags a subscription whose end date has passed.
func (s *Subscription) MarkExpired() error {
	if !s.status.CanTransitionTo(vo.StatusExpired) {
		return fmt.Errorf("cannot expire subscription with status %s", s.status)
	}
	s.status = vo.StatusExpired
	s.touch()
	return nil
}

// IsActive reports whether the subscription currently entitles the property.
func (s *Subscription) IsActive(now time.Time) bool {
	return s.status.IsActive() && now.Before(s.endDate)
}

func (s *Subscription) touch() {
	s.updatedAt = time.Now()
	s.version++
}

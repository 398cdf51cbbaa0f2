package valueobjects

import "fmt"

// SubscriptionStatus is the subscription lifecycle state. Only one active
// subscription may exist per property at a time.
type SubscriptionStatus string

const (
	StatusActive    SubscriptionStatus = "active"
	StatusInactive  SubscriptionStatus = "inactive"
	StatusExpired   SubscriptionStatus = "expired"
	StatusCancelled SubscriptionStatus = "cancelled"
)

var validSubscriptionStatuses = map[SubscriptionStatus]bool{
	StatusActive:    true,
	StatusInactive:  true,
	StatusExpired:   true,
	StatusCancelled: true,
}

var subscriptionTransitions = map[SubscriptionStatus][]SubscriptionStatus{
	StatusInactive: {StatusActive, StatusCancelled},
	StatusActive:   {StatusExpired, StatusCancelled},
	StatusExpired:  {StatusActive},
}

func (s SubscriptionStatus) String() string {
	return string(s)
}

func (s SubscriptionStatus) IsValid() bool {
	return validSubscriptionStatuses[s]
}

func (s SubscriptionStatus) CanTransitionTo(next SubscriptionStatus) bool {
	for _, allowed := range subscriptionTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s SubscriptionStatus) IsActive() bool {
	return s == StatusActive
}

func (s SubscriptionStatus) IsCancelled() bool {
	return s == StatusCancelled
}

func NewSubscriptionStatus(s string) (SubscriptionStatus, error) {
	status := SubscriptionStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid subscription status: %s", s)
	}
	return status, nil
}

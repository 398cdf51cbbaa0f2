package entitlement

// Subscribed is the view of a property the gate needs: whether a
// subscription is currently attached and at which tier.
type Subscribed interface {
	HasSubscription() bool
	SubscriptionTier() Tier
}

// Gate decides whether a capability is enabled for a property. It is pure:
// no I/O, no side effects, so callers can consult it before any write.
type Gate struct{}

func NewGate() *Gate {
	return &Gate{}
}

// IsEntitled reports whether the property currently has the capability. A
// property without an active subscription is entitled to nothing.
func (g *Gate) IsEntitled(s Subscribed, c Capability) bool {
	if s == nil || !s.HasSubscription() {
		return false
	}
	return s.SubscriptionTier().Grants(c)
}

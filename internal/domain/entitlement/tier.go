package entitlement

import "fmt"

// Tier is the subscription plan level carried by a property while a
// subscription is active.
type Tier string

const (
	TierBasic      Tier = "basic"
	TierPremium    Tier = "premium"
	TierEnterprise Tier = "enterprise"
)

// tierCapabilities maps each tier to the capabilities it grants. A basic
// subscription lists the property and unlocks analytics only; managed
// operations (staff assignment, maintenance tracking) start at premium.
var tierCapabilities = map[Tier]map[Capability]bool{
	TierBasic: {
		CapabilityAnalytics: true,
	},
	TierPremium: {
		CapabilityAnalytics:           true,
		CapabilityStaffAssignment:     true,
		CapabilityMaintenanceTracking: true,
		CapabilityPrioritySupport:     true,
	},
	TierEnterprise: {
		CapabilityAnalytics:           true,
		CapabilityStaffAssignment:     true,
		CapabilityMaintenanceTracking: true,
		CapabilityPrioritySupport:     true,
	},
}

func (t Tier) String() string {
	return string(t)
}

func (t Tier) IsValid() bool {
	switch t {
	case TierBasic, TierPremium, TierEnterprise:
		return true
	}
	return false
}

// Grants reports whether the tier includes the capability.
func (t Tier) Grants(c Capability) bool {
	return tierCapabilities[t][c]
}

func NewTier(s string) (Tier, error) {
	t := Tier(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid subscription tier: %s", s)
	}
	return t, nil
}

// Package entitlement implements the subscription entitlement gate. A
// property's subscription tier decides which managed-service capabilities
// are available; every capability-gated transition consults the gate before
// mutating any state and fails closed when the gate denies.
package entitlement

import "fmt"

// Capability names a subscription-gated feature.
type Capability string

const (
	CapabilityStaffAssignment     Capability = "staff_assignment"
	CapabilityMaintenanceTracking Capability = "maintenance_tracking"
	CapabilityAnalytics           Capability = "analytics"
	CapabilityPrioritySupport     Capability = "priority_support"
)

func (c Capability) String() string {
	return string(c)
}

func (c Capability) IsValid() bool {
	switch c {
	case CapabilityStaffAssignment, CapabilityMaintenanceTracking,
		CapabilityAnalytics, CapabilityPrioritySupport:
		return true
	}
	return false
}

func NewCapability(s string) (Capability, error) {
	c := Capability(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid capability: %s", s)
	}
	return c, nil
}

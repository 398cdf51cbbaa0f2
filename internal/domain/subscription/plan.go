package subscription

import (
	"fmt"

	"rentora/internal/domain/entitlement"
)

// Plan describes a purchasable subscription tier.
type Plan struct {
	Tier         entitlement.Tier
	Name         string
	MonthlyPrice float64
	Features     []string
}

// planCatalog is the static plan table.
var planCatalog = map[entitlement.Tier]Plan{
	entitlement.TierBasic: {
		Tier:         entitlement.TierBasic,
		Name:         "Basic Plan",
		MonthlyPrice: 29.99,
		Features: []string{
			"Property listing",
			"Basic analytics",
			"Email support",
		},
	},
	entitlement.TierPremium: {
		Tier:         entitlement.TierPremium,
		Name:         "Premium Plan",
		MonthlyPrice: 59.99,
		Features: []string{
			"Property listing",
			"Advanced analytics",
			"Staff assignment",
			"Maintenance tracking",
			"Priority support",
		},
	},
	entitlement.TierEnterprise: {
		Tier:         entitlement.TierEnterprise,
		Name:         "Enterprise Plan",
		MonthlyPrice: 99.99,
		Features: []string{
			"Unlimited properties",
			"Advanced analytics",
			"Staff assignment",
			"Maintenance tracking",
			"Custom reports",
			"24/7 support",
		},
	},
}

// PlanForTier returns the catalog entry for a tier.
func PlanForTier(tier entitlement.Tier) (Plan, error) {
	plan, ok := planCatalog[tier]
	if !ok {
		return Plan{}, fmt.Errorf("no plan for tier %s", tier)
	}
	return plan, nil
}

// Plans returns the full catalog.
func Plans() []Plan {
	return []Plan{
		planCatalog[entitlement.TierBasic],
		planCatalog[entitlement.TierPremium],
		planCatalog[entitlement.TierEnterprise],
	}
}

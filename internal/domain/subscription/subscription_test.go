package subscription

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentora/internal/domain/entitlement"
	vo "rentora/internal/domain/subscription/valueobjects"
)

func TestNewSubscription(t *testing.T) {
	now := time.Now()
	s, err := NewSubscription(5, 7, entitlement.TierPremium, "card", "TXN-9", now)
	require.NoError(t, err)

	assert.Equal(t, vo.StatusActive, s.Status())
	assert.Equal(t, 59.99, s.Amount())
	assert.True(t, s.AutoRenew())
	assert.Equal(t, now.AddDate(0, 1, 0), s.EndDate())
	assert.True(t, s.IsActive(now))
}

func TestNewSubscription_InvalidTier(t *testing.T) {
	_, err := NewSubscription(5, 7, entitlement.Tier("gold"), "card", "TXN-9", time.Now())
	assert.Error(t, err)
}

func TestSubscription_Cancel(t *testing.T) {
	s, err := NewSubscription(5, 7, entitlement.TierBasic, "card", "TXN-1", time.Now())
	require.NoError(t, err)

	require.NoError(t, s.Cancel())
	assert.True(t, s.Status().IsCancelled())
	assert.False(t, s.AutoRenew())
	assert.NotNil(t, s.CancelledAt())

	assert.Error(t, s.Cancel())
}

func TestSubscription_ExpiryBoundary(t *testing.T) {
	now := time.Now()
	s, err := NewSubscription(5, 7, entitlement.TierEnterprise, "card", "TXN-2", now)
	require.NoError(t, err)

	assert.True(t, s.IsActive(now.AddDate(0, 0, 20)))
	assert.False(t, s.IsActive(now.AddDate(0, 2, 0)))

	require.NoError(t, s.MarkExpired())
	assert.Equal(t, vo.StatusExpired, s.Status())
	assert.False(t, s.IsActive(now))
}

func TestPlanCatalog(t *testing.T) {
	plan, err := PlanForTier(entitlement.TierPremium)
	require.NoError(t, err)
	assert.Equal(t, "Premium Plan", plan.Name)
	assert.Equal(t, 59.99, plan.MonthlyPrice)

	_, err = PlanForTier(entitlement.Tier("gold"))
	assert.Error(t, err)

	assert.Len(t, Plans(), 3)
}

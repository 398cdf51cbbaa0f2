package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "rentora/internal/domain/report/valueobjects"
)

func newSubmitted(t *testing.T) *Report {
	t.Helper()
	r, err := NewReport(3, 8, 4, vo.ConditionGood, "all rooms inspected", false, "", time.Now())
	require.NoError(t, err)
	return r
}

func TestNewReport(t *testing.T) {
	now := time.Now()
	r, err := NewReport(3, 8, 4, vo.ConditionGood, "all rooms inspected", false, "", now)
	require.NoError(t, err)

	assert.Equal(t, vo.StatusSubmitted, r.Status())
	assert.Equal(t, now, r.SubmittedAt())
	assert.Nil(t, r.ReviewedByAdminID())
	assert.Nil(t, r.ForwardedToOwnerID())
	assert.False(t, r.IsAcknowledged())
}

func TestNewReport_Validation(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		mutate  func() (*Report, error)
	}{
		{
			name: "empty notes",
			mutate: func() (*Report, error) {
				return NewReport(3, 8, 4, vo.ConditionGood, "  ", false, "", now)
			},
		},
		{
			name: "invalid condition",
			mutate: func() (*Report, error) {
				return NewReport(3, 8, 4, vo.PropertyCondition("pristine"), "ok", false, "", now)
			},
		},
		{
			name: "maintenance recommended without details",
			mutate: func() (*Report, error) {
				return NewReport(3, 8, 4, vo.ConditionNeedsAttention, "leaking roof", true, "", now)
			},
		},
		{
			name: "zero assignment ID",
			mutate: func() (*Report, error) {
				return NewReport(0, 8, 4, vo.ConditionGood, "ok", false, "", now)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.mutate()
			assert.Error(t, err)
		})
	}
}

func TestReport_ReviewThenForward(t *testing.T) {
	r := newSubmitted(t)

	require.NoError(t, r.Review(1))
	assert.Equal(t, vo.StatusReviewed, r.Status())
	require.NotNil(t, r.ReviewedByAdminID())
	assert.Equal(t, uint(1), *r.ReviewedByAdminID())
	assert.NotNil(t, r.ReviewedAt())

	require.NoError(t, r.ForwardTo(7))
	assert.Equal(t, vo.StatusForwarded, r.Status())
	require.NotNil(t, r.ForwardedToOwnerID())
	assert.Equal(t, uint(7), *r.ForwardedToOwnerID())
	assert.NotNil(t, r.ForwardedAt())
}

func TestReport_ForwardWithoutReview(t *testing.T) {
	r := newSubmitted(t)

	// Review is optional; forwarding straight from submitted is allowed.
	require.NoError(t, r.ForwardTo(7))
	assert.Nil(t, r.ReviewedByAdminID())
	assert.Equal(t, vo.StatusForwarded, r.Status())
}

func TestReport_ReviewAfterForwardRejected(t *testing.T) {
	r := newSubmitted(t)
	require.NoError(t, r.ForwardTo(7))

	assert.Error(t, r.Review(1))
	assert.Error(t, r.ForwardTo(7))
}

func TestReport_Acknowledge(t *testing.T) {
	r := newSubmitted(t)

	// Cannot acknowledge before the report reaches the owner.
	assert.Error(t, r.Acknowledge())

	require.NoError(t, r.ForwardTo(7))
	require.NoError(t, r.Acknowledge())
	assert.True(t, r.IsAcknowledged())
	assert.NotNil(t, r.AcknowledgedAt())

	// Acknowledging is terminal and not repeatable.
	assert.Error(t, r.Acknowledge())
}

func TestPropertyCondition_RequiresAttention(t *testing.T) {
	assert.False(t, vo.ConditionExcellent.RequiresAttention())
	assert.False(t, vo.ConditionGood.RequiresAttention())
	assert.False(t, vo.ConditionAverage.RequiresAttention())
	assert.True(t, vo.ConditionNeedsAttention.RequiresAttention())
	assert.True(t, vo.ConditionUrgentIssues.RequiresAttention())
}

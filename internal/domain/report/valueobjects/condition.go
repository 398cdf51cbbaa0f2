package valueobjects

import "fmt"

// PropertyCondition is the staff member's verdict on the property at
// inspection time.
type PropertyCondition string

const (
	ConditionExcellent      PropertyCondition = "excellent"
	ConditionGood           PropertyCondition = "good"
	ConditionAverage        PropertyCondition = "average"
	ConditionNeedsAttention PropertyCondition = "needs_attention"
	ConditionUrgentIssues   PropertyCondition = "urgent_issues"
)

func (c PropertyCondition) String() string {
	return string(c)
}

func (c PropertyCondition) IsValid() bool {
	switch c {
	case ConditionExcellent, ConditionGood, ConditionAverage,
		ConditionNeedsAttention, ConditionUrgentIssues:
		return true
	}
	return false
}

// RequiresAttention reports whether the verdict should degrade the
// property's maintenance condition rather than reset it to good.
func (c PropertyCondition) RequiresAttention() bool {
	return c == ConditionNeedsAttention || c == ConditionUrgentIssues
}

func NewPropertyCondition(s string) (PropertyCondition, error) {
	c := PropertyCondition(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid property condition: %s", s)
	}
	return c, nil
}

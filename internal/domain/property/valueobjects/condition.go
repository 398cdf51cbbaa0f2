package valueobjects

import "fmt"

// Condition is the maintenance condition of a property. It is written only
// by the consistency coordinator, never directly by a caller.
type Condition string

const (
	ConditionGood           Condition = "good"
	ConditionNeedsAttention Condition = "needs_attention"
	ConditionUrgent         Condition = "urgent"
)

func (c Condition) String() string {
	return string(c)
}

func (c Condition) IsValid() bool {
	switch c {
	case ConditionGood, ConditionNeedsAttention, ConditionUrgent:
		return true
	}
	return false
}

func NewCondition(s string) (Condition, error) {
	c := Condition(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid maintenance condition: %s", s)
	}
	return c, nil
}

package valueobjects

import (
	"fmt"
	"time"
)

// InspectionFrequency drives recurring re-inspection scheduling. The next
// inspection time is recomputed at transition time only; there is no
// background scheduler.
type InspectionFrequency string

const (
	FrequencyMonthly   InspectionFrequency = "monthly"
	FrequencyQuarterly InspectionFrequency = "quarterly"
	FrequencyBiannual  InspectionFrequency = "biannual"
	FrequencyAnnual    InspectionFrequency = "annual"
)

func (f InspectionFrequency) String() string {
	return string(f)
}

func (f InspectionFrequency) IsValid() bool {
	switch f {
	case FrequencyMonthly, FrequencyQuarterly, FrequencyBiannual, FrequencyAnnual:
		return true
	}
	return false
}

// Next returns the inspection time following from.
func (f InspectionFrequency) Next(from time.Time) time.Time {
	switch f {
	case FrequencyQuarterly:
		return from.AddDate(0, 3, 0)
	case FrequencyBiannual:
		return from.AddDate(0, 6, 0)
	case FrequencyAnnual:
		return from.AddDate(1, 0, 0)
	default:
		return from.AddDate(0, 1, 0)
	}
}

func NewInspectionFrequency(s string) (InspectionFrequency, error) {
	f := InspectionFrequency(s)
	if !f.IsValid() {
		return "", fmt.Errorf("invalid inspection frequency: %s", s)
	}
	return f, nil
}

package enums

import "fmt"

// AdStatus tracks the lifecycle state of an ad campaign.
type AdStatus string

const (
	AdStatusActive  AdStatus = "Active"
	AdStatusWarning AdStatus = "Warning"
	AdStatusPaused  AdStatus = "Paused"
	AdStatusStopped AdStatus = "Stopped"
)

var validAdStatuses = []AdStatus{
	AdStatusActive,
	AdStatusWarning,
	AdStatusPaused,
	AdStatusStopped,
}

// IsValid checks whether the given status matches the canonical enum.
func (s AdStatus) IsValid() bool {
	for _, candidate := range validAdStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseAdStatus converts raw strings into AdStatus.
func ParseAdStatus(value string) (AdStatus, error) {
	for _, candidate := range validAdStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid ad status %q", value)
}

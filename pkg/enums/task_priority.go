package enums

import "fmt"

// TaskPriority ranks how urgent a task is.
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "Low"
	TaskPriorityMedium TaskPriority = "Medium"
	TaskPriorityHigh   TaskPriority = "High"
)

var validTaskPriorities = []TaskPriority{
	TaskPriorityLow,
	TaskPriorityMedium,
	TaskPriorityHigh,
}

// IsValid checks whether the given priority matches the canonical enum.
func (p TaskPriority) IsValid() bool {
	for _, candidate := range validTaskPriorities {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParseTaskPriority converts raw strings into TaskPriority.
func ParseTaskPriority(value string) (TaskPriority, error) {
	for _, candidate := range validTaskPriorities {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid task priority %q", value)
}

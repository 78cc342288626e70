package enums

import "fmt"

// AgentType classifies an AI agent by the workflow it automates.
type AgentType string

const (
	AgentTypeCX           AgentType = "CX"
	AgentTypeCMO          AgentType = "CMO"
	AgentTypeCartRecovery AgentType = "CartRecovery"
)

var validAgentTypes = []AgentType{
	AgentTypeCX,
	AgentTypeCMO,
	AgentTypeCartRecovery,
}

// Each agent type reports exactly one domain indicator.
var metricNameByAgentType = map[AgentType]string{
	AgentTypeCX:           "resolutionRate",
	AgentTypeCMO:          "roasImprovement",
	AgentTypeCartRecovery: "recoveryRate",
}

// IsValid checks whether the given type matches the canonical enum.
func (a AgentType) IsValid() bool {
	for _, candidate := range validAgentTypes {
		if candidate == a {
			return true
		}
	}
	return false
}

// MetricName returns the canonical indicator key for the agent type.
func (a AgentType) MetricName() string {
	return metricNameByAgentType[a]
}

// ParseAgentType converts raw strings into AgentType.
func ParseAgentType(value string) (AgentType, error) {
	for _, candidate := range validAgentTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid agent type %q", value)
}

package models

import (
	"time"

	"github.com/zachbowman/brandboard-backend/pkg/enums"
)

// AiAgent records usage and spend for one automated agent. MetricName is
// derived from the agent type at creation; MetricValue is the percentage
// reported for that indicator.
type AiAgent struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	BrandID     int64           `gorm:"not null;index" json:"brandId"`
	Name        string          `gorm:"not null" json:"name"`
	Type        enums.AgentType `gorm:"not null" json:"type"`
	SuccessRate float64         `gorm:"not null;default:0" json:"successRate"`
	UsageCount  int             `gorm:"not null;default:0" json:"usageCount"`
	Cost        float64         `gorm:"not null;default:0" json:"cost"`
	MetricName  string          `gorm:"not null" json:"metricName"`
	MetricValue float64         `gorm:"not null;default:0" json:"metricValue"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

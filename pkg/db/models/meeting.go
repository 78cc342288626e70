package models

import (
	"time"

	"github.com/zachbowman/brandboard-backend/pkg/types"
)

// Meeting is a scheduled call for a brand team. No recurrence model.
type Meeting struct {
	ID            int64            `gorm:"primaryKey;autoIncrement" json:"id"`
	BrandID       int64            `gorm:"not null;index" json:"brandId"`
	Title         string           `gorm:"not null" json:"title"`
	Description   *string          `json:"description"`
	StartTime     time.Time        `gorm:"not null" json:"startTime"`
	EndTime       time.Time        `gorm:"not null" json:"endTime"`
	Attendees     types.StringList `gorm:"type:text" json:"attendees"`
	AiReportReady bool             `gorm:"default:false" json:"aiReportReady"`
	MeetingLink   *string          `json:"meetingLink"`
	CreatedAt     time.Time        `json:"createdAt"`
}

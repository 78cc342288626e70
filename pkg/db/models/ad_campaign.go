package models

import (
	"time"

	"github.com/zachbowman/brandboard-backend/pkg/enums"
)

// AdCampaign is one paid campaign on an ad network.
type AdCampaign struct {
	ID        int64            `gorm:"primaryKey;autoIncrement" json:"id"`
	BrandID   int64            `gorm:"not null;index" json:"brandId"`
	Name      string           `gorm:"not null" json:"name"`
	Platform  enums.AdPlatform `gorm:"not null" json:"platform"`
	Spend     float64          `gorm:"not null;default:0" json:"spend"`
	CTR       float64          `gorm:"column:ctr;not null;default:0" json:"ctr"`
	ROAS      float64          `gorm:"column:roas;not null;default:0" json:"roas"`
	Status    enums.AdStatus   `gorm:"not null;default:Active" json:"status"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

package models

import "time"

// Financial is one P&L snapshot for a brand. The dashboard treats the
// most recent row as "current".
type Financial struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	BrandID       int64     `gorm:"not null;index" json:"brandId"`
	Date          time.Time `json:"date"`
	Revenue       float64   `gorm:"not null;default:0" json:"revenue"`
	AdSpend       float64   `gorm:"not null;default:0" json:"adSpend"`
	COGS          float64   `gorm:"column:cogs;not null;default:0" json:"cogs"`
	OtherExpenses float64   `gorm:"not null;default:0" json:"otherExpenses"`
	Profit        float64   `gorm:"not null;default:0" json:"profit"`
	ROAS          float64   `gorm:"column:roas;not null;default:0" json:"roas"`
}

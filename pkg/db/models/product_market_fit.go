package models

import (
	"time"

	"github.com/zachbowman/brandboard-backend/pkg/types"
)

// ProductMarketFit is the current PMF snapshot for a brand.
type ProductMarketFit struct {
	ID                 int64               `gorm:"primaryKey;autoIncrement" json:"id"`
	BrandID            int64               `gorm:"not null;index" json:"brandId"`
	Date               time.Time           `json:"date"`
	PMFScore           float64             `gorm:"column:pmf_score;not null;default:0" json:"pmfScore"`
	ReturnRate         float64             `gorm:"not null;default:0" json:"returnRate"`
	ReviewSentiment    float64             `gorm:"not null;default:0" json:"reviewSentiment"`
	RepeatPurchaseRate float64             `gorm:"not null;default:0" json:"repeatPurchaseRate"`
	NPSScore           float64             `gorm:"column:nps_score;not null;default:0" json:"npsScore"`
	Objections         types.ObjectionList `gorm:"type:text" json:"objections"`
}

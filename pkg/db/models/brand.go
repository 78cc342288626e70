package models

import "time"

// Brand is the root scoping entity; every other record hangs off one.
// Code is the externally addressable handle used in API paths.
type Brand struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Code      string    `gorm:"not null;uniqueIndex" json:"code"`
	Logo      *string   `json:"logo"`
	CreatedAt time.Time `json:"createdAt"`
}

package models

import (
	"time"

	"github.com/zachbowman/brandboard-backend/pkg/enums"
)

// Task is one work item on a brand's board. Completed mirrors
// Status == Completed; the task service keeps the two in sync.
type Task struct {
	ID          int64              `gorm:"primaryKey;autoIncrement" json:"id"`
	BrandID     int64              `gorm:"not null;index" json:"brandId"`
	Title       string             `gorm:"not null" json:"title"`
	Description *string            `json:"description"`
	AssignedTo  *string            `json:"assignedTo"`
	Priority    enums.TaskPriority `gorm:"default:Medium" json:"priority"`
	Status      enums.TaskStatus   `gorm:"default:Todo" json:"status"`
	DueDate     *time.Time         `json:"dueDate"`
	Category    *string            `json:"category"`
	Completed   bool               `gorm:"default:false" json:"completed"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

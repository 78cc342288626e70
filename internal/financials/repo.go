package financials

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/zachbowman/brandboard-backend/pkg/db/models"
)

// Repository exposes persistence helpers for financial snapshots.
type Repository interface {
	ListByBrand(ctx context.Context, brandID int64, since *time.Time) ([]models.Financial, error)
	Create(ctx context.Context, financial *models.Financial) error
}

type repositoryImpl struct {
	db *gorm.DB
}

// NewRepository returns a financials repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{db: db}
}

func (r *repositoryImpl) ListByBrand(ctx context.Context, brandID int64, since *time.Time) ([]models.Financial, error) {
	query := r.db.WithContext(ctx).Where("brand_id = ?", brandID)
	if since != nil {
		query = query.Where("date >= ?", *since)
	}
	var rows []models.Financial
	err := query.Order("date desc, id desc").Find(&rows).Error
	return rows, err
}

func (r *repositoryImpl) Create(ctx context.Context, financial *models.Financial) error {
	return r.db.WithContext(ctx).Create(financial).Error
}

package pmf

import (
	"context"

	"gorm.io/gorm"

	"github.com/zachbowman/brandboard-backend/pkg/db/models"
)

// Repository exposes persistence helpers for product-market-fit snapshots.
type Repository interface {
	GetByBrand(ctx context.Context, brandID int64) (*models.ProductMarketFit, error)
	FindByID(ctx context.Context, id int64) (*models.ProductMarketFit, error)
	Create(ctx context.Context, snapshot *models.ProductMarketFit) error
	Update(ctx context.Context, id int64, fields map[string]any) (*models.ProductMarketFit, error)
}

type repositoryImpl struct {
	db *gorm.DB
}

// NewRepository returns a PMF repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{db: db}
}

// GetByBrand returns the most recent snapshot for the brand, or
// gorm.ErrRecordNotFound when the brand has never been measured.
func (r *repositoryImpl) GetByBrand(ctx context.Context, brandID int64) (*models.ProductMarketFit, error) {
	var snapshot models.ProductMarketFit
	err := r.db.WithContext(ctx).
		Where("brand_id = ?", brandID).
		Order("date desc, id desc").
		First(&snapshot).Error
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func (r *repositoryImpl) FindByID(ctx context.Context, id int64) (*models.ProductMarketFit, error) {
	var snapshot models.ProductMarketFit
	if err := r.db.WithContext(ctx).First(&snapshot, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func (r *repositoryImpl) Create(ctx context.Context, snapshot *models.ProductMarketFit) error {
	return r.db.WithContext(ctx).Create(snapshot).Error
}

func (r *repositoryImpl) Update(ctx context.Context, id int64, fields map[string]any) (*models.ProductMarketFit, error) {
	if len(fields) > 0 {
		err := r.db.WithContext(ctx).
			Model(&models.ProductMarketFit{}).
			Where("id = ?", id).
			Updates(fields).Error
		if err != nil {
			return nil, err
		}
	}
	return r.FindByID(ctx, id)
}

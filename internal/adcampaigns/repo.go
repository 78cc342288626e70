package adcampaigns

import (
	"context"

	"gorm.io/gorm"

	"github.com/zachbowman/brandboard-backend/pkg/db/models"
)

// Repository exposes persistence helpers for ad campaigns.
type Repository interface {
	ListByBrand(ctx context.Context, brandID int64) ([]models.AdCampaign, error)
	FindByID(ctx context.Context, id int64) (*models.AdCampaign, error)
	Create(ctx context.Context, campaign *models.AdCampaign) error
	Update(ctx context.Context, id int64, fields map[string]any) (*models.AdCampaign, error)
}

type repositoryImpl struct {
	db *gorm.DB
}

// NewRepository returns an ad campaign repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{db: db}
}

func (r *repositoryImpl) ListByBrand(ctx context.Context, brandID int64) ([]models.AdCampaign, error) {
	var campaigns []models.AdCampaign
	err := r.db.WithContext(ctx).
		Where("brand_id = ?", brandID).
		Order("id asc").
		Find(&campaigns).Error
	return campaigns, err
}

func (r *repositoryImpl) FindByID(ctx context.Context, id int64) (*models.AdCampaign, error) {
	var campaign models.AdCampaign
	if err := r.db.WithContext(ctx).First(&campaign, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &campaign, nil
}

func (r *repositoryImpl) Create(ctx context.Context, campaign *models.AdCampaign) error {
	return r.db.WithContext(ctx).Create(campaign).Error
}

func (r *repositoryImpl) Update(ctx context.Context, id int64, fields map[string]any) (*models.AdCampaign, error) {
	if len(fields) > 0 {
		err := r.db.WithContext(ctx).
			Model(&models.AdCampaign{}).
			Where("id = ?", id).
			Updates(fields).Error
		if err != nil {
			return nil, err
		}
	}
	return r.FindByID(ctx, id)
}

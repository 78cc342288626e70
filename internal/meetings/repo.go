package meetings

import (
	"context"

	"gorm.io/gorm"

	"github.com/zachbowman/brandboard-backend/pkg/db/models"
)

// Repository exposes persistence helpers for meetings.
type Repository interface {
	ListByBrand(ctx context.Context, brandID int64) ([]models.Meeting, error)
	FindByID(ctx context.Context, id int64) (*models.Meeting, error)
	Create(ctx context.Context, meeting *models.Meeting) error
	Update(ctx context.Context, id int64, fields map[string]any) (*models.Meeting, error)
}

type repositoryImpl struct {
	db *gorm.DB
}

// NewRepository returns a meeting repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{db: db}
}

func (r *repositoryImpl) ListByBrand(ctx context.Context, brandID int64) ([]models.Meeting, error) {
	var meetings []models.Meeting
	err := r.db.WithContext(ctx).
		Where("brand_id = ?", brandID).
		Order("start_time asc, id asc").
		Find(&meetings).Error
	return meetings, err
}

func (r *repositoryImpl) FindByID(ctx context.Context, id int64) (*models.Meeting, error) {
	var meeting models.Meeting
	if err := r.db.WithContext(ctx).First(&meeting, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &meeting, nil
}

func (r *repositoryImpl) Create(ctx context.Context, meeting *models.Meeting) error {
	return r.db.WithContext(ctx).Create(meeting).Error
}

func (r *repositoryImpl) Update(ctx context.Context, id int64, fields map[string]any) (*models.Meeting, error) {
	if len(fields) > 0 {
		err := r.db.WithContext(ctx).
			Model(&models.Meeting{}).
			Where("id = ?", id).
			Updates(fields).Error
		if err != nil {
			return nil, err
		}
	}
	return r.FindByID(ctx, id)
}

package brands

import (
	"context"

	"gorm.io/gorm"

	"github.com/zachbowman/brandboard-backend/pkg/db/models"
)

// Repository exposes persistence helpers for brands.
type Repository interface {
	List(ctx context.Context) ([]models.Brand, error)
	FindByID(ctx context.Context, id int64) (*models.Brand, error)
	FindByCode(ctx context.Context, code string) (*models.Brand, error)
	Create(ctx context.Context, brand *models.Brand) error
}

type repositoryImpl struct {
	db *gorm.DB
}

// NewRepository returns a brand repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{db: db}
}

func (r *repositoryImpl) List(ctx context.Context) ([]models.Brand, error) {
	var brands []models.Brand
	err := r.db.WithContext(ctx).Order("id asc").Find(&brands).Error
	return brands, err
}

func (r *repositoryImpl) FindByID(ctx context.Context, id int64) (*models.Brand, error) {
	var brand models.Brand
	if err := r.db.WithContext(ctx).First(&brand, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &brand, nil
}

func (r *repositoryImpl) FindByCode(ctx context.Context, code string) (*models.Brand, error) {
	var brand models.Brand
	if err := r.db.WithContext(ctx).First(&brand, "code = ?", code).Error; err != nil {
		return nil, err
	}
	return &brand, nil
}

func (r *repositoryImpl) Create(ctx context.Context, brand *models.Brand) error {
	return r.db.WithContext(ctx).Create(brand).Error
}

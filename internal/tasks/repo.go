package tasks

import (
	"context"

	"gorm.io/gorm"

	"github.com/zachbowman/brandboard-backend/pkg/db/models"
	"github.com/zachbowman/brandboard-backend/pkg/enums"
)

// Repository exposes persistence helpers for tasks.
type Repository interface {
	ListByBrand(ctx context.Context, brandID int64, status *enums.TaskStatus) ([]models.Task, error)
	FindByID(ctx context.Context, id int64) (*models.Task, error)
	Create(ctx context.Context, task *models.Task) error
	Update(ctx context.Context, id int64, fields map[string]any) (*models.Task, error)
}

type repositoryImpl struct {
	db *gorm.DB
}

// NewRepository returns a task repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{db: db}
}

func (r *repositoryImpl) ListByBrand(ctx context.Context, brandID int64, status *enums.TaskStatus) ([]models.Task, error) {
	query := r.db.WithContext(ctx).Where("brand_id = ?", brandID)
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	var tasks []models.Task
	err := query.Order("id asc").Find(&tasks).Error
	return tasks, err
}

func (r *repositoryImpl) FindByID(ctx context.Context, id int64) (*models.Task, error) {
	var task models.Task
	if err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *repositoryImpl) Create(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *repositoryImpl) Update(ctx context.Context, id int64, fields map[string]any) (*models.Task, error) {
	if len(fields) > 0 {
		err := r.db.WithContext(ctx).
			Model(&models.Task{}).
			Where("id = ?", id).
			Updates(fields).Error
		if err != nil {
			return nil, err
		}
	}
	return r.FindByID(ctx, id)
}

package aiagents

import (
	"context"

	"gorm.io/gorm"

	"github.com/zachbowman/brandboard-backend/pkg/db/models"
)

// Repository exposes persistence helpers for AI agents.
type Repository interface {
	ListByBrand(ctx context.Context, brandID int64) ([]models.AiAgent, error)
	FindByID(ctx context.Context, id int64) (*models.AiAgent, error)
	Create(ctx context.Context, agent *models.AiAgent) error
	Update(ctx context.Context, id int64, fields map[string]any) (*models.AiAgent, error)
}

type repositoryImpl struct {
	db *gorm.DB
}

// NewRepository returns an AI agent repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{db: db}
}

func (r *repositoryImpl) ListByBrand(ctx context.Context, brandID int64) ([]models.AiAgent, error) {
	var agents []models.AiAgent
	err := r.db.WithContext(ctx).
		Where("brand_id = ?", brandID).
		Order("id asc").
		Find(&agents).Error
	return agents, err
}

func (r *repositoryImpl) FindByID(ctx context.Context, id int64) (*models.AiAgent, error) {
	var agent models.AiAgent
	if err := r.db.WithContext(ctx).First(&agent, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &agent, nil
}

func (r *repositoryImpl) Create(ctx context.Context, agent *models.AiAgent) error {
	return r.db.WithContext(ctx).Create(agent).Error
}

func (r *repositoryImpl) Update(ctx context.Context, id int64, fields map[string]any) (*models.AiAgent, error) {
	if len(fields) > 0 {
		err := r.db.WithContext(ctx).
			Model(&models.AiAgent{}).
			Where("id = ?", id).
			Updates(fields).Error
		if err != nil {
			return nil, err
		}
	}
	return r.FindByID(ctx, id)
}

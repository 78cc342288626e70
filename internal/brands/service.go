package brands

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/zachbowman/brandboard-backend/pkg/db"
	"github.com/zachbowman/brandboard-backend/pkg/db/models"
	pkgerrors "github.com/zachbowman/brandboard-backend/pkg/errors"
)

// Service exposes brand lookups and administrative creation.
type Service interface {
	List(ctx context.Context) ([]models.Brand, error)
	GetByCode(ctx context.Context, code string) (*models.Brand, error)
	GetByID(ctx context.Context, id int64) (*models.Brand, error)
	Create(ctx context.Context, input CreateBrandInput) (*models.Brand, error)
}

// CreateBrandInput holds the validated payload to create a brand.
type CreateBrandInput struct {
	Name string  `json:"name" validate:"required"`
	Code string  `json:"code" validate:"required"`
	Logo *string `json:"logo"`
}

type service struct {
	repo Repository
}

// NewService constructs a brand service instance.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("brand repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context) ([]models.Brand, error) {
	brands, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing brands")
	}
	return brands, nil
}

func (s *service) GetByCode(ctx context.Context, code string) (*models.Brand, error) {
	brand, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "brand not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading brand by code")
	}
	return brand, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*models.Brand, error) {
	brand, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "brand not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading brand")
	}
	return brand, nil
}

func (s *service) Create(ctx context.Context, input CreateBrandInput) (*models.Brand, error) {
	brand := &models.Brand{
		Name: input.Name,
		Code: input.Code,
		Logo: input.Logo,
	}
	if err := s.repo.Create(ctx, brand); err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "brand code already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "creating brand")
	}
	return brand, nil
}

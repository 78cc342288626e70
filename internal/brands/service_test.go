package brands

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/zachbowman/brandboard-backend/pkg/db/models"
	pkgerrors "github.com/zachbowman/brandboard-backend/pkg/errors"
)

type stubBrandRepo struct {
	brands    []models.Brand
	findErr   error
	createErr error
}

func (r *stubBrandRepo) List(context.Context) ([]models.Brand, error) {
	return r.brands, nil
}

func (r *stubBrandRepo) FindByID(_ context.Context, id int64) (*models.Brand, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, brand := range r.brands {
		if brand.ID == id {
			clone := brand
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubBrandRepo) FindByCode(_ context.Context, code string) (*models.Brand, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, brand := range r.brands {
		if brand.Code == code {
			clone := brand
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubBrandRepo) Create(_ context.Context, brand *models.Brand) error {
	if r.createErr != nil {
		return r.createErr
	}
	brand.ID = int64(len(r.brands) + 1)
	r.brands = append(r.brands, *brand)
	return nil
}

func TestGetByCode(t *testing.T) {
	repo := &stubBrandRepo{brands: []models.Brand{{ID: 1, Name: "HydraBark", Code: "hydrabark"}}}
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	brand, err := svc.GetByCode(context.Background(), "hydrabark")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if brand.ID != 1 {
		t.Fatalf("unexpected brand: %+v", brand)
	}
}

func TestGetByCodeUnknown(t *testing.T) {
	svc, err := NewService(&stubBrandRepo{})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	_, gotErr := svc.GetByCode(context.Background(), "nope")
	if typed := pkgerrors.As(gotErr); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", gotErr)
	}
}

func TestGetByCodeDependencyError(t *testing.T) {
	repo := &stubBrandRepo{findErr: errors.New("boom")}
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	_, gotErr := svc.GetByCode(context.Background(), "hydrabark")
	if typed := pkgerrors.As(gotErr); typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", gotErr)
	}
}

func TestCreate(t *testing.T) {
	repo := &stubBrandRepo{}
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	brand, err := svc.Create(context.Background(), CreateBrandInput{Name: "EcoVibe", Code: "ecovibe"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if brand.ID == 0 {
		t.Fatal("expected assigned id")
	}
}

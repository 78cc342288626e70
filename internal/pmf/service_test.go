package pmf

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"github.com/zachbowman/brandboard-backend/pkg/db/models"
	pkgerrors "github.com/zachbowman/brandboard-backend/pkg/errors"
	"github.com/zachbowman/brandboard-backend/pkg/types"
)

type stubPMFRepo struct {
	snapshot *models.ProductMarketFit
}

func (r *stubPMFRepo) GetByBrand(context.Context, int64) (*models.ProductMarketFit, error) {
	if r.snapshot == nil {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *r.snapshot
	return &clone, nil
}

func (r *stubPMFRepo) FindByID(_ context.Context, id int64) (*models.ProductMarketFit, error) {
	if r.snapshot == nil || r.snapshot.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *r.snapshot
	return &clone, nil
}

func (r *stubPMFRepo) Create(_ context.Context, snapshot *models.ProductMarketFit) error {
	snapshot.ID = 1
	clone := *snapshot
	r.snapshot = &clone
	return nil
}

func (r *stubPMFRepo) Update(ctx context.Context, id int64, fields map[string]any) (*models.ProductMarketFit, error) {
	if r.snapshot == nil || r.snapshot.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	for key, value := range fields {
		switch key {
		case "pmf_score":
			r.snapshot.PMFScore = value.(float64)
		case "nps_score":
			r.snapshot.NPSScore = value.(float64)
		case "objections":
			r.snapshot.Objections = value.(types.ObjectionList)
		}
	}
	return r.FindByID(ctx, id)
}

type stubBrands struct{}

func (stubBrands) GetByID(context.Context, int64) (*models.Brand, error) {
	return &models.Brand{ID: 1, Name: "HydraBark", Code: "hydrabark"}, nil
}

func TestGetByBrandAbsenceIsNotFound(t *testing.T) {
	svc, err := NewService(&stubPMFRepo{}, stubBrands{}, nil)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	_, gotErr := svc.GetByBrand(context.Background(), 1)
	if typed := pkgerrors.As(gotErr); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", gotErr)
	}
}

func TestCreateThenGet(t *testing.T) {
	repo := &stubPMFRepo{}
	svc, err := NewService(repo, stubBrands{}, nil)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	created, err := svc.Create(context.Background(), CreatePMFInput{
		BrandID:  1,
		PMFScore: 72,
		NPSScore: 45,
		Objections: []types.Objection{
			{Name: "Price too high", Percentage: 34},
		},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Date.IsZero() {
		t.Fatal("create must stamp the snapshot date")
	}

	snapshot, err := svc.GetByBrand(context.Background(), 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if snapshot.PMFScore != 72 || len(snapshot.Objections) != 1 {
		t.Fatalf("unexpected snapshot: %+v", snapshot)
	}
}

func TestPatchReplacesObjectionsWholesale(t *testing.T) {
	repo := &stubPMFRepo{snapshot: &models.ProductMarketFit{
		ID: 9, BrandID: 1, PMFScore: 70,
		Objections: types.ObjectionList{{Name: "Shipping too slow", Percentage: 20}},
	}}
	svc, err := NewService(repo, stubBrands{}, nil)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	next := []types.Objection{
		{Name: "Price too high", Percentage: 34},
		{Name: "Unsure about sizing", Percentage: 18},
	}
	snapshot, err := svc.Patch(context.Background(), 9, PatchPMFInput{Objections: &next})
	if err != nil {
		t.Fatalf("patch: %v", err)
	}
	if len(snapshot.Objections) != 2 {
		t.Fatalf("objections must be replaced, not merged: %+v", snapshot.Objections)
	}
	if snapshot.PMFScore != 70 {
		t.Fatalf("patch clobbered unsupplied fields: %+v", snapshot)
	}
}

package pmf

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/zachbowman/brandboard-backend/pkg/db/models"
	pkgerrors "github.com/zachbowman/brandboard-backend/pkg/errors"
	"github.com/zachbowman/brandboard-backend/pkg/types"
)

// Service exposes product-market-fit reads and mutations. A brand with no
// snapshot is a valid state and surfaces as CodeNotFound from GetByBrand;
// callers composing dashboards translate that into an empty panel.
type Service interface {
	GetByBrand(ctx context.Context, brandID int64) (*models.ProductMarketFit, error)
	Create(ctx context.Context, input CreatePMFInput) (*models.ProductMarketFit, error)
	Patch(ctx context.Context, id int64, input PatchPMFInput) (*models.ProductMarketFit, error)
}

// CreatePMFInput holds the validated payload to record a snapshot.
type CreatePMFInput struct {
	BrandID            int64             `json:"brandId" validate:"required,gt=0"`
	Date               *time.Time        `json:"date"`
	PMFScore           float64           `json:"pmfScore" validate:"gte=0,lte=100"`
	ReturnRate         float64           `json:"returnRate" validate:"gte=0,lte=100"`
	ReviewSentiment    float64           `json:"reviewSentiment" validate:"gte=0,lte=100"`
	RepeatPurchaseRate float64           `json:"repeatPurchaseRate" validate:"gte=0,lte=100"`
	NPSScore           float64           `json:"npsScore" validate:"gte=-100,lte=100"`
	Objections         []types.Objection `json:"objections"`
}

// PatchPMFInput holds optional mutation values; only supplied fields are
// written.
type PatchPMFInput struct {
	PMFScore           *float64           `json:"pmfScore"`
	ReturnRate         *float64           `json:"returnRate"`
	ReviewSentiment    *float64           `json:"reviewSentiment"`
	RepeatPurchaseRate *float64           `json:"repeatPurchaseRate"`
	NPSScore           *float64           `json:"npsScore"`
	Objections         *[]types.Objection `json:"objections"`
}

type brandChecker interface {
	GetByID(ctx context.Context, id int64) (*models.Brand, error)
}

type snapshotInvalidator interface {
	InvalidateBrand(ctx context.Context, brandID int64)
}

type service struct {
	repo        Repository
	brands      brandChecker
	invalidator snapshotInvalidator
	now         func() time.Time
}

// NewService constructs a PMF service. The invalidator may be nil when no
// snapshot cache is configured.
func NewService(repo Repository, brands brandChecker, invalidator snapshotInvalidator) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("pmf repository required")
	}
	if brands == nil {
		return nil, fmt.Errorf("brand checker required")
	}
	return &service{repo: repo, brands: brands, invalidator: invalidator, now: time.Now}, nil
}

func (s *service) GetByBrand(ctx context.Context, brandID int64) (*models.ProductMarketFit, error) {
	snapshot, err := s.repo.GetByBrand(ctx, brandID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "no product market fit snapshot for brand")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading product market fit")
	}
	return snapshot, nil
}

func (s *service) Create(ctx context.Context, input CreatePMFInput) (*models.ProductMarketFit, error) {
	if _, err := s.brands.GetByID(ctx, input.BrandID); err != nil {
		if pkgerrors.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "brandId references an unknown brand")
		}
		return nil, err
	}

	date := s.now()
	if input.Date != nil {
		date = *input.Date
	}

	snapshot := &models.ProductMarketFit{
		BrandID:            input.BrandID,
		Date:               date,
		PMFScore:           input.PMFScore,
		ReturnRate:         input.ReturnRate,
		ReviewSentiment:    input.ReviewSentiment,
		RepeatPurchaseRate: input.RepeatPurchaseRate,
		NPSScore:           input.NPSScore,
		Objections:         types.ObjectionList(input.Objections),
	}
	if err := s.repo.Create(ctx, snapshot); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "creating product market fit snapshot")
	}
	s.invalidate(ctx, snapshot.BrandID)
	return snapshot, nil
}

func (s *service) Patch(ctx context.Context, id int64, input PatchPMFInput) (*models.ProductMarketFit, error) {
	fields := map[string]any{}
	if input.PMFScore != nil {
		fields["pmf_score"] = *input.PMFScore
	}
	if input.ReturnRate != nil {
		fields["return_rate"] = *input.ReturnRate
	}
	if input.ReviewSentiment != nil {
		fields["review_sentiment"] = *input.ReviewSentiment
	}
	if input.RepeatPurchaseRate != nil {
		fields["repeat_purchase_rate"] = *input.RepeatPurchaseRate
	}
	if input.NPSScore != nil {
		fields["nps_score"] = *input.NPSScore
	}
	if input.Objections != nil {
		fields["objections"] = types.ObjectionList(*input.Objections)
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product market fit snapshot not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading product market fit snapshot")
	}

	snapshot, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "updating product market fit snapshot")
	}
	s.invalidate(ctx, snapshot.BrandID)
	return snapshot, nil
}

func (s *service) invalidate(ctx context.Context, brandID int64) {
	if s.invalidator != nil {
		s.invalidator.InvalidateBrand(ctx, brandID)
	}
}

package adcampaigns

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/zachbowman/brandboard-backend/pkg/db/models"
	"github.com/zachbowman/brandboard-backend/pkg/enums"
	pkgerrors "github.com/zachbowman/brandboard-backend/pkg/errors"
)

// Service exposes ad campaign reads and mutations.
type Service interface {
	ListByBrand(ctx context.Context, brandID int64) ([]models.AdCampaign, error)
	Create(ctx context.Context, input CreateCampaignInput) (*models.AdCampaign, error)
	Patch(ctx context.Context, id int64, input PatchCampaignInput) (*models.AdCampaign, error)
	ToggleStatus(ctx context.Context, id int64) (*models.AdCampaign, error)
}

// CreateCampaignInput holds the validated payload to create a campaign.
type CreateCampaignInput struct {
	BrandID  int64   `json:"brandId" validate:"required,gt=0"`
	Name     string  `json:"name" validate:"required"`
	Platform string  `json:"platform" validate:"required"`
	Spend    float64 `json:"spend" validate:"gte=0"`
	CTR      float64 `json:"ctr" validate:"gte=0"`
	ROAS     float64 `json:"roas" validate:"gte=0"`
	Status   *string `json:"status"`
}

// PatchCampaignInput holds optional mutation values; only supplied fields
// are written.
type PatchCampaignInput struct {
	Name   *string  `json:"name"`
	Spend  *float64 `json:"spend"`
	CTR    *float64 `json:"ctr"`
	ROAS   *float64 `json:"roas"`
	Status *string  `json:"status"`
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
}

// NewService constructs an ad campaign service. The invalidator may be nil
// when no snapshot cache is configured.
func NewService(repo Repository, brands brandChecker, invalidator snapshotInvalidator) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("ad campaign repository required")
	}
	if brands == nil {
		return nil, fmt.Errorf("brand checker required")
	}
	return &service{repo: repo, brands: brands, invalidator: invalidator}, nil
}

func (s *service) ListByBrand(ctx context.Context, brandID int64) ([]models.AdCampaign, error) {
	campaigns, err := s.repo.ListByBrand(ctx, brandID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing ad campaigns")
	}
	return campaigns, nil
}

func (s *service) Create(ctx context.Context, input CreateCampaignInput) (*models.AdCampaign, error) {
	platform, err := enums.ParseAdPlatform(input.Platform)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, err.Error())
	}
	status := enums.AdStatusActive
	if input.Status != nil {
		status, err = enums.ParseAdStatus(*input.Status)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, err.Error())
		}
	}

	if _, err := s.brands.GetByID(ctx, input.BrandID); err != nil {
		if pkgerrors.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "brandId references an unknown brand")
		}
		return nil, err
	}

	campaign := &models.AdCampaign{
		BrandID:  input.BrandID,
		Name:     input.Name,
		Platform: platform,
		Spend:    input.Spend,
		CTR:      input.CTR,
		ROAS:     input.ROAS,
		Status:   status,
	}
	if err := s.repo.Create(ctx, campaign); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "creating ad campaign")
	}
	s.invalidate(ctx, campaign.BrandID)
	return campaign, nil
}

func (s *service) Patch(ctx context.Context, id int64, input PatchCampaignInput) (*models.AdCampaign, error) {
	fields := map[string]any{}
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.Spend != nil {
		fields["spend"] = *input.Spend
	}
	if input.CTR != nil {
		fields["ctr"] = *input.CTR
	}
	if input.ROAS != nil {
		fields["roas"] = *input.ROAS
	}
	if input.Status != nil {
		status, err := enums.ParseAdStatus(*input.Status)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, err.Error())
		}
		fields["status"] = status
	}

	if _, err := s.find(ctx, id); err != nil {
		return nil, err
	}

	campaign, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "updating ad campaign")
	}
	s.invalidate(ctx, campaign.BrandID)
	return campaign, nil
}

// ToggleStatus flips Active campaigns to Paused and anything else back to
// Active, matching the dashboard's play/pause action.
func (s *service) ToggleStatus(ctx context.Context, id int64) (*models.AdCampaign, error) {
	campaign, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	next := string(enums.AdStatusActive)
	if campaign.Status == enums.AdStatusActive {
		next = string(enums.AdStatusPaused)
	}
	return s.Patch(ctx, id, PatchCampaignInput{Status: &next})
}

func (s *service) find(ctx context.Context, id int64) (*models.AdCampaign, error) {
	campaign, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "ad campaign not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading ad campaign")
	}
	return campaign, nil
}

func (s *service) invalidate(ctx context.Context, brandID int64) {
	if s.invalidator != nil {
		s.invalidator.InvalidateBrand(ctx, brandID)
	}
}

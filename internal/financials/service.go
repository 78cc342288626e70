package financials

import (
	"context"
	"fmt"
	"time"

	"github.com/zachbowman/brandboard-backend/pkg/db/models"
	pkgerrors "github.com/zachbowman/brandboard-backend/pkg/errors"
)

// Periods accepted by the list endpoint. An empty period returns every
// snapshot; the others bound the window relative to now.
const (
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
	PeriodYearly  = "yearly"
)

// Service exposes financial snapshot reads and administrative creation.
type Service interface {
	ListByBrand(ctx context.Context, brandID int64, period string) ([]models.Financial, error)
	Create(ctx context.Context, input CreateFinancialInput) (*models.Financial, error)
}

// CreateFinancialInput holds the validated payload to record a snapshot.
type CreateFinancialInput struct {
	BrandID       int64      `json:"brandId" validate:"required,gt=0"`
	Date          *time.Time `json:"date"`
	Revenue       float64    `json:"revenue" validate:"gte=0"`
	AdSpend       float64    `json:"adSpend" validate:"gte=0"`
	COGS          float64    `json:"cogs" validate:"gte=0"`
	OtherExpenses float64    `json:"otherExpenses" validate:"gte=0"`
	Profit        float64    `json:"profit"`
	ROAS          float64    `json:"roas" validate:"gte=0"`
}

type brandChecker interface {
	GetByID(ctx context.Context, id int64) (*models.Brand, error)
}

type service struct {
	repo   Repository
	brands brandChecker
	now    func() time.Time
}

// NewService constructs a financials service instance.
func NewService(repo Repository, brands brandChecker) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("financials repository required")
	}
	if brands == nil {
		return nil, fmt.Errorf("brand checker required")
	}
	return &service{repo: repo, brands: brands, now: time.Now}, nil
}

func (s *service) ListByBrand(ctx context.Context, brandID int64, period string) ([]models.Financial, error) {
	since, err := s.periodStart(period)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.ListByBrand(ctx, brandID, since)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing financials")
	}
	return rows, nil
}

func (s *service) Create(ctx context.Context, input CreateFinancialInput) (*models.Financial, error) {
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

	financial := &models.Financial{
		BrandID:       input.BrandID,
		Date:          date,
		Revenue:       input.Revenue,
		AdSpend:       input.AdSpend,
		COGS:          input.COGS,
		OtherExpenses: input.OtherExpenses,
		Profit:        input.Profit,
		ROAS:          input.ROAS,
	}
	if err := s.repo.Create(ctx, financial); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "creating financial snapshot")
	}
	return financial, nil
}

func (s *service) periodStart(period string) (*time.Time, error) {
	var days int
	switch period {
	case "":
		return nil, nil
	case PeriodWeekly:
		days = 7
	case PeriodMonthly:
		days = 30
	case PeriodYearly:
		days = 365
	default:
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "period must be weekly, monthly, or yearly")
	}
	since := s.now().AddDate(0, 0, -days)
	return &since, nil
}

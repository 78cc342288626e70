package financials

import (
	"context"
	"testing"
	"time"

	"github.com/zachbowman/brandboard-backend/pkg/db/models"
	pkgerrors "github.com/zachbowman/brandboard-backend/pkg/errors"
)

type stubFinancialRepo struct {
	rows      []models.Financial
	lastSince *time.Time
	created   *models.Financial
}

func (r *stubFinancialRepo) ListByBrand(_ context.Context, _ int64, since *time.Time) ([]models.Financial, error) {
	r.lastSince = since
	return r.rows, nil
}

func (r *stubFinancialRepo) Create(_ context.Context, financial *models.Financial) error {
	financial.ID = 1
	r.created = financial
	return nil
}

type stubBrands struct {
	err error
}

func (s stubBrands) GetByID(context.Context, int64) (*models.Brand, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.Brand{ID: 1, Name: "HydraBark", Code: "hydrabark"}, nil
}

func newTestService(t *testing.T, repo Repository, brands stubBrands) *service {
	t.Helper()
	svc, err := NewService(repo, brands)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc.(*service)
}

func TestListNoPeriodFetchesEverything(t *testing.T) {
	repo := &stubFinancialRepo{}
	svc := newTestService(t, repo, stubBrands{})

	if _, err := svc.ListByBrand(context.Background(), 1, ""); err != nil {
		t.Fatalf("list: %v", err)
	}
	if repo.lastSince != nil {
		t.Fatalf("empty period must not bound the query, got %v", repo.lastSince)
	}
}

func TestListPeriodWindows(t *testing.T) {
	now := time.Date(2026, time.August, 28, 12, 0, 0, 0, time.UTC)
	repo := &stubFinancialRepo{}
	svc := newTestService(t, repo, stubBrands{})
	svc.now = func() time.Time { return now }

	cases := []struct {
		period string
		days   int
	}{
		{PeriodWeekly, 7},
		{PeriodMonthly, 30},
		{PeriodYearly, 365},
	}
	for _, tc := range cases {
		if _, err := svc.ListByBrand(context.Background(), 1, tc.period); err != nil {
			t.Fatalf("%s: %v", tc.period, err)
		}
		want := now.AddDate(0, 0, -tc.days)
		if repo.lastSince == nil || !repo.lastSince.Equal(want) {
			t.Fatalf("%s: since = %v, want %v", tc.period, repo.lastSince, want)
		}
	}
}

func TestListRejectsUnknownPeriod(t *testing.T) {
	svc := newTestService(t, &stubFinancialRepo{}, stubBrands{})

	_, err := svc.ListByBrand(context.Background(), 1, "quarterly")
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateDefaultsDateToNow(t *testing.T) {
	now := time.Date(2026, time.August, 28, 12, 0, 0, 0, time.UTC)
	repo := &stubFinancialRepo{}
	svc := newTestService(t, repo, stubBrands{})
	svc.now = func() time.Time { return now }

	row, err := svc.Create(context.Background(), CreateFinancialInput{BrandID: 1, Revenue: 100})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !row.Date.Equal(now) {
		t.Fatalf("date = %v, want %v", row.Date, now)
	}
}

func TestCreateRejectsUnknownBrand(t *testing.T) {
	brands := stubBrands{err: pkgerrors.New(pkgerrors.CodeNotFound, "brand not found")}
	svc := newTestService(t, &stubFinancialRepo{}, brands)

	_, err := svc.Create(context.Background(), CreateFinancialInput{BrandID: 42})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

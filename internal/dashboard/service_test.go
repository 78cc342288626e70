package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/zachbowman/brandboard-backend/pkg/config"
	"github.com/zachbowman/brandboard-backend/pkg/db/models"
	pkgerrors "github.com/zachbowman/brandboard-backend/pkg/errors"
)

type stubBrandResolver struct {
	brand *models.Brand
	err   error
	calls int
}

func (s *stubBrandResolver) GetByCode(_ context.Context, code string) (*models.Brand, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.brand, nil
}

type stubFinancials struct {
	rows  []models.Financial
	err   error
	calls int
}

func (s *stubFinancials) ListByBrand(context.Context, int64, string) ([]models.Financial, error) {
	s.calls++
	return s.rows, s.err
}

type stubCampaigns struct {
	rows []models.AdCampaign
	err  error
}

func (s *stubCampaigns) ListByBrand(context.Context, int64) ([]models.AdCampaign, error) {
	return s.rows, s.err
}

type stubAgents struct {
	rows []models.AiAgent
	err  error
}

func (s *stubAgents) ListByBrand(context.Context, int64) ([]models.AiAgent, error) {
	return s.rows, s.err
}

type stubPMF struct {
	snapshot *models.ProductMarketFit
	err      error
}

func (s *stubPMF) GetByBrand(context.Context, int64) (*models.ProductMarketFit, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.snapshot, nil
}

type stubTasks struct {
	rows []models.Task
	err  error
}

func (s *stubTasks) ListByBrand(context.Context, int64, string) ([]models.Task, error) {
	return s.rows, s.err
}

type stubMeetings struct {
	rows []models.Meeting
	err  error
}

func (s *stubMeetings) ListByBrand(context.Context, int64) ([]models.Meeting, error) {
	return s.rows, s.err
}

func testDeps() (Deps, *stubBrandResolver, *stubFinancials) {
	brands := &stubBrandResolver{brand: &models.Brand{ID: 1, Name: "HydraBark", Code: "hydrabark"}}
	financials := &stubFinancials{}
	return Deps{
		Brands:      brands,
		Financials:  financials,
		AdCampaigns: &stubCampaigns{},
		AiAgents:    &stubAgents{},
		PMF:         &stubPMF{err: pkgerrors.New(pkgerrors.CodeNotFound, "no snapshot")},
		Tasks:       &stubTasks{},
		Meetings:    &stubMeetings{},
	}, brands, financials
}

func TestResolveUnknownCodeShortCircuits(t *testing.T) {
	deps, brands, financials := testDeps()
	brands.err = pkgerrors.New(pkgerrors.CodeNotFound, "brand not found")

	svc, err := NewService(deps, config.DashboardConfig{}, nil)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	_, gotErr := svc.Resolve(context.Background(), "nope")
	if typed := pkgerrors.As(gotErr); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", gotErr)
	}
	if financials.calls != 0 {
		t.Fatal("dependent fetch must not run for an unknown brand code")
	}
}

func TestResolveEmptyBrandYieldsEmptySlices(t *testing.T) {
	deps, _, _ := testDeps()
	svc, err := NewService(deps, config.DashboardConfig{}, nil)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	snapshot, err := svc.Resolve(context.Background(), "hydrabark")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if snapshot.Financials == nil || len(snapshot.Financials) != 0 {
		t.Fatalf("expected empty financials slice, got %#v", snapshot.Financials)
	}
	if snapshot.Tasks == nil || snapshot.Meetings == nil || snapshot.AdCampaigns == nil || snapshot.AiAgents == nil {
		t.Fatal("expected empty, non-nil slices for an empty brand")
	}
	if snapshot.ProductMarketFit != nil {
		t.Fatal("missing PMF snapshot must surface as nil, not an error")
	}
}

func TestResolvePMFAbsenceIsNotAnError(t *testing.T) {
	deps, _, _ := testDeps()
	svc, err := NewService(deps, config.DashboardConfig{}, nil)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	snapshot, err := svc.Resolve(context.Background(), "hydrabark")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if snapshot.ProductMarketFit != nil {
		t.Fatal("expected nil PMF pointer")
	}
}

func TestResolveFirstErrorByInitiationOrderWins(t *testing.T) {
	deps, _, financials := testDeps()
	financials.err = pkgerrors.New(pkgerrors.CodeDependency, "financials down")
	deps.Meetings = &stubMeetings{err: pkgerrors.New(pkgerrors.CodeDependency, "meetings down")}

	svc, err := NewService(deps, config.DashboardConfig{}, nil)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	_, gotErr := svc.Resolve(context.Background(), "hydrabark")
	typed := pkgerrors.As(gotErr)
	if typed == nil {
		t.Fatalf("expected coded error, got %v", gotErr)
	}
	if typed.Message() != "financials down" {
		t.Fatalf("expected the earliest-initiated fetch's error, got %q", typed.Message())
	}
}

func TestResolvePlainErrorsBecomeDependencyErrors(t *testing.T) {
	deps, _, financials := testDeps()
	financials.err = errors.New("connection reset")

	svc, err := NewService(deps, config.DashboardConfig{}, nil)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	_, gotErr := svc.Resolve(context.Background(), "hydrabark")
	if typed := pkgerrors.As(gotErr); typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", gotErr)
	}
}

func TestResolveRefetchIsIdempotent(t *testing.T) {
	deps, _, financials := testDeps()
	financials.rows = []models.Financial{
		{ID: 2, BrandID: 1, Revenue: 124568, Profit: 53432},
		{ID: 1, BrandID: 1, Revenue: 110000, Profit: 41000},
	}
	deps.Tasks = &stubTasks{rows: []models.Task{{ID: 1, BrandID: 1, Title: "a"}, {ID: 2, BrandID: 1, Title: "b"}}}

	svc, err := NewService(deps, config.DashboardConfig{}, nil)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	first, err := svc.Resolve(context.Background(), "hydrabark")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	second, err := svc.Resolve(context.Background(), "hydrabark")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	firstJSON, err := json.Marshal(first)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	secondJSON, err := json.Marshal(second)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(firstJSON) != string(secondJSON) {
		t.Fatalf("refetch over unchanged data must be byte-identical:\n%s\n%s", firstJSON, secondJSON)
	}
}

func TestNewServiceRequiresAllDeps(t *testing.T) {
	deps, _, _ := testDeps()
	deps.PMF = nil
	if _, err := NewService(deps, config.DashboardConfig{}, nil); err == nil {
		t.Fatal("expected error constructing service with a missing dependency")
	}
}

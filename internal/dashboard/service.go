package dashboard

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/zachbowman/brandboard-backend/pkg/config"
	"github.com/zachbowman/brandboard-backend/pkg/db/models"
	pkgerrors "github.com/zachbowman/brandboard-backend/pkg/errors"
)

// Snapshot is the raw aggregate for one brand: everything the dashboard
// needs in a single shape. ProductMarketFit is nil when the brand has no
// snapshot yet; that is a valid state, not an error.
type Snapshot struct {
	Brand            models.Brand             `json:"brand"`
	Financials       []models.Financial       `json:"financials"`
	AdCampaigns      []models.AdCampaign      `json:"adCampaigns"`
	AiAgents         []models.AiAgent         `json:"aiAgents"`
	ProductMarketFit *models.ProductMarketFit `json:"productMarketFit"`
	Tasks            []models.Task            `json:"tasks"`
	Meetings         []models.Meeting         `json:"meetings"`
}

type brandResolver interface {
	GetByCode(ctx context.Context, code string) (*models.Brand, error)
}

type financialLister interface {
	ListByBrand(ctx context.Context, brandID int64, period string) ([]models.Financial, error)
}

type campaignLister interface {
	ListByBrand(ctx context.Context, brandID int64) ([]models.AdCampaign, error)
}

type agentLister interface {
	ListByBrand(ctx context.Context, brandID int64) ([]models.AiAgent, error)
}

type pmfGetter interface {
	GetByBrand(ctx context.Context, brandID int64) (*models.ProductMarketFit, error)
}

type taskLister interface {
	ListByBrand(ctx context.Context, brandID int64, status string) ([]models.Task, error)
}

type meetingLister interface {
	ListByBrand(ctx context.Context, brandID int64) ([]models.Meeting, error)
}

// Service aggregates per-brand data behind a single call.
type Service interface {
	Resolve(ctx context.Context, brandCode string) (*Snapshot, error)
}

// Deps names every upstream the aggregation fans out to.
type Deps struct {
	Brands      brandResolver
	Financials  financialLister
	AdCampaigns campaignLister
	AiAgents    agentLister
	PMF         pmfGetter
	Tasks       taskLister
	Meetings    meetingLister
}

type service struct {
	deps  Deps
	cfg   config.DashboardConfig
	cache *SnapshotCache
}

// NewService constructs the aggregation service. The cache may be nil.
func NewService(deps Deps, cfg config.DashboardConfig, cache *SnapshotCache) (Service, error) {
	if deps.Brands == nil || deps.Financials == nil || deps.AdCampaigns == nil ||
		deps.AiAgents == nil || deps.PMF == nil || deps.Tasks == nil || deps.Meetings == nil {
		return nil, fmt.Errorf("dashboard service requires all upstream dependencies")
	}
	return &service{deps: deps, cfg: cfg, cache: cache}, nil
}

// Resolve maps a brand code to its full snapshot. An unknown code fails
// before any dependent fetch runs. The six dependent fetches run
// concurrently; when several fail, the error reported is the one from the
// fetch started earliest, so retries see a stable failure.
func (s *service) Resolve(ctx context.Context, brandCode string) (*Snapshot, error) {
	brand, err := s.deps.Brands.GetByCode(ctx, brandCode)
	if err != nil {
		return nil, err
	}

	if cached, ok := s.cache.Get(ctx, brand.ID); ok {
		return cached, nil
	}

	fetchCtx := ctx
	if s.cfg.FetchTimeout > 0 {
		var cancel context.CancelFunc
		fetchCtx, cancel = context.WithTimeout(ctx, s.cfg.FetchTimeout)
		defer cancel()
	}

	snapshot := &Snapshot{Brand: *brand}
	g, gctx := errgroup.WithContext(fetchCtx)
	errs := make([]error, 6)

	g.Go(func() error {
		snapshot.Financials, errs[0] = s.deps.Financials.ListByBrand(gctx, brand.ID, "")
		return nil
	})
	g.Go(func() error {
		snapshot.AdCampaigns, errs[1] = s.deps.AdCampaigns.ListByBrand(gctx, brand.ID)
		return nil
	})
	g.Go(func() error {
		snapshot.AiAgents, errs[2] = s.deps.AiAgents.ListByBrand(gctx, brand.ID)
		return nil
	})
	g.Go(func() error {
		pmfSnapshot, err := s.deps.PMF.GetByBrand(gctx, brand.ID)
		if err != nil && !pkgerrors.IsNotFound(err) {
			errs[3] = err
		}
		snapshot.ProductMarketFit = pmfSnapshot
		return nil
	})
	g.Go(func() error {
		snapshot.Tasks, errs[4] = s.deps.Tasks.ListByBrand(gctx, brand.ID, "")
		return nil
	})
	g.Go(func() error {
		snapshot.Meetings, errs[5] = s.deps.Meetings.ListByBrand(gctx, brand.ID)
		return nil
	})

	_ = g.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, classify(err)
		}
	}

	normalize(snapshot)
	s.cache.Put(ctx, brand.ID, snapshot, s.cfg.CacheTTL)
	return snapshot, nil
}

// classify maps fan-out failures onto the coded taxonomy. Deadline and
// cancellation become retryable dependency errors.
func classify(err error) error {
	var coded *pkgerrors.Error
	if errors.As(err, &coded) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "dashboard fetch timed out")
	}
	return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "dashboard fetch failed")
}

// normalize replaces nil slices so repeated resolutions of unchanged data
// serialize identically.
func normalize(s *Snapshot) {
	if s.Financials == nil {
		s.Financials = []models.Financial{}
	}
	if s.AdCampaigns == nil {
		s.AdCampaigns = []models.AdCampaign{}
	}
	if s.AiAgents == nil {
		s.AiAgents = []models.AiAgent{}
	}
	if s.Tasks == nil {
		s.Tasks = []models.Task{}
	}
	if s.Meetings == nil {
		s.Meetings = []models.Meeting{}
	}
}

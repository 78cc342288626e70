package aiagents

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/zachbowman/brandboard-backend/pkg/db/models"
	"github.com/zachbowman/brandboard-backend/pkg/enums"
	pkgerrors "github.com/zachbowman/brandboard-backend/pkg/errors"
)

// Service exposes AI agent reads and mutations.
type Service interface {
	ListByBrand(ctx context.Context, brandID int64) ([]models.AiAgent, error)
	Create(ctx context.Context, input CreateAgentInput) (*models.AiAgent, error)
	Patch(ctx context.Context, id int64, input PatchAgentInput) (*models.AiAgent, error)
}

// CreateAgentInput holds the validated payload to register an agent. The
// indicator name is derived from the agent type, never supplied directly.
type CreateAgentInput struct {
	BrandID     int64   `json:"brandId" validate:"required,gt=0"`
	Name        string  `json:"name" validate:"required"`
	Type        string  `json:"type" validate:"required"`
	SuccessRate float64 `json:"successRate" validate:"gte=0,lte=100"`
	UsageCount  int     `json:"usageCount" validate:"gte=0"`
	Cost        float64 `json:"cost" validate:"gte=0"`
	MetricValue float64 `json:"metricValue" validate:"gte=0,lte=100"`
}

// PatchAgentInput holds optional mutation values; only supplied fields are
// written.
type PatchAgentInput struct {
	Name        *string  `json:"name"`
	SuccessRate *float64 `json:"successRate"`
	UsageCount  *int     `json:"usageCount"`
	Cost        *float64 `json:"cost"`
	MetricValue *float64 `json:"metricValue"`
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

// NewService constructs an AI agent service. The invalidator may be nil when
// no snapshot cache is configured.
func NewService(repo Repository, brands brandChecker, invalidator snapshotInvalidator) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("ai agent repository required")
	}
	if brands == nil {
		return nil, fmt.Errorf("brand checker required")
	}
	return &service{repo: repo, brands: brands, invalidator: invalidator}, nil
}

func (s *service) ListByBrand(ctx context.Context, brandID int64) ([]models.AiAgent, error) {
	agents, err := s.repo.ListByBrand(ctx, brandID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing ai agents")
	}
	return agents, nil
}

func (s *service) Create(ctx context.Context, input CreateAgentInput) (*models.AiAgent, error) {
	agentType, err := enums.ParseAgentType(input.Type)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, err.Error())
	}

	if _, err := s.brands.GetByID(ctx, input.BrandID); err != nil {
		if pkgerrors.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "brandId references an unknown brand")
		}
		return nil, err
	}

	agent := &models.AiAgent{
		BrandID:     input.BrandID,
		Name:        input.Name,
		Type:        agentType,
		SuccessRate: input.SuccessRate,
		UsageCount:  input.UsageCount,
		Cost:        input.Cost,
		MetricName:  agentType.MetricName(),
		MetricValue: input.MetricValue,
	}
	if err := s.repo.Create(ctx, agent); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "creating ai agent")
	}
	s.invalidate(ctx, agent.BrandID)
	return agent, nil
}

func (s *service) Patch(ctx context.Context, id int64, input PatchAgentInput) (*models.AiAgent, error) {
	fields := map[string]any{}
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.SuccessRate != nil {
		fields["success_rate"] = *input.SuccessRate
	}
	if input.UsageCount != nil {
		fields["usage_count"] = *input.UsageCount
	}
	if input.Cost != nil {
		fields["cost"] = *input.Cost
	}
	if input.MetricValue != nil {
		fields["metric_value"] = *input.MetricValue
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "ai agent not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading ai agent")
	}

	agent, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "updating ai agent")
	}
	s.invalidate(ctx, agent.BrandID)
	return agent, nil
}

func (s *service) invalidate(ctx context.Context, brandID int64) {
	if s.invalidator != nil {
		s.invalidator.InvalidateBrand(ctx, brandID)
	}
}

package tasks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/zachbowman/brandboard-backend/pkg/db/models"
	"github.com/zachbowman/brandboard-backend/pkg/enums"
	pkgerrors "github.com/zachbowman/brandboard-backend/pkg/errors"
)

// Service exposes task reads and mutations. The completed flag and the
// Completed status are kept in lockstep: patching either one updates the
// other so list filters and board columns never disagree.
type Service interface {
	ListByBrand(ctx context.Context, brandID int64, status string) ([]models.Task, error)
	Create(ctx context.Context, input CreateTaskInput) (*models.Task, error)
	Patch(ctx context.Context, id int64, input PatchTaskInput) (*models.Task, error)
	SetCompleted(ctx context.Context, id int64, completed bool) (*models.Task, error)
}

// CreateTaskInput holds the validated payload to create a task.
type CreateTaskInput struct {
	BrandID     int64      `json:"brandId" validate:"required,gt=0"`
	Title       string     `json:"title" validate:"required"`
	Description *string    `json:"description"`
	AssignedTo  *string    `json:"assignedTo"`
	Priority    *string    `json:"priority"`
	Status      *string    `json:"status"`
	DueDate     *time.Time `json:"dueDate"`
	Category    *string    `json:"category"`
}

// PatchTaskInput holds optional mutation values; only supplied fields are
// written.
type PatchTaskInput struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	AssignedTo  *string    `json:"assignedTo"`
	Priority    *string    `json:"priority"`
	Status      *string    `json:"status"`
	DueDate     *time.Time `json:"dueDate"`
	Category    *string    `json:"category"`
	Completed   *bool      `json:"completed"`
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

// NewService constructs a task service. The invalidator may be nil when no
// snapshot cache is configured.
func NewService(repo Repository, brands brandChecker, invalidator snapshotInvalidator) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("task repository required")
	}
	if brands == nil {
		return nil, fmt.Errorf("brand checker required")
	}
	return &service{repo: repo, brands: brands, invalidator: invalidator}, nil
}

func (s *service) ListByBrand(ctx context.Context, brandID int64, status string) ([]models.Task, error) {
	var filter *enums.TaskStatus
	if status != "" {
		parsed, err := enums.ParseTaskStatus(status)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, err.Error())
		}
		filter = &parsed
	}

	tasks, err := s.repo.ListByBrand(ctx, brandID, filter)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing tasks")
	}
	return tasks, nil
}

func (s *service) Create(ctx context.Context, input CreateTaskInput) (*models.Task, error) {
	priority := enums.TaskPriorityMedium
	if input.Priority != nil {
		parsed, err := enums.ParseTaskPriority(*input.Priority)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, err.Error())
		}
		priority = parsed
	}
	status := enums.TaskStatusTodo
	if input.Status != nil {
		parsed, err := enums.ParseTaskStatus(*input.Status)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, err.Error())
		}
		status = parsed
	}

	if _, err := s.brands.GetByID(ctx, input.BrandID); err != nil {
		if pkgerrors.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "brandId references an unknown brand")
		}
		return nil, err
	}

	task := &models.Task{
		BrandID:     input.BrandID,
		Title:       input.Title,
		Description: input.Description,
		AssignedTo:  input.AssignedTo,
		Priority:    priority,
		Status:      status,
		DueDate:     input.DueDate,
		Category:    input.Category,
		Completed:   status == enums.TaskStatusCompleted,
	}
	if err := s.repo.Create(ctx, task); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "creating task")
	}
	s.invalidate(ctx, task.BrandID)
	return task, nil
}

func (s *service) Patch(ctx context.Context, id int64, input PatchTaskInput) (*models.Task, error) {
	fields := map[string]any{}
	if input.Title != nil {
		fields["title"] = *input.Title
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}
	if input.AssignedTo != nil {
		fields["assigned_to"] = *input.AssignedTo
	}
	if input.Priority != nil {
		priority, err := enums.ParseTaskPriority(*input.Priority)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, err.Error())
		}
		fields["priority"] = priority
	}
	if input.Status != nil {
		status, err := enums.ParseTaskStatus(*input.Status)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, err.Error())
		}
		fields["status"] = status
		fields["completed"] = status == enums.TaskStatusCompleted
	}
	if input.DueDate != nil {
		fields["due_date"] = *input.DueDate
	}
	if input.Category != nil {
		fields["category"] = *input.Category
	}
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "task not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading task")
	}

	if input.Completed != nil {
		// The explicit flag wins over a status patched in the same
		// request, matching the checkbox action on the board. Clearing
		// the flag reopens a Completed task as Todo; a task already in
		// an open status keeps its column.
		fields["completed"] = *input.Completed
		if *input.Completed {
			fields["status"] = enums.TaskStatusCompleted
		} else if input.Status == nil && existing.Status == enums.TaskStatusCompleted {
			fields["status"] = enums.TaskStatusTodo
		}
	}

	task, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "updating task")
	}
	s.invalidate(ctx, task.BrandID)
	return task, nil
}

// SetCompleted is the checkbox shortcut: it toggles the flag and lets Patch
// recompute the matching status.
func (s *service) SetCompleted(ctx context.Context, id int64, completed bool) (*models.Task, error) {
	return s.Patch(ctx, id, PatchTaskInput{Completed: &completed})
}

func (s *service) invalidate(ctx context.Context, brandID int64) {
	if s.invalidator != nil {
		s.invalidator.InvalidateBrand(ctx, brandID)
	}
}

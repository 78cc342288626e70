package meetings

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

// Service exposes meeting reads and mutations.
type Service interface {
	ListByBrand(ctx context.Context, brandID int64) ([]models.Meeting, error)
	Create(ctx context.Context, input CreateMeetingInput) (*models.Meeting, error)
	Patch(ctx context.Context, id int64, input PatchMeetingInput) (*models.Meeting, error)
}

// CreateMeetingInput holds the validated payload to schedule a meeting.
type CreateMeetingInput struct {
	BrandID     int64     `json:"brandId" validate:"required,gt=0"`
	Title       string    `json:"title" validate:"required"`
	Description *string   `json:"description"`
	StartTime   time.Time `json:"startTime" validate:"required"`
	EndTime     time.Time `json:"endTime" validate:"required"`
	Attendees   []string  `json:"attendees"`
	MeetingLink *string   `json:"meetingLink"`
}

// PatchMeetingInput holds optional mutation values; only supplied fields are
// written.
type PatchMeetingInput struct {
	Title         *string    `json:"title"`
	Description   *string    `json:"description"`
	StartTime     *time.Time `json:"startTime"`
	EndTime       *time.Time `json:"endTime"`
	Attendees     *[]string  `json:"attendees"`
	AiReportReady *bool      `json:"aiReportReady"`
	MeetingLink   *string    `json:"meetingLink"`
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

// NewService constructs a meeting service. The invalidator may be nil when
// no snapshot cache is configured.
func NewService(repo Repository, brands brandChecker, invalidator snapshotInvalidator) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("meeting repository required")
	}
	if brands == nil {
		return nil, fmt.Errorf("brand checker required")
	}
	return &service{repo: repo, brands: brands, invalidator: invalidator}, nil
}

func (s *service) ListByBrand(ctx context.Context, brandID int64) ([]models.Meeting, error) {
	meetings, err := s.repo.ListByBrand(ctx, brandID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing meetings")
	}
	return meetings, nil
}

func (s *service) Create(ctx context.Context, input CreateMeetingInput) (*models.Meeting, error) {
	if !input.EndTime.After(input.StartTime) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "endTime must be after startTime")
	}

	if _, err := s.brands.GetByID(ctx, input.BrandID); err != nil {
		if pkgerrors.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "brandId references an unknown brand")
		}
		return nil, err
	}

	meeting := &models.Meeting{
		BrandID:     input.BrandID,
		Title:       input.Title,
		Description: input.Description,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		Attendees:   types.StringList(input.Attendees),
		MeetingLink: input.MeetingLink,
	}
	if err := s.repo.Create(ctx, meeting); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "creating meeting")
	}
	s.invalidate(ctx, meeting.BrandID)
	return meeting, nil
}

func (s *service) Patch(ctx context.Context, id int64, input PatchMeetingInput) (*models.Meeting, error) {
	fields := map[string]any{}
	if input.Title != nil {
		fields["title"] = *input.Title
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}
	if input.StartTime != nil {
		fields["start_time"] = *input.StartTime
	}
	if input.EndTime != nil {
		fields["end_time"] = *input.EndTime
	}
	if input.Attendees != nil {
		fields["attendees"] = types.StringList(*input.Attendees)
	}
	if input.AiReportReady != nil {
		fields["ai_report_ready"] = *input.AiReportReady
	}
	if input.MeetingLink != nil {
		fields["meeting_link"] = *input.MeetingLink
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "meeting not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading meeting")
	}

	start, end := existing.StartTime, existing.EndTime
	if input.StartTime != nil {
		start = *input.StartTime
	}
	if input.EndTime != nil {
		end = *input.EndTime
	}
	if !end.After(start) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "endTime must be after startTime")
	}

	meeting, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "updating meeting")
	}
	s.invalidate(ctx, meeting.BrandID)
	return meeting, nil
}

func (s *service) invalidate(ctx context.Context, brandID int64) {
	if s.invalidator != nil {
		s.invalidator.InvalidateBrand(ctx, brandID)
	}
}

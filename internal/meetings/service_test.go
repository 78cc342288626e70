package meetings

import (
	"context"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/zachbowman/brandboard-backend/pkg/db/models"
	pkgerrors "github.com/zachbowman/brandboard-backend/pkg/errors"
	"github.com/zachbowman/brandboard-backend/pkg/types"
)

type stubMeetingRepo struct {
	meetings map[int64]*models.Meeting
	nextID   int64
}

func newStubMeetingRepo(meetings ...*models.Meeting) *stubMeetingRepo {
	repo := &stubMeetingRepo{meetings: map[int64]*models.Meeting{}, nextID: 1}
	for _, meeting := range meetings {
		repo.meetings[meeting.ID] = meeting
		if meeting.ID >= repo.nextID {
			repo.nextID = meeting.ID + 1
		}
	}
	return repo
}

func (r *stubMeetingRepo) ListByBrand(_ context.Context, brandID int64) ([]models.Meeting, error) {
	var out []models.Meeting
	for _, meeting := range r.meetings {
		if meeting.BrandID == brandID {
			out = append(out, *meeting)
		}
	}
	return out, nil
}

func (r *stubMeetingRepo) FindByID(_ context.Context, id int64) (*models.Meeting, error) {
	meeting, ok := r.meetings[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *meeting
	return &clone, nil
}

func (r *stubMeetingRepo) Create(_ context.Context, meeting *models.Meeting) error {
	meeting.ID = r.nextID
	r.nextID++
	clone := *meeting
	r.meetings[meeting.ID] = &clone
	return nil
}

func (r *stubMeetingRepo) Update(ctx context.Context, id int64, fields map[string]any) (*models.Meeting, error) {
	meeting, ok := r.meetings[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	for key, value := range fields {
		switch key {
		case "title":
			meeting.Title = value.(string)
		case "start_time":
			meeting.StartTime = value.(time.Time)
		case "end_time":
			meeting.EndTime = value.(time.Time)
		case "attendees":
			meeting.Attendees = value.(types.StringList)
		case "ai_report_ready":
			meeting.AiReportReady = value.(bool)
		}
	}
	return r.FindByID(ctx, id)
}

type stubBrands struct{}

func (stubBrands) GetByID(context.Context, int64) (*models.Brand, error) {
	return &models.Brand{ID: 1, Name: "HydraBark", Code: "hydrabark"}, nil
}

func TestCreateRejectsInvertedWindow(t *testing.T) {
	svc, err := NewService(newStubMeetingRepo(), stubBrands{}, nil)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	start := time.Date(2026, time.August, 28, 15, 0, 0, 0, time.UTC)
	_, gotErr := svc.Create(context.Background(), CreateMeetingInput{
		BrandID:   1,
		Title:     "Sync",
		StartTime: start,
		EndTime:   start.Add(-time.Hour),
	})
	if typed := pkgerrors.As(gotErr); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", gotErr)
	}
}

func TestPatchValidatesMergedWindow(t *testing.T) {
	start := time.Date(2026, time.August, 28, 15, 0, 0, 0, time.UTC)
	repo := newStubMeetingRepo(&models.Meeting{
		ID: 2, BrandID: 1, Title: "Weekly sync",
		StartTime: start, EndTime: start.Add(time.Hour),
	})
	svc, err := NewService(repo, stubBrands{}, nil)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	// Moving the start past the existing end must fail even though the
	// patch itself only touches one field.
	late := start.Add(2 * time.Hour)
	_, gotErr := svc.Patch(context.Background(), 2, PatchMeetingInput{StartTime: &late})
	if typed := pkgerrors.As(gotErr); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", gotErr)
	}
}

func TestPatchMarksReportReady(t *testing.T) {
	start := time.Date(2026, time.August, 28, 15, 0, 0, 0, time.UTC)
	repo := newStubMeetingRepo(&models.Meeting{
		ID: 2, BrandID: 1, Title: "Weekly sync",
		StartTime: start, EndTime: start.Add(time.Hour),
		Attendees: types.StringList{"ZB", "TK"},
	})
	svc, err := NewService(repo, stubBrands{}, nil)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	ready := true
	meeting, err := svc.Patch(context.Background(), 2, PatchMeetingInput{AiReportReady: &ready})
	if err != nil {
		t.Fatalf("patch: %v", err)
	}
	if !meeting.AiReportReady {
		t.Fatal("expected report flag set")
	}
	if len(meeting.Attendees) != 2 {
		t.Fatalf("patch clobbered attendees: %+v", meeting.Attendees)
	}
}

func TestPatchUnknownIDReturnsNotFound(t *testing.T) {
	svc, err := NewService(newStubMeetingRepo(), stubBrands{}, nil)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	title := "renamed"
	_, gotErr := svc.Patch(context.Background(), 404, PatchMeetingInput{Title: &title})
	if typed := pkgerrors.As(gotErr); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", gotErr)
	}
}

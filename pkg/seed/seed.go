package seed

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/zachbowman/brandboard-backend/pkg/db"
	"github.com/zachbowman/brandboard-backend/pkg/db/models"
	"github.com/zachbowman/brandboard-backend/pkg/enums"
	"github.com/zachbowman/brandboard-backend/pkg/logger"
	"github.com/zachbowman/brandboard-backend/pkg/types"
)

// Run loads the demo dataset. It is idempotent: when any brand already
// exists the loader assumes the database is seeded and does nothing.
func Run(ctx context.Context, client *db.Client, logg *logger.Logger) error {
	var count int64
	if err := client.DB().WithContext(ctx).Model(&models.Brand{}).Count(&count).Error; err != nil {
		return fmt.Errorf("counting brands: %w", err)
	}
	if count > 0 {
		if logg != nil {
			logg.Info(ctx, "database already seeded, skipping")
		}
		return nil
	}

	return client.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now()

		hydraBark := &models.Brand{Name: "HydraBark", Code: "HydraBark", Logo: ptr("/hydraBark-logo.png")}
		fitFluence := &models.Brand{Name: "FitFluence", Code: "FitFluence", Logo: ptr("/fitFluence-logo.png")}
		ecoVibe := &models.Brand{Name: "EcoVibe", Code: "EcoVibe", Logo: ptr("/ecoVibe-logo.png")}
		for _, brand := range []*models.Brand{hydraBark, fitFluence, ecoVibe} {
			if err := tx.Create(brand).Error; err != nil {
				return fmt.Errorf("creating brand %s: %w", brand.Code, err)
			}
		}

		financial := &models.Financial{
			BrandID:       hydraBark.ID,
			Date:          now,
			Revenue:       124568,
			AdSpend:       35000,
			COGS:          25136,
			OtherExpenses: 11000,
			Profit:        53432,
			ROAS:          3.2,
		}
		if err := tx.Create(financial).Error; err != nil {
			return fmt.Errorf("creating financial: %w", err)
		}

		campaigns := []models.AdCampaign{
			{BrandID: hydraBark.ID, Name: "Summer Sale", Platform: enums.AdPlatformMeta, Spend: 2450, CTR: 2.8, ROAS: 3.5, Status: enums.AdStatusActive},
			{BrandID: hydraBark.ID, Name: "Dog Training Tips", Platform: enums.AdPlatformTikTok, Spend: 1875, CTR: 3.2, ROAS: 3.9, Status: enums.AdStatusActive},
			{BrandID: hydraBark.ID, Name: "Product Demo", Platform: enums.AdPlatformMeta, Spend: 1120, CTR: 1.3, ROAS: 1.8, Status: enums.AdStatusWarning},
			{BrandID: hydraBark.ID, Name: "Customer Reviews", Platform: enums.AdPlatformTikTok, Spend: 980, CTR: 4.1, ROAS: 4.2, Status: enums.AdStatusActive},
		}
		if err := tx.Create(&campaigns).Error; err != nil {
			return fmt.Errorf("creating campaigns: %w", err)
		}

		agents := []models.AiAgent{
			{BrandID: hydraBark.ID, Name: "CX GPT", Type: enums.AgentTypeCX, SuccessRate: 98, UsageCount: 412, Cost: 15.23, MetricName: enums.AgentTypeCX.MetricName(), MetricValue: 94},
			{BrandID: hydraBark.ID, Name: "CMO GPT", Type: enums.AgentTypeCMO, SuccessRate: 85, UsageCount: 28, Cost: 12.50, MetricName: enums.AgentTypeCMO.MetricName(), MetricValue: 85},
			{BrandID: hydraBark.ID, Name: "Cart Recovery GPT", Type: enums.AgentTypeCartRecovery, SuccessRate: 62, UsageCount: 183, Cost: 14.63, MetricName: enums.AgentTypeCartRecovery.MetricName(), MetricValue: 62},
		}
		if err := tx.Create(&agents).Error; err != nil {
			return fmt.Errorf("creating agents: %w", err)
		}

		pmf := &models.ProductMarketFit{
			BrandID:            hydraBark.ID,
			Date:               now,
			PMFScore:           75,
			ReturnRate:         5.2,
			ReviewSentiment:    82,
			RepeatPurchaseRate: 31,
			NPSScore:           42,
			Objections: types.ObjectionList{
				{Name: "Price too high", Percentage: 38},
				{Name: "Durability concerns", Percentage: 22},
				{Name: "Sizing issues", Percentage: 18},
				{Name: "Shipping time", Percentage: 12},
			},
		}
		if err := tx.Create(pmf).Error; err != nil {
			return fmt.Errorf("creating pmf snapshot: %w", err)
		}

		tasks := []models.Task{
			{
				BrandID:     hydraBark.ID,
				Title:       "Review ad performance for Meta campaigns",
				Description: ptr("Analyze the performance of all Meta ad campaigns and identify optimization opportunities"),
				AssignedTo:  ptr("ZB"),
				Priority:    enums.TaskPriorityMedium,
				Status:      enums.TaskStatusTodo,
				DueDate:     ptr(now),
				Category:    ptr("Marketing"),
			},
			{
				BrandID:     hydraBark.ID,
				Title:       "Analyze CX GPT customer feedback logs",
				Description: ptr("Review customer feedback logs from CX GPT and identify common issues"),
				AssignedTo:  ptr("AI"),
				Priority:    enums.TaskPriorityHigh,
				Status:      enums.TaskStatusTodo,
				DueDate:     ptr(now.AddDate(0, 0, 1)),
				Category:    ptr("AI Ops"),
			},
			{
				BrandID:     hydraBark.ID,
				Title:       "Update product description for harnesses",
				Description: ptr("Rewrite product descriptions for the dog harness product line"),
				AssignedTo:  ptr("TK"),
				Priority:    enums.TaskPriorityLow,
				Status:      enums.TaskStatusCompleted,
				DueDate:     ptr(now.AddDate(0, 0, -1)),
				Category:    ptr("Content"),
				Completed:   true,
			},
			{
				BrandID:     hydraBark.ID,
				Title:       "Review TikTok ad creative performance",
				Description: ptr("Analyze the performance of TikTok ad creatives and identify top performers"),
				AssignedTo:  ptr("JL"),
				Priority:    enums.TaskPriorityLow,
				Status:      enums.TaskStatusTodo,
				DueDate:     ptr(now.AddDate(0, 0, 4)),
				Category:    ptr("Marketing"),
			},
		}
		if err := tx.Create(&tasks).Error; err != nil {
			return fmt.Errorf("creating tasks: %w", err)
		}

		meetings := []models.Meeting{
			{
				BrandID:       hydraBark.ID,
				Title:         "Weekly Marketing Review",
				Description:   ptr("Review marketing performance from the previous week and plan for the next week"),
				StartTime:     at(now, 14, 0),
				EndTime:       at(now, 15, 0),
				Attendees:     types.StringList{"ZB", "JL", "TK", "AI", "PM"},
				MeetingLink:   ptr("https://meet.google.com/abc-defg-hij"),
				AiReportReady: false,
			},
			{
				BrandID:       hydraBark.ID,
				Title:         "AI Performance Analysis",
				Description:   ptr("Analyze the performance of AI agents and identify optimization opportunities"),
				StartTime:     at(now.AddDate(0, 0, 1), 10, 0),
				EndTime:       at(now.AddDate(0, 0, 1), 11, 0),
				Attendees:     types.StringList{"ZB", "AI"},
				MeetingLink:   ptr("https://meet.google.com/jkl-mnop-qrs"),
				AiReportReady: false,
			},
			{
				BrandID:       hydraBark.ID,
				Title:         "Monthly Business Review",
				Description:   ptr("Review business performance for the month and plan for the next month"),
				StartTime:     at(now.AddDate(0, 0, 4), 13, 0),
				EndTime:       at(now.AddDate(0, 0, 4), 15, 0),
				Attendees:     types.StringList{"ZB", "JL"},
				MeetingLink:   ptr("https://meet.google.com/tuv-wxyz-123"),
				AiReportReady: true,
			},
		}
		if err := tx.Create(&meetings).Error; err != nil {
			return fmt.Errorf("creating meetings: %w", err)
		}

		if logg != nil {
			logg.Info(ctx, "demo dataset loaded")
		}
		return nil
	})
}

func ptr[T any](v T) *T {
	return &v
}

func at(day time.Time, hour, minute int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())
}

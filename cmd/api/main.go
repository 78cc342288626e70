package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/zachbowman/brandboard-backend/api/routes"
	"github.com/zachbowman/brandboard-backend/internal/adcampaigns"
	"github.com/zachbowman/brandboard-backend/internal/aiagents"
	"github.com/zachbowman/brandboard-backend/internal/brands"
	"github.com/zachbowman/brandboard-backend/internal/dashboard"
	"github.com/zachbowman/brandboard-backend/internal/financials"
	"github.com/zachbowman/brandboard-backend/internal/meetings"
	"github.com/zachbowman/brandboard-backend/internal/pmf"
	"github.com/zachbowman/brandboard-backend/internal/tasks"
	"github.com/zachbowman/brandboard-backend/pkg/config"
	"github.com/zachbowman/brandboard-backend/pkg/db"
	"github.com/zachbowman/brandboard-backend/pkg/logger"
	"github.com/zachbowman/brandboard-backend/pkg/metrics"
	"github.com/zachbowman/brandboard-backend/pkg/migrate"
	"github.com/zachbowman/brandboard-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, cfg.FeatureFlags, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = redis.New(context.Background(), cfg.Redis, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
	} else {
		logg.Info(context.Background(), "redis not configured, snapshot cache disabled")
	}

	snapshotCache := dashboard.NewSnapshotCache(redisClient, logg)

	brandService, err := brands.NewService(brands.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create brand service", err)
		os.Exit(1)
	}

	financialService, err := financials.NewService(financials.NewRepository(dbClient.DB()), brandService)
	if err != nil {
		logg.Error(context.Background(), "failed to create financial service", err)
		os.Exit(1)
	}

	campaignService, err := adcampaigns.NewService(adcampaigns.NewRepository(dbClient.DB()), brandService, snapshotCache)
	if err != nil {
		logg.Error(context.Background(), "failed to create ad campaign service", err)
		os.Exit(1)
	}

	agentService, err := aiagents.NewService(aiagents.NewRepository(dbClient.DB()), brandService, snapshotCache)
	if err != nil {
		logg.Error(context.Background(), "failed to create ai agent service", err)
		os.Exit(1)
	}

	pmfService, err := pmf.NewService(pmf.NewRepository(dbClient.DB()), brandService, snapshotCache)
	if err != nil {
		logg.Error(context.Background(), "failed to create product market fit service", err)
		os.Exit(1)
	}

	taskService, err := tasks.NewService(tasks.NewRepository(dbClient.DB()), brandService, snapshotCache)
	if err != nil {
		logg.Error(context.Background(), "failed to create task service", err)
		os.Exit(1)
	}

	meetingService, err := meetings.NewService(meetings.NewRepository(dbClient.DB()), brandService, snapshotCache)
	if err != nil {
		logg.Error(context.Background(), "failed to create meeting service", err)
		os.Exit(1)
	}

	dashboardService, err := dashboard.NewService(dashboard.Deps{
		Brands:      brandService,
		Financials:  financialService,
		AdCampaigns: campaignService,
		AiAgents:    agentService,
		PMF:         pmfService,
		Tasks:       taskService,
		Meetings:    meetingService,
	}, cfg.Dashboard, snapshotCache)
	if err != nil {
		logg.Error(context.Background(), "failed to create dashboard service", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	httpMetrics := metrics.NewHTTPMetrics(registry)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(cfg, logg, dbClient, redisClient, httpMetrics, registry, routes.Services{
			Brands:      brandService,
			Financials:  financialService,
			AdCampaigns: campaignService,
			AiAgents:    agentService,
			PMF:         pmfService,
			Tasks:       taskService,
			Meetings:    meetingService,
			Dashboard:   dashboardService,
			Composer:    dashboard.NewComposer(cfg.Dashboard.OperatorInitials),
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}

package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/zachbowman/brandboard-backend/api/controllers"
	"github.com/zachbowman/brandboard-backend/api/middleware"
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
	"github.com/zachbowman/brandboard-backend/pkg/redis"
)

// Services bundles everything the route table depends on.
type Services struct {
	Brands      brands.Service
	Financials  financials.Service
	AdCampaigns adcampaigns.Service
	AiAgents    aiagents.Service
	PMF         pmf.Service
	Tasks       tasks.Service
	Meetings    meetings.Service
	Dashboard   dashboard.Service
	Composer    *dashboard.Composer
}

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *redis.Client,
	httpMetrics *metrics.HTTPMetrics,
	gatherer prometheus.Gatherer,
	svcs Services,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisClient))
	})

	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(r chi.Router) {
		r.Route("/brands", func(r chi.Router) {
			r.Get("/", controllers.BrandList(svcs.Brands, logg))
			r.Post("/", controllers.BrandCreate(svcs.Brands, logg))
			r.Get("/{code}", controllers.BrandByCode(svcs.Brands, logg))
		})

		r.Route("/financials", func(r chi.Router) {
			r.Get("/{brandId}", controllers.FinancialList(svcs.Financials, logg))
			r.Post("/", controllers.FinancialCreate(svcs.Financials, logg))
		})

		r.Route("/ad-campaigns", func(r chi.Router) {
			r.Get("/{brandId}", controllers.AdCampaignList(svcs.AdCampaigns, logg))
			r.Post("/", controllers.AdCampaignCreate(svcs.AdCampaigns, logg))
			r.Patch("/{id}", controllers.AdCampaignPatch(svcs.AdCampaigns, logg))
			r.Post("/{id}/toggle", controllers.AdCampaignToggle(svcs.AdCampaigns, logg))
		})

		r.Route("/ai-agents", func(r chi.Router) {
			r.Get("/{brandId}", controllers.AiAgentList(svcs.AiAgents, logg))
			r.Post("/", controllers.AiAgentCreate(svcs.AiAgents, logg))
			r.Patch("/{id}", controllers.AiAgentPatch(svcs.AiAgents, logg))
		})

		r.Route("/product-market-fit", func(r chi.Router) {
			r.Get("/{brandId}", controllers.ProductMarketFitGet(svcs.PMF, logg))
			r.Post("/", controllers.ProductMarketFitCreate(svcs.PMF, logg))
			r.Patch("/{id}", controllers.ProductMarketFitPatch(svcs.PMF, logg))
		})

		r.Route("/tasks", func(r chi.Router) {
			r.Get("/{brandId}", controllers.TaskList(svcs.Tasks, logg))
			r.Post("/", controllers.TaskCreate(svcs.Tasks, logg))
			r.Patch("/{id}", controllers.TaskPatch(svcs.Tasks, logg))
			r.Post("/{id}/complete", controllers.TaskComplete(svcs.Tasks, logg))
		})

		r.Route("/meetings", func(r chi.Router) {
			r.Get("/{brandId}", controllers.MeetingList(svcs.Meetings, logg))
			r.Post("/", controllers.MeetingCreate(svcs.Meetings, logg))
			r.Patch("/{id}", controllers.MeetingPatch(svcs.Meetings, logg))
		})

		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/{code}", controllers.DashboardView(svcs.Dashboard, svcs.Composer, logg))
			r.Get("/{code}/panels/{panel}", controllers.DashboardPanel(svcs.Dashboard, svcs.Composer, logg))
		})
	})

	return r
}

package controllers

import (
	"net/http"

	"github.com/zachbowman/brandboard-backend/api/responses"
	"github.com/zachbowman/brandboard-backend/pkg/config"
	"github.com/zachbowman/brandboard-backend/pkg/db"
	"github.com/zachbowman/brandboard-backend/pkg/logger"
	"github.com/zachbowman/brandboard-backend/pkg/redis"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-BrandBoard-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady pings the backing stores. Redis is optional; a nil client is
// reported as skipped rather than failing readiness.
func HealthReady(cfg *config.Config, logg *logger.Logger, dbP db.Pinger, redisClient *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-BrandBoard-Env", cfg.App.Env)

		checks := map[string]string{}
		healthy := true

		if dbP == nil {
			checks["database"] = "missing"
			healthy = false
		} else if err := dbP.Ping(r.Context()); err != nil {
			checks["database"] = "down"
			healthy = false
			if logg != nil {
				logg.Error(r.Context(), "readiness database ping failed", err)
			}
		} else {
			checks["database"] = "up"
		}

		if redisClient == nil {
			checks["redis"] = "skipped"
		} else if err := redisClient.Ping(r.Context()); err != nil {
			checks["redis"] = "down"
			healthy = false
			if logg != nil {
				logg.Error(r.Context(), "readiness redis ping failed", err)
			}
		} else {
			checks["redis"] = "up"
		}

		status := http.StatusOK
		state := "ready"
		if !healthy {
			status = http.StatusServiceUnavailable
			state = "degraded"
		}
		responses.WriteSuccessStatus(w, status, map[string]any{
			"status": state,
			"checks": checks,
		})
	}
}

package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/zachbowman/brandboard-backend/api/responses"
	"github.com/zachbowman/brandboard-backend/internal/dashboard"
	pkgerrors "github.com/zachbowman/brandboard-backend/pkg/errors"
	"github.com/zachbowman/brandboard-backend/pkg/logger"
)

// DashboardView resolves a brand's snapshot and returns the composed,
// display-ready view model.
func DashboardView(svc dashboard.Service, composer *dashboard.Composer, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil || composer == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "dashboard service unavailable"))
			return
		}

		code := strings.TrimSpace(chi.URLParam(r, "code"))
		if code == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "brand code is required"))
			return
		}

		ctx := r.Context()
		if logg != nil {
			ctx = logg.WithBrandCode(ctx, code)
		}

		snapshot, err := svc.Resolve(ctx, code)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, composer.Compose(snapshot))
	}
}

// DashboardPanel serves a single panel of the composed dashboard.
func DashboardPanel(svc dashboard.Service, composer *dashboard.Composer, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil || composer == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "dashboard service unavailable"))
			return
		}

		code := strings.TrimSpace(chi.URLParam(r, "code"))
		if code == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "brand code is required"))
			return
		}
		panelKey := strings.TrimSpace(chi.URLParam(r, "panel"))
		if panelKey == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "panel key is required"))
			return
		}

		ctx := r.Context()
		if logg != nil {
			ctx = logg.WithBrandCode(ctx, code)
		}

		snapshot, err := svc.Resolve(ctx, code)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		panel, err := dashboard.Panel(composer.Compose(snapshot), panelKey)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, panel)
	}
}

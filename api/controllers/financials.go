package controllers

import (
	"net/http"

	"github.com/zachbowman/brandboard-backend/api/responses"
	"github.com/zachbowman/brandboard-backend/api/validators"
	"github.com/zachbowman/brandboard-backend/internal/financials"
	pkgerrors "github.com/zachbowman/brandboard-backend/pkg/errors"
	"github.com/zachbowman/brandboard-backend/pkg/logger"
)

// FinancialList returns a brand's P&L snapshots, optionally windowed by the
// period query parameter (weekly, monthly, yearly).
func FinancialList(svc financials.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "financial service unavailable"))
			return
		}

		brandID, err := validators.ParseIDParam(r, "brandId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := r.Context()
		if logg != nil {
			ctx = logg.WithBrandID(ctx, brandID)
		}

		rows, err := svc.ListByBrand(ctx, brandID, validators.QueryString(r, "period"))
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, rows)
	}
}

// FinancialCreate records a new P&L snapshot.
func FinancialCreate(svc financials.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "financial service unavailable"))
			return
		}

		var payload financials.CreateFinancialInput
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		row, err := svc.Create(r.Context(), payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, row)
	}
}

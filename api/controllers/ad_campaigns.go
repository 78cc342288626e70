package controllers

import (
	"net/http"

	"github.com/zachbowman/brandboard-backend/api/responses"
	"github.com/zachbowman/brandboard-backend/api/validators"
	"github.com/zachbowman/brandboard-backend/internal/adcampaigns"
	pkgerrors "github.com/zachbowman/brandboard-backend/pkg/errors"
	"github.com/zachbowman/brandboard-backend/pkg/logger"
)

// AdCampaignList returns a brand's campaigns.
func AdCampaignList(svc adcampaigns.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "ad campaign service unavailable"))
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

		campaigns, err := svc.ListByBrand(ctx, brandID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, campaigns)
	}
}

// AdCampaignCreate launches a campaign record.
func AdCampaignCreate(svc adcampaigns.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "ad campaign service unavailable"))
			return
		}

		var payload adcampaigns.CreateCampaignInput
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		campaign, err := svc.Create(r.Context(), payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, campaign)
	}
}

// AdCampaignPatch merges the supplied fields into an existing campaign.
func AdCampaignPatch(svc adcampaigns.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "ad campaign service unavailable"))
			return
		}

		id, err := validators.ParseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload adcampaigns.PatchCampaignInput
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		campaign, err := svc.Patch(r.Context(), id, payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, campaign)
	}
}

// AdCampaignToggle flips a campaign between Active and Paused.
func AdCampaignToggle(svc adcampaigns.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "ad campaign service unavailable"))
			return
		}

		id, err := validators.ParseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		campaign, err := svc.ToggleStatus(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, campaign)
	}
}

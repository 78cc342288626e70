package controllers

import (
	"net/http"

	"github.com/zachbowman/brandboard-backend/api/responses"
	"github.com/zachbowman/brandboard-backend/api/validators"
	"github.com/zachbowman/brandboard-backend/internal/aiagents"
	pkgerrors "github.com/zachbowman/brandboard-backend/pkg/errors"
	"github.com/zachbowman/brandboard-backend/pkg/logger"
)

// AiAgentList returns a brand's agents.
func AiAgentList(svc aiagents.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "ai agent service unavailable"))
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

		agents, err := svc.ListByBrand(ctx, brandID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, agents)
	}
}

// AiAgentCreate registers an agent; its metric name is derived from type.
func AiAgentCreate(svc aiagents.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "ai agent service unavailable"))
			return
		}

		var payload aiagents.CreateAgentInput
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		agent, err := svc.Create(r.Context(), payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, agent)
	}
}

// AiAgentPatch merges the supplied fields into an existing agent.
func AiAgentPatch(svc aiagents.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "ai agent service unavailable"))
			return
		}

		id, err := validators.ParseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload aiagents.PatchAgentInput
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		agent, err := svc.Patch(r.Context(), id, payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, agent)
	}
}

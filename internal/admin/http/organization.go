package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/orgdeskhq/orgdesk/internal/admin/domain"
	"github.com/orgdeskhq/orgdesk/internal/admin/service"
	"github.com/orgdeskhq/orgdesk/pkg/httpx"
	"github.com/orgdeskhq/orgdesk/pkg/orgsdk"
	"github.com/orgdeskhq/orgdesk/pkg/slogx"
)

type OrganizationHandler struct {
	OrganizationService *service.OrganizationService
}

// HandleGet godoc
//
//	@Summary		Get Organization
//	@Description	Returns the caller's organization profile and plan limits
//	@Tags			Organization
//	@Produce		json
//	@Success		200	{object}	orgsdk.Organization
//	@Failure		404	{object}	orgsdk.ErrorResponse	"error"
//	@Failure		500	{object}	orgsdk.ErrorResponse	"error"
//	@Security		BearerAuth
//	@Router			/v1/org [get].
func (h *OrganizationHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	org, err := h.OrganizationService.Get(ctx, httpx.OrgID(ctx))
	if err != nil {
		if errors.Is(err, service.ErrOrganizationNotFound) {
			writeError(w, http.StatusNotFound, "Organization not found")
			return
		}
		log.Error("failed to load organization", "err", err)
		writeError(w, http.StatusInternalServerError, "Failed to load organization")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toWireOrganization(org))
}

// HandleUpdateSettings godoc
//
//	@Summary		Update Organization Settings
//	@Description	Updates the five editable organization fields and returns the refreshed snapshot
//	@Tags			Organization
//	@Accept			json
//	@Produce		json
//	@Param			request	body		orgsdk.UpdateSettingsRequest	true	"New settings"
//	@Success		200		{object}	orgsdk.Organization
//	@Failure		400		{object}	orgsdk.ErrorResponse	"error"
//	@Failure		404		{object}	orgsdk.ErrorResponse	"error"
//	@Failure		500		{object}	orgsdk.ErrorResponse	"error"
//	@Security		BearerAuth
//	@Router			/v1/org/settings [patch].
func (h *OrganizationHandler) HandleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req orgsdk.UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	org, err := h.OrganizationService.UpdateSettings(ctx, httpx.OrgID(ctx), domain.OrganizationSettings{
		Name:              req.Name,
		MaxUsers:          req.MaxUsers,
		MaxChatSessions:   req.MaxChatSessions,
		MonthlyTokenLimit: req.MonthlyTokenLimit,
		PlanType:          req.PlanType,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidSettings):
			writeError(w, http.StatusBadRequest, "Invalid organization settings")
		case errors.Is(err, service.ErrOrganizationNotFound):
			writeError(w, http.StatusNotFound, "Organization not found")
		default:
			log.Error("failed to update settings", "err", err)
			writeError(w, http.StatusInternalServerError, "Failed to update settings")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toWireOrganization(org))
}
